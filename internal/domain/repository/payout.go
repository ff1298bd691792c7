package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/trollcity/economy/internal/domain/model"
)

// PayoutRepository persists payout requests and their approval lifecycle.
type PayoutRepository interface {
	// Create inserts a pending request and returns it with id and timestamp
	// assigned by the store.
	Create(ctx context.Context, request *model.PayoutRequest) (*model.PayoutRequest, error)

	// GetByID returns the request or ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*model.PayoutRequest, error)

	// Approve transitions pending->approved, stamps the approver, and debits
	// the requester's coin balance in the same store transaction. Returns
	// ErrNotFound for unknown ids and ErrInvalidState when the request is not
	// pending; the stored record is left unchanged on failure.
	Approve(ctx context.Context, id uuid.UUID, adminID int64) (*model.PayoutRequest, error)

	// ListByUser returns the user's requests, newest first.
	ListByUser(ctx context.Context, userID int64) ([]model.PayoutRequest, error)
}
