package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/trollcity/economy/internal/domain/model"
)

// TransferFacade describes coin movement capabilities required by handlers.
type TransferFacade interface {
	SendTip(ctx context.Context, senderID, recipientID, amount int64, message string) (*model.TransferResult, error)
	PayEntryPass(ctx context.Context, userID, broadcasterID int64, streamID string) (*model.TransferResult, error)
	CheckEntryPass(ctx context.Context, userID, broadcasterID int64) (bool, error)
	Balance(ctx context.Context, userID int64) (int64, error)
}

// PayoutFacade provides payout conversion operations.
type PayoutFacade interface {
	CreatePayout(ctx context.Context, userID, amountCoins int64, currency string, declaredUSD float64) (*model.PayoutRequest, error)
	ApprovePayout(ctx context.Context, payoutID uuid.UUID, adminID int64) (*model.PayoutRequest, error)
	Payouts(ctx context.Context, userID int64) ([]model.PayoutRequest, error)
	PayoutQuote(coins int64) model.PayoutQuote
	PayoutTiers() []model.Tier
}

// CreditFacade exposes credit score reads.
type CreditFacade interface {
	CreditScore(ctx context.Context, userID int64) (*model.CreditScore, error)
}

// EconomyFacade aggregates the full set of operations used across handlers.
type EconomyFacade interface {
	TransferFacade
	PayoutFacade
	CreditFacade
}
