package model

import (
	"time"

	"github.com/google/uuid"
)

// PayoutStatus describes the payout request lifecycle. A request stays
// pending until an administrator approves it; no other terminal state exists.
type PayoutStatus string

const (
	PayoutStatusPending  PayoutStatus = "pending"
	PayoutStatusApproved PayoutStatus = "approved"
)

// PayoutRequest is a user's request to convert coins into real currency.
// Creation never debits the coin balance; the debit happens atomically at
// approval time.
type PayoutRequest struct {
	ID           uuid.UUID
	UserID       int64
	AmountCoins  int64
	AmountUSD    float64
	Currency     string
	Status       PayoutStatus
	ManualReview bool
	ApprovedBy   *int64
	ApprovedAt   *time.Time
	RequestedAt  time.Time
}
