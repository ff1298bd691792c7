package model

import "time"

const (
	// DefaultCreditScoreValue is assigned to users without a stored score row.
	DefaultCreditScoreValue = 400
	// DefaultCreditTier labels users that have never been scored.
	DefaultCreditTier = "Unknown"
)

// CreditScore aggregates a user's standing in the coin economy.
type CreditScore struct {
	UserID    int64
	Score     int
	Tier      string
	Trend7d   int
	Trend30d  int
	UpdatedAt time.Time
}

// DefaultCreditScore synthesizes the score for a user with no stored row.
// It is never persisted; an unscored user is a valid state, not missing data.
func DefaultCreditScore(userID int64) *CreditScore {
	return &CreditScore{
		UserID: userID,
		Score:  DefaultCreditScoreValue,
		Tier:   DefaultCreditTier,
	}
}
