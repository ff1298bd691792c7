package dto

import "time"

// CreatePayoutRequest describes a withdrawal request payload. AmountUSD is
// optional and only reconciled against the server-computed figure.
type CreatePayoutRequest struct {
	AmountCoins int64   `json:"amount_coins" binding:"required"`
	Currency    string  `json:"currency"`
	AmountUSD   float64 `json:"amount_usd"`
}

// PayoutResponse describes a payout request row.
type PayoutResponse struct {
	ID           string     `json:"id"`
	AmountCoins  int64      `json:"amount_coins"`
	AmountUSD    float64    `json:"amount_usd"`
	Currency     string     `json:"currency"`
	Status       string     `json:"status"`
	ManualReview bool       `json:"manual_review"`
	ApprovedBy   *int64     `json:"approved_by,omitempty"`
	ApprovedAt   *time.Time `json:"approved_at,omitempty"`
	RequestedAt  time.Time  `json:"requested_at"`
}

// TierResponse describes one conversion bracket.
type TierResponse struct {
	Coins        int64   `json:"coins"`
	USD          float64 `json:"usd"`
	ManualReview bool    `json:"manual_review"`
}

// QuoteResponse previews a coin-to-USD conversion.
type QuoteResponse struct {
	AmountCoins  int64   `json:"amount_coins"`
	Rate         float64 `json:"rate"`
	GrossUSD     float64 `json:"gross_usd"`
	NetUSD       float64 `json:"net_usd"`
	ManualReview bool    `json:"manual_review"`
	Eligible     bool    `json:"eligible"`
}
