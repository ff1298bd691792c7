package dto

import "time"

// CreditScoreResponse reports a user's credit standing.
type CreditScoreResponse struct {
	Score     int        `json:"score"`
	Tier      string     `json:"tier"`
	Trend7d   int        `json:"trend_7d"`
	Trend30d  int        `json:"trend_30d"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
