package model

// Tier maps a coin threshold to a flat USD payout value. The conversion is a
// step function: any amount at or above Coins (and below the next threshold)
// converts at USD/Coins per coin.
type Tier struct {
	Coins        int64
	USD          float64
	ManualReview bool
}

// Rate returns the per-coin USD rate of the tier.
func (t Tier) Rate() float64 {
	if t.Coins <= 0 {
		return 0
	}
	return t.USD / float64(t.Coins)
}

// PayoutQuote describes how a coin amount would convert at this moment.
// Eligible is false below the lowest tier threshold.
type PayoutQuote struct {
	AmountCoins  int64
	Rate         float64
	GrossUSD     float64
	NetUSD       float64
	ManualReview bool
	Eligible     bool
}
