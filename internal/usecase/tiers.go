package usecase

import "github.com/trollcity/economy/internal/domain/model"

// payoutTiers is the fixed conversion table, ascending by threshold. The set
// is immutable at runtime; the top tier requires manual review before any
// disbursement.
var payoutTiers = []model.Tier{
	{Coins: 12000, USD: 25},
	{Coins: 26375, USD: 70},
	{Coins: 60000, USD: 150},
	{Coins: 120000, USD: 355, ManualReview: true},
}

// PayoutFeeUSD is the flat processing fee subtracted from the gross USD
// amount before disbursement.
const PayoutFeeUSD = 3.00

// PayoutTiers returns a copy of the conversion table.
func PayoutTiers() []model.Tier {
	tiers := make([]model.Tier, len(payoutTiers))
	copy(tiers, payoutTiers)
	return tiers
}

// TierForCoins returns the highest tier whose threshold the amount meets or
// exceeds. Thresholds are inclusive on the lower side.
func TierForCoins(coins int64) (model.Tier, bool) {
	if coins <= 0 {
		return model.Tier{}, false
	}
	for i := len(payoutTiers) - 1; i >= 0; i-- {
		if coins >= payoutTiers[i].Coins {
			return payoutTiers[i], true
		}
	}
	return model.Tier{}, false
}

// RateForCoins maps a coin amount to its per-coin USD rate. Amounts below the
// lowest threshold earn rate 0; amounts beyond the top threshold stay on the
// top tier's flat rate.
func RateForCoins(coins int64) float64 {
	tier, ok := TierForCoins(coins)
	if !ok {
		return 0
	}
	return tier.Rate()
}

// GrossPayoutUSD converts coins to USD at the resolved tier rate, before fee.
func GrossPayoutUSD(coins int64) float64 {
	return float64(coins) * RateForCoins(coins)
}

// NetPayoutUSD subtracts the processing fee from a gross amount, clamping
// at zero.
func NetPayoutUSD(gross float64) float64 {
	net := gross - PayoutFeeUSD
	if net < 0 {
		return 0
	}
	return net
}

// QuoteForCoins assembles the full conversion preview for a coin amount.
func QuoteForCoins(coins int64) model.PayoutQuote {
	quote := model.PayoutQuote{AmountCoins: coins}
	tier, ok := TierForCoins(coins)
	if !ok {
		return quote
	}
	quote.Eligible = true
	quote.Rate = tier.Rate()
	quote.GrossUSD = float64(coins) * quote.Rate
	quote.NetUSD = NetPayoutUSD(quote.GrossUSD)
	quote.ManualReview = tier.ManualReview
	return quote
}
