package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateForCoinsStepFunction(t *testing.T) {
	for _, coins := range []int64{-500, 0, 1, 11999} {
		assert.Zero(t, RateForCoins(coins), "coins=%d must not be eligible", coins)
	}

	firstTier := 25.0 / 12000.0
	for _, coins := range []int64{12000, 12001, 20000, 26374} {
		assert.Equal(t, firstTier, RateForCoins(coins), "coins=%d", coins)
	}

	assert.Equal(t, 70.0/26375.0, RateForCoins(26375))
	assert.Equal(t, 150.0/60000.0, RateForCoins(60000))
	assert.Equal(t, 355.0/120000.0, RateForCoins(120000))

	// No extrapolation beyond the top threshold.
	assert.Equal(t, 355.0/120000.0, RateForCoins(5000000))
}

func TestTierThresholdsStrictlyIncreasing(t *testing.T) {
	tiers := PayoutTiers()
	require.Len(t, tiers, 4)
	for i := 1; i < len(tiers); i++ {
		assert.Greater(t, tiers[i].Coins, tiers[i-1].Coins)
	}
}

func TestTierForCoinsBoundaries(t *testing.T) {
	_, ok := TierForCoins(11999)
	assert.False(t, ok)

	tier, ok := TierForCoins(12000)
	require.True(t, ok)
	assert.EqualValues(t, 12000, tier.Coins)
	assert.False(t, tier.ManualReview)

	tier, ok = TierForCoins(120000)
	require.True(t, ok)
	assert.EqualValues(t, 120000, tier.Coins)
	assert.True(t, tier.ManualReview)
}

func TestQuoteForCoins(t *testing.T) {
	quote := QuoteForCoins(26375)
	require.True(t, quote.Eligible)
	assert.InDelta(t, 70.0, quote.GrossUSD, 1e-9)
	assert.InDelta(t, 67.0, quote.NetUSD, 1e-9)
	assert.False(t, quote.ManualReview)

	quote = QuoteForCoins(120000)
	require.True(t, quote.Eligible)
	assert.InDelta(t, 355.0, quote.GrossUSD, 1e-9)
	assert.True(t, quote.ManualReview)

	quote = QuoteForCoins(100)
	assert.False(t, quote.Eligible)
	assert.Zero(t, quote.Rate)
	assert.Zero(t, quote.GrossUSD)
}

func TestNetPayoutUSDClampsAtZero(t *testing.T) {
	assert.Equal(t, 22.0, NetPayoutUSD(25))
	assert.Zero(t, NetPayoutUSD(2))
	assert.Zero(t, NetPayoutUSD(0))
}

func TestPayoutTiersReturnsCopy(t *testing.T) {
	tiers := PayoutTiers()
	tiers[0].Coins = 1
	assert.EqualValues(t, 12000, PayoutTiers()[0].Coins, "mutating the returned slice must not affect the table")
}
