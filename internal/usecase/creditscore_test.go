package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/trollcity/economy/internal/domain/errors"
	"github.com/trollcity/economy/internal/domain/model"
	testhelpers "github.com/trollcity/economy/internal/test"
)

func TestScoreSynthesizesDefaultWithoutPersisting(t *testing.T) {
	scores := &testhelpers.CreditScoreRepositoryStub{}
	uc := NewCreditUseCase(scores, &testhelpers.LedgerRepositoryStub{})

	score, err := uc.Score(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultCreditScoreValue, score.Score)
	assert.Equal(t, model.DefaultCreditTier, score.Tier)
	assert.Zero(t, score.Trend7d)
	assert.Zero(t, score.Trend30d)
	assert.Empty(t, scores.Upserted, "default score must not be written back")
	assert.Empty(t, scores.Scores, "no row may appear as a read side effect")
}

func TestScoreReturnsStoredRow(t *testing.T) {
	stored := &model.CreditScore{UserID: 42, Score: 640, Tier: "Fair", Trend7d: 3, Trend30d: 12, UpdatedAt: time.Now()}
	scores := &testhelpers.CreditScoreRepositoryStub{Scores: map[int64]*model.CreditScore{42: stored}}
	uc := NewCreditUseCase(scores, &testhelpers.LedgerRepositoryStub{})

	score, err := uc.Score(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, stored, score)
}

func TestScoreWrapsAccessorFailure(t *testing.T) {
	scores := &testhelpers.CreditScoreRepositoryStub{
		GetFn: func(context.Context, int64) (*model.CreditScore, error) {
			return nil, errors.New("store offline")
		},
	}
	uc := NewCreditUseCase(scores, &testhelpers.LedgerRepositoryStub{})

	_, err := uc.Score(context.Background(), 42)
	assert.True(t, domainErrors.IsAccessor(err), "expected accessor error, got %v", err)
}

func TestRefreshRecomputesFromLedgerInflow(t *testing.T) {
	scores := &testhelpers.CreditScoreRepositoryStub{}
	ledger := &testhelpers.LedgerRepositoryStub{
		InflowSinceFn: func(_ context.Context, _ int64, since time.Time) (int64, error) {
			if time.Since(since) < 8*24*time.Hour {
				return 700, nil
			}
			return 3000, nil
		},
	}
	uc := NewCreditUseCase(scores, ledger)

	require.NoError(t, uc.Refresh(context.Background(), 42))
	require.Len(t, scores.Upserted, 1)

	got := scores.Upserted[0]
	assert.EqualValues(t, 42, got.UserID)
	assert.Equal(t, 430, got.Score)
	assert.Equal(t, "Building", got.Tier)
	assert.Equal(t, 7, got.Trend7d)
	assert.Equal(t, 30, got.Trend30d)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestRefreshCapsScore(t *testing.T) {
	scores := &testhelpers.CreditScoreRepositoryStub{}
	ledger := &testhelpers.LedgerRepositoryStub{
		InflowSinceFn: func(context.Context, int64, time.Time) (int64, error) {
			return 10_000_000, nil
		},
	}
	uc := NewCreditUseCase(scores, ledger)

	require.NoError(t, uc.Refresh(context.Background(), 42))
	require.Len(t, scores.Upserted, 1)
	assert.Equal(t, maxCreditScore, scores.Upserted[0].Score)
	assert.Equal(t, "Excellent", scores.Upserted[0].Tier)
}

func TestRefreshWrapsLedgerFailure(t *testing.T) {
	ledger := &testhelpers.LedgerRepositoryStub{
		InflowSinceFn: func(context.Context, int64, time.Time) (int64, error) {
			return 0, errors.New("store offline")
		},
	}
	uc := NewCreditUseCase(&testhelpers.CreditScoreRepositoryStub{}, ledger)

	err := uc.Refresh(context.Background(), 42)
	assert.True(t, domainErrors.IsAccessor(err), "expected accessor error, got %v", err)
}

func TestStalePassesThrough(t *testing.T) {
	scores := &testhelpers.CreditScoreRepositoryStub{StaleIDs: []int64{1, 2, 3}}
	uc := NewCreditUseCase(scores, &testhelpers.LedgerRepositoryStub{})

	ids, err := uc.Stale(context.Background(), time.Now(), 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids)
}

func TestCreditTierForScore(t *testing.T) {
	cases := map[int]string{
		850: "Excellent",
		800: "Excellent",
		700: "Good",
		550: "Fair",
		420: "Building",
		399: "Risk",
		310: "Risk",
	}
	for score, want := range cases {
		assert.Equal(t, want, CreditTierForScore(score), "score=%d", score)
	}
}
