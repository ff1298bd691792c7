package usecase

import (
	"context"
	"errors"
	"time"

	domainErrors "github.com/trollcity/economy/internal/domain/errors"
	"github.com/trollcity/economy/internal/domain/model"
	"github.com/trollcity/economy/internal/domain/repository"
)

const (
	// scoreInflowDivisor converts window coin inflow into score points.
	scoreInflowDivisor = 100
	maxCreditScore     = 900
	minCreditScore     = 300
)

// CreditTierForScore maps a numeric score to its display band.
func CreditTierForScore(score int) string {
	switch {
	case score >= 800:
		return "Excellent"
	case score >= 650:
		return "Good"
	case score >= 500:
		return "Fair"
	case score >= model.DefaultCreditScoreValue:
		return "Building"
	default:
		return "Risk"
	}
}

// CreditUseCase serves credit score reads and background recomputation.
type CreditUseCase struct {
	scores repository.CreditScoreRepository
	ledger repository.LedgerRepository
}

// NewCreditUseCase constructs CreditUseCase.
func NewCreditUseCase(scores repository.CreditScoreRepository, ledger repository.LedgerRepository) *CreditUseCase {
	return &CreditUseCase{scores: scores, ledger: ledger}
}

// Score returns the stored score, or the synthesized default for users with
// no row. The default is never persisted; an unscored user is a valid state.
func (u *CreditUseCase) Score(ctx context.Context, userID int64) (*model.CreditScore, error) {
	score, err := u.scores.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return model.DefaultCreditScore(userID), nil
		}
		return nil, domainErrors.NewAccessorError("read credit score", err)
	}
	return score, nil
}

// Stale returns ids of users whose score needs a refresh.
func (u *CreditUseCase) Stale(ctx context.Context, olderThan time.Time, limit int) ([]int64, error) {
	return u.scores.SelectStale(ctx, olderThan, limit)
}

// Refresh recomputes the user's score and trends from ledger inflow and
// stores the result.
func (u *CreditUseCase) Refresh(ctx context.Context, userID int64) error {
	now := time.Now()

	week, err := u.ledger.InflowSince(ctx, userID, now.Add(-7*24*time.Hour))
	if err != nil {
		return domainErrors.NewAccessorError("sum 7d inflow", err)
	}
	month, err := u.ledger.InflowSince(ctx, userID, now.Add(-30*24*time.Hour))
	if err != nil {
		return domainErrors.NewAccessorError("sum 30d inflow", err)
	}

	score := clampScore(model.DefaultCreditScoreValue + int(month/scoreInflowDivisor))
	updated := &model.CreditScore{
		UserID:    userID,
		Score:     score,
		Tier:      CreditTierForScore(score),
		Trend7d:   int(week / scoreInflowDivisor),
		Trend30d:  int(month / scoreInflowDivisor),
		UpdatedAt: now,
	}
	if err := u.scores.Upsert(ctx, updated); err != nil {
		return domainErrors.NewAccessorError("store credit score", err)
	}
	return nil
}

func clampScore(score int) int {
	if score > maxCreditScore {
		return maxCreditScore
	}
	if score < minCreditScore {
		return minCreditScore
	}
	return score
}
