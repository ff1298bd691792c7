package repository

import (
	"context"
	"time"

	"github.com/trollcity/economy/internal/domain/model"
)

// CreditScoreRepository stores computed credit scores. Reads for unscored
// users return ErrNotFound; the default score is synthesized above this
// boundary and never written back.
type CreditScoreRepository interface {
	Get(ctx context.Context, userID int64) (*model.CreditScore, error)
	Upsert(ctx context.Context, score *model.CreditScore) error

	// SelectStale returns ids of users with ledger activity whose score is
	// missing or was not refreshed since the given moment, for the background
	// refresher.
	SelectStale(ctx context.Context, olderThan time.Time, limit int) ([]int64, error)
}
