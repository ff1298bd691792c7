package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// EconomyFacade exposes the subset of application functionality required by the worker.
type EconomyFacade interface {
	StaleCreditScores(ctx context.Context, olderThan time.Time, limit int) ([]int64, error)
	RefreshCreditScore(ctx context.Context, userID int64) error
}

// ScoreRefresher periodically recomputes stale credit scores concurrently.
type ScoreRefresher struct {
	facade       EconomyFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan int64
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewScoreRefresher constructs the credit score worker pool.
func NewScoreRefresher(facade EconomyFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *ScoreRefresher {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &ScoreRefresher{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan int64, batchSize*workers),
	}
}

// Start launches background processing.
func (r *ScoreRefresher) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	for i := 0; i < r.workers; i++ {
		r.wg.Add(1)
		go r.worker(runCtx)
	}

	r.wg.Add(1)
	go r.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (r *ScoreRefresher) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *ScoreRefresher) dispatch(ctx context.Context) {
	defer r.wg.Done()
	defer close(r.jobs)
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.fetchAndDispatch(ctx)
		}
	}
}

func (r *ScoreRefresher) fetchAndDispatch(ctx context.Context) {
	olderThan := time.Now().Add(-r.pollInterval)
	userIDs, err := r.facade.StaleCreditScores(ctx, olderThan, r.batchSize)
	if err != nil {
		r.logger.Error("fetch stale credit scores failed", slog.String("error", err.Error()))
		return
	}
	for _, userID := range userIDs {
		select {
		case <-ctx.Done():
			return
		case r.jobs <- userID:
		}
	}
}

func (r *ScoreRefresher) worker(ctx context.Context) {
	defer r.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case userID, ok := <-r.jobs:
			if !ok {
				return
			}
			if err := r.facade.RefreshCreditScore(ctx, userID); err != nil {
				r.logger.Error("credit score refresh failed", slog.Int64("user_id", userID), slog.String("error", err.Error()))
			}
		}
	}
}
