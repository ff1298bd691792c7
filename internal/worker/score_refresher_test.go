package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	testhelpers "github.com/trollcity/economy/internal/test"
)

func TestNewScoreRefresherDefaults(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	refresher := NewScoreRefresher(&testhelpers.WorkerFacadeStub{}, time.Second, 0, 0, logger)
	if refresher.batchSize != 1 {
		t.Fatalf("expected batch size default to 1, got %d", refresher.batchSize)
	}
	if refresher.workers != 1 {
		t.Fatalf("expected workers default to 1, got %d", refresher.workers)
	}
}

func TestScoreRefresherRefreshesStaleUsers(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &testhelpers.WorkerFacadeStub{StaleBatches: [][]int64{{7, 8}}}
	refresher := NewScoreRefresher(facade, 10*time.Millisecond, 2, 2, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	refresher.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for {
		if len(facade.RefreshedIDs()) >= 2 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timeout waiting for score refresh")
		case <-time.After(10 * time.Millisecond):
		}
	}

	refresher.Stop()
	refreshed := facade.RefreshedIDs()
	seen := make(map[int64]bool, len(refreshed))
	for _, id := range refreshed {
		seen[id] = true
	}
	if !seen[7] || !seen[8] {
		t.Fatalf("expected users 7 and 8 refreshed, got %v", refreshed)
	}
}

func TestScoreRefresherSurvivesFetchErrors(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	attempts := int32(0)
	facade := &testhelpers.WorkerFacadeStub{}
	facade.StaleFn = func(ctx context.Context, olderThan time.Time, limit int) ([]int64, error) {
		if atomic.AddInt32(&attempts, 1) == 1 {
			return nil, errors.New("storage unavailable")
		}
		return []int64{5}, nil
	}
	refresher := NewScoreRefresher(facade, 5*time.Millisecond, 1, 1, logger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	refresher.Start(ctx)

	deadline := time.After(time.Second)
	for {
		if len(facade.RefreshedIDs()) > 0 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timeout waiting for recovery after fetch error")
		case <-time.After(10 * time.Millisecond):
		}
	}
	refresher.Stop()
}

func TestScoreRefresherStopBeforeStart(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	refresher := NewScoreRefresher(&testhelpers.WorkerFacadeStub{}, time.Second, 1, 1, logger)
	refresher.Stop()
}
