package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/trollcity/economy/internal/domain/model"
)

// LedgerRepository is the transactional boundary around coin balances. All
// atomicity guarantees for the economy live here; engines above it hold no
// locks and never retry.
type LedgerRepository interface {
	// Balance returns the current coin balance. A user without a ledger row
	// has balance zero, which is not an error.
	Balance(ctx context.Context, userID int64) (int64, error)

	// ApplyTransfer applies every entry of the transfer or none of them and
	// returns the recorded transaction identifier. Returns
	// ErrInsufficientBalance when the debited account would go negative.
	ApplyTransfer(ctx context.Context, transfer *model.Transfer) (uuid.UUID, error)

	// LatestEntryPass returns the creation time of the newest entry-pass
	// transfer between the pair, or ErrNotFound when none exists.
	LatestEntryPass(ctx context.Context, userID, broadcasterID int64) (time.Time, error)

	// InflowSince sums coins credited to the user after the given moment.
	InflowSince(ctx context.Context, userID int64, since time.Time) (int64, error)
}
