package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/trollcity/economy/internal/domain/errors"
	"github.com/trollcity/economy/internal/domain/model"
	testhelpers "github.com/trollcity/economy/internal/test"
)

func newPayoutUseCase(balance int64) (*PayoutUseCase, *testhelpers.PayoutRepositoryStub, *testhelpers.LedgerRepositoryStub) {
	payouts := &testhelpers.PayoutRepositoryStub{}
	ledger := &testhelpers.LedgerRepositoryStub{Balances: map[int64]int64{1: balance}}
	return NewPayoutUseCase(payouts, ledger), payouts, ledger
}

func TestPayoutCreateValidation(t *testing.T) {
	uc, _, _ := newPayoutUseCase(1000000)

	_, err := uc.Create(context.Background(), 0, 12000, "", 0)
	assert.ErrorIs(t, err, domainErrors.ErrMissingField)

	_, err = uc.Create(context.Background(), 1, 0, "", 0)
	assert.ErrorIs(t, err, domainErrors.ErrInvalidAmount)

	_, err = uc.Create(context.Background(), 1, -500, "", 0)
	assert.ErrorIs(t, err, domainErrors.ErrInvalidAmount)

	_, err = uc.Create(context.Background(), 1, 11999, "", 0)
	assert.ErrorIs(t, err, domainErrors.ErrBelowMinimumPayout)
}

func TestPayoutCreateRecomputesUSDServerSide(t *testing.T) {
	uc, _, _ := newPayoutUseCase(1000000)

	created, err := uc.Create(context.Background(), 1, 26375, "", 0)
	require.NoError(t, err)
	assert.InDelta(t, 70.0, created.AmountUSD, 1e-9)
	assert.Equal(t, "USD", created.Currency)
	assert.Equal(t, model.PayoutStatusPending, created.Status)
	assert.False(t, created.ManualReview)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestPayoutCreateReconcilesDeclaredUSD(t *testing.T) {
	uc, _, _ := newPayoutUseCase(1000000)

	// A matching declared amount is accepted.
	created, err := uc.Create(context.Background(), 1, 26375, "USD", 70.0)
	require.NoError(t, err)
	assert.InDelta(t, 70.0, created.AmountUSD, 1e-9)

	// A drifting one is rejected before anything is persisted.
	_, err = uc.Create(context.Background(), 1, 26375, "USD", 80.0)
	assert.ErrorIs(t, err, domainErrors.ErrAmountMismatch)
}

func TestPayoutCreateFlagsManualReviewWithoutBlocking(t *testing.T) {
	uc, _, _ := newPayoutUseCase(1000000)

	created, err := uc.Create(context.Background(), 1, 120000, "", 0)
	require.NoError(t, err)
	assert.True(t, created.ManualReview)
	assert.InDelta(t, 355.0, created.AmountUSD, 1e-9)
	assert.Equal(t, model.PayoutStatusPending, created.Status, "manual review must not block creation")
}

func TestPayoutCreateChecksBalanceButDoesNotDebit(t *testing.T) {
	uc, _, ledger := newPayoutUseCase(11000)

	_, err := uc.Create(context.Background(), 1, 12000, "", 0)
	assert.ErrorIs(t, err, domainErrors.ErrInsufficientBalance)

	ledger.Balances[1] = 50000
	_, err = uc.Create(context.Background(), 1, 12000, "", 0)
	require.NoError(t, err)
	assert.EqualValues(t, 50000, ledger.Balances[1], "creation must not debit the balance")
}

func TestPayoutCreateWrapsAccessorFailures(t *testing.T) {
	payouts := &testhelpers.PayoutRepositoryStub{}
	ledger := &testhelpers.LedgerRepositoryStub{
		BalanceFn: func(context.Context, int64) (int64, error) {
			return 0, errors.New("connection refused")
		},
	}
	uc := NewPayoutUseCase(payouts, ledger)

	_, err := uc.Create(context.Background(), 1, 12000, "", 0)
	assert.True(t, domainErrors.IsAccessor(err), "expected accessor error, got %v", err)
}

func TestPayoutApprove(t *testing.T) {
	uc, payouts, _ := newPayoutUseCase(1000000)

	created, err := uc.Create(context.Background(), 1, 12000, "", 0)
	require.NoError(t, err)

	approved, err := uc.Approve(context.Background(), created.ID, 42)
	require.NoError(t, err)
	assert.Equal(t, model.PayoutStatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.EqualValues(t, 42, *approved.ApprovedBy)
	assert.NotNil(t, approved.ApprovedAt)

	// Approving twice is an illegal transition and leaves the record as-is.
	_, err = uc.Approve(context.Background(), created.ID, 42)
	assert.ErrorIs(t, err, domainErrors.ErrInvalidState)
	stored := payouts.Requests[created.ID]
	assert.Equal(t, model.PayoutStatusApproved, stored.Status)
	assert.EqualValues(t, 42, *stored.ApprovedBy)
}

func TestPayoutApproveErrors(t *testing.T) {
	uc, _, _ := newPayoutUseCase(1000000)

	_, err := uc.Approve(context.Background(), uuid.New(), 0)
	assert.ErrorIs(t, err, domainErrors.ErrMissingField)

	_, err = uc.Approve(context.Background(), uuid.New(), 42)
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)

	broken := NewPayoutUseCase(&testhelpers.PayoutRepositoryStub{
		ApproveFn: func(context.Context, uuid.UUID, int64) (*model.PayoutRequest, error) {
			return nil, errors.New("store offline")
		},
	}, &testhelpers.LedgerRepositoryStub{})
	_, err = broken.Approve(context.Background(), uuid.New(), 42)
	assert.True(t, domainErrors.IsAccessor(err), "expected accessor error, got %v", err)
}

func TestPayoutHistoryByUser(t *testing.T) {
	uc, _, _ := newPayoutUseCase(1000000)

	_, err := uc.Create(context.Background(), 1, 12000, "", 0)
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), 1, 26375, "", 0)
	require.NoError(t, err)

	history, err := uc.HistoryByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}
