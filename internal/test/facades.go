package test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/trollcity/economy/internal/domain/model"
)

// TransferFacadeStub simulates transfer operations for handler tests.
type TransferFacadeStub struct {
	SendTipFn        func(context.Context, int64, int64, int64, string) (*model.TransferResult, error)
	PayEntryPassFn   func(context.Context, int64, int64, string) (*model.TransferResult, error)
	CheckEntryPassFn func(context.Context, int64, int64) (bool, error)
	BalanceFn        func(context.Context, int64) (int64, error)
}

// SendTip returns the configured result or a generic success.
func (s TransferFacadeStub) SendTip(ctx context.Context, senderID, recipientID, amount int64, message string) (*model.TransferResult, error) {
	if s.SendTipFn != nil {
		return s.SendTipFn(ctx, senderID, recipientID, amount, message)
	}
	return &model.TransferResult{Success: true, TransactionID: uuid.New()}, nil
}

// PayEntryPass returns the configured result or a generic success.
func (s TransferFacadeStub) PayEntryPass(ctx context.Context, userID, broadcasterID int64, streamID string) (*model.TransferResult, error) {
	if s.PayEntryPassFn != nil {
		return s.PayEntryPassFn(ctx, userID, broadcasterID, streamID)
	}
	return &model.TransferResult{Success: true, TransactionID: uuid.New()}, nil
}

// CheckEntryPass reports a valid pass by default.
func (s TransferFacadeStub) CheckEntryPass(ctx context.Context, userID, broadcasterID int64) (bool, error) {
	if s.CheckEntryPassFn != nil {
		return s.CheckEntryPassFn(ctx, userID, broadcasterID)
	}
	return true, nil
}

// Balance returns the configured balance or a fixed value.
func (s TransferFacadeStub) Balance(ctx context.Context, userID int64) (int64, error) {
	if s.BalanceFn != nil {
		return s.BalanceFn(ctx, userID)
	}
	return 1000, nil
}

// PayoutFacadeStub simulates payout operations for handler tests.
type PayoutFacadeStub struct {
	CreatePayoutFn  func(context.Context, int64, int64, string, float64) (*model.PayoutRequest, error)
	ApprovePayoutFn func(context.Context, uuid.UUID, int64) (*model.PayoutRequest, error)
	PayoutsFn       func(context.Context, int64) ([]model.PayoutRequest, error)
	QuoteFn         func(int64) model.PayoutQuote
	TiersFn         func() []model.Tier
}

// CreatePayout returns the configured request or a pending default.
func (s PayoutFacadeStub) CreatePayout(ctx context.Context, userID, amountCoins int64, currency string, declaredUSD float64) (*model.PayoutRequest, error) {
	if s.CreatePayoutFn != nil {
		return s.CreatePayoutFn(ctx, userID, amountCoins, currency, declaredUSD)
	}
	return &model.PayoutRequest{
		ID:          uuid.New(),
		UserID:      userID,
		AmountCoins: amountCoins,
		AmountUSD:   25,
		Currency:    "USD",
		Status:      model.PayoutStatusPending,
		RequestedAt: time.Unix(0, 0),
	}, nil
}

// ApprovePayout returns the configured result or an approved default.
func (s PayoutFacadeStub) ApprovePayout(ctx context.Context, payoutID uuid.UUID, adminID int64) (*model.PayoutRequest, error) {
	if s.ApprovePayoutFn != nil {
		return s.ApprovePayoutFn(ctx, payoutID, adminID)
	}
	now := time.Unix(0, 0)
	return &model.PayoutRequest{
		ID:         payoutID,
		Status:     model.PayoutStatusApproved,
		ApprovedBy: &adminID,
		ApprovedAt: &now,
	}, nil
}

// Payouts returns preconfigured history.
func (s PayoutFacadeStub) Payouts(ctx context.Context, userID int64) ([]model.PayoutRequest, error) {
	if s.PayoutsFn != nil {
		return s.PayoutsFn(ctx, userID)
	}
	return []model.PayoutRequest{{UserID: userID, AmountCoins: 12000, AmountUSD: 25, Status: model.PayoutStatusPending}}, nil
}

// PayoutQuote returns a quote via the override or an eligible default.
func (s PayoutFacadeStub) PayoutQuote(coins int64) model.PayoutQuote {
	if s.QuoteFn != nil {
		return s.QuoteFn(coins)
	}
	return model.PayoutQuote{AmountCoins: coins, Eligible: true}
}

// PayoutTiers returns the configured tier table.
func (s PayoutFacadeStub) PayoutTiers() []model.Tier {
	if s.TiersFn != nil {
		return s.TiersFn()
	}
	return []model.Tier{{Coins: 12000, USD: 25}}
}

// CreditFacadeStub simulates credit score reads.
type CreditFacadeStub struct {
	CreditScoreFn func(context.Context, int64) (*model.CreditScore, error)
}

// CreditScore returns the configured score or the synthesized default.
func (s CreditFacadeStub) CreditScore(ctx context.Context, userID int64) (*model.CreditScore, error) {
	if s.CreditScoreFn != nil {
		return s.CreditScoreFn(ctx, userID)
	}
	return model.DefaultCreditScore(userID), nil
}

// EconomyFacadeStub aggregates all facade stubs for router tests.
type EconomyFacadeStub struct {
	TransferFacadeStub
	PayoutFacadeStub
	CreditFacadeStub
}

// WorkerFacadeStub mimics score refresher interactions with the facade.
type WorkerFacadeStub struct {
	StaleBatches [][]int64
	StaleFn      func(context.Context, time.Time, int) ([]int64, error)
	RefreshFn    func(context.Context, int64) error

	mu             sync.Mutex
	Refreshed      []int64
	staleCallCount int
}

// StaleCreditScores returns batches from the configured queue.
func (s *WorkerFacadeStub) StaleCreditScores(ctx context.Context, olderThan time.Time, limit int) ([]int64, error) {
	if s.StaleFn != nil {
		return s.StaleFn(ctx, olderThan, limit)
	}
	s.mu.Lock()
	call := s.staleCallCount
	s.staleCallCount++
	s.mu.Unlock()
	if call < len(s.StaleBatches) {
		return s.StaleBatches[call], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// RefreshCreditScore records refresh requests.
func (s *WorkerFacadeStub) RefreshCreditScore(ctx context.Context, userID int64) error {
	if s.RefreshFn != nil {
		return s.RefreshFn(ctx, userID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Refreshed = append(s.Refreshed, userID)
	return nil
}

// RefreshedIDs returns a snapshot of recorded refreshes.
func (s *WorkerFacadeStub) RefreshedIDs() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int64, len(s.Refreshed))
	copy(ids, s.Refreshed)
	return ids
}
