package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/trollcity/economy/internal/domain/model"
	"github.com/trollcity/economy/internal/usecase"
)

// EconomyFacade aggregates transfer, payout and credit use cases behind the
// single surface consumed by HTTP handlers and background workers.
type EconomyFacade struct {
	transfers *usecase.TransferUseCase
	payouts   *usecase.PayoutUseCase
	credit    *usecase.CreditUseCase
}

func NewEconomyFacade(transfers *usecase.TransferUseCase, payouts *usecase.PayoutUseCase, credit *usecase.CreditUseCase) *EconomyFacade {
	return &EconomyFacade{transfers: transfers, payouts: payouts, credit: credit}
}

func (f *EconomyFacade) Balance(ctx context.Context, userID int64) (int64, error) {
	return f.transfers.Balance(ctx, userID)
}

func (f *EconomyFacade) SendTip(ctx context.Context, senderID, recipientID, amount int64, message string) (*model.TransferResult, error) {
	return f.transfers.SendTip(ctx, senderID, recipientID, amount, message)
}

func (f *EconomyFacade) PayEntryPass(ctx context.Context, userID, broadcasterID int64, streamID string) (*model.TransferResult, error) {
	return f.transfers.PayEntryPass(ctx, userID, broadcasterID, streamID)
}

func (f *EconomyFacade) CheckEntryPass(ctx context.Context, userID, broadcasterID int64) (bool, error) {
	return f.transfers.CheckEntryPass(ctx, userID, broadcasterID)
}

func (f *EconomyFacade) CreatePayout(ctx context.Context, userID, amountCoins int64, currency string, declaredUSD float64) (*model.PayoutRequest, error) {
	return f.payouts.Create(ctx, userID, amountCoins, currency, declaredUSD)
}

func (f *EconomyFacade) ApprovePayout(ctx context.Context, payoutID uuid.UUID, adminID int64) (*model.PayoutRequest, error) {
	return f.payouts.Approve(ctx, payoutID, adminID)
}

func (f *EconomyFacade) Payouts(ctx context.Context, userID int64) ([]model.PayoutRequest, error) {
	return f.payouts.HistoryByUser(ctx, userID)
}

func (f *EconomyFacade) PayoutQuote(coins int64) model.PayoutQuote {
	return usecase.QuoteForCoins(coins)
}

func (f *EconomyFacade) PayoutTiers() []model.Tier {
	return usecase.PayoutTiers()
}

func (f *EconomyFacade) CreditScore(ctx context.Context, userID int64) (*model.CreditScore, error) {
	return f.credit.Score(ctx, userID)
}

func (f *EconomyFacade) StaleCreditScores(ctx context.Context, olderThan time.Time, limit int) ([]int64, error) {
	return f.credit.Stale(ctx, olderThan, limit)
}

func (f *EconomyFacade) RefreshCreditScore(ctx context.Context, userID int64) error {
	return f.credit.Refresh(ctx, userID)
}
