package usecase

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"

	domainErrors "github.com/trollcity/economy/internal/domain/errors"
	"github.com/trollcity/economy/internal/domain/model"
	"github.com/trollcity/economy/internal/domain/repository"
)

// usdReconcileTolerance bounds the accepted drift between a client-declared
// USD amount and the server-computed one.
const usdReconcileTolerance = 0.01

// DefaultPayoutCurrency is used when a request does not name a currency.
const DefaultPayoutCurrency = "USD"

// PayoutUseCase validates withdrawal requests against tier rules and balance
// and drives the approval lifecycle.
type PayoutUseCase struct {
	payouts repository.PayoutRepository
	ledger  repository.LedgerRepository
}

// NewPayoutUseCase constructs PayoutUseCase.
func NewPayoutUseCase(payouts repository.PayoutRepository, ledger repository.LedgerRepository) *PayoutUseCase {
	return &PayoutUseCase{payouts: payouts, ledger: ledger}
}

// Create inserts a pending payout request. The USD amount is always
// recomputed server-side from the tier table; declaredUSD, when non-zero, is
// only reconciled against it and rejected on mismatch. The user's coin
// balance is checked but not debited.
func (u *PayoutUseCase) Create(ctx context.Context, userID, amountCoins int64, currency string, declaredUSD float64) (*model.PayoutRequest, error) {
	if userID == 0 {
		return nil, domainErrors.ErrMissingField
	}
	if amountCoins <= 0 {
		return nil, domainErrors.ErrInvalidAmount
	}

	tier, ok := TierForCoins(amountCoins)
	if !ok {
		return nil, domainErrors.ErrBelowMinimumPayout
	}

	gross := float64(amountCoins) * tier.Rate()
	if declaredUSD != 0 && math.Abs(declaredUSD-gross) > usdReconcileTolerance {
		return nil, domainErrors.ErrAmountMismatch
	}

	if currency == "" {
		currency = DefaultPayoutCurrency
	}

	balance, err := u.ledger.Balance(ctx, userID)
	if err != nil {
		return nil, domainErrors.NewAccessorError("read balance", err)
	}
	if balance < amountCoins {
		return nil, domainErrors.ErrInsufficientBalance
	}

	request := &model.PayoutRequest{
		UserID:       userID,
		AmountCoins:  amountCoins,
		AmountUSD:    gross,
		Currency:     currency,
		Status:       model.PayoutStatusPending,
		ManualReview: tier.ManualReview,
	}

	created, err := u.payouts.Create(ctx, request)
	if err != nil {
		return nil, domainErrors.NewAccessorError("insert payout request", err)
	}
	return created, nil
}

// Approve transitions a pending request to approved on behalf of an
// administrator. Errors propagate to the admin-facing caller as-is.
func (u *PayoutUseCase) Approve(ctx context.Context, payoutID uuid.UUID, adminID int64) (*model.PayoutRequest, error) {
	if adminID == 0 {
		return nil, domainErrors.ErrMissingField
	}

	approved, err := u.payouts.Approve(ctx, payoutID, adminID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) ||
			errors.Is(err, domainErrors.ErrInvalidState) ||
			errors.Is(err, domainErrors.ErrInsufficientBalance) {
			return nil, err
		}
		return nil, domainErrors.NewAccessorError("approve payout request", err)
	}
	return approved, nil
}

// HistoryByUser returns the user's payout requests, newest first.
func (u *PayoutUseCase) HistoryByUser(ctx context.Context, userID int64) ([]model.PayoutRequest, error) {
	return u.payouts.ListByUser(ctx, userID)
}
