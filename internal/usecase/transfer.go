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
	// EntryPassCost is the fixed price of access to a gated stream.
	EntryPassCost int64 = 300
	// EntryPassBroadcasterShare goes to the broadcaster.
	EntryPassBroadcasterShare int64 = 225
	// EntryPassBankShare goes to the platform bank account.
	EntryPassBankShare int64 = 75
	// EntryPassValidity is how long a purchased pass stays valid.
	EntryPassValidity = 24 * time.Hour
)

// TransferUseCase moves coins between accounts. Every movement is a single
// atomic unit handed to the ledger; partial application cannot happen here.
type TransferUseCase struct {
	ledger repository.LedgerRepository
	bankID int64
}

// NewTransferUseCase constructs TransferUseCase. bankID is the platform bank
// ledger account that collects entry-pass shares.
func NewTransferUseCase(ledger repository.LedgerRepository, bankID int64) *TransferUseCase {
	return &TransferUseCase{ledger: ledger, bankID: bankID}
}

// Balance reads the user's current coin balance.
func (u *TransferUseCase) Balance(ctx context.Context, userID int64) (int64, error) {
	balance, err := u.ledger.Balance(ctx, userID)
	if err != nil {
		return 0, domainErrors.NewAccessorError("read balance", err)
	}
	return balance, nil
}

// SendTip moves amount coins from sender to recipient. Validation failures
// are raised before any ledger call; ledger failures come back inside the
// result object.
func (u *TransferUseCase) SendTip(ctx context.Context, senderID, recipientID, amount int64, message string) (*model.TransferResult, error) {
	if amount <= 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	if senderID == 0 || recipientID == 0 {
		return nil, domainErrors.ErrMissingField
	}
	if senderID == recipientID {
		return nil, domainErrors.ErrSelfTransfer
	}

	transfer := &model.Transfer{
		Kind:     model.TransferKindTip,
		SenderID: senderID,
		Message:  message,
		Entries: []model.LedgerEntry{
			{Account: senderID, Delta: -amount},
			{Account: recipientID, Delta: amount},
		},
	}
	return u.apply(ctx, transfer), nil
}

// PayEntryPass charges the fixed pass price and splits it between the
// broadcaster and the platform bank in one atomic transfer.
func (u *TransferUseCase) PayEntryPass(ctx context.Context, userID, broadcasterID int64, streamID string) (*model.TransferResult, error) {
	if userID == 0 || broadcasterID == 0 {
		return nil, domainErrors.ErrMissingField
	}
	if userID == broadcasterID {
		return nil, domainErrors.ErrSelfTransfer
	}

	transfer := &model.Transfer{
		Kind:     model.TransferKindEntryPass,
		SenderID: userID,
		StreamID: streamID,
		Entries: []model.LedgerEntry{
			{Account: userID, Delta: -EntryPassCost},
			{Account: broadcasterID, Delta: EntryPassBroadcasterShare},
			{Account: u.bankID, Delta: EntryPassBankShare},
		},
	}
	return u.apply(ctx, transfer), nil
}

// CheckEntryPass reports whether a completed entry-pass purchase between the
// pair exists strictly younger than the validity window.
func (u *TransferUseCase) CheckEntryPass(ctx context.Context, userID, broadcasterID int64) (bool, error) {
	createdAt, err := u.ledger.LatestEntryPass(ctx, userID, broadcasterID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return false, nil
		}
		return false, domainErrors.NewAccessorError("lookup entry pass", err)
	}
	return time.Since(createdAt) < EntryPassValidity, nil
}

// apply hands the transfer to the ledger and folds any failure into the
// result object. Economic operations report success or failure, never a
// partial outcome and never a raised store error.
func (u *TransferUseCase) apply(ctx context.Context, transfer *model.Transfer) *model.TransferResult {
	txID, err := u.ledger.ApplyTransfer(ctx, transfer)
	if err != nil {
		return &model.TransferResult{Error: err.Error()}
	}
	return &model.TransferResult{Success: true, TransactionID: txID}
}
