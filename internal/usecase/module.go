package usecase

import (
	"go.uber.org/fx"

	"github.com/trollcity/economy/internal/config"
	"github.com/trollcity/economy/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewPayoutUseCase,
	NewCreditUseCase,
	newTransferUseCase,
)

func newTransferUseCase(ledger repository.LedgerRepository, cfg *config.Config) *TransferUseCase {
	return NewTransferUseCase(ledger, cfg.BankAccountID)
}
