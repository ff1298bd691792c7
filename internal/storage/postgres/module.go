package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/trollcity/economy/internal/config"
	"github.com/trollcity/economy/internal/domain/repository"
)

// Module wires PostgreSQL storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.LedgerRepository { return s.Ledger() },
		func(s *Storage) repository.PayoutRepository { return s.Payouts() },
		func(s *Storage) repository.CreditScoreRepository { return s.CreditScores() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
