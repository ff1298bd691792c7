package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/trollcity/economy/internal/app"
	"github.com/trollcity/economy/internal/config"
	"github.com/trollcity/economy/internal/domain/repository"
	"github.com/trollcity/economy/internal/storage/postgres"
	"github.com/trollcity/economy/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:           ":0",
		DatabaseURI:          "postgres://stub",
		BankAccountID:        1,
		ScoreRefreshInterval: time.Millisecond,
		ScoreBatchSize:       1,
		WorkerPoolSize:       1,
		ShutdownTimeout:      time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	ledgerRepo := &test.LedgerRepositoryStub{}
	payoutRepo := &test.PayoutRepositoryStub{}
	scoreRepo := &test.CreditScoreRepositoryStub{}

	var facade *app.EconomyFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.LedgerRepository(ledgerRepo)),
			fx.Replace(repository.PayoutRepository(payoutRepo)),
			fx.Replace(repository.CreditScoreRepository(scoreRepo)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected economy facade instance")
	}
}
