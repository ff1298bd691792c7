package di

import (
	"go.uber.org/fx"

	"github.com/trollcity/economy/internal/app"
	"github.com/trollcity/economy/internal/config"
	"github.com/trollcity/economy/internal/logger"
	"github.com/trollcity/economy/internal/server/http/handlers"
	"github.com/trollcity/economy/internal/server/http/router"
	"github.com/trollcity/economy/internal/storage/postgres"
	"github.com/trollcity/economy/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(facade *app.EconomyFacade) handlers.EconomyFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
