package di

import (
	"go.uber.org/fx"

	"github.com/grocermart/partnersync/internal/app"
	"github.com/grocermart/partnersync/internal/config"
	"github.com/grocermart/partnersync/internal/exchange"
	"github.com/grocermart/partnersync/internal/logger"
	"github.com/grocermart/partnersync/internal/metrics"
	"github.com/grocermart/partnersync/internal/remote"
	"github.com/grocermart/partnersync/internal/server/http/handlers"
	"github.com/grocermart/partnersync/internal/server/http/router"
	"github.com/grocermart/partnersync/internal/simulation"
	"github.com/grocermart/partnersync/internal/storage/postgres"
	"github.com/grocermart/partnersync/internal/storage/redisstore"
	"github.com/grocermart/partnersync/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		postgres.Module,
		redisstore.Module,
		remote.Module,
		simulation.Module,
		exchange.Module,
		usecase.Module,
		fx.Provide(func(facade *app.PartnerFacade) handlers.PartnerFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
