package redisstore

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/grocermart/partnersync/internal/config"
	"github.com/grocermart/partnersync/internal/domain/repository"
)

// Module wires the Redis-backed simulated-order store.
var Module = fx.Options(
	fx.Provide(newStore),
	fx.Provide(func(s *Store) repository.SimulatedOrderStore { return s }),
	fx.Invoke(registerLifecycle),
)

type storeParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStore(p storeParams) (*Store, error) {
	return New(p.Ctx, p.Config.RedisURI, p.Config.SimulatedOrderTTL, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, store *Store) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return store.Close()
		},
	})
}
