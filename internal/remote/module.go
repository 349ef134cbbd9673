package remote

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/grocermart/partnersync/internal/config"
)

// Module exposes the remote channel implementation to the fx graph.
var Module = fx.Provide(newChannel)

type channelParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newChannel(p channelParams) (Channel, error) {
	return NewSFTPChannel(Config{
		Address:     p.Config.SFTPAddress,
		User:        p.Config.SFTPUser,
		Password:    p.Config.SFTPPassword,
		DialTimeout: p.Config.SFTPDialTimeout,
	}, p.Logger)
}
