package exchange

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/grocermart/partnersync/internal/domain/repository"
	"github.com/grocermart/partnersync/internal/metrics"
	"github.com/grocermart/partnersync/internal/remote"
)

// Module wires the partner exchange components.
var Module = fx.Provide(
	NewMerger,
	NewArchiver,
	newExporter,
)

type exporterParams struct {
	fx.In

	Channel remote.Channel
	Merger  *Merger
	Logger  *slog.Logger
	Metrics *metrics.Registry

	Orders   repository.OrderRepository
	Products repository.ProductRepository
	Stores   repository.StoreRepository
	Centers  repository.DeliveryCenterRepository
	Users    repository.UserRepository
	Taxes    repository.TaxRepository
}

func newExporter(p exporterParams) *Exporter {
	return NewExporter(ExporterParams{
		Channel:  p.Channel,
		Merger:   p.Merger,
		Logger:   p.Logger,
		Metrics:  p.Metrics,
		Orders:   p.Orders,
		Products: p.Products,
		Stores:   p.Stores,
		Centers:  p.Centers,
		Users:    p.Users,
		Taxes:    p.Taxes,
	})
}
