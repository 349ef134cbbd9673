package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/grocermart/partnersync/internal/domain/model"
	"github.com/grocermart/partnersync/internal/domain/repository"
	"github.com/grocermart/partnersync/internal/metrics"
	"github.com/grocermart/partnersync/internal/simulation"
)

// SimulationUseCase runs partner fulfillment simulations over stored
// purchase orders and keeps the results until they expire or are cleaned.
type SimulationUseCase struct {
	engine  *simulation.Engine
	orders  repository.OrderRepository
	stores  repository.StoreRepository
	centers repository.DeliveryCenterRepository
	catalog repository.ProductRepository
	results repository.SimulatedOrderStore
	rnd     simulation.Rand
	logger  *slog.Logger
	metrics *metrics.Registry

	now func() time.Time
}

// NewSimulationUseCase constructs SimulationUseCase.
func NewSimulationUseCase(
	orders repository.OrderRepository,
	stores repository.StoreRepository,
	centers repository.DeliveryCenterRepository,
	catalog repository.ProductRepository,
	results repository.SimulatedOrderStore,
	rnd simulation.Rand,
	logger *slog.Logger,
	registry *metrics.Registry,
) *SimulationUseCase {
	return &SimulationUseCase{
		engine:  simulation.NewEngine(rnd),
		orders:  orders,
		stores:  stores,
		centers: centers,
		catalog: catalog,
		results: results,
		rnd:     rnd,
		logger:  logger,
		metrics: registry,
		now:     time.Now,
	}
}

// Simulate runs the fulfillment policy over the order's items and stores
// the resulting simulated order. The simulated ID carries the delivery
// center code of the order's store.
func (u *SimulationUseCase) Simulate(ctx context.Context, orderID string) (*model.SimulatedOrder, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	items, err := u.orders.GetItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	store, err := u.stores.GetByCode(ctx, order.StoreCode)
	if err != nil {
		return nil, fmt.Errorf("resolve store %s: %w", order.StoreCode, err)
	}
	center, err := u.centers.GetByCode(ctx, store.DeliveryCenterCode)
	if err != nil {
		return nil, fmt.Errorf("resolve delivery center %s: %w", store.DeliveryCenterCode, err)
	}

	candidates, err := u.catalog.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	at := u.now()
	simulated := u.engine.Run(simulation.OrderID(center.Code, at, u.rnd), order, items, candidates, at)
	if err := u.results.Save(ctx, simulated); err != nil {
		return nil, err
	}

	u.metrics.SimulationsRun.Inc()
	u.logger.Info("order simulated",
		slog.String("order", order.ID),
		slog.String("simulated", simulated.ID),
		slog.Int("items", len(simulated.Items)))
	return simulated, nil
}

// Get fetches a stored simulated order by its generated ID.
func (u *SimulationUseCase) Get(ctx context.Context, id string) (*model.SimulatedOrder, error) {
	return u.results.Get(ctx, id)
}

// Cleanup removes one simulated order. Removing an absent or already
// expired result succeeds.
func (u *SimulationUseCase) Cleanup(ctx context.Context, id string) error {
	if err := u.results.Delete(ctx, id); err != nil {
		return err
	}
	u.metrics.SimulationsCleaned.Inc()
	return nil
}

// CleanupAll removes every stored simulated order.
func (u *SimulationUseCase) CleanupAll(ctx context.Context) error {
	if err := u.results.DeleteAll(ctx); err != nil {
		return err
	}
	u.metrics.SimulationsCleaned.Inc()
	u.logger.Info("all simulated orders cleaned")
	return nil
}
