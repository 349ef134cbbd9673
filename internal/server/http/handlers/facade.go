package handlers

import (
	"context"

	"github.com/grocermart/partnersync/internal/domain/model"
)

// SimulationFacade exposes order simulation operations to handlers.
type SimulationFacade interface {
	Simulate(ctx context.Context, orderID string) (*model.SimulatedOrder, error)
	Simulation(ctx context.Context, id string) (*model.SimulatedOrder, error)
	CleanupSimulation(ctx context.Context, id string) error
	CleanupSimulations(ctx context.Context) error
}

// ExchangeFacade exposes outbound partner file operations to handlers.
type ExchangeFacade interface {
	SendOrder(ctx context.Context, orderID string) error
	ExportSnapshot(ctx context.Context, entity string) error
	SyncEntity(ctx context.Context, entity, key string) error
	ArchiveImport(ctx context.Context, entity, remotePath string) error
}

// HealthFacade reports backing store health.
type HealthFacade interface {
	Healthy(ctx context.Context) error
}

// PartnerFacade aggregates the full set of operations used across handlers.
type PartnerFacade interface {
	SimulationFacade
	ExchangeFacade
	HealthFacade
}
