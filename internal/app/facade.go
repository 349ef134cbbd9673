package app

import (
	"context"

	"github.com/grocermart/partnersync/internal/domain/model"
	"github.com/grocermart/partnersync/internal/exchange"
	"github.com/grocermart/partnersync/internal/storage/postgres"
	"github.com/grocermart/partnersync/internal/usecase"
)

// PartnerFacade is the single entry point the HTTP layer talks to: order
// simulations plus the outbound partner file exchange.
type PartnerFacade struct {
	simulations *usecase.SimulationUseCase
	exporter    *exchange.Exporter
	archiver    *exchange.Archiver
	storage     *postgres.Storage
}

// NewPartnerFacade constructs PartnerFacade.
func NewPartnerFacade(simulations *usecase.SimulationUseCase, exporter *exchange.Exporter, archiver *exchange.Archiver, storage *postgres.Storage) *PartnerFacade {
	return &PartnerFacade{
		simulations: simulations,
		exporter:    exporter,
		archiver:    archiver,
		storage:     storage,
	}
}

func (f *PartnerFacade) Simulate(ctx context.Context, orderID string) (*model.SimulatedOrder, error) {
	return f.simulations.Simulate(ctx, orderID)
}

func (f *PartnerFacade) Simulation(ctx context.Context, id string) (*model.SimulatedOrder, error) {
	return f.simulations.Get(ctx, id)
}

func (f *PartnerFacade) CleanupSimulation(ctx context.Context, id string) error {
	return f.simulations.Cleanup(ctx, id)
}

func (f *PartnerFacade) CleanupSimulations(ctx context.Context) error {
	return f.simulations.CleanupAll(ctx)
}

func (f *PartnerFacade) SendOrder(ctx context.Context, orderID string) error {
	return f.exporter.SendOrder(ctx, orderID)
}

func (f *PartnerFacade) ExportSnapshot(ctx context.Context, entity string) error {
	return f.exporter.ExportSnapshot(ctx, entity)
}

func (f *PartnerFacade) SyncEntity(ctx context.Context, entity, key string) error {
	return f.exporter.SyncEntity(ctx, entity, key)
}

func (f *PartnerFacade) ArchiveImport(ctx context.Context, entity, remotePath string) error {
	return f.archiver.Archive(ctx, entity, remotePath)
}

func (f *PartnerFacade) Healthy(ctx context.Context) error {
	return f.storage.HealthCheck(ctx)
}
