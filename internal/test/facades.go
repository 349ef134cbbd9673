package test

import (
	"context"

	"github.com/grocermart/partnersync/internal/domain/model"
)

// PartnerFacadeStub provides controllable behaviour for HTTP endpoints.
type PartnerFacadeStub struct {
	SimulateFn           func(context.Context, string) (*model.SimulatedOrder, error)
	SimulationFn         func(context.Context, string) (*model.SimulatedOrder, error)
	CleanupSimulationFn  func(context.Context, string) error
	CleanupSimulationsFn func(context.Context) error
	SendOrderFn          func(context.Context, string) error
	ExportSnapshotFn     func(context.Context, string) error
	SyncEntityFn         func(context.Context, string, string) error
	ArchiveImportFn      func(context.Context, string, string) error
	HealthyFn            func(context.Context) error
}

// Simulate delegates to the override or returns a minimal result.
func (s *PartnerFacadeStub) Simulate(ctx context.Context, orderID string) (*model.SimulatedOrder, error) {
	if s.SimulateFn != nil {
		return s.SimulateFn(ctx, orderID)
	}
	return &model.SimulatedOrder{ID: "DC1-000101000000-AAAA", SourceOrderID: orderID}, nil
}

// Simulation delegates to the override or returns a minimal result.
func (s *PartnerFacadeStub) Simulation(ctx context.Context, id string) (*model.SimulatedOrder, error) {
	if s.SimulationFn != nil {
		return s.SimulationFn(ctx, id)
	}
	return &model.SimulatedOrder{ID: id}, nil
}

// CleanupSimulation delegates to the override or succeeds.
func (s *PartnerFacadeStub) CleanupSimulation(ctx context.Context, id string) error {
	if s.CleanupSimulationFn != nil {
		return s.CleanupSimulationFn(ctx, id)
	}
	return nil
}

// CleanupSimulations delegates to the override or succeeds.
func (s *PartnerFacadeStub) CleanupSimulations(ctx context.Context) error {
	if s.CleanupSimulationsFn != nil {
		return s.CleanupSimulationsFn(ctx)
	}
	return nil
}

// SendOrder delegates to the override or succeeds.
func (s *PartnerFacadeStub) SendOrder(ctx context.Context, orderID string) error {
	if s.SendOrderFn != nil {
		return s.SendOrderFn(ctx, orderID)
	}
	return nil
}

// ExportSnapshot delegates to the override or succeeds.
func (s *PartnerFacadeStub) ExportSnapshot(ctx context.Context, entity string) error {
	if s.ExportSnapshotFn != nil {
		return s.ExportSnapshotFn(ctx, entity)
	}
	return nil
}

// SyncEntity delegates to the override or succeeds.
func (s *PartnerFacadeStub) SyncEntity(ctx context.Context, entity, key string) error {
	if s.SyncEntityFn != nil {
		return s.SyncEntityFn(ctx, entity, key)
	}
	return nil
}

// ArchiveImport delegates to the override or succeeds.
func (s *PartnerFacadeStub) ArchiveImport(ctx context.Context, entity, remotePath string) error {
	if s.ArchiveImportFn != nil {
		return s.ArchiveImportFn(ctx, entity, remotePath)
	}
	return nil
}

// Healthy delegates to the override or reports a healthy store.
func (s *PartnerFacadeStub) Healthy(ctx context.Context) error {
	if s.HealthyFn != nil {
		return s.HealthyFn(ctx)
	}
	return nil
}
