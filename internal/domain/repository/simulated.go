package repository

import (
	"context"

	"github.com/grocermart/partnersync/internal/domain/model"
)

// SimulatedOrderStore holds ephemeral simulated orders. Entries expire on
// their own after the configured TTL; Delete and DeleteAll are idempotent.
type SimulatedOrderStore interface {
	Save(ctx context.Context, order *model.SimulatedOrder) error
	Get(ctx context.Context, id string) (*model.SimulatedOrder, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}
