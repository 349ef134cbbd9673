package repository

import (
	"context"

	"github.com/grocermart/partnersync/internal/domain/model"
)

// ProductRepository provides access to the catalog product collection.
// TaxRate on returned products is resolved from the tax classification.
type ProductRepository interface {
	ListAll(ctx context.Context) ([]model.Product, error)
	ListActive(ctx context.Context) ([]model.Product, error)
	GetByEAN(ctx context.Context, ean string) (*model.Product, error)
}

// StoreRepository provides access to stores and their delivery-center linkage.
type StoreRepository interface {
	ListAll(ctx context.Context) ([]model.Store, error)
	GetByCode(ctx context.Context, code string) (*model.Store, error)
}

// DeliveryCenterRepository provides access to fulfillment hubs.
type DeliveryCenterRepository interface {
	ListAll(ctx context.Context) ([]model.DeliveryCenter, error)
	GetByCode(ctx context.Context, code string) (*model.DeliveryCenter, error)
}

// UserRepository provides access to catalog customers.
type UserRepository interface {
	ListAll(ctx context.Context) ([]model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// TaxRepository provides access to tax classifications.
type TaxRepository interface {
	ListAll(ctx context.Context) ([]model.Tax, error)
	GetByCode(ctx context.Context, code string) (*model.Tax, error)
}
