package test

import (
	"context"
	"sync"
	"time"

	domainErrors "github.com/grocermart/partnersync/internal/domain/errors"
	"github.com/grocermart/partnersync/internal/domain/model"
)

// OrderRepositoryStub provides controllable purchase-order persistence.
type OrderRepositoryStub struct {
	GetByIDFn  func(context.Context, string) (*model.PurchaseOrder, error)
	GetItemsFn func(context.Context, string) ([]model.PurchaseOrderItem, error)
	MarkSentFn func(context.Context, string, time.Time) error

	MarkedSent []string
}

// GetByID delegates to the override or reports a missing order.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.PurchaseOrder, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

// GetItems delegates to the override or returns no items.
func (s *OrderRepositoryStub) GetItems(ctx context.Context, orderID string) ([]model.PurchaseOrderItem, error) {
	if s.GetItemsFn != nil {
		return s.GetItemsFn(ctx, orderID)
	}
	return nil, nil
}

// MarkSentToPartner records the stamped order ID.
func (s *OrderRepositoryStub) MarkSentToPartner(ctx context.Context, id string, sentAt time.Time) error {
	s.MarkedSent = append(s.MarkedSent, id)
	if s.MarkSentFn != nil {
		return s.MarkSentFn(ctx, id, sentAt)
	}
	return nil
}

// ProductRepositoryStub serves a fixed product list.
type ProductRepositoryStub struct {
	Products  []model.Product
	ListErr   error
	GetByEANF func(context.Context, string) (*model.Product, error)
}

// ListAll returns the configured products.
func (s *ProductRepositoryStub) ListAll(ctx context.Context) ([]model.Product, error) {
	return s.Products, s.ListErr
}

// ListActive filters the configured products by the Active flag.
func (s *ProductRepositoryStub) ListActive(ctx context.Context) ([]model.Product, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	var active []model.Product
	for _, p := range s.Products {
		if p.Active {
			active = append(active, p)
		}
	}
	return active, nil
}

// GetByEAN delegates to the override or scans the configured list.
func (s *ProductRepositoryStub) GetByEAN(ctx context.Context, ean string) (*model.Product, error) {
	if s.GetByEANF != nil {
		return s.GetByEANF(ctx, ean)
	}
	for i := range s.Products {
		if s.Products[i].EAN == ean {
			return &s.Products[i], nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// StoreRepositoryStub serves a fixed store list.
type StoreRepositoryStub struct {
	Stores  []model.Store
	ListErr error
}

// ListAll returns the configured stores.
func (s *StoreRepositoryStub) ListAll(ctx context.Context) ([]model.Store, error) {
	return s.Stores, s.ListErr
}

// GetByCode scans the configured list by store code.
func (s *StoreRepositoryStub) GetByCode(ctx context.Context, code string) (*model.Store, error) {
	for i := range s.Stores {
		if s.Stores[i].Code == code {
			return &s.Stores[i], nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// DeliveryCenterRepositoryStub serves a fixed delivery-center list.
type DeliveryCenterRepositoryStub struct {
	Centers []model.DeliveryCenter
	ListErr error
}

// ListAll returns the configured delivery centers.
func (s *DeliveryCenterRepositoryStub) ListAll(ctx context.Context) ([]model.DeliveryCenter, error) {
	return s.Centers, s.ListErr
}

// GetByCode scans the configured list by center code.
func (s *DeliveryCenterRepositoryStub) GetByCode(ctx context.Context, code string) (*model.DeliveryCenter, error) {
	for i := range s.Centers {
		if s.Centers[i].Code == code {
			return &s.Centers[i], nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// UserRepositoryStub serves a fixed user list.
type UserRepositoryStub struct {
	Users   []model.User
	ListErr error
}

// ListAll returns the configured users.
func (s *UserRepositoryStub) ListAll(ctx context.Context) ([]model.User, error) {
	return s.Users, s.ListErr
}

// GetByEmail scans the configured list by email.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for i := range s.Users {
		if s.Users[i].Email == email {
			return &s.Users[i], nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// TaxRepositoryStub serves a fixed tax list.
type TaxRepositoryStub struct {
	Taxes   []model.Tax
	ListErr error
}

// ListAll returns the configured taxes.
func (s *TaxRepositoryStub) ListAll(ctx context.Context) ([]model.Tax, error) {
	return s.Taxes, s.ListErr
}

// GetByCode scans the configured list by tax code.
func (s *TaxRepositoryStub) GetByCode(ctx context.Context, code string) (*model.Tax, error) {
	for i := range s.Taxes {
		if s.Taxes[i].Code == code {
			return &s.Taxes[i], nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// SimulatedOrderStoreStub keeps simulated orders in a map.
type SimulatedOrderStoreStub struct {
	mu     sync.Mutex
	orders map[string]model.SimulatedOrder

	SaveErr error
}

// NewSimulatedOrderStoreStub builds an empty in-memory store.
func NewSimulatedOrderStoreStub() *SimulatedOrderStoreStub {
	return &SimulatedOrderStoreStub{orders: make(map[string]model.SimulatedOrder)}
}

// Save stores the simulated order under its ID.
func (s *SimulatedOrderStoreStub) Save(ctx context.Context, order *model.SimulatedOrder) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[order.ID] = *order
	return nil
}

// Get fetches a simulated order or reports it missing.
func (s *SimulatedOrderStoreStub) Get(ctx context.Context, id string) (*model.SimulatedOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &order, nil
}

// Delete removes a simulated order; missing IDs are not an error.
func (s *SimulatedOrderStoreStub) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.orders, id)
	return nil
}

// DeleteAll drops every stored simulated order.
func (s *SimulatedOrderStoreStub) DeleteAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = make(map[string]model.SimulatedOrder)
	return nil
}

// Len reports how many simulated orders are stored.
func (s *SimulatedOrderStoreStub) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}
