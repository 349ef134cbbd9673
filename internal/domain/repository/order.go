package repository

import (
	"context"
	"time"

	"github.com/grocermart/partnersync/internal/domain/model"
)

// OrderRepository describes persistence operations with purchase orders.
type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*model.PurchaseOrder, error)
	GetItems(ctx context.Context, orderID string) ([]model.PurchaseOrderItem, error)
	MarkSentToPartner(ctx context.Context, id string, sentAt time.Time) error
}
