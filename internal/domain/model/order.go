package model

import "time"

// OrderStatus describes fulfillment lifecycle of a purchase order.
type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "PLACED"
	OrderStatusSent      OrderStatus = "SENT"
	OrderStatusFulfilled OrderStatus = "FULFILLED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// PurchaseOrder is an authoritative, persisted customer order.
// It is never mutated by simulation.
type PurchaseOrder struct {
	ID           string
	UserEmail    string
	StoreCode    string
	Status       OrderStatus
	Subtotal     float64
	TaxTotal     float64
	FinalTotal   float64
	ServerSentAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PurchaseOrderItem is one line of a purchase order. Position is the
// 1-based line number within the order.
type PurchaseOrderItem struct {
	OrderID         string
	Position        int
	EAN             string
	Ref             string
	Title           string
	Description     string
	UnitOfMeasure   string
	QuantityPerUnit float64
	Quantity        int
	BasePrice       float64
	TaxRate         float64
}

// LineSubtotal returns quantity times price at order time.
func (i PurchaseOrderItem) LineSubtotal() float64 {
	return float64(i.Quantity) * i.BasePrice
}

// LineTax returns the tax amount of the line.
func (i PurchaseOrderItem) LineTax() float64 {
	return i.LineSubtotal() * i.TaxRate
}
