package model

import "time"

// SimulatedOrder is a non-authoritative, ephemeral projection of a
// purchase order after applying the fulfillment-variance policy. It lives
// only in the scratch store and must never be promoted into the
// authoritative order table. SourceOrderID is informational; deleting the
// source order does not cascade here.
type SimulatedOrder struct {
	ID            string               `json:"id"`
	SourceOrderID string               `json:"source_order_id"`
	UserEmail     string               `json:"user_email"`
	StoreCode     string               `json:"store_code"`
	Status        OrderStatus          `json:"status"`
	Subtotal      float64              `json:"subtotal"`
	TaxTotal      float64              `json:"tax_total"`
	FinalTotal    float64              `json:"final_total"`
	CreatedAt     time.Time            `json:"created_at"`
	Items         []SimulatedOrderItem `json:"items"`
}

// SimulatedOrderItem mirrors PurchaseOrderItem but may reference a
// substituted product.
type SimulatedOrderItem struct {
	OrderID         string  `json:"order_id"`
	Position        int     `json:"position"`
	EAN             string  `json:"ean"`
	Ref             string  `json:"ref"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	UnitOfMeasure   string  `json:"unit_of_measure"`
	QuantityPerUnit float64 `json:"quantity_per_unit"`
	Quantity        int     `json:"quantity"`
	BasePrice       float64 `json:"base_price"`
	TaxRate         float64 `json:"tax_rate"`
}

// LineSubtotal returns quantity times price at order time.
func (i SimulatedOrderItem) LineSubtotal() float64 {
	return float64(i.Quantity) * i.BasePrice
}

// LineTax returns the tax amount of the line.
func (i SimulatedOrderItem) LineTax() float64 {
	return i.LineSubtotal() * i.TaxRate
}
