package dto

import "time"

// SimulatedOrderResponse is the HTTP shape of a fulfillment simulation result.
type SimulatedOrderResponse struct {
	ID            string                  `json:"id"`
	SourceOrderID string                  `json:"source_order_id"`
	UserEmail     string                  `json:"user_email"`
	StoreCode     string                  `json:"store_code"`
	Subtotal      float64                 `json:"subtotal"`
	TaxTotal      float64                 `json:"tax_total"`
	FinalTotal    float64                 `json:"final_total"`
	Status        string                  `json:"status"`
	CreatedAt     time.Time               `json:"created_at"`
	Items         []SimulatedItemResponse `json:"items"`
}

// SimulatedItemResponse is one line of a simulated order.
type SimulatedItemResponse struct {
	Position  int     `json:"position"`
	EAN       string  `json:"ean"`
	Ref       string  `json:"ref"`
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	BasePrice float64 `json:"base_price"`
	TaxRate   float64 `json:"tax_rate"`
}
