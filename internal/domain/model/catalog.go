package model

import "time"

// Product is a catalog entry identified by its EAN code. TaxRate is
// resolved from the product's tax classification when loaded.
type Product struct {
	EAN             string
	Ref             string
	Title           string
	Description     string
	UnitOfMeasure   string
	QuantityPerUnit float64
	BasePrice       float64
	TaxCode         string
	TaxRate         float64
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Store is a physical store attached to a delivery center.
type Store struct {
	Code               string
	Name               string
	DeliveryCenterCode string
}

// DeliveryCenter is a fulfillment hub serving one or more stores.
type DeliveryCenter struct {
	Code string
	Name string
}

// User is a catalog customer referenced by orders through email.
type User struct {
	Email     string
	Name      string
	CreatedAt time.Time
}

// Tax is a tax classification applied to products.
type Tax struct {
	Code string
	Name string
	Rate float64
}
