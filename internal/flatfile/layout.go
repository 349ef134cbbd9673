package flatfile

// Layout declares the column order and natural key of one flat file type.
type Layout struct {
	Entity   string
	KeyField string
	Fields   []string
}

// Consolidated and snapshot layouts exchanged with the partner. Key fields
// follow the remote contract: delivery centers and stores by code, users
// by email, taxes by code, products by ean.
var (
	DeliveryCenters = Layout{
		Entity:   "delivery_centers",
		KeyField: "code",
		Fields:   []string{"code", "name"},
	}

	Stores = Layout{
		Entity:   "stores",
		KeyField: "code",
		Fields:   []string{"code", "name", "delivery_center_code"},
	}

	Users = Layout{
		Entity:   "users",
		KeyField: "email",
		Fields:   []string{"email", "name"},
	}

	Taxes = Layout{
		Entity:   "taxes",
		KeyField: "code",
		Fields:   []string{"code", "name", "rate"},
	}

	Products = Layout{
		Entity:   "products",
		KeyField: "ean",
		Fields: []string{
			"ean", "ref", "title", "description", "unit_of_measure",
			"quantity_per_unit", "base_price", "tax_code", "active",
		},
	}

	// PurchaseOrderDetail carries one row per order line, or a single
	// placeholder row for an order without items.
	PurchaseOrderDetail = Layout{
		Entity:   "purchase_orders",
		KeyField: "purchase_order_id",
		Fields: []string{
			"purchase_order_id", "user_email", "store_id", "status",
			"subtotal", "tax_total", "final_total", "server_sent_at",
			"created_at", "updated_at", "item_ean", "item_ref", "item_title",
			"quantity", "base_price_at_order", "tax_rate_at_order",
		},
	}
)

var layoutsByEntity = map[string]Layout{
	DeliveryCenters.Entity: DeliveryCenters,
	Stores.Entity:          Stores,
	Users.Entity:           Users,
	Taxes.Entity:           Taxes,
	Products.Entity:        Products,
}

// ByEntity resolves a consolidated/snapshot layout from its entity name.
func ByEntity(entity string) (Layout, bool) {
	layout, ok := layoutsByEntity[entity]
	return layout, ok
}

// Entities lists entity names with a declared layout.
func Entities() []string {
	names := make([]string, 0, len(layoutsByEntity))
	for name := range layoutsByEntity {
		names = append(names, name)
	}
	return names
}
