package exchange

import (
	"strconv"
	"time"

	"github.com/grocermart/partnersync/internal/domain/model"
	"github.com/grocermart/partnersync/internal/flatfile"
)

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// DeliveryCenterRecord maps a delivery center onto its flat file layout.
func DeliveryCenterRecord(dc model.DeliveryCenter) flatfile.Record {
	return flatfile.Record{
		"code": dc.Code,
		"name": dc.Name,
	}
}

// StoreRecord maps a store onto its flat file layout.
func StoreRecord(s model.Store) flatfile.Record {
	return flatfile.Record{
		"code":                 s.Code,
		"name":                 s.Name,
		"delivery_center_code": s.DeliveryCenterCode,
	}
}

// UserRecord maps a user onto its flat file layout.
func UserRecord(u model.User) flatfile.Record {
	return flatfile.Record{
		"email": u.Email,
		"name":  u.Name,
	}
}

// TaxRecord maps a tax classification onto its flat file layout.
func TaxRecord(t model.Tax) flatfile.Record {
	return flatfile.Record{
		"code": t.Code,
		"name": t.Name,
		"rate": formatRate(t.Rate),
	}
}

// ProductRecord maps a product onto its flat file layout.
func ProductRecord(p model.Product) flatfile.Record {
	return flatfile.Record{
		"ean":               p.EAN,
		"ref":               p.Ref,
		"title":             p.Title,
		"description":       p.Description,
		"unit_of_measure":   p.UnitOfMeasure,
		"quantity_per_unit": formatRate(p.QuantityPerUnit),
		"base_price":        formatMoney(p.BasePrice),
		"tax_code":          p.TaxCode,
		"active":            strconv.FormatBool(p.Active),
	}
}

// OrderDetailRecords builds the outbound order file rows: one per line
// item, or a single placeholder row when the order has none. sentAt is
// stamped into every row as server_sent_at.
func OrderDetailRecords(order *model.PurchaseOrder, items []model.PurchaseOrderItem, sentAt time.Time) []flatfile.Record {
	base := flatfile.Record{
		"purchase_order_id": order.ID,
		"user_email":        order.UserEmail,
		"store_id":          order.StoreCode,
		"status":            string(order.Status),
		"subtotal":          formatMoney(order.Subtotal),
		"tax_total":         formatMoney(order.TaxTotal),
		"final_total":       formatMoney(order.FinalTotal),
		"server_sent_at":    formatTime(sentAt),
		"created_at":        formatTime(order.CreatedAt),
		"updated_at":        formatTime(order.UpdatedAt),
	}

	if len(items) == 0 {
		return []flatfile.Record{base}
	}

	records := make([]flatfile.Record, 0, len(items))
	for _, item := range items {
		record := make(flatfile.Record, len(flatfile.PurchaseOrderDetail.Fields))
		for k, v := range base {
			record[k] = v
		}
		record["item_ean"] = item.EAN
		record["item_ref"] = item.Ref
		record["item_title"] = item.Title
		record["quantity"] = strconv.Itoa(item.Quantity)
		record["base_price_at_order"] = formatMoney(item.BasePrice)
		record["tax_rate_at_order"] = formatRate(item.TaxRate)
		records = append(records, record)
	}
	return records
}
