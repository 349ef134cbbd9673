package simulation

import (
	"math"
	"time"

	"github.com/grocermart/partnersync/internal/domain/model"
)

// Per-item odds of the fulfillment-variance policy. An item is fulfilled
// verbatim with probability keepThreshold; otherwise it is short-picked
// by a uniform reduction factor, and a line whose reduced quantity floors
// to zero gets one substitution chance.
const (
	keepThreshold       = 0.8
	substituteThreshold = 0.2
	minReductionFactor  = 0.1
	maxReductionFactor  = 0.8
)

// Engine projects a purchase order into a simulated fulfillment outcome.
// The source order is only read; the result lives in the ephemeral store.
type Engine struct {
	rnd Rand
}

// NewEngine constructs an engine around the given randomness source.
func NewEngine(rnd Rand) *Engine {
	return &Engine{rnd: rnd}
}

// Run applies the policy to every line independently and computes the
// monetary totals over the emitted lines. candidates is the active
// catalog used for substitutions; its tax rates must already be resolved
// from each product's tax classification.
func (e *Engine) Run(id string, source *model.PurchaseOrder, items []model.PurchaseOrderItem, candidates []model.Product, now time.Time) *model.SimulatedOrder {
	simulated := &model.SimulatedOrder{
		ID:            id,
		SourceOrderID: source.ID,
		UserEmail:     source.UserEmail,
		StoreCode:     source.StoreCode,
		Status:        source.Status,
		CreatedAt:     now,
	}

	for _, item := range items {
		if emitted, ok := e.simulateItem(item, candidates); ok {
			emitted.OrderID = id
			emitted.Position = len(simulated.Items) + 1
			simulated.Items = append(simulated.Items, emitted)
		}
	}

	for _, item := range simulated.Items {
		simulated.Subtotal += item.LineSubtotal()
		simulated.TaxTotal += item.LineTax()
	}
	simulated.FinalTotal = simulated.Subtotal + simulated.TaxTotal

	return simulated
}

func (e *Engine) simulateItem(item model.PurchaseOrderItem, candidates []model.Product) (model.SimulatedOrderItem, bool) {
	if e.rnd.Float64() <= keepThreshold {
		return copyItem(item, item.Quantity), true
	}

	factor := minReductionFactor + e.rnd.Float64()*(maxReductionFactor-minReductionFactor)
	reduced := int(math.Floor(float64(item.Quantity) * factor))
	if reduced > 0 {
		return copyItem(item, reduced), true
	}

	if e.rnd.Float64() <= substituteThreshold && len(candidates) > 0 {
		product := candidates[e.rnd.Intn(len(candidates))]
		return substituteItem(item, product), true
	}

	return model.SimulatedOrderItem{}, false
}

func copyItem(item model.PurchaseOrderItem, quantity int) model.SimulatedOrderItem {
	return model.SimulatedOrderItem{
		EAN:             item.EAN,
		Ref:             item.Ref,
		Title:           item.Title,
		Description:     item.Description,
		UnitOfMeasure:   item.UnitOfMeasure,
		QuantityPerUnit: item.QuantityPerUnit,
		Quantity:        quantity,
		BasePrice:       item.BasePrice,
		TaxRate:         item.TaxRate,
	}
}

// substituteItem keeps the original ordered quantity but takes identity,
// price and tax classification from the replacement product.
func substituteItem(item model.PurchaseOrderItem, product model.Product) model.SimulatedOrderItem {
	return model.SimulatedOrderItem{
		EAN:             product.EAN,
		Ref:             product.Ref,
		Title:           product.Title,
		Description:     product.Description,
		UnitOfMeasure:   product.UnitOfMeasure,
		QuantityPerUnit: product.QuantityPerUnit,
		Quantity:        item.Quantity,
		BasePrice:       product.BasePrice,
		TaxRate:         product.TaxRate,
	}
}
