package simulation

import (
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/grocermart/partnersync/internal/domain/model"
)

// scriptedRand replays a fixed sequence of draws.
type scriptedRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptedRand) Float64() float64 {
	if r.fi >= len(r.floats) {
		return 0
	}
	v := r.floats[r.fi]
	r.fi++
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if r.ii >= len(r.ints) {
		return 0
	}
	v := r.ints[r.ii] % n
	r.ii++
	return v
}

// factorDraw returns the Float64 draw that yields the given reduction factor.
func factorDraw(f float64) float64 {
	return (f - minReductionFactor) / (maxReductionFactor - minReductionFactor)
}

func sourceOrder() (*model.PurchaseOrder, []model.PurchaseOrderItem) {
	order := &model.PurchaseOrder{
		ID:        "PO1",
		UserEmail: "ana@example.com",
		StoreCode: "S1",
		Status:    model.OrderStatusPlaced,
	}
	items := []model.PurchaseOrderItem{
		{
			OrderID: "PO1", Position: 1, EAN: "E1", Ref: "R1", Title: "Rice 1kg",
			Description: "white rice", UnitOfMeasure: "kg", QuantityPerUnit: 1,
			Quantity: 10, BasePrice: 2.00, TaxRate: 0.10,
		},
	}
	return order, items
}

func approx(got, want float64) bool {
	return math.Abs(got-want) < 1e-9
}

func TestRunKeepsItemsVerbatim(t *testing.T) {
	order, items := sourceOrder()
	engine := NewEngine(&scriptedRand{floats: []float64{0.5}})

	sim := engine.Run("DC1-250901120000-AAAA", order, items, nil, time.Now())

	if len(sim.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(sim.Items))
	}
	got := sim.Items[0]
	want := items[0]
	if got.EAN != want.EAN || got.Ref != want.Ref || got.Title != want.Title ||
		got.Description != want.Description || got.UnitOfMeasure != want.UnitOfMeasure ||
		got.QuantityPerUnit != want.QuantityPerUnit || got.Quantity != want.Quantity ||
		got.BasePrice != want.BasePrice || got.TaxRate != want.TaxRate {
		t.Fatalf("expected verbatim copy, got %+v", got)
	}
	if got.OrderID != sim.ID || got.Position != 1 {
		t.Fatalf("expected item rekeyed to simulated order, got %+v", got)
	}
	if !approx(sim.Subtotal, 20.00) || !approx(sim.TaxTotal, 2.00) || !approx(sim.FinalTotal, 22.00) {
		t.Fatalf("unexpected totals: %v %v %v", sim.Subtotal, sim.TaxTotal, sim.FinalTotal)
	}
}

func TestRunShortPicksQuantity(t *testing.T) {
	order, items := sourceOrder()
	engine := NewEngine(&scriptedRand{floats: []float64{0.9, factorDraw(0.5)}})

	sim := engine.Run("SIM1", order, items, nil, time.Now())

	if len(sim.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(sim.Items))
	}
	if sim.Items[0].Quantity != 5 {
		t.Fatalf("expected reduced quantity 5, got %d", sim.Items[0].Quantity)
	}
	if sim.Items[0].BasePrice != 2.00 || sim.Items[0].TaxRate != 0.10 {
		t.Fatalf("expected price and tax preserved, got %+v", sim.Items[0])
	}
	if !approx(sim.Subtotal, 10.00) || !approx(sim.TaxTotal, 1.00) || !approx(sim.FinalTotal, 11.00) {
		t.Fatalf("unexpected totals: %v %v %v", sim.Subtotal, sim.TaxTotal, sim.FinalTotal)
	}
}

func TestRunDropsLineWithoutSubstitute(t *testing.T) {
	order, items := sourceOrder()
	items[0].Quantity = 1 // any factor below 1 floors to zero

	engine := NewEngine(&scriptedRand{floats: []float64{0.9, factorDraw(0.5), 0.5}})
	sim := engine.Run("SIM1", order, items, []model.Product{{EAN: "SUB"}}, time.Now())

	if len(sim.Items) != 0 {
		t.Fatalf("expected no items, got %d", len(sim.Items))
	}
	if sim.Subtotal != 0 || sim.TaxTotal != 0 || sim.FinalTotal != 0 {
		t.Fatalf("expected zero totals, got %v %v %v", sim.Subtotal, sim.TaxTotal, sim.FinalTotal)
	}
}

func TestRunSubstitutesDroppedLine(t *testing.T) {
	order, items := sourceOrder()
	items[0].Quantity = 4

	candidates := []model.Product{
		{EAN: "SUB0", Ref: "S0", Title: "Oats", BasePrice: 1.00, TaxRate: 0.05},
		{EAN: "SUB1", Ref: "S1", Title: "Corn", Description: "canned", UnitOfMeasure: "un",
			QuantityPerUnit: 1, BasePrice: 3.00, TaxCode: "TX2", TaxRate: 0.20},
	}

	// short-pick, factor floors 4 to 0, substitution draw passes, pick index 1
	engine := NewEngine(&scriptedRand{floats: []float64{0.9, factorDraw(0.1), 0.2}, ints: []int{1}})
	sim := engine.Run("SIM1", order, items, candidates, time.Now())

	if len(sim.Items) != 1 {
		t.Fatalf("expected substitute item, got %d items", len(sim.Items))
	}
	got := sim.Items[0]
	if got.EAN != "SUB1" || got.Title != "Corn" || got.BasePrice != 3.00 {
		t.Fatalf("expected substitute product fields, got %+v", got)
	}
	if got.Quantity != 4 {
		t.Fatalf("expected original quantity 4 preserved, got %d", got.Quantity)
	}
	if got.TaxRate != 0.20 {
		t.Fatalf("expected tax rate from substitute classification, got %v", got.TaxRate)
	}
	if !approx(sim.Subtotal, 12.00) || !approx(sim.TaxTotal, 2.40) || !approx(sim.FinalTotal, 14.40) {
		t.Fatalf("unexpected totals: %v %v %v", sim.Subtotal, sim.TaxTotal, sim.FinalTotal)
	}
}

func TestRunSkipsSubstituteWithoutCandidates(t *testing.T) {
	order, items := sourceOrder()
	items[0].Quantity = 1

	engine := NewEngine(&scriptedRand{floats: []float64{0.9, factorDraw(0.1), 0.1}})
	sim := engine.Run("SIM1", order, items, nil, time.Now())

	if len(sim.Items) != 0 {
		t.Fatalf("expected no items when catalog is empty, got %d", len(sim.Items))
	}
}

func TestRunInvariantsOverMixedItems(t *testing.T) {
	order, _ := sourceOrder()
	items := []model.PurchaseOrderItem{
		{Position: 1, EAN: "E1", Quantity: 10, BasePrice: 2.00, TaxRate: 0.10},
		{Position: 2, EAN: "E2", Quantity: 6, BasePrice: 1.50, TaxRate: 0.05},
		{Position: 3, EAN: "E3", Quantity: 1, BasePrice: 9.99, TaxRate: 0.20},
	}

	// item1 kept, item2 short-picked to 3, item3 dropped without substitute
	engine := NewEngine(&scriptedRand{floats: []float64{
		0.1,
		0.9, factorDraw(0.5),
		0.9, factorDraw(0.5), 0.9,
	}})
	sim := engine.Run("SIM1", order, items, nil, time.Now())

	if len(sim.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(sim.Items))
	}
	for i, item := range sim.Items {
		if item.Position != i+1 {
			t.Fatalf("expected contiguous positions, got %+v", sim.Items)
		}
		if item.Quantity <= 0 {
			t.Fatalf("expected positive quantity, got %+v", item)
		}
	}

	var subtotal, taxTotal float64
	for _, item := range sim.Items {
		subtotal += float64(item.Quantity) * item.BasePrice
		taxTotal += float64(item.Quantity) * item.BasePrice * item.TaxRate
	}
	if !approx(sim.Subtotal, subtotal) || !approx(sim.TaxTotal, taxTotal) || !approx(sim.FinalTotal, subtotal+taxTotal) {
		t.Fatalf("totals do not match item sums: %+v", sim)
	}
}

func TestRunReductionFactorStaysInRange(t *testing.T) {
	for _, draw := range []float64{0, 0.5, 0.999999} {
		f := minReductionFactor + draw*(maxReductionFactor-minReductionFactor)
		if f < 0.1 || f >= 0.8 {
			t.Fatalf("factor %v out of range for draw %v", f, draw)
		}
	}
}

func TestOrderID(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 30, 45, 0, time.UTC)
	rnd := &scriptedRand{ints: []int{0, 1, 26, 35}}

	id := OrderID("DC1", now, rnd)
	if id != "DC1-250901123045-AB09" {
		t.Fatalf("unexpected id %q", id)
	}

	pattern := regexp.MustCompile(`^DC1-\d{12}-[A-Z0-9]{4}$`)
	if !pattern.MatchString(OrderID("DC1", time.Now(), NewRand())) {
		t.Fatal("expected id to match contract pattern")
	}
}
