package simulate

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

func TestBaseline_DefaultCatalog(t *testing.T) {
	baseline, total, err := Baseline(DefaultCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(baseline) != 4 {
		t.Fatalf("len(baseline) = %d, want 4", len(baseline))
	}

	wantProfits := []string{"60000", "27000", "30000", "50000"}
	for i, want := range wantProfits {
		if baseline[i].TotalProfit.String() != want {
			t.Errorf("%s profit = %s, want %s",
				baseline[i].Product.Name, baseline[i].TotalProfit, want)
		}
	}
	if total.String() != "167000" {
		t.Errorf("total profit = %s, want 167000", total)
	}

	var pctSum float64
	for _, b := range baseline {
		pctSum += b.ContributionPct
	}
	if math.Abs(pctSum-100) > 1e-6 {
		t.Errorf("contribution percentages sum = %v, want 100", pctSum)
	}
}

func TestBaseline_ZeroTotalProfit(t *testing.T) {
	catalog := StaticCatalog{
		{Name: "Break-even", SellingPrice: decimal.NewFromInt(50), CostPrice: decimal.NewFromInt(50), Quantity: 10},
	}
	_, _, err := Baseline(catalog)
	if !errors.Is(err, ErrZeroProfit) {
		t.Fatalf("err = %v, want ErrZeroProfit", err)
	}
}

func TestBaseline_EmptyCatalog(t *testing.T) {
	_, _, err := Baseline(StaticCatalog{})
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("err = %v, want ErrEmptyCatalog", err)
	}
}

func TestSimulate_TenPercentDrop(t *testing.T) {
	sim, err := Simulate(DefaultCatalog(), 0.10, 0.30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name      string
		newPrice  string
		newPer    string
		newProfit string
		loss      string
	}{
		{"Product A", "108", "38", "45600", "14400"},
		{"Product B", "72", "22", "19800", "7200"},
		{"Product C", "180", "40", "20000", "10000"},
		{"Product D", "54", "19", "38000", "12000"},
	}
	for i, tc := range cases {
		got := sim.Products[i]
		if got.Product.Name != tc.name {
			t.Fatalf("product %d = %q, want %q (catalog order)", i, got.Product.Name, tc.name)
		}
		if got.NewSellingPrice.String() != tc.newPrice {
			t.Errorf("%s new price = %s, want %s", tc.name, got.NewSellingPrice, tc.newPrice)
		}
		if got.NewProfitPerUnit.String() != tc.newPer {
			t.Errorf("%s new profit/unit = %s, want %s", tc.name, got.NewProfitPerUnit, tc.newPer)
		}
		if got.NewTotalProfit.String() != tc.newProfit {
			t.Errorf("%s new profit = %s, want %s", tc.name, got.NewTotalProfit, tc.newProfit)
		}
		if got.ProfitLoss.String() != tc.loss {
			t.Errorf("%s loss = %s, want %s", tc.name, got.ProfitLoss, tc.loss)
		}
	}

	if sim.MostSensitive != "Product A" {
		t.Errorf("MostSensitive = %q, want Product A", sim.MostSensitive)
	}
}

func TestSimulate_ZeroDropReproducesBaseline(t *testing.T) {
	sim, err := Simulate(DefaultCatalog(), 0, 0.30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range sim.Products {
		if !p.ProfitLoss.IsZero() {
			t.Errorf("%s loss = %s, want 0 at zero margin drop", p.Product.Name, p.ProfitLoss)
		}
	}
}

func TestSimulate_MarginOutOfRange(t *testing.T) {
	for _, m := range []float64{-0.05, 0.35} {
		_, err := Simulate(DefaultCatalog(), m, 0.30)
		var rangeErr *MarginRangeError
		if !errors.As(err, &rangeErr) {
			t.Errorf("Simulate(m=%v) err = %v, want MarginRangeError", m, err)
		}
	}
}

func TestSimulate_TieBreakFirstInCatalog(t *testing.T) {
	// Identical products lose the same amount; the first must win.
	catalog := StaticCatalog{
		{Name: "First", SellingPrice: decimal.NewFromInt(100), CostPrice: decimal.NewFromInt(60), Quantity: 10},
		{Name: "Second", SellingPrice: decimal.NewFromInt(100), CostPrice: decimal.NewFromInt(60), Quantity: 10},
	}
	sim, err := Simulate(catalog, 0.10, 0.30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sim.MostSensitive != "First" {
		t.Errorf("MostSensitive = %q, want First", sim.MostSensitive)
	}
}

func TestSimulate_Deterministic(t *testing.T) {
	a, err := Simulate(DefaultCatalog(), 0.15, 0.30)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Simulate(DefaultCatalog(), 0.15, 0.30)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("two runs with the same inputs produced different results")
	}
}

var _ Catalog = StaticCatalog(nil)
