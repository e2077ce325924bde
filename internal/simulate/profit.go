package simulate

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/msmelabs/cashintel/internal/model"
)

// ErrZeroProfit is returned when total baseline profit is zero and
// contribution percentages are undefined.
var ErrZeroProfit = errors.New("total catalog profit is zero, contribution percentages are undefined")

// ErrEmptyCatalog is returned when the catalog has no products.
var ErrEmptyCatalog = errors.New("catalog has no products")

// MarginRangeError reports a margin-drop fraction outside [0, cap].
type MarginRangeError struct {
	Margin float64
	Cap    float64
}

func (e *MarginRangeError) Error() string {
	return fmt.Sprintf("margin drop %.2f outside allowed range [0, %.2f]", e.Margin, e.Cap)
}

// Baseline computes per-product profit and contribution shares.
// The contribution percentages sum to 100 whenever total profit is non-zero;
// a zero total fails with ErrZeroProfit rather than dividing by zero.
func Baseline(catalog Catalog) ([]model.ProductProfit, decimal.Decimal, error) {
	products := catalog.Products()
	if len(products) == 0 {
		return nil, decimal.Zero, ErrEmptyCatalog
	}

	baseline := make([]model.ProductProfit, 0, len(products))
	var total decimal.Decimal
	for _, p := range products {
		perUnit := p.SellingPrice.Sub(p.CostPrice)
		profit := perUnit.Mul(decimal.NewFromInt(p.Quantity))
		baseline = append(baseline, model.ProductProfit{
			Product:       p,
			ProfitPerUnit: perUnit,
			TotalProfit:   profit,
		})
		total = total.Add(profit)
	}

	if total.IsZero() {
		return nil, decimal.Zero, ErrZeroProfit
	}
	totalF := total.InexactFloat64()
	for i := range baseline {
		baseline[i].ContributionPct = baseline[i].TotalProfit.InexactFloat64() / totalF * 100
	}

	return baseline, total, nil
}

// Simulate recomputes profits under a uniform selling-price drop of fraction
// marginDrop and identifies the most sensitive product. The run is stateless:
// the same catalog and fraction always produce identical results.
func Simulate(catalog Catalog, marginDrop, marginCap float64) (model.Simulation, error) {
	if marginDrop < 0 || marginDrop > marginCap {
		return model.Simulation{}, &MarginRangeError{Margin: marginDrop, Cap: marginCap}
	}

	baseline, total, err := Baseline(catalog)
	if err != nil {
		return model.Simulation{}, err
	}

	factor := decimal.NewFromFloat(1 - marginDrop)

	sim := model.Simulation{
		MarginDrop:  marginDrop,
		Baseline:    baseline,
		TotalProfit: total,
	}

	var maxLoss decimal.Decimal
	for i, b := range baseline {
		p := b.Product
		newPrice := p.SellingPrice.Mul(factor)
		newPerUnit := newPrice.Sub(p.CostPrice)
		newProfit := newPerUnit.Mul(decimal.NewFromInt(p.Quantity))
		loss := b.TotalProfit.Sub(newProfit)

		sim.Products = append(sim.Products, model.SimulatedProduct{
			Product:          p,
			NewSellingPrice:  newPrice,
			NewProfitPerUnit: newPerUnit,
			NewTotalProfit:   newProfit,
			ProfitLoss:       loss,
		})

		// Strictly-greater comparison keeps the first catalog entry on
		// ties.
		if i == 0 || loss.GreaterThan(maxLoss) {
			maxLoss = loss
			sim.MostSensitive = p.Name
		}
	}

	return sim, nil
}
