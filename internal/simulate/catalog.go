// Package simulate computes baseline product profitability and what-if
// margin-drop scenarios over a product catalog. It is independent of the
// uploaded statement and joins the rest of the results only at report
// assembly.
package simulate

import (
	"github.com/shopspring/decimal"

	"github.com/msmelabs/cashintel/internal/model"
)

// Catalog supplies the products to simulate. Swapping in a catalog backed by
// real product data is a drop-in implementation of this interface.
type Catalog interface {
	Products() []model.Product
}

// StaticCatalog is a Catalog over a fixed product slice.
type StaticCatalog []model.Product

// Products returns the catalog rows in declaration order.
func (c StaticCatalog) Products() []model.Product { return []model.Product(c) }

// DefaultCatalog returns the built-in four-product catalog used when no
// override is configured.
func DefaultCatalog() Catalog {
	return StaticCatalog{
		{Name: "Product A", SellingPrice: decimal.NewFromInt(120), CostPrice: decimal.NewFromInt(70), Quantity: 1200},
		{Name: "Product B", SellingPrice: decimal.NewFromInt(80), CostPrice: decimal.NewFromInt(50), Quantity: 900},
		{Name: "Product C", SellingPrice: decimal.NewFromInt(200), CostPrice: decimal.NewFromInt(140), Quantity: 500},
		{Name: "Product D", SellingPrice: decimal.NewFromInt(60), CostPrice: decimal.NewFromInt(35), Quantity: 2000},
	}
}
