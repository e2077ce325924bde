package model

import "github.com/shopspring/decimal"

// Product is one catalog entry. The catalog is supplied by configuration or
// the built-in default, never derived from the uploaded ledger.
type Product struct {
	Name         string          `json:"name"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	Quantity     int64           `json:"quantity"`
}

// ProductProfit holds baseline profit figures for one product.
type ProductProfit struct {
	Product         Product         `json:"product"`
	ProfitPerUnit   decimal.Decimal `json:"profit_per_unit"`
	TotalProfit     decimal.Decimal `json:"total_profit"`
	ContributionPct float64         `json:"contribution_pct"`
}

// SimulatedProduct holds the figures for one product after a uniform
// margin drop, alongside the loss versus baseline.
type SimulatedProduct struct {
	Product          Product         `json:"product"`
	NewSellingPrice  decimal.Decimal `json:"new_selling_price"`
	NewProfitPerUnit decimal.Decimal `json:"new_profit_per_unit"`
	NewTotalProfit   decimal.Decimal `json:"new_total_profit"`
	ProfitLoss       decimal.Decimal `json:"profit_loss"`
}

// Simulation is the full result of one margin-drop run.
type Simulation struct {
	MarginDrop    float64
	Baseline      []ProductProfit
	TotalProfit   decimal.Decimal
	Products      []SimulatedProduct
	MostSensitive string
}
