// Package analyze derives liquidity-health indicators from a validated
// statement: cash totals, burn rate, survival days, stress classification,
// expense categories, and the stress calendar. Every function is a pure
// computation over its inputs; nothing is cached or shared between runs.
package analyze

import (
	"github.com/msmelabs/cashintel/internal/config"
	"github.com/msmelabs/cashintel/internal/model"
)

// Run executes the full analytics pipeline for one statement.
func Run(txns []model.Transaction, policy config.PolicyConfig) (model.Analysis, error) {
	metrics, err := Metrics(txns)
	if err != nil {
		return model.Analysis{}, err
	}

	return model.Analysis{
		Metrics:    metrics,
		Stress:     Stress(txns, metrics, policy),
		Insights:   ExtractInsights(txns, metrics),
		Categories: CategoryTotals(txns),
		Calendar:   Calendar(txns, metrics, policy),
	}, nil
}
