package analyze

import (
	"math"

	"github.com/msmelabs/cashintel/internal/model"
)

// ExtractInsights finds the peak-expense row and the cash-flow volatility.
func ExtractInsights(txns []model.Transaction, metrics model.LedgerMetrics) model.Insights {
	var insights model.Insights
	if len(txns) == 0 {
		return insights
	}

	// First maximum wins on ties so the result is reproducible.
	peak := txns[0]
	for _, t := range txns[1:] {
		if t.Debit.GreaterThan(peak.Debit) {
			peak = t
		}
	}
	insights.PeakExpenseDay = peak.Date
	insights.PeakExpenseAmount = peak.Debit

	insights.CashVolatility = netDailyVolatility(txns)

	if insights.CashVolatility > metrics.AvgDailyOut {
		insights.Stability = model.StabilityUnpredictable
	} else {
		insights.Stability = model.StabilityStable
	}

	return insights
}

// netDailyVolatility returns the sample standard deviation (Bessel's
// correction, n-1) of per-row net flow, or 0 for fewer than two rows.
func netDailyVolatility(txns []model.Transaction) float64 {
	n := len(txns)
	if n < 2 {
		return 0
	}

	nets := make([]float64, n)
	var sum float64
	for i, t := range txns {
		nets[i] = t.NetDaily().InexactFloat64()
		sum += nets[i]
	}
	mean := sum / float64(n)

	var sq float64
	for _, v := range nets {
		d := v - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(n-1))
}
