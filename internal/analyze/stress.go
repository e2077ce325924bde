package analyze

import (
	"github.com/msmelabs/cashintel/internal/config"
	"github.com/msmelabs/cashintel/internal/model"
)

// stressThreshold is one stress window's worth of average daily outflow.
func stressThreshold(metrics model.LedgerMetrics, policy config.PolicyConfig) float64 {
	return metrics.AvgDailyOut * float64(policy.StressWindowDays)
}

// Stress counts low-balance and negative days and derives the risk verdict.
func Stress(txns []model.Transaction, metrics model.LedgerMetrics, policy config.PolicyConfig) model.StressStats {
	stats := model.StressStats{
		Threshold: stressThreshold(metrics, policy),
	}

	for _, t := range txns {
		if t.Balance.InexactFloat64() < stats.Threshold {
			stats.LowBalanceDays++
		}
		if t.NetDaily().IsNegative() {
			stats.NegativeDays++
		}
	}

	if stats.LowBalanceDays > policy.LowBalanceDayLimit ||
		stats.NegativeDays > policy.NegativeDayLimit {
		stats.Risk = model.RiskHighStress
	} else {
		stats.Risk = model.RiskStable
	}

	return stats
}

// Calendar builds the per-row stress flag table, ordered as the input.
// A row is stressed when its balance sits below the same threshold the
// classifier uses.
func Calendar(txns []model.Transaction, metrics model.LedgerMetrics, policy config.PolicyConfig) []model.CalendarEntry {
	threshold := stressThreshold(metrics, policy)

	entries := make([]model.CalendarEntry, 0, len(txns))
	for _, t := range txns {
		entries = append(entries, model.CalendarEntry{
			Date:    t.Date,
			Balance: t.Balance,
			Stress:  t.Balance.InexactFloat64() < threshold,
		})
	}
	return entries
}
