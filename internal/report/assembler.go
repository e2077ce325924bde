// Package report assembles the flat result record handed to rendering
// layers and document generators, and renders its plain-text form.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/msmelabs/cashintel/internal/model"
)

// Build packages an analysis and a simulation into the flat report record.
// Pure aggregation: every field is copied from its source, nothing is
// recomputed, so every displayed number traces to exactly one field here.
func Build(a model.Analysis, sim model.Simulation) model.Report {
	return model.Report{
		ReportID:    uuid.NewString(),
		GeneratedAt: time.Now().UTC(),

		TotalIn:        a.Metrics.TotalIn,
		TotalOut:       a.Metrics.TotalOut,
		NetCash:        a.Metrics.NetCash,
		CurrentBalance: a.Metrics.CurrentBalance,

		Days:         a.Metrics.Days,
		AvgDailyIn:   a.Metrics.AvgDailyIn,
		AvgDailyOut:  a.Metrics.AvgDailyOut,
		BurnRate:     a.Metrics.BurnRate,
		SurvivalDays: a.Metrics.SurvivalDays,

		Threshold:      a.Stress.Threshold,
		LowBalanceDays: a.Stress.LowBalanceDays,
		NegativeDays:   a.Stress.NegativeDays,
		Risk:           a.Stress.Risk,

		PeakExpenseDay:    a.Insights.PeakExpenseDay,
		PeakExpenseAmount: a.Insights.PeakExpenseAmount,
		CashVolatility:    a.Insights.CashVolatility,
		Stability:         a.Insights.Stability,

		Categories: a.Categories,
		Calendar:   a.Calendar,

		MarginDrop:    sim.MarginDrop,
		TotalProfit:   sim.TotalProfit,
		Baseline:      sim.Baseline,
		Simulated:     sim.Products,
		MostSensitive: sim.MostSensitive,
	}
}
