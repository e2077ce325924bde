package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerMetrics holds the top-level cash aggregates for one statement.
// Money totals stay exact decimals; per-day rates are float ratios.
type LedgerMetrics struct {
	TotalIn        decimal.Decimal
	TotalOut       decimal.Decimal
	NetCash        decimal.Decimal
	CurrentBalance decimal.Decimal

	Days        int
	AvgDailyIn  float64
	AvgDailyOut float64
	BurnRate    float64

	// SurvivalDays is current balance over burn rate. Reported as 0 when
	// the burn rate is zero or negative, where runway is not computable.
	SurvivalDays float64
}

// StressStats holds the liquidity-stress classification for one statement.
type StressStats struct {
	// Threshold is one stress window's worth of average daily outflow;
	// balances below it mark a low-balance day.
	Threshold      float64
	LowBalanceDays int
	NegativeDays   int
	Risk           RiskVerdict
}

// Insights holds the peak-expense and volatility findings.
type Insights struct {
	PeakExpenseDay    time.Time
	PeakExpenseAmount decimal.Decimal

	// CashVolatility is the sample standard deviation of daily net flow,
	// 0 when fewer than two rows exist.
	CashVolatility float64
	Stability      StabilityVerdict
}

// Analysis bundles every ledger-derived result for one submission.
type Analysis struct {
	Metrics    LedgerMetrics
	Stress     StressStats
	Insights   Insights
	Categories []CategoryTotal
	Calendar   []CalendarEntry
}
