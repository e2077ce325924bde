package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Report is the flat record handed to rendering and document generators.
// It carries every number displayed downstream; nothing is recomputed
// outside this record. One is assembled per submission and then discarded.
type Report struct {
	ReportID    string    `json:"report_id"`
	GeneratedAt time.Time `json:"generated_at"`

	TotalIn        decimal.Decimal `json:"total_in"`
	TotalOut       decimal.Decimal `json:"total_out"`
	NetCash        decimal.Decimal `json:"net_cash"`
	CurrentBalance decimal.Decimal `json:"current_balance"`

	Days         int     `json:"days"`
	AvgDailyIn   float64 `json:"avg_daily_in"`
	AvgDailyOut  float64 `json:"avg_daily_out"`
	BurnRate     float64 `json:"burn_rate"`
	SurvivalDays float64 `json:"survival_days"`

	Threshold      float64     `json:"threshold"`
	LowBalanceDays int         `json:"low_balance_days"`
	NegativeDays   int         `json:"negative_days"`
	Risk           RiskVerdict `json:"risk"`

	PeakExpenseDay    time.Time        `json:"peak_expense_day"`
	PeakExpenseAmount decimal.Decimal  `json:"peak_expense_amount"`
	CashVolatility    float64          `json:"cash_volatility"`
	Stability         StabilityVerdict `json:"stability"`

	Categories []CategoryTotal `json:"categories"`
	Calendar   []CalendarEntry `json:"calendar"`

	MarginDrop    float64            `json:"margin_drop"`
	TotalProfit   decimal.Decimal    `json:"total_profit"`
	Baseline      []ProductProfit    `json:"baseline"`
	Simulated     []SimulatedProduct `json:"simulated"`
	MostSensitive string             `json:"most_sensitive"`
}
