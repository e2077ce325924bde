// Package model defines domain types for cashintel ledgers and metrics.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// NoDescription is substituted when a statement has no description column
// or an individual cell is blank.
const NoDescription = "No description"

// Transaction represents one validated bank-statement row.
// Balance is the running account balance after this row, as reported by the
// bank; rows arrive in chronological order and are never re-sorted.
type Transaction struct {
	Date        time.Time
	Credit      decimal.Decimal
	Debit       decimal.Decimal
	Balance     decimal.Decimal
	Description string
}

// NetDaily returns credit minus debit for this row.
func (t Transaction) NetDaily() decimal.Decimal {
	return t.Credit.Sub(t.Debit)
}

// RiskVerdict classifies overall cash stress.
type RiskVerdict string

// StabilityVerdict classifies cash-flow predictability.
type StabilityVerdict string

const (
	RiskHighStress RiskVerdict = "HIGH_STRESS"
	RiskStable     RiskVerdict = "STABLE"

	StabilityUnpredictable StabilityVerdict = "UNPREDICTABLE"
	StabilityStable        StabilityVerdict = "STABLE"
)

// CategoryTotal holds summed outflow for one expense category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// CalendarEntry is one row of the stress calendar, ordered as the input.
type CalendarEntry struct {
	Date    time.Time       `json:"date"`
	Balance decimal.Decimal `json:"balance"`
	Stress  bool            `json:"stress"`
}
