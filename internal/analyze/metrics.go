package analyze

import (
	"errors"

	"github.com/msmelabs/cashintel/internal/model"
)

// ErrEmptyLedger is returned for a statement with no transaction rows,
// where the per-day averages are undefined.
var ErrEmptyLedger = errors.New("statement has no transaction rows")

const dayKeyFormat = "2006-01-02"

// Metrics computes the core cash aggregates for a statement.
func Metrics(txns []model.Transaction) (model.LedgerMetrics, error) {
	if len(txns) == 0 {
		return model.LedgerMetrics{}, ErrEmptyLedger
	}

	var m model.LedgerMetrics
	days := make(map[string]struct{})

	for _, t := range txns {
		m.TotalIn = m.TotalIn.Add(t.Credit)
		m.TotalOut = m.TotalOut.Add(t.Debit)
		days[t.Date.Format(dayKeyFormat)] = struct{}{}
	}

	m.NetCash = m.TotalIn.Sub(m.TotalOut)
	m.Days = len(days)

	d := float64(m.Days)
	m.AvgDailyIn = m.TotalIn.InexactFloat64() / d
	m.AvgDailyOut = m.TotalOut.InexactFloat64() / d
	m.BurnRate = m.AvgDailyOut

	m.CurrentBalance = txns[len(txns)-1].Balance

	// A zero or negative burn rate means runway is not computable; it is
	// reported as 0 rather than infinity.
	if m.BurnRate > 0 {
		m.SurvivalDays = m.CurrentBalance.InexactFloat64() / m.BurnRate
	}

	return m, nil
}
