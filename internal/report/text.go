package report

import (
	"fmt"
	"strings"

	"github.com/msmelabs/cashintel/internal/cli"
	"github.com/msmelabs/cashintel/internal/model"
)

// Lines returns the core report fields as plain labeled lines in their
// fixed order. Document generators rely on this order staying put.
func Lines(r model.Report) []string {
	return []string{
		fmt.Sprintf("Total Inflow: %s", cli.FormatMoney(r.TotalIn)),
		fmt.Sprintf("Total Outflow: %s", cli.FormatMoney(r.TotalOut)),
		fmt.Sprintf("Net Cash: %s", cli.FormatMoney(r.NetCash)),
		fmt.Sprintf("Burn Rate: %s/day", cli.FormatMoneyFloat(r.BurnRate)),
		fmt.Sprintf("Survival Days: %s", cli.FormatDays(r.SurvivalDays)),
		fmt.Sprintf("Low Balance Days: %d", r.LowBalanceDays),
		fmt.Sprintf("Negative Days: %d", r.NegativeDays),
	}
}

// Render returns the full plain-text report for one submission.
func Render(r model.Report) string {
	var b strings.Builder

	b.WriteString("Cash Intelligence Report\n")
	fmt.Fprintf(&b, "Report ID: %s\n", r.ReportID)
	fmt.Fprintf(&b, "Generated: %s\n\n", r.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	for _, line := range Lines(r) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Risk Verdict: %s\n", r.Risk)
	fmt.Fprintf(&b, "Stability Verdict: %s\n", r.Stability)
	fmt.Fprintf(&b, "Highest Expense Day: %s (%s)\n",
		cli.FormatDate(r.PeakExpenseDay), cli.FormatMoney(r.PeakExpenseAmount))
	fmt.Fprintf(&b, "Cash Volatility: %s\n\n", cli.FormatMoneyFloat(r.CashVolatility))

	b.WriteString("Expense Categories\n")
	for _, ct := range r.Categories {
		fmt.Fprintf(&b, "  %s: %s\n", ct.Category, cli.FormatMoney(ct.Total))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Margin Simulation (drop %.0f%%)\n", r.MarginDrop*100)
	for i, p := range r.Simulated {
		fmt.Fprintf(&b, "  %s: profit %s -> %s (loss %s)\n",
			p.Product.Name,
			cli.FormatMoney(r.Baseline[i].TotalProfit),
			cli.FormatMoney(p.NewTotalProfit),
			cli.FormatMoney(p.ProfitLoss))
	}
	fmt.Fprintf(&b, "Most Sensitive Product: %s\n", r.MostSensitive)

	return b.String()
}
