package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msmelabs/cashintel/internal/cli"
	"github.com/msmelabs/cashintel/internal/model"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Cash overview, survival estimate, and risk indicators",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	a, _, err := loadAnalysis()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("CASH OVERVIEW"))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Inflow", cli.FormatMoney(a.Metrics.TotalIn)},
			{"Total Outflow", cli.FormatMoney(a.Metrics.TotalOut)},
			{"Net Cash", cli.FormatMoney(a.Metrics.NetCash)},
			{"Current Balance", cli.FormatMoney(a.Metrics.CurrentBalance)},
			{"---"},
			{"Days Covered", cli.FormatNumber(int64(a.Metrics.Days))},
			{"Avg Daily Inflow", cli.FormatMoneyFloat(a.Metrics.AvgDailyIn)},
			{"Avg Daily Outflow", cli.FormatMoneyFloat(a.Metrics.AvgDailyOut)},
			{"---"},
			{"Burn Rate", cli.FormatMoneyFloat(a.Metrics.BurnRate) + "/day"},
			{"Survival", cli.FormatDays(a.Metrics.SurvivalDays)},
		},
	}))

	fmt.Println()
	if a.Stress.Risk == model.RiskHighStress {
		fmt.Println("  " + cli.RenderBad("HIGH CASH STRESS"))
	} else {
		fmt.Println("  " + cli.RenderGood("Cash position looks stable"))
	}
	fmt.Printf("  Low balance days: %d\n", a.Stress.LowBalanceDays)
	fmt.Printf("  Negative cash days: %d\n", a.Stress.NegativeDays)

	fmt.Println()
	fmt.Printf("  Highest expense day: %s (%s)\n",
		cli.FormatDate(a.Insights.PeakExpenseDay),
		cli.FormatMoney(a.Insights.PeakExpenseAmount))
	fmt.Printf("  Cash volatility: %s\n", cli.FormatMoneyFloat(a.Insights.CashVolatility))
	if a.Insights.Stability == model.StabilityUnpredictable {
		fmt.Println("  " + cli.RenderWarn("Cash flow is highly unpredictable"))
	} else {
		fmt.Println("  " + cli.RenderGood("Cash flow is relatively stable"))
	}
	fmt.Println()

	return nil
}
