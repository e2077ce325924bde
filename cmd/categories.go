package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msmelabs/cashintel/internal/cli"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Expense totals by category",
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
	a, _, err := loadAnalysis()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("EXPENSE CATEGORIES"))
	fmt.Println()

	totalOut := a.Metrics.TotalOut.InexactFloat64()

	rows := make([][]string, 0, len(a.Categories)+2)
	for _, ct := range a.Categories {
		share := ""
		if totalOut > 0 {
			share = cli.FormatPercent(ct.Total.InexactFloat64() / totalOut * 100)
		}
		rows = append(rows, []string{ct.Category, cli.FormatMoney(ct.Total), share})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"TOTAL", cli.FormatMoney(a.Metrics.TotalOut), ""})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Outflow", "Share"},
		Rows:    rows,
	}))

	return nil
}
