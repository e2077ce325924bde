package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msmelabs/cashintel/internal/cli"
	"github.com/msmelabs/cashintel/internal/config"
	"github.com/msmelabs/cashintel/internal/simulate"
)

var flagMargin float64

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Product profit baseline and margin-drop what-if",
	Long:  "Compute baseline per-product profit for the catalog and simulate a uniform selling-price drop. Works without a statement file.",
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().Float64VarP(&flagMargin, "margin", "m", 0.10, "Margin drop fraction (0 to the configured cap)")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	sim, err := simulate.Simulate(catalog(cfg), flagMargin, cfg.Policy.MarginDropCap)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("MARGIN SIMULATION  Drop %.0f%%", sim.MarginDrop*100)))
	fmt.Println()

	baseRows := make([][]string, 0, len(sim.Baseline)+2)
	for _, b := range sim.Baseline {
		baseRows = append(baseRows, []string{
			b.Product.Name,
			cli.FormatMoney(b.Product.SellingPrice),
			cli.FormatMoney(b.Product.CostPrice),
			cli.FormatNumber(b.Product.Quantity),
			cli.FormatMoney(b.ProfitPerUnit),
			cli.FormatMoney(b.TotalProfit),
			cli.FormatPercent(b.ContributionPct),
		})
	}
	baseRows = append(baseRows, []string{"---"})
	baseRows = append(baseRows, []string{"TOTAL", "", "", "", "", cli.FormatMoney(sim.TotalProfit), ""})

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Baseline",
		Headers: []string{"Product", "Price", "Cost", "Qty", "Profit/Unit", "Profit", "Share"},
		Rows:    baseRows,
	}))
	fmt.Println()

	simRows := make([][]string, 0, len(sim.Products))
	for _, p := range sim.Products {
		simRows = append(simRows, []string{
			p.Product.Name,
			cli.FormatMoney(p.NewSellingPrice),
			cli.FormatMoney(p.NewProfitPerUnit),
			cli.FormatMoney(p.NewTotalProfit),
			cli.FormatMoney(p.ProfitLoss),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "After Drop",
		Headers: []string{"Product", "New Price", "New Profit/Unit", "New Profit", "Loss"},
		Rows:    simRows,
	}))

	fmt.Println()
	fmt.Printf("  Most sensitive product: %s\n\n", cli.RenderBad(sim.MostSensitive))

	return nil
}
