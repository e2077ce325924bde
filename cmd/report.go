package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msmelabs/cashintel/internal/report"
	"github.com/msmelabs/cashintel/internal/simulate"
)

var (
	flagReportMargin float64
	flagReportJSON   bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Full report record for document generators",
	Long:  "Assemble every derived metric, category, calendar row, and simulation figure into one flat record, as plain labeled text or JSON.",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().Float64VarP(&flagReportMargin, "margin", "m", 0.10, "Margin drop fraction for the simulation section")
	reportCmd.Flags().BoolVar(&flagReportJSON, "json", false, "Emit the record as JSON")
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
	a, cfg, err := loadAnalysis()
	if err != nil {
		return err
	}

	sim, err := simulate.Simulate(catalog(cfg), flagReportMargin, cfg.Policy.MarginDropCap)
	if err != nil {
		return err
	}

	rec := report.Build(a, sim)

	if flagReportJSON {
		out, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Print(report.Render(rec))
	return nil
}
