// Package cmd implements the cashintel CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msmelabs/cashintel/internal/analyze"
	"github.com/msmelabs/cashintel/internal/config"
	"github.com/msmelabs/cashintel/internal/ledger"
	"github.com/msmelabs/cashintel/internal/model"
	"github.com/msmelabs/cashintel/internal/simulate"
)

var (
	flagFile  string
	flagQuiet bool
)

var rootCmd = &cobra.Command{
	Use:   "cashintel",
	Short: "MSME Cash Intelligence CLI",
	Long:  "Analyze a bank-statement CSV: cash flow, burn rate, survival days, stress, expense categories, and margin what-ifs. Read-only; nothing is stored.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "Bank statement CSV file")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// loadAnalysis is the shared data path used by every statement command:
// read and validate the CSV, then run the analytics pipeline with the
// configured policy. The statement lives only for the duration of the run.
func loadAnalysis() (model.Analysis, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return model.Analysis{}, cfg, err
	}

	if flagFile == "" {
		return model.Analysis{}, cfg, errors.New("no statement file given, use -f/--file")
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Reading %s...\n", flagFile)
	}

	txns, err := ledger.ReadFile(flagFile)
	if err != nil {
		return model.Analysis{}, cfg, err
	}

	analysis, err := analyze.Run(txns, cfg.Policy)
	if err != nil {
		return model.Analysis{}, cfg, err
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Parsed %d transactions across %d days\n",
			len(txns), analysis.Metrics.Days)
	}

	return analysis, cfg, nil
}

// catalog resolves the product catalog: config override first, then the
// built-in default.
func catalog(cfg config.Config) simulate.Catalog {
	if products := cfg.Products(); len(products) > 0 {
		return simulate.StaticCatalog(products)
	}
	return simulate.DefaultCatalog()
}
