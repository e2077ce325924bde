package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msmelabs/cashintel/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Policy]")
	fmt.Printf("    Stress window:         %d days\n", cfg.Policy.StressWindowDays)
	fmt.Printf("    Low balance day limit: %d\n", cfg.Policy.LowBalanceDayLimit)
	fmt.Printf("    Negative day limit:    %d\n", cfg.Policy.NegativeDayLimit)
	fmt.Printf("    Margin drop cap:       %.2f\n", cfg.Policy.MarginDropCap)
	fmt.Println()

	fmt.Println("  [Catalog]")
	if len(cfg.Catalog) == 0 {
		fmt.Println("    Using built-in four-product catalog")
	} else {
		for _, p := range cfg.Catalog {
			fmt.Printf("    %s: price %.2f, cost %.2f, qty %d\n",
				p.Name, p.SellingPrice, p.CostPrice, p.Quantity)
		}
	}
	fmt.Println()

	fmt.Println("  Run `cashintel config init` to write the default file.")
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	if config.Exists() {
		return fmt.Errorf("config file already exists at %s", config.ConfigPath())
	}
	if err := config.Save(config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("  Wrote %s\n", config.ConfigPath())
	return nil
}
