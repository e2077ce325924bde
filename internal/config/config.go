// Package config holds cashintel configuration: the liquidity policy
// constants and an optional product catalog override.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"github.com/msmelabs/cashintel/internal/model"
)

// Config holds all cashintel configuration.
type Config struct {
	Policy  PolicyConfig    `toml:"policy"`
	Catalog []ProductConfig `toml:"catalog,omitempty"`
}

// PolicyConfig holds the liquidity policy constants. The defaults mirror the
// original fixed rules; they are configuration so the day-count limits can be
// scaled to longer observation windows.
type PolicyConfig struct {
	// StressWindowDays is the number of days of average outflow used as
	// the low-balance threshold.
	StressWindowDays int `toml:"stress_window_days"`
	// LowBalanceDayLimit is the low-balance day count above which the
	// statement is classified as high stress.
	LowBalanceDayLimit int `toml:"low_balance_day_limit"`
	// NegativeDayLimit is the negative-day count above which the
	// statement is classified as high stress.
	NegativeDayLimit int `toml:"negative_day_limit"`
	// MarginDropCap bounds the what-if margin reduction fraction.
	MarginDropCap float64 `toml:"margin_drop_cap"`
}

// ProductConfig is one catalog row in the config file.
type ProductConfig struct {
	Name         string  `toml:"name"`
	SellingPrice float64 `toml:"selling_price"`
	CostPrice    float64 `toml:"cost_price"`
	Quantity     int64   `toml:"quantity"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Policy: PolicyConfig{
			StressWindowDays:   7,
			LowBalanceDayLimit: 5,
			NegativeDayLimit:   7,
			MarginDropCap:      0.30,
		},
	}
}

// Products converts the configured catalog override to model products.
// Returns nil when no override is configured.
func (c Config) Products() []model.Product {
	if len(c.Catalog) == 0 {
		return nil
	}
	products := make([]model.Product, 0, len(c.Catalog))
	for _, p := range c.Catalog {
		products = append(products, model.Product{
			Name:         p.Name,
			SellingPrice: decimal.NewFromFloat(p.SellingPrice),
			CostPrice:    decimal.NewFromFloat(p.CostPrice),
			Quantity:     p.Quantity,
		})
	}
	return products
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "cashintel")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "cashintel")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
