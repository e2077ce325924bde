package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig_Policy(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Policy.StressWindowDays != 7 {
		t.Errorf("StressWindowDays = %d, want 7", cfg.Policy.StressWindowDays)
	}
	if cfg.Policy.LowBalanceDayLimit != 5 {
		t.Errorf("LowBalanceDayLimit = %d, want 5", cfg.Policy.LowBalanceDayLimit)
	}
	if cfg.Policy.NegativeDayLimit != 7 {
		t.Errorf("NegativeDayLimit = %d, want 7", cfg.Policy.NegativeDayLimit)
	}
	if cfg.Policy.MarginDropCap != 0.30 {
		t.Errorf("MarginDropCap = %v, want 0.30", cfg.Policy.MarginDropCap)
	}
	if len(cfg.Catalog) != 0 {
		t.Errorf("default catalog override should be empty, got %d rows", len(cfg.Catalog))
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Policy.StressWindowDays != 7 {
		t.Errorf("StressWindowDays = %d, want default 7", cfg.Policy.StressWindowDays)
	}
}

func TestLoad_OverridesPolicyAndCatalog(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	content := `
[policy]
stress_window_days = 14
low_balance_day_limit = 10
negative_day_limit = 12
margin_drop_cap = 0.25

[[catalog]]
name = "Widget"
selling_price = 50.0
cost_price = 30.0
quantity = 100
`
	cfgDir := filepath.Join(dir, "cashintel")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Policy.StressWindowDays != 14 {
		t.Errorf("StressWindowDays = %d, want 14", cfg.Policy.StressWindowDays)
	}
	if cfg.Policy.MarginDropCap != 0.25 {
		t.Errorf("MarginDropCap = %v, want 0.25", cfg.Policy.MarginDropCap)
	}

	products := cfg.Products()
	if len(products) != 1 {
		t.Fatalf("Products() len = %d, want 1", len(products))
	}
	if products[0].Name != "Widget" {
		t.Errorf("product name = %q, want Widget", products[0].Name)
	}
	if products[0].SellingPrice.String() != "50" {
		t.Errorf("selling price = %s, want 50", products[0].SellingPrice)
	}
	if products[0].Quantity != 100 {
		t.Errorf("quantity = %d, want 100", products[0].Quantity)
	}
}

func TestSaveThenLoad_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Policy.LowBalanceDayLimit = 9
	if err := Save(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Policy.LowBalanceDayLimit != 9 {
		t.Errorf("LowBalanceDayLimit = %d, want 9", loaded.Policy.LowBalanceDayLimit)
	}
}
