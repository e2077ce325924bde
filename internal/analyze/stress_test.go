package analyze

import (
	"fmt"
	"testing"

	"github.com/msmelabs/cashintel/internal/config"
	"github.com/msmelabs/cashintel/internal/model"
)

func defaultPolicy() config.PolicyConfig {
	return config.DefaultConfig().Policy
}

func TestStress_TwoDayStatement(t *testing.T) {
	txns := twoDayStatement(t)
	m, err := Metrics(txns)
	if err != nil {
		t.Fatal(err)
	}

	stats := Stress(txns, m, defaultPolicy())

	if stats.Threshold != 1750 {
		t.Errorf("Threshold = %v, want 1750 (250 * 7)", stats.Threshold)
	}
	// Both balances (800, 500) sit below one week of average outflow.
	if stats.LowBalanceDays != 2 {
		t.Errorf("LowBalanceDays = %d, want 2", stats.LowBalanceDays)
	}
	// Only day 2 spends more than it earns.
	if stats.NegativeDays != 1 {
		t.Errorf("NegativeDays = %d, want 1", stats.NegativeDays)
	}
	if stats.Risk != model.RiskStable {
		t.Errorf("Risk = %s, want STABLE (2 <= 5 and 1 <= 7)", stats.Risk)
	}
}

func TestStress_HighStressOnLowBalanceDays(t *testing.T) {
	var txns []model.Transaction
	for i := 1; i <= 6; i++ {
		txns = append(txns,
			txn(t, fmt.Sprintf("2025-01-%02d", i), "100", "100", "50", ""))
	}
	m, err := Metrics(txns)
	if err != nil {
		t.Fatal(err)
	}

	stats := Stress(txns, m, defaultPolicy())
	if stats.LowBalanceDays != 6 {
		t.Fatalf("LowBalanceDays = %d, want 6", stats.LowBalanceDays)
	}
	if stats.Risk != model.RiskHighStress {
		t.Errorf("Risk = %s, want HIGH_STRESS (6 > 5)", stats.Risk)
	}
}

func TestStress_HighStressOnNegativeDays(t *testing.T) {
	var txns []model.Transaction
	for i := 1; i <= 8; i++ {
		// High balances keep low-balance days at zero; every day nets
		// negative.
		txns = append(txns,
			txn(t, fmt.Sprintf("2025-01-%02d", i), "0", "10", "100000", ""))
	}
	m, err := Metrics(txns)
	if err != nil {
		t.Fatal(err)
	}

	stats := Stress(txns, m, defaultPolicy())
	if stats.LowBalanceDays != 0 {
		t.Fatalf("LowBalanceDays = %d, want 0", stats.LowBalanceDays)
	}
	if stats.NegativeDays != 8 {
		t.Fatalf("NegativeDays = %d, want 8", stats.NegativeDays)
	}
	if stats.Risk != model.RiskHighStress {
		t.Errorf("Risk = %s, want HIGH_STRESS (8 > 7)", stats.Risk)
	}
}

func TestStress_PolicyOverridesWindow(t *testing.T) {
	txns := twoDayStatement(t)
	m, err := Metrics(txns)
	if err != nil {
		t.Fatal(err)
	}

	policy := defaultPolicy()
	policy.StressWindowDays = 1

	stats := Stress(txns, m, policy)
	if stats.Threshold != 250 {
		t.Errorf("Threshold = %v, want 250 with a 1-day window", stats.Threshold)
	}
	// 800 and 500 are both above 250 now.
	if stats.LowBalanceDays != 0 {
		t.Errorf("LowBalanceDays = %d, want 0", stats.LowBalanceDays)
	}
}

func TestCalendar_MatchesClassifierThreshold(t *testing.T) {
	txns := []model.Transaction{
		txn(t, "2025-01-01", "1000", "200", "800", ""),
		txn(t, "2025-01-02", "0", "300", "500", ""),
		txn(t, "2025-01-03", "5000", "0", "5500", ""),
	}
	m, err := Metrics(txns)
	if err != nil {
		t.Fatal(err)
	}
	policy := defaultPolicy()

	entries := Calendar(txns, m, policy)
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}

	// Threshold is 500/3*7 ≈ 1166.67: first two rows stressed, last not.
	wantStress := []bool{true, true, false}
	for i, e := range entries {
		if !e.Date.Equal(txns[i].Date) {
			t.Errorf("entry %d date = %v, want input order preserved", i, e.Date)
		}
		if !e.Balance.Equal(txns[i].Balance) {
			t.Errorf("entry %d balance = %s, want %s", i, e.Balance, txns[i].Balance)
		}
		if e.Stress != wantStress[i] {
			t.Errorf("entry %d stress = %v, want %v", i, e.Stress, wantStress[i])
		}
	}
}
