// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatMoney formats a decimal amount with comma grouping and two decimal
// places. e.g., 1234567.5 -> "1,234,567.50"
func FormatMoney(d decimal.Decimal) string {
	return groupDigits(d.StringFixed(2))
}

// FormatMoneyFloat formats a float-valued money rate the same way.
func FormatMoneyFloat(v float64) string {
	return groupDigits(strconv.FormatFloat(v, 'f', 2, 64))
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats an already-scaled percentage value.
// e.g., 35.928 -> "35.9%"
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatDays formats a fractional day count. e.g., 12.5 -> "12.5 days"
func FormatDays(v float64) string {
	return fmt.Sprintf("%.1f days", v)
}

// FormatDate formats a calendar date without a time component.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// groupDigits inserts comma separators into the integer part of a plain
// decimal string, preserving sign and fraction.
func groupDigits(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, fracPart = s[:dot], s[dot:]
	}

	var groups []string
	remainder := len(intPart) % 3
	if remainder > 0 {
		groups = append(groups, intPart[:remainder])
	}
	for i := remainder; i < len(intPart); i += 3 {
		groups = append(groups, intPart[i:i+3])
	}

	out := strings.Join(groups, ",")
	if neg {
		out = "-" + out
	}
	return out + fracPart
}
