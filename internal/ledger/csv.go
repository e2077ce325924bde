// Package ledger reads and validates bank-statement CSV exports.
//
// A statement needs the columns date, credit, debit and balance, matched
// case-insensitively; description is optional. Rows are trusted to arrive in
// chronological order with balance as the running balance after each row.
package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/msmelabs/cashintel/internal/model"
)

// requiredColumns must all be present after case folding.
var requiredColumns = []string{"date", "credit", "debit", "balance"}

// dateLayouts are tried in order; the first that parses wins.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02-01-2006",
}

// ReadFile opens and parses a statement CSV from disk.
func ReadFile(path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a statement CSV and returns its transactions in input order.
// Column names are folded to lowercase before the schema check; when two
// columns fold to the same name the first occurrence wins.
func Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoHeader
	}

	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, ok := cols[key]; !ok {
			cols[key] = i
		}
	}
	for _, req := range requiredColumns {
		if _, ok := cols[req]; !ok {
			return nil, &SchemaError{Column: req}
		}
	}
	descCol, hasDesc := cols["description"]

	var txns []model.Transaction
	for i, rec := range records[1:] {
		row := i + 1

		date, ok := parseDate(rec[cols["date"]])
		if !ok {
			return nil, &DateParseError{Row: row, Value: rec[cols["date"]]}
		}

		credit, err := parseAmount(rec[cols["credit"]])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing credit %q: %w", row, rec[cols["credit"]], err)
		}
		debit, err := parseAmount(rec[cols["debit"]])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing debit %q: %w", row, rec[cols["debit"]], err)
		}
		balance, err := parseAmount(rec[cols["balance"]])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing balance %q: %w", row, rec[cols["balance"]], err)
		}

		desc := model.NoDescription
		if hasDesc && strings.TrimSpace(rec[descCol]) != "" {
			desc = strings.TrimSpace(rec[descCol])
		}

		txns = append(txns, model.Transaction{
			Date:        date,
			Credit:      credit,
			Debit:       debit,
			Balance:     balance,
			Description: desc,
		})
	}

	return txns, nil
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseAmount treats an empty cell as zero, matching the common bank-export
// convention of leaving the unused credit/debit side blank.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
