package analyze

import (
	"sort"
	"strings"

	"github.com/msmelabs/cashintel/internal/model"
)

// Expense categories. The set is closed; anything unmatched lands in Others.
const (
	CategoryRent      = "Rent"
	CategorySalaries  = "Salaries"
	CategoryUtilities = "Utilities"
	CategoryInventory = "Inventory"
	CategoryOthers    = "Others"
)

type categoryRule struct {
	category string
	keywords []string
}

// categoryRules are checked in order and the first rule with a matching
// keyword wins. "eb" is substring-matched, a short token that can
// false-positive on unrelated descriptions; it is kept as-is from the
// original rule set.
var categoryRules = []categoryRule{
	{CategoryRent, []string{"rent"}},
	{CategorySalaries, []string{"salary", "wage"}},
	{CategoryUtilities, []string{"electric", "eb"}},
	{CategoryInventory, []string{"purchase", "stock"}},
}

// Categorize maps a transaction description to its expense category.
// Matching is case-insensitive.
func Categorize(description string) string {
	desc := strings.ToLower(description)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(desc, kw) {
				return rule.category
			}
		}
	}
	return CategoryOthers
}

// CategoryTotals sums outflow per category. Every row is assigned to exactly
// one category, so the totals add up to the statement's total outflow.
// The result is sorted by descending total; categories never seen are absent.
func CategoryTotals(txns []model.Transaction) []model.CategoryTotal {
	index := make(map[string]int)
	var result []model.CategoryTotal

	for _, t := range txns {
		cat := Categorize(t.Description)
		i, ok := index[cat]
		if !ok {
			i = len(result)
			index[cat] = i
			result = append(result, model.CategoryTotal{Category: cat})
		}
		result[i].Total = result[i].Total.Add(t.Debit)
	}

	// Stable sort keeps first-appearance order on equal totals.
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Total.GreaterThan(result[j].Total)
	})

	return result
}
