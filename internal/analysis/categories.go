package analysis

import (
	"sort"

	"finadvisor/internal/models"
)

// totalsByType sums amounts per category for transactions of the given type.
// Empty categories are grouped under "uncategorized".
func totalsByType(txs []models.Transaction, typ models.TransactionType) map[string]float64 {
	totals := make(map[string]float64)
	for i := range txs {
		if txs[i].Type != typ {
			continue
		}
		totals[txs[i].DisplayCategory()] += txs[i].Amount
	}
	return totals
}

// sortedCategories flattens a totals map into a slice sorted by amount
// descending. Equal amounts fall back to alphabetical order so results are
// stable across runs.
func sortedCategories(totals map[string]float64) []CategoryAmount {
	out := make([]CategoryAmount, 0, len(totals))
	for category, amount := range totals {
		out = append(out, CategoryAmount{Category: category, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// topN returns up to n entries from an already-sorted category slice.
func topN(sorted []CategoryAmount, n int) []CategoryAmount {
	if len(sorted) <= n {
		return sorted
	}
	return sorted[:n]
}

// MonthTopCategories returns the n largest expense categories within a
// single YYYY-MM month, sorted by amount descending.
func MonthTopCategories(txs []models.Transaction, month string, n int) []CategoryAmount {
	totals := make(map[string]float64)
	for i := range txs {
		if txs[i].Type != models.TransactionTypeExpense || txs[i].MonthKey() != month {
			continue
		}
		totals[txs[i].DisplayCategory()] += txs[i].Amount
	}
	return topN(sortedCategories(totals), n)
}

// Categories builds the per-category summary for both transaction types.
// Top holds the five largest expense categories.
func Categories(txs []models.Transaction) CategorySummary {
	expenses := sortedCategories(totalsByType(txs, models.TransactionTypeExpense))
	income := sortedCategories(totalsByType(txs, models.TransactionTypeIncome))
	return CategorySummary{
		Expenses: expenses,
		Income:   income,
		Top:      topN(expenses, 5),
	}
}
