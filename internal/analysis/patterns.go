package analysis

import (
	"time"

	"finadvisor/internal/models"
)

// minAverageDays floors the average-daily denominator so short histories do
// not produce inflated daily figures.
const minAverageDays = 30.0

var weekdays = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Patterns computes the spending-pattern summary for the snapshot.
// AverageDaily divides total spending by the days elapsed since the earliest
// expense, measured fractionally against now and floored at 30 days.
func Patterns(now time.Time, txs []models.Transaction) SpendingPatterns {
	var totalSpent float64
	var earliest time.Time
	byWeekday := make([]float64, 7)

	for i := range txs {
		if txs[i].Type != models.TransactionTypeExpense {
			continue
		}
		totalSpent += txs[i].Amount
		byWeekday[txs[i].Date.Weekday()] += txs[i].Amount
		if earliest.IsZero() || txs[i].Date.Before(earliest) {
			earliest = txs[i].Date
		}
	}

	days := minAverageDays
	if !earliest.IsZero() {
		if elapsed := now.Sub(earliest).Hours() / 24; elapsed > days {
			days = elapsed
		}
	}

	expenseTotals := sortedCategories(totalsByType(txs, models.TransactionTypeExpense))

	return SpendingPatterns{
		TotalSpent:           totalSpent,
		AverageDaily:         totalSpent / days,
		PeakSpendingDay:      peakWeekday(byWeekday),
		PeakSpendingCategory: peakCategory(expenseTotals),
		TopCategories:        topN(expenseTotals, 5),
	}
}

// peakWeekday picks the weekday with the largest expense sum. Ties resolve to
// the earlier weekday in calendar order, Sunday first.
func peakWeekday(byWeekday []float64) string {
	best := -1
	for i, amount := range byWeekday {
		if amount <= 0 {
			continue
		}
		if best == -1 || amount > byWeekday[best] {
			best = i
		}
	}
	if best == -1 {
		return ""
	}
	return weekdays[best]
}

// peakCategory returns the top expense category, or "" when there are none.
// The input is already sorted with alphabetical tie-breaks.
func peakCategory(sorted []CategoryAmount) string {
	if len(sorted) == 0 {
		return ""
	}
	return sorted[0].Category
}
