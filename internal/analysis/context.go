package analysis

import (
	"fmt"
	"strings"

	"finadvisor/internal/models"
)

// FinancialContext renders a compact plain-text summary of the user's
// finances for the AI advisor prompt. It covers totals, net worth, the top
// three expense categories, and the active goal count.
func FinancialContext(txs []models.Transaction, goals []models.Goal) string {
	var totalIncome, totalExpenses float64
	for i := range txs {
		switch txs[i].Type {
		case models.TransactionTypeIncome:
			totalIncome += txs[i].Amount
		case models.TransactionTypeExpense:
			totalExpenses += txs[i].Amount
		}
	}

	activeGoals := 0
	for i := range goals {
		if !goals[i].Completed() {
			activeGoals++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Total income: %.2f\n", totalIncome)
	fmt.Fprintf(&b, "Total expenses: %.2f\n", totalExpenses)
	fmt.Fprintf(&b, "Net worth: %.2f\n", totalIncome-totalExpenses)
	fmt.Fprintf(&b, "Transactions recorded: %d\n", len(txs))

	top := topN(sortedCategories(totalsByType(txs, models.TransactionTypeExpense)), 3)
	if len(top) > 0 {
		b.WriteString("Top spending categories:\n")
		for _, ca := range top {
			fmt.Fprintf(&b, "  - %s: %.2f\n", ca.Category, ca.Amount)
		}
	}

	fmt.Fprintf(&b, "Active savings goals: %d\n", activeGoals)
	return b.String()
}
