package analysis

import (
	"strings"
	"testing"

	"finadvisor/internal/models"
)

func TestFinancialContext(t *testing.T) {
	t.Run("covers totals categories and goals", func(t *testing.T) {
		txs := []models.Transaction{
			income(3000, "salary", testNow),
			expense(1200, "rent", testNow),
			expense(300, "food", testNow),
			expense(100, "transport", testNow),
			expense(50, "coffee", testNow),
		}
		goals := []models.Goal{
			{Title: "Emergency fund", TargetAmount: 5000, CurrentAmount: 1000},
			{Title: "Done", TargetAmount: 100, CurrentAmount: 100},
		}

		ctx := FinancialContext(txs, goals)

		for _, want := range []string{
			"Total income: 3000.00",
			"Total expenses: 1650.00",
			"Net worth: 1350.00",
			"Transactions recorded: 5",
			"rent: 1200.00",
			"food: 300.00",
			"transport: 100.00",
			"Active savings goals: 1",
		} {
			if !strings.Contains(ctx, want) {
				t.Errorf("context missing %q:\n%s", want, ctx)
			}
		}

		// Only the top three categories are listed.
		if strings.Contains(ctx, "coffee") {
			t.Errorf("context should not include the fourth category:\n%s", ctx)
		}
	})

	t.Run("handles an empty snapshot", func(t *testing.T) {
		ctx := FinancialContext(nil, nil)
		if !strings.Contains(ctx, "Transactions recorded: 0") {
			t.Errorf("unexpected empty context:\n%s", ctx)
		}
	})
}
