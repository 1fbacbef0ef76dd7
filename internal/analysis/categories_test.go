package analysis

import (
	"testing"

	"finadvisor/internal/models"
)

func TestCategories(t *testing.T) {
	t.Run("splits totals by transaction type", func(t *testing.T) {
		txs := []models.Transaction{
			expense(100, "food", testNow),
			expense(50, "food", testNow),
			income(2000, "salary", testNow),
			income(100, "refund", testNow),
		}

		summary := Categories(txs)
		if len(summary.Expenses) != 1 || summary.Expenses[0].Amount != 150 {
			t.Errorf("unexpected expense totals: %+v", summary.Expenses)
		}
		if len(summary.Income) != 2 || summary.Income[0].Category != "salary" {
			t.Errorf("unexpected income totals: %+v", summary.Income)
		}
	})

	t.Run("empty category is grouped as uncategorized", func(t *testing.T) {
		txs := []models.Transaction{
			{Type: models.TransactionTypeExpense, Amount: 40, Description: "mystery", Date: testNow},
		}

		summary := Categories(txs)
		if len(summary.Expenses) != 1 || summary.Expenses[0].Category != "uncategorized" {
			t.Errorf("expected uncategorized bucket, got %+v", summary.Expenses)
		}
	})

	t.Run("month breakdown keeps the six largest categories", func(t *testing.T) {
		txs := []models.Transaction{
			expense(70, "rent", testNow),
			expense(60, "food", testNow),
			expense(50, "transport", testNow),
			expense(40, "entertainment", testNow),
			expense(30, "shopping", testNow),
			expense(20, "utilities", testNow),
			expense(10, "coffee", testNow),
			expense(999, "travel", testNow.AddDate(0, -1, 0)),
			income(2000, "salary", testNow),
		}

		top := MonthTopCategories(txs, "2026-08", 6)
		if len(top) != 6 {
			t.Fatalf("expected 6 categories, got %d", len(top))
		}
		if top[0].Category != "rent" || top[0].Amount != 70 {
			t.Errorf("expected rent first, got %+v", top[0])
		}
		for _, entry := range top {
			if entry.Category == "coffee" {
				t.Error("expected the smallest category to be cut")
			}
			if entry.Category == "travel" {
				t.Error("expected other months to be excluded")
			}
		}
	})

	t.Run("month breakdown of an empty month is empty", func(t *testing.T) {
		txs := []models.Transaction{
			expense(70, "rent", testNow),
		}

		if top := MonthTopCategories(txs, "2026-07", 6); len(top) != 0 {
			t.Errorf("expected no categories, got %+v", top)
		}
	})

	t.Run("equal amounts sort alphabetically", func(t *testing.T) {
		txs := []models.Transaction{
			expense(75, "zoo", testNow),
			expense(75, "art", testNow),
			expense(75, "food", testNow),
		}

		summary := Categories(txs)
		want := []string{"art", "food", "zoo"}
		for i, category := range want {
			if summary.Expenses[i].Category != category {
				t.Errorf("position %d: expected %q, got %q", i, category, summary.Expenses[i].Category)
			}
		}
	})
}
