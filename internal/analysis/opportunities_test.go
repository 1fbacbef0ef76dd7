package analysis

import (
	"testing"

	"finadvisor/internal/models"
)

func TestOpportunities(t *testing.T) {
	t.Run("heavy category suggests a 20 percent reduction", func(t *testing.T) {
		txs := []models.Transaction{
			expense(250, "rent", testNow),
		}

		opps := Opportunities(txs)
		if len(opps.CategoryReductions) != 1 {
			t.Fatalf("expected 1 reduction, got %d", len(opps.CategoryReductions))
		}
		r := opps.CategoryReductions[0]
		if r.Category != "rent" || r.CurrentSpending != 250 || r.PotentialSavings != 50 {
			t.Errorf("unexpected reduction: %+v", r)
		}
	})

	t.Run("category threshold is strict", func(t *testing.T) {
		txs := []models.Transaction{
			expense(200, "rent", testNow),
		}
		if opps := Opportunities(txs); len(opps.CategoryReductions) != 0 {
			t.Errorf("expected no reductions at exactly 200, got %+v", opps.CategoryReductions)
		}
	})

	t.Run("large entertainment charges each get an audit entry", func(t *testing.T) {
		txs := []models.Transaction{
			expense(60, "entertainment", testNow),
			expense(70, "entertainment", testNow),
			expense(50, "entertainment", testNow), // not above 50
		}

		opps := Opportunities(txs)
		if len(opps.SubscriptionAudits) != 2 {
			t.Fatalf("expected 2 audits, got %d", len(opps.SubscriptionAudits))
		}
		if opps.SubscriptionAudits[0].PotentialSavings != 60 {
			t.Errorf("audit savings should equal the full amount, got %f", opps.SubscriptionAudits[0].PotentialSavings)
		}
	})

	t.Run("lists overlap and are not deduplicated", func(t *testing.T) {
		// Entertainment totals 300, so it appears both as a category
		// reduction and as individual subscription audits.
		txs := []models.Transaction{
			expense(60, "entertainment", testNow),
			expense(70, "entertainment", testNow),
			expense(80, "entertainment", testNow),
			expense(90, "entertainment", testNow),
		}

		opps := Opportunities(txs)
		if len(opps.CategoryReductions) != 1 {
			t.Fatalf("expected entertainment category reduction, got %+v", opps.CategoryReductions)
		}
		if len(opps.SubscriptionAudits) != 4 {
			t.Fatalf("expected 4 subscription audits, got %d", len(opps.SubscriptionAudits))
		}
		// 300*0.2 from the reduction plus the four full amounts.
		if opps.TotalPotentialSavings != 360 {
			t.Errorf("expected combined savings 360, got %f", opps.TotalPotentialSavings)
		}
	})

	t.Run("income never creates opportunities", func(t *testing.T) {
		txs := []models.Transaction{
			income(5000, "salary", testNow),
			income(90, "entertainment", testNow),
		}
		opps := Opportunities(txs)
		if len(opps.CategoryReductions) != 0 || len(opps.SubscriptionAudits) != 0 {
			t.Errorf("expected no opportunities from income, got %+v", opps)
		}
	})
}
