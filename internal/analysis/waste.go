package analysis

import "finadvisor/internal/models"

// Waste classification thresholds. Comparisons are strict.
const (
	subscriptionWasteMin  = 50.0  // entertainment expenses above this
	impulsePurchaseMax    = 100.0 // shopping expenses below this
	unnecessaryExpenseMin = 30.0  // food expenses above this
)

// Waste classifies each expense under at most one waste reason. The rules are
// checked in order and the first match wins, so the three buckets are
// disjoint by construction.
func Waste(txs []models.Transaction) WasteAnalysis {
	var w WasteAnalysis
	var totalExpenses float64

	for i := range txs {
		tx := &txs[i]
		if tx.Type != models.TransactionTypeExpense {
			continue
		}
		totalExpenses += tx.Amount

		switch {
		case tx.Category == "entertainment" && tx.Amount > subscriptionWasteMin:
			w.SubscriptionWaste += tx.Amount
		case tx.Category == "shopping" && tx.Amount < impulsePurchaseMax:
			w.ImpulsePurchases += tx.Amount
		case tx.Category == "food" && tx.Amount > unnecessaryExpenseMin:
			w.UnnecessaryExpenses += tx.Amount
		}
	}

	w.TotalWaste = w.SubscriptionWaste + w.ImpulsePurchases + w.UnnecessaryExpenses
	if totalExpenses > 0 {
		w.WastePercentage = w.TotalWaste / totalExpenses * 100
	}
	return w
}
