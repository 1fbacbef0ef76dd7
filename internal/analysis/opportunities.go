package analysis

import "finadvisor/internal/models"

const (
	heavyCategoryMin      = 200.0 // category totals above this suggest a reduction
	categoryReductionRate = 0.2
	subscriptionAuditMin  = 50.0 // individual entertainment expenses above this
)

// Opportunities derives the two savings lists. A heavy category and a large
// entertainment charge can both appear; the overlap is intentional and the
// combined total is an optimistic ceiling, not a guaranteed saving.
func Opportunities(txs []models.Transaction) SavingsOpportunities {
	opps := SavingsOpportunities{
		CategoryReductions: []CategoryReduction{},
		SubscriptionAudits: []SubscriptionAudit{},
	}

	for _, ca := range sortedCategories(totalsByType(txs, models.TransactionTypeExpense)) {
		if ca.Amount > heavyCategoryMin {
			opps.CategoryReductions = append(opps.CategoryReductions, CategoryReduction{
				Category:         ca.Category,
				CurrentSpending:  ca.Amount,
				PotentialSavings: ca.Amount * categoryReductionRate,
			})
		}
	}

	for i := range txs {
		tx := &txs[i]
		if tx.Type == models.TransactionTypeExpense && tx.Category == "entertainment" && tx.Amount > subscriptionAuditMin {
			opps.SubscriptionAudits = append(opps.SubscriptionAudits, SubscriptionAudit{
				Description:      tx.Description,
				Amount:           tx.Amount,
				PotentialSavings: tx.Amount,
			})
		}
	}

	for _, r := range opps.CategoryReductions {
		opps.TotalPotentialSavings += r.PotentialSavings
	}
	for _, a := range opps.SubscriptionAudits {
		opps.TotalPotentialSavings += a.PotentialSavings
	}
	return opps
}
