package analysis

import (
	"fmt"
	"sort"

	"finadvisor/internal/models"
)

// Insight thresholds.
const (
	wasteRecommendationPct   = 15.0
	savingsRecommendationMin = 100.0
	dailyRecommendationMin   = 50.0
	dailyAlertMin            = 100.0
	wasteAlertPct            = 20.0
	categoryAlertMin         = 500.0
	automateSavingsAmount    = 200.0
)

// Recommendations produces the ordered advice list. Each condition is
// evaluated independently against the snapshot, so several recommendations
// can fire at once. "Automate Savings" is always present and always last.
func Recommendations(patterns SpendingPatterns, waste WasteAnalysis, opps SavingsOpportunities) []Recommendation {
	recs := []Recommendation{}

	if waste.WastePercentage > wasteRecommendationPct {
		recs = append(recs, Recommendation{
			Title:            "Reduce Wasteful Spending",
			Description:      fmt.Sprintf("%.1f%% of your spending is flagged as wasteful. Cutting half of it would free up meaningful savings.", waste.WastePercentage),
			Priority:         "high",
			PotentialSavings: waste.TotalWaste * 0.5,
		})
	}

	if opps.TotalPotentialSavings > savingsRecommendationMin {
		recs = append(recs, Recommendation{
			Title:            "Optimize High-Spending Categories",
			Description:      "Your heaviest categories and large subscriptions add up to significant potential savings.",
			Priority:         "high",
			PotentialSavings: opps.TotalPotentialSavings,
		})
	}

	if patterns.AverageDaily > dailyRecommendationMin {
		recs = append(recs, Recommendation{
			Title:            "Reduce Daily Spending",
			Description:      fmt.Sprintf("You spend %.2f per day on average. Trimming 20%% would compound over a month.", patterns.AverageDaily),
			Priority:         "medium",
			PotentialSavings: patterns.AverageDaily * 0.2 * 30,
		})
	}

	recs = append(recs, Recommendation{
		Title:            "Automate Savings",
		Description:      "Set up an automatic monthly transfer to savings so progress does not depend on willpower.",
		Priority:         "low",
		PotentialSavings: automateSavingsAmount,
	})

	return recs
}

// Alerts derives threshold warnings. Category alerts are emitted in
// alphabetical order so repeated runs produce identical output.
func Alerts(patterns SpendingPatterns, waste WasteAnalysis, txs []models.Transaction) []Alert {
	alerts := []Alert{}

	if patterns.AverageDaily > dailyAlertMin {
		alerts = append(alerts, Alert{
			Type:     "high_daily_spending",
			Message:  fmt.Sprintf("Average daily spending of %.2f exceeds %.0f", patterns.AverageDaily, dailyAlertMin),
			Severity: "high",
		})
	}

	if waste.WastePercentage > wasteAlertPct {
		alerts = append(alerts, Alert{
			Type:     "high_waste",
			Message:  fmt.Sprintf("%.1f%% of spending is flagged as wasteful", waste.WastePercentage),
			Severity: "high",
		})
	}

	totals := totalsByType(txs, models.TransactionTypeExpense)
	heavy := make([]string, 0, len(totals))
	for category, amount := range totals {
		if amount > categoryAlertMin {
			heavy = append(heavy, category)
		}
	}
	sort.Strings(heavy)
	for _, category := range heavy {
		alerts = append(alerts, Alert{
			Type:     "category_overspend",
			Message:  fmt.Sprintf("Spending on %s has reached %.2f", category, totals[category]),
			Severity: "medium",
		})
	}

	return alerts
}
