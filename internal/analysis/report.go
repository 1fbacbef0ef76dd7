// Package analysis implements the derived-analytics engine. Every function
// is pure: results are computed from the transaction slice and the supplied
// reference time, the input is never mutated, and no state survives a call.
package analysis

// CategoryAmount pairs a category with a summed amount.
type CategoryAmount struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// SpendingPatterns summarizes expense behavior across the full history.
type SpendingPatterns struct {
	TotalSpent           float64          `json:"total_spent"`
	AverageDaily         float64          `json:"average_daily"`
	PeakSpendingDay      string           `json:"peak_spending_day"`
	PeakSpendingCategory string           `json:"peak_spending_category"`
	TopCategories        []CategoryAmount `json:"top_categories"`
}

// WasteAnalysis breaks flagged spending into three disjoint buckets.
// Each expense contributes to at most one bucket.
type WasteAnalysis struct {
	SubscriptionWaste   float64 `json:"subscription_waste"`
	ImpulsePurchases    float64 `json:"impulse_purchases"`
	UnnecessaryExpenses float64 `json:"unnecessary_expenses"`
	TotalWaste          float64 `json:"total_waste"`
	WastePercentage     float64 `json:"waste_percentage"`
}

// CategoryReduction suggests trimming a heavy spending category by 20%.
type CategoryReduction struct {
	Category         string  `json:"category"`
	CurrentSpending  float64 `json:"current_spending"`
	PotentialSavings float64 `json:"potential_savings"`
}

// SubscriptionAudit flags a single large entertainment charge for review.
// The full amount is treated as recoverable.
type SubscriptionAudit struct {
	Description      string  `json:"description"`
	Amount           float64 `json:"amount"`
	PotentialSavings float64 `json:"potential_savings"`
}

// SavingsOpportunities holds both opportunity lists. The lists intentionally
// overlap with each other and with WasteAnalysis; they answer different
// questions and are never deduplicated.
type SavingsOpportunities struct {
	CategoryReductions    []CategoryReduction `json:"category_reductions"`
	SubscriptionAudits    []SubscriptionAudit `json:"subscription_audits"`
	TotalPotentialSavings float64             `json:"total_potential_savings"`
}

// MonthlyPoint is one month of the income/expense series, keyed YYYY-MM.
type MonthlyPoint struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"`
}

// Trends carries the recent monthly series and month-over-month deltas.
// HasComparison is false when fewer than two months of data exist, in which
// case the change percentages are zero and carry no meaning.
type Trends struct {
	Monthly           []MonthlyPoint `json:"monthly"`
	IncomeChangePct   float64        `json:"income_change_pct"`
	ExpensesChangePct float64        `json:"expenses_change_pct"`
	HasComparison     bool           `json:"has_comparison"`
}

// CategorySummary lists per-category totals split by transaction type.
type CategorySummary struct {
	Expenses []CategoryAmount `json:"expenses"`
	Income   []CategoryAmount `json:"income"`
	Top      []CategoryAmount `json:"top"`
}

// Recommendation is a prioritized piece of advice with an estimated saving.
type Recommendation struct {
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	Priority         string  `json:"priority"`
	PotentialSavings float64 `json:"potential_savings"`
}

// Alert is a threshold warning derived from the current snapshot.
type Alert struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// Report is the full analytics output for one snapshot. It is built fresh on
// every Analyze call and never persisted.
type Report struct {
	Patterns        SpendingPatterns     `json:"patterns"`
	Waste           WasteAnalysis        `json:"waste"`
	Opportunities   SavingsOpportunities `json:"opportunities"`
	Trends          Trends               `json:"trends"`
	Categories      CategorySummary      `json:"categories"`
	Recommendations []Recommendation     `json:"recommendations"`
	Alerts          []Alert              `json:"alerts"`
}
