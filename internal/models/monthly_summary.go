package models

// MonthlySummary is a per-month rollup of transactions, keyed by YYYY-MM.
// Summaries are recomputed in full from the month's transactions whenever a
// mutation touches the month; the transactions table is the source of truth.
type MonthlySummary struct {
	Base
	Month         string             `gorm:"uniqueIndex;not null" json:"month"`
	TotalIncome   float64            `gorm:"not null;default:0" json:"total_income"`
	TotalExpenses float64            `gorm:"not null;default:0" json:"total_expenses"`
	Categories    map[string]float64 `gorm:"serializer:json" json:"categories"`
}

// Net returns income minus expenses for the month.
func (s *MonthlySummary) Net() float64 {
	return s.TotalIncome - s.TotalExpenses
}
