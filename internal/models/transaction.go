package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a financial transaction in the system.
// Amount is always positive; the sign is carried by Type.
type Transaction struct {
	Base
	Type        TransactionType `gorm:"not null;index" json:"type"`
	Amount      float64         `gorm:"not null" json:"amount"`
	Category    string          `gorm:"not null;index" json:"category"`
	Description string          `gorm:"not null" json:"description"`
	Date        time.Time       `gorm:"not null;index" json:"date"`

	// BatchID tags transactions that arrived through a CSV import.
	BatchID *string `gorm:"index" json:"batch_id,omitempty"`
}

// MonthKey returns the YYYY-MM bucket key for the transaction date.
func (t *Transaction) MonthKey() string {
	return t.Date.Format("2006-01")
}

// DisplayCategory returns the category with the empty-string fallback applied.
func (t *Transaction) DisplayCategory() string {
	if t.Category == "" {
		return "uncategorized"
	}
	return t.Category
}
