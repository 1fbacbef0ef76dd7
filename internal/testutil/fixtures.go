package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"finadvisor/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestTransaction creates a transaction of the given type, amount, and
// category, dated now.
func CreateTestTransaction(t *testing.T, db *gorm.DB, txType models.TransactionType, amount float64, category string) *models.Transaction {
	t.Helper()
	return CreateTestTransactionAt(t, db, txType, amount, category, time.Now())
}

// CreateTestTransactionAt creates a transaction with an explicit date.
func CreateTestTransactionAt(t *testing.T, db *gorm.DB, txType models.TransactionType, amount float64, category string, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Type:        txType,
		Amount:      amount,
		Category:    category,
		Description: fmt.Sprintf("Test transaction %d", nextID()),
		Date:        date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestGoal creates a goal with the given target and current amounts,
// deadline 90 days out.
func CreateTestGoal(t *testing.T, db *gorm.DB, target, current float64) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		Title:         fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount:  target,
		CurrentAmount: current,
		Deadline:      time.Now().AddDate(0, 0, 90),
		Category:      "savings",
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}
