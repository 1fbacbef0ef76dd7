package services

import (
	"context"
	"strings"
	"testing"

	"finadvisor/internal/models"
	"finadvisor/internal/testutil"
)

func TestFallbackAdvice(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    string
	}{
		{"savings question", "How can I save more money?", "automating"},
		{"investment question", "Should I invest in stocks?", "index funds"},
		{"budget question", "Help me build a budget", "50/30/20"},
		{"emergency fund question", "How big should my emergency fund be?", "3 to 6 months"},
		{"debt question", "What about my credit card debt?", "interest rate"},
		{"anything else", "What's the weather like?", "largest categories"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			advice := FallbackAdvice(tc.message)
			if !strings.Contains(advice, tc.want) {
				t.Errorf("expected advice to mention %q, got:\n%s", tc.want, advice)
			}
		})
	}
}

func TestAdvisorChat(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	summary := NewSummaryService(db)
	transactions := NewTransactionService(db, summary)
	goals := NewGoalService(db)

	testutil.CreateTestTransaction(t, db, models.TransactionTypeIncome, 3000, "salary")
	testutil.CreateTestTransaction(t, db, models.TransactionTypeExpense, 1200, "rent")
	testutil.CreateTestGoal(t, db, 5000, 1000)

	t.Run("falls back without an api key", func(t *testing.T) {
		service := NewAdvisorService(transactions, goals, "", "gemini-2.0-flash")

		reply, err := service.Chat(context.Background(), "How do I save more?")
		testutil.AssertNoError(t, err)

		if reply.Source != "fallback" {
			t.Errorf("expected fallback source, got %q", reply.Source)
		}
		if reply.Message == "" {
			t.Error("expected a non-empty reply")
		}
	})
}
