package services

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"finadvisor/internal/analysis"
	"finadvisor/internal/logger"
)

// advisorService answers finance questions, preferring the Gemini API and
// falling back to canned advice when no key is configured or the call fails.
type advisorService struct {
	transactions TransactionServicer
	goals        GoalServicer
	apiKey       string
	model        string
}

// NewAdvisorService creates a new AdvisorServicer.
func NewAdvisorService(transactions TransactionServicer, goals GoalServicer, apiKey, model string) AdvisorServicer {
	return &advisorService{
		transactions: transactions,
		goals:        goals,
		apiKey:       apiKey,
		model:        model,
	}
}

// Chat builds the financial context from the live store and asks the advisor.
// The remote call is best-effort: any failure degrades to the local fallback
// rather than surfacing an error.
func (s *advisorService) Chat(ctx context.Context, message string) (*AdvisorReply, error) {
	txs, err := s.transactions.Snapshot()
	if err != nil {
		return nil, err
	}
	goals, err := s.goals.GetAllGoals()
	if err != nil {
		return nil, err
	}

	finContext := analysis.FinancialContext(txs, goals)

	if s.apiKey != "" {
		answer, err := s.generate(ctx, finContext, message)
		if err == nil {
			return &AdvisorReply{Message: answer, Source: "gemini"}, nil
		}
		logger.Get().Warnw("advisor api call failed, using fallback", "error", err)
	}

	return &AdvisorReply{Message: FallbackAdvice(message), Source: "fallback"}, nil
}

func (s *advisorService) generate(ctx context.Context, finContext, message string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("creating genai client: %w", err)
	}

	prompt := fmt.Sprintf(
		"You are a personal finance advisor. Here is the user's current financial situation:\n\n%s\nAnswer the user's question concisely and practically.\n\nQuestion: %s",
		finContext, message,
	)

	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: prompt}}},
	}

	resp, err := client.Models.GenerateContent(ctx, s.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generating content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}

// FallbackAdvice returns keyword-matched advice when the AI backend is
// unavailable. It is deterministic so the degraded path stays testable.
func FallbackAdvice(message string) string {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "save") || strings.Contains(lower, "saving"):
		return "Start by automating a fixed transfer to savings right after each payday. Even 10% of income adds up, and automation removes the decision entirely."
	case strings.Contains(lower, "invest"):
		return "Before investing, make sure high-interest debt is paid off and you have an emergency fund. Then favor low-cost, diversified index funds over picking individual stocks."
	case strings.Contains(lower, "budget"):
		return "Try the 50/30/20 split: 50% of income on needs, 30% on wants, 20% on savings. Review your category totals monthly and adjust the biggest outliers first."
	case strings.Contains(lower, "emergency"):
		return "Aim for an emergency fund covering 3 to 6 months of essential expenses, kept in an account you can access quickly but do not touch day to day."
	case strings.Contains(lower, "debt"):
		return "List your debts by interest rate and pay extra toward the most expensive one while making minimums on the rest. Avoid taking on new debt until it is cleared."
	default:
		return "Track every expense for a month, then look at your largest categories. Small recurring costs are usually the easiest place to recover savings."
	}
}
