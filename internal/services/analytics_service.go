package services

import (
	"io"
	"time"

	"finadvisor/internal/analysis"
	"finadvisor/internal/csvimport"
	apperrors "finadvisor/internal/errors"
	"finadvisor/internal/models"
)

// dashboardCategoryCount is the width of the current-month category breakdown.
const dashboardCategoryCount = 6

// analyticsService runs the analytics engine over store snapshots and
// uploaded batches.
type analyticsService struct {
	transactions TransactionServicer
	goals        GoalServicer
	summary      SummaryServicer
	now          func() time.Time
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService(transactions TransactionServicer, goals GoalServicer, summary SummaryServicer) AnalyticsServicer {
	return &analyticsService{
		transactions: transactions,
		goals:        goals,
		summary:      summary,
		now:          time.Now,
	}
}

// AnalyzeStored runs the engine over a snapshot of the live store.
func (s *analyticsService) AnalyzeStored() (*analysis.Report, error) {
	snapshot, err := s.transactions.Snapshot()
	if err != nil {
		return nil, err
	}
	return analysis.Analyze(s.now(), snapshot), nil
}

// AnalyzeBatch runs the engine over an uploaded CSV without persisting
// anything. The live store is not consulted and not affected.
func (s *analyticsService) AnalyzeBatch(r io.Reader) (*BatchAnalysis, error) {
	parsed, err := csvimport.Parse(r)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrMalformedUpload, err)
	}
	if len(parsed.Rows) == 0 {
		return nil, apperrors.ErrEmptyBatch
	}

	batch := csvimport.Transactions(parsed.Rows, "")
	return &BatchAnalysis{
		Report:   analysis.Analyze(s.now(), batch),
		Analyzed: len(batch),
		Errors:   parsed.Errors,
	}, nil
}

// GetMonthlySummaries returns the stored monthly rollups.
func (s *analyticsService) GetMonthlySummaries() ([]models.MonthlySummary, error) {
	return s.summary.GetSummaries()
}

// GetYearlyBreakdown computes per-month shares for a calendar year.
func (s *analyticsService) GetYearlyBreakdown(year int) (*analysis.YearlyBreakdown, error) {
	snapshot, err := s.transactions.Snapshot()
	if err != nil {
		return nil, err
	}
	breakdown := analysis.Yearly(snapshot, year)
	return &breakdown, nil
}

// GetDashboard aggregates the current-month view with recent activity and
// goal progress.
func (s *analyticsService) GetDashboard() (*Dashboard, error) {
	snapshot, err := s.transactions.Snapshot()
	if err != nil {
		return nil, err
	}

	now := s.now()
	month := now.Format("2006-01")
	dashboard := &Dashboard{
		Month:              month,
		TotalTransactions:  int64(len(snapshot)),
		RecentTransactions: recent(snapshot, 5),
	}

	for _, point := range analysis.MonthlySeries(snapshot) {
		if point.Month == month {
			dashboard.MonthIncome = point.Income
			dashboard.MonthExpenses = point.Expenses
			dashboard.MonthNet = point.Net
		}
	}
	if dashboard.MonthIncome > 0 {
		dashboard.SavingsRate = dashboard.MonthNet / dashboard.MonthIncome * 100
	}
	dashboard.TopCategories = analysis.MonthTopCategories(snapshot, month, dashboardCategoryCount)

	goals, err := s.goals.GetGoalSummary()
	if err != nil {
		return nil, err
	}
	dashboard.Goals = goals

	return dashboard, nil
}

// recent returns up to n transactions from the tail of a date-ascending
// snapshot, newest first.
func recent(snapshot []models.Transaction, n int) []models.Transaction {
	out := make([]models.Transaction, 0, n)
	for i := len(snapshot) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, snapshot[i])
	}
	return out
}
