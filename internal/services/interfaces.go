package services

import (
	"context"
	"io"
	"time"

	"finadvisor/internal/analysis"
	"finadvisor/internal/csvimport"
	"finadvisor/internal/models"
	"finadvisor/internal/pagination"
)

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Type     *models.TransactionType
	Category *string
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(transactionType models.TransactionType, amount float64, category, description string, date time.Time) (*models.Transaction, error)
	GetTransactions(page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(id uint) (*models.Transaction, error)
	DeleteTransaction(id uint) error
	Snapshot() ([]models.Transaction, error)
}

// GoalProgress contains derived progress data for a goal. It is computed on
// every read and never stored.
type GoalProgress struct {
	GoalID    uint    `json:"goal_id"`
	Progress  float64 `json:"progress"`
	DaysLeft  int     `json:"days_left"`
	Completed bool    `json:"completed"`
	Remaining float64 `json:"remaining"`
}

// GoalSummary aggregates progress across all goals for the dashboard.
type GoalSummary struct {
	TotalGoals      int     `json:"total_goals"`
	CompletedGoals  int     `json:"completed_goals"`
	TotalTarget     float64 `json:"total_target"`
	TotalSaved      float64 `json:"total_saved"`
	OverallProgress float64 `json:"overall_progress"`
}

// GoalServicer defines the contract for goal-related business logic.
type GoalServicer interface {
	CreateGoal(title string, targetAmount, currentAmount float64, deadline time.Time, category string) (*models.Goal, error)
	GetGoals(page pagination.PageRequest) (*pagination.PageResponse[models.Goal], error)
	GetGoalByID(id uint) (*models.Goal, error)
	UpdateGoal(id uint, title *string, targetAmount, currentAmount *float64, deadline *time.Time, category *string) (*models.Goal, error)
	DeleteGoal(id uint) error
	GetGoalProgress(id uint) (*GoalProgress, error)
	GetGoalSummary() (*GoalSummary, error)
	GetAllGoals() ([]models.Goal, error)
}

// SummaryServicer maintains the per-month rollups derived from transactions.
type SummaryServicer interface {
	Recompute(months []string) error
	GetSummaries() ([]models.MonthlySummary, error)
}

// ImportResult reports the outcome of committing a CSV batch.
type ImportResult struct {
	BatchID  string               `json:"batch_id"`
	Imported int                  `json:"imported"`
	Skipped  int                  `json:"skipped"`
	Errors   []csvimport.RowError `json:"errors"`
}

// ImportServicer defines the contract for CSV batch ingestion.
type ImportServicer interface {
	ImportCSV(r io.Reader) (*ImportResult, error)
}

// BatchAnalysis is the result of analyzing an uploaded CSV without storing it.
type BatchAnalysis struct {
	Report   *analysis.Report     `json:"report"`
	Analyzed int                  `json:"analyzed"`
	Errors   []csvimport.RowError `json:"errors"`
}

// Dashboard aggregates the landing-page view of the current finances.
type Dashboard struct {
	Month              string                    `json:"month"`
	MonthIncome        float64                   `json:"month_income"`
	MonthExpenses      float64                   `json:"month_expenses"`
	MonthNet           float64                   `json:"month_net"`
	SavingsRate        float64                   `json:"savings_rate"`
	TopCategories      []analysis.CategoryAmount `json:"top_categories"`
	TotalTransactions  int64                     `json:"total_transactions"`
	RecentTransactions []models.Transaction      `json:"recent_transactions"`
	Goals              *GoalSummary              `json:"goals"`
}

// AnalyticsServicer defines the contract for running the analytics engine.
type AnalyticsServicer interface {
	AnalyzeStored() (*analysis.Report, error)
	AnalyzeBatch(r io.Reader) (*BatchAnalysis, error)
	GetMonthlySummaries() ([]models.MonthlySummary, error)
	GetYearlyBreakdown(year int) (*analysis.YearlyBreakdown, error)
	GetDashboard() (*Dashboard, error)
}

// AdvisorReply is an advisor answer plus the source that produced it.
type AdvisorReply struct {
	Message string `json:"message"`
	Source  string `json:"source"`
}

// AdvisorServicer defines the contract for the AI financial advisor.
type AdvisorServicer interface {
	Chat(ctx context.Context, message string) (*AdvisorReply, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(action, resourceType, resourceID, ipAddress string, details map[string]interface{})
}
