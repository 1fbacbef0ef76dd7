package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "finadvisor/internal/errors"
	"finadvisor/internal/models"
	"finadvisor/internal/pagination"
)

// goalService handles savings-goal business logic.
type goalService struct {
	db *gorm.DB
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB) GoalServicer {
	return &goalService{db: db}
}

// CreateGoal validates and stores a new savings goal.
func (s *goalService) CreateGoal(title string, targetAmount, currentAmount float64, deadline time.Time, category string) (*models.Goal, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title is required")
	}
	if targetAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be greater than zero")
	}
	if currentAmount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "current amount cannot be negative")
	}

	goal := &models.Goal{
		Title:         strings.TrimSpace(title),
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		Deadline:      deadline,
		Category:      strings.ToLower(strings.TrimSpace(category)),
	}

	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goal, nil
}

// GetGoals retrieves a paginated list of goals.
func (s *goalService) GetGoals(page pagination.PageRequest) (*pagination.PageResponse[models.Goal], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.Goal{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var goals []models.Goal
	if err := s.db.Scopes(pagination.Paginate(page)).
		Order("deadline ASC, id ASC").
		Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(goals, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetGoalByID retrieves a goal by ID.
func (s *goalService) GetGoalByID(id uint) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.First(&goal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}

// UpdateGoal applies partial updates to a goal. Nil fields are left unchanged.
func (s *goalService) UpdateGoal(id uint, title *string, targetAmount, currentAmount *float64, deadline *time.Time, category *string) (*models.Goal, error) {
	goal, err := s.GetGoalByID(id)
	if err != nil {
		return nil, err
	}

	if title != nil {
		if strings.TrimSpace(*title) == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title cannot be empty")
		}
		goal.Title = strings.TrimSpace(*title)
	}
	if targetAmount != nil {
		if *targetAmount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be greater than zero")
		}
		goal.TargetAmount = *targetAmount
	}
	if currentAmount != nil {
		if *currentAmount < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "current amount cannot be negative")
		}
		goal.CurrentAmount = *currentAmount
	}
	if deadline != nil {
		goal.Deadline = *deadline
	}
	if category != nil {
		goal.Category = strings.ToLower(strings.TrimSpace(*category))
	}

	if err := s.db.Save(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goal, nil
}

// DeleteGoal soft-deletes a goal.
func (s *goalService) DeleteGoal(id uint) error {
	goal, err := s.GetGoalByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(goal).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetGoalProgress derives progress data for one goal.
func (s *goalService) GetGoalProgress(id uint) (*GoalProgress, error) {
	goal, err := s.GetGoalByID(id)
	if err != nil {
		return nil, err
	}

	remaining := goal.TargetAmount - goal.CurrentAmount
	if remaining < 0 {
		remaining = 0
	}

	return &GoalProgress{
		GoalID:    goal.ID,
		Progress:  goal.Progress(),
		DaysLeft:  goal.DaysLeft(time.Now()),
		Completed: goal.Completed(),
		Remaining: remaining,
	}, nil
}

// GetGoalSummary aggregates progress across all goals.
func (s *goalService) GetGoalSummary() (*GoalSummary, error) {
	goals, err := s.GetAllGoals()
	if err != nil {
		return nil, err
	}

	summary := &GoalSummary{TotalGoals: len(goals)}
	for i := range goals {
		summary.TotalTarget += goals[i].TargetAmount
		summary.TotalSaved += goals[i].CurrentAmount
		if goals[i].Completed() {
			summary.CompletedGoals++
		}
	}
	if summary.TotalTarget > 0 {
		summary.OverallProgress = summary.TotalSaved / summary.TotalTarget * 100
		if summary.OverallProgress > 100 {
			summary.OverallProgress = 100
		}
	}
	return summary, nil
}

// GetAllGoals returns every goal, used for advisor context and summaries.
func (s *goalService) GetAllGoals() ([]models.Goal, error) {
	var goals []models.Goal
	if err := s.db.Order("deadline ASC, id ASC").Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goals, nil
}
