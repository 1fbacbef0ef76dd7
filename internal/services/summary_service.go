package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "finadvisor/internal/errors"
	"finadvisor/internal/models"
)

// summaryService maintains the monthly rollups.
type summaryService struct {
	db *gorm.DB
}

// NewSummaryService creates a new SummaryServicer.
func NewSummaryService(db *gorm.DB) SummaryServicer {
	return &summaryService{db: db}
}

// Recompute rebuilds the rollup for each given YYYY-MM key from scratch.
// Partial updates are never applied; the month's transactions are the only
// source of truth. Months that end up with no transactions are removed.
func (s *summaryService) Recompute(months []string) error {
	for _, month := range months {
		if err := s.recomputeMonth(month); err != nil {
			return err
		}
	}
	return nil
}

func (s *summaryService) recomputeMonth(month string) error {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("invalid month key %q", month))
	}
	end := start.AddDate(0, 1, 0)

	var transactions []models.Transaction
	if err := s.db.Where("date >= ? AND date < ?", start, end).Find(&transactions).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if len(transactions) == 0 {
		if err := s.db.Unscoped().Where("month = ?", month).Delete(&models.MonthlySummary{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	}

	summary := models.MonthlySummary{
		Month:      month,
		Categories: make(map[string]float64),
	}
	for i := range transactions {
		switch transactions[i].Type {
		case models.TransactionTypeIncome:
			summary.TotalIncome += transactions[i].Amount
		case models.TransactionTypeExpense:
			summary.TotalExpenses += transactions[i].Amount
			summary.Categories[transactions[i].DisplayCategory()] += transactions[i].Amount
		}
	}

	var existing models.MonthlySummary
	err = s.db.Where("month = ?", month).First(&existing).Error
	switch {
	case err == nil:
		existing.TotalIncome = summary.TotalIncome
		existing.TotalExpenses = summary.TotalExpenses
		existing.Categories = summary.Categories
		if err := s.db.Save(&existing).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	case err == gorm.ErrRecordNotFound:
		if err := s.db.Create(&summary).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	default:
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return nil
}

// GetSummaries returns all monthly rollups ordered by month ascending.
func (s *summaryService) GetSummaries() ([]models.MonthlySummary, error) {
	var summaries []models.MonthlySummary
	if err := s.db.Order("month ASC").Find(&summaries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return summaries, nil
}
