package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// Upsert sets the budget amount for a category in a calendar month. The
// month is normalized to its first day. Submitting the same pair twice
// updates the existing row instead of creating a duplicate.
//
// Rows created before the uniqueness migration may be duplicated; in that
// case the oldest row wins and is the one updated.
func (s *budgetService) Upsert(categoryID string, amountCents int64, month time.Time) (*models.Budget, error) {
	start, end := MonthWindow(month)

	var existing models.Budget
	err := s.db.
		Where("category_id = ? AND month BETWEEN ? AND ?", categoryID, start, end).
		Order("created_at ASC").
		First(&existing).Error

	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		budget := &models.Budget{
			CategoryID:  categoryID,
			AmountCents: amountCents,
			Month:       start,
		}
		if err := s.db.Create(budget).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return budget, nil
	}

	if err := s.db.Model(&existing).Update("amount_cents", amountCents).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	existing.AmountCents = amountCents
	return &existing, nil
}

// ForMonth returns all budget rows whose month falls inside the calendar
// month containing month.
func (s *budgetService) ForMonth(month time.Time) ([]models.Budget, error) {
	start, end := MonthWindow(month)

	var budgets []models.Budget
	if err := s.db.
		Where("month BETWEEN ? AND ?", start, end).
		Order("created_at ASC").
		Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budgets, nil
}
