package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
)

// billService handles recurring-bill business logic.
type billService struct {
	db *gorm.DB
}

// NewBillService creates a new BillServicer.
func NewBillService(db *gorm.DB) BillServicer {
	return &billService{db: db}
}

// CreateBill stores a new bill.
func (s *billService) CreateBill(p BillParams) (*models.Bill, error) {
	if p.Description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}

	bill := &models.Bill{
		Description:    p.Description,
		AmountCents:    p.AmountCents,
		DueDate:        p.DueDate,
		PayFromAccount: p.PayFromAccount,
		CategoryID:     p.CategoryID,
		SubcategoryID:  p.SubcategoryID,
		Notes:          p.Notes,
	}
	if p.Paid != nil {
		bill.Paid = *p.Paid
	}
	if err := s.db.Create(bill).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return bill, nil
}

// GetBills returns all bills, soonest due date first. Bills without a due
// date sort last.
func (s *billService) GetBills() ([]models.Bill, error) {
	var bills []models.Bill
	if err := s.db.
		Order("due_date IS NULL, due_date ASC, created_at ASC").
		Find(&bills).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return bills, nil
}

// GetBillByID returns a single bill.
func (s *billService) GetBillByID(id string) (*models.Bill, error) {
	var bill models.Bill
	if err := s.db.Where("id = ?", id).First(&bill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBillNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &bill, nil
}

// UpdateBill overwrites a bill's writable fields.
func (s *billService) UpdateBill(id string, p BillParams) (*models.Bill, error) {
	bill, err := s.GetBillByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"description":      p.Description,
		"amount_cents":     p.AmountCents,
		"due_date":         p.DueDate,
		"pay_from_account": p.PayFromAccount,
		"category_id":      p.CategoryID,
		"subcategory_id":   p.SubcategoryID,
		"notes":            p.Notes,
	}
	if p.Paid != nil {
		updates["paid"] = *p.Paid
	}
	if err := s.db.Model(bill).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.GetBillByID(id)
}

// DeleteBill removes a bill.
func (s *billService) DeleteBill(id string) error {
	res := s.db.Where("id = ?", id).Delete(&models.Bill{})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrBillNotFound
	}
	return nil
}
