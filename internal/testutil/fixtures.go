package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"hearth/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestBudget creates a budget row for the given category and month.
func CreateTestBudget(t *testing.T, db *gorm.DB, categoryID string, amountCents int64, month time.Time) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		CategoryID:  categoryID,
		AmountCents: amountCents,
		Month:       time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location()),
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestLocalTransaction creates a local transaction on the given account.
func CreateTestLocalTransaction(t *testing.T, db *gorm.DB, accountID string, amountCents int64, date time.Time) *models.LocalTransaction {
	t.Helper()

	txn := &models.LocalTransaction{
		AccountID:   accountID,
		Description: fmt.Sprintf("Test Transaction %d", nextID()),
		AmountCents: amountCents,
		Date:        date,
	}
	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test local transaction: %v", err)
	}
	return txn
}

// CreateTestBill creates a bill with a unique description.
func CreateTestBill(t *testing.T, db *gorm.DB, amountCents int64) *models.Bill {
	t.Helper()

	bill := &models.Bill{
		Description: fmt.Sprintf("Test Bill %d", nextID()),
		AmountCents: amountCents,
	}
	if err := db.Create(bill).Error; err != nil {
		t.Fatalf("failed to create test bill: %v", err)
	}
	return bill
}
