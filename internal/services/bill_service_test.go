package services

import (
	"testing"
	"time"

	"hearth/internal/models"
	"hearth/internal/testutil"
)

func TestCreateBill(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewBillService(db)

	t.Run("creates_bill", func(t *testing.T) {
		due := time.Date(2024, 3, 28, 0, 0, 0, 0, time.UTC)
		bill, err := svc.CreateBill(BillParams{
			Description:    "Electricity",
			AmountCents:    18050,
			DueDate:        &due,
			PayFromAccount: "acc-1",
			CategoryID:     "home",
			SubcategoryID:  "utilities",
		})
		testutil.AssertNoError(t, err)

		if bill.ID == "" {
			t.Error("expected generated ID")
		}
		if bill.AmountCents != 18050 {
			t.Errorf("expected 18050 cents, got %d", bill.AmountCents)
		}
		if bill.Paid {
			t.Error("new bill must default to unpaid")
		}
	})

	t.Run("requires_description", func(t *testing.T) {
		_, err := svc.CreateBill(BillParams{AmountCents: 1000})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetBills(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewBillService(db)

	later := time.Date(2024, 3, 28, 0, 0, 0, 0, time.UTC)
	sooner := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	_, err := svc.CreateBill(BillParams{Description: "No due date", AmountCents: 500})
	testutil.AssertNoError(t, err)
	_, err = svc.CreateBill(BillParams{Description: "Later", AmountCents: 1000, DueDate: &later})
	testutil.AssertNoError(t, err)
	_, err = svc.CreateBill(BillParams{Description: "Sooner", AmountCents: 2000, DueDate: &sooner})
	testutil.AssertNoError(t, err)

	bills, err := svc.GetBills()
	testutil.AssertNoError(t, err)

	if len(bills) != 3 {
		t.Fatalf("expected 3 bills, got %d", len(bills))
	}
	if bills[0].Description != "Sooner" || bills[1].Description != "Later" {
		t.Errorf("expected soonest due first, got %s then %s", bills[0].Description, bills[1].Description)
	}
	if bills[2].Description != "No due date" {
		t.Errorf("expected undated bill last, got %s", bills[2].Description)
	}
}

func TestUpdateBill(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewBillService(db)

	bill := testutil.CreateTestBill(t, db, 5000)

	t.Run("updates_fields", func(t *testing.T) {
		paid := true
		updated, err := svc.UpdateBill(bill.ID, BillParams{
			Description: "Internet",
			AmountCents: 7900,
			Paid:        &paid,
			Notes:       "annual plan",
		})
		testutil.AssertNoError(t, err)

		if updated.Description != "Internet" || updated.AmountCents != 7900 {
			t.Errorf("unexpected bill after update: %+v", updated)
		}
		if !updated.Paid {
			t.Error("expected bill marked paid")
		}
	})

	t.Run("missing_bill", func(t *testing.T) {
		_, err := svc.UpdateBill("00000000-0000-0000-0000-000000000000", BillParams{Description: "x"})
		testutil.AssertAppError(t, err, "BILL_NOT_FOUND")
	})
}

func TestDeleteBill(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewBillService(db)

	bill := testutil.CreateTestBill(t, db, 3000)

	t.Run("deletes_bill", func(t *testing.T) {
		testutil.AssertNoError(t, svc.DeleteBill(bill.ID))

		var count int64
		if err := db.Model(&models.Bill{}).Count(&count).Error; err != nil {
			t.Fatalf("count failed: %v", err)
		}
		if count != 0 {
			t.Errorf("expected bill removed, got %d rows", count)
		}
	})

	t.Run("missing_bill", func(t *testing.T) {
		err := svc.DeleteBill(bill.ID)
		testutil.AssertAppError(t, err, "BILL_NOT_FOUND")
	})
}

func TestGetBillByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewBillService(db)

	bill := testutil.CreateTestBill(t, db, 4200)

	found, err := svc.GetBillByID(bill.ID)
	testutil.AssertNoError(t, err)
	if found.ID != bill.ID {
		t.Errorf("expected %s, got %s", bill.ID, found.ID)
	}

	_, err = svc.GetBillByID("00000000-0000-0000-0000-000000000000")
	testutil.AssertAppError(t, err, "BILL_NOT_FOUND")
}
