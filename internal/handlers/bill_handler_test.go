package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
	"hearth/internal/services"
)

func setupBillRouter(handler *BillHandler) *gin.Engine {
	r := gin.New()
	r.POST("/bills", handler.CreateBill)
	r.GET("/bills", handler.GetBills)
	r.GET("/bills/:id", handler.GetBill)
	r.PUT("/bills/:id", handler.UpdateBill)
	r.DELETE("/bills/:id", handler.DeleteBill)
	return r
}

func TestBillHandler_CreateBill(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockBillService{
			createBillFn: func(p services.BillParams) (*models.Bill, error) {
				return &models.Bill{Description: p.Description, AmountCents: p.AmountCents}, nil
			},
		}
		r := setupBillRouter(NewBillHandler(svc))

		rec := doRequest(r, "POST", "/bills",
			`{"description":"Electricity","amount":18050,"dueDate":"2024-03-28T00:00:00Z"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		bill := result["bill"].(map[string]interface{})
		if bill["description"] != "Electricity" {
			t.Errorf("unexpected bill: %v", bill)
		}
	})

	t.Run("returns 400 on missing description", func(t *testing.T) {
		r := setupBillRouter(NewBillHandler(&mockBillService{}))

		rec := doRequest(r, "POST", "/bills", `{"amount":18050}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestBillHandler_GetBills(t *testing.T) {
	svc := &mockBillService{
		getBillsFn: func() ([]models.Bill, error) {
			return []models.Bill{
				{Description: "Rent", AmountCents: 180000},
				{Description: "Internet", AmountCents: 7900},
			}, nil
		},
	}
	r := setupBillRouter(NewBillHandler(svc))

	rec := doRequest(r, "GET", "/bills", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	bills := result["bills"].([]interface{})
	if len(bills) != 2 {
		t.Errorf("expected 2 bills, got %d", len(bills))
	}
}

func TestBillHandler_GetBill(t *testing.T) {
	t.Run("returns 404 when not found", func(t *testing.T) {
		svc := &mockBillService{
			getBillByIDFn: func(_ string) (*models.Bill, error) {
				return nil, apperrors.ErrBillNotFound
			},
		}
		r := setupBillRouter(NewBillHandler(svc))

		rec := doRequest(r, "GET", "/bills/missing", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorMessage(t, parseJSON(t, rec), "Bill not found")
	})
}

func TestBillHandler_UpdateBill(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		svc := &mockBillService{
			updateBillFn: func(id string, p services.BillParams) (*models.Bill, error) {
				return &models.Bill{Description: p.Description, AmountCents: p.AmountCents}, nil
			},
		}
		r := setupBillRouter(NewBillHandler(svc))

		rec := doRequest(r, "PUT", "/bills/bill-1", `{"description":"Internet","amount":7900,"paid":true}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		svc := &mockBillService{
			updateBillFn: func(_ string, _ services.BillParams) (*models.Bill, error) {
				return nil, apperrors.ErrBillNotFound
			},
		}
		r := setupBillRouter(NewBillHandler(svc))

		rec := doRequest(r, "PUT", "/bills/missing", `{"description":"Internet","amount":7900}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestBillHandler_DeleteBill(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		r := setupBillRouter(NewBillHandler(&mockBillService{}))

		rec := doRequest(r, "DELETE", "/bills/bill-1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["message"] != "Bill deleted successfully" {
			t.Errorf("unexpected message: %v", result["message"])
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		svc := &mockBillService{
			deleteBillFn: func(_ string) error {
				return apperrors.ErrBillNotFound
			},
		}
		r := setupBillRouter(NewBillHandler(svc))

		rec := doRequest(r, "DELETE", "/bills/missing", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
