package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestBillFlow_CRUD(t *testing.T) {
	app := setupApp(t)

	// Create.
	rec := app.request("POST", "/api/v1/bills",
		`{"description":"Electricity","amount":18050,"dueDate":"2024-03-28T00:00:00Z","payFromAccount":"acc-1"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	bill := parseJSON(t, rec)["bill"].(map[string]interface{})
	billID := bill["id"].(string)

	// Read.
	rec = app.request("GET", fmt.Sprintf("/api/v1/bills/%s", billID), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// Update: mark paid.
	rec = app.request("PUT", fmt.Sprintf("/api/v1/bills/%s", billID),
		`{"description":"Electricity","amount":18050,"paid":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	updated := parseJSON(t, rec)["bill"].(map[string]interface{})
	if updated["paid"] != true {
		t.Errorf("expected bill marked paid, got %v", updated["paid"])
	}

	// List.
	rec = app.request("GET", "/api/v1/bills", "")
	bills := parseJSON(t, rec)["bills"].([]interface{})
	if len(bills) != 1 {
		t.Fatalf("expected 1 bill, got %d", len(bills))
	}

	// Delete.
	rec = app.request("DELETE", fmt.Sprintf("/api/v1/bills/%s", billID), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", fmt.Sprintf("/api/v1/bills/%s", billID), "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}
