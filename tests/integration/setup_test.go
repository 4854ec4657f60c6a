package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hearth/internal/bank"
	"hearth/internal/handlers"
	"hearth/internal/logger"
	"hearth/internal/middleware"
	"hearth/internal/models"
	"hearth/internal/services"
	"hearth/internal/validator"
)

// testApp holds the full application stack for integration tests, backed by
// an in-memory database and a stub banking API server.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
	Bank   *stubBank
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// stubBank serves canned JSON:API responses the way the banking API does.
type stubBank struct {
	Server       *httptest.Server
	Categories   []bank.Category
	Transactions []bank.Transaction
	// PatchedCategories records transaction ID -> category ID from PATCH calls.
	PatchedCategories map[string]string
}

func newStubBank() *stubBank {
	s := &stubBank{PatchedCategories: map[string]string{}}
	mux := http.NewServeMux()

	mux.HandleFunc("GET /categories", func(w http.ResponseWriter, r *http.Request) {
		parent := r.URL.Query().Get("filter[parent]")
		if parent == "" {
			writeCollection(w, s.Categories)
			return
		}
		var children []bank.Category
		for _, cat := range s.Categories {
			if cat.Relationships.Parent.Data != nil && cat.Relationships.Parent.Data.ID == parent {
				children = append(children, cat)
			}
		}
		writeCollection(w, children)
	})

	mux.HandleFunc("GET /transactions", func(w http.ResponseWriter, r *http.Request) {
		writeCollection(w, s.Transactions)
	})
	mux.HandleFunc("GET /accounts/{id}/transactions", func(w http.ResponseWriter, r *http.Request) {
		writeCollection(w, s.Transactions)
	})

	mux.HandleFunc("GET /accounts", func(w http.ResponseWriter, r *http.Request) {
		acc := bank.Account{Type: "accounts", ID: "acc-1"}
		acc.Attributes.DisplayName = "Spending"
		acc.Attributes.Balance = bank.Money{CurrencyCode: "AUD", Value: "100.00", ValueInBaseUnits: 10000}
		writeCollection(w, []bank.Account{acc})
	})

	mux.HandleFunc("PATCH /transactions/{id}/relationships/category", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Data *bank.ResourceIdentifier `json:"data"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if payload.Data != nil {
			s.PatchedCategories[r.PathValue("id")] = payload.Data.ID
		} else {
			delete(s.PatchedCategories, r.PathValue("id"))
		}
		w.WriteHeader(http.StatusNoContent)
	})

	s.Server = httptest.NewServer(mux)
	return s
}

func writeCollection[T any](w http.ResponseWriter, data []T) {
	if data == nil {
		data = []T{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"data":  data,
		"links": map[string]interface{}{"prev": nil, "next": nil},
	})
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.Budget{},
		&models.LocalTransaction{},
		&models.Bill{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates the full stack: stub bank, in-memory SQLite, and router.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)
	stub := newStubBank()
	t.Cleanup(stub.Server.Close)

	bankClient := bank.NewHTTPClient(stub.Server.URL+"/", "test-token", 100)

	// Services
	budgetService := services.NewBudgetService(db)
	transactionService := services.NewTransactionService(db, bankClient)
	reportService := services.NewReportService(bankClient, budgetService, transactionService)
	accountService := services.NewAccountService(bankClient)
	billService := services.NewBillService(db)

	// Handlers
	accountHandler := handlers.NewAccountHandler(accountService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	categoryHandler := handlers.NewCategoryHandler(reportService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	billHandler := handlers.NewBillHandler(billService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")
	v1.GET("/accounts", accountHandler.GetAccounts)

	transactions := v1.Group("/transactions")
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)
	transactions.PATCH("/:id/category", transactionHandler.SetTransactionCategory)

	categories := v1.Group("/categories")
	categories.GET("", categoryHandler.GetCategories)
	categories.GET("/breakdown", categoryHandler.GetCategoryBreakdown)

	budgets := v1.Group("/budgets")
	budgets.POST("", budgetHandler.UpsertBudget)
	budgets.GET("", budgetHandler.GetBudgets)

	bills := v1.Group("/bills")
	bills.POST("", billHandler.CreateBill)
	bills.GET("", billHandler.GetBills)
	bills.GET("/:id", billHandler.GetBill)
	bills.PUT("/:id", billHandler.UpdateBill)
	bills.DELETE("/:id", billHandler.DeleteBill)

	return &testApp{DB: db, Router: router, Bank: stub}
}

// request performs an HTTP request against the app router.
func (a *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}
