package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "hearth/internal/errors"
	"hearth/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// UpsertBudgetRequest represents the request payload for setting a budget.
// Amount is in signed cents and may be zero or negative; zero is how an
// existing budget gets cleared. Month defaults to the current calendar month.
type UpsertBudgetRequest struct {
	CategoryID string     `json:"categoryId" binding:"required,category_id"`
	Amount     *int64     `json:"amount" binding:"required"`
	Month      *time.Time `json:"month"`
}

// UpsertBudget handles setting the budget for a category and month.
// @Summary     Set a budget
// @Description Set the budgeted amount for a category in a calendar month
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       request body UpsertBudgetRequest true "Budget details"
// @Success     200 {object} models.Budget "Budget row"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [post]
func (h *BudgetHandler) UpsertBudget(c *gin.Context) {
	var req UpsertBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	month := time.Now()
	if req.Month != nil {
		month = *req.Month
	}

	budget, err := h.budgetService.Upsert(req.CategoryID, *req.Amount, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// GetBudgets handles listing the budgets for a month.
// @Summary     Get budgets
// @Description List the budget rows for a calendar month
// @Tags        budgets
// @Produce     json
// @Param       month query string false "Month (YYYY-MM), defaults to current"
// @Success     200 {object} map[string]interface{} "Budgets"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	month, err := parseMonth(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgets, err := h.budgetService.ForMonth(month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgets": budgets})
}
