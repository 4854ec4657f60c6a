package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "hearth/internal/errors"
	"hearth/internal/services"
)

// TransactionHandler handles merged transaction requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the payload for a locally entered
// transaction. Amount is a signed decimal string ("-25.00").
type CreateTransactionRequest struct {
	AccountID   string    `json:"accountId" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Message     string    `json:"message"`
	Amount      string    `json:"amount" binding:"required,decimal_amount"`
	CreatedAt   time.Time `json:"createdAt" binding:"required"`
	Category    string    `json:"category"`
}

// SetCategoryRequest represents the payload for re-categorizing a bank
// transaction. A null category clears the assignment.
type SetCategoryRequest struct {
	CategoryID *string `json:"categoryId"`
}

// GetTransactions handles merged transaction listings.
// @Summary     Get transactions
// @Description Get the merged bank and local transaction listing
// @Tags        transactions
// @Produce     json
// @Param       accountId  query string false "Filter by account"
// @Param       start      query string false "Inclusive lower bound (RFC 3339), requires end"
// @Param       end        query string false "Inclusive upper bound (RFC 3339), requires start"
// @Param       month      query string false "Month (YYYY-MM) shorthand for start/end"
// @Param       categoryId query string false "Filter by category ID"
// @Param       pageAfter  query string false "Bank pagination cursor"
// @Param       pageBefore query string false "Bank pagination cursor"
// @Success     200 {object} services.MergedPage "Merged listing"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     502 {object} ErrorResponse "Banking API unavailable"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	q := services.ListQuery{
		AccountID:  c.Query("accountId"),
		CategoryID: c.Query("categoryId"),
		PageAfter:  c.Query("pageAfter"),
		PageBefore: c.Query("pageBefore"),
	}

	start, end, err := parseTimeBounds(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	q.Start, q.End = start, end

	page, err := h.transactionService.List(c.Request.Context(), q)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// CreateTransaction handles creating a locally entered transaction.
// @Summary     Create transaction
// @Description Record a transaction that happened outside the connected bank
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.LocalTransaction "Created transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	txn, err := h.transactionService.Create(c.Request.Context(), services.CreateTransactionParams{
		AccountID:   req.AccountID,
		Description: req.Description,
		Message:     req.Message,
		Amount:      req.Amount,
		CreatedAt:   req.CreatedAt,
		Category:    req.Category,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": txn})
}

// DeleteTransaction handles deleting a locally entered transaction.
// @Summary     Delete transaction
// @Description Delete a locally entered transaction by its prefixed ID
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Transaction ID (local- prefixed)"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     403 {object} ErrorResponse "Not a local transaction"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	if err := h.transactionService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}

// SetTransactionCategory handles re-categorizing a bank transaction.
// @Summary     Set transaction category
// @Description Assign or clear a bank transaction's category
// @Tags        transactions
// @Accept      json
// @Param       id      path string             true "Bank transaction ID"
// @Param       request body SetCategoryRequest true "Category assignment"
// @Success     204 "Category updated"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     502 {object} ErrorResponse "Banking API unavailable"
// @Router      /transactions/{id}/category [patch]
func (h *TransactionHandler) SetTransactionCategory(c *gin.Context) {
	var req SetCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.transactionService.SetCategory(c.Request.Context(), c.Param("id"), req.CategoryID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"Transaction deleted successfully"`
}

// ErrorResponse represents the flat error response shape.
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid input"`
}
