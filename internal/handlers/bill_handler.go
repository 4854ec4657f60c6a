package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "hearth/internal/errors"
	"hearth/internal/services"
)

// BillHandler handles bill-related requests.
type BillHandler struct {
	billService services.BillServicer
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(billService services.BillServicer) *BillHandler {
	return &BillHandler{billService: billService}
}

// BillRequest represents the writable fields of a bill. Amount is in cents.
type BillRequest struct {
	Description    string     `json:"description" binding:"required"`
	Amount         int64      `json:"amount" binding:"required,gt=0"`
	DueDate        *time.Time `json:"dueDate"`
	Paid           *bool      `json:"paid"`
	PayFromAccount string     `json:"payFromAccount"`
	CategoryID     string     `json:"categoryId"`
	SubcategoryID  string     `json:"subcategoryId"`
	Notes          string     `json:"notes"`
}

func (r BillRequest) params() services.BillParams {
	return services.BillParams{
		Description:    r.Description,
		AmountCents:    r.Amount,
		DueDate:        r.DueDate,
		Paid:           r.Paid,
		PayFromAccount: r.PayFromAccount,
		CategoryID:     r.CategoryID,
		SubcategoryID:  r.SubcategoryID,
		Notes:          r.Notes,
	}
}

// CreateBill handles the creation of a new bill.
// @Summary     Create a bill
// @Description Create a new tracked bill
// @Tags        bills
// @Accept      json
// @Produce     json
// @Param       request body BillRequest true "Bill details"
// @Success     201 {object} models.Bill "Bill created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills [post]
func (h *BillHandler) CreateBill(c *gin.Context) {
	var req BillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	bill, err := h.billService.CreateBill(req.params())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"bill": bill})
}

// GetBills handles listing all bills.
// @Summary     Get bills
// @Description List all tracked bills, soonest due first
// @Tags        bills
// @Produce     json
// @Success     200 {object} map[string]interface{} "Bills"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills [get]
func (h *BillHandler) GetBills(c *gin.Context) {
	bills, err := h.billService.GetBills()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bills": bills})
}

// GetBill handles retrieving a specific bill.
// @Summary     Get bill by ID
// @Description Get a specific bill by ID
// @Tags        bills
// @Produce     json
// @Param       id path string true "Bill ID"
// @Success     200 {object} models.Bill "Bill details"
// @Failure     404 {object} ErrorResponse "Bill not found"
// @Router      /bills/{id} [get]
func (h *BillHandler) GetBill(c *gin.Context) {
	bill, err := h.billService.GetBillByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bill": bill})
}

// UpdateBill handles updating an existing bill.
// @Summary     Update bill
// @Description Update an existing bill
// @Tags        bills
// @Accept      json
// @Produce     json
// @Param       id      path string      true "Bill ID"
// @Param       request body BillRequest true "Updated bill details"
// @Success     200 {object} models.Bill "Updated bill"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Bill not found"
// @Router      /bills/{id} [put]
func (h *BillHandler) UpdateBill(c *gin.Context) {
	var req BillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	bill, err := h.billService.UpdateBill(c.Param("id"), req.params())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bill": bill})
}

// DeleteBill handles deleting a bill.
// @Summary     Delete bill
// @Description Delete a bill by ID
// @Tags        bills
// @Produce     json
// @Param       id path string true "Bill ID"
// @Success     200 {object} MessageResponse "Bill deleted"
// @Failure     404 {object} ErrorResponse "Bill not found"
// @Router      /bills/{id} [delete]
func (h *BillHandler) DeleteBill(c *gin.Context) {
	if err := h.billService.DeleteBill(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bill deleted successfully"})
}
