package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "hearth/internal/errors"
	"hearth/internal/services"
)

// CategoryHandler handles the monthly category report endpoints.
type CategoryHandler struct {
	reportService services.ReportServicer
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(reportService services.ReportServicer) *CategoryHandler {
	return &CategoryHandler{reportService: reportService}
}

// GetCategories handles the budgeted-vs-actual category report.
// @Summary     Get category report
// @Description Get the two-level budgeted-vs-actual report for a month
// @Tags        categories
// @Produce     json
// @Param       month query string false "Month (YYYY-MM), defaults to current"
// @Success     200 {object} map[string]interface{} "Category groups"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     502 {object} ErrorResponse "Banking API unavailable"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	month, err := parseMonth(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	groups, err := h.reportService.MonthReport(c.Request.Context(), month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categoryGroups": groups})
}

// GetCategoryBreakdown handles per-category transaction breakdowns.
// @Summary     Get category breakdown
// @Description Get each requested category's transactions and totals for a month
// @Tags        categories
// @Produce     json
// @Param       month query string false "Month (YYYY-MM), defaults to current"
// @Param       ids   query string true  "Comma-separated category IDs"
// @Success     200 {object} map[string]interface{} "Category breakdowns"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     502 {object} ErrorResponse "Banking API unavailable"
// @Router      /categories/breakdown [get]
func (h *CategoryHandler) GetCategoryBreakdown(c *gin.Context) {
	month, err := parseMonth(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var ids []string
	for _, id := range strings.Split(c.Query("ids"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "ids is required"))
		return
	}

	breakdown, err := h.reportService.CategoryBreakdown(c.Request.Context(), month, ids)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": breakdown})
}
