package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "hearth/internal/errors"
	"hearth/internal/logger"
	"hearth/internal/services"
)

// monthLayout is the compact month query format ("2024-03"). Full RFC 3339
// timestamps are accepted too; only the calendar month is used.
const monthLayout = "2006-01"

// parseMonth resolves the optional month query parameter. Absent means the
// current calendar month.
func parseMonth(c *gin.Context) (time.Time, error) {
	raw := c.Query("month")
	if raw == "" {
		return time.Now(), nil
	}
	if t, err := time.Parse(monthLayout, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput,
		"month must be YYYY-MM or an RFC 3339 timestamp")
}

// parseTimeBounds resolves the time window of a listing request. Explicit
// start/end bounds (RFC 3339, required together) take precedence over the
// month shorthand; with neither, the listing is unbounded.
func parseTimeBounds(c *gin.Context) (*time.Time, *time.Time, error) {
	rawStart, rawEnd := c.Query("start"), c.Query("end")
	if rawStart != "" || rawEnd != "" {
		if rawStart == "" || rawEnd == "" {
			return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput,
				"start and end must be provided together")
		}
		start, err := time.Parse(time.RFC3339, rawStart)
		if err != nil {
			return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput,
				"start must be an RFC 3339 timestamp")
		}
		end, err := time.Parse(time.RFC3339, rawEnd)
		if err != nil {
			return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput,
				"end must be an RFC 3339 timestamp")
		}
		return &start, &end, nil
	}

	if c.Query("month") != "" {
		month, err := parseMonth(c)
		if err != nil {
			return nil, nil, err
		}
		start, end := services.MonthWindow(month)
		return &start, &end, nil
	}

	return nil, nil, nil
}

// respondWithError writes the flat JSON error shape. If the error is an
// *AppError it uses the error's status code and message. Otherwise it logs
// the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{"error": appErr.Message})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{"error": apperrors.ErrInternalServer.Message})
}
