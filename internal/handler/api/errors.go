package api

import (
	"errors"
	"log/slog"
	"net/http"

	"court-booking/internal/domain/booking"
	"court-booking/internal/handler/httperr"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errUnauthenticated = errors.New("missing authenticated user in context")

// invalidInputCode tags malformed query strings; missing_slots stays reserved for booking bodies.
var invalidInputCode = string(booking.KindInvalidInput)

// abortWithUsecaseError maps usecase failures onto the public error body.
// Only rule rejections expose their reason; anything unexpected is logged and hidden.
func abortWithUsecaseError(c *gin.Context, err error) {
	var ruleErr *booking.RuleError
	switch {
	case errors.As(err, &ruleErr):
		httperr.AbortWithCode(c, http.StatusBadRequest, err, ruleErr.Reason, ruleErr.Code, nil)
	case errors.Is(err, commands.ErrUserNotFound), errors.Is(err, queries.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	default:
		slog.ErrorContext(c.Request.Context(), "request failed",
			"path", c.FullPath(),
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 5))
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func abortMissingFields(c *gin.Context, err error) {
	httperr.AbortWithCode(c, http.StatusBadRequest, err, booking.ErrMissingSlots.Reason, booking.ErrMissingSlots.Code, nil)
}

func abortInvalidQuery(c *gin.Context, err error) {
	httperr.AbortWithCode(c, http.StatusBadRequest, err, "Missing or invalid query parameters", invalidInputCode, nil)
}

func abortUnauthenticated(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Authentication required", nil)
}
