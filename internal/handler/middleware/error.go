package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"court-booking/internal/domain/booking"
	"court-booking/internal/handler/httperr"
	"court-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors that were attached to the context without a response body.
// Handlers normally answer through httperr, in which case there is nothing left to do.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		// latest error wins
		for i := len(c.Errors) - 1; i >= 0; i-- {
			ginErr := c.Errors[i]

			if ginErr.IsType(gin.ErrorTypePublic) {
				if resp, ok := ginErr.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}

			var ruleErr *booking.RuleError
			if errors.As(ginErr.Err, &ruleErr) {
				c.JSON(http.StatusBadRequest, httperr.New(http.StatusBadRequest, ruleErr.Error(), ruleErr.Code))
				return
			}
		}

		status := c.Writer.Status()
		if status == http.StatusOK {
			status = http.StatusInternalServerError
		}
		last := c.Errors.Last()
		slog.Error("unhandled request error",
			"request_id", GetRequestID(c),
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"error", last.Error(),
			"stack", errs.ExtractStackLines(last.Err, 5))

		c.JSON(status, httperr.New(status, http.StatusText(status), ""))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				err := errs.Wrap(errs.New(fmt.Sprint(rec)), "panic while handling request")
				slog.Error("recovered from panic",
					"request_id", GetRequestID(c),
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"error", err.Error(),
					"stack", errs.ExtractStackLines(err, 10))

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.New(http.StatusInternalServerError, "Internal server error", ""))
			}
		}()
		c.Next()
	}
}
