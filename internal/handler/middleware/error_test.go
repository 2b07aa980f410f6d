//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/handler/httperr"
	"court-booking/internal/handler/middleware"
	"court-booking/internal/pkg/config"
	"court-booking/tests/common/builder"
	"court-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func errorRouter(h gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	r.GET("/", h)
	return r
}

func TestErrorHandler(t *testing.T) {
	t.Run("written responses are left alone", func(t *testing.T) {
		r := errorRouter(func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusNotFound, errors.New("missing"), "User not found", nil)
		})
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "User not found")
	})

	t.Run("attached rule error renders its code", func(t *testing.T) {
		r := errorRouter(func(c *gin.Context) {
			_ = c.Error(booking.NewQuotaExceeded(3, builder.At(2025, time.June, 8, 0)))
		})
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/", nil, "")
		httptest.AssertErrorCode(t, rec, http.StatusBadRequest, "quota_exceeded")
		assert.Contains(t, rec.Body.String(), "2025-06-08")
	})

	t.Run("unknown error becomes 500", func(t *testing.T) {
		r := errorRouter(func(c *gin.Context) {
			_ = c.Error(errors.New("connection reset"))
		})
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal Server Error")
		assert.NotContains(t, rec.Body.String(), "connection reset")
	})

	t.Run("status set by the handler is kept", func(t *testing.T) {
		r := errorRouter(func(c *gin.Context) {
			c.Status(http.StatusServiceUnavailable)
			_ = c.Error(errors.New("redis down"))
		})
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusServiceUnavailable, "Service Unavailable")
	})

	t.Run("no errors, no rewrite", func(t *testing.T) {
		r := errorRouter(func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/", nil, "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

func TestCustomRecovery(t *testing.T) {
	r := errorRouter(func(c *gin.Context) {
		panic("nil map write")
	})
	rec := httptest.PerformRequest(t, r, http.MethodGet, "/", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	assert.NotContains(t, rec.Body.String(), "nil map")
}

func TestCORSMiddleware(t *testing.T) {
	corsRouter := func(cfg config.CORSConfig) *gin.Engine {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.Use(middleware.NewCORSMiddleware(cfg))
		r.GET("/api/availability", func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}
	get := func(r *gin.Engine, origin string) *http.Response {
		req, _ := http.NewRequest(http.MethodGet, "/api/availability", nil)
		req.Header.Set("Origin", origin)
		rec := newRecorder()
		r.ServeHTTP(rec, req)
		return rec.Result()
	}

	cfg := config.NewTestConfig().CORS
	cfg.AllowOrigins = []string{"http://localhost:3000"}
	cfg.AllowMethods = []string{"GET", "POST"}
	cfg.ExposeHeaders = []string{"Content-Length"}
	cfg.AllowCredentials = true

	t.Run("listed origin sees Retry-After", func(t *testing.T) {
		res := get(corsRouter(cfg), "http://localhost:3000")
		assert.Equal(t, "http://localhost:3000", res.Header.Get("Access-Control-Allow-Origin"))
		assert.Contains(t, res.Header.Get("Access-Control-Expose-Headers"), "Retry-After")
		assert.Equal(t, "true", res.Header.Get("Access-Control-Allow-Credentials"))
	})

	t.Run("unlisted origin is refused", func(t *testing.T) {
		res := get(corsRouter(cfg), "http://evil.example.com")
		assert.Equal(t, http.StatusForbidden, res.StatusCode)
	})

	t.Run("wildcard drops credentials", func(t *testing.T) {
		wild := cfg
		wild.AllowOrigins = []string{"*"}
		res := get(corsRouter(wild), "http://anywhere.example.com")
		assert.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
		assert.Empty(t, res.Header.Get("Access-Control-Allow-Credentials"))
	})
}
