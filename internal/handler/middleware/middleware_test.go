//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"stay-marketplace/internal/handler/httperr"
	"stay-marketplace/internal/handler/middleware"
	"stay-marketplace/internal/pkg/config"
	"stay-marketplace/internal/pkg/errs"
	"stay-marketplace/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()
	logger := middleware.NewLogger(cfg.Log)

	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.NewCORSMiddleware(cfg.CORS), logger.LoggingMiddleware(), middleware.ErrorHandler())
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": middleware.GetRequestID(c)})
	})
	r.GET("/missing", func(c *gin.Context) {
		httperr.Abort(c, errs.NotFound("Not found."))
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return r
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	router := newRouter()

	t.Run("propagates the caller's id", func(t *testing.T) {
		rec := httptest.PerformRawRequest(t, router, http.MethodGet, "/ok", nil, map[string]string{"X-Request-ID": "req-42"})
		httptest.AssertHeaders(t, rec, map[string]string{"X-Request-ID": "req-42"})
		assert.JSONEq(t, `{"request_id":"req-42"}`, rec.Body.String())
	})

	t.Run("generates one when absent", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/ok", nil, "")
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})
}

func TestErrorHandlingChain(t *testing.T) {
	router := newRouter()

	t.Run("aborted requests keep the classified response", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/missing", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Not found.")
	})

	t.Run("panics become a generic 500", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/panic", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, httperr.MsgServerError)
	})
}

func TestCORS(t *testing.T) {
	router := newRouter()

	rec := httptest.PerformRawRequest(t, router, http.MethodOptions, "/ok", nil, map[string]string{
		"Origin":                        "http://localhost:3000",
		"Access-Control-Request-Method": "PATCH",
	})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	httptest.AssertHeaders(t, rec, map[string]string{
		"Access-Control-Allow-Origin": "http://localhost:3000",
	})

	rec = httptest.PerformRawRequest(t, router, http.MethodGet, "/ok", nil, map[string]string{"Origin": "http://evil.example"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
