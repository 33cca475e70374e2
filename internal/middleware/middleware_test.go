package middleware_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SscSPs/currency_converter/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStructuredLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(base))
	r.GET("/ping", func(c *gin.Context) {
		middleware.GetLoggerFromCtx(c.Request.Context()).Info("inside handler")
		c.String(http.StatusOK, middleware.GetRequestIDFromCtx(c.Request.Context()))
	})

	t.Run("generates request id", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		require.Equal(t, http.StatusOK, w.Code)
		id := w.Header().Get(middleware.HeaderRequestID)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, w.Body.String())
		assert.Contains(t, buf.String(), `"msg":"inside handler"`)
		assert.Contains(t, buf.String(), `"request_id":"`+id+`"`)
		assert.Contains(t, buf.String(), `"msg":"Request completed"`)
	})

	t.Run("keeps incoming request id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.HeaderRequestID, "abc-123")
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(middleware.HeaderRequestID))
		assert.Equal(t, "abc-123", w.Body.String())
	})
}

func TestGetLoggerFromCtx_DefaultsWhenMissing(t *testing.T) {
	assert.Same(t, slog.Default(), middleware.GetLoggerFromCtx(context.Background()))

	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Same(t, custom, middleware.GetLoggerFromCtx(middleware.WithLogger(context.Background(), custom)))
}

func TestRateLimit(t *testing.T) {
	lim, err := middleware.NewRateLimiter("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.RateLimit(lim))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}

func TestNewRateLimiter_InvalidFormat(t *testing.T) {
	_, err := middleware.NewRateLimiter("lots")
	assert.Error(t, err)
}

func TestHTTPMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := middleware.NewHTTPMetrics(reg)

	r := gin.New()
	r.Use(metrics.Middleware())
	r.GET("/currencies/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/currencies/1", "/currencies/2", "/nope"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	expected := `
# HELP currency_converter_http_requests_total Number of HTTP requests handled, by route and status.
# TYPE currency_converter_http_requests_total counter
currency_converter_http_requests_total{method="GET",route="/currencies/:id",status="200"} 2
currency_converter_http_requests_total{method="GET",route="unmatched",status="404"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "currency_converter_http_requests_total"))
}
