package middleware_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"conference-tracker/internal/middleware"
	pkgLog "conference-tracker/pkg/log"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newRouter(mw *middleware.Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID(), mw.SecurityHeaders(), mw.RateLimit())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func TestSecurityHeaders(t *testing.T) {
	r := newRouter(middleware.New(&mockLogger{}, 0))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "1; mode=block", w.Header().Get("X-XSS-Protection"))
	assert.Equal(t, "strict-origin-when-cross-origin", w.Header().Get("Referrer-Policy"))
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "default-src 'self'")
}

func TestRequestID(t *testing.T) {
	mw := middleware.New(&mockLogger{}, 0)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID())

	var seen string
	r.GET("/", func(c *gin.Context) {
		id, ok := pkgLog.RequestIDFromContext(c.Request.Context())
		assert.True(t, ok)
		seen = id
		c.Status(http.StatusOK)
	})

	t.Run("generated when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, w.Header().Get(middleware.RequestIDHeader), seen)
	})

	t.Run("propagated when present", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "test-id-123")
		r.ServeHTTP(w, req)
		assert.Equal(t, "test-id-123", w.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "test-id-123", seen)
	})
}

func TestRateLimit(t *testing.T) {
	r := newRouter(middleware.New(&mockLogger{}, 3))

	var codes []int
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "203.0.113.7:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, http.StatusOK, codes[0])
	assert.Contains(t, codes, http.StatusTooManyRequests, "burst exhausted requests must be limited")
}

func TestRateLimitStoreBounded(t *testing.T) {
	// 1 request/min with burst 1: a client's second request is denied for
	// as long as its limiter stays in the store.
	r := newRouter(middleware.New(&mockLogger{}, 1))

	do := func(addr string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		r.ServeHTTP(w, req)
		return w.Code
	}

	victim := "203.0.113.7:1234"
	assert.Equal(t, http.StatusOK, do(victim))
	assert.Equal(t, http.StatusTooManyRequests, do(victim))

	// Cycle enough distinct clients to fill the LRU past its capacity.
	var last string
	for i := 0; i < 1200; i++ {
		last = fmt.Sprintf("198.51.%d.%d:1234", i/256, i%256)
		assert.Equal(t, http.StatusOK, do(last))
	}

	// A recently seen client is still tracked and still limited, while the
	// oldest entry was evicted, so the victim gets a fresh limiter instead
	// of the store growing without bound.
	assert.Equal(t, http.StatusTooManyRequests, do(last))
	assert.Equal(t, http.StatusOK, do(victim), "evicted client must be re-admitted with a fresh limiter")
}

func TestRateLimitDisabled(t *testing.T) {
	r := newRouter(middleware.New(&mockLogger{}, 0))

	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
