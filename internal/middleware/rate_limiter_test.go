package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"customer-dashboard/internal/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, rps, burst int) *IPRateLimiter {
	t.Helper()
	rl := NewIPRateLimiter(config.SecurityConfig{RateLimitPerSecond: rps, RateLimitBurst: burst})
	t.Cleanup(rl.Stop)
	return rl
}

func TestRateLimiter(t *testing.T) {
	e := echo.New()
	rl := newTestLimiter(t, 1, 5)

	handler := rl.Middleware()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Requests within the burst are allowed
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
		req.RemoteAddr = "192.168.1.100:12345"
		rec := httptest.NewRecorder()

		require.NoError(t, handler(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	req.RemoteAddr = "192.168.1.100:12345"
	rec := httptest.NewRecorder()

	// SendError writes the response and returns nil
	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_006")
}

func TestRateLimiter_SeparateBucketsPerIP(t *testing.T) {
	rl := newTestLimiter(t, 1, 1)

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.2"))
}

func TestRateLimiter_Defaults(t *testing.T) {
	rl := newTestLimiter(t, 0, 0)

	assert.Equal(t, 20, rl.requestsPerSecond)
	assert.Equal(t, 40, rl.burstSize)
}

func TestRateLimiter_EvictIdle(t *testing.T) {
	rl := newTestLimiter(t, 5, 5)
	rl.Allow("10.0.0.1")

	rl.evictIdle(time.Now())
	assert.Len(t, rl.visitors, 1)

	rl.evictIdle(time.Now().Add(visitorIdleTimeout + time.Second))
	assert.Empty(t, rl.visitors)
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := NewIPRateLimiter(config.SecurityConfig{RateLimitPerSecond: 1, RateLimitBurst: 1})
	rl.Stop()
	rl.Stop()
}
