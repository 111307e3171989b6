package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRateLimitRouter(t *testing.T, rps float64, burst int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(rps, burst)
	t.Cleanup(rl.Stop)
	router := gin.New()
	router.POST("/login", RateLimit(rl), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return router
}

func TestRateLimit_AllowsWithinBudget(t *testing.T) {
	router := newRateLimitRouter(t, 10, 2)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimit_RejectsBeyondBurst(t *testing.T) {
	// rps near zero so the bucket does not refill during the test
	router := newRateLimitRouter(t, 0.001, 2)

	var lastCode int
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(w, req)
		lastCode = w.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, lastCode)
}

func TestRateLimit_BucketsPerIP(t *testing.T) {
	router := newRateLimitRouter(t, 0.001, 1)

	first := httptest.NewRecorder()
	req1 := httptest.NewRequest(http.MethodPost, "/login", nil)
	req1.RemoteAddr = "10.0.0.1:1234"
	router.ServeHTTP(first, req1)

	// A different client keeps its own budget
	second := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodPost, "/login", nil)
	req2.RemoteAddr = "10.0.0.2:1234"
	router.ServeHTTP(second, req2)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(1, 1)

	rl.Stop()
	// a second Stop must not panic on the closed channel
	assert.NotPanics(t, rl.Stop)
}
