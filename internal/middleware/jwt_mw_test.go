package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic_agenda/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newGateRouter(jwtUtil *utils.JWTUtil) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", JWTAuthMiddleware(jwtUtil), func(c *gin.Context) {
		userID := c.GetInt(AuthUserKey)
		c.JSON(http.StatusOK, gin.H{"success": true, "id": userID})
	})
	return router
}

func TestJWTAuthMiddleware_NoToken(t *testing.T) {
	router := newGateRouter(utils.NewJWTUtil("secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token not provided")
}

func TestJWTAuthMiddleware_BadHeaderFormat(t *testing.T) {
	router := newGateRouter(utils.NewJWTUtil("secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid authorization header format")
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", time.Hour)
	router := newGateRouter(jwtUtil)

	token, err := jwtUtil.GenerateToken(42)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":42`)
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", time.Second)
	router := newGateRouter(jwtUtil)

	token, err := jwtUtil.GenerateToken(42)
	assert.NoError(t, err)

	time.Sleep(2 * time.Second)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	// Expiry gets its own error code so clients can prompt for re-login
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "SESSION_EXPIRED")
}

func TestJWTAuthMiddleware_TamperedToken(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", time.Hour)
	router := newGateRouter(jwtUtil)

	otherUtil := utils.NewJWTUtil("other-secret", time.Hour)
	token, err := otherUtil.GenerateToken(42)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
}
