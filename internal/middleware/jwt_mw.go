package middleware

import (
	"net/http"
	"strings"

	"clinic_agenda/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthUserKey is the gin context key carrying the authenticated user id
const AuthUserKey = "authUser"

// JWTAuthMiddleware is the auth gate: every protected request either carries
// a valid bearer token or is rejected here with a classified 401.
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "token not provided",
			})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "invalid authorization header format",
			})
			return
		}

		claims, status := jwtUtil.VerifyToken(parts[1])
		switch status {
		case utils.TokenValid:
			c.Set(AuthUserKey, claims.UserID)
			c.Next()
		case utils.TokenExpired:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "session expired, please log in again",
				"error":   "SESSION_EXPIRED",
			})
		case utils.TokenInvalid:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "invalid token",
				"error":   "INVALID_TOKEN",
			})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "internal server error",
			})
		}
	}
}
