package handler

import (
	"net/http"

	"clinic_agenda/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "login successful", result)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	result, err := h.service.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, "user registered successfully", result)
}

// Verify is the whoami endpoint: it echoes the id the auth gate attached.
func (h *AuthHandler) Verify(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, envelope{Success: false, Message: err.Error()})
		return
	}
	respondData(c, http.StatusOK, "token valid", gin.H{"user": h.service.Verify(userID)})
}

// RegisterAuthRoutes registers auth routes. Login and register sit behind
// the per-IP rate limiter; verify requires a valid token.
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup, authMW, rateLimitMW gin.HandlerFunc) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", rateLimitMW, h.Login)
		auth.POST("/register", rateLimitMW, h.Register)
		auth.GET("/verify", authMW, h.Verify)
	}
}
