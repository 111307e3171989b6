package handler

import (
	"net/http"

	"clinic_agenda/internal/model"
	"clinic_agenda/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles staff account requests
type UserHandler struct {
	service service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req model.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	user, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, "user created successfully", user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req model.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	user, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "user updated successfully", user)
}

func (h *UserHandler) GetAll(c *gin.Context) {
	txtSearch := c.GetHeader("txtSearch")

	users, err := h.service.GetAll(c.Request.Context(), txtSearch)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "users retrieved successfully"
	if txtSearch != "" {
		message = "search completed"
	}
	respondList(c, message, users, len(users), txtSearch)
}

func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "user retrieved successfully", user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	result, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, result.Message, result)
}

// RegisterUserRoutes registers user routes, all behind the auth gate
func (h *UserHandler) RegisterUserRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	users := rg.Group("/users")
	users.Use(authMW)
	{
		users.POST("", h.Create)
		users.PUT("/:id", h.Update)
		users.GET("", h.GetAll)
		users.GET("/:id", h.GetByID)
		users.DELETE("/:id", h.Delete)
	}
}
