package handler

import (
	"net/http"

	"clinic_agenda/internal/model"
	"clinic_agenda/internal/service"

	"github.com/gin-gonic/gin"
)

// ClientHandler handles client (patient) requests
type ClientHandler struct {
	service service.ClientService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(s service.ClientService) *ClientHandler {
	return &ClientHandler{service: s}
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req model.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	client, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, "client created successfully", client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req model.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	client, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "client updated successfully", client)
}

// GetAll lists clients; a free-text filter arrives in the txtSearch header.
func (h *ClientHandler) GetAll(c *gin.Context) {
	txtSearch := c.GetHeader("txtSearch")

	clients, err := h.service.GetAll(c.Request.Context(), txtSearch)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "clients retrieved successfully"
	if txtSearch != "" {
		message = "search completed"
	}
	respondList(c, message, clients, len(clients), txtSearch)
}

func (h *ClientHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	client, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "client retrieved successfully", client)
}

func (h *ClientHandler) SearchByField(c *gin.Context) {
	field := c.Param("field")
	value := c.Param("value")

	clients, err := h.service.SearchByField(c.Request.Context(), field, value)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, "search completed", clients, len(clients), "")
}

// Delete removes a client; the target id arrives in the clientId header.
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := headerID(c, "clientId")
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

// RegisterClientRoutes registers client routes, all behind the auth gate
func (h *ClientHandler) RegisterClientRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	clients := rg.Group("/clients")
	clients.Use(authMW)
	{
		clients.POST("", h.Create)
		clients.PUT("/:id", h.Update)
		clients.GET("", h.GetAll)
		clients.GET("/search/:field/:value", h.SearchByField)
		clients.GET("/:id", h.GetByID)
		clients.DELETE("", h.Delete)
	}
}
