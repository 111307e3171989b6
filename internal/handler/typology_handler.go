package handler

import (
	"net/http"

	"clinic_agenda/internal/model"
	"clinic_agenda/internal/service"

	"github.com/gin-gonic/gin"
)

// TypologyHandler handles appointment typology requests
type TypologyHandler struct {
	service service.TypologyService
}

// NewTypologyHandler creates a new TypologyHandler
func NewTypologyHandler(s service.TypologyService) *TypologyHandler {
	return &TypologyHandler{service: s}
}

func (h *TypologyHandler) Create(c *gin.Context) {
	var req model.TypologyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	t, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, "typology created successfully", t)
}

func (h *TypologyHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req model.TypologyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	t, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "typology updated successfully", t)
}

func (h *TypologyHandler) GetAll(c *gin.Context) {
	txtSearch := c.GetHeader("txtSearch")

	list, err := h.service.GetAll(c.Request.Context(), txtSearch)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "typologies retrieved successfully"
	if txtSearch != "" {
		message = "search completed"
	}
	respondList(c, message, list, len(list), txtSearch)
}

func (h *TypologyHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	t, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "typology retrieved successfully", t)
}

func (h *TypologyHandler) SearchByField(c *gin.Context) {
	list, err := h.service.SearchByField(c.Request.Context(), c.Param("field"), c.Param("value"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, "search completed", list, len(list), "")
}

// Delete removes a typology; the target id arrives in the tipologiaId header.
func (h *TypologyHandler) Delete(c *gin.Context) {
	id, ok := headerID(c, "tipologiaId")
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

// RegisterTypologyRoutes registers typology routes behind the auth gate
func (h *TypologyHandler) RegisterTypologyRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	typologies := rg.Group("/tipologias")
	typologies.Use(authMW)
	{
		typologies.POST("", h.Create)
		typologies.PUT("/:id", h.Update)
		typologies.GET("", h.GetAll)
		typologies.GET("/search/:field/:value", h.SearchByField)
		typologies.GET("/:id", h.GetByID)
		typologies.DELETE("", h.Delete)
	}
}
