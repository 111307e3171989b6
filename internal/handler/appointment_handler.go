package handler

import (
	"net/http"
	"strconv"

	"clinic_agenda/internal/model"
	"clinic_agenda/internal/service"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler handles appointment requests
type AppointmentHandler struct {
	service service.AppointmentService
}

// NewAppointmentHandler creates a new AppointmentHandler
func NewAppointmentHandler(s service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: s}
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req model.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	appointment, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, "appointment created successfully", appointment)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req model.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	appointment, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "appointment updated successfully", appointment)
}

// GetAll lists appointments; filters arrive as query parameters and combine
// conjunctively: fecha, doctoraId, estado, cobro.
func (h *AppointmentHandler) GetAll(c *gin.Context) {
	var filters model.AppointmentFilters

	if fecha := c.Query("fecha"); fecha != "" {
		filters.Fecha = &fecha
	}
	if doctoraID := c.Query("doctoraId"); doctoraID != "" {
		id, err := strconv.Atoi(doctoraID)
		if err != nil {
			respondBadRequest(c, "invalid doctoraId filter")
			return
		}
		filters.DoctoraID = &id
	}
	if estado := c.Query("estado"); estado != "" {
		filters.Estado = &estado
	}
	if cobro := c.Query("cobro"); cobro != "" {
		filters.Cobro = cobro == "true" || cobro == "1"
	}

	appointments, err := h.service.GetAll(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, "appointments retrieved successfully", appointments, len(appointments), "")
}

func (h *AppointmentHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	appointment, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
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

// RegisterAppointmentRoutes registers appointment routes behind the auth gate
func (h *AppointmentHandler) RegisterAppointmentRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	appointments := rg.Group("/appointments")
	appointments.Use(authMW)
	{
		appointments.POST("", h.Create)
		appointments.GET("", h.GetAll)
		appointments.GET("/:id", h.GetByID)
		appointments.PUT("/:id", h.Update)
		appointments.DELETE("/:id", h.Delete)
	}
}
