package handler

import (
	"net/http"

	"clinic_agenda/internal/model"
	"clinic_agenda/internal/service"

	"github.com/gin-gonic/gin"
)

// PaymentMethodHandler handles payment method ("forma de pago") requests
type PaymentMethodHandler struct {
	service service.PaymentMethodService
}

// NewPaymentMethodHandler creates a new PaymentMethodHandler
func NewPaymentMethodHandler(s service.PaymentMethodService) *PaymentMethodHandler {
	return &PaymentMethodHandler{service: s}
}

func (h *PaymentMethodHandler) Create(c *gin.Context) {
	var req model.PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	pm, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, "payment method created successfully", pm)
}

func (h *PaymentMethodHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req model.PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	pm, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "payment method updated successfully", pm)
}

func (h *PaymentMethodHandler) GetAll(c *gin.Context) {
	txtSearch := c.GetHeader("txtSearch")

	list, err := h.service.GetAll(c.Request.Context(), txtSearch)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "payment methods retrieved successfully"
	if txtSearch != "" {
		message = "search completed"
	}
	respondList(c, message, list, len(list), txtSearch)
}

func (h *PaymentMethodHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	pm, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "payment method retrieved successfully", pm)
}

func (h *PaymentMethodHandler) SearchByField(c *gin.Context) {
	list, err := h.service.SearchByField(c.Request.Context(), c.Param("field"), c.Param("value"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, "search completed", list, len(list), "")
}

// Delete removes a payment method; the target id arrives in the paymentId header.
func (h *PaymentMethodHandler) Delete(c *gin.Context) {
	id, ok := headerID(c, "paymentId")
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

// RegisterPaymentMethodRoutes registers payment method routes behind the auth gate
func (h *PaymentMethodHandler) RegisterPaymentMethodRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	payments := rg.Group("/formas-pago")
	payments.Use(authMW)
	{
		payments.POST("", h.Create)
		payments.PUT("/:id", h.Update)
		payments.GET("", h.GetAll)
		payments.GET("/search/:field/:value", h.SearchByField)
		payments.GET("/:id", h.GetByID)
		payments.DELETE("", h.Delete)
	}
}
