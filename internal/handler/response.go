package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"clinic_agenda/internal/middleware"
	"clinic_agenda/internal/service"

	"github.com/gin-gonic/gin"
)

// envelope is the uniform response shape of every endpoint
type envelope struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Data    any     `json:"data,omitempty"`
	Count   *int    `json:"count,omitempty"`
	Search  *string `json:"search,omitempty"`
}

func respondData(c *gin.Context, status int, message string, data any) {
	c.JSON(status, envelope{Success: true, Message: message, Data: data})
}

// respondList adds the element count and echoes the free-text filter when
// one was applied.
func respondList(c *gin.Context, message string, data any, count int, search string) {
	env := envelope{Success: true, Message: message, Data: data, Count: &count}
	if search != "" {
		env.Search = &search
	}
	c.JSON(http.StatusOK, env)
}

// respondError maps a classified service error to its status; anything
// unclassified becomes a 500 without leaking internal detail.
func respondError(c *gin.Context, err error) {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		if svcErr.Kind == service.KindInternal {
			log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, errors.Unwrap(svcErr))
		}
		c.JSON(svcErr.HTTPStatus(), envelope{Success: false, Message: svcErr.Message})
		return
	}

	log.Printf("unclassified error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, envelope{Success: false, Message: "internal server error"})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, envelope{Success: false, Message: message})
}

// pathID parses the :id route parameter
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}

// headerID reads a record id passed via request header (legacy delete
// convention kept for wire compatibility).
func headerID(c *gin.Context, header string) (int, bool) {
	raw := c.GetHeader(header)
	if raw == "" {
		respondBadRequest(c, header+" header is required")
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		respondBadRequest(c, "invalid "+header+" header")
		return 0, false
	}
	return id, true
}

// getAuthUserID reads the user id the auth gate attached to the context
func getAuthUserID(c *gin.Context) (int, error) {
	userIDVal, exists := c.Get(middleware.AuthUserKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}
	userID, ok := userIDVal.(int)
	if !ok {
		return 0, errors.New("invalid user ID type in context")
	}
	return userID, nil
}
