package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clinic_agenda/internal/model"
	"clinic_agenda/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// stubClientService returns canned values so the tests exercise only the
// HTTP contract: envelope shape, status mapping and the header conventions.
type stubClientService struct {
	clients []model.Client
	err     error
}

func (s *stubClientService) Create(_ context.Context, req model.ClientRequest) (*model.Client, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &model.Client{ID: 1, Name: req.Name, Email: req.Email}, nil
}

func (s *stubClientService) Update(_ context.Context, id int, req model.ClientRequest) (*model.Client, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &model.Client{ID: id, Name: req.Name, Email: req.Email}, nil
}

func (s *stubClientService) GetAll(_ context.Context, _ string) ([]model.Client, error) {
	return s.clients, s.err
}

func (s *stubClientService) GetByID(_ context.Context, id int) (*model.Client, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &model.Client{ID: id}, nil
}

func (s *stubClientService) SearchByField(_ context.Context, _, _ string) ([]model.Client, error) {
	return s.clients, s.err
}

func (s *stubClientService) Delete(_ context.Context, id int) (*service.DeleteResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &service.DeleteResult{ID: id, Message: "client deleted successfully"}, nil
}

func newClientRouter(svc service.ClientService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	// the gate is exercised in the middleware tests; pass everything through
	passthrough := func(c *gin.Context) { c.Next() }
	NewClientHandler(svc).RegisterClientRoutes(api, passthrough)
	return router
}

func TestClientHandler_Create(t *testing.T) {
	router := newClientRouter(&stubClientService{})

	body := `{"name":"Maria","surname":"Lopez","phone":"600111222","email":"maria@example.com","dni":"12345678Z"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/clients", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestClientHandler_Create_InvalidBody(t *testing.T) {
	router := newClientRouter(&stubClientService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/clients", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestClientHandler_GetAll_TxtSearchHeader(t *testing.T) {
	svc := &stubClientService{clients: []model.Client{{ID: 1}, {ID: 2}}}
	router := newClientRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	req.Header.Set("txtSearch", "lopez")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Count   int    `json:"count"`
		Search  string `json:"search"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "search completed", resp.Message)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "lopez", resp.Search)
}

func TestClientHandler_GetAll_NoSearchOmitsEcho(t *testing.T) {
	router := newClientRouter(&stubClientService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `"search"`)
	assert.Contains(t, w.Body.String(), `"count":0`)
}

func TestClientHandler_GetByID_NotFound(t *testing.T) {
	router := newClientRouter(&stubClientService{err: service.NotFound("client not found")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/clients/99", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "client not found")
}

func TestClientHandler_GetByID_InvalidID(t *testing.T) {
	router := newClientRouter(&stubClientService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/clients/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClientHandler_Delete_HeaderID(t *testing.T) {
	router := newClientRouter(&stubClientService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/clients", nil)
	req.Header.Set("clientId", "7")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":7`)
}

func TestClientHandler_Delete_MissingHeader(t *testing.T) {
	router := newClientRouter(&stubClientService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/clients", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "clientId header is required")
}

func TestClientHandler_Conflict(t *testing.T) {
	router := newClientRouter(&stubClientService{err: service.Conflict("email already registered")})

	body := `{"name":"Maria","surname":"Lopez","phone":"600111222","email":"maria@example.com","dni":"12345678Z"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/clients", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}
