package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"clinic_agenda/internal/model"
	"clinic_agenda/internal/repository"
)

const (
	maxCatalogNameLen        = 150
	maxCatalogDescriptionLen = 500
)

// Limits count runes, not bytes: accented names must not eat into the budget.
func validateCatalogRequest(nombre, descripcion string) *Error {
	if strings.TrimSpace(nombre) == "" {
		return Validation("the field nombre is required")
	}
	if utf8.RuneCountInString(strings.TrimSpace(nombre)) > maxCatalogNameLen {
		return Validation("nombre must be at most 150 characters")
	}
	if utf8.RuneCountInString(strings.TrimSpace(descripcion)) > maxCatalogDescriptionLen {
		return Validation("descripcion must be at most 500 characters")
	}
	return nil
}

// PaymentMethodService manages payment methods ("formas de pago")
type PaymentMethodService interface {
	Create(ctx context.Context, req model.PaymentMethodRequest) (*model.PaymentMethod, error)
	Update(ctx context.Context, id int, req model.PaymentMethodRequest) (*model.PaymentMethod, error)
	GetAll(ctx context.Context, searchText string) ([]model.PaymentMethod, error)
	GetByID(ctx context.Context, id int) (*model.PaymentMethod, error)
	SearchByField(ctx context.Context, field, value string) ([]model.PaymentMethod, error)
	Delete(ctx context.Context, id int) (*DeleteResult, error)
}

type paymentMethodService struct {
	repo repository.PaymentMethodRepository
}

// NewPaymentMethodService creates a new PaymentMethodService
func NewPaymentMethodService(repo repository.PaymentMethodRepository) PaymentMethodService {
	return &paymentMethodService{repo: repo}
}

func (s *paymentMethodService) Create(ctx context.Context, req model.PaymentMethodRequest) (*model.PaymentMethod, error) {
	if err := validateCatalogRequest(req.Nombre, req.Descripcion); err != nil {
		return nil, err
	}

	pm := &model.PaymentMethod{
		Nombre:      strings.TrimSpace(req.Nombre),
		Descripcion: strings.TrimSpace(req.Descripcion),
	}
	if err := s.repo.Create(ctx, pm); err != nil {
		return nil, Internal("failed to create payment method", err)
	}
	return pm, nil
}

func (s *paymentMethodService) Update(ctx context.Context, id int, req model.PaymentMethodRequest) (*model.PaymentMethod, error) {
	if err := validateCatalogRequest(req.Nombre, req.Descripcion); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, Internal("failed to update payment method", err)
	}
	if existing == nil {
		return nil, NotFound("payment method not found")
	}

	pm := &model.PaymentMethod{
		ID:          id,
		Nombre:      strings.TrimSpace(req.Nombre),
		Descripcion: strings.TrimSpace(req.Descripcion),
	}
	if err := s.repo.Update(ctx, pm); err != nil {
		return nil, Internal("failed to update payment method", err)
	}
	return pm, nil
}

func (s *paymentMethodService) GetAll(ctx context.Context, searchText string) ([]model.PaymentMethod, error) {
	list, err := s.repo.FindAll(ctx, strings.TrimSpace(searchText))
	if err != nil {
		return nil, Internal("failed to list payment methods", err)
	}
	return list, nil
}

func (s *paymentMethodService) GetByID(ctx context.Context, id int) (*model.PaymentMethod, error) {
	pm, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, Internal("failed to get payment method", err)
	}
	if pm == nil {
		return nil, NotFound("payment method not found")
	}
	return pm, nil
}

func (s *paymentMethodService) SearchByField(ctx context.Context, field, value string) ([]model.PaymentMethod, error) {
	if _, ok := repository.CatalogSearchFields[field]; !ok {
		return nil, Validation("invalid field, allowed fields: nombre, descripcion")
	}
	if strings.TrimSpace(value) == "" {
		return nil, Validation("search value is required")
	}

	list, err := s.repo.FindByField(ctx, field, strings.TrimSpace(value))
	if err != nil {
		return nil, Internal("failed to search payment methods", err)
	}
	return list, nil
}

func (s *paymentMethodService) Delete(ctx context.Context, id int) (*DeleteResult, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, Internal("failed to delete payment method", err)
	}
	if existing == nil {
		return nil, NotFound("payment method not found")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, Internal("failed to delete payment method", err)
	}
	return &DeleteResult{ID: id, Message: "payment method deleted successfully"}, nil
}
