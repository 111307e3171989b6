package service

import (
	"context"
	"strings"

	"clinic_agenda/internal/model"
	"clinic_agenda/internal/repository"
)

// TypologyService manages appointment typologies
type TypologyService interface {
	Create(ctx context.Context, req model.TypologyRequest) (*model.Typology, error)
	Update(ctx context.Context, id int, req model.TypologyRequest) (*model.Typology, error)
	GetAll(ctx context.Context, searchText string) ([]model.Typology, error)
	GetByID(ctx context.Context, id int) (*model.Typology, error)
	SearchByField(ctx context.Context, field, value string) ([]model.Typology, error)
	Delete(ctx context.Context, id int) (*DeleteResult, error)
}

type typologyService struct {
	repo repository.TypologyRepository
}

// NewTypologyService creates a new TypologyService
func NewTypologyService(repo repository.TypologyRepository) TypologyService {
	return &typologyService{repo: repo}
}

func (s *typologyService) Create(ctx context.Context, req model.TypologyRequest) (*model.Typology, error) {
	if err := validateCatalogRequest(req.Nombre, req.Descripcion); err != nil {
		return nil, err
	}

	t := &model.Typology{
		Nombre:      strings.TrimSpace(req.Nombre),
		Descripcion: strings.TrimSpace(req.Descripcion),
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, Internal("failed to create typology", err)
	}
	return t, nil
}

func (s *typologyService) Update(ctx context.Context, id int, req model.TypologyRequest) (*model.Typology, error) {
	if err := validateCatalogRequest(req.Nombre, req.Descripcion); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, Internal("failed to update typology", err)
	}
	if existing == nil {
		return nil, NotFound("typology not found")
	}

	t := &model.Typology{
		ID:          id,
		Nombre:      strings.TrimSpace(req.Nombre),
		Descripcion: strings.TrimSpace(req.Descripcion),
	}
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, Internal("failed to update typology", err)
	}
	return t, nil
}

func (s *typologyService) GetAll(ctx context.Context, searchText string) ([]model.Typology, error) {
	list, err := s.repo.FindAll(ctx, strings.TrimSpace(searchText))
	if err != nil {
		return nil, Internal("failed to list typologies", err)
	}
	return list, nil
}

func (s *typologyService) GetByID(ctx context.Context, id int) (*model.Typology, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, Internal("failed to get typology", err)
	}
	if t == nil {
		return nil, NotFound("typology not found")
	}
	return t, nil
}

func (s *typologyService) SearchByField(ctx context.Context, field, value string) ([]model.Typology, error) {
	if _, ok := repository.CatalogSearchFields[field]; !ok {
		return nil, Validation("invalid field, allowed fields: nombre, descripcion")
	}
	if strings.TrimSpace(value) == "" {
		return nil, Validation("search value is required")
	}

	list, err := s.repo.FindByField(ctx, field, strings.TrimSpace(value))
	if err != nil {
		return nil, Internal("failed to search typologies", err)
	}
	return list, nil
}

func (s *typologyService) Delete(ctx context.Context, id int) (*DeleteResult, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, Internal("failed to delete typology", err)
	}
	if existing == nil {
		return nil, NotFound("typology not found")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, Internal("failed to delete typology", err)
	}
	return &DeleteResult{ID: id, Message: "typology deleted successfully"}, nil
}
