package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"clinic_agenda/internal/model"
	"clinic_agenda/internal/repository"
)

const maxClientPhoneLen = 10

// ClientService wraps the client repository with validation and
// uniqueness rules.
type ClientService interface {
	Create(ctx context.Context, req model.ClientRequest) (*model.Client, error)
	Update(ctx context.Context, id int, req model.ClientRequest) (*model.Client, error)
	GetAll(ctx context.Context, searchText string) ([]model.Client, error)
	GetByID(ctx context.Context, id int) (*model.Client, error)
	SearchByField(ctx context.Context, field, value string) ([]model.Client, error)
	Delete(ctx context.Context, id int) (*DeleteResult, error)
}

type clientService struct {
	repo repository.ClientRepository
}

// NewClientService creates a new ClientService
func NewClientService(repo repository.ClientRepository) ClientService {
	return &clientService{repo: repo}
}

func validateClientRequest(req model.ClientRequest) *Error {
	if req.Name == "" || req.Surname == "" || req.Phone == "" || req.Email == "" || req.DNI == "" {
		return Validation("the fields name, surname, phone, email and dni are required")
	}
	if !validEmail(req.Email) {
		return Validation("invalid email format")
	}
	if utf8.RuneCountInString(strings.TrimSpace(req.Phone)) > maxClientPhoneLen {
		return Validation("phone must be at most 10 characters")
	}
	return nil
}

// normalizeClient trims every field, lower-cases the email and upper-cases
// the national ID so the uniqueness checks compare canonical values.
func normalizeClient(req model.ClientRequest) model.Client {
	return model.Client{
		Name:          strings.TrimSpace(req.Name),
		Surname:       strings.TrimSpace(req.Surname),
		SecondSurname: strings.TrimSpace(req.SecondSurname),
		Phone:         strings.TrimSpace(req.Phone),
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		DNI:           strings.ToUpper(strings.TrimSpace(req.DNI)),
		Obs:           strings.TrimSpace(req.Obs),
	}
}

func (s *clientService) Create(ctx context.Context, req model.ClientRequest) (*model.Client, error) {
	if err := validateClientRequest(req); err != nil {
		return nil, err
	}
	client := normalizeClient(req)

	existing, err := s.repo.FindByEmail(ctx, client.Email)
	if err != nil {
		return nil, Internal("failed to create client", err)
	}
	if existing != nil {
		return nil, Conflict("email already registered")
	}

	existing, err = s.repo.FindByDNI(ctx, client.DNI)
	if err != nil {
		return nil, Internal("failed to create client", err)
	}
	if existing != nil {
		return nil, Conflict("dni already registered")
	}

	if err := s.repo.Create(ctx, &client); err != nil {
		return nil, Internal("failed to create client", err)
	}
	return &client, nil
}

func (s *clientService) Update(ctx context.Context, id int, req model.ClientRequest) (*model.Client, error) {
	if err := validateClientRequest(req); err != nil {
		return nil, err
	}
	client := normalizeClient(req)
	client.ID = id

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, Internal("failed to update client", err)
	}
	if existing == nil {
		return nil, NotFound("client not found")
	}

	// Uniqueness checks exclude the record's own id
	byEmail, err := s.repo.FindByEmail(ctx, client.Email)
	if err != nil {
		return nil, Internal("failed to update client", err)
	}
	if byEmail != nil && byEmail.ID != id {
		return nil, Conflict("email already registered to another client")
	}

	byDNI, err := s.repo.FindByDNI(ctx, client.DNI)
	if err != nil {
		return nil, Internal("failed to update client", err)
	}
	if byDNI != nil && byDNI.ID != id {
		return nil, Conflict("dni already registered to another client")
	}

	if err := s.repo.Update(ctx, &client); err != nil {
		return nil, Internal("failed to update client", err)
	}
	return &client, nil
}

func (s *clientService) GetAll(ctx context.Context, searchText string) ([]model.Client, error) {
	clients, err := s.repo.FindAll(ctx, strings.TrimSpace(searchText))
	if err != nil {
		return nil, Internal("failed to list clients", err)
	}
	return clients, nil
}

func (s *clientService) GetByID(ctx context.Context, id int) (*model.Client, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, Internal("failed to get client", err)
	}
	if client == nil {
		return nil, NotFound("client not found")
	}
	return client, nil
}

func (s *clientService) SearchByField(ctx context.Context, field, value string) ([]model.Client, error) {
	if _, ok := repository.ClientSearchFields[field]; !ok {
		return nil, Validation("invalid field, allowed fields: name, surname, secondSurname, phone, email, dni, obs")
	}
	if strings.TrimSpace(value) == "" {
		return nil, Validation("search value is required")
	}

	clients, err := s.repo.FindByField(ctx, field, strings.TrimSpace(value))
	if err != nil {
		return nil, Internal("failed to search clients", err)
	}
	return clients, nil
}

func (s *clientService) Delete(ctx context.Context, id int) (*DeleteResult, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, Internal("failed to delete client", err)
	}
	if existing == nil {
		return nil, NotFound("client not found")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, Internal("failed to delete client", err)
	}
	return &DeleteResult{ID: id, Message: "client deleted successfully"}, nil
}
