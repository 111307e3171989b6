package service

import (
	"context"
	"strings"

	"clinic_agenda/internal/model"
	"clinic_agenda/internal/repository"
	"clinic_agenda/internal/utils"
)

const (
	minPasswordLen   = 6
	defaultUserColor = "#000000"
)

// UserService manages staff accounts
type UserService interface {
	Create(ctx context.Context, req model.UserRequest) (*model.User, error)
	Update(ctx context.Context, id int, req model.UserRequest) (*model.User, error)
	GetAll(ctx context.Context, searchText string) ([]model.User, error)
	GetByID(ctx context.Context, id int) (*model.User, error)
	Delete(ctx context.Context, id int) (*DeleteResult, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func normalizeUser(req model.UserRequest) model.User {
	color := strings.TrimSpace(req.Color)
	if color == "" {
		color = defaultUserColor
	}
	return model.User{
		Name:          strings.TrimSpace(req.Name),
		Surname:       strings.TrimSpace(req.Surname),
		SecondSurname: strings.TrimSpace(req.SecondSurname),
		Phone:         strings.TrimSpace(req.Phone),
		Movil:         strings.TrimSpace(req.Movil),
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		Color:         color,
		Admin:         req.Admin,
	}
}

func (s *userService) Create(ctx context.Context, req model.UserRequest) (*model.User, error) {
	if req.Name == "" || req.Surname == "" || req.Email == "" || req.Password == "" {
		return nil, Validation("the fields name, surname, email and password are required")
	}
	if !validEmail(req.Email) {
		return nil, Validation("invalid email format")
	}
	if len(req.Password) < minPasswordLen {
		return nil, Validation("password must be at least 6 characters")
	}

	user := normalizeUser(req)

	existing, err := s.repo.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, Internal("failed to create user", err)
	}
	if existing != nil {
		return nil, Conflict("email already registered")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, Internal("failed to create user", err)
	}
	user.PasswordHash = hash

	if err := s.repo.Create(ctx, &user); err != nil {
		return nil, Internal("failed to create user", err)
	}
	return &user, nil
}

func (s *userService) Update(ctx context.Context, id int, req model.UserRequest) (*model.User, error) {
	if req.Name == "" || req.Surname == "" || req.Email == "" {
		return nil, Validation("the fields name, surname and email are required")
	}
	if !validEmail(req.Email) {
		return nil, Validation("invalid email format")
	}
	if pw := strings.TrimSpace(req.Password); pw != "" && len(req.Password) < minPasswordLen {
		return nil, Validation("password must be at least 6 characters")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, Internal("failed to update user", err)
	}
	if existing == nil {
		return nil, NotFound("user not found")
	}

	byEmail, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, Internal("failed to update user", err)
	}
	if byEmail != nil && byEmail.ID != id {
		return nil, Conflict("email already registered to another user")
	}

	user := normalizeUser(req)
	user.ID = id

	// Rehash only when a new password arrives, otherwise keep the stored hash
	if pw := strings.TrimSpace(req.Password); pw != "" {
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			return nil, Internal("failed to update user", err)
		}
		user.PasswordHash = hash
	} else {
		user.PasswordHash = existing.PasswordHash
	}

	if err := s.repo.Update(ctx, &user); err != nil {
		return nil, Internal("failed to update user", err)
	}
	return &user, nil
}

func (s *userService) GetAll(ctx context.Context, searchText string) ([]model.User, error) {
	users, err := s.repo.FindAll(ctx, strings.TrimSpace(searchText))
	if err != nil {
		return nil, Internal("failed to list users", err)
	}
	return users, nil
}

func (s *userService) GetByID(ctx context.Context, id int) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, Internal("failed to get user", err)
	}
	if user == nil {
		return nil, NotFound("user not found")
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id int) (*DeleteResult, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, Internal("failed to delete user", err)
	}
	if existing == nil {
		return nil, NotFound("user not found")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, Internal("failed to delete user", err)
	}
	return &DeleteResult{ID: id, Message: "user deleted successfully"}, nil
}
