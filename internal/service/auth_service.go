package service

import (
	"context"
	"strings"

	"clinic_agenda/internal/model"
	"clinic_agenda/internal/repository"
	"clinic_agenda/internal/utils"
)

// AuthResult bundles the issued token and the sanitized user projection
type AuthResult struct {
	Token string          `json:"token"`
	User  *model.AuthUser `json:"user"`
}

// VerifiedUser is the echo payload of the whoami endpoint
type VerifiedUser struct {
	ID int `json:"id"`
}

// AuthService provides login, registration and token verification
type AuthService interface {
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	Register(ctx context.Context, username, email, password string) (*AuthResult, error)
	Verify(userID int) *VerifiedUser
}

type authService struct {
	userRepo repository.UserRepository
	jwtUtil  *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{userRepo: userRepo, jwtUtil: jwtUtil}
}

func sanitizeUser(u *model.User) *model.AuthUser {
	return &model.AuthUser{
		ID:       u.ID,
		Username: strings.TrimSpace(u.Name),
		Email:    strings.TrimSpace(u.Email),
		Admin:    u.Admin,
		Color:    strings.TrimSpace(u.Color),
	}
}

// Login checks the submitted password against the stored bcrypt hash of the
// account whose username matches.
func (s *authService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	if username == "" || password == "" {
		return nil, Validation("username and password are required")
	}

	user, err := s.userRepo.FindByName(ctx, username)
	if err != nil {
		return nil, Internal("failed to process login", err)
	}
	if user == nil {
		return nil, Unauthorized("invalid credentials")
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, Unauthorized("invalid credentials")
	}

	token, err := s.jwtUtil.GenerateToken(user.ID)
	if err != nil {
		return nil, Internal("failed to process login", err)
	}

	return &AuthResult{Token: token, User: sanitizeUser(user)}, nil
}

func (s *authService) Register(ctx context.Context, username, email, password string) (*AuthResult, error) {
	if username == "" || email == "" || password == "" {
		return nil, Validation("all fields are required")
	}
	if !validEmail(email) {
		return nil, Validation("invalid email format")
	}
	if len(password) < minPasswordLen {
		return nil, Validation("password must be at least 6 characters")
	}

	existing, err := s.userRepo.FindByName(ctx, username)
	if err != nil {
		return nil, Internal("failed to register user", err)
	}
	if existing != nil {
		return nil, Conflict("user already exists")
	}

	existing, err = s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, Internal("failed to register user", err)
	}
	if existing != nil {
		return nil, Conflict("email already registered")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, Internal("failed to register user", err)
	}

	user := &model.User{
		Name:         strings.TrimSpace(username),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		Color:        defaultUserColor,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, Internal("failed to register user", err)
	}

	token, err := s.jwtUtil.GenerateToken(user.ID)
	if err != nil {
		return nil, Internal("user created, but failed to generate token", err)
	}

	return &AuthResult{Token: token, User: sanitizeUser(user)}, nil
}

// Verify echoes the authenticated user's id; the gate already did the work.
func (s *authService) Verify(userID int) *VerifiedUser {
	return &VerifiedUser{ID: userID}
}
