// Package services holds the policy layer: state machine checks, availability
// toggling and event publishing, composed over the ports interfaces.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"letstayinn-backend/application/ports"
	"letstayinn-backend/domain"
	"letstayinn-backend/pkg/auth"
	appErrors "letstayinn-backend/pkg/errors"
)

// UserService handles guest signup, login and profile reads.
type UserService struct {
	users     ports.UserRepository
	generator *auth.JWTGenerator
	logger    *zap.Logger
}

// NewUserService creates a user service.
func NewUserService(users ports.UserRepository, generator *auth.JWTGenerator, logger *zap.Logger) *UserService {
	return &UserService{
		users:     users,
		generator: generator,
		logger:    logger.Named("user-service"),
	}
}

// Signup registers a guest account. Emails are lowercased before storage so
// uniqueness is case-insensitive.
func (s *UserService) Signup(ctx context.Context, name, email, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return appErrors.NewInternalError("hashing password").WithCause(err)
	}

	user := domain.User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    strings.ToLower(email),
		Password: hash,
		Role:     domain.RoleGuest,
	}
	return s.users.Save(ctx, user)
}

// Login verifies credentials and issues a token. A missing account and a
// wrong password both report the same message.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if appErrors.IsNotFound(err) {
			return "", appErrors.NewUnauthorizedError("invalid email or password")
		}
		return "", err
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		if errors.Is(err, auth.ErrWrongPassword) {
			return "", appErrors.NewUnauthorizedError("invalid email or password")
		}
		return "", appErrors.NewInternalError("verifying password").WithCause(err)
	}

	token, err := s.generator.GenerateToken(user)
	if err != nil {
		return "", appErrors.NewInternalError("issuing token").WithCause(err)
	}

	s.logger.Info("user logged in", zap.String("user_id", user.ID))
	return token, nil
}

// GetProfile reads a user's own profile.
func (s *UserService) GetProfile(ctx context.Context, userID string) (domain.User, error) {
	return s.users.GetByID(ctx, userID)
}
