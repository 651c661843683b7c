package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/CaioPires92/projeto14-mywallet-back/internal/auth"
	"github.com/CaioPires92/projeto14-mywallet-back/internal/metrics"
	"github.com/CaioPires92/projeto14-mywallet-back/internal/model"
	"github.com/CaioPires92/projeto14-mywallet-back/internal/repository"
	"github.com/CaioPires92/projeto14-mywallet-back/internal/validate"
)

// UserService owns user identity records.
type UserService struct {
	repo    *repository.Repository
	metrics metrics.Recorder
}

// NewUserService creates a new UserService.
func NewUserService(repo *repository.Repository, recorder metrics.Recorder) *UserService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &UserService{
		repo:    repo,
		metrics: recorder,
	}
}

// Register creates a new user from a raw registration payload.
//
// The password/confirmPassword comparison runs before schema validation,
// matching the original API's check order. The email existence lookup and
// the insert are not one atomic step; the UNIQUE index on email is the
// backstop, surfacing the race as ErrEmailTaken.
func (s *UserService) Register(ctx context.Context, payload map[string]any) error {
	if stringField(payload, "password") != stringField(payload, "confirmPassword") {
		return ErrPasswordMismatch
	}

	if messages := validate.Registration().Validate(payload); messages != nil {
		return newValidationError(messages)
	}

	email := stringField(payload, "email")

	_, err := s.repo.GetUserByEmail(ctx, email)
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return fmt.Errorf("failed to check email: %w", err)
	}

	passwordHash, err := auth.HashPassword(stringField(payload, "password"))
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Name:         stringField(payload, "name"),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	s.metrics.IncUserRegistered()

	return nil
}

// FindByEmail resolves a user by email. Internal pass-through for the
// session service; not an authentication operation by itself.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.repo.GetUserByEmail(ctx, email)
}

// stringField extracts a string field from a decoded payload.
// Non-string values yield an empty string; the validator reports them.
func stringField(payload map[string]any, name string) string {
	value, _ := payload[name].(string)
	return value
}
