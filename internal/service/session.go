package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CaioPires92/projeto14-mywallet-back/internal/auth"
	"github.com/CaioPires92/projeto14-mywallet-back/internal/cache"
	"github.com/CaioPires92/projeto14-mywallet-back/internal/metrics"
	"github.com/CaioPires92/projeto14-mywallet-back/internal/model"
	"github.com/CaioPires92/projeto14-mywallet-back/internal/repository"
	"github.com/CaioPires92/projeto14-mywallet-back/internal/validate"
)

// SessionService issues, validates and revokes session tokens.
type SessionService struct {
	repo    *repository.Repository
	cache   *cache.Cache
	users   *UserService
	metrics metrics.Recorder
}

// NewSessionService creates a new SessionService.
func NewSessionService(repo *repository.Repository, cacheClient *cache.Cache, users *UserService, recorder metrics.Recorder) *SessionService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &SessionService{
		repo:    repo,
		cache:   cacheClient,
		users:   users,
		metrics: recorder,
	}
}

// Login authenticates a raw login payload and returns a fresh session
// token. An unknown email and a wrong password both come back as
// ErrInvalidCredentials so callers cannot tell which check failed.
func (s *SessionService) Login(ctx context.Context, payload map[string]any) (string, error) {
	if messages := validate.Login().Validate(payload); messages != nil {
		return "", newValidationError(messages)
	}

	user, err := s.users.FindByEmail(ctx, stringField(payload, "email"))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.metrics.IncLoginFailure()
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	match, err := auth.VerifyPassword(stringField(payload, "password"), user.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("failed to verify password: %w", err)
	}
	if !match {
		s.metrics.IncLoginFailure()
		return "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	session := &model.Session{
		Token:     token,
		UserID:    user.ID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.CreateSession(ctx, session); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	// Best effort: Postgres is authoritative, a cold cache only costs a
	// lookup on the next authorize.
	_ = s.cache.SetSession(ctx, auth.QuickHash(token), session)

	s.metrics.IncLoginSuccess()

	return token, nil
}

// Authorize resolves the session for an Authorization header value.
// Only token existence is checked; a session record is authoritative
// once issued. Redis is consulted first, then Postgres, re-caching on a
// miss.
func (s *SessionService) Authorize(ctx context.Context, headerValue string) (*model.Session, error) {
	token := auth.ExtractBearerToken(headerValue)
	if token == "" {
		return nil, ErrUnauthenticated
	}

	digest := auth.QuickHash(token)

	if session, _ := s.cache.GetSession(ctx, digest); session != nil {
		s.metrics.IncSessionCacheHit()
		return session, nil
	}
	s.metrics.IncSessionCacheMiss()

	session, err := s.repo.GetSessionByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}

	_ = s.cache.SetSession(ctx, digest, session)

	return session, nil
}

// Logout revokes the session named by an Authorization header value.
// Revoking a token that no longer matches any session is still a
// success.
func (s *SessionService) Logout(ctx context.Context, headerValue string) error {
	token := auth.ExtractBearerToken(headerValue)
	if token == "" {
		return ErrUnauthenticated
	}

	if err := s.repo.DeleteSession(ctx, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	// Drop the cached copy so the token stops authorizing immediately.
	_ = s.cache.DeleteSession(ctx, auth.QuickHash(token))

	s.metrics.IncSessionRevoked()

	return nil
}
