package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/CaioPires92/projeto14-mywallet-back/internal/model"
)

// ErrSessionNotFound indicates no session matches the given token.
var ErrSessionNotFound = errors.New("session not found")

// CreateSession inserts a new session.
func (r *Repository) CreateSession(ctx context.Context, session *model.Session) error {
	query := `
		INSERT INTO sessions (token, user_id, created_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.pool.Exec(ctx, query,
		session.Token,
		session.UserID,
		session.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// GetSessionByToken retrieves a session by its token.
// Only existence is checked; the referenced user is not re-validated.
func (r *Repository) GetSessionByToken(ctx context.Context, token string) (*model.Session, error) {
	query := `
		SELECT token, user_id, created_at
		FROM sessions
		WHERE token = $1
	`

	var session model.Session
	err := r.pool.QueryRow(ctx, query, token).Scan(
		&session.Token,
		&session.UserID,
		&session.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session by token: %w", err)
	}

	return &session, nil
}

// DeleteSession removes the session matching the token.
// Deleting zero rows is still a success: logout is idempotent.
func (r *Repository) DeleteSession(ctx context.Context, token string) error {
	query := `
		DELETE FROM sessions
		WHERE token = $1
	`

	if _, err := r.pool.Exec(ctx, query, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
