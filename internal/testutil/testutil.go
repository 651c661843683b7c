package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/CaioPires92/projeto14-mywallet-back/internal/model"
)

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

const advisoryLockID int64 = 140914

// AcquireDBLock grabs a global advisory lock to serialize DB tests.
func AcquireDBLock(ctx context.Context, pool *pgxpool.Pool) (func() error, error) {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}

	if _, err := conn.Exec(ctx, "SELECT pg_advisory_lock($1)", advisoryLockID); err != nil {
		conn.Release()
		return nil, fmt.Errorf("acquire advisory lock: %w", err)
	}

	unlock := func() error {
		defer conn.Release()
		if _, err := conn.Exec(ctx, "SELECT pg_advisory_unlock($1)", advisoryLockID); err != nil {
			return fmt.Errorf("release advisory lock: %w", err)
		}
		return nil
	}

	return unlock, nil
}

// applyMigration applies one down/up migration pair by number and name.
func applyMigration(ctx context.Context, pool *pgxpool.Pool, name string) error {
	root, err := ProjectRoot()
	if err != nil {
		return err
	}

	downPath := filepath.Join(root, "migrations", name+".down.sql")
	upPath := filepath.Join(root, "migrations", name+".up.sql")

	downSQL, err := os.ReadFile(downPath)
	if err != nil {
		return fmt.Errorf("read down migration: %w", err)
	}
	if _, err := pool.Exec(ctx, string(downSQL)); err != nil {
		return fmt.Errorf("apply down migration: %w", err)
	}

	upSQL, err := os.ReadFile(upPath)
	if err != nil {
		return fmt.Errorf("read up migration: %w", err)
	}
	if _, err := pool.Exec(ctx, string(upSQL)); err != nil {
		return fmt.Errorf("apply up migration: %w", err)
	}

	return nil
}

// ResetUsersSchema drops and recreates the users schema for tests.
func ResetUsersSchema(ctx context.Context, pool *pgxpool.Pool) error {
	return applyMigration(ctx, pool, "000001_users")
}

// ResetSessionsSchema drops and recreates the sessions schema for tests.
func ResetSessionsSchema(ctx context.Context, pool *pgxpool.Pool) error {
	return applyMigration(ctx, pool, "000002_sessions")
}

// ResetTransactionsSchema drops and recreates the transactions schema for tests.
func ResetTransactionsSchema(ctx context.Context, pool *pgxpool.Pool) error {
	return applyMigration(ctx, pool, "000003_transactions")
}

// ResetAllSchemas rebuilds every table. Sessions go first so no session
// outlives its user across the rebuild.
func ResetAllSchemas(ctx context.Context, pool *pgxpool.Pool) error {
	if err := ResetSessionsSchema(ctx, pool); err != nil {
		return err
	}
	if err := ResetUsersSchema(ctx, pool); err != nil {
		return err
	}
	return ResetTransactionsSchema(ctx, pool)
}

// FlushRedis clears the current Redis database.
func FlushRedis(ctx context.Context, client *redis.Client) error {
	return client.FlushDB(ctx).Err()
}

// ProjectRoot returns the project root directory.
func ProjectRoot() (string, error) {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("failed to resolve testutil path")
	}
	root := filepath.Clean(filepath.Join(filepath.Dir(filename), "..", ".."))
	return root, nil
}

// ============================================================================
// Test Data Factories
// ============================================================================

// NewTestUser creates a test user with sensible defaults. The password
// hash is an opaque placeholder, not a verifiable Argon2id digest.
func NewTestUser(t testing.TB, email string) *model.User {
	t.Helper()
	now := time.Now().UTC()
	return &model.User{
		ID:           fmt.Sprintf("user-%d", now.UnixNano()),
		Name:         "Test User",
		Email:        email,
		PasswordHash: fmt.Sprintf("hash-%d", now.UnixNano()),
		CreatedAt:    now,
	}
}

// NewTestSession creates a test session for the given user.
func NewTestSession(t testing.TB, userID string) *model.Session {
	t.Helper()
	now := time.Now().UTC()
	return &model.Session{
		Token:     fmt.Sprintf("%032d", now.UnixNano()),
		UserID:    userID,
		CreatedAt: now,
	}
}

// NewTestTransaction creates a test ledger entry with sensible defaults.
func NewTestTransaction(t testing.TB, transactionType string, value float64) *model.Transaction {
	t.Helper()
	now := time.Now().UTC()
	return &model.Transaction{
		ID:          fmt.Sprintf("tx-%d", now.UnixNano()),
		Value:       value,
		Description: "test entry",
		Type:        transactionType,
		Date:        now.Format(model.TransactionDateLayout),
	}
}

// UniqueEmail generates a unique email address for tests.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, time.Now().UnixNano())
}

// UniqueID generates a unique ID for tests.
func UniqueID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
