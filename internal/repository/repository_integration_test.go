//go:build integration

package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/CaioPires92/projeto14-mywallet-back/internal/model"
	"github.com/CaioPires92/projeto14-mywallet-back/internal/testutil"
)

// ============================================================================
// User Repository Integration Tests
// ============================================================================

func TestIntegrationUserRepository_CreateUser(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	email := testutil.UniqueEmail("create")
	user := testutil.NewTestUser(t, email)

	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	retrieved, err := repo.GetUserByEmail(ctx, email)
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}

	if retrieved.ID != user.ID {
		t.Errorf("ID mismatch: got %q, want %q", retrieved.ID, user.ID)
	}
	if retrieved.PasswordHash != user.PasswordHash {
		t.Errorf("PasswordHash mismatch: got %q, want %q", retrieved.PasswordHash, user.PasswordHash)
	}
	if retrieved.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestIntegrationUserRepository_CreateUser_DuplicateEmail(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	email := testutil.UniqueEmail("dup")
	user1 := testutil.NewTestUser(t, email)
	user2 := testutil.NewTestUser(t, email)
	user2.ID = testutil.UniqueID("user") // Different ID, same email

	if err := repo.CreateUser(ctx, user1); err != nil {
		t.Fatalf("CreateUser (first) failed: %v", err)
	}

	err := repo.CreateUser(ctx, user2)
	if !errors.Is(err, ErrEmailExists) {
		t.Errorf("Expected ErrEmailExists, got: %v", err)
	}
}

func TestIntegrationUserRepository_GetByEmail_NotFound(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	_, err := repo.GetUserByEmail(ctx, "nobody@example.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got: %v", err)
	}
}

func TestIntegrationUserRepository_GetByEmail_ExactMatch(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	email := testutil.UniqueEmail("Case")
	user := testutil.NewTestUser(t, email)

	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	// Lookup is exact-match: a different casing is a different email.
	_, err := repo.GetUserByEmail(ctx, "x"+email)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound for non-matching email, got: %v", err)
	}
}

func TestIntegrationUserRepository_GetByID(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	user := testutil.NewTestUser(t, testutil.UniqueEmail("getid"))
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	retrieved, err := repo.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}

	if retrieved.Email != user.Email {
		t.Errorf("Email mismatch: got %q, want %q", retrieved.Email, user.Email)
	}
}

// ============================================================================
// Session Repository Integration Tests
// ============================================================================

func TestIntegrationSessionRepository_CreateAndGet(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	session := testutil.NewTestSession(t, testutil.UniqueID("user"))

	if err := repo.CreateSession(ctx, session); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	retrieved, err := repo.GetSessionByToken(ctx, session.Token)
	if err != nil {
		t.Fatalf("GetSessionByToken failed: %v", err)
	}

	if retrieved.UserID != session.UserID {
		t.Errorf("UserID mismatch: got %q, want %q", retrieved.UserID, session.UserID)
	}
}

func TestIntegrationSessionRepository_GetByToken_NotFound(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	_, err := repo.GetSessionByToken(ctx, "deadbeefdeadbeefdeadbeefdeadbeef")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got: %v", err)
	}
}

func TestIntegrationSessionRepository_DeleteSession(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	session := testutil.NewTestSession(t, testutil.UniqueID("user"))
	if err := repo.CreateSession(ctx, session); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	if err := repo.DeleteSession(ctx, session.Token); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}

	_, err := repo.GetSessionByToken(ctx, session.Token)
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound after delete, got: %v", err)
	}
}

func TestIntegrationSessionRepository_DeleteSession_Idempotent(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	// Deleting a token that never existed is still a success.
	if err := repo.DeleteSession(ctx, "0000000000000000000000000000dead"); err != nil {
		t.Errorf("DeleteSession on missing token failed: %v", err)
	}
}

// ============================================================================
// Transaction Repository Integration Tests
// ============================================================================

func TestIntegrationTransactionRepository_CreateAndList(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	tx := testutil.NewTestTransaction(t, model.TypeIncome, 100)
	tx.Description = "salary"

	if err := repo.CreateTransaction(ctx, tx); err != nil {
		t.Fatalf("CreateTransaction failed: %v", err)
	}

	transactions, err := repo.ListTransactions(ctx)
	if err != nil {
		t.Fatalf("ListTransactions failed: %v", err)
	}

	if len(transactions) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(transactions))
	}

	got := transactions[0]
	if got.Value != 100 || got.Description != "salary" || got.Type != model.TypeIncome {
		t.Errorf("unexpected transaction: %+v", got)
	}
}

func TestIntegrationTransactionRepository_List_NewestDateFirst(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	// Date ordering is lexicographic on the DD/MM string.
	dates := []string{"03/01", "15/02", "09/12", "01/03"}
	for i, date := range dates {
		tx := testutil.NewTestTransaction(t, model.TypeExpense, float64(i+1))
		tx.Date = date
		if err := repo.CreateTransaction(ctx, tx); err != nil {
			t.Fatalf("CreateTransaction failed: %v", err)
		}
	}

	transactions, err := repo.ListTransactions(ctx)
	if err != nil {
		t.Fatalf("ListTransactions failed: %v", err)
	}

	want := []string{"15/02", "09/12", "03/01", "01/03"}
	if len(transactions) != len(want) {
		t.Fatalf("expected %d transactions, got %d", len(want), len(transactions))
	}
	for i, tx := range transactions {
		if tx.Date != want[i] {
			t.Errorf("position %d: got date %q, want %q", i, tx.Date, want[i])
		}
	}
}

func TestIntegrationTransactionRepository_List_Empty(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	transactions, err := repo.ListTransactions(ctx)
	if err != nil {
		t.Fatalf("ListTransactions failed: %v", err)
	}

	if len(transactions) != 0 {
		t.Errorf("expected empty ledger, got %d entries", len(transactions))
	}
}

// ============================================================================
// Test Environment
// ============================================================================

func newRepoTestEnv(t *testing.T) (context.Context, *Repository) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	ctx := context.Background()
	dbURL := testutil.RequireEnv(t, "DATABASE_URL")

	repo, err := New(ctx, dbURL)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(repo.Close)

	unlock, err := testutil.AcquireDBLock(ctx, repo.Pool())
	if err != nil {
		t.Fatalf("acquire db lock: %v", err)
	}
	t.Cleanup(func() {
		_ = unlock()
	})

	if err := testutil.ResetAllSchemas(ctx, repo.Pool()); err != nil {
		t.Fatalf("reset schemas: %v", err)
	}

	return ctx, repo
}
