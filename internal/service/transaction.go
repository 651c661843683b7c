package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/CaioPires92/projeto14-mywallet-back/internal/metrics"
	"github.com/CaioPires92/projeto14-mywallet-back/internal/model"
	"github.com/CaioPires92/projeto14-mywallet-back/internal/repository"
	"github.com/CaioPires92/projeto14-mywallet-back/internal/validate"
)

// TransactionService records and lists ledger entries.
// Entries are not scoped to the authenticated user; the ledger is one
// global list (see DESIGN.md).
type TransactionService struct {
	repo    *repository.Repository
	metrics metrics.Recorder
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(repo *repository.Repository, recorder metrics.Recorder) *TransactionService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &TransactionService{
		repo:    repo,
		metrics: recorder,
	}
}

// Record validates a raw transaction payload and appends the entry to
// the ledger, stamped with today's date in DD/MM form.
func (s *TransactionService) Record(ctx context.Context, transactionType string, payload map[string]any) error {
	if messages := validate.Transaction().Validate(payload); messages != nil {
		return newValidationError(messages)
	}

	kind := strings.ToLower(transactionType)
	if !model.IsValidTransactionType(kind) {
		return ErrInvalidTransactionType
	}

	value, _ := payload["value"].(float64)

	tx := &model.Transaction{
		ID:          ulid.Make().String(),
		Value:       value,
		Description: stringField(payload, "description"),
		Type:        kind,
		Date:        time.Now().Format(model.TransactionDateLayout),
	}

	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return fmt.Errorf("failed to record transaction: %w", err)
	}

	s.metrics.IncTransactionRecorded(kind)

	return nil
}

// List returns every ledger entry, newest date first.
func (s *TransactionService) List(ctx context.Context) ([]*model.Transaction, error) {
	transactions, err := s.repo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, nil
}
