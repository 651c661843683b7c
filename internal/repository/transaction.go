package repository

import (
	"context"
	"fmt"

	"github.com/CaioPires92/projeto14-mywallet-back/internal/model"
)

// CreateTransaction appends one entry to the ledger.
func (r *Repository) CreateTransaction(ctx context.Context, tx *model.Transaction) error {
	query := `
		INSERT INTO transactions (id, value, description, type, date)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		tx.ID,
		tx.Value,
		tx.Description,
		tx.Type,
		tx.Date,
	)

	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// ListTransactions returns every ledger entry, newest date first.
// The date column is a DD/MM display string, so the ordering is
// lexicographic rather than calendar-correct across years.
func (r *Repository) ListTransactions(ctx context.Context) ([]*model.Transaction, error) {
	query := `
		SELECT id, value, description, type, date
		FROM transactions
		ORDER BY date DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*model.Transaction
	for rows.Next() {
		var tx model.Transaction
		if err := rows.Scan(&tx.ID, &tx.Value, &tx.Description, &tx.Type, &tx.Date); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, &tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return transactions, nil
}
