// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import "github.com/CaioPires92/projeto14-mywallet-back/internal/model"

// TransactionResponse represents one ledger entry in API responses.
type TransactionResponse struct {
	ID          string  `json:"id"`
	Value       float64 `json:"value"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Date        string  `json:"date"`
}

// ErrorResponse represents an API error with a single message.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ValidationErrorResponse carries the full list of field violations for
// one payload.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// ToTransactionResponse converts a Transaction model to its DTO.
func ToTransactionResponse(tx *model.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID,
		Value:       tx.Value,
		Description: tx.Description,
		Type:        tx.Type,
		Date:        tx.Date,
	}
}

// ToTransactionListResponse converts a slice of Transaction models.
func ToTransactionListResponse(transactions []*model.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, tx := range transactions {
		responses[i] = ToTransactionResponse(tx)
	}
	return responses
}
