package model

// Transaction type values, kept in the original Portuguese wire format.
const (
	TypeIncome  = "entrada"
	TypeExpense = "saida"
)

// TransactionDateLayout is the display format stored for a transaction date.
// Day/month only; ordering on it is string-wise, not calendar-wise.
const TransactionDateLayout = "02/01"

// Transaction is one ledger entry.
// Entries carry no owner reference: the ledger is a single global list
// shared by every authenticated user.
type Transaction struct {
	ID          string  `json:"id"`
	Value       float64 `json:"value"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Date        string  `json:"date"`
}

// IsValidTransactionType reports whether t is one of the accepted
// (already case-normalized) transaction types.
func IsValidTransactionType(t string) bool {
	return t == TypeIncome || t == TypeExpense
}
