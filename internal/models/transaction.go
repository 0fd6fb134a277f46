package models

// TransactionType separates money in from money out in the cash-flow ledger.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction is one cash-flow ledger entry, independent of any order.
type Transaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Type        TransactionType `json:"type"`
	Date        string          `json:"date"` // YYYY-MM-DD
	Category    string          `json:"category"`
}

// Balance is the ledger summary.
type Balance struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}
