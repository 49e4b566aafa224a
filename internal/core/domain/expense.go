package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseStatus indicates the state of an expense transaction.
type ExpenseStatus string

const (
	ExpensePosted   ExpenseStatus = "Posted"
	ExpenseReversed ExpenseStatus = "Reversed"
)

// ExpenseTransaction is an operating expense paid out of a cash or bank
// account, posted as a two-line ledger batch.
type ExpenseTransaction struct {
	ExpenseID       string          `json:"expenseID"` // Primary Key (e.g., UUID)
	CompanyID       string          `json:"companyID"`
	TransactionNo   string          `json:"transactionNo"` // e.g. EXP-202501-0001, unique per company
	ExpenseDate     time.Time       `json:"expenseDate"`
	Amount          decimal.Decimal `json:"amount"`
	DebitAccountID  string          `json:"debitAccountID"`  // expense account
	CreditAccountID string          `json:"creditAccountID"` // payment account
	Narration       string          `json:"narration"`
	Status          ExpenseStatus   `json:"status"`
	AuditFields
}
