package models

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

// ExpenseTransaction represents an operating expense payment.
type ExpenseTransaction struct {
	ExpenseID       string          `db:"expense_id"`
	CompanyID       string          `db:"company_id"`
	TransactionNo   string          `db:"transaction_no"` // Unique per company
	ExpenseDate     time.Time       `db:"expense_date"`
	Amount          decimal.Decimal `db:"amount"`
	DebitAccountID  string          `db:"debit_account_id"`
	CreditAccountID string          `db:"credit_account_id"`
	Narration       string          `db:"narration"`
	Status          ExpenseStatus   `db:"status"`
	AuditFields
}
