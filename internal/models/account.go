package models

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Assets      AccountType = "Assets"
	Liabilities AccountType = "Liabilities"
	Equity      AccountType = "Equity"
	Income      AccountType = "Income"
	Expenses    AccountType = "Expenses"
)

// Account represents a chart-of-accounts row.
// Note: ParentAccountID uses *string for the nullable foreign key.
type Account struct {
	AccountID       string          `db:"account_id"`
	CompanyID       string          `db:"company_id"`
	AccountCode     string          `db:"account_code"` // Unique per company
	AccountName     string          `db:"account_name"`
	AccountType     AccountType     `db:"account_type"`
	AccountCategory string          `db:"account_category"`
	ParentAccountID *string         `db:"parent_account_id"` // Nullable
	OpeningBalance  decimal.Decimal `db:"opening_balance"`
	Description     string          `db:"description"`
	IsActive        bool            `db:"is_active"`
	AuditFields // Embed common audit fields
	Balance decimal.Decimal `db:"balance"` // Persisted signed balance (debits positive)
}
