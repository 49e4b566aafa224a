package domain

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

// Well-known account codes used by the posting routines. Codes up to 5050
// belong to the fixed template seeded at company setup; the rest are
// system-managed and created lazily on first reference.
const (
	CodeCash               = "1000"
	CodeBankAccount        = "1010"
	CodePledgedItems       = "1040"
	CodeCustomerDeposits   = "2010"
	CodeReceivablePrefix   = "1051" // per-customer receivable: 1051{customer:04d}
	CodeJewelInventory     = "1500"
	CodeBankPledgeAsset    = "2100"
	CodeBankLoanPayable    = "2200"
	CodeInterestIncome     = "4000"
	CodePenaltyIncome      = "4050"
	CodeGainLossOnPledges  = "4200"
	CodeInterestDiscount   = "5060"
	CodeBankInterestExp    = "5300"
	CodeBankChargesExp     = "5400"
)

// Account is a chart-of-accounts entry scoped to a company.
// AccountCode is unique within a company.
type Account struct {
	AccountID       string          `json:"accountID"`
	CompanyID       string          `json:"companyID"`
	AccountCode     string          `json:"accountCode"`
	AccountName     string          `json:"accountName"`
	AccountType     AccountType     `json:"accountType"`
	AccountCategory string          `json:"accountCategory"`
	ParentAccountID *string         `json:"parentAccountID,omitempty"` // optional hierarchy
	OpeningBalance  decimal.Decimal `json:"openingBalance"`
	Description     string          `json:"description"`
	IsActive        bool            `json:"isActive"`
	AuditFields
	Balance decimal.Decimal `json:"balance"` // Persisted signed balance (debits positive)
}
