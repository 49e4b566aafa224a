package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType indicates whether a ledger entry is a Debit or a Credit.
type EntryType string

const (
	Debit  EntryType = "DEBIT"
	Credit EntryType = "CREDIT"
)

// LedgerEntry represents one debit or credit row in the ledger.
type LedgerEntry struct {
	EntryID       string          `db:"entry_id"`
	CompanyID     string          `db:"company_id"`
	AccountID     string          `db:"account_id"`
	EntryType     EntryType       `db:"entry_type"`
	Amount        decimal.Decimal `db:"amount"` // Positive value
	EntryDate     time.Time       `db:"entry_date"`
	ReferenceType string          `db:"reference_type"`
	ReferenceID   string          `db:"reference_id"`
	Narration     string          `db:"narration"`
	AuditFields
	RunningBalance decimal.Decimal `db:"running_balance"` // Account balance after this entry
}
