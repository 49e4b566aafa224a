package domain

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

// ReferenceType links a ledger entry back to the business document that
// produced it.
type ReferenceType string

const (
	RefPledge         ReferenceType = "Pledge"
	RefReceipt        ReferenceType = "Receipt"
	RefBankPledge     ReferenceType = "BankPledge"
	RefBankRedemption ReferenceType = "BankRedemption"
	RefExpense        ReferenceType = "Expense"
)

// ReversalOf returns the reference type recorded on reversing entries for rt.
func ReversalOf(rt ReferenceType) ReferenceType {
	return rt + "Reversal"
}

// LedgerEntry is a single debit or credit line against one account.
type LedgerEntry struct {
	EntryID       string          `json:"entryID"`       // Primary Key (e.g., UUID)
	CompanyID     string          `json:"companyID"`     // FK -> Company (Not Null)
	AccountID     string          `json:"accountID"`     // FK -> Account.accountID (Not Null)
	EntryType     EntryType       `json:"entryType"`     // DEBIT or CREDIT (Not Null)
	Amount        decimal.Decimal `json:"amount"`        // Positive value; precise decimal type
	EntryDate     time.Time       `json:"entryDate"`     // Date the event occurred
	ReferenceType ReferenceType   `json:"referenceType"` // Source document kind
	ReferenceID   string          `json:"referenceID"`   // Source document ID
	Narration     string          `json:"narration"`     // Nullable
	AuditFields
}

// EntryBatch collects the entries of one business event so they can be
// balance-checked and persisted atomically.
type EntryBatch struct {
	CompanyID     string
	EntryDate     time.Time
	ReferenceType ReferenceType
	ReferenceID   string
	Entries       []LedgerEntry
}

// NewEntryBatch starts an empty batch for one business document.
func NewEntryBatch(companyID string, entryDate time.Time, refType ReferenceType, refID string) *EntryBatch {
	return &EntryBatch{
		CompanyID:     companyID,
		EntryDate:     entryDate,
		ReferenceType: refType,
		ReferenceID:   refID,
	}
}

func (b *EntryBatch) add(entryType EntryType, accountID string, amount decimal.Decimal, narration string) {
	b.Entries = append(b.Entries, LedgerEntry{
		CompanyID:     b.CompanyID,
		AccountID:     accountID,
		EntryType:     entryType,
		Amount:        amount,
		EntryDate:     b.EntryDate,
		ReferenceType: b.ReferenceType,
		ReferenceID:   b.ReferenceID,
		Narration:     narration,
	})
}

// AddDebit appends a debit line to the batch.
func (b *EntryBatch) AddDebit(accountID string, amount decimal.Decimal, narration string) {
	b.add(Debit, accountID, amount, narration)
}

// AddCredit appends a credit line to the batch.
func (b *EntryBatch) AddCredit(accountID string, amount decimal.Decimal, narration string) {
	b.add(Credit, accountID, amount, narration)
}

// TotalDebits sums the debit lines of the batch.
func (b *EntryBatch) TotalDebits() decimal.Decimal {
	total := decimal.Zero
	for _, e := range b.Entries {
		if e.EntryType == Debit {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// TotalCredits sums the credit lines of the batch.
func (b *EntryBatch) TotalCredits() decimal.Decimal {
	total := decimal.Zero
	for _, e := range b.Entries {
		if e.EntryType == Credit {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// Balanced reports whether total debits equal total credits.
func (b *EntryBatch) Balanced() bool {
	return b.TotalDebits().Equal(b.TotalCredits())
}
