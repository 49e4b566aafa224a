package dto

import (
	"time"

	"github.com/pawnsoft/pawnledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerEntryResponse defines the data returned for a ledger entry.
type LedgerEntryResponse struct {
	EntryID       string          `json:"entryID"`
	AccountID     string          `json:"accountID"`
	EntryType     string          `json:"entryType"`
	Amount        decimal.Decimal `json:"amount"`
	EntryDate     time.Time       `json:"entryDate"`
	ReferenceType string          `json:"referenceType"`
	ReferenceID   string          `json:"referenceID"`
	Narration     string          `json:"narration"`
}

// ListLedgerEntriesResponse wraps the entries of one reference or account.
type ListLedgerEntriesResponse struct {
	Entries []LedgerEntryResponse `json:"entries"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to LedgerEntryResponse DTO.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:       e.EntryID,
		AccountID:     e.AccountID,
		EntryType:     string(e.EntryType),
		Amount:        e.Amount,
		EntryDate:     e.EntryDate,
		ReferenceType: string(e.ReferenceType),
		ReferenceID:   e.ReferenceID,
		Narration:     e.Narration,
	}
}

// ToLedgerEntryResponses converts a slice of domain.LedgerEntry to []LedgerEntryResponse.
func ToLedgerEntryResponses(es []domain.LedgerEntry) []LedgerEntryResponse {
	responses := make([]LedgerEntryResponse, len(es))
	for i := range es {
		responses[i] = ToLedgerEntryResponse(&es[i])
	}
	return responses
}
