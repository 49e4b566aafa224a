package mapping

import (
	"github.com/pawnsoft/pawnledger/internal/core/domain"
	"github.com/pawnsoft/pawnledger/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:       d.EntryID,
		CompanyID:     d.CompanyID,
		AccountID:     d.AccountID,
		EntryType:     models.EntryType(d.EntryType),
		Amount:        d.Amount,
		EntryDate:     d.EntryDate,
		ReferenceType: string(d.ReferenceType),
		ReferenceID:   d.ReferenceID,
		Narration:     d.Narration,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:       m.EntryID,
		CompanyID:     m.CompanyID,
		AccountID:     m.AccountID,
		EntryType:     domain.EntryType(m.EntryType),
		Amount:        m.Amount,
		EntryDate:     m.EntryDate,
		ReferenceType: domain.ReferenceType(m.ReferenceType),
		ReferenceID:   m.ReferenceID,
		Narration:     m.Narration,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLedgerEntrySlice converts a slice of model LedgerEntries to domain LedgerEntries
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}
