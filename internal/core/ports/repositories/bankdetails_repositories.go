package repositories

import (
	"context"

	"github.com/pawnsoft/pawnledger/internal/core/domain"
)

// BankDetailsReader defines read operations for bank master data
type BankDetailsReader interface {
	// FindBankDetailsByID retrieves a specific bank master record by its unique identifier.
	FindBankDetailsByID(ctx context.Context, bankDetailsID string) (*domain.BankDetails, error)

	// ListBankDetails retrieves the bank master records of a company, optionally only active ones.
	ListBankDetails(ctx context.Context, companyID string, onlyActive bool) ([]domain.BankDetails, error)
}

// BankDetailsWriter defines write operations for bank master data
type BankDetailsWriter interface {
	// SaveBankDetails persists a new bank master record.
	SaveBankDetails(ctx context.Context, details domain.BankDetails) error

	// UpdateBankDetails updates an existing bank master record.
	UpdateBankDetails(ctx context.Context, details domain.BankDetails) error
}

// BankDetailsRepositoryFacade combines all bank-master repository interfaces
// This is a facade for clients that need access to all operations
type BankDetailsRepositoryFacade interface {
	BankDetailsReader
	BankDetailsWriter
}
