package repositories

import (
	"context"

	"github.com/pawnsoft/pawnledger/internal/core/domain"
)

// LedgerReader defines read operations for ledger entry data
type LedgerReader interface {
	// FindEntriesByReference retrieves all entries recorded for one source
	// document, in insertion order.
	FindEntriesByReference(ctx context.Context, companyID string, refType domain.ReferenceType, refID string) ([]domain.LedgerEntry, error)

	// ListEntriesByAccount retrieves a paginated list of entries for a specific account.
	ListEntriesByAccount(ctx context.Context, companyID string, accountID string, limit int, offset int) ([]domain.LedgerEntry, error)
}

// LedgerWriter defines write operations for ledger entry data
type LedgerWriter interface {
	// SaveEntries persists the entries of one batch atomically, locking the
	// touched accounts, stamping running balances and updating account
	// balances within a single transaction.
	SaveEntries(ctx context.Context, entries []domain.LedgerEntry) error
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
// This is a facade for clients that need access to all operations
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}

// LedgerRepositoryWithTx extends LedgerRepositoryFacade with transaction capabilities
type LedgerRepositoryWithTx interface {
	LedgerRepositoryFacade
	Transactor
}
