package repositories

import (
	"context"

	"github.com/pawnsoft/pawnledger/internal/core/domain"
)

// BankPledgeReader defines read operations for bank pledge data
type BankPledgeReader interface {
	// FindBankPledgeByID retrieves a specific bank pledge by its unique identifier.
	FindBankPledgeByID(ctx context.Context, bankPledgeID string) (*domain.BankPledge, error)

	// FindActiveBankPledgeByPledgeID retrieves the WITH_BANK bank pledge of a
	// shop pledge, if any.
	FindActiveBankPledgeByPledgeID(ctx context.Context, pledgeID string) (*domain.BankPledge, error)

	// FindItemsByBankPledgeID retrieves the item snapshots taken at transfer time.
	FindItemsByBankPledgeID(ctx context.Context, bankPledgeID string) ([]domain.BankPledgeItem, error)

	// ListBankPledges retrieves a paginated list of bank pledges for a company,
	// optionally filtered by status.
	ListBankPledges(ctx context.Context, companyID string, status *domain.BankPledgeStatus, limit int, offset int) ([]domain.BankPledge, error)

	// FindRedemptionsByBankPledgeID retrieves the redemptions recorded against a bank pledge.
	FindRedemptionsByBankPledgeID(ctx context.Context, bankPledgeID string) ([]domain.BankRedemption, error)
}

// BankPledgeWriter defines write operations for bank pledge data
type BankPledgeWriter interface {
	// SaveBankPledge persists a bank pledge and its item snapshots atomically.
	SaveBankPledge(ctx context.Context, bankPledge domain.BankPledge, items []domain.BankPledgeItem) error

	// UpdateBankPledgeStatus updates the status of a bank pledge.
	UpdateBankPledgeStatus(ctx context.Context, bankPledgeID string, status domain.BankPledgeStatus, updatedBy string) error

	// SaveRedemption persists a bank redemption record.
	SaveRedemption(ctx context.Context, redemption domain.BankRedemption) error
}

// BankPledgeRepositoryFacade combines all bank-pledge-related repository interfaces
// This is a facade for clients that need access to all operations
type BankPledgeRepositoryFacade interface {
	BankPledgeReader
	BankPledgeWriter
}

// BankPledgeRepositoryWithTx extends BankPledgeRepositoryFacade with transaction capabilities
type BankPledgeRepositoryWithTx interface {
	BankPledgeRepositoryFacade
	Transactor
}
