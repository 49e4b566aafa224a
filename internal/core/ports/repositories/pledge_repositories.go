package repositories

import (
	"context"
	"time"

	"github.com/pawnsoft/pawnledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PledgeListFilter narrows ListPledges results. Nil fields are ignored.
type PledgeListFilter struct {
	Status     *domain.PledgeStatus
	CustomerID *string
	SchemeID   *string
}

// PledgeReader defines read operations for pledge data
type PledgeReader interface {
	// FindPledgeByID retrieves a specific pledge by its unique identifier.
	FindPledgeByID(ctx context.Context, pledgeID string) (*domain.Pledge, error)

	// FindPledgeByNo retrieves a pledge by its business number within a company.
	FindPledgeByNo(ctx context.Context, companyID string, pledgeNo string) (*domain.Pledge, error)

	// FindItemsByPledgeID retrieves the pawned items under a pledge.
	FindItemsByPledgeID(ctx context.Context, pledgeID string) ([]domain.PledgeItem, error)

	// ListPledges retrieves a filtered, paginated list of pledges for a company.
	ListPledges(ctx context.Context, companyID string, filter PledgeListFilter, limit int, offset int) ([]domain.Pledge, error)
}

// PledgeWriter defines write operations for pledge data
type PledgeWriter interface {
	// SavePledge persists a pledge and its items atomically.
	SavePledge(ctx context.Context, pledge domain.Pledge, items []domain.PledgeItem) error

	// UpdatePledgeStatus updates the lifecycle status and close date of a pledge.
	UpdatePledgeStatus(ctx context.Context, pledgeID string, status domain.PledgeStatus, closeDate *time.Time, updatedBy string) error

	// AddPledgeReceivedTotals adds to the accumulated principal and interest
	// received for a pledge. Deltas may be negative when a receipt is voided.
	AddPledgeReceivedTotals(ctx context.Context, pledgeID string, principalDelta, interestDelta decimal.Decimal, updatedBy string) error

	// DeletePledge removes a pledge and its items atomically.
	DeletePledge(ctx context.Context, pledgeID string) error
}

// PledgeRepositoryFacade combines all pledge-related repository interfaces
// This is a facade for clients that need access to all operations
type PledgeRepositoryFacade interface {
	PledgeReader
	PledgeWriter
}

// PledgeRepositoryWithTx extends PledgeRepositoryFacade with transaction capabilities
type PledgeRepositoryWithTx interface {
	PledgeRepositoryFacade
	Transactor
}
