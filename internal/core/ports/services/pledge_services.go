package services

import (
	"context"
	"time"

	"github.com/pawnsoft/pawnledger/internal/core/domain"
	"github.com/pawnsoft/pawnledger/internal/dto"
)

// PledgeReaderSvc defines read operations for pledge data
type PledgeReaderSvc interface {
	// GetPledgeByID retrieves a pledge and its items.
	GetPledgeByID(ctx context.Context, companyID string, pledgeID string) (*domain.Pledge, []domain.PledgeItem, error)

	// ListPledges retrieves a filtered, paginated list of pledges.
	ListPledges(ctx context.Context, companyID string, params dto.ListPledgesParams) (*dto.ListPledgesResponse, error)

	// GetOutstanding computes the repayment position of a pledge as of a date,
	// including accrued interest.
	GetOutstanding(ctx context.Context, companyID string, pledgeID string, asOf time.Time) (*domain.OutstandingSummary, error)
}

// PledgeWriterSvc defines write operations for pledge data
type PledgeWriterSvc interface {
	// CreatePledge persists a new pledge with its items, generates its number
	// and posts the disbursement entries.
	CreatePledge(ctx context.Context, companyID string, req dto.CreatePledgeRequest, creatorUserID string) (*domain.Pledge, error)

	// ClosePledge closes a pledge whose outstanding balance has reached zero.
	ClosePledge(ctx context.Context, companyID string, pledgeID string, userID string) (*domain.Pledge, error)

	// DeletePledge reverses the pledge's ledger entries and removes it.
	DeletePledge(ctx context.Context, companyID string, pledgeID string, userID string) error
}

// PledgeSvcFacade combines all pledge-related service interfaces
// This is a facade for clients that need access to all operations
type PledgeSvcFacade interface {
	PledgeReaderSvc
	PledgeWriterSvc
}
