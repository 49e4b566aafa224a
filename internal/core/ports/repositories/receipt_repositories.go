package repositories

import (
	"context"
	"time"

	"github.com/pawnsoft/pawnledger/internal/core/domain"
)

// ReceiptListFilter narrows ListReceipts results. Nil fields are ignored.
type ReceiptListFilter struct {
	Status     *domain.ReceiptStatus
	CustomerID *string
	FromDate   *time.Time
	ToDate     *time.Time
}

// ReceiptReader defines read operations for receipt data
type ReceiptReader interface {
	// FindReceiptByID retrieves a specific receipt by its unique identifier.
	FindReceiptByID(ctx context.Context, receiptID string) (*domain.PledgeReceipt, error)

	// FindItemsByReceiptID retrieves the pledge allocations of a receipt.
	FindItemsByReceiptID(ctx context.Context, receiptID string) ([]domain.ReceiptItem, error)

	// ListReceipts retrieves a filtered, paginated list of receipts for a company.
	ListReceipts(ctx context.Context, companyID string, filter ReceiptListFilter, limit int, offset int) ([]domain.PledgeReceipt, error)
}

// ReceiptWriter defines write operations for receipt data
type ReceiptWriter interface {
	// SaveReceipt persists a receipt and its items atomically.
	SaveReceipt(ctx context.Context, receipt domain.PledgeReceipt, items []domain.ReceiptItem) error

	// UpdateReceiptStatus updates the document status and ledger posting status of a receipt.
	UpdateReceiptStatus(ctx context.Context, receiptID string, status domain.ReceiptStatus, coaStatus domain.COAEntryStatus, updatedBy string) error
}

// ReceiptRepositoryFacade combines all receipt-related repository interfaces
// This is a facade for clients that need access to all operations
type ReceiptRepositoryFacade interface {
	ReceiptReader
	ReceiptWriter
}

// ReceiptRepositoryWithTx extends ReceiptRepositoryFacade with transaction capabilities
type ReceiptRepositoryWithTx interface {
	ReceiptRepositoryFacade
	Transactor
}
