package services

import (
	"context"

	"github.com/pawnsoft/pawnledger/internal/core/domain"
	"github.com/pawnsoft/pawnledger/internal/dto"
)

// ReceiptReaderSvc defines read operations for receipt data
type ReceiptReaderSvc interface {
	// GetReceiptByID retrieves a receipt and its items.
	GetReceiptByID(ctx context.Context, companyID string, receiptID string) (*domain.PledgeReceipt, []domain.ReceiptItem, error)

	// ListReceipts retrieves a filtered, paginated list of receipts.
	ListReceipts(ctx context.Context, companyID string, params dto.ListReceiptsParams) (*dto.ListReceiptsResponse, error)
}

// ReceiptWriterSvc defines write operations for receipt data
type ReceiptWriterSvc interface {
	// CreateReceipt persists a new draft receipt with its items and generates
	// its number. No ledger entries are written until the receipt is posted.
	CreateReceipt(ctx context.Context, companyID string, req dto.CreateReceiptRequest, creatorUserID string) (*domain.PledgeReceipt, error)

	// PostReceipt posts a draft receipt: writes the ledger entries, updates
	// pledge running totals and applies payment-type status transitions.
	PostReceipt(ctx context.Context, companyID string, receiptID string, userID string) (*domain.PledgeReceipt, error)

	// VoidReceipt voids a posted receipt, reversing its entries and totals.
	VoidReceipt(ctx context.Context, companyID string, receiptID string, userID string) (*domain.PledgeReceipt, error)
}

// ReceiptSvcFacade combines all receipt-related service interfaces
// This is a facade for clients that need access to all operations
type ReceiptSvcFacade interface {
	ReceiptReaderSvc
	ReceiptWriterSvc
}
