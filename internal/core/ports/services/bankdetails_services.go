package services

import (
	"context"

	"github.com/pawnsoft/pawnledger/internal/core/domain"
	"github.com/pawnsoft/pawnledger/internal/dto"
)

// BankDetailsReaderSvc defines read operations for bank master data
type BankDetailsReaderSvc interface {
	// GetBankDetailsByID retrieves a specific bank master record.
	GetBankDetailsByID(ctx context.Context, companyID string, bankDetailsID string) (*domain.BankDetails, error)

	// ListBankDetails retrieves the bank master records of a company.
	ListBankDetails(ctx context.Context, companyID string, onlyActive bool) (*dto.ListBankDetailsResponse, error)
}

// BankDetailsWriterSvc defines write operations for bank master data
type BankDetailsWriterSvc interface {
	// CreateBankDetails persists a new bank master record.
	CreateBankDetails(ctx context.Context, companyID string, req dto.CreateBankDetailsRequest, creatorUserID string) (*domain.BankDetails, error)

	// DeactivateBankDetails marks a bank master record inactive so new
	// transfers cannot use it.
	DeactivateBankDetails(ctx context.Context, companyID string, bankDetailsID string, userID string) error
}

// BankDetailsSvcFacade combines all bank-master service interfaces
// This is a facade for clients that need access to all operations
type BankDetailsSvcFacade interface {
	BankDetailsReaderSvc
	BankDetailsWriterSvc
}
