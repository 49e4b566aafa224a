package services

import (
	"context"

	"github.com/pawnsoft/pawnledger/internal/core/domain"
	"github.com/pawnsoft/pawnledger/internal/dto"
)

// COAReaderSvc defines read operations for the chart of accounts
type COAReaderSvc interface {
	// GetAccountByID retrieves a specific account by its ID.
	GetAccountByID(ctx context.Context, companyID string, accountID string) (*domain.Account, error)

	// ResolveAccount retrieves an account by its code. Template codes that are
	// missing fail hard rather than being created.
	ResolveAccount(ctx context.Context, companyID string, accountCode string) (*domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts in a company.
	ListAccounts(ctx context.Context, companyID string, params dto.ListAccountsParams) (*dto.ListAccountsResponse, error)
}

// COAWriterSvc defines write operations for the chart of accounts
type COAWriterSvc interface {
	// SeedDefaultAccounts creates the standard account template for a new company.
	SeedDefaultAccounts(ctx context.Context, companyID string, creatorUserID string) error

	// CreateAccount persists a new user-defined account.
	CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)

	// GetOrCreateAccount returns the system-managed account with the given
	// code, creating it from the supplied attributes when absent.
	GetOrCreateAccount(ctx context.Context, companyID string, accountCode string, accountName string, accountType domain.AccountType, creatorUserID string) (*domain.Account, error)

	// GetOrCreateCustomerReceivable returns the customer's dedicated receivable
	// account, creating it and linking it to the customer on first use.
	GetOrCreateCustomerReceivable(ctx context.Context, companyID string, customerID string, creatorUserID string) (*domain.Account, error)
}

// COASvcFacade combines all chart-of-accounts service interfaces
// This is a facade for clients that need access to all operations
type COASvcFacade interface {
	COAReaderSvc
	COAWriterSvc
}
