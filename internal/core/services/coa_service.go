package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pawnsoft/pawnledger/internal/apperrors"
	"github.com/pawnsoft/pawnledger/internal/core/domain"
	portsrepo "github.com/pawnsoft/pawnledger/internal/core/ports/repositories"
	portssvc "github.com/pawnsoft/pawnledger/internal/core/ports/services"
	"github.com/pawnsoft/pawnledger/internal/dto"
	"github.com/pawnsoft/pawnledger/internal/middleware"
)

var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrCustomerNotFound = errors.New("customer not found")
)

// templateAccount describes one entry of the fixed chart-of-accounts template
// seeded at company setup. Template codes are never auto-created at posting
// time; a missing one is a setup error.
type templateAccount struct {
	Code     string
	Name     string
	Type     domain.AccountType
	Category string
}

var defaultAccounts = []templateAccount{
	{Code: "1000", Name: "Cash", Type: domain.Assets, Category: "Cash"},
	{Code: "1010", Name: "Bank Account", Type: domain.Assets, Category: "Bank"},
	{Code: "1020", Name: "Gold Stock", Type: domain.Assets, Category: "Inventory"},
	{Code: "1030", Name: "Silver Stock", Type: domain.Assets, Category: "Inventory"},
	{Code: "1040", Name: "Pledged Items", Type: domain.Assets, Category: "Inventory"},
	{Code: "1050", Name: "Customer Advances", Type: domain.Assets, Category: "Receivables"},
	{Code: "2000", Name: "Accounts Payable", Type: domain.Liabilities, Category: "Current Liabilities"},
	{Code: "2010", Name: "Customer Deposits", Type: domain.Liabilities, Category: "Current Liabilities"},
	{Code: "3000", Name: "Capital", Type: domain.Equity, Category: "Capital"},
	{Code: "3010", Name: "Retained Earnings", Type: domain.Equity, Category: "Capital"},
	{Code: "4000", Name: "Pledge Interest Income", Type: domain.Income, Category: "Operating Income"},
	{Code: "4010", Name: "Gold Sales", Type: domain.Income, Category: "Sales"},
	{Code: "4020", Name: "Silver Sales", Type: domain.Income, Category: "Sales"},
	{Code: "4030", Name: "Service Charges", Type: domain.Income, Category: "Operating Income"},
	{Code: "5000", Name: "Rent", Type: domain.Expenses, Category: "Operating Expenses"},
	{Code: "5010", Name: "Salary", Type: domain.Expenses, Category: "Operating Expenses"},
	{Code: "5020", Name: "Utilities", Type: domain.Expenses, Category: "Operating Expenses"},
	{Code: "5030", Name: "Repairs & Maintenance", Type: domain.Expenses, Category: "Operating Expenses"},
	{Code: "5040", Name: "Insurance", Type: domain.Expenses, Category: "Operating Expenses"},
	{Code: "5050", Name: "Administrative", Type: domain.Expenses, Category: "Operating Expenses"},
}

// coaService manages the per-company chart of accounts.
type coaService struct {
	accountRepo  portsrepo.AccountRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCOAService creates a new chart-of-accounts service.
func NewCOAService(accountRepo portsrepo.AccountRepositoryFacade, customerRepo portsrepo.CustomerRepositoryFacade) portssvc.COASvcFacade {
	return &coaService{
		accountRepo:  accountRepo,
		customerRepo: customerRepo,
	}
}

// Ensure coaService implements the portssvc.COASvcFacade interface
var _ portssvc.COASvcFacade = (*coaService)(nil)

// SeedDefaultAccounts creates the standard account template for a new company.
// Implements portssvc.COASvcFacade
func (s *coaService) SeedDefaultAccounts(ctx context.Context, companyID string, creatorUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	count, err := s.accountRepo.CountAccounts(ctx, companyID)
	if err != nil {
		logger.Error("Failed to count accounts before seeding", slog.String("error", err.Error()), slog.String("company_id", companyID))
		return fmt.Errorf("failed to count accounts: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: company %s already has accounts", apperrors.ErrDuplicate, companyID)
	}

	now := time.Now().UTC()
	accounts := make([]domain.Account, len(defaultAccounts))
	for i, tpl := range defaultAccounts {
		accounts[i] = domain.Account{
			AccountID:       uuid.NewString(),
			CompanyID:       companyID,
			AccountCode:     tpl.Code,
			AccountName:     tpl.Name,
			AccountType:     tpl.Type,
			AccountCategory: tpl.Category,
			OpeningBalance:  decimal.Zero,
			IsActive:        true,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     creatorUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: creatorUserID,
			},
		}
	}

	if err := s.accountRepo.SaveAccounts(ctx, accounts); err != nil {
		logger.Error("Failed to seed default accounts", slog.String("error", err.Error()), slog.String("company_id", companyID))
		return fmt.Errorf("failed to seed default accounts: %w", err)
	}

	logger.Info("Default accounts seeded", slog.String("company_id", companyID), slog.Int("count", len(accounts)))
	return nil
}

// GetAccountByID retrieves a specific account by its ID.
// Implements portssvc.COASvcFacade
func (s *coaService) GetAccountByID(ctx context.Context, companyID string, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.CompanyID != companyID {
		return nil, fmt.Errorf("%w: account %s does not belong to company %s", ErrAccountNotFound, accountID, companyID)
	}
	return account, nil
}

// ResolveAccount retrieves an account by its code, failing hard when missing.
// Implements portssvc.COASvcFacade
func (s *coaService) ResolveAccount(ctx context.Context, companyID string, accountCode string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, companyID, accountCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: code %s", ErrAccountNotFound, accountCode)
		}
		return nil, err
	}
	return account, nil
}

// ListAccounts retrieves a paginated list of accounts in a company.
// Implements portssvc.COASvcFacade
func (s *coaService) ListAccounts(ctx context.Context, companyID string, params dto.ListAccountsParams) (*dto.ListAccountsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 100
	}
	if limit > 500 {
		limit = 500
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, companyID, limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	return &dto.ListAccountsResponse{Accounts: dto.ToAccountResponses(accounts)}, nil
}

// CreateAccount persists a new user-defined account.
// Implements portssvc.COASvcFacade
func (s *coaService) CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		CompanyID:       companyID,
		AccountCode:     req.AccountCode,
		AccountName:     req.AccountName,
		AccountType:     req.AccountType,
		AccountCategory: req.AccountCategory,
		ParentAccountID: req.ParentAccountID,
		OpeningBalance:  req.OpeningBalance,
		Description:     req.Description,
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to create account", slog.String("error", err.Error()), slog.String("account_code", req.AccountCode))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("account_code", account.AccountCode))
	return &account, nil
}

// GetOrCreateAccount returns the system-managed account with the given code,
// creating it from the supplied attributes when absent.
// Implements portssvc.COASvcFacade
func (s *coaService) GetOrCreateAccount(ctx context.Context, companyID string, accountCode string, accountName string, accountType domain.AccountType, creatorUserID string) (*domain.Account, error) {
	now := time.Now().UTC()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		CompanyID:      companyID,
		AccountCode:    accountCode,
		AccountName:    accountName,
		AccountType:    accountType,
		OpeningBalance: decimal.Zero,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	existing, err := s.accountRepo.GetOrCreateAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create account %s: %w", accountCode, err)
	}
	return existing, nil
}

// GetOrCreateCustomerReceivable returns the customer's dedicated receivable
// account, creating it and linking it to the customer on first use.
// Implements portssvc.COASvcFacade
func (s *coaService) GetOrCreateCustomerReceivable(ctx context.Context, companyID string, customerID string, creatorUserID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCustomerNotFound, customerID)
		}
		return nil, err
	}
	if customer.CompanyID != companyID {
		return nil, fmt.Errorf("%w: %s", ErrCustomerNotFound, customerID)
	}

	// Fast path: the account was linked on a previous pledge.
	if customer.ReceivableAccountID != nil {
		return s.accountRepo.FindAccountByID(ctx, *customer.ReceivableAccountID)
	}

	code := fmt.Sprintf("%s%04d", domain.CodeReceivablePrefix, customer.CustomerNo)
	account, err := s.GetOrCreateAccount(ctx, companyID, code, customer.Name+" Receivable", domain.Assets, creatorUserID)
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.SetReceivableAccount(ctx, customerID, account.AccountID, creatorUserID); err != nil {
		logger.Error("Failed to link receivable account to customer", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to link receivable account: %w", err)
	}

	logger.Info("Customer receivable account created", slog.String("customer_id", customerID), slog.String("account_code", code))
	return account, nil
}
