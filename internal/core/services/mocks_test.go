package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/pawnsoft/pawnledger/internal/core/domain"
	portsrepo "github.com/pawnsoft/pawnledger/internal/core/ports/repositories"
	portssvc "github.com/pawnsoft/pawnledger/internal/core/ports/services"
	"github.com/pawnsoft/pawnledger/internal/dto"
)

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

// Ensure MockLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) FindEntriesByReference(ctx context.Context, companyID string, refType domain.ReferenceType, refID string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, companyID, refType, refID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) ListEntriesByAccount(ctx context.Context, companyID string, accountID string, limit int, offset int) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, companyID, accountID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) SaveEntries(ctx context.Context, entries []domain.LedgerEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

// --- Mock PledgeRepository ---
type MockPledgeRepository struct {
	mock.Mock
}

// Ensure MockPledgeRepository implements portsrepo.PledgeRepositoryFacade
var _ portsrepo.PledgeRepositoryFacade = (*MockPledgeRepository)(nil)

func (m *MockPledgeRepository) FindPledgeByID(ctx context.Context, pledgeID string) (*domain.Pledge, error) {
	args := m.Called(ctx, pledgeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pledge), args.Error(1)
}

func (m *MockPledgeRepository) FindPledgeByNo(ctx context.Context, companyID string, pledgeNo string) (*domain.Pledge, error) {
	args := m.Called(ctx, companyID, pledgeNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pledge), args.Error(1)
}

func (m *MockPledgeRepository) FindItemsByPledgeID(ctx context.Context, pledgeID string) ([]domain.PledgeItem, error) {
	args := m.Called(ctx, pledgeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PledgeItem), args.Error(1)
}

func (m *MockPledgeRepository) ListPledges(ctx context.Context, companyID string, filter portsrepo.PledgeListFilter, limit int, offset int) ([]domain.Pledge, error) {
	args := m.Called(ctx, companyID, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Pledge), args.Error(1)
}

func (m *MockPledgeRepository) SavePledge(ctx context.Context, pledge domain.Pledge, items []domain.PledgeItem) error {
	args := m.Called(ctx, pledge, items)
	return args.Error(0)
}

func (m *MockPledgeRepository) UpdatePledgeStatus(ctx context.Context, pledgeID string, status domain.PledgeStatus, closeDate *time.Time, updatedBy string) error {
	args := m.Called(ctx, pledgeID, status, closeDate, updatedBy)
	return args.Error(0)
}

func (m *MockPledgeRepository) AddPledgeReceivedTotals(ctx context.Context, pledgeID string, principalDelta, interestDelta decimal.Decimal, updatedBy string) error {
	args := m.Called(ctx, pledgeID, principalDelta, interestDelta, updatedBy)
	return args.Error(0)
}

func (m *MockPledgeRepository) DeletePledge(ctx context.Context, pledgeID string) error {
	args := m.Called(ctx, pledgeID)
	return args.Error(0)
}

// --- Mock SchemeRepository ---
type MockSchemeRepository struct {
	mock.Mock
}

// Ensure MockSchemeRepository implements portsrepo.SchemeRepositoryFacade
var _ portsrepo.SchemeRepositoryFacade = (*MockSchemeRepository)(nil)

func (m *MockSchemeRepository) FindSchemeByID(ctx context.Context, schemeID string) (*domain.Scheme, error) {
	args := m.Called(ctx, schemeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Scheme), args.Error(1)
}

func (m *MockSchemeRepository) ListSchemes(ctx context.Context, companyID string, onlyActive bool) ([]domain.Scheme, error) {
	args := m.Called(ctx, companyID, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Scheme), args.Error(1)
}

func (m *MockSchemeRepository) SaveScheme(ctx context.Context, scheme domain.Scheme) error {
	args := m.Called(ctx, scheme)
	return args.Error(0)
}

func (m *MockSchemeRepository) UpdateScheme(ctx context.Context, scheme domain.Scheme) error {
	args := m.Called(ctx, scheme)
	return args.Error(0)
}

// --- Mock SequenceRepository ---
type MockSequenceRepository struct {
	mock.Mock
}

// Ensure MockSequenceRepository implements portsrepo.SequenceRepository
var _ portsrepo.SequenceRepository = (*MockSequenceRepository)(nil)

func (m *MockSequenceRepository) NextSequence(ctx context.Context, companyID string, prefix string, period string) (int64, error) {
	args := m.Called(ctx, companyID, prefix, period)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock ReceiptRepository ---
type MockReceiptRepository struct {
	mock.Mock
}

// Ensure MockReceiptRepository implements portsrepo.ReceiptRepositoryFacade
var _ portsrepo.ReceiptRepositoryFacade = (*MockReceiptRepository)(nil)

func (m *MockReceiptRepository) FindReceiptByID(ctx context.Context, receiptID string) (*domain.PledgeReceipt, error) {
	args := m.Called(ctx, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PledgeReceipt), args.Error(1)
}

func (m *MockReceiptRepository) FindItemsByReceiptID(ctx context.Context, receiptID string) ([]domain.ReceiptItem, error) {
	args := m.Called(ctx, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReceiptItem), args.Error(1)
}

func (m *MockReceiptRepository) ListReceipts(ctx context.Context, companyID string, filter portsrepo.ReceiptListFilter, limit int, offset int) ([]domain.PledgeReceipt, error) {
	args := m.Called(ctx, companyID, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PledgeReceipt), args.Error(1)
}

func (m *MockReceiptRepository) SaveReceipt(ctx context.Context, receipt domain.PledgeReceipt, items []domain.ReceiptItem) error {
	args := m.Called(ctx, receipt, items)
	return args.Error(0)
}

func (m *MockReceiptRepository) UpdateReceiptStatus(ctx context.Context, receiptID string, status domain.ReceiptStatus, coaStatus domain.COAEntryStatus, updatedBy string) error {
	args := m.Called(ctx, receiptID, status, coaStatus, updatedBy)
	return args.Error(0)
}

// --- Mock BankPledgeRepository ---
type MockBankPledgeRepository struct {
	mock.Mock
}

// Ensure MockBankPledgeRepository implements portsrepo.BankPledgeRepositoryFacade
var _ portsrepo.BankPledgeRepositoryFacade = (*MockBankPledgeRepository)(nil)

func (m *MockBankPledgeRepository) FindBankPledgeByID(ctx context.Context, bankPledgeID string) (*domain.BankPledge, error) {
	args := m.Called(ctx, bankPledgeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankPledge), args.Error(1)
}

func (m *MockBankPledgeRepository) FindActiveBankPledgeByPledgeID(ctx context.Context, pledgeID string) (*domain.BankPledge, error) {
	args := m.Called(ctx, pledgeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankPledge), args.Error(1)
}

func (m *MockBankPledgeRepository) FindItemsByBankPledgeID(ctx context.Context, bankPledgeID string) ([]domain.BankPledgeItem, error) {
	args := m.Called(ctx, bankPledgeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankPledgeItem), args.Error(1)
}

func (m *MockBankPledgeRepository) ListBankPledges(ctx context.Context, companyID string, status *domain.BankPledgeStatus, limit int, offset int) ([]domain.BankPledge, error) {
	args := m.Called(ctx, companyID, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankPledge), args.Error(1)
}

func (m *MockBankPledgeRepository) FindRedemptionsByBankPledgeID(ctx context.Context, bankPledgeID string) ([]domain.BankRedemption, error) {
	args := m.Called(ctx, bankPledgeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankRedemption), args.Error(1)
}

func (m *MockBankPledgeRepository) SaveBankPledge(ctx context.Context, bankPledge domain.BankPledge, items []domain.BankPledgeItem) error {
	args := m.Called(ctx, bankPledge, items)
	return args.Error(0)
}

func (m *MockBankPledgeRepository) UpdateBankPledgeStatus(ctx context.Context, bankPledgeID string, status domain.BankPledgeStatus, updatedBy string) error {
	args := m.Called(ctx, bankPledgeID, status, updatedBy)
	return args.Error(0)
}

func (m *MockBankPledgeRepository) SaveRedemption(ctx context.Context, redemption domain.BankRedemption) error {
	args := m.Called(ctx, redemption)
	return args.Error(0)
}

// --- Mock BankDetailsRepository ---
type MockBankDetailsRepository struct {
	mock.Mock
}

// Ensure MockBankDetailsRepository implements portsrepo.BankDetailsRepositoryFacade
var _ portsrepo.BankDetailsRepositoryFacade = (*MockBankDetailsRepository)(nil)

func (m *MockBankDetailsRepository) FindBankDetailsByID(ctx context.Context, bankDetailsID string) (*domain.BankDetails, error) {
	args := m.Called(ctx, bankDetailsID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankDetails), args.Error(1)
}

func (m *MockBankDetailsRepository) ListBankDetails(ctx context.Context, companyID string, onlyActive bool) ([]domain.BankDetails, error) {
	args := m.Called(ctx, companyID, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankDetails), args.Error(1)
}

func (m *MockBankDetailsRepository) SaveBankDetails(ctx context.Context, details domain.BankDetails) error {
	args := m.Called(ctx, details)
	return args.Error(0)
}

func (m *MockBankDetailsRepository) UpdateBankDetails(ctx context.Context, details domain.BankDetails) error {
	args := m.Called(ctx, details)
	return args.Error(0)
}

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

// Ensure MockExpenseRepository implements portsrepo.ExpenseRepositoryFacade
var _ portsrepo.ExpenseRepositoryFacade = (*MockExpenseRepository)(nil)

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.ExpenseTransaction, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseTransaction), args.Error(1)
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, companyID string, from, to *time.Time, limit int, offset int) ([]domain.ExpenseTransaction, error) {
	args := m.Called(ctx, companyID, from, to, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseTransaction), args.Error(1)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.ExpenseTransaction) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) UpdateExpenseStatus(ctx context.Context, expenseID string, status domain.ExpenseStatus, updatedBy string) error {
	args := m.Called(ctx, expenseID, status, updatedBy)
	return args.Error(0)
}

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

// Ensure MockCustomerRepository implements portsrepo.CustomerRepositoryFacade
var _ portsrepo.CustomerRepositoryFacade = (*MockCustomerRepository)(nil)

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context, companyID string, limit int, offset int) ([]domain.Customer, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) SetReceivableAccount(ctx context.Context, customerID string, accountID string, updatedBy string) error {
	args := m.Called(ctx, customerID, accountID, updatedBy)
	return args.Error(0)
}

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

// Ensure MockAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, companyID string, accountCode string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, accountCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, companyID string, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) CountAccounts(ctx context.Context, companyID string) (int, error) {
	args := m.Called(ctx, companyID)
	return args.Int(0), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) SaveAccounts(ctx context.Context, accounts []domain.Account) error {
	args := m.Called(ctx, accounts)
	return args.Error(0)
}

func (m *MockAccountRepository) GetOrCreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, userID string) error {
	args := m.Called(ctx, tx, balanceChanges, userID)
	return args.Error(0)
}

// --- Mock Transactor ---
// Runs the unit of work inline so the repository mocks inside it still record
// their calls; returning a non-nil error simulates a rolled-back transaction
// without invoking the unit at all.
type MockTransactor struct {
	mock.Mock
}

// Ensure MockTransactor implements portsrepo.Transactor
var _ portsrepo.Transactor = (*MockTransactor)(nil)

func (m *MockTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}

// --- Mock COAService (as used by the posting and expense services) ---
type MockCOAService struct {
	mock.Mock
}

// Ensure MockCOAService implements portssvc.COASvcFacade
var _ portssvc.COASvcFacade = (*MockCOAService)(nil)

func (m *MockCOAService) GetAccountByID(ctx context.Context, companyID string, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockCOAService) ResolveAccount(ctx context.Context, companyID string, accountCode string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, accountCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockCOAService) ListAccounts(ctx context.Context, companyID string, params dto.ListAccountsParams) (*dto.ListAccountsResponse, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListAccountsResponse), args.Error(1)
}

func (m *MockCOAService) SeedDefaultAccounts(ctx context.Context, companyID string, creatorUserID string) error {
	args := m.Called(ctx, companyID, creatorUserID)
	return args.Error(0)
}

func (m *MockCOAService) CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockCOAService) GetOrCreateAccount(ctx context.Context, companyID string, accountCode string, accountName string, accountType domain.AccountType, creatorUserID string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, accountCode, accountName, accountType, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockCOAService) GetOrCreateCustomerReceivable(ctx context.Context, companyID string, customerID string, creatorUserID string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, customerID, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// --- Mock PostingService ---
type MockPostingService struct {
	mock.Mock
}

// Ensure MockPostingService implements portssvc.PostingSvc
var _ portssvc.PostingSvc = (*MockPostingService)(nil)

func (m *MockPostingService) PostPledgeEntries(ctx context.Context, pledge domain.Pledge, paymentAccountCode string, userID string) error {
	args := m.Called(ctx, pledge, paymentAccountCode, userID)
	return args.Error(0)
}

func (m *MockPostingService) PostReceiptEntries(ctx context.Context, receipt domain.PledgeReceipt, items []domain.ReceiptItem, userID string) error {
	args := m.Called(ctx, receipt, items, userID)
	return args.Error(0)
}

func (m *MockPostingService) PostBankTransferEntries(ctx context.Context, bankPledge domain.BankPledge, userID string) error {
	args := m.Called(ctx, bankPledge, userID)
	return args.Error(0)
}

func (m *MockPostingService) PostBankRedemptionEntries(ctx context.Context, bankPledge domain.BankPledge, redemption domain.BankRedemption, userID string) error {
	args := m.Called(ctx, bankPledge, redemption, userID)
	return args.Error(0)
}

func (m *MockPostingService) PostExpenseEntries(ctx context.Context, expense domain.ExpenseTransaction, userID string) error {
	args := m.Called(ctx, expense, userID)
	return args.Error(0)
}

func (m *MockPostingService) ReverseEntries(ctx context.Context, companyID string, refType domain.ReferenceType, refID string, userID string) (int, error) {
	args := m.Called(ctx, companyID, refType, refID, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockPostingService) GetEntriesByReference(ctx context.Context, companyID string, refType domain.ReferenceType, refID string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, companyID, refType, refID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}
