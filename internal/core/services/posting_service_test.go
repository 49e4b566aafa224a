package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pawnsoft/pawnledger/internal/core/domain"
	portssvc "github.com/pawnsoft/pawnledger/internal/core/ports/services"
	"github.com/pawnsoft/pawnledger/internal/core/services"
)

type PostingServiceTestSuite struct {
	suite.Suite
	ctx        context.Context
	coaSvc     *MockCOAService
	ledgerRepo *MockLedgerRepository
	pledgeRepo *MockPledgeRepository
	service    portssvc.PostingSvc

	companyID  string
	customerID string
	userID     string

	cashAcct       *domain.Account
	pledgedAcct    *domain.Account
	custodyAcct    *domain.Account
	interestAcct   *domain.Account
	receivableAcct *domain.Account
}

func (suite *PostingServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.coaSvc = new(MockCOAService)
	suite.ledgerRepo = new(MockLedgerRepository)
	suite.pledgeRepo = new(MockPledgeRepository)
	suite.service = services.NewPostingService(suite.coaSvc, suite.ledgerRepo, suite.pledgeRepo)

	suite.companyID = uuid.NewString()
	suite.customerID = uuid.NewString()
	suite.userID = uuid.NewString()

	suite.cashAcct = suite.newAccount(domain.CodeCash, domain.Assets)
	suite.pledgedAcct = suite.newAccount(domain.CodePledgedItems, domain.Assets)
	suite.custodyAcct = suite.newAccount(domain.CodeCustomerDeposits, domain.Liabilities)
	suite.interestAcct = suite.newAccount(domain.CodeInterestIncome, domain.Income)
	suite.receivableAcct = suite.newAccount("10510001", domain.Assets)
}

func (suite *PostingServiceTestSuite) newAccount(code string, accountType domain.AccountType) *domain.Account {
	return &domain.Account{
		AccountID:   uuid.NewString(),
		CompanyID:   suite.companyID,
		AccountCode: code,
		AccountType: accountType,
		IsActive:    true,
	}
}

// captureEntries arranges for SaveEntries to succeed and hands back the saved slice.
func (suite *PostingServiceTestSuite) captureEntries(saved *[]domain.LedgerEntry) {
	suite.ledgerRepo.On("SaveEntries", suite.ctx, mock.AnythingOfType("[]domain.LedgerEntry")).
		Run(func(args mock.Arguments) {
			*saved = args.Get(1).([]domain.LedgerEntry)
		}).Return(nil).Once()
}

func sumByType(entries []domain.LedgerEntry, entryType domain.EntryType) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.EntryType == entryType {
			total = total.Add(e.Amount)
		}
	}
	return total
}

func (suite *PostingServiceTestSuite) newPledge(loan, maxValue, firstMonthInterest int64) domain.Pledge {
	return domain.Pledge{
		PledgeID:           uuid.NewString(),
		CompanyID:          suite.companyID,
		PledgeNo:           "GLD-2025-0001",
		CustomerID:         suite.customerID,
		PledgeDate:         time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		LoanAmount:         decimal.NewFromInt(loan),
		MaximumValue:       decimal.NewFromInt(maxValue),
		FirstMonthInterest: decimal.NewFromInt(firstMonthInterest),
		Status:             domain.PledgeActive,
	}
}

func (suite *PostingServiceTestSuite) TestPostPledgeEntries() {
	pledge := suite.newPledge(10000, 15000, 200)

	suite.coaSvc.On("ResolveAccount", suite.ctx, suite.companyID, domain.CodePledgedItems).Return(suite.pledgedAcct, nil).Once()
	suite.coaSvc.On("ResolveAccount", suite.ctx, suite.companyID, domain.CodeCustomerDeposits).Return(suite.custodyAcct, nil).Once()
	suite.coaSvc.On("ResolveAccount", suite.ctx, suite.companyID, domain.CodeCash).Return(suite.cashAcct, nil).Once()
	suite.coaSvc.On("GetOrCreateCustomerReceivable", suite.ctx, suite.companyID, suite.customerID, suite.userID).Return(suite.receivableAcct, nil).Once()
	suite.coaSvc.On("ResolveAccount", suite.ctx, suite.companyID, domain.CodeInterestIncome).Return(suite.interestAcct, nil).Once()

	var saved []domain.LedgerEntry
	suite.captureEntries(&saved)

	err := suite.service.PostPledgeEntries(suite.ctx, pledge, "", suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(saved, 6)

	// Custody pair at the appraised value.
	suite.Equal(suite.pledgedAcct.AccountID, saved[0].AccountID)
	suite.Equal(domain.Debit, saved[0].EntryType)
	suite.True(saved[0].Amount.Equal(decimal.NewFromInt(15000)))
	suite.Equal(suite.custodyAcct.AccountID, saved[1].AccountID)
	suite.Equal(domain.Credit, saved[1].EntryType)

	// Loan advanced out of cash.
	suite.Equal(suite.receivableAcct.AccountID, saved[2].AccountID)
	suite.Equal(domain.Debit, saved[2].EntryType)
	suite.True(saved[2].Amount.Equal(decimal.NewFromInt(10000)))
	suite.Equal(suite.cashAcct.AccountID, saved[3].AccountID)
	suite.Equal(domain.Credit, saved[3].EntryType)

	// First month interest back into cash.
	suite.Equal(suite.cashAcct.AccountID, saved[4].AccountID)
	suite.Equal(domain.Debit, saved[4].EntryType)
	suite.True(saved[4].Amount.Equal(decimal.NewFromInt(200)))
	suite.Equal(suite.interestAcct.AccountID, saved[5].AccountID)
	suite.Equal(domain.Credit, saved[5].EntryType)

	suite.True(sumByType(saved, domain.Debit).Equal(sumByType(saved, domain.Credit)))
	for _, e := range saved {
		suite.NotEmpty(e.EntryID)
		suite.Equal(domain.RefPledge, e.ReferenceType)
		suite.Equal(pledge.PledgeID, e.ReferenceID)
		suite.Equal(suite.userID, e.CreatedBy)
		suite.True(e.EntryDate.Equal(pledge.PledgeDate))
	}

	suite.coaSvc.AssertExpectations(suite.T())
	suite.ledgerRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostPledgeEntriesWithoutUpfrontInterest() {
	pledge := suite.newPledge(10000, 15000, 0)

	suite.coaSvc.On("ResolveAccount", suite.ctx, suite.companyID, domain.CodePledgedItems).Return(suite.pledgedAcct, nil).Once()
	suite.coaSvc.On("ResolveAccount", suite.ctx, suite.companyID, domain.CodeCustomerDeposits).Return(suite.custodyAcct, nil).Once()
	suite.coaSvc.On("ResolveAccount", suite.ctx, suite.companyID, domain.CodeCash).Return(suite.cashAcct, nil).Once()
	suite.coaSvc.On("GetOrCreateCustomerReceivable", suite.ctx, suite.companyID, suite.customerID, suite.userID).Return(suite.receivableAcct, nil).Once()

	var saved []domain.LedgerEntry
	suite.captureEntries(&saved)

	err := suite.service.PostPledgeEntries(suite.ctx, pledge, "", suite.userID)

	suite.Require().NoError(err)
	suite.Len(saved, 4)
	suite.coaSvc.AssertNotCalled(suite.T(), "ResolveAccount", suite.ctx, suite.companyID, domain.CodeInterestIncome)
	suite.coaSvc.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostPledgeEntriesMissingTemplateAccount() {
	pledge := suite.newPledge(10000, 15000, 200)

	suite.coaSvc.On("ResolveAccount", suite.ctx, suite.companyID, domain.CodePledgedItems).
		Return(nil, services.ErrAccountNotFound).Once()

	err := suite.service.PostPledgeEntries(suite.ctx, pledge, "", suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAccountNotFound)
	suite.ledgerRepo.AssertNotCalled(suite.T(), "SaveEntries", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostReceiptEntriesGroupsPrincipalByReceivable() {
	pledgeA := suite.newPledge(10000, 15000, 200)
	pledgeB := suite.newPledge(5000, 8000, 100)
	pledgeB.PledgeNo = "GLD-2025-0002"

	receipt := domain.PledgeReceipt{
		ReceiptID:     uuid.NewString(),
		CompanyID:     suite.companyID,
		ReceiptNo:     "RCP-2025-0001",
		CustomerID:    suite.customerID,
		ReceiptDate:   time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
		ReceiptAmount: decimal.NewFromInt(940),
	}
	items := []domain.ReceiptItem{
		{
			PledgeID:      pledgeA.PledgeID,
			PaidPrincipal: decimal.NewFromInt(500),
			PaidInterest:  decimal.NewFromInt(100),
		},
		{
			PledgeID:      pledgeB.PledgeID,
			PaidPrincipal: decimal.NewFromInt(300),
			PaidInterest:  decimal.NewFromInt(50),
			PaidDiscount:  decimal.NewFromInt(20),
			PaidPenalty:   decimal.NewFromInt(10),
		},
	}

	discountAcct := suite.newAccount(domain.CodeInterestDiscount, domain.Expenses)
	penaltyAcct := suite.newAccount(domain.CodePenaltyIncome, domain.Income)

	suite.coaSvc.On("ResolveAccount", suite.ctx, suite.companyID, domain.CodeCash).Return(suite.cashAcct, nil).Once()
	suite.pledgeRepo.On("FindPledgeByID", suite.ctx, pledgeA.PledgeID).Return(&pledgeA, nil).Once()
	suite.pledgeRepo.On("FindPledgeByID", suite.ctx, pledgeB.PledgeID).Return(&pledgeB, nil).Once()
	suite.coaSvc.On("GetOrCreateCustomerReceivable", suite.ctx, suite.companyID, suite.customerID, suite.userID).Return(suite.receivableAcct, nil).Twice()
	suite.coaSvc.On("ResolveAccount", suite.ctx, suite.companyID, domain.CodeInterestIncome).Return(suite.interestAcct, nil).Once()
	suite.coaSvc.On("GetOrCreateAccount", suite.ctx, suite.companyID, domain.CodeInterestDiscount, "Interest Discount", domain.Expenses, suite.userID).Return(discountAcct, nil).Once()
	suite.coaSvc.On("GetOrCreateAccount", suite.ctx, suite.companyID, domain.CodePenaltyIncome, "Penalty Income", domain.Income, suite.userID).Return(penaltyAcct, nil).Once()

	var saved []domain.LedgerEntry
	suite.captureEntries(&saved)

	err := suite.service.PostReceiptEntries(suite.ctx, receipt, items, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(saved, 5)

	suite.Equal(suite.cashAcct.AccountID, saved[0].AccountID)
	suite.Equal(domain.Debit, saved[0].EntryType)
	suite.True(saved[0].Amount.Equal(decimal.NewFromInt(940)))

	// Both items land on the same customer receivable, as one grouped credit.
	suite.Equal(suite.receivableAcct.AccountID, saved[1].AccountID)
	suite.Equal(domain.Credit, saved[1].EntryType)
	suite.True(saved[1].Amount.Equal(decimal.NewFromInt(800)))

	suite.Equal(suite.interestAcct.AccountID, saved[2].AccountID)
	suite.True(saved[2].Amount.Equal(decimal.NewFromInt(150)))
	suite.Equal(discountAcct.AccountID, saved[3].AccountID)
	suite.Equal(domain.Debit, saved[3].EntryType)
	suite.True(saved[3].Amount.Equal(decimal.NewFromInt(20)))
	suite.Equal(penaltyAcct.AccountID, saved[4].AccountID)
	suite.Equal(domain.Credit, saved[4].EntryType)
	suite.True(saved[4].Amount.Equal(decimal.NewFromInt(10)))

	suite.True(sumByType(saved, domain.Debit).Equal(sumByType(saved, domain.Credit)))
	suite.coaSvc.AssertExpectations(suite.T())
	suite.pledgeRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostReceiptEntriesInterestOnly() {
	receipt := domain.PledgeReceipt{
		ReceiptID:     uuid.NewString(),
		CompanyID:     suite.companyID,
		ReceiptNo:     "RCP-2025-0002",
		CustomerID:    suite.customerID,
		ReceiptDate:   time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
		ReceiptAmount: decimal.NewFromInt(100),
	}
	items := []domain.ReceiptItem{
		{PledgeID: uuid.NewString(), PaidInterest: decimal.NewFromInt(100)},
	}

	suite.coaSvc.On("ResolveAccount", suite.ctx, suite.companyID, domain.CodeCash).Return(suite.cashAcct, nil).Once()
	suite.coaSvc.On("ResolveAccount", suite.ctx, suite.companyID, domain.CodeInterestIncome).Return(suite.interestAcct, nil).Once()

	var saved []domain.LedgerEntry
	suite.captureEntries(&saved)

	err := suite.service.PostReceiptEntries(suite.ctx, receipt, items, suite.userID)

	suite.Require().NoError(err)
	suite.Len(saved, 2)
	// No principal paid, so the pledge is never resolved.
	suite.pledgeRepo.AssertNotCalled(suite.T(), "FindPledgeByID", mock.Anything, mock.Anything)
	suite.coaSvc.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostBankTransferEntries() {
	pledge := suite.newPledge(10000, 15000, 200)
	bankPledge := domain.BankPledge{
		BankPledgeID:        uuid.NewString(),
		CompanyID:           suite.companyID,
		PledgeID:            pledge.PledgeID,
		BankName:            "Canara Bank",
		TransferDate:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		BankLoanAmount:      decimal.NewFromInt(9000),
		OriginalShopLoan:    decimal.NewFromInt(8000),
		OutstandingInterest: decimal.NewFromInt(400),
		Status:              domain.BankWithBank,
	}

	inventoryAcct := suite.newAccount(domain.CodeJewelInventory, domain.Assets)
	bankAssetAcct := suite.newAccount(domain.CodeBankPledgeAsset, domain.Assets)
	bankLoanAcct := suite.newAccount(domain.CodeBankLoanPayable, domain.Liabilities)

	suite.pledgeRepo.On("FindPledgeByID", suite.ctx, pledge.PledgeID).Return(&pledge, nil).Once()
	suite.coaSvc.On("GetOrCreateCustomerReceivable", suite.ctx, suite.companyID, suite.customerID, suite.userID).Return(suite.receivableAcct, nil).Once()
	suite.coaSvc.On("GetOrCreateAccount", suite.ctx, suite.companyID, domain.CodeJewelInventory, "Jewel Inventory", domain.Assets, suite.userID).Return(inventoryAcct, nil).Once()
	suite.coaSvc.On("GetOrCreateAccount", suite.ctx, suite.companyID, domain.CodeBankPledgeAsset, "Bank Pledge Asset", domain.Assets, suite.userID).Return(bankAssetAcct, nil).Once()
	suite.coaSvc.On("GetOrCreateAccount", suite.ctx, suite.companyID, domain.CodeBankLoanPayable, "Bank Loan Payable", domain.Liabilities, suite.userID).Return(bankLoanAcct, nil).Once()

	var saved []domain.LedgerEntry
	suite.captureEntries(&saved)

	err := suite.service.PostBankTransferEntries(suite.ctx, bankPledge, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(saved, 4)

	// Shop exposure (principal plus accrued interest) moves into inventory.
	suite.Equal(inventoryAcct.AccountID, saved[0].AccountID)
	suite.Equal(domain.Debit, saved[0].EntryType)
	suite.True(saved[0].Amount.Equal(decimal.NewFromInt(8400)))
	suite.Equal(suite.receivableAcct.AccountID, saved[1].AccountID)
	suite.Equal(domain.Credit, saved[1].EntryType)

	// Bank financing pair.
	suite.Equal(bankAssetAcct.AccountID, saved[2].AccountID)
	suite.True(saved[2].Amount.Equal(decimal.NewFromInt(9000)))
	suite.Equal(bankLoanAcct.AccountID, saved[3].AccountID)

	suite.True(sumByType(saved, domain.Debit).Equal(sumByType(saved, domain.Credit)))
	for _, e := range saved {
		suite.Equal(domain.RefBankPledge, e.ReferenceType)
		suite.Equal(bankPledge.BankPledgeID, e.ReferenceID)
	}
	suite.coaSvc.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostBankRedemptionEntriesWithLoss() {
	pledge := suite.newPledge(10000, 15000, 200)
	bankPledge := domain.BankPledge{
		BankPledgeID:     uuid.NewString(),
		CompanyID:        suite.companyID,
		PledgeID:         pledge.PledgeID,
		BankName:         "Canara Bank",
		BankValuation:    decimal.NewFromInt(10000),
		OriginalShopLoan: decimal.NewFromInt(8000),
		Status:           domain.BankWithBank,
	}
	redemption := domain.BankRedemption{
		RedemptionID:     uuid.NewString(),
		CompanyID:        suite.companyID,
		BankPledgeID:     bankPledge.BankPledgeID,
		RedemptionDate:   time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		AmountPaidToBank: decimal.NewFromInt(9000),
		InterestPaid:     decimal.NewFromInt(150),
		BankCharges:      decimal.NewFromInt(50),
		PriceDifference:  decimal.NewFromInt(-1000),
	}

	bankLoanAcct := suite.newAccount(domain.CodeBankLoanPayable, domain.Liabilities)
	bankInterestAcct := suite.newAccount(domain.CodeBankInterestExp, domain.Expenses)
	chargesAcct := suite.newAccount(domain.CodeBankChargesExp, domain.Expenses)
	gainLossAcct := suite.newAccount(domain.CodeGainLossOnPledges, domain.Income)
	inventoryAcct := suite.newAccount(domain.CodeJewelInventory, domain.Assets)

	suite.pledgeRepo.On("FindPledgeByID", suite.ctx, pledge.PledgeID).Return(&pledge, nil).Once()
	suite.coaSvc.On("ResolveAccount", suite.ctx, suite.companyID, domain.CodeCash).Return(suite.cashAcct, nil).Once()
	suite.coaSvc.On("GetOrCreateAccount", suite.ctx, suite.companyID, domain.CodeBankLoanPayable, "Bank Loan Payable", domain.Liabilities, suite.userID).Return(bankLoanAcct, nil).Once()
	suite.coaSvc.On("GetOrCreateAccount", suite.ctx, suite.companyID, domain.CodeBankInterestExp, "Bank Interest Expense", domain.Expenses, suite.userID).Return(bankInterestAcct, nil).Once()
	suite.coaSvc.On("GetOrCreateAccount", suite.ctx, suite.companyID, domain.CodeBankChargesExp, "Bank Charges", domain.Expenses, suite.userID).Return(chargesAcct, nil).Once()
	suite.coaSvc.On("GetOrCreateAccount", suite.ctx, suite.companyID, domain.CodeGainLossOnPledges, "Gain/Loss on Pledges", domain.Income, suite.userID).Return(gainLossAcct, nil).Once()
	suite.coaSvc.On("GetOrCreateCustomerReceivable", suite.ctx, suite.companyID, suite.customerID, suite.userID).Return(suite.receivableAcct, nil).Once()
	suite.coaSvc.On("GetOrCreateAccount", suite.ctx, suite.companyID, domain.CodeJewelInventory, "Jewel Inventory", domain.Assets, suite.userID).Return(inventoryAcct, nil).Once()

	var saved []domain.LedgerEntry
	suite.captureEntries(&saved)

	err := suite.service.PostBankRedemptionEntries(suite.ctx, bankPledge, redemption, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(saved, 10)

	// Paying under the valuation books a loss against the gain/loss account.
	suite.Equal(gainLossAcct.AccountID, saved[6].AccountID)
	suite.Equal(domain.Debit, saved[6].EntryType)
	suite.True(saved[6].Amount.Equal(decimal.NewFromInt(1000)))
	suite.Equal(suite.cashAcct.AccountID, saved[7].AccountID)
	suite.Equal(domain.Credit, saved[7].EntryType)

	// Shop exposure restored from inventory.
	suite.Equal(suite.receivableAcct.AccountID, saved[8].AccountID)
	suite.Equal(domain.Debit, saved[8].EntryType)
	suite.True(saved[8].Amount.Equal(decimal.NewFromInt(8000)))
	suite.Equal(inventoryAcct.AccountID, saved[9].AccountID)

	suite.True(sumByType(saved, domain.Debit).Equal(sumByType(saved, domain.Credit)))
	suite.coaSvc.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostExpenseEntries() {
	expense := domain.ExpenseTransaction{
		ExpenseID:       uuid.NewString(),
		CompanyID:       suite.companyID,
		TransactionNo:   "EXP-202508-0001",
		ExpenseDate:     time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC),
		Amount:          decimal.NewFromInt(2500),
		DebitAccountID:  uuid.NewString(),
		CreditAccountID: suite.cashAcct.AccountID,
		Narration:       "Shop rent",
	}

	var saved []domain.LedgerEntry
	suite.captureEntries(&saved)

	err := suite.service.PostExpenseEntries(suite.ctx, expense, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(saved, 2)
	suite.Equal(expense.DebitAccountID, saved[0].AccountID)
	suite.Equal(domain.Debit, saved[0].EntryType)
	suite.Equal(expense.CreditAccountID, saved[1].AccountID)
	suite.Equal(domain.Credit, saved[1].EntryType)
	suite.Equal(domain.RefExpense, saved[0].ReferenceType)
	suite.ledgerRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestReverseEntriesFlipsOriginals() {
	pledgeID := uuid.NewString()
	originals := []domain.LedgerEntry{
		{
			EntryID:       uuid.NewString(),
			CompanyID:     suite.companyID,
			AccountID:     suite.receivableAcct.AccountID,
			EntryType:     domain.Debit,
			Amount:        decimal.NewFromInt(10000),
			ReferenceType: domain.RefPledge,
			ReferenceID:   pledgeID,
			Narration:     "Loan advanced against pledge - GLD-2025-0001",
		},
		{
			EntryID:       uuid.NewString(),
			CompanyID:     suite.companyID,
			AccountID:     suite.cashAcct.AccountID,
			EntryType:     domain.Credit,
			Amount:        decimal.NewFromInt(10000),
			ReferenceType: domain.RefPledge,
			ReferenceID:   pledgeID,
			Narration:     "Loan disbursed - GLD-2025-0001",
		},
	}

	suite.ledgerRepo.On("FindEntriesByReference", suite.ctx, suite.companyID, domain.RefPledge, pledgeID).
		Return(originals, nil).Once()

	var saved []domain.LedgerEntry
	suite.captureEntries(&saved)

	count, err := suite.service.ReverseEntries(suite.ctx, suite.companyID, domain.RefPledge, pledgeID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(2, count)
	suite.Require().Len(saved, 2)

	suite.Equal(suite.receivableAcct.AccountID, saved[0].AccountID)
	suite.Equal(domain.Credit, saved[0].EntryType)
	suite.Equal(suite.cashAcct.AccountID, saved[1].AccountID)
	suite.Equal(domain.Debit, saved[1].EntryType)
	for _, e := range saved {
		suite.Equal(domain.ReferenceType("PledgeReversal"), e.ReferenceType)
		suite.Equal(pledgeID, e.ReferenceID)
		suite.True(strings.HasPrefix(e.Narration, "Reversal of: "))
	}
	suite.ledgerRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestReverseEntriesNothingToReverse() {
	refID := uuid.NewString()
	suite.ledgerRepo.On("FindEntriesByReference", suite.ctx, suite.companyID, domain.RefReceipt, refID).
		Return([]domain.LedgerEntry{}, nil).Once()

	count, err := suite.service.ReverseEntries(suite.ctx, suite.companyID, domain.RefReceipt, refID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(0, count)
	suite.ledgerRepo.AssertNotCalled(suite.T(), "SaveEntries", mock.Anything, mock.Anything)
}

func TestPostingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PostingServiceTestSuite))
}
