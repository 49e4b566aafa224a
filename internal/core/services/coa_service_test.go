package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pawnsoft/pawnledger/internal/apperrors"
	"github.com/pawnsoft/pawnledger/internal/core/domain"
	portssvc "github.com/pawnsoft/pawnledger/internal/core/ports/services"
	"github.com/pawnsoft/pawnledger/internal/core/services"
	"github.com/pawnsoft/pawnledger/internal/dto"
)

type COAServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	accountRepo  *MockAccountRepository
	customerRepo *MockCustomerRepository
	service      portssvc.COASvcFacade

	companyID string
	userID    string
}

func (suite *COAServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.accountRepo = new(MockAccountRepository)
	suite.customerRepo = new(MockCustomerRepository)
	suite.service = services.NewCOAService(suite.accountRepo, suite.customerRepo)

	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *COAServiceTestSuite) TestSeedDefaultAccounts() {
	suite.accountRepo.On("CountAccounts", suite.ctx, suite.companyID).Return(0, nil).Once()

	var saved []domain.Account
	suite.accountRepo.On("SaveAccounts", suite.ctx, mock.AnythingOfType("[]domain.Account")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).([]domain.Account)
		}).Return(nil).Once()

	err := suite.service.SeedDefaultAccounts(suite.ctx, suite.companyID, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(saved, 20)

	codes := make(map[string]domain.AccountType, len(saved))
	for _, a := range saved {
		suite.Equal(suite.companyID, a.CompanyID)
		suite.NotEmpty(a.AccountID)
		suite.True(a.IsActive)
		suite.Equal(suite.userID, a.CreatedBy)
		codes[a.AccountCode] = a.AccountType
	}
	suite.Equal(domain.Assets, codes[domain.CodeCash])
	suite.Equal(domain.Assets, codes[domain.CodePledgedItems])
	suite.Equal(domain.Liabilities, codes[domain.CodeCustomerDeposits])
	suite.Equal(domain.Income, codes[domain.CodeInterestIncome])
	suite.Equal(domain.Expenses, codes["5050"])

	suite.accountRepo.AssertExpectations(suite.T())
}

func (suite *COAServiceTestSuite) TestSeedDefaultAccountsAlreadySeeded() {
	suite.accountRepo.On("CountAccounts", suite.ctx, suite.companyID).Return(5, nil).Once()

	err := suite.service.SeedDefaultAccounts(suite.ctx, suite.companyID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.accountRepo.AssertNotCalled(suite.T(), "SaveAccounts", mock.Anything, mock.Anything)
}

func (suite *COAServiceTestSuite) TestResolveAccountNotFound() {
	suite.accountRepo.On("FindAccountByCode", suite.ctx, suite.companyID, domain.CodePledgedItems).
		Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.ResolveAccount(suite.ctx, suite.companyID, domain.CodePledgedItems)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, services.ErrAccountNotFound)
}

func (suite *COAServiceTestSuite) TestGetAccountByIDWrongCompany() {
	accountID := uuid.NewString()
	other := &domain.Account{
		AccountID:   accountID,
		CompanyID:   uuid.NewString(),
		AccountCode: "1000",
	}
	suite.accountRepo.On("FindAccountByID", suite.ctx, accountID).Return(other, nil).Once()

	account, err := suite.service.GetAccountByID(suite.ctx, suite.companyID, accountID)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, services.ErrAccountNotFound)
}

func (suite *COAServiceTestSuite) TestCreateAccount() {
	req := dto.CreateAccountRequest{
		AccountCode:     "5070",
		AccountName:     "Festival Bonus",
		AccountType:     domain.Expenses,
		AccountCategory: "Operating Expenses",
		OpeningBalance:  decimal.Zero,
	}

	var saved domain.Account
	suite.accountRepo.On("SaveAccount", suite.ctx, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Account)
		}).Return(nil).Once()

	account, err := suite.service.CreateAccount(suite.ctx, suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("5070", account.AccountCode)
	suite.Equal(saved.AccountID, account.AccountID)
	suite.True(saved.IsActive)
	suite.Equal(suite.userID, saved.CreatedBy)
	suite.accountRepo.AssertExpectations(suite.T())
}

func (suite *COAServiceTestSuite) TestGetOrCreateCustomerReceivableFirstUse() {
	customerID := uuid.NewString()
	customer := &domain.Customer{
		CustomerID: customerID,
		CompanyID:  suite.companyID,
		CustomerNo: 7,
		Name:       "Lakshmi",
	}
	suite.customerRepo.On("FindCustomerByID", suite.ctx, customerID).Return(customer, nil).Once()

	created := &domain.Account{
		AccountID:   uuid.NewString(),
		CompanyID:   suite.companyID,
		AccountCode: "10510007",
		AccountName: "Lakshmi Receivable",
		AccountType: domain.Assets,
	}
	suite.accountRepo.On("GetOrCreateAccount", suite.ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.AccountCode == "10510007" && a.AccountName == "Lakshmi Receivable" && a.AccountType == domain.Assets
	})).Return(created, nil).Once()
	suite.customerRepo.On("SetReceivableAccount", suite.ctx, customerID, created.AccountID, suite.userID).Return(nil).Once()

	account, err := suite.service.GetOrCreateCustomerReceivable(suite.ctx, suite.companyID, customerID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(created.AccountID, account.AccountID)
	suite.Equal("10510007", account.AccountCode)
	suite.accountRepo.AssertExpectations(suite.T())
	suite.customerRepo.AssertExpectations(suite.T())
}

func (suite *COAServiceTestSuite) TestGetOrCreateCustomerReceivableAlreadyLinked() {
	customerID := uuid.NewString()
	linkedAccountID := uuid.NewString()
	customer := &domain.Customer{
		CustomerID:          customerID,
		CompanyID:           suite.companyID,
		CustomerNo:          7,
		Name:                "Lakshmi",
		ReceivableAccountID: &linkedAccountID,
	}
	linked := &domain.Account{
		AccountID:   linkedAccountID,
		CompanyID:   suite.companyID,
		AccountCode: "10510007",
	}
	suite.customerRepo.On("FindCustomerByID", suite.ctx, customerID).Return(customer, nil).Once()
	suite.accountRepo.On("FindAccountByID", suite.ctx, linkedAccountID).Return(linked, nil).Once()

	account, err := suite.service.GetOrCreateCustomerReceivable(suite.ctx, suite.companyID, customerID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(linkedAccountID, account.AccountID)
	suite.accountRepo.AssertNotCalled(suite.T(), "GetOrCreateAccount", mock.Anything, mock.Anything)
	suite.customerRepo.AssertNotCalled(suite.T(), "SetReceivableAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *COAServiceTestSuite) TestGetOrCreateCustomerReceivableUnknownCustomer() {
	customerID := uuid.NewString()
	suite.customerRepo.On("FindCustomerByID", suite.ctx, customerID).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetOrCreateCustomerReceivable(suite.ctx, suite.companyID, customerID, suite.userID)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, services.ErrCustomerNotFound)
}

func TestCOAServiceTestSuite(t *testing.T) {
	suite.Run(t, new(COAServiceTestSuite))
}
