package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pawnsoft/pawnledger/internal/apperrors"
	"github.com/pawnsoft/pawnledger/internal/core/domain"
	portssvc "github.com/pawnsoft/pawnledger/internal/core/ports/services"
	"github.com/pawnsoft/pawnledger/internal/core/services"
	"github.com/pawnsoft/pawnledger/internal/dto"
)

type BankDetailsServiceTestSuite struct {
	suite.Suite
	ctx             context.Context
	bankDetailsRepo *MockBankDetailsRepository
	service         portssvc.BankDetailsSvcFacade

	companyID string
	userID    string
}

func (suite *BankDetailsServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.bankDetailsRepo = new(MockBankDetailsRepository)
	suite.service = services.NewBankDetailsService(suite.bankDetailsRepo)

	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *BankDetailsServiceTestSuite) newBankDetails() *domain.BankDetails {
	return &domain.BankDetails{
		BankDetailsID: uuid.NewString(),
		CompanyID:     suite.companyID,
		BankName:      "Canara Bank",
		Branch:        "T Nagar",
		AccountNo:     "110043217890",
		IFSCCode:      "CNRB0000123",
		IsActive:      true,
	}
}

func (suite *BankDetailsServiceTestSuite) TestCreateBankDetails() {
	req := dto.CreateBankDetailsRequest{
		BankName:      "Canara Bank",
		Branch:        "T Nagar",
		AccountNo:     "110043217890",
		IFSCCode:      "CNRB0000123",
		ContactPerson: "Ramesh",
	}

	var saved domain.BankDetails
	suite.bankDetailsRepo.On("SaveBankDetails", suite.ctx, mock.AnythingOfType("domain.BankDetails")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.BankDetails)
		}).Return(nil).Once()

	details, err := suite.service.CreateBankDetails(suite.ctx, suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(details.BankDetailsID)
	suite.Equal(suite.companyID, details.CompanyID)
	suite.Equal("Canara Bank", details.BankName)
	suite.True(details.IsActive)
	suite.Equal(details.BankDetailsID, saved.BankDetailsID)
	suite.Equal(suite.userID, saved.CreatedBy)
	suite.bankDetailsRepo.AssertExpectations(suite.T())
}

func (suite *BankDetailsServiceTestSuite) TestCreateBankDetailsDuplicate() {
	req := dto.CreateBankDetailsRequest{BankName: "Canara Bank", Branch: "T Nagar"}

	suite.bankDetailsRepo.On("SaveBankDetails", suite.ctx, mock.AnythingOfType("domain.BankDetails")).
		Return(fmt.Errorf("%w: bank Canara Bank / T Nagar already exists", apperrors.ErrDuplicate)).Once()

	details, err := suite.service.CreateBankDetails(suite.ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(details)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *BankDetailsServiceTestSuite) TestGetBankDetailsByIDWrongCompany() {
	details := suite.newBankDetails()
	details.CompanyID = uuid.NewString()

	suite.bankDetailsRepo.On("FindBankDetailsByID", suite.ctx, details.BankDetailsID).Return(details, nil).Once()

	found, err := suite.service.GetBankDetailsByID(suite.ctx, suite.companyID, details.BankDetailsID)

	suite.Require().Error(err)
	suite.Nil(found)
	suite.ErrorIs(err, services.ErrBankDetailsNotFound)
}

func (suite *BankDetailsServiceTestSuite) TestListBankDetails() {
	records := []domain.BankDetails{*suite.newBankDetails(), *suite.newBankDetails()}

	suite.bankDetailsRepo.On("ListBankDetails", suite.ctx, suite.companyID, true).Return(records, nil).Once()

	resp, err := suite.service.ListBankDetails(suite.ctx, suite.companyID, true)

	suite.Require().NoError(err)
	suite.Len(resp.Banks, 2)
	suite.Equal(records[0].BankDetailsID, resp.Banks[0].BankDetailsID)
}

func (suite *BankDetailsServiceTestSuite) TestDeactivateBankDetails() {
	details := suite.newBankDetails()

	suite.bankDetailsRepo.On("FindBankDetailsByID", suite.ctx, details.BankDetailsID).Return(details, nil).Once()

	var updated domain.BankDetails
	suite.bankDetailsRepo.On("UpdateBankDetails", suite.ctx, mock.AnythingOfType("domain.BankDetails")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(domain.BankDetails)
		}).Return(nil).Once()

	err := suite.service.DeactivateBankDetails(suite.ctx, suite.companyID, details.BankDetailsID, suite.userID)

	suite.Require().NoError(err)
	suite.False(updated.IsActive)
	suite.Equal(suite.userID, updated.LastUpdatedBy)
	suite.bankDetailsRepo.AssertExpectations(suite.T())
}

func (suite *BankDetailsServiceTestSuite) TestDeactivateBankDetailsNotFound() {
	missingID := uuid.NewString()

	suite.bankDetailsRepo.On("FindBankDetailsByID", suite.ctx, missingID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeactivateBankDetails(suite.ctx, suite.companyID, missingID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrBankDetailsNotFound)
	suite.bankDetailsRepo.AssertNotCalled(suite.T(), "UpdateBankDetails", mock.Anything, mock.Anything)
}

func TestBankDetailsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BankDetailsServiceTestSuite))
}
