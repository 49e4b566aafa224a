package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pawnsoft/pawnledger/internal/core/domain"
	portssvc "github.com/pawnsoft/pawnledger/internal/core/ports/services"
	"github.com/pawnsoft/pawnledger/internal/core/services"
	"github.com/pawnsoft/pawnledger/internal/dto"
)

type ReceiptServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	receiptRepo  *MockReceiptRepository
	pledgeRepo   *MockPledgeRepository
	sequenceRepo *MockSequenceRepository
	postingSvc   *MockPostingService
	txm          *MockTransactor
	service      portssvc.ReceiptSvcFacade

	companyID  string
	customerID string
	userID     string
	pledge     *domain.Pledge
}

func (suite *ReceiptServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.receiptRepo = new(MockReceiptRepository)
	suite.pledgeRepo = new(MockPledgeRepository)
	suite.sequenceRepo = new(MockSequenceRepository)
	suite.postingSvc = new(MockPostingService)
	suite.txm = new(MockTransactor)
	suite.txm.On("WithTransaction", mock.Anything, mock.AnythingOfType("func(context.Context) error")).Return(nil).Maybe()
	suite.service = services.NewReceiptService(suite.receiptRepo, suite.pledgeRepo, suite.sequenceRepo, suite.postingSvc, suite.txm)

	suite.companyID = uuid.NewString()
	suite.customerID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.pledge = &domain.Pledge{
		PledgeID:   uuid.NewString(),
		CompanyID:  suite.companyID,
		PledgeNo:   "GLD-2025-0001",
		CustomerID: suite.customerID,
		LoanAmount: decimal.NewFromInt(10000),
		Status:     domain.PledgeActive,
	}
}

func (suite *ReceiptServiceTestSuite) newDraftReceipt() *domain.PledgeReceipt {
	return &domain.PledgeReceipt{
		ReceiptID:      uuid.NewString(),
		CompanyID:      suite.companyID,
		ReceiptNo:      "RCP-2025-0007",
		CustomerID:     suite.customerID,
		ReceiptDate:    time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
		ReceiptAmount:  decimal.NewFromInt(600),
		Status:         domain.ReceiptDraft,
		COAEntryStatus: domain.COAPending,
	}
}

func (suite *ReceiptServiceTestSuite) TestCreateReceipt() {
	req := dto.CreateReceiptRequest{
		CustomerID:    suite.customerID,
		ReceiptDate:   time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
		ReceiptAmount: decimal.NewFromInt(580),
		PaymentMode:   "Cash",
		Items: []dto.ReceiptItemRequest{
			{
				PledgeID:      suite.pledge.PledgeID,
				PaidPrincipal: decimal.NewFromInt(500),
				PaidInterest:  decimal.NewFromInt(100),
				PaidDiscount:  decimal.NewFromInt(20),
				PaymentType:   "Partial",
			},
		},
	}

	suite.pledgeRepo.On("FindPledgeByID", suite.ctx, suite.pledge.PledgeID).Return(suite.pledge, nil).Once()
	suite.sequenceRepo.On("NextSequence", suite.ctx, suite.companyID, "RCP", "2025").Return(int64(7), nil).Once()

	var savedReceipt domain.PledgeReceipt
	var savedItems []domain.ReceiptItem
	suite.receiptRepo.On("SaveReceipt", suite.ctx, mock.AnythingOfType("domain.PledgeReceipt"), mock.AnythingOfType("[]domain.ReceiptItem")).
		Run(func(args mock.Arguments) {
			savedReceipt = args.Get(1).(domain.PledgeReceipt)
			savedItems = args.Get(2).([]domain.ReceiptItem)
		}).Return(nil).Once()

	receipt, err := suite.service.CreateReceipt(suite.ctx, suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("RCP-2025-0007", receipt.ReceiptNo)
	suite.Equal(domain.ReceiptDraft, receipt.Status)
	suite.Equal(domain.COAPending, receipt.COAEntryStatus)
	suite.Equal(receipt.ReceiptID, savedReceipt.ReceiptID)
	suite.Require().Len(savedItems, 1)
	// 500 + 100 - 20 = 580, matching the cash taken.
	suite.True(savedItems[0].TotalAmountPaid.Equal(decimal.NewFromInt(580)))
	suite.receiptRepo.AssertExpectations(suite.T())
}

func (suite *ReceiptServiceTestSuite) TestCreateReceiptAmountMismatch() {
	req := dto.CreateReceiptRequest{
		CustomerID:    suite.customerID,
		ReceiptDate:   time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
		ReceiptAmount: decimal.NewFromInt(999),
		Items: []dto.ReceiptItemRequest{
			{
				PledgeID:      suite.pledge.PledgeID,
				PaidPrincipal: decimal.NewFromInt(500),
				PaidInterest:  decimal.NewFromInt(100),
				PaymentType:   "Partial",
			},
		},
	}

	suite.pledgeRepo.On("FindPledgeByID", suite.ctx, suite.pledge.PledgeID).Return(suite.pledge, nil).Once()

	receipt, err := suite.service.CreateReceipt(suite.ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(receipt)
	suite.ErrorIs(err, services.ErrReceiptAmountMismatch)
	suite.sequenceRepo.AssertNotCalled(suite.T(), "NextSequence", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.receiptRepo.AssertNotCalled(suite.T(), "SaveReceipt", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReceiptServiceTestSuite) TestCreateReceiptUnknownPledge() {
	req := dto.CreateReceiptRequest{
		CustomerID:    suite.customerID,
		ReceiptDate:   time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
		ReceiptAmount: decimal.NewFromInt(100),
		Items: []dto.ReceiptItemRequest{
			{PledgeID: "missing", PaidInterest: decimal.NewFromInt(100), PaymentType: "Partial"},
		},
	}
	suite.pledgeRepo.On("FindPledgeByID", suite.ctx, "missing").Return(nil, errors.New("scanning pledge: not found")).Once()

	receipt, err := suite.service.CreateReceipt(suite.ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(receipt)
}

func (suite *ReceiptServiceTestSuite) TestPostReceipt() {
	receipt := suite.newDraftReceipt()
	items := []domain.ReceiptItem{
		{
			ReceiptItemID: uuid.NewString(),
			ReceiptID:     receipt.ReceiptID,
			PledgeID:      suite.pledge.PledgeID,
			PaidPrincipal: decimal.NewFromInt(500),
			PaidInterest:  decimal.NewFromInt(120),
			PaidDiscount:  decimal.NewFromInt(20),
			PaymentType:   "Partial",
		},
	}

	suite.receiptRepo.On("FindReceiptByID", suite.ctx, receipt.ReceiptID).Return(receipt, nil).Once()
	suite.receiptRepo.On("FindItemsByReceiptID", suite.ctx, receipt.ReceiptID).Return(items, nil).Once()
	suite.postingSvc.On("PostReceiptEntries", suite.ctx, *receipt, items, suite.userID).Return(nil).Once()
	// Interest accumulates net of the discount.
	suite.pledgeRepo.On("AddPledgeReceivedTotals", suite.ctx, suite.pledge.PledgeID,
		decimal.NewFromInt(500), decimal.NewFromInt(100), suite.userID).Return(nil).Once()
	suite.receiptRepo.On("UpdateReceiptStatus", suite.ctx, receipt.ReceiptID, domain.ReceiptPosted, domain.COAPosted, suite.userID).Return(nil).Once()

	posted, err := suite.service.PostReceipt(suite.ctx, suite.companyID, receipt.ReceiptID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.ReceiptPosted, posted.Status)
	suite.Equal(domain.COAPosted, posted.COAEntryStatus)
	// A partial payment leaves the pledge Active.
	suite.pledgeRepo.AssertNotCalled(suite.T(), "UpdatePledgeStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.receiptRepo.AssertExpectations(suite.T())
	suite.postingSvc.AssertExpectations(suite.T())
}

func (suite *ReceiptServiceTestSuite) TestPostReceiptFullPaymentRedeemsPledge() {
	receipt := suite.newDraftReceipt()
	items := []domain.ReceiptItem{
		{
			ReceiptItemID: uuid.NewString(),
			ReceiptID:     receipt.ReceiptID,
			PledgeID:      suite.pledge.PledgeID,
			PaidPrincipal: decimal.NewFromInt(10000),
			PaidInterest:  decimal.NewFromInt(400),
			PaymentType:   "Full Payment",
		},
	}

	suite.receiptRepo.On("FindReceiptByID", suite.ctx, receipt.ReceiptID).Return(receipt, nil).Once()
	suite.receiptRepo.On("FindItemsByReceiptID", suite.ctx, receipt.ReceiptID).Return(items, nil).Once()
	suite.postingSvc.On("PostReceiptEntries", suite.ctx, *receipt, items, suite.userID).Return(nil).Once()
	suite.pledgeRepo.On("AddPledgeReceivedTotals", suite.ctx, suite.pledge.PledgeID,
		decimal.NewFromInt(10000), decimal.NewFromInt(400), suite.userID).Return(nil).Once()
	suite.pledgeRepo.On("FindPledgeByID", suite.ctx, suite.pledge.PledgeID).Return(suite.pledge, nil).Once()
	suite.pledgeRepo.On("UpdatePledgeStatus", suite.ctx, suite.pledge.PledgeID, domain.PledgeRedeemed, &receipt.ReceiptDate, suite.userID).Return(nil).Once()
	suite.receiptRepo.On("UpdateReceiptStatus", suite.ctx, receipt.ReceiptID, domain.ReceiptPosted, domain.COAPosted, suite.userID).Return(nil).Once()

	posted, err := suite.service.PostReceipt(suite.ctx, suite.companyID, receipt.ReceiptID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.ReceiptPosted, posted.Status)
	suite.pledgeRepo.AssertExpectations(suite.T())
}

func (suite *ReceiptServiceTestSuite) TestPostReceiptNotDraft() {
	receipt := suite.newDraftReceipt()
	receipt.Status = domain.ReceiptPosted

	suite.receiptRepo.On("FindReceiptByID", suite.ctx, receipt.ReceiptID).Return(receipt, nil).Once()

	posted, err := suite.service.PostReceipt(suite.ctx, suite.companyID, receipt.ReceiptID, suite.userID)

	suite.Require().Error(err)
	suite.Nil(posted)
	suite.ErrorIs(err, services.ErrReceiptNotDraft)
	suite.postingSvc.AssertNotCalled(suite.T(), "PostReceiptEntries", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReceiptServiceTestSuite) TestPostReceiptPostingFailureFlagsError() {
	receipt := suite.newDraftReceipt()
	items := []domain.ReceiptItem{
		{
			ReceiptItemID: uuid.NewString(),
			ReceiptID:     receipt.ReceiptID,
			PledgeID:      suite.pledge.PledgeID,
			PaidInterest:  decimal.NewFromInt(600),
			PaymentType:   "Partial",
		},
	}

	suite.receiptRepo.On("FindReceiptByID", suite.ctx, receipt.ReceiptID).Return(receipt, nil).Once()
	suite.receiptRepo.On("FindItemsByReceiptID", suite.ctx, receipt.ReceiptID).Return(items, nil).Once()
	suite.postingSvc.On("PostReceiptEntries", suite.ctx, *receipt, items, suite.userID).
		Return(errors.New("save failed")).Once()
	// The receipt stays draft but the ledger status records the failure.
	suite.receiptRepo.On("UpdateReceiptStatus", suite.ctx, receipt.ReceiptID, domain.ReceiptDraft, domain.COAError, suite.userID).Return(nil).Once()

	posted, err := suite.service.PostReceipt(suite.ctx, suite.companyID, receipt.ReceiptID, suite.userID)

	suite.Require().Error(err)
	suite.Nil(posted)
	suite.receiptRepo.AssertExpectations(suite.T())
	suite.pledgeRepo.AssertNotCalled(suite.T(), "AddPledgeReceivedTotals", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReceiptServiceTestSuite) TestPostReceiptAccumulatorFailureLeavesDraft() {
	receipt := suite.newDraftReceipt()
	items := []domain.ReceiptItem{
		{
			ReceiptItemID: uuid.NewString(),
			ReceiptID:     receipt.ReceiptID,
			PledgeID:      suite.pledge.PledgeID,
			PaidPrincipal: decimal.NewFromInt(500),
			PaidInterest:  decimal.NewFromInt(100),
			PaymentType:   "Partial",
		},
	}

	// First attempt: entries post but the running-total update fails. The
	// whole unit of work rolls back, so the receipt must stay draft and a
	// later retry must apply everything exactly once.
	suite.receiptRepo.On("FindReceiptByID", suite.ctx, receipt.ReceiptID).Return(receipt, nil).Twice()
	suite.receiptRepo.On("FindItemsByReceiptID", suite.ctx, receipt.ReceiptID).Return(items, nil).Twice()
	suite.postingSvc.On("PostReceiptEntries", suite.ctx, *receipt, items, suite.userID).Return(nil).Twice()
	suite.pledgeRepo.On("AddPledgeReceivedTotals", suite.ctx, suite.pledge.PledgeID,
		decimal.NewFromInt(500), decimal.NewFromInt(100), suite.userID).
		Return(errors.New("deadlock detected")).Once()
	suite.receiptRepo.On("UpdateReceiptStatus", suite.ctx, receipt.ReceiptID, domain.ReceiptDraft, domain.COAError, suite.userID).Return(nil).Once()

	posted, err := suite.service.PostReceipt(suite.ctx, suite.companyID, receipt.ReceiptID, suite.userID)

	suite.Require().Error(err)
	suite.Nil(posted)
	suite.receiptRepo.AssertNotCalled(suite.T(), "UpdateReceiptStatus",
		mock.Anything, mock.Anything, domain.ReceiptPosted, mock.Anything, mock.Anything)

	// Retry: the accumulator succeeds and the receipt flips to posted.
	suite.pledgeRepo.On("AddPledgeReceivedTotals", suite.ctx, suite.pledge.PledgeID,
		decimal.NewFromInt(500), decimal.NewFromInt(100), suite.userID).Return(nil).Once()
	suite.receiptRepo.On("UpdateReceiptStatus", suite.ctx, receipt.ReceiptID, domain.ReceiptPosted, domain.COAPosted, suite.userID).Return(nil).Once()

	posted, err = suite.service.PostReceipt(suite.ctx, suite.companyID, receipt.ReceiptID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.ReceiptPosted, posted.Status)
	suite.receiptRepo.AssertExpectations(suite.T())
	suite.pledgeRepo.AssertExpectations(suite.T())
	suite.postingSvc.AssertExpectations(suite.T())
}

func (suite *ReceiptServiceTestSuite) TestVoidReceipt() {
	receipt := suite.newDraftReceipt()
	receipt.Status = domain.ReceiptPosted
	receipt.COAEntryStatus = domain.COAPosted
	items := []domain.ReceiptItem{
		{
			ReceiptItemID: uuid.NewString(),
			ReceiptID:     receipt.ReceiptID,
			PledgeID:      suite.pledge.PledgeID,
			PaidPrincipal: decimal.NewFromInt(500),
			PaidInterest:  decimal.NewFromInt(120),
			PaidDiscount:  decimal.NewFromInt(20),
			PaymentType:   "Partial",
		},
	}

	suite.receiptRepo.On("FindReceiptByID", suite.ctx, receipt.ReceiptID).Return(receipt, nil).Once()
	suite.postingSvc.On("ReverseEntries", suite.ctx, suite.companyID, domain.RefReceipt, receipt.ReceiptID, suite.userID).Return(3, nil).Once()
	suite.receiptRepo.On("FindItemsByReceiptID", suite.ctx, receipt.ReceiptID).Return(items, nil).Once()
	suite.pledgeRepo.On("AddPledgeReceivedTotals", suite.ctx, suite.pledge.PledgeID,
		decimal.NewFromInt(-500), decimal.NewFromInt(-100), suite.userID).Return(nil).Once()
	suite.receiptRepo.On("UpdateReceiptStatus", suite.ctx, receipt.ReceiptID, domain.ReceiptVoid, domain.COAPosted, suite.userID).Return(nil).Once()

	voided, err := suite.service.VoidReceipt(suite.ctx, suite.companyID, receipt.ReceiptID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.ReceiptVoid, voided.Status)
	suite.receiptRepo.AssertExpectations(suite.T())
	suite.pledgeRepo.AssertExpectations(suite.T())
}

func (suite *ReceiptServiceTestSuite) TestVoidReceiptNotPosted() {
	receipt := suite.newDraftReceipt()

	suite.receiptRepo.On("FindReceiptByID", suite.ctx, receipt.ReceiptID).Return(receipt, nil).Once()

	voided, err := suite.service.VoidReceipt(suite.ctx, suite.companyID, receipt.ReceiptID, suite.userID)

	suite.Require().Error(err)
	suite.Nil(voided)
	suite.ErrorIs(err, services.ErrReceiptNotPosted)
	suite.postingSvc.AssertNotCalled(suite.T(), "ReverseEntries", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReceiptServiceTestSuite) TestGetReceiptByIDWrongCompany() {
	receipt := suite.newDraftReceipt()
	receipt.CompanyID = uuid.NewString()

	suite.receiptRepo.On("FindReceiptByID", suite.ctx, receipt.ReceiptID).Return(receipt, nil).Once()

	found, items, err := suite.service.GetReceiptByID(suite.ctx, suite.companyID, receipt.ReceiptID)

	suite.Require().Error(err)
	suite.Nil(found)
	suite.Nil(items)
	suite.ErrorIs(err, services.ErrReceiptNotFound)
}

func TestReceiptServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReceiptServiceTestSuite))
}
