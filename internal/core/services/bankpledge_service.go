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
	"github.com/pawnsoft/pawnledger/internal/utils/interest"
)

var (
	ErrBankPledgeNotFound     = errors.New("bank pledge not found")
	ErrPledgeNotActive        = errors.New("pledge is not active")
	ErrBankPledgeNotWithBank  = errors.New("bank pledge is not with the bank")
	ErrInvalidLTV             = errors.New("loan-to-value percent out of range")
	ErrInsufficientRedemption = errors.New("redemption funds below the bank loan amount")
)

var (
	ltvMin = decimal.NewFromInt(50)
	ltvMax = decimal.NewFromInt(95)
)

// bankPledgeService manages the bank refinancing sub-ledger: transferring
// pledges to banks, buying them back and cancelling transfers.
type bankPledgeService struct {
	bankRepo        portsrepo.BankPledgeRepositoryFacade
	bankDetailsRepo portsrepo.BankDetailsReader
	pledgeRepo      portsrepo.PledgeRepositoryFacade
	receiptRepo     portsrepo.ReceiptReader
	postingSvc      portssvc.PostingSvc
	txm             portsrepo.Transactor
}

// NewBankPledgeService creates a new bank pledge service.
func NewBankPledgeService(bankRepo portsrepo.BankPledgeRepositoryFacade, bankDetailsRepo portsrepo.BankDetailsReader, pledgeRepo portsrepo.PledgeRepositoryFacade, receiptRepo portsrepo.ReceiptReader, postingSvc portssvc.PostingSvc, txm portsrepo.Transactor) portssvc.BankPledgeSvcFacade {
	return &bankPledgeService{
		bankRepo:        bankRepo,
		bankDetailsRepo: bankDetailsRepo,
		pledgeRepo:      pledgeRepo,
		receiptRepo:     receiptRepo,
		postingSvc:      postingSvc,
		txm:             txm,
	}
}

// Ensure bankPledgeService implements the portssvc.BankPledgeSvcFacade interface
var _ portssvc.BankPledgeSvcFacade = (*bankPledgeService)(nil)

// findCompanyBankPledge loads a bank pledge and verifies it belongs to the company.
func (s *bankPledgeService) findCompanyBankPledge(ctx context.Context, companyID string, bankPledgeID string) (*domain.BankPledge, error) {
	bankPledge, err := s.bankRepo.FindBankPledgeByID(ctx, bankPledgeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrBankPledgeNotFound, bankPledgeID)
		}
		return nil, err
	}
	if bankPledge.CompanyID != companyID {
		return nil, fmt.Errorf("%w: %s", ErrBankPledgeNotFound, bankPledgeID)
	}
	return bankPledge, nil
}

// TransferToBank moves an active pledge to a bank, snapshotting its items
// and posting the transfer entries.
// Implements portssvc.BankPledgeSvcFacade
func (s *bankPledgeService) TransferToBank(ctx context.Context, companyID string, req dto.CreateBankTransferRequest, userID string) (*domain.BankPledge, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.BankDetailsID == nil && req.BankName == "" {
		return nil, fmt.Errorf("%w: either bankDetailsID or bankName is required", apperrors.ErrValidation)
	}
	if req.LTVPercent.LessThan(ltvMin) || req.LTVPercent.GreaterThan(ltvMax) {
		return nil, fmt.Errorf("%w: %s (expected %s..%s)", ErrInvalidLTV, req.LTVPercent, ltvMin, ltvMax)
	}
	if !req.BankValuation.IsPositive() {
		return nil, fmt.Errorf("%w: bank valuation must be positive", apperrors.ErrValidation)
	}

	pledge, err := s.pledgeRepo.FindPledgeByID(ctx, req.PledgeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrPledgeNotFound, req.PledgeID)
		}
		return nil, err
	}
	if pledge.CompanyID != companyID {
		return nil, fmt.Errorf("%w: %s", ErrPledgeNotFound, req.PledgeID)
	}
	if pledge.Status != domain.PledgeActive {
		return nil, fmt.Errorf("%w: %s is %s", ErrPledgeNotActive, pledge.PledgeNo, pledge.Status)
	}

	outstandingInterest := interest.Outstanding(
		pledge.PledgeDate, req.TransferDate,
		pledge.LoanAmount, pledge.InterestRate,
		pledge.FirstMonthInterest, pledge.TotalInterestReceived,
	)
	originalShopLoan := pledge.LoanAmount.Sub(pledge.TotalPrincipalReceived)
	if originalShopLoan.IsNegative() {
		originalShopLoan = decimal.Zero
	}

	// Resolve the bank master when one is referenced. Its name and branch
	// take precedence over whatever free text came with the request.
	bankName := req.BankName
	bankBranch := req.BankBranch
	if req.BankDetailsID != nil {
		details, err := s.bankDetailsRepo.FindBankDetailsByID(ctx, *req.BankDetailsID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrBankDetailsNotFound, *req.BankDetailsID)
			}
			return nil, err
		}
		if details.CompanyID != companyID {
			return nil, fmt.Errorf("%w: %s", ErrBankDetailsNotFound, *req.BankDetailsID)
		}
		if !details.IsActive {
			return nil, fmt.Errorf("%w: bank %s is inactive", apperrors.ErrValidation, details.BankName)
		}
		bankName = details.BankName
		bankBranch = details.Branch
	}

	now := time.Now().UTC()
	bankPledge := domain.BankPledge{
		BankPledgeID:        uuid.NewString(),
		CompanyID:           companyID,
		PledgeID:            pledge.PledgeID,
		BankDetailsID:       req.BankDetailsID,
		BankName:            bankName,
		BankBranch:          bankBranch,
		BankReferenceNo:     req.BankReferenceNo,
		TransferDate:        req.TransferDate,
		BankValuation:       req.BankValuation,
		LTVPercent:          req.LTVPercent,
		BankLoanAmount:      req.BankValuation.Mul(req.LTVPercent).Div(decimal.NewFromInt(100)),
		BankInterestRate:    req.BankInterestRate,
		OriginalShopLoan:    originalShopLoan,
		OutstandingInterest: outstandingInterest,
		Status:              domain.BankWithBank,
		Narration:           req.Narration,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	// Snapshot the pledge items as they stand at transfer time.
	pledgeItems, err := s.pledgeRepo.FindItemsByPledgeID(ctx, pledge.PledgeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load pledge items: %w", err)
	}
	items := make([]domain.BankPledgeItem, len(pledgeItems))
	for i, it := range pledgeItems {
		items[i] = domain.BankPledgeItem{
			BankPledgeItemID: uuid.NewString(),
			BankPledgeID:     bankPledge.BankPledgeID,
			ItemName:         it.ItemName,
			ItemType:         it.ItemType,
			Quantity:         it.Quantity,
			GrossWeight:      it.GrossWeight,
			NetWeight:        it.NetWeight,
			Purity:           it.Purity,
			ItemValue:        it.ItemValue,
			AuditFields:      bankPledge.AuditFields,
		}
	}

	// The bank pledge row, its ledger entries and the pledge status change
	// commit together or not at all.
	err = s.txm.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.bankRepo.SaveBankPledge(ctx, bankPledge, items); err != nil {
			return fmt.Errorf("failed to save bank pledge: %w", err)
		}
		if err := s.postingSvc.PostBankTransferEntries(ctx, bankPledge, userID); err != nil {
			return fmt.Errorf("failed to post bank transfer entries: %w", err)
		}
		if err := s.pledgeRepo.UpdatePledgeStatus(ctx, pledge.PledgeID, domain.PledgeWithBank, nil, userID); err != nil {
			return fmt.Errorf("failed to update pledge status: %w", err)
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to transfer pledge to bank", slog.String("error", err.Error()), slog.String("pledge_id", pledge.PledgeID))
		return nil, err
	}

	logger.Info("Pledge transferred to bank",
		slog.String("bank_pledge_id", bankPledge.BankPledgeID),
		slog.String("pledge_no", pledge.PledgeNo),
		slog.String("bank_name", bankName),
		slog.String("bank_loan_amount", bankPledge.BankLoanAmount.String()),
	)
	return &bankPledge, nil
}

// redeem finalizes a redemption: saves the record, posts the entries and
// moves both the bank pledge and the shop pledge to their redeemed states.
func (s *bankPledgeService) redeem(ctx context.Context, bankPledge *domain.BankPledge, redemption domain.BankRedemption, userID string) (*domain.BankRedemption, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// Redemption record, ledger entries and both status flips are one unit.
	err := s.txm.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.bankRepo.SaveRedemption(ctx, redemption); err != nil {
			return fmt.Errorf("failed to save bank redemption: %w", err)
		}
		if err := s.postingSvc.PostBankRedemptionEntries(ctx, *bankPledge, redemption, userID); err != nil {
			return fmt.Errorf("failed to post bank redemption entries: %w", err)
		}
		if err := s.bankRepo.UpdateBankPledgeStatus(ctx, bankPledge.BankPledgeID, domain.BankRedeemed, userID); err != nil {
			return fmt.Errorf("failed to update bank pledge status: %w", err)
		}
		closeDate := redemption.RedemptionDate
		if err := s.pledgeRepo.UpdatePledgeStatus(ctx, bankPledge.PledgeID, domain.PledgeRedeemed, &closeDate, userID); err != nil {
			return fmt.Errorf("failed to update pledge status: %w", err)
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to redeem bank pledge", slog.String("error", err.Error()), slog.String("bank_pledge_id", bankPledge.BankPledgeID))
		return nil, err
	}

	logger.Info("Bank pledge redeemed",
		slog.String("redemption_id", redemption.RedemptionID),
		slog.String("bank_pledge_id", bankPledge.BankPledgeID),
		slog.String("amount_paid", redemption.AmountPaidToBank.String()),
	)
	return &redemption, nil
}

// RedeemFromBank buys a bank pledge back with business money.
// Implements portssvc.BankPledgeSvcFacade
func (s *bankPledgeService) RedeemFromBank(ctx context.Context, companyID string, bankPledgeID string, req dto.RedeemBankPledgeRequest, userID string) (*domain.BankRedemption, error) {
	bankPledge, err := s.findCompanyBankPledge(ctx, companyID, bankPledgeID)
	if err != nil {
		return nil, err
	}
	if bankPledge.Status != domain.BankWithBank {
		return nil, fmt.Errorf("%w: status %s", ErrBankPledgeNotWithBank, bankPledge.Status)
	}

	// What the jewels actually realized at buy-back; callers that do not
	// revalue settle at the amount paid to the bank.
	actual := req.ActualRedemptionValue
	if actual.IsZero() {
		actual = req.AmountPaidToBank
	}

	now := time.Now().UTC()
	redemption := domain.BankRedemption{
		RedemptionID:          uuid.NewString(),
		CompanyID:             companyID,
		BankPledgeID:          bankPledgeID,
		RedemptionDate:        req.RedemptionDate,
		AmountPaidToBank:      req.AmountPaidToBank,
		InterestPaid:          req.InterestPaid,
		BankCharges:           req.BankCharges,
		BankValuation:         bankPledge.BankValuation,
		ActualRedemptionValue: actual,
		PriceDifference:       actual.Sub(bankPledge.BankValuation),
		Narration:             req.Narration,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	return s.redeem(ctx, bankPledge, redemption, userID)
}

// RedeemWithReceipt buys a bank pledge back funded by a posted customer
// receipt plus optional business top-up.
// Implements portssvc.BankPledgeSvcFacade
func (s *bankPledgeService) RedeemWithReceipt(ctx context.Context, companyID string, bankPledgeID string, req dto.RedeemWithReceiptRequest, userID string) (*domain.BankRedemption, error) {
	bankPledge, err := s.findCompanyBankPledge(ctx, companyID, bankPledgeID)
	if err != nil {
		return nil, err
	}
	if bankPledge.Status != domain.BankWithBank {
		return nil, fmt.Errorf("%w: status %s", ErrBankPledgeNotWithBank, bankPledge.Status)
	}

	receipt, err := s.receiptRepo.FindReceiptByID(ctx, req.ReceiptID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrReceiptNotFound, req.ReceiptID)
		}
		return nil, err
	}
	if receipt.CompanyID != companyID {
		return nil, fmt.Errorf("%w: %s", ErrReceiptNotFound, req.ReceiptID)
	}
	if receipt.Status != domain.ReceiptPosted {
		return nil, fmt.Errorf("%w: %s is %s", ErrReceiptNotPosted, receipt.ReceiptNo, receipt.Status)
	}
	if req.UseReceiptAmount.GreaterThan(receipt.ReceiptAmount) {
		return nil, fmt.Errorf("%w: receipt %s holds only %s", apperrors.ErrValidation, receipt.ReceiptNo, receipt.ReceiptAmount)
	}

	total := req.UseReceiptAmount.Add(req.AdditionalBusinessPayment)
	if total.LessThan(bankPledge.BankLoanAmount) {
		return nil, fmt.Errorf("%w: %s available, %s required", ErrInsufficientRedemption, total, bankPledge.BankLoanAmount)
	}

	actual := req.ActualRedemptionValue
	if actual.IsZero() {
		actual = total
	}

	now := time.Now().UTC()
	redemption := domain.BankRedemption{
		RedemptionID:          uuid.NewString(),
		CompanyID:             companyID,
		BankPledgeID:          bankPledgeID,
		RedemptionDate:        req.RedemptionDate,
		AmountPaidToBank:      total,
		InterestPaid:          req.InterestPaid,
		BankCharges:           req.BankCharges,
		BankValuation:         bankPledge.BankValuation,
		ActualRedemptionValue: actual,
		PriceDifference:       actual.Sub(bankPledge.BankValuation),
		FundingReceiptID:      &receipt.ReceiptID,
		Narration:             req.Narration,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	return s.redeem(ctx, bankPledge, redemption, userID)
}

// CancelBankPledge cancels a transfer, reversing its entries and returning
// the pledge to Active.
// Implements portssvc.BankPledgeSvcFacade
func (s *bankPledgeService) CancelBankPledge(ctx context.Context, companyID string, bankPledgeID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	bankPledge, err := s.findCompanyBankPledge(ctx, companyID, bankPledgeID)
	if err != nil {
		return err
	}
	if bankPledge.Status != domain.BankWithBank {
		return fmt.Errorf("%w: status %s", ErrBankPledgeNotWithBank, bankPledge.Status)
	}

	// Reversal entries and both status flips commit as one unit.
	var reversed int
	err = s.txm.WithTransaction(ctx, func(ctx context.Context) error {
		reversed, err = s.postingSvc.ReverseEntries(ctx, companyID, domain.RefBankPledge, bankPledgeID, userID)
		if err != nil {
			return fmt.Errorf("failed to reverse bank transfer entries: %w", err)
		}
		if err := s.bankRepo.UpdateBankPledgeStatus(ctx, bankPledgeID, domain.BankCancelled, userID); err != nil {
			return fmt.Errorf("failed to update bank pledge status: %w", err)
		}
		if err := s.pledgeRepo.UpdatePledgeStatus(ctx, bankPledge.PledgeID, domain.PledgeActive, nil, userID); err != nil {
			return fmt.Errorf("failed to restore pledge status: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Bank pledge cancelled",
		slog.String("bank_pledge_id", bankPledgeID),
		slog.String("pledge_id", bankPledge.PledgeID),
		slog.Int("entries_reversed", reversed),
	)
	return nil
}

// GetBankPledgeByID retrieves a bank pledge, its item snapshots and any redemptions.
// Implements portssvc.BankPledgeSvcFacade
func (s *bankPledgeService) GetBankPledgeByID(ctx context.Context, companyID string, bankPledgeID string) (*domain.BankPledge, []domain.BankPledgeItem, []domain.BankRedemption, error) {
	bankPledge, err := s.findCompanyBankPledge(ctx, companyID, bankPledgeID)
	if err != nil {
		return nil, nil, nil, err
	}
	items, err := s.bankRepo.FindItemsByBankPledgeID(ctx, bankPledgeID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load bank pledge items: %w", err)
	}
	redemptions, err := s.bankRepo.FindRedemptionsByBankPledgeID(ctx, bankPledgeID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load bank redemptions: %w", err)
	}
	return bankPledge, items, redemptions, nil
}

// ListBankPledges retrieves a filtered, paginated list of bank pledges.
// Implements portssvc.BankPledgeSvcFacade
func (s *bankPledgeService) ListBankPledges(ctx context.Context, companyID string, params dto.ListBankPledgesParams) (*dto.ListBankPledgesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 100
	}
	if limit > 500 {
		limit = 500
	}

	var status *domain.BankPledgeStatus
	if params.Status != nil {
		st := domain.BankPledgeStatus(*params.Status)
		status = &st
	}

	bankPledges, err := s.bankRepo.ListBankPledges(ctx, companyID, status, limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list bank pledges: %w", err)
	}

	return &dto.ListBankPledgesResponse{BankPledges: dto.ToBankPledgeResponses(bankPledges)}, nil
}
