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
	ErrPledgeNotFound          = errors.New("pledge not found")
	ErrSchemeNotFound          = errors.New("scheme not found")
	ErrSchemeInactive          = errors.New("scheme is not active")
	ErrInvalidStatusTransition = errors.New("invalid pledge status transition")
	ErrPledgeNotSettled        = errors.New("pledge has an outstanding balance")
)

// pledgeService manages the pledge lifecycle from disbursement to closure.
type pledgeService struct {
	pledgeRepo   portsrepo.PledgeRepositoryFacade
	schemeRepo   portsrepo.SchemeReader
	sequenceRepo portsrepo.SequenceRepository
	postingSvc   portssvc.PostingSvc
	txm          portsrepo.Transactor
}

// NewPledgeService creates a new pledge service.
func NewPledgeService(pledgeRepo portsrepo.PledgeRepositoryFacade, schemeRepo portsrepo.SchemeReader, sequenceRepo portsrepo.SequenceRepository, postingSvc portssvc.PostingSvc, txm portsrepo.Transactor) portssvc.PledgeSvcFacade {
	return &pledgeService{
		pledgeRepo:   pledgeRepo,
		schemeRepo:   schemeRepo,
		sequenceRepo: sequenceRepo,
		postingSvc:   postingSvc,
		txm:          txm,
	}
}

// Ensure pledgeService implements the portssvc.PledgeSvcFacade interface
var _ portssvc.PledgeSvcFacade = (*pledgeService)(nil)

// findCompanyPledge loads a pledge and verifies it belongs to the company.
func (s *pledgeService) findCompanyPledge(ctx context.Context, companyID string, pledgeID string) (*domain.Pledge, error) {
	pledge, err := s.pledgeRepo.FindPledgeByID(ctx, pledgeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrPledgeNotFound, pledgeID)
		}
		return nil, err
	}
	if pledge.CompanyID != companyID {
		return nil, fmt.Errorf("%w: %s", ErrPledgeNotFound, pledgeID)
	}
	return pledge, nil
}

// CreatePledge persists a new pledge with its items, generates its number
// and posts the disbursement entries.
// Implements portssvc.PledgeSvcFacade
func (s *pledgeService) CreatePledge(ctx context.Context, companyID string, req dto.CreatePledgeRequest, creatorUserID string) (*domain.Pledge, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	scheme, err := s.schemeRepo.FindSchemeByID(ctx, req.SchemeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSchemeNotFound, req.SchemeID)
		}
		return nil, err
	}
	if scheme.CompanyID != companyID {
		return nil, fmt.Errorf("%w: %s", ErrSchemeNotFound, req.SchemeID)
	}
	if !scheme.IsActive {
		return nil, fmt.Errorf("%w: %s", ErrSchemeInactive, scheme.SchemeName)
	}

	if !req.LoanAmount.IsPositive() {
		return nil, fmt.Errorf("%w: loan amount must be positive", apperrors.ErrValidation)
	}
	if !req.MaximumValue.IsPositive() {
		return nil, fmt.Errorf("%w: maximum value must be positive", apperrors.ErrValidation)
	}

	// Rate and first month interest fall back to the scheme.
	rate := scheme.InterestRatePerMonth
	if req.InterestRate != nil {
		rate = *req.InterestRate
	}
	firstMonthInterest := interest.MonthlyInterest(req.LoanAmount, rate)
	if req.FirstMonthInterest != nil {
		firstMonthInterest = *req.FirstMonthInterest
	}

	period := fmt.Sprintf("%d", req.PledgeDate.Year())
	seq, err := s.sequenceRepo.NextSequence(ctx, companyID, scheme.Prefix, period)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate pledge number: %w", err)
	}
	pledgeNo := fmt.Sprintf("%s-%s-%04d", scheme.Prefix, period, seq)

	now := time.Now().UTC()
	totalWeight := decimal.Zero
	pledge := domain.Pledge{
		PledgeID:           uuid.NewString(),
		CompanyID:          companyID,
		PledgeNo:           pledgeNo,
		CustomerID:         req.CustomerID,
		SchemeID:           req.SchemeID,
		PledgeDate:         req.PledgeDate,
		DueDate:            req.PledgeDate.AddDate(0, scheme.DurationMonths, 0),
		LoanAmount:         req.LoanAmount,
		InterestRate:       rate,
		FirstMonthInterest: firstMonthInterest,
		MaximumValue:       req.MaximumValue,
		Status:             domain.PledgeActive,
		Narration:          req.Narration,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
		TotalPrincipalReceived: decimal.Zero,
		TotalInterestReceived:  decimal.Zero,
	}

	items := make([]domain.PledgeItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = domain.PledgeItem{
			PledgeItemID: uuid.NewString(),
			PledgeID:     pledge.PledgeID,
			ItemName:     it.ItemName,
			ItemType:     it.ItemType,
			Quantity:     it.Quantity,
			GrossWeight:  it.GrossWeight,
			NetWeight:    it.NetWeight,
			Purity:       it.Purity,
			ItemValue:    it.ItemValue,
			Remarks:      it.Remarks,
			AuditFields:  pledge.AuditFields,
		}
		totalWeight = totalWeight.Add(it.NetWeight)
	}
	pledge.TotalWeight = totalWeight

	// The pledge row and its disbursement entries commit together.
	err = s.txm.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.pledgeRepo.SavePledge(ctx, pledge, items); err != nil {
			return fmt.Errorf("failed to save pledge: %w", err)
		}
		if err := s.postingSvc.PostPledgeEntries(ctx, pledge, req.PaymentAccountCode, creatorUserID); err != nil {
			return fmt.Errorf("failed to post pledge entries: %w", err)
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to create pledge", slog.String("error", err.Error()), slog.String("pledge_no", pledgeNo))
		return nil, err
	}

	logger.Info("Pledge created",
		slog.String("pledge_id", pledge.PledgeID),
		slog.String("pledge_no", pledgeNo),
		slog.String("loan_amount", pledge.LoanAmount.String()),
	)
	return &pledge, nil
}

// GetPledgeByID retrieves a pledge and its items.
// Implements portssvc.PledgeSvcFacade
func (s *pledgeService) GetPledgeByID(ctx context.Context, companyID string, pledgeID string) (*domain.Pledge, []domain.PledgeItem, error) {
	pledge, err := s.findCompanyPledge(ctx, companyID, pledgeID)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.pledgeRepo.FindItemsByPledgeID(ctx, pledgeID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load pledge items: %w", err)
	}
	return pledge, items, nil
}

// ListPledges retrieves a filtered, paginated list of pledges.
// Implements portssvc.PledgeSvcFacade
func (s *pledgeService) ListPledges(ctx context.Context, companyID string, params dto.ListPledgesParams) (*dto.ListPledgesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 100
	}
	if limit > 500 {
		limit = 500
	}

	filter := portsrepo.PledgeListFilter{
		CustomerID: params.CustomerID,
		SchemeID:   params.SchemeID,
	}
	if params.Status != nil {
		status := domain.PledgeStatus(*params.Status)
		filter.Status = &status
	}

	pledges, err := s.pledgeRepo.ListPledges(ctx, companyID, filter, limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list pledges: %w", err)
	}

	resp := &dto.ListPledgesResponse{Pledges: make([]dto.PledgeResponse, 0, len(pledges))}
	for i := range pledges {
		resp.Pledges = append(resp.Pledges, dto.ToPledgeResponse(&pledges[i], nil))
	}
	return resp, nil
}

// GetOutstanding computes the repayment position of a pledge as of a date.
// Implements portssvc.PledgeSvcFacade
func (s *pledgeService) GetOutstanding(ctx context.Context, companyID string, pledgeID string, asOf time.Time) (*domain.OutstandingSummary, error) {
	pledge, err := s.findCompanyPledge(ctx, companyID, pledgeID)
	if err != nil {
		return nil, err
	}

	outstandingPrincipal := pledge.LoanAmount.Sub(pledge.TotalPrincipalReceived)
	if outstandingPrincipal.IsNegative() {
		outstandingPrincipal = decimal.Zero
	}
	outstandingInterest := interest.Outstanding(
		pledge.PledgeDate, asOf,
		pledge.LoanAmount, pledge.InterestRate,
		pledge.FirstMonthInterest, pledge.TotalInterestReceived,
	)

	return &domain.OutstandingSummary{
		PledgeID:             pledge.PledgeID,
		PledgeNo:             pledge.PledgeNo,
		CustomerID:           pledge.CustomerID,
		Status:               pledge.Status,
		LoanAmount:           pledge.LoanAmount,
		OutstandingPrincipal: outstandingPrincipal,
		OutstandingInterest:  outstandingInterest,
		TotalOutstanding:     outstandingPrincipal.Add(outstandingInterest),
		AsOf:                 asOf,
	}, nil
}

// ClosePledge closes a pledge whose outstanding balance has reached zero.
// Implements portssvc.PledgeSvcFacade
func (s *pledgeService) ClosePledge(ctx context.Context, companyID string, pledgeID string, userID string) (*domain.Pledge, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	pledge, err := s.findCompanyPledge(ctx, companyID, pledgeID)
	if err != nil {
		return nil, err
	}
	if !pledge.Status.CanTransitionTo(domain.PledgeClosed) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, pledge.Status, domain.PledgeClosed)
	}

	now := time.Now().UTC()
	summary, err := s.GetOutstanding(ctx, companyID, pledgeID, now)
	if err != nil {
		return nil, err
	}
	if summary.TotalOutstanding.IsPositive() {
		return nil, fmt.Errorf("%w: %s outstanding on %s", ErrPledgeNotSettled, summary.TotalOutstanding, pledge.PledgeNo)
	}

	if err := s.pledgeRepo.UpdatePledgeStatus(ctx, pledgeID, domain.PledgeClosed, &now, userID); err != nil {
		logger.Error("Failed to close pledge", slog.String("error", err.Error()), slog.String("pledge_id", pledgeID))
		return nil, fmt.Errorf("failed to close pledge: %w", err)
	}

	pledge.Status = domain.PledgeClosed
	pledge.CloseDate = &now
	logger.Info("Pledge closed", slog.String("pledge_id", pledgeID), slog.String("pledge_no", pledge.PledgeNo))
	return pledge, nil
}

// DeletePledge reverses the pledge's ledger entries and removes it.
// Implements portssvc.PledgeSvcFacade
func (s *pledgeService) DeletePledge(ctx context.Context, companyID string, pledgeID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	pledge, err := s.findCompanyPledge(ctx, companyID, pledgeID)
	if err != nil {
		return err
	}
	if pledge.TotalPrincipalReceived.IsPositive() || pledge.TotalInterestReceived.IsPositive() {
		return fmt.Errorf("%w: pledge %s has posted receipts", apperrors.ErrValidation, pledge.PledgeNo)
	}

	var reversed int
	err = s.txm.WithTransaction(ctx, func(ctx context.Context) error {
		reversed, err = s.postingSvc.ReverseEntries(ctx, companyID, domain.RefPledge, pledgeID, userID)
		if err != nil {
			return fmt.Errorf("failed to reverse pledge entries: %w", err)
		}
		if err := s.pledgeRepo.DeletePledge(ctx, pledgeID); err != nil {
			return fmt.Errorf("failed to delete pledge: %w", err)
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to delete pledge", slog.String("error", err.Error()), slog.String("pledge_id", pledgeID))
		return err
	}

	logger.Info("Pledge deleted",
		slog.String("pledge_id", pledgeID),
		slog.String("pledge_no", pledge.PledgeNo),
		slog.Int("entries_reversed", reversed),
	)
	return nil
}
