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
	ErrReceiptNotFound       = errors.New("receipt not found")
	ErrReceiptNotDraft       = errors.New("receipt is not in draft status")
	ErrReceiptNotPosted      = errors.New("receipt is not in posted status")
	ErrReceiptAmountMismatch = errors.New("receipt amount does not match item totals")
)

// receiptNoPrefix is the numbering prefix for pledge receipts.
const receiptNoPrefix = "RCP"

// receiptService manages draft, posting and voiding of pledge receipts.
type receiptService struct {
	receiptRepo  portsrepo.ReceiptRepositoryFacade
	pledgeRepo   portsrepo.PledgeRepositoryFacade
	sequenceRepo portsrepo.SequenceRepository
	postingSvc   portssvc.PostingSvc
	txm          portsrepo.Transactor
}

// NewReceiptService creates a new receipt service.
func NewReceiptService(receiptRepo portsrepo.ReceiptRepositoryFacade, pledgeRepo portsrepo.PledgeRepositoryFacade, sequenceRepo portsrepo.SequenceRepository, postingSvc portssvc.PostingSvc, txm portsrepo.Transactor) portssvc.ReceiptSvcFacade {
	return &receiptService{
		receiptRepo:  receiptRepo,
		pledgeRepo:   pledgeRepo,
		sequenceRepo: sequenceRepo,
		postingSvc:   postingSvc,
		txm:          txm,
	}
}

// Ensure receiptService implements the portssvc.ReceiptSvcFacade interface
var _ portssvc.ReceiptSvcFacade = (*receiptService)(nil)

// findCompanyReceipt loads a receipt and verifies it belongs to the company.
func (s *receiptService) findCompanyReceipt(ctx context.Context, companyID string, receiptID string) (*domain.PledgeReceipt, error) {
	receipt, err := s.receiptRepo.FindReceiptByID(ctx, receiptID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrReceiptNotFound, receiptID)
		}
		return nil, err
	}
	if receipt.CompanyID != companyID {
		return nil, fmt.Errorf("%w: %s", ErrReceiptNotFound, receiptID)
	}
	return receipt, nil
}

// CreateReceipt persists a new draft receipt with its items and generates
// its number. No ledger entries are written until the receipt is posted.
// Implements portssvc.ReceiptSvcFacade
func (s *receiptService) CreateReceipt(ctx context.Context, companyID string, req dto.CreateReceiptRequest, creatorUserID string) (*domain.PledgeReceipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	receipt := domain.PledgeReceipt{
		ReceiptID:      uuid.NewString(),
		CompanyID:      companyID,
		CustomerID:     req.CustomerID,
		ReceiptDate:    req.ReceiptDate,
		ReceiptAmount:  req.ReceiptAmount,
		PaymentMode:    req.PaymentMode,
		Status:         domain.ReceiptDraft,
		COAEntryStatus: domain.COAPending,
		Narration:      req.Narration,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	itemsTotal := decimal.Zero
	items := make([]domain.ReceiptItem, len(req.Items))
	for i, it := range req.Items {
		pledge, err := s.pledgeRepo.FindPledgeByID(ctx, it.PledgeID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrPledgeNotFound, it.PledgeID)
			}
			return nil, err
		}
		if pledge.CompanyID != companyID {
			return nil, fmt.Errorf("%w: %s", ErrPledgeNotFound, it.PledgeID)
		}

		total := it.PaidPrincipal.Add(it.PaidInterest).Sub(it.PaidDiscount).Add(it.PaidPenalty)
		itemsTotal = itemsTotal.Add(total)
		items[i] = domain.ReceiptItem{
			ReceiptItemID:   uuid.NewString(),
			ReceiptID:       receipt.ReceiptID,
			PledgeID:        it.PledgeID,
			PaidPrincipal:   it.PaidPrincipal,
			PaidInterest:    it.PaidInterest,
			PaidDiscount:    it.PaidDiscount,
			PaidPenalty:     it.PaidPenalty,
			TotalAmountPaid: total,
			PaymentType:     it.PaymentType,
			AuditFields:     receipt.AuditFields,
		}
	}

	// Cash taken must equal the sum of the item allocations, otherwise the
	// posting could never balance.
	if !req.ReceiptAmount.Equal(itemsTotal) {
		return nil, fmt.Errorf("%w: receipt amount %s, item totals %s",
			ErrReceiptAmountMismatch, req.ReceiptAmount, itemsTotal)
	}

	period := fmt.Sprintf("%d", req.ReceiptDate.Year())
	seq, err := s.sequenceRepo.NextSequence(ctx, companyID, receiptNoPrefix, period)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate receipt number: %w", err)
	}
	receipt.ReceiptNo = fmt.Sprintf("%s-%s-%04d", receiptNoPrefix, period, seq)

	if err := s.receiptRepo.SaveReceipt(ctx, receipt, items); err != nil {
		logger.Error("Failed to save receipt", slog.String("error", err.Error()), slog.String("receipt_no", receipt.ReceiptNo))
		return nil, fmt.Errorf("failed to save receipt: %w", err)
	}

	logger.Info("Receipt created",
		slog.String("receipt_id", receipt.ReceiptID),
		slog.String("receipt_no", receipt.ReceiptNo),
		slog.String("amount", receipt.ReceiptAmount.String()),
	)
	return &receipt, nil
}

// PostReceipt posts a draft receipt: writes the ledger entries, updates
// pledge running totals and applies payment-type status transitions.
// Implements portssvc.ReceiptSvcFacade
func (s *receiptService) PostReceipt(ctx context.Context, companyID string, receiptID string, userID string) (*domain.PledgeReceipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	receipt, err := s.findCompanyReceipt(ctx, companyID, receiptID)
	if err != nil {
		return nil, err
	}
	if receipt.Status != domain.ReceiptDraft {
		return nil, fmt.Errorf("%w: %s is %s", ErrReceiptNotDraft, receipt.ReceiptNo, receipt.Status)
	}

	items, err := s.receiptRepo.FindItemsByReceiptID(ctx, receiptID)
	if err != nil {
		return nil, fmt.Errorf("failed to load receipt items: %w", err)
	}

	// Ledger entries, pledge running totals, status transitions and the
	// receipt status flip commit in one transaction. A failure anywhere
	// leaves the receipt in Draft with nothing posted, so a retry cannot
	// double-apply the batch.
	err = s.txm.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.postingSvc.PostReceiptEntries(ctx, *receipt, items, userID); err != nil {
			return fmt.Errorf("failed to post receipt entries: %w", err)
		}

		for _, item := range items {
			interestDelta := item.PaidInterest.Sub(item.PaidDiscount)
			if err := s.pledgeRepo.AddPledgeReceivedTotals(ctx, item.PledgeID, item.PaidPrincipal, interestDelta, userID); err != nil {
				return fmt.Errorf("failed to update pledge totals: %w", err)
			}

			next := domain.PledgeStatusForPaymentType(item.PaymentType)
			if next == domain.PledgeActive {
				continue
			}
			pledge, err := s.pledgeRepo.FindPledgeByID(ctx, item.PledgeID)
			if err != nil {
				return fmt.Errorf("failed to load pledge for status transition: %w", err)
			}
			if !pledge.Status.CanTransitionTo(next) {
				return fmt.Errorf("%w: %s -> %s on %s", ErrInvalidStatusTransition, pledge.Status, next, pledge.PledgeNo)
			}
			closeDate := receipt.ReceiptDate
			if err := s.pledgeRepo.UpdatePledgeStatus(ctx, item.PledgeID, next, &closeDate, userID); err != nil {
				return fmt.Errorf("failed to transition pledge status: %w", err)
			}
			logger.Info("Pledge status updated from receipt",
				slog.String("pledge_id", item.PledgeID),
				slog.String("status", string(next)),
				slog.String("receipt_no", receipt.ReceiptNo),
			)
		}

		if err := s.receiptRepo.UpdateReceiptStatus(ctx, receiptID, domain.ReceiptPosted, domain.COAPosted, userID); err != nil {
			return fmt.Errorf("failed to update receipt status: %w", err)
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to post receipt", slog.String("error", err.Error()), slog.String("receipt_id", receiptID))
		// The transaction rolled back; record the failure on the still-draft
		// receipt for operator follow-up.
		if updErr := s.receiptRepo.UpdateReceiptStatus(ctx, receiptID, domain.ReceiptDraft, domain.COAError, userID); updErr != nil {
			logger.Error("Failed to flag receipt posting error", slog.String("error", updErr.Error()), slog.String("receipt_id", receiptID))
		}
		return nil, err
	}

	receipt.Status = domain.ReceiptPosted
	receipt.COAEntryStatus = domain.COAPosted
	logger.Info("Receipt posted", slog.String("receipt_id", receiptID), slog.String("receipt_no", receipt.ReceiptNo))
	return receipt, nil
}

// VoidReceipt voids a posted receipt, reversing its entries and totals.
// Implements portssvc.ReceiptSvcFacade
func (s *receiptService) VoidReceipt(ctx context.Context, companyID string, receiptID string, userID string) (*domain.PledgeReceipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	receipt, err := s.findCompanyReceipt(ctx, companyID, receiptID)
	if err != nil {
		return nil, err
	}
	if receipt.Status != domain.ReceiptPosted {
		return nil, fmt.Errorf("%w: %s is %s", ErrReceiptNotPosted, receipt.ReceiptNo, receipt.Status)
	}

	items, err := s.receiptRepo.FindItemsByReceiptID(ctx, receiptID)
	if err != nil {
		return nil, fmt.Errorf("failed to load receipt items: %w", err)
	}

	var reversed int
	err = s.txm.WithTransaction(ctx, func(ctx context.Context) error {
		reversed, err = s.postingSvc.ReverseEntries(ctx, companyID, domain.RefReceipt, receiptID, userID)
		if err != nil {
			return fmt.Errorf("failed to reverse receipt entries: %w", err)
		}

		for _, item := range items {
			interestDelta := item.PaidInterest.Sub(item.PaidDiscount)
			if err := s.pledgeRepo.AddPledgeReceivedTotals(ctx, item.PledgeID, item.PaidPrincipal.Neg(), interestDelta.Neg(), userID); err != nil {
				return fmt.Errorf("failed to roll back pledge totals: %w", err)
			}
		}

		if err := s.receiptRepo.UpdateReceiptStatus(ctx, receiptID, domain.ReceiptVoid, domain.COAPosted, userID); err != nil {
			return fmt.Errorf("failed to update receipt status: %w", err)
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to void receipt", slog.String("error", err.Error()), slog.String("receipt_id", receiptID))
		return nil, err
	}

	receipt.Status = domain.ReceiptVoid
	logger.Info("Receipt voided",
		slog.String("receipt_id", receiptID),
		slog.String("receipt_no", receipt.ReceiptNo),
		slog.Int("entries_reversed", reversed),
	)
	return receipt, nil
}

// GetReceiptByID retrieves a receipt and its items.
// Implements portssvc.ReceiptSvcFacade
func (s *receiptService) GetReceiptByID(ctx context.Context, companyID string, receiptID string) (*domain.PledgeReceipt, []domain.ReceiptItem, error) {
	receipt, err := s.findCompanyReceipt(ctx, companyID, receiptID)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.receiptRepo.FindItemsByReceiptID(ctx, receiptID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load receipt items: %w", err)
	}
	return receipt, items, nil
}

// ListReceipts retrieves a filtered, paginated list of receipts.
// Implements portssvc.ReceiptSvcFacade
func (s *receiptService) ListReceipts(ctx context.Context, companyID string, params dto.ListReceiptsParams) (*dto.ListReceiptsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 100
	}
	if limit > 500 {
		limit = 500
	}

	filter := portsrepo.ReceiptListFilter{
		CustomerID: params.CustomerID,
		FromDate:   params.FromDate,
		ToDate:     params.ToDate,
	}
	if params.Status != nil {
		status := domain.ReceiptStatus(*params.Status)
		filter.Status = &status
	}

	receipts, err := s.receiptRepo.ListReceipts(ctx, companyID, filter, limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}

	resp := &dto.ListReceiptsResponse{Receipts: make([]dto.ReceiptResponse, 0, len(receipts))}
	for i := range receipts {
		resp.Receipts = append(resp.Receipts, dto.ToReceiptResponse(&receipts[i], nil))
	}
	return resp, nil
}
