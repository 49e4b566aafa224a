package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pawnsoft/pawnledger/internal/apperrors"
	"github.com/pawnsoft/pawnledger/internal/core/domain"
	portsrepo "github.com/pawnsoft/pawnledger/internal/core/ports/repositories"
	portssvc "github.com/pawnsoft/pawnledger/internal/core/ports/services"
	"github.com/pawnsoft/pawnledger/internal/dto"
	"github.com/pawnsoft/pawnledger/internal/middleware"
)

var ErrBankDetailsNotFound = errors.New("bank details not found")

// bankDetailsService manages the bank master records transfers draw on.
type bankDetailsService struct {
	bankDetailsRepo portsrepo.BankDetailsRepositoryFacade
}

// NewBankDetailsService creates a new bank master data service.
func NewBankDetailsService(bankDetailsRepo portsrepo.BankDetailsRepositoryFacade) portssvc.BankDetailsSvcFacade {
	return &bankDetailsService{bankDetailsRepo: bankDetailsRepo}
}

// Ensure bankDetailsService implements the portssvc.BankDetailsSvcFacade interface
var _ portssvc.BankDetailsSvcFacade = (*bankDetailsService)(nil)

// CreateBankDetails persists a new bank master record.
// Implements portssvc.BankDetailsSvcFacade
func (s *bankDetailsService) CreateBankDetails(ctx context.Context, companyID string, req dto.CreateBankDetailsRequest, creatorUserID string) (*domain.BankDetails, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	details := domain.BankDetails{
		BankDetailsID: uuid.NewString(),
		CompanyID:     companyID,
		BankName:      req.BankName,
		Branch:        req.Branch,
		AccountNo:     req.AccountNo,
		IFSCCode:      req.IFSCCode,
		ContactPerson: req.ContactPerson,
		ContactPhone:  req.ContactPhone,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.bankDetailsRepo.SaveBankDetails(ctx, details); err != nil {
		logger.Error("Failed to create bank details", slog.String("error", err.Error()), slog.String("bank_name", req.BankName))
		return nil, fmt.Errorf("failed to create bank details: %w", err)
	}

	logger.Info("Bank details created",
		slog.String("bank_details_id", details.BankDetailsID),
		slog.String("bank_name", details.BankName),
	)
	return &details, nil
}

// GetBankDetailsByID retrieves a specific bank master record.
// Implements portssvc.BankDetailsSvcFacade
func (s *bankDetailsService) GetBankDetailsByID(ctx context.Context, companyID string, bankDetailsID string) (*domain.BankDetails, error) {
	details, err := s.bankDetailsRepo.FindBankDetailsByID(ctx, bankDetailsID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrBankDetailsNotFound, bankDetailsID)
		}
		return nil, err
	}
	if details.CompanyID != companyID {
		return nil, fmt.Errorf("%w: %s", ErrBankDetailsNotFound, bankDetailsID)
	}
	return details, nil
}

// ListBankDetails retrieves the bank master records of a company.
// Implements portssvc.BankDetailsSvcFacade
func (s *bankDetailsService) ListBankDetails(ctx context.Context, companyID string, onlyActive bool) (*dto.ListBankDetailsResponse, error) {
	records, err := s.bankDetailsRepo.ListBankDetails(ctx, companyID, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list bank details: %w", err)
	}
	return &dto.ListBankDetailsResponse{Banks: dto.ToBankDetailsResponses(records)}, nil
}

// DeactivateBankDetails marks a bank master record inactive so new transfers
// cannot use it. Existing bank pledges keep their reference.
// Implements portssvc.BankDetailsSvcFacade
func (s *bankDetailsService) DeactivateBankDetails(ctx context.Context, companyID string, bankDetailsID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	details, err := s.GetBankDetailsByID(ctx, companyID, bankDetailsID)
	if err != nil {
		return err
	}

	details.IsActive = false
	details.LastUpdatedAt = time.Now().UTC()
	details.LastUpdatedBy = userID

	if err := s.bankDetailsRepo.UpdateBankDetails(ctx, *details); err != nil {
		logger.Error("Failed to deactivate bank details", slog.String("error", err.Error()), slog.String("bank_details_id", bankDetailsID))
		return fmt.Errorf("failed to deactivate bank details: %w", err)
	}

	logger.Info("Bank details deactivated", slog.String("bank_details_id", bankDetailsID))
	return nil
}
