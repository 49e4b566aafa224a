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

// schemeService manages loan scheme definitions.
type schemeService struct {
	schemeRepo portsrepo.SchemeRepositoryFacade
}

// NewSchemeService creates a new scheme service.
func NewSchemeService(schemeRepo portsrepo.SchemeRepositoryFacade) portssvc.SchemeSvcFacade {
	return &schemeService{schemeRepo: schemeRepo}
}

// Ensure schemeService implements the portssvc.SchemeSvcFacade interface
var _ portssvc.SchemeSvcFacade = (*schemeService)(nil)

// CreateScheme persists a new loan scheme.
// Implements portssvc.SchemeSvcFacade
func (s *schemeService) CreateScheme(ctx context.Context, companyID string, req dto.CreateSchemeRequest, creatorUserID string) (*domain.Scheme, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.InterestRatePerMonth.IsPositive() {
		return nil, fmt.Errorf("%w: interest rate must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	scheme := domain.Scheme{
		SchemeID:             uuid.NewString(),
		CompanyID:            companyID,
		SchemeName:           req.SchemeName,
		ShortName:            req.ShortName,
		Prefix:               req.Prefix,
		DurationMonths:       req.DurationMonths,
		InterestRatePerMonth: req.InterestRatePerMonth,
		LoanEligibilityPct:   req.LoanEligibilityPct,
		IsActive:             true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.schemeRepo.SaveScheme(ctx, scheme); err != nil {
		logger.Error("Failed to create scheme", slog.String("error", err.Error()), slog.String("scheme_name", req.SchemeName))
		return nil, fmt.Errorf("failed to create scheme: %w", err)
	}

	logger.Info("Scheme created",
		slog.String("scheme_id", scheme.SchemeID),
		slog.String("prefix", scheme.Prefix),
	)
	return &scheme, nil
}

// GetSchemeByID retrieves a specific scheme.
// Implements portssvc.SchemeSvcFacade
func (s *schemeService) GetSchemeByID(ctx context.Context, companyID string, schemeID string) (*domain.Scheme, error) {
	scheme, err := s.schemeRepo.FindSchemeByID(ctx, schemeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSchemeNotFound, schemeID)
		}
		return nil, err
	}
	if scheme.CompanyID != companyID {
		return nil, fmt.Errorf("%w: %s", ErrSchemeNotFound, schemeID)
	}
	return scheme, nil
}

// ListSchemes retrieves the schemes of a company.
// Implements portssvc.SchemeSvcFacade
func (s *schemeService) ListSchemes(ctx context.Context, companyID string, onlyActive bool) (*dto.ListSchemesResponse, error) {
	schemes, err := s.schemeRepo.ListSchemes(ctx, companyID, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list schemes: %w", err)
	}
	return &dto.ListSchemesResponse{Schemes: dto.ToSchemeResponses(schemes)}, nil
}

// DeactivateScheme marks a scheme inactive so new pledges cannot use it.
// Existing pledges keep accruing on their recorded rate.
// Implements portssvc.SchemeSvcFacade
func (s *schemeService) DeactivateScheme(ctx context.Context, companyID string, schemeID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	scheme, err := s.GetSchemeByID(ctx, companyID, schemeID)
	if err != nil {
		return err
	}

	scheme.IsActive = false
	scheme.LastUpdatedAt = time.Now().UTC()
	scheme.LastUpdatedBy = userID

	if err := s.schemeRepo.UpdateScheme(ctx, *scheme); err != nil {
		logger.Error("Failed to deactivate scheme", slog.String("error", err.Error()), slog.String("scheme_id", schemeID))
		return fmt.Errorf("failed to deactivate scheme: %w", err)
	}

	logger.Info("Scheme deactivated", slog.String("scheme_id", schemeID))
	return nil
}
