package services

import (
	"context"
	"fmt"

	portsrepo "github.com/pawnsoft/pawnledger/internal/core/ports/repositories"
	portssvc "github.com/pawnsoft/pawnledger/internal/core/ports/services"
	"github.com/pawnsoft/pawnledger/internal/dto"
)

// reportingService produces financial reports from the ledger.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingService {
	return &reportingService{reportingRepo: reportingRepo}
}

// Ensure reportingService implements the portssvc.ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// GetTrialBalance produces per-account debit and credit totals for a company
// over an optional date range.
// Implements portssvc.ReportingService
func (s *reportingService) GetTrialBalance(ctx context.Context, companyID string, params dto.TrialBalanceParams) (*dto.TrialBalanceResponse, error) {
	rows, err := s.reportingRepo.GetTrialBalanceData(ctx, companyID, params.FromDate, params.ToDate)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve trial balance data: %w", err)
	}

	resp := dto.ToTrialBalanceResponse(rows)
	return &resp, nil
}
