package services

import (
	"context"

	"github.com/pawnsoft/pawnledger/internal/dto"
)

// ReportingService defines operations for financial reports
type ReportingService interface {
	// GetTrialBalance produces per-account debit and credit totals for a
	// company over an optional date range.
	GetTrialBalance(ctx context.Context, companyID string, params dto.TrialBalanceParams) (*dto.TrialBalanceResponse, error)
}
