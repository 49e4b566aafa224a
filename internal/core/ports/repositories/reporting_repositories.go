package repositories

import (
	"context"
	"time"

	"github.com/pawnsoft/pawnledger/internal/core/domain"
)

// ReportingRepository defines operations for retrieving financial report data
type ReportingRepository interface {
	// GetTrialBalanceData retrieves per-account debit and credit totals for a
	// company over an optional date range.
	GetTrialBalanceData(ctx context.Context, companyID string, from, to *time.Time) ([]domain.TrialBalanceRow, error)
}
