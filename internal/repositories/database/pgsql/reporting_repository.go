package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pawnsoft/pawnledger/internal/core/domain"
	portsrepo "github.com/pawnsoft/pawnledger/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

// NewPgxReportingRepository creates a new repository for reporting queries.
func NewPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetTrialBalanceData aggregates per-account debit and credit totals for a
// company over an optional entry date range. Accounts with no activity in the
// range are omitted.
func (r *PgxReportingRepository) GetTrialBalanceData(ctx context.Context, companyID string, from, to *time.Time) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT
			a.account_id,
			a.account_code,
			a.account_name,
			a.account_type,
			COALESCE(SUM(CASE WHEN l.entry_type = 'DEBIT' THEN l.amount ELSE 0 END), 0) AS total_debit,
			COALESCE(SUM(CASE WHEN l.entry_type = 'CREDIT' THEN l.amount ELSE 0 END), 0) AS total_credit
		FROM ledger_entries l
		JOIN chart_of_accounts a ON a.account_id = l.account_id
		WHERE l.company_id = $1
	`
	args := []any{companyID}
	argPos := 2
	if from != nil {
		query += fmt.Sprintf(" AND l.entry_date >= $%d", argPos)
		args = append(args, *from)
		argPos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND l.entry_date <= $%d", argPos)
		args = append(args, *to)
		argPos++
	}
	query += `
		GROUP BY a.account_id, a.account_code, a.account_name, a.account_type
		ORDER BY a.account_code;
	`

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trial balance for company %s: %w", companyID, err)
	}
	defer rows.Close()

	result := []domain.TrialBalanceRow{}
	for rows.Next() {
		var row domain.TrialBalanceRow
		var accountType string
		err := rows.Scan(&row.AccountID, &row.AccountCode, &row.AccountName, &accountType, &row.Debit, &row.Credit)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trial balance row: %w", err)
		}
		row.AccountType = domain.AccountType(accountType)
		result = append(result, row)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating trial balance rows: %w", rows.Err())
	}

	return result, nil
}
