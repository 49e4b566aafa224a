package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/pawnsoft/pawnledger/internal/apperrors"
	"github.com/pawnsoft/pawnledger/internal/core/domain"
	portsrepo "github.com/pawnsoft/pawnledger/internal/core/ports/repositories"
	"github.com/pawnsoft/pawnledger/internal/models"
	"github.com/pawnsoft/pawnledger/internal/utils/mapping"
)

const pledgeColumns = `pledge_id, company_id, pledge_no, customer_id, scheme_id, pledge_date, due_date, loan_amount, interest_rate, first_month_interest, maximum_value, total_weight, status, close_date, narration, created_at, created_by, last_updated_at, last_updated_by, total_principal_received, total_interest_received`

const pledgeItemColumns = `pledge_item_id, pledge_id, item_name, item_type, quantity, gross_weight, net_weight, purity, item_value, remarks, created_at, created_by, last_updated_at, last_updated_by`

type PgxPledgeRepository struct {
	BaseRepository
}

// NewPgxPledgeRepository creates a new repository for pledge data.
func NewPgxPledgeRepository(pool *pgxpool.Pool) portsrepo.PledgeRepositoryWithTx {
	return &PgxPledgeRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxPledgeRepository implements portsrepo.PledgeRepositoryWithTx
var _ portsrepo.PledgeRepositoryWithTx = (*PgxPledgeRepository)(nil)

func scanPledge(row pgx.Row) (*models.Pledge, error) {
	var m models.Pledge
	err := row.Scan(
		&m.PledgeID,
		&m.CompanyID,
		&m.PledgeNo,
		&m.CustomerID,
		&m.SchemeID,
		&m.PledgeDate,
		&m.DueDate,
		&m.LoanAmount,
		&m.InterestRate,
		&m.FirstMonthInterest,
		&m.MaximumValue,
		&m.TotalWeight,
		&m.Status,
		&m.CloseDate,
		&m.Narration,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.TotalPrincipalReceived,
		&m.TotalInterestReceived,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SavePledge persists a pledge and its items atomically.
func (r *PgxPledgeRepository) SavePledge(ctx context.Context, pledge domain.Pledge, items []domain.PledgeItem) error {
	return r.WithTransaction(ctx, func(ctx context.Context) error {
		m := mapping.ToModelPledge(pledge)
		pledgeQuery := `
			INSERT INTO pledges (` + pledgeColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
		`
		_, err := r.conn(ctx).Exec(ctx, pledgeQuery,
			m.PledgeID, m.CompanyID, m.PledgeNo, m.CustomerID, m.SchemeID,
			m.PledgeDate, m.DueDate, m.LoanAmount, m.InterestRate, m.FirstMonthInterest,
			m.MaximumValue, m.TotalWeight, m.Status, m.CloseDate, m.Narration,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
			m.TotalPrincipalReceived, m.TotalInterestReceived,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: pledge number %s already exists", apperrors.ErrDuplicate, m.PledgeNo)
			}
			return fmt.Errorf("failed to save pledge %s: %w", m.PledgeID, err)
		}

		itemQuery := `
			INSERT INTO pledge_items (` + pledgeItemColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
		`
		batch := &pgx.Batch{}
		for _, item := range items {
			mi := mapping.ToModelPledgeItem(item)
			batch.Queue(itemQuery,
				mi.PledgeItemID, mi.PledgeID, mi.ItemName, mi.ItemType, mi.Quantity,
				mi.GrossWeight, mi.NetWeight, mi.Purity, mi.ItemValue, mi.Remarks,
				mi.CreatedAt, mi.CreatedBy, mi.LastUpdatedAt, mi.LastUpdatedBy,
			)
		}

		br := r.conn(ctx).SendBatch(ctx, batch)
		for i := 0; i < batch.Len(); i++ {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return fmt.Errorf("failed to save pledge item: %w", err)
			}
		}
		if err := br.Close(); err != nil {
			return fmt.Errorf("failed to close pledge item batch: %w", err)
		}

		return nil
	})
}

// FindPledgeByID retrieves a pledge by its ID.
func (r *PgxPledgeRepository) FindPledgeByID(ctx context.Context, pledgeID string) (*domain.Pledge, error) {
	query := `
		SELECT ` + pledgeColumns + `
		FROM pledges
		WHERE pledge_id = $1;
	`
	m, err := scanPledge(r.conn(ctx).QueryRow(ctx, query, pledgeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find pledge by ID %s: %w", pledgeID, err)
	}

	d := mapping.ToDomainPledge(*m)
	return &d, nil
}

// FindPledgeByNo retrieves a pledge by its business number within a company.
func (r *PgxPledgeRepository) FindPledgeByNo(ctx context.Context, companyID string, pledgeNo string) (*domain.Pledge, error) {
	query := `
		SELECT ` + pledgeColumns + `
		FROM pledges
		WHERE company_id = $1 AND pledge_no = $2;
	`
	m, err := scanPledge(r.conn(ctx).QueryRow(ctx, query, companyID, pledgeNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find pledge by number %s: %w", pledgeNo, err)
	}

	d := mapping.ToDomainPledge(*m)
	return &d, nil
}

// FindItemsByPledgeID retrieves the pawned items under a pledge.
func (r *PgxPledgeRepository) FindItemsByPledgeID(ctx context.Context, pledgeID string) ([]domain.PledgeItem, error) {
	query := `
		SELECT ` + pledgeItemColumns + `
		FROM pledge_items
		WHERE pledge_id = $1
		ORDER BY created_at, pledge_item_id;
	`
	rows, err := r.conn(ctx).Query(ctx, query, pledgeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items for pledge %s: %w", pledgeID, err)
	}
	defer rows.Close()

	items := []models.PledgeItem{}
	for rows.Next() {
		var m models.PledgeItem
		err := rows.Scan(
			&m.PledgeItemID, &m.PledgeID, &m.ItemName, &m.ItemType, &m.Quantity,
			&m.GrossWeight, &m.NetWeight, &m.Purity, &m.ItemValue, &m.Remarks,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pledge item row: %w", err)
		}
		items = append(items, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating pledge item rows: %w", rows.Err())
	}

	return mapping.ToDomainPledgeItemSlice(items), nil
}

// ListPledges retrieves a filtered, paginated list of pledges for a company.
func (r *PgxPledgeRepository) ListPledges(ctx context.Context, companyID string, filter portsrepo.PledgeListFilter, limit int, offset int) ([]domain.Pledge, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + pledgeColumns + `
		FROM pledges
		WHERE company_id = $1
	`
	args := []any{companyID}
	argPos := 2
	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, string(*filter.Status))
		argPos++
	}
	if filter.CustomerID != nil {
		query += fmt.Sprintf(" AND customer_id = $%d", argPos)
		args = append(args, *filter.CustomerID)
		argPos++
	}
	if filter.SchemeID != nil {
		query += fmt.Sprintf(" AND scheme_id = $%d", argPos)
		args = append(args, *filter.SchemeID)
		argPos++
	}
	query += fmt.Sprintf(" ORDER BY pledge_date DESC, pledge_no DESC LIMIT $%d OFFSET $%d;", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query pledges for company %s: %w", companyID, err)
	}
	defer rows.Close()

	pledges := []domain.Pledge{}
	for rows.Next() {
		m, err := scanPledge(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pledge row: %w", err)
		}
		pledges = append(pledges, mapping.ToDomainPledge(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating pledge rows: %w", rows.Err())
	}

	return pledges, nil
}

// UpdatePledgeStatus updates the lifecycle status and close date of a pledge.
func (r *PgxPledgeRepository) UpdatePledgeStatus(ctx context.Context, pledgeID string, status domain.PledgeStatus, closeDate *time.Time, updatedBy string) error {
	query := `
		UPDATE pledges
		SET status = $2, close_date = $3, last_updated_at = $4, last_updated_by = $5
		WHERE pledge_id = $1;
	`
	cmdTag, err := r.conn(ctx).Exec(ctx, query, pledgeID, string(status), closeDate, time.Now().UTC(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update status for pledge %s: %w", pledgeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AddPledgeReceivedTotals adds to the accumulated principal and interest
// received for a pledge. Deltas may be negative when a receipt is voided.
func (r *PgxPledgeRepository) AddPledgeReceivedTotals(ctx context.Context, pledgeID string, principalDelta, interestDelta decimal.Decimal, updatedBy string) error {
	query := `
		UPDATE pledges
		SET total_principal_received = total_principal_received + $2,
		    total_interest_received = total_interest_received + $3,
		    last_updated_at = $4, last_updated_by = $5
		WHERE pledge_id = $1;
	`
	cmdTag, err := r.conn(ctx).Exec(ctx, query, pledgeID, principalDelta, interestDelta, time.Now().UTC(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update received totals for pledge %s: %w", pledgeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeletePledge removes a pledge and its items atomically.
func (r *PgxPledgeRepository) DeletePledge(ctx context.Context, pledgeID string) error {
	return r.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := r.conn(ctx).Exec(ctx, `DELETE FROM pledge_items WHERE pledge_id = $1;`, pledgeID); err != nil {
			return fmt.Errorf("failed to delete items for pledge %s: %w", pledgeID, err)
		}

		cmdTag, err := r.conn(ctx).Exec(ctx, `DELETE FROM pledges WHERE pledge_id = $1;`, pledgeID)
		if err != nil {
			return fmt.Errorf("failed to delete pledge %s: %w", pledgeID, err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}

		return nil
	})
}
