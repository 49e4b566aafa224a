package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pawnsoft/pawnledger/internal/apperrors"
	"github.com/pawnsoft/pawnledger/internal/core/domain"
	portsrepo "github.com/pawnsoft/pawnledger/internal/core/ports/repositories"
	"github.com/pawnsoft/pawnledger/internal/models"
	"github.com/pawnsoft/pawnledger/internal/utils/mapping"
)

const receiptColumns = `receipt_id, company_id, receipt_no, customer_id, receipt_date, receipt_amount, payment_mode, status, coa_entry_status, narration, created_at, created_by, last_updated_at, last_updated_by`

const receiptItemColumns = `receipt_item_id, receipt_id, pledge_id, paid_principal, paid_interest, paid_discount, paid_penalty, total_amount_paid, payment_type, created_at, created_by, last_updated_at, last_updated_by`

type PgxReceiptRepository struct {
	BaseRepository
}

// NewPgxReceiptRepository creates a new repository for receipt data.
func NewPgxReceiptRepository(pool *pgxpool.Pool) portsrepo.ReceiptRepositoryWithTx {
	return &PgxReceiptRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxReceiptRepository implements portsrepo.ReceiptRepositoryWithTx
var _ portsrepo.ReceiptRepositoryWithTx = (*PgxReceiptRepository)(nil)

func scanReceipt(row pgx.Row) (*models.PledgeReceipt, error) {
	var m models.PledgeReceipt
	err := row.Scan(
		&m.ReceiptID,
		&m.CompanyID,
		&m.ReceiptNo,
		&m.CustomerID,
		&m.ReceiptDate,
		&m.ReceiptAmount,
		&m.PaymentMode,
		&m.Status,
		&m.COAEntryStatus,
		&m.Narration,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveReceipt persists a receipt and its items atomically.
func (r *PgxReceiptRepository) SaveReceipt(ctx context.Context, receipt domain.PledgeReceipt, items []domain.ReceiptItem) error {
	return r.WithTransaction(ctx, func(ctx context.Context) error {
		m := mapping.ToModelReceipt(receipt)
		receiptQuery := `
			INSERT INTO pledge_receipts (` + receiptColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
		`
		_, err := r.conn(ctx).Exec(ctx, receiptQuery,
			m.ReceiptID, m.CompanyID, m.ReceiptNo, m.CustomerID, m.ReceiptDate,
			m.ReceiptAmount, m.PaymentMode, m.Status, m.COAEntryStatus, m.Narration,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: receipt number %s already exists", apperrors.ErrDuplicate, m.ReceiptNo)
			}
			return fmt.Errorf("failed to save receipt %s: %w", m.ReceiptID, err)
		}

		itemQuery := `
			INSERT INTO receipt_items (` + receiptItemColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
		`
		batch := &pgx.Batch{}
		for _, item := range items {
			mi := mapping.ToModelReceiptItem(item)
			batch.Queue(itemQuery,
				mi.ReceiptItemID, mi.ReceiptID, mi.PledgeID, mi.PaidPrincipal, mi.PaidInterest,
				mi.PaidDiscount, mi.PaidPenalty, mi.TotalAmountPaid, mi.PaymentType,
				mi.CreatedAt, mi.CreatedBy, mi.LastUpdatedAt, mi.LastUpdatedBy,
			)
		}

		br := r.conn(ctx).SendBatch(ctx, batch)
		for i := 0; i < batch.Len(); i++ {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return fmt.Errorf("failed to save receipt item: %w", err)
			}
		}
		if err := br.Close(); err != nil {
			return fmt.Errorf("failed to close receipt item batch: %w", err)
		}

		return nil
	})
}

// FindReceiptByID retrieves a receipt by its ID.
func (r *PgxReceiptRepository) FindReceiptByID(ctx context.Context, receiptID string) (*domain.PledgeReceipt, error) {
	query := `
		SELECT ` + receiptColumns + `
		FROM pledge_receipts
		WHERE receipt_id = $1;
	`
	m, err := scanReceipt(r.conn(ctx).QueryRow(ctx, query, receiptID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find receipt by ID %s: %w", receiptID, err)
	}

	d := mapping.ToDomainReceipt(*m)
	return &d, nil
}

// FindItemsByReceiptID retrieves the pledge allocations of a receipt.
func (r *PgxReceiptRepository) FindItemsByReceiptID(ctx context.Context, receiptID string) ([]domain.ReceiptItem, error) {
	query := `
		SELECT ` + receiptItemColumns + `
		FROM receipt_items
		WHERE receipt_id = $1
		ORDER BY created_at, receipt_item_id;
	`
	rows, err := r.conn(ctx).Query(ctx, query, receiptID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items for receipt %s: %w", receiptID, err)
	}
	defer rows.Close()

	items := []models.ReceiptItem{}
	for rows.Next() {
		var m models.ReceiptItem
		err := rows.Scan(
			&m.ReceiptItemID, &m.ReceiptID, &m.PledgeID, &m.PaidPrincipal, &m.PaidInterest,
			&m.PaidDiscount, &m.PaidPenalty, &m.TotalAmountPaid, &m.PaymentType,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan receipt item row: %w", err)
		}
		items = append(items, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating receipt item rows: %w", rows.Err())
	}

	return mapping.ToDomainReceiptItemSlice(items), nil
}

// ListReceipts retrieves a filtered, paginated list of receipts for a company.
func (r *PgxReceiptRepository) ListReceipts(ctx context.Context, companyID string, filter portsrepo.ReceiptListFilter, limit int, offset int) ([]domain.PledgeReceipt, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + receiptColumns + `
		FROM pledge_receipts
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
	if filter.FromDate != nil {
		query += fmt.Sprintf(" AND receipt_date >= $%d", argPos)
		args = append(args, *filter.FromDate)
		argPos++
	}
	if filter.ToDate != nil {
		query += fmt.Sprintf(" AND receipt_date <= $%d", argPos)
		args = append(args, *filter.ToDate)
		argPos++
	}
	query += fmt.Sprintf(" ORDER BY receipt_date DESC, receipt_no DESC LIMIT $%d OFFSET $%d;", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query receipts for company %s: %w", companyID, err)
	}
	defer rows.Close()

	receipts := []domain.PledgeReceipt{}
	for rows.Next() {
		m, err := scanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan receipt row: %w", err)
		}
		receipts = append(receipts, mapping.ToDomainReceipt(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating receipt rows: %w", rows.Err())
	}

	return receipts, nil
}

// UpdateReceiptStatus updates the document status and ledger posting status of a receipt.
func (r *PgxReceiptRepository) UpdateReceiptStatus(ctx context.Context, receiptID string, status domain.ReceiptStatus, coaStatus domain.COAEntryStatus, updatedBy string) error {
	query := `
		UPDATE pledge_receipts
		SET status = $2, coa_entry_status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE receipt_id = $1;
	`
	cmdTag, err := r.conn(ctx).Exec(ctx, query, receiptID, string(status), string(coaStatus), time.Now().UTC(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update status for receipt %s: %w", receiptID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
