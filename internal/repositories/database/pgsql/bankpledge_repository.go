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

const bankPledgeColumns = `bank_pledge_id, company_id, pledge_id, bank_details_id, bank_name, bank_branch, bank_reference_no, transfer_date, bank_valuation, ltv_percent, bank_loan_amount, bank_interest_rate, original_shop_loan, outstanding_interest, status, narration, created_at, created_by, last_updated_at, last_updated_by`

const bankPledgeItemColumns = `bank_pledge_item_id, bank_pledge_id, item_name, item_type, quantity, gross_weight, net_weight, purity, item_value, created_at, created_by, last_updated_at, last_updated_by`

const bankRedemptionColumns = `redemption_id, company_id, bank_pledge_id, redemption_date, amount_paid_to_bank, interest_paid, bank_charges, bank_valuation, actual_redemption_value, price_difference, funding_receipt_id, narration, created_at, created_by, last_updated_at, last_updated_by`

type PgxBankPledgeRepository struct {
	BaseRepository
}

// NewPgxBankPledgeRepository creates a new repository for bank pledge data.
func NewPgxBankPledgeRepository(pool *pgxpool.Pool) portsrepo.BankPledgeRepositoryWithTx {
	return &PgxBankPledgeRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxBankPledgeRepository implements portsrepo.BankPledgeRepositoryWithTx
var _ portsrepo.BankPledgeRepositoryWithTx = (*PgxBankPledgeRepository)(nil)

func scanBankPledge(row pgx.Row) (*models.BankPledge, error) {
	var m models.BankPledge
	err := row.Scan(
		&m.BankPledgeID,
		&m.CompanyID,
		&m.PledgeID,
		&m.BankDetailsID,
		&m.BankName,
		&m.BankBranch,
		&m.BankReferenceNo,
		&m.TransferDate,
		&m.BankValuation,
		&m.LTVPercent,
		&m.BankLoanAmount,
		&m.BankInterestRate,
		&m.OriginalShopLoan,
		&m.OutstandingInterest,
		&m.Status,
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

func scanBankRedemption(row pgx.Row) (*models.BankRedemption, error) {
	var m models.BankRedemption
	err := row.Scan(
		&m.RedemptionID,
		&m.CompanyID,
		&m.BankPledgeID,
		&m.RedemptionDate,
		&m.AmountPaidToBank,
		&m.InterestPaid,
		&m.BankCharges,
		&m.BankValuation,
		&m.ActualRedemptionValue,
		&m.PriceDifference,
		&m.FundingReceiptID,
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

// SaveBankPledge persists a bank pledge and its item snapshots atomically.
func (r *PgxBankPledgeRepository) SaveBankPledge(ctx context.Context, bankPledge domain.BankPledge, items []domain.BankPledgeItem) error {
	return r.WithTransaction(ctx, func(ctx context.Context) error {
		m := mapping.ToModelBankPledge(bankPledge)
		query := `
			INSERT INTO bank_pledges (` + bankPledgeColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
		`
		_, err := r.conn(ctx).Exec(ctx, query,
			m.BankPledgeID, m.CompanyID, m.PledgeID, m.BankDetailsID, m.BankName, m.BankBranch,
			m.BankReferenceNo, m.TransferDate, m.BankValuation, m.LTVPercent, m.BankLoanAmount,
			m.BankInterestRate, m.OriginalShopLoan, m.OutstandingInterest, m.Status, m.Narration,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to save bank pledge %s: %w", m.BankPledgeID, err)
		}

		itemQuery := `
			INSERT INTO bank_pledge_items (` + bankPledgeItemColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
		`
		batch := &pgx.Batch{}
		for _, item := range items {
			mi := mapping.ToModelBankPledgeItem(item)
			batch.Queue(itemQuery,
				mi.BankPledgeItemID, mi.BankPledgeID, mi.ItemName, mi.ItemType, mi.Quantity,
				mi.GrossWeight, mi.NetWeight, mi.Purity, mi.ItemValue,
				mi.CreatedAt, mi.CreatedBy, mi.LastUpdatedAt, mi.LastUpdatedBy,
			)
		}

		br := r.conn(ctx).SendBatch(ctx, batch)
		for i := 0; i < batch.Len(); i++ {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return fmt.Errorf("failed to save bank pledge item: %w", err)
			}
		}
		if err := br.Close(); err != nil {
			return fmt.Errorf("failed to close bank pledge item batch: %w", err)
		}

		return nil
	})
}

// FindBankPledgeByID retrieves a bank pledge by its ID.
func (r *PgxBankPledgeRepository) FindBankPledgeByID(ctx context.Context, bankPledgeID string) (*domain.BankPledge, error) {
	query := `
		SELECT ` + bankPledgeColumns + `
		FROM bank_pledges
		WHERE bank_pledge_id = $1;
	`
	m, err := scanBankPledge(r.conn(ctx).QueryRow(ctx, query, bankPledgeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bank pledge by ID %s: %w", bankPledgeID, err)
	}

	d := mapping.ToDomainBankPledge(*m)
	return &d, nil
}

// FindActiveBankPledgeByPledgeID retrieves the WITH_BANK bank pledge of a
// shop pledge, if any.
func (r *PgxBankPledgeRepository) FindActiveBankPledgeByPledgeID(ctx context.Context, pledgeID string) (*domain.BankPledge, error) {
	query := `
		SELECT ` + bankPledgeColumns + `
		FROM bank_pledges
		WHERE pledge_id = $1 AND status = $2;
	`
	m, err := scanBankPledge(r.conn(ctx).QueryRow(ctx, query, pledgeID, string(domain.BankWithBank)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find active bank pledge for pledge %s: %w", pledgeID, err)
	}

	d := mapping.ToDomainBankPledge(*m)
	return &d, nil
}

// FindItemsByBankPledgeID retrieves the item snapshots taken at transfer time.
func (r *PgxBankPledgeRepository) FindItemsByBankPledgeID(ctx context.Context, bankPledgeID string) ([]domain.BankPledgeItem, error) {
	query := `
		SELECT ` + bankPledgeItemColumns + `
		FROM bank_pledge_items
		WHERE bank_pledge_id = $1
		ORDER BY created_at, bank_pledge_item_id;
	`
	rows, err := r.conn(ctx).Query(ctx, query, bankPledgeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items for bank pledge %s: %w", bankPledgeID, err)
	}
	defer rows.Close()

	items := []models.BankPledgeItem{}
	for rows.Next() {
		var m models.BankPledgeItem
		err := rows.Scan(
			&m.BankPledgeItemID, &m.BankPledgeID, &m.ItemName, &m.ItemType, &m.Quantity,
			&m.GrossWeight, &m.NetWeight, &m.Purity, &m.ItemValue,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank pledge item row: %w", err)
		}
		items = append(items, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating bank pledge item rows: %w", rows.Err())
	}

	return mapping.ToDomainBankPledgeItemSlice(items), nil
}

// ListBankPledges retrieves a paginated list of bank pledges for a company,
// optionally filtered by status.
func (r *PgxBankPledgeRepository) ListBankPledges(ctx context.Context, companyID string, status *domain.BankPledgeStatus, limit int, offset int) ([]domain.BankPledge, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + bankPledgeColumns + `
		FROM bank_pledges
		WHERE company_id = $1
	`
	args := []any{companyID}
	argPos := 2
	if status != nil {
		query += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, string(*status))
		argPos++
	}
	query += fmt.Sprintf(" ORDER BY transfer_date DESC LIMIT $%d OFFSET $%d;", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bank pledges for company %s: %w", companyID, err)
	}
	defer rows.Close()

	bankPledges := []domain.BankPledge{}
	for rows.Next() {
		m, err := scanBankPledge(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank pledge row: %w", err)
		}
		bankPledges = append(bankPledges, mapping.ToDomainBankPledge(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating bank pledge rows: %w", rows.Err())
	}

	return bankPledges, nil
}

// FindRedemptionsByBankPledgeID retrieves the redemptions recorded against a bank pledge.
func (r *PgxBankPledgeRepository) FindRedemptionsByBankPledgeID(ctx context.Context, bankPledgeID string) ([]domain.BankRedemption, error) {
	query := `
		SELECT ` + bankRedemptionColumns + `
		FROM bank_redemptions
		WHERE bank_pledge_id = $1
		ORDER BY redemption_date;
	`
	rows, err := r.conn(ctx).Query(ctx, query, bankPledgeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query redemptions for bank pledge %s: %w", bankPledgeID, err)
	}
	defer rows.Close()

	redemptions := []domain.BankRedemption{}
	for rows.Next() {
		m, err := scanBankRedemption(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank redemption row: %w", err)
		}
		redemptions = append(redemptions, mapping.ToDomainBankRedemption(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating bank redemption rows: %w", rows.Err())
	}

	return redemptions, nil
}

// UpdateBankPledgeStatus updates the status of a bank pledge.
func (r *PgxBankPledgeRepository) UpdateBankPledgeStatus(ctx context.Context, bankPledgeID string, status domain.BankPledgeStatus, updatedBy string) error {
	query := `
		UPDATE bank_pledges
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE bank_pledge_id = $1;
	`
	cmdTag, err := r.conn(ctx).Exec(ctx, query, bankPledgeID, string(status), time.Now().UTC(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update status for bank pledge %s: %w", bankPledgeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SaveRedemption persists a bank redemption record.
func (r *PgxBankPledgeRepository) SaveRedemption(ctx context.Context, redemption domain.BankRedemption) error {
	m := mapping.ToModelBankRedemption(redemption)

	query := `
		INSERT INTO bank_redemptions (` + bankRedemptionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.conn(ctx).Exec(ctx, query,
		m.RedemptionID, m.CompanyID, m.BankPledgeID, m.RedemptionDate, m.AmountPaidToBank,
		m.InterestPaid, m.BankCharges, m.BankValuation, m.ActualRedemptionValue, m.PriceDifference,
		m.FundingReceiptID, m.Narration, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save bank redemption %s: %w", m.RedemptionID, err)
	}
	return nil
}
