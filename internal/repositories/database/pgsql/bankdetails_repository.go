package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pawnsoft/pawnledger/internal/apperrors"
	"github.com/pawnsoft/pawnledger/internal/core/domain"
	portsrepo "github.com/pawnsoft/pawnledger/internal/core/ports/repositories"
	"github.com/pawnsoft/pawnledger/internal/models"
	"github.com/pawnsoft/pawnledger/internal/utils/mapping"
)

const bankDetailsColumns = `bank_details_id, company_id, bank_name, branch, account_no, ifsc_code, contact_person, contact_phone, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxBankDetailsRepository struct {
	BaseRepository
}

// NewPgxBankDetailsRepository creates a new repository for bank master data.
func NewPgxBankDetailsRepository(pool *pgxpool.Pool) portsrepo.BankDetailsRepositoryFacade {
	return &PgxBankDetailsRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxBankDetailsRepository implements portsrepo.BankDetailsRepositoryFacade
var _ portsrepo.BankDetailsRepositoryFacade = (*PgxBankDetailsRepository)(nil)

func scanBankDetails(row pgx.Row) (*models.BankDetails, error) {
	var m models.BankDetails
	err := row.Scan(
		&m.BankDetailsID,
		&m.CompanyID,
		&m.BankName,
		&m.Branch,
		&m.AccountNo,
		&m.IFSCCode,
		&m.ContactPerson,
		&m.ContactPhone,
		&m.IsActive,
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

// SaveBankDetails persists a new bank master record.
func (r *PgxBankDetailsRepository) SaveBankDetails(ctx context.Context, details domain.BankDetails) error {
	m := mapping.ToModelBankDetails(details)

	query := `
		INSERT INTO bank_details (` + bankDetailsColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.conn(ctx).Exec(ctx, query,
		m.BankDetailsID, m.CompanyID, m.BankName, m.Branch, m.AccountNo,
		m.IFSCCode, m.ContactPerson, m.ContactPhone, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: bank %s / %s already exists", apperrors.ErrDuplicate, m.BankName, m.Branch)
		}
		return fmt.Errorf("failed to save bank details %s: %w", m.BankDetailsID, err)
	}
	return nil
}

// FindBankDetailsByID retrieves a bank master record by its ID.
func (r *PgxBankDetailsRepository) FindBankDetailsByID(ctx context.Context, bankDetailsID string) (*domain.BankDetails, error) {
	query := `
		SELECT ` + bankDetailsColumns + `
		FROM bank_details
		WHERE bank_details_id = $1;
	`
	m, err := scanBankDetails(r.conn(ctx).QueryRow(ctx, query, bankDetailsID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bank details by ID %s: %w", bankDetailsID, err)
	}

	d := mapping.ToDomainBankDetails(*m)
	return &d, nil
}

// ListBankDetails retrieves the bank master records of a company, optionally
// only active ones.
func (r *PgxBankDetailsRepository) ListBankDetails(ctx context.Context, companyID string, onlyActive bool) ([]domain.BankDetails, error) {
	query := `
		SELECT ` + bankDetailsColumns + `
		FROM bank_details
		WHERE company_id = $1
	`
	if onlyActive {
		query += " AND is_active = TRUE"
	}
	query += " ORDER BY bank_name, branch;"

	rows, err := r.conn(ctx).Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bank details for company %s: %w", companyID, err)
	}
	defer rows.Close()

	records := []models.BankDetails{}
	for rows.Next() {
		m, err := scanBankDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank details row: %w", err)
		}
		records = append(records, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating bank details rows: %w", rows.Err())
	}

	return mapping.ToDomainBankDetailsSlice(records), nil
}

// UpdateBankDetails updates an existing bank master record.
func (r *PgxBankDetailsRepository) UpdateBankDetails(ctx context.Context, details domain.BankDetails) error {
	m := mapping.ToModelBankDetails(details)

	query := `
		UPDATE bank_details
		SET bank_name = $2, branch = $3, account_no = $4, ifsc_code = $5, contact_person = $6, contact_phone = $7, is_active = $8, last_updated_at = $9, last_updated_by = $10
		WHERE bank_details_id = $1;
	`
	cmdTag, err := r.conn(ctx).Exec(ctx, query,
		m.BankDetailsID, m.BankName, m.Branch, m.AccountNo, m.IFSCCode,
		m.ContactPerson, m.ContactPhone, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update bank details %s: %w", m.BankDetailsID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
