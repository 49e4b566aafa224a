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

const schemeColumns = `scheme_id, company_id, scheme_name, short_name, prefix, duration_months, interest_rate_per_month, loan_eligibility_pct, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxSchemeRepository struct {
	BaseRepository
}

// NewPgxSchemeRepository creates a new repository for scheme data.
func NewPgxSchemeRepository(pool *pgxpool.Pool) portsrepo.SchemeRepositoryFacade {
	return &PgxSchemeRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxSchemeRepository implements portsrepo.SchemeRepositoryFacade
var _ portsrepo.SchemeRepositoryFacade = (*PgxSchemeRepository)(nil)

func scanScheme(row pgx.Row) (*models.Scheme, error) {
	var m models.Scheme
	err := row.Scan(
		&m.SchemeID,
		&m.CompanyID,
		&m.SchemeName,
		&m.ShortName,
		&m.Prefix,
		&m.DurationMonths,
		&m.InterestRatePerMonth,
		&m.LoanEligibilityPct,
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

// SaveScheme persists a new scheme.
func (r *PgxSchemeRepository) SaveScheme(ctx context.Context, scheme domain.Scheme) error {
	m := mapping.ToModelScheme(scheme)

	query := `
		INSERT INTO schemes (` + schemeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.conn(ctx).Exec(ctx, query,
		m.SchemeID, m.CompanyID, m.SchemeName, m.ShortName, m.Prefix,
		m.DurationMonths, m.InterestRatePerMonth, m.LoanEligibilityPct, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: scheme prefix %s already exists", apperrors.ErrDuplicate, m.Prefix)
		}
		return fmt.Errorf("failed to save scheme %s: %w", m.SchemeID, err)
	}
	return nil
}

// FindSchemeByID retrieves a scheme by its ID.
func (r *PgxSchemeRepository) FindSchemeByID(ctx context.Context, schemeID string) (*domain.Scheme, error) {
	query := `
		SELECT ` + schemeColumns + `
		FROM schemes
		WHERE scheme_id = $1;
	`
	m, err := scanScheme(r.conn(ctx).QueryRow(ctx, query, schemeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find scheme by ID %s: %w", schemeID, err)
	}

	d := mapping.ToDomainScheme(*m)
	return &d, nil
}

// ListSchemes retrieves the schemes of a company, optionally only active ones.
func (r *PgxSchemeRepository) ListSchemes(ctx context.Context, companyID string, onlyActive bool) ([]domain.Scheme, error) {
	query := `
		SELECT ` + schemeColumns + `
		FROM schemes
		WHERE company_id = $1
	`
	if onlyActive {
		query += " AND is_active = TRUE"
	}
	query += " ORDER BY scheme_name;"

	rows, err := r.conn(ctx).Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query schemes for company %s: %w", companyID, err)
	}
	defer rows.Close()

	schemes := []models.Scheme{}
	for rows.Next() {
		m, err := scanScheme(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scheme row: %w", err)
		}
		schemes = append(schemes, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating scheme rows: %w", rows.Err())
	}

	return mapping.ToDomainSchemeSlice(schemes), nil
}

// UpdateScheme updates an existing scheme's details.
func (r *PgxSchemeRepository) UpdateScheme(ctx context.Context, scheme domain.Scheme) error {
	m := mapping.ToModelScheme(scheme)

	query := `
		UPDATE schemes
		SET scheme_name = $2, short_name = $3, duration_months = $4, interest_rate_per_month = $5, loan_eligibility_pct = $6, is_active = $7, last_updated_at = $8, last_updated_by = $9
		WHERE scheme_id = $1;
	`
	cmdTag, err := r.conn(ctx).Exec(ctx, query,
		m.SchemeID, m.SchemeName, m.ShortName, m.DurationMonths, m.InterestRatePerMonth,
		m.LoanEligibilityPct, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update scheme %s: %w", m.SchemeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
