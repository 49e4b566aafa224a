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

const customerColumns = `customer_id, company_id, customer_no, name, phone, address, id_proof_type, id_proof_no, receivable_account_id, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxCustomerRepository struct {
	BaseRepository
}

// NewPgxCustomerRepository creates a new repository for customer data.
func NewPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryWithTx {
	return &PgxCustomerRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxCustomerRepository implements portsrepo.CustomerRepositoryWithTx
var _ portsrepo.CustomerRepositoryWithTx = (*PgxCustomerRepository)(nil)

func scanCustomer(row pgx.Row) (*models.Customer, error) {
	var m models.Customer
	err := row.Scan(
		&m.CustomerID,
		&m.CompanyID,
		&m.CustomerNo,
		&m.Name,
		&m.Phone,
		&m.Address,
		&m.IDProofType,
		&m.IDProofNo,
		&m.ReceivableAccountID,
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

// SaveCustomer persists a new customer, assigning the next customer number
// within the company. The number comes from a subquery inside the insert so
// concurrent registrations cannot collide.
func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer *domain.Customer) error {
	m := mapping.ToModelCustomer(*customer)

	query := `
		INSERT INTO customers (` + customerColumns + `)
		SELECT $1, $2, COALESCE(MAX(customer_no), 0) + 1, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		FROM customers
		WHERE company_id = $2
		RETURNING customer_no;
	`
	err := r.conn(ctx).QueryRow(ctx, query,
		m.CustomerID, m.CompanyID, m.Name, m.Phone, m.Address,
		m.IDProofType, m.IDProofNo, m.ReceivableAccountID, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&customer.CustomerNo)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: customer %s already exists", apperrors.ErrDuplicate, m.CustomerID)
		}
		return fmt.Errorf("failed to save customer %s: %w", m.CustomerID, err)
	}
	return nil
}

// FindCustomerByID retrieves a customer by their ID.
func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE customer_id = $1;
	`
	m, err := scanCustomer(r.conn(ctx).QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer by ID %s: %w", customerID, err)
	}

	d := mapping.ToDomainCustomer(*m)
	return &d, nil
}

// ListCustomers retrieves a paginated list of customers for a company.
func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, companyID string, limit int, offset int) ([]domain.Customer, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE company_id = $1
		ORDER BY customer_no
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.conn(ctx).Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers for company %s: %w", companyID, err)
	}
	defer rows.Close()

	customers := []models.Customer{}
	for rows.Next() {
		m, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", rows.Err())
	}

	return mapping.ToDomainCustomerSlice(customers), nil
}

// UpdateCustomer updates an existing customer's details.
func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)

	query := `
		UPDATE customers
		SET name = $2, phone = $3, address = $4, id_proof_type = $5, id_proof_no = $6, is_active = $7, last_updated_at = $8, last_updated_by = $9
		WHERE customer_id = $1;
	`
	cmdTag, err := r.conn(ctx).Exec(ctx, query,
		m.CustomerID, m.Name, m.Phone, m.Address, m.IDProofType, m.IDProofNo,
		m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer %s: %w", m.CustomerID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetReceivableAccount records the customer's dedicated receivable account.
func (r *PgxCustomerRepository) SetReceivableAccount(ctx context.Context, customerID string, accountID string, updatedBy string) error {
	query := `
		UPDATE customers
		SET receivable_account_id = $2, last_updated_at = $3, last_updated_by = $4
		WHERE customer_id = $1;
	`
	cmdTag, err := r.conn(ctx).Exec(ctx, query, customerID, accountID, time.Now().UTC(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to set receivable account for customer %s: %w", customerID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
