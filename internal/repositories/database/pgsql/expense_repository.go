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

const expenseColumns = `expense_id, company_id, transaction_no, expense_date, amount, debit_account_id, credit_account_id, narration, status, created_at, created_by, last_updated_at, last_updated_by`

type PgxExpenseRepository struct {
	BaseRepository
}

// NewPgxExpenseRepository creates a new repository for expense data.
func NewPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryWithTx {
	return &PgxExpenseRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxExpenseRepository implements portsrepo.ExpenseRepositoryWithTx
var _ portsrepo.ExpenseRepositoryWithTx = (*PgxExpenseRepository)(nil)

func scanExpense(row pgx.Row) (*models.ExpenseTransaction, error) {
	var m models.ExpenseTransaction
	err := row.Scan(
		&m.ExpenseID,
		&m.CompanyID,
		&m.TransactionNo,
		&m.ExpenseDate,
		&m.Amount,
		&m.DebitAccountID,
		&m.CreditAccountID,
		&m.Narration,
		&m.Status,
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

// SaveExpense persists a new expense transaction.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.ExpenseTransaction) error {
	m := mapping.ToModelExpense(expense)

	query := `
		INSERT INTO expense_transactions (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.conn(ctx).Exec(ctx, query,
		m.ExpenseID, m.CompanyID, m.TransactionNo, m.ExpenseDate, m.Amount,
		m.DebitAccountID, m.CreditAccountID, m.Narration, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: transaction number %s already exists", apperrors.ErrDuplicate, m.TransactionNo)
		}
		return fmt.Errorf("failed to save expense %s: %w", m.ExpenseID, err)
	}
	return nil
}

// FindExpenseByID retrieves an expense transaction by its ID.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.ExpenseTransaction, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expense_transactions
		WHERE expense_id = $1;
	`
	m, err := scanExpense(r.conn(ctx).QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense by ID %s: %w", expenseID, err)
	}

	d := mapping.ToDomainExpense(*m)
	return &d, nil
}

// ListExpenses retrieves a paginated list of expenses for a company within an
// optional date range.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, companyID string, from, to *time.Time, limit int, offset int) ([]domain.ExpenseTransaction, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + expenseColumns + `
		FROM expense_transactions
		WHERE company_id = $1
	`
	args := []any{companyID}
	argPos := 2
	if from != nil {
		query += fmt.Sprintf(" AND expense_date >= $%d", argPos)
		args = append(args, *from)
		argPos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND expense_date <= $%d", argPos)
		args = append(args, *to)
		argPos++
	}
	query += fmt.Sprintf(" ORDER BY expense_date DESC, transaction_no DESC LIMIT $%d OFFSET $%d;", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses for company %s: %w", companyID, err)
	}
	defer rows.Close()

	expenses := []models.ExpenseTransaction{}
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", rows.Err())
	}

	return mapping.ToDomainExpenseSlice(expenses), nil
}

// UpdateExpenseStatus updates the status of an expense transaction.
func (r *PgxExpenseRepository) UpdateExpenseStatus(ctx context.Context, expenseID string, status domain.ExpenseStatus, updatedBy string) error {
	query := `
		UPDATE expense_transactions
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE expense_id = $1;
	`
	cmdTag, err := r.conn(ctx).Exec(ctx, query, expenseID, string(status), time.Now().UTC(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update status for expense %s: %w", expenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
