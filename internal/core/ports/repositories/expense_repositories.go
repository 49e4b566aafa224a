package repositories

import (
	"context"
	"time"

	"github.com/pawnsoft/pawnledger/internal/core/domain"
)

// ExpenseReader defines read operations for expense transaction data
type ExpenseReader interface {
	// FindExpenseByID retrieves a specific expense transaction by its unique identifier.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.ExpenseTransaction, error)

	// ListExpenses retrieves a paginated list of expenses for a company within
	// an optional date range.
	ListExpenses(ctx context.Context, companyID string, from, to *time.Time, limit int, offset int) ([]domain.ExpenseTransaction, error)
}

// ExpenseWriter defines write operations for expense transaction data
type ExpenseWriter interface {
	// SaveExpense persists a new expense transaction.
	SaveExpense(ctx context.Context, expense domain.ExpenseTransaction) error

	// UpdateExpenseStatus updates the status of an expense transaction.
	UpdateExpenseStatus(ctx context.Context, expenseID string, status domain.ExpenseStatus, updatedBy string) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
// This is a facade for clients that need access to all operations
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}

// ExpenseRepositoryWithTx extends ExpenseRepositoryFacade with transaction capabilities
type ExpenseRepositoryWithTx interface {
	ExpenseRepositoryFacade
	Transactor
}
