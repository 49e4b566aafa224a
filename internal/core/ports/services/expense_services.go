package services

import (
	"context"

	"github.com/pawnsoft/pawnledger/internal/core/domain"
	"github.com/pawnsoft/pawnledger/internal/dto"
)

// ExpenseReaderSvc defines read operations for expense data
type ExpenseReaderSvc interface {
	// GetExpenseByID retrieves a specific expense transaction.
	GetExpenseByID(ctx context.Context, companyID string, expenseID string) (*domain.ExpenseTransaction, error)

	// ListExpenses retrieves a paginated list of expenses within a date range.
	ListExpenses(ctx context.Context, companyID string, params dto.ListExpensesParams) (*dto.ListExpensesResponse, error)
}

// ExpenseWriterSvc defines write operations for expense data
type ExpenseWriterSvc interface {
	// CreateExpense persists an expense transaction, generates its number and
	// posts the two-line ledger entry.
	CreateExpense(ctx context.Context, companyID string, req dto.CreateExpenseRequest, creatorUserID string) (*domain.ExpenseTransaction, error)

	// ReverseExpense reverses a posted expense's ledger entries.
	ReverseExpense(ctx context.Context, companyID string, expenseID string, userID string) (*domain.ExpenseTransaction, error)
}

// ExpenseSvcFacade combines all expense-related service interfaces
// This is a facade for clients that need access to all operations
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
