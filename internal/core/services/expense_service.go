package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pawnsoft/pawnledger/internal/apperrors"
	"github.com/pawnsoft/pawnledger/internal/core/domain"
	portsrepo "github.com/pawnsoft/pawnledger/internal/core/ports/repositories"
	portssvc "github.com/pawnsoft/pawnledger/internal/core/ports/services"
	"github.com/pawnsoft/pawnledger/internal/dto"
	"github.com/pawnsoft/pawnledger/internal/middleware"
)

var (
	ErrExpenseNotFound        = errors.New("expense not found")
	ErrExpenseAlreadyReversed = errors.New("expense is already reversed")
)

// expenseNoPrefix is the numbering prefix for expense transactions.
// Expenses are numbered per month rather than per year.
const expenseNoPrefix = "EXP"

// expenseService records operating expenses and their reversals.
type expenseService struct {
	expenseRepo  portsrepo.ExpenseRepositoryFacade
	sequenceRepo portsrepo.SequenceRepository
	coaSvc       portssvc.COASvcFacade
	postingSvc   portssvc.PostingSvc
	txm          portsrepo.Transactor
}

// NewExpenseService creates a new expense service.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, sequenceRepo portsrepo.SequenceRepository, coaSvc portssvc.COASvcFacade, postingSvc portssvc.PostingSvc, txm portsrepo.Transactor) portssvc.ExpenseSvcFacade {
	return &expenseService{
		expenseRepo:  expenseRepo,
		sequenceRepo: sequenceRepo,
		coaSvc:       coaSvc,
		postingSvc:   postingSvc,
		txm:          txm,
	}
}

// Ensure expenseService implements the portssvc.ExpenseSvcFacade interface
var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// CreateExpense persists an expense transaction, generates its number and
// posts the two-line ledger entry.
// Implements portssvc.ExpenseSvcFacade
func (s *expenseService) CreateExpense(ctx context.Context, companyID string, req dto.CreateExpenseRequest, creatorUserID string) (*domain.ExpenseTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	// Both accounts must exist in this company's chart.
	if _, err := s.coaSvc.GetAccountByID(ctx, companyID, req.DebitAccountID); err != nil {
		return nil, err
	}
	if _, err := s.coaSvc.GetAccountByID(ctx, companyID, req.CreditAccountID); err != nil {
		return nil, err
	}

	period := req.ExpenseDate.Format("200601")
	seq, err := s.sequenceRepo.NextSequence(ctx, companyID, expenseNoPrefix, period)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate expense number: %w", err)
	}

	now := time.Now().UTC()
	expense := domain.ExpenseTransaction{
		ExpenseID:       uuid.NewString(),
		CompanyID:       companyID,
		TransactionNo:   fmt.Sprintf("%s-%s-%04d", expenseNoPrefix, period, seq),
		ExpenseDate:     req.ExpenseDate,
		Amount:          req.Amount,
		DebitAccountID:  req.DebitAccountID,
		CreditAccountID: req.CreditAccountID,
		Narration:       req.Narration,
		Status:          domain.ExpensePosted,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	// The expense row and its ledger entries commit together.
	err = s.txm.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
			return fmt.Errorf("failed to save expense: %w", err)
		}
		if err := s.postingSvc.PostExpenseEntries(ctx, expense, creatorUserID); err != nil {
			return fmt.Errorf("failed to post expense entries: %w", err)
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to create expense", slog.String("error", err.Error()), slog.String("transaction_no", expense.TransactionNo))
		return nil, err
	}

	logger.Info("Expense created",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("transaction_no", expense.TransactionNo),
		slog.String("amount", expense.Amount.String()),
	)
	return &expense, nil
}

// ReverseExpense reverses a posted expense's ledger entries.
// Implements portssvc.ExpenseSvcFacade
func (s *expenseService) ReverseExpense(ctx context.Context, companyID string, expenseID string, userID string) (*domain.ExpenseTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	expense, err := s.GetExpenseByID(ctx, companyID, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.Status == domain.ExpenseReversed {
		return nil, fmt.Errorf("%w: %s", ErrExpenseAlreadyReversed, expense.TransactionNo)
	}

	// Reversal entries and the status flip commit as one unit.
	var reversed int
	err = s.txm.WithTransaction(ctx, func(ctx context.Context) error {
		reversed, err = s.postingSvc.ReverseEntries(ctx, companyID, domain.RefExpense, expenseID, userID)
		if err != nil {
			return fmt.Errorf("failed to reverse expense entries: %w", err)
		}
		if err := s.expenseRepo.UpdateExpenseStatus(ctx, expenseID, domain.ExpenseReversed, userID); err != nil {
			return fmt.Errorf("failed to update expense status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	expense.Status = domain.ExpenseReversed
	logger.Info("Expense reversed",
		slog.String("expense_id", expenseID),
		slog.String("transaction_no", expense.TransactionNo),
		slog.Int("entries_reversed", reversed),
	)
	return expense, nil
}

// GetExpenseByID retrieves a specific expense transaction.
// Implements portssvc.ExpenseSvcFacade
func (s *expenseService) GetExpenseByID(ctx context.Context, companyID string, expenseID string) (*domain.ExpenseTransaction, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrExpenseNotFound, expenseID)
		}
		return nil, err
	}
	if expense.CompanyID != companyID {
		return nil, fmt.Errorf("%w: %s", ErrExpenseNotFound, expenseID)
	}
	return expense, nil
}

// ListExpenses retrieves a paginated list of expenses within a date range.
// Implements portssvc.ExpenseSvcFacade
func (s *expenseService) ListExpenses(ctx context.Context, companyID string, params dto.ListExpensesParams) (*dto.ListExpensesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 100
	}
	if limit > 500 {
		limit = 500
	}

	expenses, err := s.expenseRepo.ListExpenses(ctx, companyID, params.FromDate, params.ToDate, limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return &dto.ListExpensesResponse{Expenses: dto.ToExpenseResponses(expenses)}, nil
}
