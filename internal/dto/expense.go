package dto

import (
	"time"

	"github.com/pawnsoft/pawnledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the payload for recording an expense payment.
type CreateExpenseRequest struct {
	ExpenseDate     time.Time       `json:"expenseDate" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	DebitAccountID  string          `json:"debitAccountID" binding:"required"`
	CreditAccountID string          `json:"creditAccountID" binding:"required"`
	Narration       string          `json:"narration"`
}

// ListExpensesParams defines filters and pagination for expense listing.
type ListExpensesParams struct {
	FromDate *time.Time `form:"fromDate" time_format:"2006-01-02"`
	ToDate   *time.Time `form:"toDate" time_format:"2006-01-02"`
	Limit    int        `form:"limit"`
	Offset   int        `form:"offset"`
}

// ExpenseResponse defines the data returned for an expense transaction.
type ExpenseResponse struct {
	ExpenseID       string               `json:"expenseID"`
	TransactionNo   string               `json:"transactionNo"`
	ExpenseDate     time.Time            `json:"expenseDate"`
	Amount          decimal.Decimal      `json:"amount"`
	DebitAccountID  string               `json:"debitAccountID"`
	CreditAccountID string               `json:"creditAccountID"`
	Narration       string               `json:"narration"`
	Status          domain.ExpenseStatus `json:"status"`
}

// ListExpensesResponse wraps a page of expenses.
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts a domain.ExpenseTransaction to ExpenseResponse DTO.
func ToExpenseResponse(e *domain.ExpenseTransaction) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:       e.ExpenseID,
		TransactionNo:   e.TransactionNo,
		ExpenseDate:     e.ExpenseDate,
		Amount:          e.Amount,
		DebitAccountID:  e.DebitAccountID,
		CreditAccountID: e.CreditAccountID,
		Narration:       e.Narration,
		Status:          e.Status,
	}
}

// ToExpenseResponses converts a slice of domain.ExpenseTransaction to []ExpenseResponse.
func ToExpenseResponses(es []domain.ExpenseTransaction) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(es))
	for i := range es {
		responses[i] = ToExpenseResponse(&es[i])
	}
	return responses
}
