package dto

import (
	"github.com/pawnsoft/pawnledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the payload for creating a chart-of-accounts entry.
type CreateAccountRequest struct {
	AccountCode     string             `json:"accountCode" binding:"required"`
	AccountName     string             `json:"accountName" binding:"required"`
	AccountType     domain.AccountType `json:"accountType" binding:"required,oneof=Assets Liabilities Equity Income Expenses"`
	AccountCategory string             `json:"accountCategory"`
	ParentAccountID *string            `json:"parentAccountID"`
	OpeningBalance  decimal.Decimal    `json:"openingBalance"`
	Description     string             `json:"description"`
}

// ListAccountsParams defines pagination for account listing.
type ListAccountsParams struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID       string             `json:"accountID"`
	AccountCode     string             `json:"accountCode"`
	AccountName     string             `json:"accountName"`
	AccountType     domain.AccountType `json:"accountType"`
	AccountCategory string             `json:"accountCategory"`
	Balance         decimal.Decimal    `json:"balance"`
	IsActive        bool               `json:"isActive"`
}

// ListAccountsResponse wraps a page of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       a.AccountID,
		AccountCode:     a.AccountCode,
		AccountName:     a.AccountName,
		AccountType:     a.AccountType,
		AccountCategory: a.AccountCategory,
		Balance:         a.Balance,
		IsActive:        a.IsActive,
	}
}

// ToAccountResponses converts a slice of domain.Account to []AccountResponse.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		responses[i] = ToAccountResponse(&a)
	}
	return responses
}
