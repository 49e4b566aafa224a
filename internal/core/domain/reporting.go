package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single row in a trial balance report
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// OutstandingSummary represents the repayment position of one pledge as of a
// given date, including accrued interest.
type OutstandingSummary struct {
	PledgeID             string          `json:"pledgeID"`
	PledgeNo             string          `json:"pledgeNo"`
	CustomerID           string          `json:"customerID"`
	Status               PledgeStatus    `json:"status"`
	LoanAmount           decimal.Decimal `json:"loanAmount"`
	OutstandingPrincipal decimal.Decimal `json:"outstandingPrincipal"`
	OutstandingInterest  decimal.Decimal `json:"outstandingInterest"`
	TotalOutstanding     decimal.Decimal `json:"totalOutstanding"`
	AsOf                 time.Time       `json:"asOf"`
}
