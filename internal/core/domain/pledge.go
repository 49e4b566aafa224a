package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PledgeStatus indicates the lifecycle state of a pledge.
type PledgeStatus string

const (
	PledgeActive    PledgeStatus = "Active"
	PledgeClosed    PledgeStatus = "Closed"
	PledgeRedeemed  PledgeStatus = "Redeemed"
	PledgeForfeited PledgeStatus = "Forfeited"
	PledgeWithBank  PledgeStatus = "WITH_BANK"
)

// CanTransitionTo reports whether the status machine allows moving from s to
// next. Transitions are forward-only; no state returns to Active except a
// cancelled bank transfer.
func (s PledgeStatus) CanTransitionTo(next PledgeStatus) bool {
	switch s {
	case PledgeActive:
		return next == PledgeClosed || next == PledgeRedeemed ||
			next == PledgeForfeited || next == PledgeWithBank
	case PledgeWithBank:
		return next == PledgeRedeemed || next == PledgeActive
	default:
		return false
	}
}

// Pledge is a loan secured against pawned items.
type Pledge struct {
	PledgeID           string          `json:"pledgeID"` // Primary Key (e.g., UUID)
	CompanyID          string          `json:"companyID"`
	PledgeNo           string          `json:"pledgeNo"` // e.g. GLD-2025-0001, unique per company
	CustomerID         string          `json:"customerID"`
	SchemeID           string          `json:"schemeID"`
	PledgeDate         time.Time       `json:"pledgeDate"`
	DueDate            time.Time       `json:"dueDate"`
	LoanAmount         decimal.Decimal `json:"loanAmount"`
	InterestRate       decimal.Decimal `json:"interestRate"` // percent per month
	FirstMonthInterest decimal.Decimal `json:"firstMonthInterest"`
	MaximumValue       decimal.Decimal `json:"maximumValue"` // appraised value of the items
	TotalWeight        decimal.Decimal `json:"totalWeight"`  // grams
	Status             PledgeStatus    `json:"status"`
	CloseDate          *time.Time      `json:"closeDate,omitempty"`
	Narration          string          `json:"narration"`
	AuditFields
	TotalPrincipalReceived decimal.Decimal `json:"totalPrincipalReceived"` // Accumulated from posted receipts
	TotalInterestReceived  decimal.Decimal `json:"totalInterestReceived"`  // Net of discounts
}

// PledgeItem is one pawned article under a pledge.
type PledgeItem struct {
	PledgeItemID string          `json:"pledgeItemID"`
	PledgeID     string          `json:"pledgeID"`
	ItemName     string          `json:"itemName"`
	ItemType     string          `json:"itemType"` // Gold, Silver, ...
	Quantity     int             `json:"quantity"`
	GrossWeight  decimal.Decimal `json:"grossWeight"`
	NetWeight    decimal.Decimal `json:"netWeight"`
	Purity       string          `json:"purity"`
	ItemValue    decimal.Decimal `json:"itemValue"`
	Remarks      string          `json:"remarks"`
	AuditFields
}

// PledgeBalance is the running repayment position of a pledge.
type PledgeBalance struct {
	PledgeID               string          `json:"pledgeID"`
	LoanAmount             decimal.Decimal `json:"loanAmount"`
	TotalPrincipalReceived decimal.Decimal `json:"totalPrincipalReceived"`
	TotalInterestReceived  decimal.Decimal `json:"totalInterestReceived"`
	OutstandingPrincipal   decimal.Decimal `json:"outstandingPrincipal"`
	OutstandingInterest    decimal.Decimal `json:"outstandingInterest"`
	AsOf                   time.Time       `json:"asOf"`
}
