package models

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

// Pledge represents a loan secured against pawned items.
type Pledge struct {
	PledgeID           string          `db:"pledge_id"`
	CompanyID          string          `db:"company_id"`
	PledgeNo           string          `db:"pledge_no"` // Unique per company
	CustomerID         string          `db:"customer_id"`
	SchemeID           string          `db:"scheme_id"`
	PledgeDate         time.Time       `db:"pledge_date"`
	DueDate            time.Time       `db:"due_date"`
	LoanAmount         decimal.Decimal `db:"loan_amount"`
	InterestRate       decimal.Decimal `db:"interest_rate"`
	FirstMonthInterest decimal.Decimal `db:"first_month_interest"`
	MaximumValue       decimal.Decimal `db:"maximum_value"`
	TotalWeight        decimal.Decimal `db:"total_weight"`
	Status             PledgeStatus    `db:"status"`
	CloseDate          *time.Time      `db:"close_date"` // Nullable
	Narration          string          `db:"narration"`
	AuditFields
	TotalPrincipalReceived decimal.Decimal `db:"total_principal_received"`
	TotalInterestReceived  decimal.Decimal `db:"total_interest_received"`
}

// PledgeItem represents one pawned article under a pledge.
type PledgeItem struct {
	PledgeItemID string          `db:"pledge_item_id"`
	PledgeID     string          `db:"pledge_id"`
	ItemName     string          `db:"item_name"`
	ItemType     string          `db:"item_type"`
	Quantity     int             `db:"quantity"`
	GrossWeight  decimal.Decimal `db:"gross_weight"`
	NetWeight    decimal.Decimal `db:"net_weight"`
	Purity       string          `db:"purity"`
	ItemValue    decimal.Decimal `db:"item_value"`
	Remarks      string          `db:"remarks"`
	AuditFields
}
