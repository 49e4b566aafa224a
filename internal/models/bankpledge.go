package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankPledgeStatus indicates the state of a bank transfer.
type BankPledgeStatus string

const (
	BankWithBank  BankPledgeStatus = "WITH_BANK"
	BankRedeemed  BankPledgeStatus = "REDEEMED"
	BankCancelled BankPledgeStatus = "CANCELLED"
)

// BankPledge represents a shop pledge re-pledged to a bank.
type BankPledge struct {
	BankPledgeID        string           `db:"bank_pledge_id"`
	CompanyID           string           `db:"company_id"`
	PledgeID            string           `db:"pledge_id"`
	BankDetailsID       *string          `db:"bank_details_id"` // Nullable
	BankName            string           `db:"bank_name"`
	BankBranch          string           `db:"bank_branch"`
	BankReferenceNo     string           `db:"bank_reference_no"`
	TransferDate        time.Time        `db:"transfer_date"`
	BankValuation       decimal.Decimal  `db:"bank_valuation"`
	LTVPercent          decimal.Decimal  `db:"ltv_percent"`
	BankLoanAmount      decimal.Decimal  `db:"bank_loan_amount"`
	BankInterestRate    decimal.Decimal  `db:"bank_interest_rate"`
	OriginalShopLoan    decimal.Decimal  `db:"original_shop_loan"`
	OutstandingInterest decimal.Decimal  `db:"outstanding_interest"`
	Status              BankPledgeStatus `db:"status"`
	Narration           string           `db:"narration"`
	AuditFields
}

// BankPledgeItem is the audit snapshot of a pledge item at transfer time.
type BankPledgeItem struct {
	BankPledgeItemID string          `db:"bank_pledge_item_id"`
	BankPledgeID     string          `db:"bank_pledge_id"`
	ItemName         string          `db:"item_name"`
	ItemType         string          `db:"item_type"`
	Quantity         int             `db:"quantity"`
	GrossWeight      decimal.Decimal `db:"gross_weight"`
	NetWeight        decimal.Decimal `db:"net_weight"`
	Purity           string          `db:"purity"`
	ItemValue        decimal.Decimal `db:"item_value"`
	AuditFields
}

// BankRedemption represents the buy-back of a bank pledge.
type BankRedemption struct {
	RedemptionID          string          `db:"redemption_id"`
	CompanyID             string          `db:"company_id"`
	BankPledgeID          string          `db:"bank_pledge_id"`
	RedemptionDate        time.Time       `db:"redemption_date"`
	AmountPaidToBank      decimal.Decimal `db:"amount_paid_to_bank"`
	InterestPaid          decimal.Decimal `db:"interest_paid"`
	BankCharges           decimal.Decimal `db:"bank_charges"`
	BankValuation         decimal.Decimal `db:"bank_valuation"`
	ActualRedemptionValue decimal.Decimal `db:"actual_redemption_value"`
	PriceDifference       decimal.Decimal `db:"price_difference"`
	FundingReceiptID      *string         `db:"funding_receipt_id"` // Nullable
	Narration             string          `db:"narration"`
	AuditFields
}
