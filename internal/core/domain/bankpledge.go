package domain

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

// BankPledge records a shop pledge re-pledged to a bank for refinancing.
type BankPledge struct {
	BankPledgeID        string           `json:"bankPledgeID"` // Primary Key (e.g., UUID)
	CompanyID           string           `json:"companyID"`
	PledgeID            string           `json:"pledgeID"`                // FK -> Pledge
	BankDetailsID       *string          `json:"bankDetailsID,omitempty"` // FK -> BankDetails
	BankName            string           `json:"bankName"`
	BankBranch          string           `json:"bankBranch"`
	BankReferenceNo     string           `json:"bankReferenceNo"`
	TransferDate        time.Time        `json:"transferDate"`
	BankValuation       decimal.Decimal  `json:"bankValuation"`
	LTVPercent          decimal.Decimal  `json:"ltvPercent"` // 50..95
	BankLoanAmount      decimal.Decimal  `json:"bankLoanAmount"`
	BankInterestRate    decimal.Decimal  `json:"bankInterestRate"` // percent per month
	OriginalShopLoan    decimal.Decimal  `json:"originalShopLoan"`
	OutstandingInterest decimal.Decimal  `json:"outstandingInterest"` // at transfer time
	Status              BankPledgeStatus `json:"status"`
	Narration           string           `json:"narration"`
	AuditFields
}

// BankPledgeItem is an audit snapshot of a pledge item taken at transfer time.
type BankPledgeItem struct {
	BankPledgeItemID string          `json:"bankPledgeItemID"`
	BankPledgeID     string          `json:"bankPledgeID"`
	ItemName         string          `json:"itemName"`
	ItemType         string          `json:"itemType"`
	Quantity         int             `json:"quantity"`
	GrossWeight      decimal.Decimal `json:"grossWeight"`
	NetWeight        decimal.Decimal `json:"netWeight"`
	Purity           string          `json:"purity"`
	ItemValue        decimal.Decimal `json:"itemValue"`
	AuditFields
}

// BankRedemption records the buy-back of a bank pledge.
type BankRedemption struct {
	RedemptionID     string          `json:"redemptionID"` // Primary Key (e.g., UUID)
	CompanyID        string          `json:"companyID"`
	BankPledgeID     string          `json:"bankPledgeID"`
	RedemptionDate   time.Time       `json:"redemptionDate"`
	AmountPaidToBank decimal.Decimal `json:"amountPaidToBank"`
	InterestPaid     decimal.Decimal `json:"interestPaid"`
	BankCharges      decimal.Decimal `json:"bankCharges"`
	// BankValuation is copied from the bank pledge at redemption time;
	// ActualRedemptionValue is what the jewels realized when bought back.
	BankValuation         decimal.Decimal `json:"bankValuation"`
	ActualRedemptionValue decimal.Decimal `json:"actualRedemptionValue"`
	PriceDifference       decimal.Decimal `json:"priceDifference"` // actual - valuation; may be negative
	FundingReceiptID      *string         `json:"fundingReceiptID,omitempty"`
	Narration             string          `json:"narration"`
	AuditFields
}
