package dto

import (
	"time"

	"github.com/pawnsoft/pawnledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBankTransferRequest defines the payload for transferring a pledge to a bank.
// LTVPercent must lie between 50 and 95; the bank loan is valuation times LTV.
// Either bankDetailsID or a free-text bankName must be supplied.
type CreateBankTransferRequest struct {
	PledgeID         string          `json:"pledgeID" binding:"required"`
	BankDetailsID    *string         `json:"bankDetailsID"`
	BankName         string          `json:"bankName"`
	BankBranch       string          `json:"bankBranch"`
	BankReferenceNo  string          `json:"bankReferenceNo"`
	TransferDate     time.Time       `json:"transferDate" binding:"required"`
	BankValuation    decimal.Decimal `json:"bankValuation" binding:"required"`
	LTVPercent       decimal.Decimal `json:"ltvPercent" binding:"required"`
	BankInterestRate decimal.Decimal `json:"bankInterestRate"`
	Narration        string          `json:"narration"`
}

// RedeemBankPledgeRequest defines the payload for buying a pledge back from the bank.
// ActualRedemptionValue is what the jewels realized on buy-back; when omitted
// it defaults to the amount paid to the bank.
type RedeemBankPledgeRequest struct {
	RedemptionDate        time.Time       `json:"redemptionDate" binding:"required"`
	AmountPaidToBank      decimal.Decimal `json:"amountPaidToBank" binding:"required"`
	InterestPaid          decimal.Decimal `json:"interestPaid"`
	BankCharges           decimal.Decimal `json:"bankCharges"`
	ActualRedemptionValue decimal.Decimal `json:"actualRedemptionValue"`
	Narration             string          `json:"narration"`
}

// RedeemWithReceiptRequest funds a bank redemption from a posted customer
// receipt, optionally topped up by the business.
type RedeemWithReceiptRequest struct {
	ReceiptID                 string          `json:"receiptID" binding:"required"`
	RedemptionDate            time.Time       `json:"redemptionDate" binding:"required"`
	UseReceiptAmount          decimal.Decimal `json:"useReceiptAmount" binding:"required"`
	AdditionalBusinessPayment decimal.Decimal `json:"additionalBusinessPayment"`
	InterestPaid              decimal.Decimal `json:"interestPaid"`
	BankCharges               decimal.Decimal `json:"bankCharges"`
	ActualRedemptionValue     decimal.Decimal `json:"actualRedemptionValue"`
	Narration                 string          `json:"narration"`
}

// ListBankPledgesParams defines filters and pagination for bank pledge listing.
type ListBankPledgesParams struct {
	Status *string `form:"status"`
	Limit  int     `form:"limit"`
	Offset int     `form:"offset"`
}

// BankPledgeResponse defines the data returned for a bank pledge.
type BankPledgeResponse struct {
	BankPledgeID        string                  `json:"bankPledgeID"`
	PledgeID            string                  `json:"pledgeID"`
	BankDetailsID       *string                 `json:"bankDetailsID,omitempty"`
	BankName            string                  `json:"bankName"`
	BankBranch          string                  `json:"bankBranch"`
	BankReferenceNo     string                  `json:"bankReferenceNo"`
	TransferDate        time.Time               `json:"transferDate"`
	BankValuation       decimal.Decimal         `json:"bankValuation"`
	LTVPercent          decimal.Decimal         `json:"ltvPercent"`
	BankLoanAmount      decimal.Decimal         `json:"bankLoanAmount"`
	OriginalShopLoan    decimal.Decimal         `json:"originalShopLoan"`
	OutstandingInterest decimal.Decimal         `json:"outstandingInterest"`
	Status              domain.BankPledgeStatus `json:"status"`
}

// ListBankPledgesResponse wraps a page of bank pledges.
type ListBankPledgesResponse struct {
	BankPledges []BankPledgeResponse `json:"bankPledges"`
}

// BankRedemptionResponse defines the data returned for a bank redemption.
type BankRedemptionResponse struct {
	RedemptionID          string          `json:"redemptionID"`
	BankPledgeID          string          `json:"bankPledgeID"`
	RedemptionDate        time.Time       `json:"redemptionDate"`
	AmountPaidToBank      decimal.Decimal `json:"amountPaidToBank"`
	InterestPaid          decimal.Decimal `json:"interestPaid"`
	BankCharges           decimal.Decimal `json:"bankCharges"`
	BankValuation         decimal.Decimal `json:"bankValuation"`
	ActualRedemptionValue decimal.Decimal `json:"actualRedemptionValue"`
	PriceDifference       decimal.Decimal `json:"priceDifference"`
	FundingReceiptID      *string         `json:"fundingReceiptID,omitempty"`
}

// ToBankPledgeResponse converts a domain.BankPledge to BankPledgeResponse DTO.
func ToBankPledgeResponse(bp *domain.BankPledge) BankPledgeResponse {
	return BankPledgeResponse{
		BankPledgeID:        bp.BankPledgeID,
		PledgeID:            bp.PledgeID,
		BankDetailsID:       bp.BankDetailsID,
		BankName:            bp.BankName,
		BankBranch:          bp.BankBranch,
		BankReferenceNo:     bp.BankReferenceNo,
		TransferDate:        bp.TransferDate,
		BankValuation:       bp.BankValuation,
		LTVPercent:          bp.LTVPercent,
		BankLoanAmount:      bp.BankLoanAmount,
		OriginalShopLoan:    bp.OriginalShopLoan,
		OutstandingInterest: bp.OutstandingInterest,
		Status:              bp.Status,
	}
}

// ToBankPledgeResponses converts a slice of domain.BankPledge to []BankPledgeResponse.
func ToBankPledgeResponses(bps []domain.BankPledge) []BankPledgeResponse {
	responses := make([]BankPledgeResponse, len(bps))
	for i := range bps {
		responses[i] = ToBankPledgeResponse(&bps[i])
	}
	return responses
}

// ToBankRedemptionResponse converts a domain.BankRedemption to BankRedemptionResponse DTO.
func ToBankRedemptionResponse(r *domain.BankRedemption) BankRedemptionResponse {
	return BankRedemptionResponse{
		RedemptionID:          r.RedemptionID,
		BankPledgeID:          r.BankPledgeID,
		RedemptionDate:        r.RedemptionDate,
		AmountPaidToBank:      r.AmountPaidToBank,
		InterestPaid:          r.InterestPaid,
		BankCharges:           r.BankCharges,
		BankValuation:         r.BankValuation,
		ActualRedemptionValue: r.ActualRedemptionValue,
		PriceDifference:       r.PriceDifference,
		FundingReceiptID:      r.FundingReceiptID,
	}
}
