package dto

import (
	"time"

	"github.com/pawnsoft/pawnledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PledgeItemRequest defines one pawned article in a pledge creation payload.
type PledgeItemRequest struct {
	ItemName    string          `json:"itemName" binding:"required"`
	ItemType    string          `json:"itemType" binding:"required"`
	Quantity    int             `json:"quantity" binding:"required,min=1"`
	GrossWeight decimal.Decimal `json:"grossWeight"`
	NetWeight   decimal.Decimal `json:"netWeight"`
	Purity      string          `json:"purity"`
	ItemValue   decimal.Decimal `json:"itemValue"`
	Remarks     string          `json:"remarks"`
}

// CreatePledgeRequest defines the payload for creating a pledge.
// InterestRate and FirstMonthInterest fall back to the scheme's rate when omitted.
type CreatePledgeRequest struct {
	CustomerID         string              `json:"customerID" binding:"required"`
	SchemeID           string              `json:"schemeID" binding:"required"`
	PledgeDate         time.Time           `json:"pledgeDate" binding:"required"`
	LoanAmount         decimal.Decimal     `json:"loanAmount" binding:"required"`
	InterestRate       *decimal.Decimal    `json:"interestRate"`
	FirstMonthInterest *decimal.Decimal    `json:"firstMonthInterest"`
	MaximumValue       decimal.Decimal     `json:"maximumValue" binding:"required"`
	PaymentAccountCode string              `json:"paymentAccountCode"` // defaults to cash
	Items              []PledgeItemRequest `json:"items" binding:"required,min=1,dive"`
	Narration          string              `json:"narration"`
}

// ListPledgesParams defines filters and pagination for pledge listing.
type ListPledgesParams struct {
	Status     *string `form:"status"`
	CustomerID *string `form:"customerID"`
	SchemeID   *string `form:"schemeID"`
	Limit      int     `form:"limit"`
	Offset     int     `form:"offset"`
}

// PledgeItemResponse defines the data returned for a pledge item.
type PledgeItemResponse struct {
	PledgeItemID string          `json:"pledgeItemID"`
	ItemName     string          `json:"itemName"`
	ItemType     string          `json:"itemType"`
	Quantity     int             `json:"quantity"`
	GrossWeight  decimal.Decimal `json:"grossWeight"`
	NetWeight    decimal.Decimal `json:"netWeight"`
	Purity       string          `json:"purity"`
	ItemValue    decimal.Decimal `json:"itemValue"`
}

// PledgeResponse defines the data returned for a pledge.
type PledgeResponse struct {
	PledgeID           string              `json:"pledgeID"`
	PledgeNo           string              `json:"pledgeNo"`
	CustomerID         string              `json:"customerID"`
	SchemeID           string              `json:"schemeID"`
	PledgeDate         time.Time           `json:"pledgeDate"`
	DueDate            time.Time           `json:"dueDate"`
	LoanAmount         decimal.Decimal     `json:"loanAmount"`
	InterestRate       decimal.Decimal     `json:"interestRate"`
	FirstMonthInterest decimal.Decimal     `json:"firstMonthInterest"`
	MaximumValue       decimal.Decimal     `json:"maximumValue"`
	Status             domain.PledgeStatus `json:"status"`
	CloseDate          *time.Time          `json:"closeDate,omitempty"`
	Items              []PledgeItemResponse `json:"items,omitempty"`
}

// ListPledgesResponse wraps a page of pledges.
type ListPledgesResponse struct {
	Pledges []PledgeResponse `json:"pledges"`
}

// OutstandingResponse defines the repayment position returned for a pledge.
type OutstandingResponse struct {
	PledgeID             string          `json:"pledgeID"`
	PledgeNo             string          `json:"pledgeNo"`
	AsOf                 time.Time       `json:"asOf"`
	OutstandingPrincipal decimal.Decimal `json:"outstandingPrincipal"`
	OutstandingInterest  decimal.Decimal `json:"outstandingInterest"`
	TotalOutstanding     decimal.Decimal `json:"totalOutstanding"`
}

// ToPledgeItemResponse converts a domain.PledgeItem to PledgeItemResponse DTO.
func ToPledgeItemResponse(item *domain.PledgeItem) PledgeItemResponse {
	return PledgeItemResponse{
		PledgeItemID: item.PledgeItemID,
		ItemName:     item.ItemName,
		ItemType:     item.ItemType,
		Quantity:     item.Quantity,
		GrossWeight:  item.GrossWeight,
		NetWeight:    item.NetWeight,
		Purity:       item.Purity,
		ItemValue:    item.ItemValue,
	}
}

// ToPledgeResponse converts a domain.Pledge and its items to PledgeResponse DTO.
func ToPledgeResponse(p *domain.Pledge, items []domain.PledgeItem) PledgeResponse {
	resp := PledgeResponse{
		PledgeID:           p.PledgeID,
		PledgeNo:           p.PledgeNo,
		CustomerID:         p.CustomerID,
		SchemeID:           p.SchemeID,
		PledgeDate:         p.PledgeDate,
		DueDate:            p.DueDate,
		LoanAmount:         p.LoanAmount,
		InterestRate:       p.InterestRate,
		FirstMonthInterest: p.FirstMonthInterest,
		MaximumValue:       p.MaximumValue,
		Status:             p.Status,
		CloseDate:          p.CloseDate,
	}
	for i := range items {
		resp.Items = append(resp.Items, ToPledgeItemResponse(&items[i]))
	}
	return resp
}
