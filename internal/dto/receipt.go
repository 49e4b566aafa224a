package dto

import (
	"time"

	"github.com/pawnsoft/pawnledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReceiptItemRequest defines the allocation of a receipt against one pledge.
type ReceiptItemRequest struct {
	PledgeID      string          `json:"pledgeID" binding:"required"`
	PaidPrincipal decimal.Decimal `json:"paidPrincipal"`
	PaidInterest  decimal.Decimal `json:"paidInterest"`
	PaidDiscount  decimal.Decimal `json:"paidDiscount"`
	PaidPenalty   decimal.Decimal `json:"paidPenalty"`
	PaymentType   string          `json:"paymentType" binding:"required"`
}

// CreateReceiptRequest defines the payload for creating a draft receipt.
type CreateReceiptRequest struct {
	CustomerID    string               `json:"customerID" binding:"required"`
	ReceiptDate   time.Time            `json:"receiptDate" binding:"required"`
	ReceiptAmount decimal.Decimal      `json:"receiptAmount" binding:"required"`
	PaymentMode   string               `json:"paymentMode"`
	Items         []ReceiptItemRequest `json:"items" binding:"required,min=1,dive"`
	Narration     string               `json:"narration"`
}

// ListReceiptsParams defines filters and pagination for receipt listing.
type ListReceiptsParams struct {
	Status     *string    `form:"status"`
	CustomerID *string    `form:"customerID"`
	FromDate   *time.Time `form:"fromDate" time_format:"2006-01-02"`
	ToDate     *time.Time `form:"toDate" time_format:"2006-01-02"`
	Limit      int        `form:"limit"`
	Offset     int        `form:"offset"`
}

// ReceiptItemResponse defines the data returned for a receipt item.
type ReceiptItemResponse struct {
	ReceiptItemID   string          `json:"receiptItemID"`
	PledgeID        string          `json:"pledgeID"`
	PaidPrincipal   decimal.Decimal `json:"paidPrincipal"`
	PaidInterest    decimal.Decimal `json:"paidInterest"`
	PaidDiscount    decimal.Decimal `json:"paidDiscount"`
	PaidPenalty     decimal.Decimal `json:"paidPenalty"`
	TotalAmountPaid decimal.Decimal `json:"totalAmountPaid"`
	PaymentType     string          `json:"paymentType"`
}

// ReceiptResponse defines the data returned for a receipt.
type ReceiptResponse struct {
	ReceiptID      string                `json:"receiptID"`
	ReceiptNo      string                `json:"receiptNo"`
	CustomerID     string                `json:"customerID"`
	ReceiptDate    time.Time             `json:"receiptDate"`
	ReceiptAmount  decimal.Decimal       `json:"receiptAmount"`
	PaymentMode    string                `json:"paymentMode"`
	Status         domain.ReceiptStatus  `json:"status"`
	COAEntryStatus domain.COAEntryStatus `json:"coaEntryStatus"`
	Items          []ReceiptItemResponse `json:"items,omitempty"`
}

// ListReceiptsResponse wraps a page of receipts.
type ListReceiptsResponse struct {
	Receipts []ReceiptResponse `json:"receipts"`
}

// ToReceiptItemResponse converts a domain.ReceiptItem to ReceiptItemResponse DTO.
func ToReceiptItemResponse(item *domain.ReceiptItem) ReceiptItemResponse {
	return ReceiptItemResponse{
		ReceiptItemID:   item.ReceiptItemID,
		PledgeID:        item.PledgeID,
		PaidPrincipal:   item.PaidPrincipal,
		PaidInterest:    item.PaidInterest,
		PaidDiscount:    item.PaidDiscount,
		PaidPenalty:     item.PaidPenalty,
		TotalAmountPaid: item.TotalAmountPaid,
		PaymentType:     item.PaymentType,
	}
}

// ToReceiptResponse converts a domain.PledgeReceipt and its items to ReceiptResponse DTO.
func ToReceiptResponse(r *domain.PledgeReceipt, items []domain.ReceiptItem) ReceiptResponse {
	resp := ReceiptResponse{
		ReceiptID:      r.ReceiptID,
		ReceiptNo:      r.ReceiptNo,
		CustomerID:     r.CustomerID,
		ReceiptDate:    r.ReceiptDate,
		ReceiptAmount:  r.ReceiptAmount,
		PaymentMode:    r.PaymentMode,
		Status:         r.Status,
		COAEntryStatus: r.COAEntryStatus,
	}
	for i := range items {
		resp.Items = append(resp.Items, ToReceiptItemResponse(&items[i]))
	}
	return resp
}
