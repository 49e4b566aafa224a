package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptStatus indicates the state of a pledge receipt.
type ReceiptStatus string

const (
	ReceiptDraft    ReceiptStatus = "Draft"
	ReceiptPosted   ReceiptStatus = "Posted"
	ReceiptVoid     ReceiptStatus = "Void"
	ReceiptAdjusted ReceiptStatus = "Adjusted"
)

// COAEntryStatus tracks whether a receipt's ledger entries have been written.
type COAEntryStatus string

const (
	COAPending COAEntryStatus = "Pending"
	COAPosted  COAEntryStatus = "Posted"
	COAError   COAEntryStatus = "Error"
	COAManual  COAEntryStatus = "Manual"
)

// PledgeReceipt records money collected from a customer against one or more
// pledges.
type PledgeReceipt struct {
	ReceiptID      string          `json:"receiptID"` // Primary Key (e.g., UUID)
	CompanyID      string          `json:"companyID"`
	ReceiptNo      string          `json:"receiptNo"` // e.g. RCP-2025-0001, unique per company
	CustomerID     string          `json:"customerID"`
	ReceiptDate    time.Time       `json:"receiptDate"`
	ReceiptAmount  decimal.Decimal `json:"receiptAmount"` // cash actually taken
	PaymentMode    string          `json:"paymentMode"`   // Cash, Bank, UPI, ...
	Status         ReceiptStatus   `json:"status"`
	COAEntryStatus COAEntryStatus  `json:"coaEntryStatus"`
	Narration      string          `json:"narration"`
	AuditFields
}

// ReceiptItem allocates a receipt across one pledge.
type ReceiptItem struct {
	ReceiptItemID   string          `json:"receiptItemID"`
	ReceiptID       string          `json:"receiptID"`
	PledgeID        string          `json:"pledgeID"`
	PaidPrincipal   decimal.Decimal `json:"paidPrincipal"`
	PaidInterest    decimal.Decimal `json:"paidInterest"`
	PaidDiscount    decimal.Decimal `json:"paidDiscount"` // interest waived
	PaidPenalty     decimal.Decimal `json:"paidPenalty"`
	TotalAmountPaid decimal.Decimal `json:"totalAmountPaid"`
	PaymentType     string          `json:"paymentType"` // Partial, Full Payment, Closure, ...
	AuditFields
}

// PledgeStatusForPaymentType maps a receipt item's payment type onto the
// pledge status it should produce once the receipt is posted. Matching is
// case-insensitive; unrecognised types leave the pledge Active.
func PledgeStatusForPaymentType(paymentType string) PledgeStatus {
	switch strings.ToLower(strings.TrimSpace(paymentType)) {
	case "full payment", "redeemed", "full", "fullpayment":
		return PledgeRedeemed
	case "closed", "closure", "close":
		return PledgeClosed
	default:
		return PledgeActive
	}
}
