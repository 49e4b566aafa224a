package models

import (
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

// PledgeReceipt represents money collected against one or more pledges.
type PledgeReceipt struct {
	ReceiptID      string          `db:"receipt_id"`
	CompanyID      string          `db:"company_id"`
	ReceiptNo      string          `db:"receipt_no"` // Unique per company
	CustomerID     string          `db:"customer_id"`
	ReceiptDate    time.Time       `db:"receipt_date"`
	ReceiptAmount  decimal.Decimal `db:"receipt_amount"`
	PaymentMode    string          `db:"payment_mode"`
	Status         ReceiptStatus   `db:"status"`
	COAEntryStatus string          `db:"coa_entry_status"`
	Narration      string          `db:"narration"`
	AuditFields
}

// ReceiptItem represents the allocation of a receipt to one pledge.
type ReceiptItem struct {
	ReceiptItemID   string          `db:"receipt_item_id"`
	ReceiptID       string          `db:"receipt_id"`
	PledgeID        string          `db:"pledge_id"`
	PaidPrincipal   decimal.Decimal `db:"paid_principal"`
	PaidInterest    decimal.Decimal `db:"paid_interest"`
	PaidDiscount    decimal.Decimal `db:"paid_discount"`
	PaidPenalty     decimal.Decimal `db:"paid_penalty"`
	TotalAmountPaid decimal.Decimal `db:"total_amount_paid"`
	PaymentType     string          `db:"payment_type"`
	AuditFields
}
