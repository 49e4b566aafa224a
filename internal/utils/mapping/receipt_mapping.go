package mapping

import (
	"github.com/pawnsoft/pawnledger/internal/core/domain"
	"github.com/pawnsoft/pawnledger/internal/models"
)

// ToModelReceipt converts a domain PledgeReceipt to a model PledgeReceipt
func ToModelReceipt(d domain.PledgeReceipt) models.PledgeReceipt {
	return models.PledgeReceipt{
		ReceiptID:      d.ReceiptID,
		CompanyID:      d.CompanyID,
		ReceiptNo:      d.ReceiptNo,
		CustomerID:     d.CustomerID,
		ReceiptDate:    d.ReceiptDate,
		ReceiptAmount:  d.ReceiptAmount,
		PaymentMode:    d.PaymentMode,
		Status:         models.ReceiptStatus(d.Status),
		COAEntryStatus: string(d.COAEntryStatus),
		Narration:      d.Narration,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainReceipt converts a model PledgeReceipt to a domain PledgeReceipt
func ToDomainReceipt(m models.PledgeReceipt) domain.PledgeReceipt {
	return domain.PledgeReceipt{
		ReceiptID:      m.ReceiptID,
		CompanyID:      m.CompanyID,
		ReceiptNo:      m.ReceiptNo,
		CustomerID:     m.CustomerID,
		ReceiptDate:    m.ReceiptDate,
		ReceiptAmount:  m.ReceiptAmount,
		PaymentMode:    m.PaymentMode,
		Status:         domain.ReceiptStatus(m.Status),
		COAEntryStatus: domain.COAEntryStatus(m.COAEntryStatus),
		Narration:      m.Narration,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainReceiptSlice converts a slice of model PledgeReceipts to domain PledgeReceipts
func ToDomainReceiptSlice(ms []models.PledgeReceipt) []domain.PledgeReceipt {
	ds := make([]domain.PledgeReceipt, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainReceipt(m)
	}
	return ds
}

// ToModelReceiptItem converts a domain ReceiptItem to a model ReceiptItem
func ToModelReceiptItem(d domain.ReceiptItem) models.ReceiptItem {
	return models.ReceiptItem{
		ReceiptItemID:   d.ReceiptItemID,
		ReceiptID:       d.ReceiptID,
		PledgeID:        d.PledgeID,
		PaidPrincipal:   d.PaidPrincipal,
		PaidInterest:    d.PaidInterest,
		PaidDiscount:    d.PaidDiscount,
		PaidPenalty:     d.PaidPenalty,
		TotalAmountPaid: d.TotalAmountPaid,
		PaymentType:     d.PaymentType,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainReceiptItem converts a model ReceiptItem to a domain ReceiptItem
func ToDomainReceiptItem(m models.ReceiptItem) domain.ReceiptItem {
	return domain.ReceiptItem{
		ReceiptItemID:   m.ReceiptItemID,
		ReceiptID:       m.ReceiptID,
		PledgeID:        m.PledgeID,
		PaidPrincipal:   m.PaidPrincipal,
		PaidInterest:    m.PaidInterest,
		PaidDiscount:    m.PaidDiscount,
		PaidPenalty:     m.PaidPenalty,
		TotalAmountPaid: m.TotalAmountPaid,
		PaymentType:     m.PaymentType,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainReceiptItemSlice converts a slice of model ReceiptItems to domain ReceiptItems
func ToDomainReceiptItemSlice(ms []models.ReceiptItem) []domain.ReceiptItem {
	ds := make([]domain.ReceiptItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainReceiptItem(m)
	}
	return ds
}
