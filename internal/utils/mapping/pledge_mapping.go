package mapping

import (
	"github.com/pawnsoft/pawnledger/internal/core/domain"
	"github.com/pawnsoft/pawnledger/internal/models"
)

// ToModelPledge converts a domain Pledge to a model Pledge
func ToModelPledge(d domain.Pledge) models.Pledge {
	return models.Pledge{
		PledgeID:               d.PledgeID,
		CompanyID:              d.CompanyID,
		PledgeNo:               d.PledgeNo,
		CustomerID:             d.CustomerID,
		SchemeID:               d.SchemeID,
		PledgeDate:             d.PledgeDate,
		DueDate:                d.DueDate,
		LoanAmount:             d.LoanAmount,
		InterestRate:           d.InterestRate,
		FirstMonthInterest:     d.FirstMonthInterest,
		MaximumValue:           d.MaximumValue,
		TotalWeight:            d.TotalWeight,
		Status:                 models.PledgeStatus(d.Status),
		CloseDate:              d.CloseDate,
		Narration:              d.Narration,
		AuditFields:            ToModelAuditFields(d.AuditFields),
		TotalPrincipalReceived: d.TotalPrincipalReceived,
		TotalInterestReceived:  d.TotalInterestReceived,
	}
}

// ToDomainPledge converts a model Pledge to a domain Pledge
func ToDomainPledge(m models.Pledge) domain.Pledge {
	return domain.Pledge{
		PledgeID:               m.PledgeID,
		CompanyID:              m.CompanyID,
		PledgeNo:               m.PledgeNo,
		CustomerID:             m.CustomerID,
		SchemeID:               m.SchemeID,
		PledgeDate:             m.PledgeDate,
		DueDate:                m.DueDate,
		LoanAmount:             m.LoanAmount,
		InterestRate:           m.InterestRate,
		FirstMonthInterest:     m.FirstMonthInterest,
		MaximumValue:           m.MaximumValue,
		TotalWeight:            m.TotalWeight,
		Status:                 domain.PledgeStatus(m.Status),
		CloseDate:              m.CloseDate,
		Narration:              m.Narration,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
		TotalPrincipalReceived: m.TotalPrincipalReceived,
		TotalInterestReceived:  m.TotalInterestReceived,
	}
}

// ToDomainPledgeSlice converts a slice of model Pledges to domain Pledges
func ToDomainPledgeSlice(ms []models.Pledge) []domain.Pledge {
	ds := make([]domain.Pledge, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPledge(m)
	}
	return ds
}

// ToModelPledgeItem converts a domain PledgeItem to a model PledgeItem
func ToModelPledgeItem(d domain.PledgeItem) models.PledgeItem {
	return models.PledgeItem{
		PledgeItemID: d.PledgeItemID,
		PledgeID:     d.PledgeID,
		ItemName:     d.ItemName,
		ItemType:     d.ItemType,
		Quantity:     d.Quantity,
		GrossWeight:  d.GrossWeight,
		NetWeight:    d.NetWeight,
		Purity:       d.Purity,
		ItemValue:    d.ItemValue,
		Remarks:      d.Remarks,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPledgeItem converts a model PledgeItem to a domain PledgeItem
func ToDomainPledgeItem(m models.PledgeItem) domain.PledgeItem {
	return domain.PledgeItem{
		PledgeItemID: m.PledgeItemID,
		PledgeID:     m.PledgeID,
		ItemName:     m.ItemName,
		ItemType:     m.ItemType,
		Quantity:     m.Quantity,
		GrossWeight:  m.GrossWeight,
		NetWeight:    m.NetWeight,
		Purity:       m.Purity,
		ItemValue:    m.ItemValue,
		Remarks:      m.Remarks,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPledgeItemSlice converts a slice of model PledgeItems to domain PledgeItems
func ToDomainPledgeItemSlice(ms []models.PledgeItem) []domain.PledgeItem {
	ds := make([]domain.PledgeItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPledgeItem(m)
	}
	return ds
}
