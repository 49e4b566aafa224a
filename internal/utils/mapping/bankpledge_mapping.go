package mapping

import (
	"github.com/pawnsoft/pawnledger/internal/core/domain"
	"github.com/pawnsoft/pawnledger/internal/models"
)

// ToModelBankPledge converts a domain BankPledge to a model BankPledge
func ToModelBankPledge(d domain.BankPledge) models.BankPledge {
	return models.BankPledge{
		BankPledgeID:        d.BankPledgeID,
		CompanyID:           d.CompanyID,
		PledgeID:            d.PledgeID,
		BankDetailsID:       d.BankDetailsID,
		BankName:            d.BankName,
		BankBranch:          d.BankBranch,
		BankReferenceNo:     d.BankReferenceNo,
		TransferDate:        d.TransferDate,
		BankValuation:       d.BankValuation,
		LTVPercent:          d.LTVPercent,
		BankLoanAmount:      d.BankLoanAmount,
		BankInterestRate:    d.BankInterestRate,
		OriginalShopLoan:    d.OriginalShopLoan,
		OutstandingInterest: d.OutstandingInterest,
		Status:              models.BankPledgeStatus(d.Status),
		Narration:           d.Narration,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBankPledge converts a model BankPledge to a domain BankPledge
func ToDomainBankPledge(m models.BankPledge) domain.BankPledge {
	return domain.BankPledge{
		BankPledgeID:        m.BankPledgeID,
		CompanyID:           m.CompanyID,
		PledgeID:            m.PledgeID,
		BankDetailsID:       m.BankDetailsID,
		BankName:            m.BankName,
		BankBranch:          m.BankBranch,
		BankReferenceNo:     m.BankReferenceNo,
		TransferDate:        m.TransferDate,
		BankValuation:       m.BankValuation,
		LTVPercent:          m.LTVPercent,
		BankLoanAmount:      m.BankLoanAmount,
		BankInterestRate:    m.BankInterestRate,
		OriginalShopLoan:    m.OriginalShopLoan,
		OutstandingInterest: m.OutstandingInterest,
		Status:              domain.BankPledgeStatus(m.Status),
		Narration:           m.Narration,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBankPledgeSlice converts a slice of model BankPledges to domain BankPledges
func ToDomainBankPledgeSlice(ms []models.BankPledge) []domain.BankPledge {
	ds := make([]domain.BankPledge, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBankPledge(m)
	}
	return ds
}

// ToModelBankPledgeItem converts a domain BankPledgeItem to a model BankPledgeItem
func ToModelBankPledgeItem(d domain.BankPledgeItem) models.BankPledgeItem {
	return models.BankPledgeItem{
		BankPledgeItemID: d.BankPledgeItemID,
		BankPledgeID:     d.BankPledgeID,
		ItemName:         d.ItemName,
		ItemType:         d.ItemType,
		Quantity:         d.Quantity,
		GrossWeight:      d.GrossWeight,
		NetWeight:        d.NetWeight,
		Purity:           d.Purity,
		ItemValue:        d.ItemValue,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBankPledgeItem converts a model BankPledgeItem to a domain BankPledgeItem
func ToDomainBankPledgeItem(m models.BankPledgeItem) domain.BankPledgeItem {
	return domain.BankPledgeItem{
		BankPledgeItemID: m.BankPledgeItemID,
		BankPledgeID:     m.BankPledgeID,
		ItemName:         m.ItemName,
		ItemType:         m.ItemType,
		Quantity:         m.Quantity,
		GrossWeight:      m.GrossWeight,
		NetWeight:        m.NetWeight,
		Purity:           m.Purity,
		ItemValue:        m.ItemValue,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBankPledgeItemSlice converts a slice of model BankPledgeItems to domain BankPledgeItems
func ToDomainBankPledgeItemSlice(ms []models.BankPledgeItem) []domain.BankPledgeItem {
	ds := make([]domain.BankPledgeItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBankPledgeItem(m)
	}
	return ds
}

// ToModelBankRedemption converts a domain BankRedemption to a model BankRedemption
func ToModelBankRedemption(d domain.BankRedemption) models.BankRedemption {
	return models.BankRedemption{
		RedemptionID:          d.RedemptionID,
		CompanyID:             d.CompanyID,
		BankPledgeID:          d.BankPledgeID,
		RedemptionDate:        d.RedemptionDate,
		AmountPaidToBank:      d.AmountPaidToBank,
		InterestPaid:          d.InterestPaid,
		BankCharges:           d.BankCharges,
		BankValuation:         d.BankValuation,
		ActualRedemptionValue: d.ActualRedemptionValue,
		PriceDifference:       d.PriceDifference,
		FundingReceiptID:      d.FundingReceiptID,
		Narration:             d.Narration,
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBankRedemption converts a model BankRedemption to a domain BankRedemption
func ToDomainBankRedemption(m models.BankRedemption) domain.BankRedemption {
	return domain.BankRedemption{
		RedemptionID:          m.RedemptionID,
		CompanyID:             m.CompanyID,
		BankPledgeID:          m.BankPledgeID,
		RedemptionDate:        m.RedemptionDate,
		AmountPaidToBank:      m.AmountPaidToBank,
		InterestPaid:          m.InterestPaid,
		BankCharges:           m.BankCharges,
		BankValuation:         m.BankValuation,
		ActualRedemptionValue: m.ActualRedemptionValue,
		PriceDifference:       m.PriceDifference,
		FundingReceiptID:      m.FundingReceiptID,
		Narration:             m.Narration,
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
}
