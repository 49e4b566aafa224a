package mapping

import (
	"github.com/pawnsoft/pawnledger/internal/core/domain"
	"github.com/pawnsoft/pawnledger/internal/models"
)

// ToModelBankDetails converts a domain BankDetails to a model BankDetails
func ToModelBankDetails(d domain.BankDetails) models.BankDetails {
	return models.BankDetails{
		BankDetailsID: d.BankDetailsID,
		CompanyID:     d.CompanyID,
		BankName:      d.BankName,
		Branch:        d.Branch,
		AccountNo:     d.AccountNo,
		IFSCCode:      d.IFSCCode,
		ContactPerson: d.ContactPerson,
		ContactPhone:  d.ContactPhone,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBankDetails converts a model BankDetails to a domain BankDetails
func ToDomainBankDetails(m models.BankDetails) domain.BankDetails {
	return domain.BankDetails{
		BankDetailsID: m.BankDetailsID,
		CompanyID:     m.CompanyID,
		BankName:      m.BankName,
		Branch:        m.Branch,
		AccountNo:     m.AccountNo,
		IFSCCode:      m.IFSCCode,
		ContactPerson: m.ContactPerson,
		ContactPhone:  m.ContactPhone,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBankDetailsSlice converts a slice of model BankDetails to domain BankDetails
func ToDomainBankDetailsSlice(ms []models.BankDetails) []domain.BankDetails {
	ds := make([]domain.BankDetails, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBankDetails(m)
	}
	return ds
}
