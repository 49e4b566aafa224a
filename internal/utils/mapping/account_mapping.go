package mapping

import (
	"github.com/pawnsoft/pawnledger/internal/core/domain"
	"github.com/pawnsoft/pawnledger/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:       d.AccountID,
		CompanyID:       d.CompanyID,
		AccountCode:     d.AccountCode,
		AccountName:     d.AccountName,
		AccountType:     models.AccountType(d.AccountType),
		AccountCategory: d.AccountCategory,
		ParentAccountID: d.ParentAccountID,
		OpeningBalance:  d.OpeningBalance,
		Description:     d.Description,
		IsActive:        d.IsActive,
		AuditFields:     ToModelAuditFields(d.AuditFields),
		Balance:         d.Balance,
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:       m.AccountID,
		CompanyID:       m.CompanyID,
		AccountCode:     m.AccountCode,
		AccountName:     m.AccountName,
		AccountType:     domain.AccountType(m.AccountType),
		AccountCategory: m.AccountCategory,
		ParentAccountID: m.ParentAccountID,
		OpeningBalance:  m.OpeningBalance,
		Description:     m.Description,
		IsActive:        m.IsActive,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
		Balance:         m.Balance,
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
