package mapping

import (
	"github.com/pawnsoft/pawnledger/internal/core/domain"
	"github.com/pawnsoft/pawnledger/internal/models"
)

// ToModelCustomer converts a domain Customer to a model Customer
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:          d.CustomerID,
		CompanyID:           d.CompanyID,
		CustomerNo:          d.CustomerNo,
		Name:                d.Name,
		Phone:               d.Phone,
		Address:             d.Address,
		IDProofType:         d.IDProofType,
		IDProofNo:           d.IDProofNo,
		ReceivableAccountID: d.ReceivableAccountID,
		IsActive:            d.IsActive,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:          m.CustomerID,
		CompanyID:           m.CompanyID,
		CustomerNo:          m.CustomerNo,
		Name:                m.Name,
		Phone:               m.Phone,
		Address:             m.Address,
		IDProofType:         m.IDProofType,
		IDProofNo:           m.IDProofNo,
		ReceivableAccountID: m.ReceivableAccountID,
		IsActive:            m.IsActive,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCustomerSlice converts a slice of model Customers to domain Customers
func ToDomainCustomerSlice(ms []models.Customer) []domain.Customer {
	ds := make([]domain.Customer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCustomer(m)
	}
	return ds
}
