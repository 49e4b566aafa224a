package mapping

import (
	"github.com/pawnsoft/pawnledger/internal/core/domain"
	"github.com/pawnsoft/pawnledger/internal/models"
)

// ToModelScheme converts a domain Scheme to a model Scheme
func ToModelScheme(d domain.Scheme) models.Scheme {
	return models.Scheme{
		SchemeID:             d.SchemeID,
		CompanyID:            d.CompanyID,
		SchemeName:           d.SchemeName,
		ShortName:            d.ShortName,
		Prefix:               d.Prefix,
		DurationMonths:       d.DurationMonths,
		InterestRatePerMonth: d.InterestRatePerMonth,
		LoanEligibilityPct:   d.LoanEligibilityPct,
		IsActive:             d.IsActive,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainScheme converts a model Scheme to a domain Scheme
func ToDomainScheme(m models.Scheme) domain.Scheme {
	return domain.Scheme{
		SchemeID:             m.SchemeID,
		CompanyID:            m.CompanyID,
		SchemeName:           m.SchemeName,
		ShortName:            m.ShortName,
		Prefix:               m.Prefix,
		DurationMonths:       m.DurationMonths,
		InterestRatePerMonth: m.InterestRatePerMonth,
		LoanEligibilityPct:   m.LoanEligibilityPct,
		IsActive:             m.IsActive,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSchemeSlice converts a slice of model Schemes to domain Schemes
func ToDomainSchemeSlice(ms []models.Scheme) []domain.Scheme {
	ds := make([]domain.Scheme, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainScheme(m)
	}
	return ds
}
