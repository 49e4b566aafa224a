package dto

import (
	"github.com/pawnsoft/pawnledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSchemeRequest defines the payload for creating a loan scheme.
type CreateSchemeRequest struct {
	SchemeName           string          `json:"schemeName" binding:"required"`
	ShortName            string          `json:"shortName"`
	Prefix               string          `json:"prefix" binding:"required,uppercase,max=5"`
	DurationMonths       int             `json:"durationMonths" binding:"required,min=1"`
	InterestRatePerMonth decimal.Decimal `json:"interestRatePerMonth" binding:"required"`
	LoanEligibilityPct   decimal.Decimal `json:"loanEligibilityPct"`
}

// SchemeResponse defines the data returned for a scheme.
type SchemeResponse struct {
	SchemeID             string          `json:"schemeID"`
	SchemeName           string          `json:"schemeName"`
	ShortName            string          `json:"shortName"`
	Prefix               string          `json:"prefix"`
	DurationMonths       int             `json:"durationMonths"`
	InterestRatePerMonth decimal.Decimal `json:"interestRatePerMonth"`
	LoanEligibilityPct   decimal.Decimal `json:"loanEligibilityPct"`
	IsActive             bool            `json:"isActive"`
}

// ListSchemesResponse wraps the schemes of a company.
type ListSchemesResponse struct {
	Schemes []SchemeResponse `json:"schemes"`
}

// ToSchemeResponse converts a domain.Scheme to SchemeResponse DTO.
func ToSchemeResponse(s *domain.Scheme) SchemeResponse {
	return SchemeResponse{
		SchemeID:             s.SchemeID,
		SchemeName:           s.SchemeName,
		ShortName:            s.ShortName,
		Prefix:               s.Prefix,
		DurationMonths:       s.DurationMonths,
		InterestRatePerMonth: s.InterestRatePerMonth,
		LoanEligibilityPct:   s.LoanEligibilityPct,
		IsActive:             s.IsActive,
	}
}

// ToSchemeResponses converts a slice of domain.Scheme to []SchemeResponse.
func ToSchemeResponses(ss []domain.Scheme) []SchemeResponse {
	responses := make([]SchemeResponse, len(ss))
	for i := range ss {
		responses[i] = ToSchemeResponse(&ss[i])
	}
	return responses
}
