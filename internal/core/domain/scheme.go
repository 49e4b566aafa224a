package domain

import "github.com/shopspring/decimal"

// Scheme is a loan product definition. Pledges pick up their interest rate
// and numbering prefix from the scheme when not supplied explicitly.
type Scheme struct {
	SchemeID             string          `json:"schemeID"` // Primary Key (e.g., UUID)
	CompanyID            string          `json:"companyID"`
	SchemeName           string          `json:"schemeName"`
	ShortName            string          `json:"shortName"`
	Prefix               string          `json:"prefix"` // GLD, SLV, ...
	DurationMonths       int             `json:"durationMonths"`
	InterestRatePerMonth decimal.Decimal `json:"interestRatePerMonth"` // percent
	LoanEligibilityPct   decimal.Decimal `json:"loanEligibilityPct"`   // of appraised value
	IsActive             bool            `json:"isActive"`
	AuditFields
}
