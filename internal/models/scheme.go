package models

import "github.com/shopspring/decimal"

// Scheme represents a loan product definition.
type Scheme struct {
	SchemeID             string          `db:"scheme_id"`
	CompanyID            string          `db:"company_id"`
	SchemeName           string          `db:"scheme_name"`
	ShortName            string          `db:"short_name"`
	Prefix               string          `db:"prefix"`
	DurationMonths       int             `db:"duration_months"`
	InterestRatePerMonth decimal.Decimal `db:"interest_rate_per_month"`
	LoanEligibilityPct   decimal.Decimal `db:"loan_eligibility_pct"`
	IsActive             bool            `db:"is_active"`
	AuditFields
}
