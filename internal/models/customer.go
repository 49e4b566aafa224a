package models

// Customer represents a borrower.
type Customer struct {
	CustomerID          string  `db:"customer_id"`
	CompanyID           string  `db:"company_id"`
	CustomerNo          int     `db:"customer_no"` // Sequential within company
	Name                string  `db:"name"`
	Phone               string  `db:"phone"`
	Address             string  `db:"address"`
	IDProofType         string  `db:"id_proof_type"`
	IDProofNo           string  `db:"id_proof_no"`
	ReceivableAccountID *string `db:"receivable_account_id"` // Nullable FK -> Account
	IsActive            bool    `db:"is_active"`
	AuditFields
}
