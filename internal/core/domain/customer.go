package domain

// Customer is a borrower. ReceivableAccountID points at the customer's
// dedicated receivable ledger account, created on first pledge.
type Customer struct {
	CustomerID          string  `json:"customerID"` // Primary Key (e.g., UUID)
	CompanyID           string  `json:"companyID"`
	CustomerNo          int     `json:"customerNo"` // sequential, feeds the receivable account code
	Name                string  `json:"name"`
	Phone               string  `json:"phone"`
	Address             string  `json:"address"`
	IDProofType         string  `json:"idProofType"`
	IDProofNo           string  `json:"idProofNo"`
	ReceivableAccountID *string `json:"receivableAccountID,omitempty"` // FK -> Account
	IsActive            bool    `json:"isActive"`
	AuditFields
}
