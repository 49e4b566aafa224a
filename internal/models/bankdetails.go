package models

// BankDetails represents a bank master record.
type BankDetails struct {
	BankDetailsID string `db:"bank_details_id"`
	CompanyID     string `db:"company_id"`
	BankName      string `db:"bank_name"`
	Branch        string `db:"branch"`
	AccountNo     string `db:"account_no"`
	IFSCCode      string `db:"ifsc_code"`
	ContactPerson string `db:"contact_person"`
	ContactPhone  string `db:"contact_phone"`
	IsActive      bool   `db:"is_active"`
	AuditFields
}
