package domain

// BankDetails is a master record of a bank the shop refinances pledges with.
// Bank pledges reference it so transfer documents carry consistent bank data.
type BankDetails struct {
	BankDetailsID string `json:"bankDetailsID"` // Primary Key (e.g., UUID)
	CompanyID     string `json:"companyID"`
	BankName      string `json:"bankName"`
	Branch        string `json:"branch"`
	AccountNo     string `json:"accountNo"`
	IFSCCode      string `json:"ifscCode"`
	ContactPerson string `json:"contactPerson"`
	ContactPhone  string `json:"contactPhone"`
	IsActive      bool   `json:"isActive"`
	AuditFields
}
