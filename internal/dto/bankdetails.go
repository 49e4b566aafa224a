package dto

import (
	"github.com/pawnsoft/pawnledger/internal/core/domain"
)

// CreateBankDetailsRequest defines the payload for creating a bank master record.
type CreateBankDetailsRequest struct {
	BankName      string `json:"bankName" binding:"required"`
	Branch        string `json:"branch"`
	AccountNo     string `json:"accountNo"`
	IFSCCode      string `json:"ifscCode"`
	ContactPerson string `json:"contactPerson"`
	ContactPhone  string `json:"contactPhone"`
}

// BankDetailsResponse defines the data returned for a bank master record.
type BankDetailsResponse struct {
	BankDetailsID string `json:"bankDetailsID"`
	BankName      string `json:"bankName"`
	Branch        string `json:"branch"`
	AccountNo     string `json:"accountNo"`
	IFSCCode      string `json:"ifscCode"`
	ContactPerson string `json:"contactPerson"`
	ContactPhone  string `json:"contactPhone"`
	IsActive      bool   `json:"isActive"`
}

// ListBankDetailsResponse wraps the bank master records of a company.
type ListBankDetailsResponse struct {
	Banks []BankDetailsResponse `json:"banks"`
}

// ToBankDetailsResponse converts a domain.BankDetails to BankDetailsResponse DTO.
func ToBankDetailsResponse(d *domain.BankDetails) BankDetailsResponse {
	return BankDetailsResponse{
		BankDetailsID: d.BankDetailsID,
		BankName:      d.BankName,
		Branch:        d.Branch,
		AccountNo:     d.AccountNo,
		IFSCCode:      d.IFSCCode,
		ContactPerson: d.ContactPerson,
		ContactPhone:  d.ContactPhone,
		IsActive:      d.IsActive,
	}
}

// ToBankDetailsResponses converts a slice of domain.BankDetails to []BankDetailsResponse.
func ToBankDetailsResponses(ds []domain.BankDetails) []BankDetailsResponse {
	responses := make([]BankDetailsResponse, len(ds))
	for i := range ds {
		responses[i] = ToBankDetailsResponse(&ds[i])
	}
	return responses
}
