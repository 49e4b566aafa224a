package dto

import "github.com/pawnsoft/pawnledger/internal/core/domain"

// CreateCustomerRequest defines the payload for registering a customer.
type CreateCustomerRequest struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	IDProofType string `json:"idProofType"`
	IDProofNo   string `json:"idProofNo"`
}

// UpdateCustomerRequest defines the payload for updating a customer.
type UpdateCustomerRequest struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	IDProofType *string `json:"idProofType"`
	IDProofNo   *string `json:"idProofNo"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID          string  `json:"customerID"`
	CustomerNo          int     `json:"customerNo"`
	Name                string  `json:"name"`
	Phone               string  `json:"phone"`
	Address             string  `json:"address"`
	IDProofType         string  `json:"idProofType"`
	IDProofNo           string  `json:"idProofNo"`
	ReceivableAccountID *string `json:"receivableAccountID,omitempty"`
	IsActive            bool    `json:"isActive"`
}

// ListCustomersResponse wraps a page of customers.
type ListCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:          c.CustomerID,
		CustomerNo:          c.CustomerNo,
		Name:                c.Name,
		Phone:               c.Phone,
		Address:             c.Address,
		IDProofType:         c.IDProofType,
		IDProofNo:           c.IDProofNo,
		ReceivableAccountID: c.ReceivableAccountID,
		IsActive:            c.IsActive,
	}
}

// ToCustomerResponses converts a slice of domain.Customer to []CustomerResponse.
func ToCustomerResponses(cs []domain.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(cs))
	for i := range cs {
		responses[i] = ToCustomerResponse(&cs[i])
	}
	return responses
}
