package services

import (
	"context"

	"github.com/pawnsoft/pawnledger/internal/core/domain"
	"github.com/pawnsoft/pawnledger/internal/dto"
)

// CustomerReaderSvc defines read operations for customer data
type CustomerReaderSvc interface {
	// GetCustomerByID retrieves a specific customer.
	GetCustomerByID(ctx context.Context, companyID string, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves a paginated list of customers.
	ListCustomers(ctx context.Context, companyID string, limit, offset int) (*dto.ListCustomersResponse, error)
}

// CustomerWriterSvc defines write operations for customer data
type CustomerWriterSvc interface {
	// CreateCustomer registers a new customer.
	CreateCustomer(ctx context.Context, companyID string, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error)

	// UpdateCustomer updates a customer's details.
	UpdateCustomer(ctx context.Context, companyID string, customerID string, req dto.UpdateCustomerRequest, userID string) (*domain.Customer, error)
}

// CustomerSvcFacade combines all customer-related service interfaces
// This is a facade for clients that need access to all operations
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
}
