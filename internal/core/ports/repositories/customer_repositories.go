package repositories

import (
	"context"

	"github.com/pawnsoft/pawnledger/internal/core/domain"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByID retrieves a specific customer by their unique identifier.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves a paginated list of customers for a company.
	ListCustomers(ctx context.Context, companyID string, limit int, offset int) ([]domain.Customer, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	// SaveCustomer persists a new customer, assigning the next customer number
	// within the company.
	SaveCustomer(ctx context.Context, customer *domain.Customer) error

	// UpdateCustomer updates an existing customer's details.
	UpdateCustomer(ctx context.Context, customer domain.Customer) error

	// SetReceivableAccount records the customer's dedicated receivable account.
	SetReceivableAccount(ctx context.Context, customerID string, accountID string, updatedBy string) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
// This is a facade for clients that need access to all operations
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}

// CustomerRepositoryWithTx extends CustomerRepositoryFacade with transaction capabilities
type CustomerRepositoryWithTx interface {
	CustomerRepositoryFacade
	Transactor
}
