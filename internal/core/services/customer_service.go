package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pawnsoft/pawnledger/internal/apperrors"
	"github.com/pawnsoft/pawnledger/internal/core/domain"
	portsrepo "github.com/pawnsoft/pawnledger/internal/core/ports/repositories"
	portssvc "github.com/pawnsoft/pawnledger/internal/core/ports/services"
	"github.com/pawnsoft/pawnledger/internal/dto"
	"github.com/pawnsoft/pawnledger/internal/middleware"
)

// customerService manages borrower registration and updates.
type customerService struct {
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates a new customer service.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo}
}

// Ensure customerService implements the portssvc.CustomerSvcFacade interface
var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

// CreateCustomer registers a new customer. The repository assigns the next
// sequential customer number within the company.
// Implements portssvc.CustomerSvcFacade
func (s *customerService) CreateCustomer(ctx context.Context, companyID string, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	customer := domain.Customer{
		CustomerID:  uuid.NewString(),
		CompanyID:   companyID,
		Name:        req.Name,
		Phone:       req.Phone,
		Address:     req.Address,
		IDProofType: req.IDProofType,
		IDProofNo:   req.IDProofNo,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, &customer); err != nil {
		logger.Error("Failed to create customer", slog.String("error", err.Error()), slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	logger.Info("Customer created",
		slog.String("customer_id", customer.CustomerID),
		slog.Int("customer_no", customer.CustomerNo),
	)
	return &customer, nil
}

// GetCustomerByID retrieves a specific customer.
// Implements portssvc.CustomerSvcFacade
func (s *customerService) GetCustomerByID(ctx context.Context, companyID string, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCustomerNotFound, customerID)
		}
		return nil, err
	}
	if customer.CompanyID != companyID {
		return nil, fmt.Errorf("%w: %s", ErrCustomerNotFound, customerID)
	}
	return customer, nil
}

// UpdateCustomer updates a customer's details. Nil request fields are left
// unchanged.
// Implements portssvc.CustomerSvcFacade
func (s *customerService) UpdateCustomer(ctx context.Context, companyID string, customerID string, req dto.UpdateCustomerRequest, userID string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	customer, err := s.GetCustomerByID(ctx, companyID, customerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.IDProofType != nil {
		customer.IDProofType = *req.IDProofType
	}
	if req.IDProofNo != nil {
		customer.IDProofNo = *req.IDProofNo
	}
	customer.LastUpdatedAt = time.Now().UTC()
	customer.LastUpdatedBy = userID

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		logger.Error("Failed to update customer", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	logger.Info("Customer updated", slog.String("customer_id", customerID))
	return customer, nil
}

// ListCustomers retrieves a paginated list of customers.
// Implements portssvc.CustomerSvcFacade
func (s *customerService) ListCustomers(ctx context.Context, companyID string, limit, offset int) (*dto.ListCustomersResponse, error) {
	if limit <= 0 {
		limit = 100
	}
	if limit > 500 {
		limit = 500
	}

	customers, err := s.customerRepo.ListCustomers(ctx, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return &dto.ListCustomersResponse{Customers: dto.ToCustomerResponses(customers)}, nil
}
