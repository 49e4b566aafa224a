package services

import (
	"context"

	"github.com/pawnsoft/pawnledger/internal/core/domain"
	"github.com/pawnsoft/pawnledger/internal/dto"
)

// SchemeReaderSvc defines read operations for scheme data
type SchemeReaderSvc interface {
	// GetSchemeByID retrieves a specific scheme.
	GetSchemeByID(ctx context.Context, companyID string, schemeID string) (*domain.Scheme, error)

	// ListSchemes retrieves the schemes of a company.
	ListSchemes(ctx context.Context, companyID string, onlyActive bool) (*dto.ListSchemesResponse, error)
}

// SchemeWriterSvc defines write operations for scheme data
type SchemeWriterSvc interface {
	// CreateScheme persists a new loan scheme.
	CreateScheme(ctx context.Context, companyID string, req dto.CreateSchemeRequest, creatorUserID string) (*domain.Scheme, error)

	// DeactivateScheme marks a scheme inactive so new pledges cannot use it.
	DeactivateScheme(ctx context.Context, companyID string, schemeID string, userID string) error
}

// SchemeSvcFacade combines all scheme-related service interfaces
// This is a facade for clients that need access to all operations
type SchemeSvcFacade interface {
	SchemeReaderSvc
	SchemeWriterSvc
}
