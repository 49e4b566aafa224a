package repositories

import (
	"context"

	"github.com/pawnsoft/pawnledger/internal/core/domain"
)

// SchemeReader defines read operations for scheme data
type SchemeReader interface {
	// FindSchemeByID retrieves a specific scheme by its unique identifier.
	FindSchemeByID(ctx context.Context, schemeID string) (*domain.Scheme, error)

	// ListSchemes retrieves the schemes of a company, optionally only active ones.
	ListSchemes(ctx context.Context, companyID string, onlyActive bool) ([]domain.Scheme, error)
}

// SchemeWriter defines write operations for scheme data
type SchemeWriter interface {
	// SaveScheme persists a new scheme.
	SaveScheme(ctx context.Context, scheme domain.Scheme) error

	// UpdateScheme updates an existing scheme's details.
	UpdateScheme(ctx context.Context, scheme domain.Scheme) error
}

// SchemeRepositoryFacade combines all scheme-related repository interfaces
// This is a facade for clients that need access to all operations
type SchemeRepositoryFacade interface {
	SchemeReader
	SchemeWriter
}
