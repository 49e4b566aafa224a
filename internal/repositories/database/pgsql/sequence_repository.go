package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/pawnsoft/pawnledger/internal/core/ports/repositories"
)

type PgxSequenceRepository struct {
	BaseRepository
}

// NewPgxSequenceRepository creates a new repository for sequence counters.
func NewPgxSequenceRepository(pool *pgxpool.Pool) portsrepo.SequenceRepository {
	return &PgxSequenceRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxSequenceRepository implements portsrepo.SequenceRepository
var _ portsrepo.SequenceRepository = (*PgxSequenceRepository)(nil)

// NextSequence increments and returns the counter for the given company,
// prefix and period. The upsert takes a row lock, so concurrent callers
// serialize on the counter row and never observe the same value.
func (r *PgxSequenceRepository) NextSequence(ctx context.Context, companyID string, prefix string, period string) (int64, error) {
	query := `
		INSERT INTO sequence_counters (company_id, prefix, period, current_value)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (company_id, prefix, period)
		DO UPDATE SET current_value = sequence_counters.current_value + 1
		RETURNING current_value;
	`
	var value int64
	if err := r.conn(ctx).QueryRow(ctx, query, companyID, prefix, period).Scan(&value); err != nil {
		return 0, fmt.Errorf("failed to advance sequence %s/%s for company %s: %w", prefix, period, companyID, err)
	}
	return value, nil
}
