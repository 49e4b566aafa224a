package repositories

import "context"

// SequenceRepository defines the atomic business-number counter.
type SequenceRepository interface {
	// NextSequence increments and returns the counter for the given company,
	// prefix and period. The first call for a new key returns 1. Concurrent
	// callers never observe the same value.
	NextSequence(ctx context.Context, companyID string, prefix string, period string) (int64, error)
}
