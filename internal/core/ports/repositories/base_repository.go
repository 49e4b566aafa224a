package repositories

import (
	"context"
)

// Transactor runs a function within one database transaction. The function
// receives a context carrying the transaction; repository calls made with
// that context join it. A nested WithTransaction joins the outer
// transaction instead of opening a new one.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
