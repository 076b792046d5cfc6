package appointment

import "context"

// Repository reads the full current set of appointment rows from the
// external store. Rows are order-irrelevant; the store's header row is
// already excluded.
type Repository interface {
	FetchAll(ctx context.Context) ([]Record, error)
}
