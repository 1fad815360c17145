package punch

import (
	"context"
	"time"
)

// Repository persists uploaded punch sets. The analysis core never touches
// storage itself; it receives records already loaded in memory.
type Repository interface {
	// SaveBatch stores a parsed upload under the given batch ID and returns
	// the number of rows written.
	SaveBatch(ctx context.Context, batchID string, records []Record) (int, error)

	// ListByRange returns all stored punches whose timestamp date falls in
	// [start, end], ordered by employee name then timestamp ascending.
	ListByRange(ctx context.Context, start, end time.Time) ([]Record, error)

	// DeleteAll clears every stored punch. Used when a fresh export replaces
	// the previous one.
	DeleteAll(ctx context.Context) error
}
