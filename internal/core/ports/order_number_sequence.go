package ports

import (
	"context"
	"time"
)

// OrderNumberSequence allocates day-scoped order number sequences atomically.
// Two concurrent callers never receive the same value for the same prefix.
type OrderNumberSequence interface {
	// Next returns the next sequence for dayPrefix, starting after the greatest
	// sequence already used by an order number with that prefix.
	Next(ctx context.Context, dayPrefix string) (int, error)
}

// OrderNumberSequencePurger removes counters of days that can no longer allocate.
type OrderNumberSequencePurger interface {
	// PurgeBefore deletes counters last used before cutoff and returns how many were removed.
	PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
