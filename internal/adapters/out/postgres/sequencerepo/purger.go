package sequencerepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// SQLSequencePurger deletes stale day counters over a plain database/sql pool.
// It serves the housekeeping job, which runs outside any unit of work.
type SQLSequencePurger struct {
	db *sql.DB
}

func NewSQLSequencePurger(db *sql.DB) *SQLSequencePurger {
	return &SQLSequencePurger{db: db}
}

// PurgeBefore deletes counters whose last allocation happened before cutoff.
func (p *SQLSequencePurger) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := p.db.ExecContext(ctx,
		"DELETE FROM order_number_sequences WHERE updated_at < $1",
		cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge order number sequences: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count purged order number sequences: %w", err)
	}
	return removed, nil
}
