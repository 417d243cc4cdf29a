package sequencerepo

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// The inserted value seeds a new day from the orders table. On conflict the
// counter advances past both its own value and the stored maximum, so numbers
// written by another allocator are never reissued.
const nextSequenceSQL = `
	INSERT INTO order_number_sequences (prefix, last_number, updated_at)
	VALUES (
		?,
		(SELECT COALESCE(MAX(CAST(RIGHT(order_number, 4) AS INTEGER)), 0)
		   FROM orders
		  WHERE order_number LIKE ?) + 1,
		NOW()
	)
	ON CONFLICT (prefix) DO UPDATE SET
		last_number = GREATEST(order_number_sequences.last_number, EXCLUDED.last_number - 1) + 1,
		updated_at  = EXCLUDED.updated_at
	RETURNING last_number`

// GormOrderNumberSequence implements ports.OrderNumberSequence on a postgres counter row.
type GormOrderNumberSequence struct {
	db *gorm.DB
}

// NewGormOrderNumberSequence binds the sequence to db. Pass the unit of work's
// transaction so the counter lock lives exactly as long as the order insert.
func NewGormOrderNumberSequence(db *gorm.DB) *GormOrderNumberSequence {
	return &GormOrderNumberSequence{db: db}
}

func (s *GormOrderNumberSequence) Next(ctx context.Context, dayPrefix string) (int, error) {
	var next int
	err := s.db.WithContext(ctx).
		Raw(nextSequenceSQL, dayPrefix, dayPrefix+"%").
		Scan(&next).Error
	if err != nil {
		return 0, fmt.Errorf("advance order number sequence %s: %w", dayPrefix, err)
	}
	return next, nil
}
