// Package sequencerepo persists the per-day order number counters.
//
// One row exists per day prefix (ORDyyMMdd). The row is created on the first
// allocation of the day, seeded from the greatest number already stored in
// orders, and incremented in place afterwards. Because the upsert runs inside
// the order's transaction, the row lock is held until that order commits or
// rolls back, so concurrent creators are serialized per day without gaps.
package sequencerepo

import "time"

// SequenceDTO is the row shape of the order_number_sequences table.
type SequenceDTO struct {
	Prefix     string    `gorm:"type:varchar(16);primaryKey"`
	LastNumber int       `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null;index"`
}

func (SequenceDTO) TableName() string {
	return "order_number_sequences"
}
