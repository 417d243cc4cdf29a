package services

import (
	"context"
	"fmt"
	"time"

	"sales/internal/core/domain/model/order"
	"sales/internal/core/ports"
)

// OrderNumberGenerator allocates order numbers of the form ORDyyMMddNNNN.
// The day part is taken from the injected clock in UTC.
type OrderNumberGenerator struct {
	clock func() time.Time
}

func NewOrderNumberGenerator(clock func() time.Time) OrderNumberGenerator {
	if clock == nil {
		clock = time.Now
	}
	return OrderNumberGenerator{clock: clock}
}

// Next asks seq for the next sequence of the current day and formats it.
func (g OrderNumberGenerator) Next(ctx context.Context, seq ports.OrderNumberSequence) (string, error) {
	prefix := order.DayPrefix(g.clock())

	sequence, err := seq.Next(ctx, prefix)
	if err != nil {
		return "", fmt.Errorf("allocate sequence for %s: %w", prefix, err)
	}

	return order.FormatNumber(prefix, sequence)
}

// LastSequence returns the sequence encoded in maxNumber, or 0 when no order
// number exists yet. Sequence stores seed their counters with it.
func LastSequence(maxNumber string) (int, error) {
	if maxNumber == "" {
		return 0, nil
	}
	return order.ParseSequence(maxNumber)
}
