package commands

import (
	"context"

	"sales/internal/core/ports"
)

// PurgeOrderNumberSequencesCommandHandler deletes stale day counters. It runs
// outside a unit of work; the delete is a single statement.
type PurgeOrderNumberSequencesCommandHandler struct {
	purger ports.OrderNumberSequencePurger
}

func NewPurgeOrderNumberSequencesCommandHandler(
	purger ports.OrderNumberSequencePurger,
) PurgeOrderNumberSequencesCommandHandler {
	return PurgeOrderNumberSequencesCommandHandler{purger: purger}
}

// Handle returns the number of counters removed.
func (h *PurgeOrderNumberSequencesCommandHandler) Handle(
	ctx context.Context,
	cmd PurgeOrderNumberSequencesCommand,
) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	return h.purger.PurgeBefore(ctx, cmd.Cutoff())
}
