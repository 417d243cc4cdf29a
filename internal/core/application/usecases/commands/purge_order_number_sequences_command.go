package commands

import (
	"errors"
	"time"

	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var ErrPurgeOrderNumberSequencesCommandIsNotConstructed = errors.New(
	"PurgeOrderNumberSequencesCommand must be created via NewPurgeOrderNumberSequencesCommand constructor",
)

// PurgeOrderNumberSequencesCommand removes day counters last used before Cutoff.
// Counters of past days never allocate again, so only today's counter matters.
type PurgeOrderNumberSequencesCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

func NewPurgeOrderNumberSequencesCommand(cutoff time.Time) (PurgeOrderNumberSequencesCommand, error) {
	if cutoff.IsZero() {
		return PurgeOrderNumberSequencesCommand{}, errs.NewValueIsRequiredError("cutoff")
	}
	return PurgeOrderNumberSequencesCommand{cutoff: cutoff.UTC(), guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeOrderNumberSequencesCommand) Validate() error {
	return c.guard.Validate(ErrPurgeOrderNumberSequencesCommandIsNotConstructed)
}

func (c PurgeOrderNumberSequencesCommand) Cutoff() time.Time {
	return c.cutoff
}
