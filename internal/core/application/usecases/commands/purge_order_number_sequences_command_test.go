package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSequencePurger struct{ mock.Mock }

func (m *MockSequencePurger) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func TestNewPurgeOrderNumberSequencesCommand(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	cmd, err := commands.NewPurgeOrderNumberSequencesCommand(time.Date(2024, 3, 8, 9, 0, 0, 0, jst))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC), cmd.Cutoff())

	_, err = commands.NewPurgeOrderNumberSequencesCommand(time.Time{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestPurgeOrderNumberSequencesCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cutoff := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)
	cmd, err := commands.NewPurgeOrderNumberSequencesCommand(cutoff)
	require.NoError(t, err)

	t.Run("returns removed count", func(t *testing.T) {
		purger := new(MockSequencePurger)
		purger.On("PurgeBefore", ctx, cutoff).Return(int64(4), nil).Once()

		handler := commands.NewPurgeOrderNumberSequencesCommandHandler(purger)
		removed, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, int64(4), removed)
		purger.AssertExpectations(t)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		purger := new(MockSequencePurger)
		purger.On("PurgeBefore", ctx, cutoff).Return(int64(0), errors.New("connection refused")).Once()

		handler := commands.NewPurgeOrderNumberSequencesCommandHandler(purger)
		_, err := handler.Handle(ctx, cmd)

		require.EqualError(t, err, "connection refused")
	})

	t.Run("rejects a zero command", func(t *testing.T) {
		handler := commands.NewPurgeOrderNumberSequencesCommandHandler(new(MockSequencePurger))
		_, err := handler.Handle(ctx, commands.PurgeOrderNumberSequencesCommand{})
		require.ErrorIs(t, err, commands.ErrPurgeOrderNumberSequencesCommandIsNotConstructed)
	})
}
