package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastPolicy(attempts int) Policy {
	return Policy{Attempts: attempts, InitialInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond}
}

func TestDo_SucceedsAfterTransientFailures(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastPolicy(5), zerolog.Nop(), "db", func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection refused")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_GivesUpAfterAttempts(t *testing.T) {
	sentinel := errors.New("connection refused")
	calls := 0
	err := Do(context.Background(), fastPolicy(4), zerolog.Nop(), "db", func(context.Context) error {
		calls++
		return sentinel
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 4, calls)
	assert.Contains(t, err.Error(), "giving up after 4 attempt(s)")
}

func TestDo_StopsWhenContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Do(ctx, Policy{Attempts: 100, InitialInterval: 10 * time.Millisecond}, zerolog.Nop(), "amqp", func(context.Context) error {
		calls++
		cancel()
		return errors.New("unreachable")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_ZeroAttemptsRunsOnce(t *testing.T) {
	calls := 0
	_ = Do(context.Background(), Policy{}, zerolog.Nop(), "db", func(context.Context) error {
		calls++
		return errors.New("nope")
	})
	assert.Equal(t, 1, calls)
}
