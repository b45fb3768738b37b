// Package retry runs startup operations under a bounded exponential backoff.
package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

type Policy struct {
	Attempts        int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		Attempts:        5,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
	}
}

// Do calls op until it succeeds, the attempts are used up or ctx is done.
// The last error from op is returned, wrapped with name.
func Do(ctx context.Context, p Policy, log zerolog.Logger, name string, op func(ctx context.Context) error) error {
	if p.Attempts < 1 {
		p.Attempts = 1
	}

	eb := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		eb.InitialInterval = p.InitialInterval
	}
	if p.MaxInterval > 0 {
		eb.MaxInterval = p.MaxInterval
	}
	eb.MaxElapsedTime = 0

	b := backoff.WithContext(backoff.WithMaxRetries(eb, uint64(p.Attempts-1)), ctx)

	attempt := 0
	err := backoff.RetryNotify(func() error {
		attempt++
		return op(ctx)
	}, b, func(err error, wait time.Duration) {
		log.Warn().Err(err).
			Str("target", name).
			Int("attempt", attempt).
			Dur("retry_in", wait).
			Msg("Connection attempt failed")
	})
	if err != nil {
		return fmt.Errorf("%s: giving up after %d attempt(s): %w", name, attempt, err)
	}
	return nil
}
