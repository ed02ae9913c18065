package retry

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"
)

const defaultDelay = 100 * time.Millisecond

type Config struct {
	MaxAttempts int
	Delay       time.Duration
}

func (c *Config) normalize() {
	if c.MaxAttempts == 0 {
		c.MaxAttempts = 1
	}
	if c.Delay == 0 {
		c.Delay = defaultDelay
	}
}

// backoff returns the exponential wait before the next attempt,
// with up to half the base added as jitter.
func (c Config) backoff(attempt int) time.Duration {
	base := (1 << attempt) * c.Delay
	jitter := time.Duration(rand.Int64N(int64(base/2) + 1))
	return base + jitter
}

// Do calls fn until it succeeds, MaxAttempts is reached or ctx is
// done. The last error is returned.
func Do(ctx context.Context, c Config, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.normalize()
	timer := time.NewTimer(0)
	defer timer.Stop()

	var err error
	for attempt := 1; attempt <= c.MaxAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt == c.MaxAttempts {
			break
		}

		timer.Reset(c.backoff(attempt))
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ctx.Err(), err)
		case <-timer.C:
		}
	}
	return err
}
