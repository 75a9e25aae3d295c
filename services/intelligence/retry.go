// File: services/intelligence/retry.go
package intelligence

import (
	"context"
	"time"
)

const (
	// DefaultMaxAttempts is the total attempt budget per model call.
	DefaultMaxAttempts = 3
	// DefaultRetryDelay is the fixed wait between attempts.
	DefaultRetryDelay = time.Second
)

// retrySleep waits out the inter-attempt delay. Tests swap it out to keep
// failure paths fast and to count delays.
var retrySleep = func(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Retry invokes fn, waiting the fixed delay after each failure until the
// attempt budget is spent, then returns the last failure. A bare linear
// policy: no backoff growth, no jitter.
func Retry[T any](ctx context.Context, attempts int, delay time.Duration, fn func() (T, error)) (T, error) {
	if attempts < 1 {
		attempts = 1
	}

	var zero T
	var lastErr error
	for i := 0; i < attempts; i++ {
		v, err := fn()
		if err == nil {
			return v, nil
		}
		lastErr = err
		if i < attempts-1 {
			if serr := retrySleep(ctx, delay); serr != nil {
				return zero, lastErr
			}
		}
	}
	return zero, lastErr
}
