// Package retry implements bounded exponential-backoff retry as a single
// generic higher-order operation. Every provider call-site applies its own
// Policy value; there is no shared mutable state between invocations.
package retry

import (
	"context"
	"time"
)

// backoffMultiplier is fixed: the wait doubles after every failed attempt.
const backoffMultiplier = 2

// Policy describes one call-site's retry behavior.
type Policy struct {
	// MaxAttempts is the total number of attempts, including the first.
	// Values below 1 are treated as 1.
	MaxAttempts int
	// InitialDelay is the wait after the first failed attempt. Subsequent
	// waits double: InitialDelay * 2^attemptIndex.
	InitialDelay time.Duration
}

// Delay returns the wait before attempt number attempt+1 (zero-based index of
// the attempt that just failed).
func (p Policy) Delay(attempt int) time.Duration {
	d := p.InitialDelay
	for i := 0; i < attempt; i++ {
		d *= backoffMultiplier
	}
	return d
}

// sleep waits for d or until ctx is done. Swapped out in tests.
var sleep = func(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Do runs fn up to p.MaxAttempts times sequentially, waiting p.Delay(i) after
// the i-th failure (no wait after the final attempt). Only the last error is
// returned; intermediate errors are discarded. A context cancellation during
// a backoff wait ends the loop with the last attempt's error.
func Do[T any](ctx context.Context, p Policy, fn func(context.Context) (T, error)) (T, error) {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var (
		result  T
		lastErr error
	)
	for i := 0; i < attempts; i++ {
		result, lastErr = fn(ctx)
		if lastErr == nil {
			return result, nil
		}
		if i == attempts-1 {
			break
		}
		if err := sleep(ctx, p.Delay(i)); err != nil {
			break
		}
	}

	var zero T
	return zero, lastErr
}
