package siteqa

import (
	"context"
	"time"
)

// RetryPolicy bounds retries of operations against external services.
// The zero value performs a single attempt with no retries.
type RetryPolicy struct {
	// Delays holds the backoff delay before each retry. An operation is
	// attempted len(Delays)+1 times in total.
	Delays []time.Duration
}

// DefaultRetryPolicy returns the standard policy: 3 retries (4 total
// attempts) with exponential backoff of 1s, 2s, 4s.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{Delays: []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}}
}

// Do runs op until it succeeds, fails permanently, or the attempt budget is
// exhausted, sleeping between attempts. Permanent errors (see Transient) are
// returned immediately. Context cancellation interrupts the backoff sleep.
func (p RetryPolicy) Do(ctx context.Context, op func(ctx context.Context) error) error {
	maxAttempts := len(p.Delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}
		if !Transient(lastErr) {
			return lastErr
		}
		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.Delays[attempt]):
		}
	}

	return lastErr
}
