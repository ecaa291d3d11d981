// Package retry runs an operation under a bounded retry policy.
package retry

import (
	"context"
	"time"
)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// Policy bounds how an operation is retried.
type Policy struct {
	// Delays holds the wait before each retry; the operation is attempted
	// len(Delays)+1 times at most.
	Delays []time.Duration

	// Retryable classifies errors. A nil Retryable retries every error;
	// an error it rejects ends the loop immediately.
	Retryable func(error) bool

	// Logger, if set, is called before each retry.
	Logger LogFunc
}

// DefaultDelays returns the delays used for help-center requests:
// three attempts, two seconds apart.
func DefaultDelays() []time.Duration {
	return []time.Duration{2 * time.Second, 2 * time.Second}
}

// MaxAttempts returns the total number of attempts the policy allows.
func (p Policy) MaxAttempts() int {
	return len(p.Delays) + 1
}

// Do calls fn until it succeeds, returns a non-retryable error, or the
// attempts are exhausted. It returns the last error.
func Do[T any](ctx context.Context, p Policy, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	maxAttempts := p.MaxAttempts()

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err

		if p.Retryable != nil && !p.Retryable(err) {
			break
		}

		// Don't retry after the last attempt
		if attempt >= maxAttempts-1 {
			break
		}

		if err := ctx.Err(); err != nil {
			return zero, err
		}

		if p.Logger != nil {
			p.Logger("retry %d/%d: %v", attempt+1, maxAttempts, err)
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(p.Delays[attempt]):
		}
	}

	return zero, lastErr
}
