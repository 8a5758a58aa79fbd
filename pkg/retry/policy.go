package retry

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"
)

// maxDelay caps every backoff delay regardless of error type.
const maxDelay = 30 * time.Second

// rule describes the retry behavior for one error type.
type rule struct {
	maxRetries int
	multiplier float64
}

// policyTable maps error types to their retry rules. RateLimit backs off
// aggressively (base·3^n); ServerBusy uses base·2^n; Timeout and Network use
// a linear base·(n+1) ramp. NotFound and ContentFilter are never retried.
var policyTable = map[ErrorType]rule{
	ErrorTypeTimeout:       {maxRetries: 3, multiplier: 1},
	ErrorTypeRateLimit:     {maxRetries: 5, multiplier: 3},
	ErrorTypeServerBusy:    {maxRetries: 4, multiplier: 2},
	ErrorTypeNotFound:      {maxRetries: 0},
	ErrorTypeNetwork:       {maxRetries: 3, multiplier: 1},
	ErrorTypeContentFilter: {maxRetries: 0},
	ErrorTypeUnknown:       {maxRetries: 0},
}

// MaxRetries returns the retry budget for the given error type.
func MaxRetries(t ErrorType) int {
	return policyTable[t].maxRetries
}

// Delay returns the backoff delay before retry attempt `attempt` (0-based)
// for the given error type, capped at 30s.
func Delay(t ErrorType, attempt int, base time.Duration) time.Duration {
	r := policyTable[t]
	var d time.Duration
	switch {
	case r.multiplier > 1:
		// First retry waits base·m, then base·m², base·m³, ...
		d = time.Duration(float64(base) * math.Pow(r.multiplier, float64(attempt+1)))
	default:
		d = base * time.Duration(attempt+1)
	}
	if d > maxDelay {
		d = maxDelay
	}
	return d
}

// Observer receives the outcome of each attempt. Implemented by the wiki
// metrics collector; a nil Observer is valid.
type Observer interface {
	ObserveAttempt(op string, errType ErrorType, success bool, elapsed time.Duration)
}

// Options configures a Do call.
type Options struct {
	// BaseDelay is the backoff base (default 1s).
	BaseDelay time.Duration
	// Observer, when non-nil, is notified after every attempt.
	Observer Observer
	// Sleep replaces time.Sleep in tests. The default honors ctx cancellation.
	Sleep func(ctx context.Context, d time.Duration) error
}

func (o *Options) sleep(ctx context.Context, d time.Duration) error {
	if o.Sleep != nil {
		return o.Sleep(ctx, d)
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Do runs fn with the retry policy table. The worst case for error type T is
// exactly MaxRetries(T)+1 calls. A change of error type mid-sequence switches
// to the new type's budget, counted from the attempts already made.
func Do[T any](ctx context.Context, op string, opts Options, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = time.Second
	}

	attempt := 0
	for {
		start := time.Now()
		result, err := fn(ctx)
		elapsed := time.Since(start)
		if err == nil {
			if opts.Observer != nil {
				opts.Observer.ObserveAttempt(op, "", true, elapsed)
			}
			return result, nil
		}

		errType := TypeOf(err)
		if opts.Observer != nil {
			opts.Observer.ObserveAttempt(op, errType, false, elapsed)
		}

		if attempt >= MaxRetries(errType) {
			return zero, fmt.Errorf("%s failed after %d attempt(s): %w", op, attempt+1, err)
		}

		delay := Delay(errType, attempt, opts.BaseDelay)
		slog.Debug("Retrying after upstream failure",
			"operation", op, "error_type", errType, "attempt", attempt+1, "delay", delay)
		if err := opts.sleep(ctx, delay); err != nil {
			return zero, err
		}
		attempt++
	}
}
