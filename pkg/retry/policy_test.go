package retry

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noSleep(_ context.Context, _ time.Duration) error { return nil }

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"rate limit status", &StatusError{StatusCode: http.StatusTooManyRequests}, ErrorTypeRateLimit},
		{"not found status", &StatusError{StatusCode: http.StatusNotFound}, ErrorTypeNotFound},
		{"service unavailable", &StatusError{StatusCode: http.StatusServiceUnavailable}, ErrorTypeServerBusy},
		{"bad gateway", &StatusError{StatusCode: http.StatusBadGateway}, ErrorTypeServerBusy},
		{"request timeout", &StatusError{StatusCode: http.StatusRequestTimeout}, ErrorTypeTimeout},
		{"generic 500", &StatusError{StatusCode: 500}, ErrorTypeServerBusy},
		{"deadline exceeded", context.DeadlineExceeded, ErrorTypeTimeout},
		{"rate limit text", errors.New("429 rate limit exceeded"), ErrorTypeRateLimit},
		{"connection refused", errors.New("dial tcp: connection refused"), ErrorTypeNetwork},
		{"content filter", errors.New("blocked by content_filter policy"), ErrorTypeContentFilter},
		{"mystery", errors.New("something odd"), ErrorTypeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestTypeOfPrefersClassifiedError(t *testing.T) {
	err := NewClassifiedError(ErrorTypeContentFilter, errors.New("refused"))
	wrapped := errors.Join(errors.New("outer"), err)
	assert.Equal(t, ErrorTypeContentFilter, TypeOf(wrapped))
}

// The retry wrapper must attempt exactly max_retries+1 calls in the worst
// case for each error type, and no more.
func TestDoAttemptBudgetPerErrorType(t *testing.T) {
	tests := []struct {
		errType      ErrorType
		wantAttempts int
	}{
		{ErrorTypeTimeout, 4},
		{ErrorTypeRateLimit, 6},
		{ErrorTypeServerBusy, 5},
		{ErrorTypeNotFound, 1},
		{ErrorTypeNetwork, 4},
		{ErrorTypeContentFilter, 1},
		{ErrorTypeUnknown, 1},
	}
	for _, tt := range tests {
		t.Run(string(tt.errType), func(t *testing.T) {
			attempts := 0
			_, err := Do(context.Background(), "op", Options{Sleep: noSleep}, func(ctx context.Context) (int, error) {
				attempts++
				return 0, NewClassifiedError(tt.errType, errors.New("boom"))
			})
			require.Error(t, err)
			assert.Equal(t, tt.wantAttempts, attempts)
		})
	}
}

func TestDoSucceedsAfterRetries(t *testing.T) {
	attempts := 0
	got, err := Do(context.Background(), "op", Options{Sleep: noSleep}, func(ctx context.Context) (string, error) {
		attempts++
		if attempts <= 3 {
			return "", &StatusError{StatusCode: http.StatusTooManyRequests}
		}
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 4, attempts)
}

// Rate-limit backoff is base·3, base·9, base·27, capped at 30s.
func TestRateLimitDelays(t *testing.T) {
	base := time.Second
	assert.Equal(t, 3*time.Second, Delay(ErrorTypeRateLimit, 0, base))
	assert.Equal(t, 9*time.Second, Delay(ErrorTypeRateLimit, 1, base))
	assert.Equal(t, 27*time.Second, Delay(ErrorTypeRateLimit, 2, base))
	assert.Equal(t, 30*time.Second, Delay(ErrorTypeRateLimit, 3, base))
}

func TestServerBusyDelays(t *testing.T) {
	base := time.Second
	assert.Equal(t, 2*time.Second, Delay(ErrorTypeServerBusy, 0, base))
	assert.Equal(t, 4*time.Second, Delay(ErrorTypeServerBusy, 1, base))
	assert.Equal(t, 8*time.Second, Delay(ErrorTypeServerBusy, 2, base))
}

func TestDelayCap(t *testing.T) {
	assert.Equal(t, maxDelay, Delay(ErrorTypeRateLimit, 10, time.Second))
}

// S4: one call rate-limited three times then succeeding records the three
// sleeps and the observer sees 3 failures + 1 success.
func TestRateLimitRecoveryScenario(t *testing.T) {
	var slept []time.Duration
	obs := &recordingObserver{}

	attempts := 0
	_, err := Do(context.Background(), "llm.call", Options{
		Observer: obs,
		Sleep: func(_ context.Context, d time.Duration) error {
			slept = append(slept, d)
			return nil
		},
	}, func(ctx context.Context) (string, error) {
		attempts++
		if attempts <= 3 {
			return "", &StatusError{StatusCode: http.StatusTooManyRequests}
		}
		return "done", nil
	})
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{3 * time.Second, 9 * time.Second, 27 * time.Second}, slept)
	assert.Equal(t, 3, obs.failures)
	assert.Equal(t, 1, obs.successes)
}

func TestDoStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0
	_, err := Do(ctx, "op", Options{
		Sleep: func(ctx context.Context, _ time.Duration) error {
			cancel()
			return ctx.Err()
		},
	}, func(ctx context.Context) (int, error) {
		attempts++
		return 0, NewClassifiedError(ErrorTypeNetwork, errors.New("down"))
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
}

type recordingObserver struct {
	successes int
	failures  int
}

func (o *recordingObserver) ObserveAttempt(_ string, _ ErrorType, success bool, _ time.Duration) {
	if success {
		o.successes++
	} else {
		o.failures++
	}
}
