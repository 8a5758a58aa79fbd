package wiki

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Adaptive semaphore tuning constants.
const (
	adjustmentWindow  = 60 * time.Second
	minSamples        = 10
	shrinkErrorRate   = 0.15
	growErrorRate     = 0.05
	shrinkStep        = 2
	growStep          = 1
)

// AdaptiveSemaphore is a concurrency gate that adjusts its limit based on
// observed success rates over a sliding window. After at least 10 samples in
// a 60s window: error rate above 15% shrinks the limit by 2 (down to min);
// below 5% grows it by 1 (up to max). Counters reset after each adjustment.
type AdaptiveSemaphore struct {
	mu      sync.Mutex
	cond    *sync.Cond
	limit   int
	min     int
	max     int
	held    int

	windowStart time.Time
	successes   int
	failures    int
}

// NewAdaptiveSemaphore creates a semaphore bounded to [min, max] starting at
// initial.
func NewAdaptiveSemaphore(initial, min, max int) *AdaptiveSemaphore {
	if min < 1 {
		min = 1
	}
	if max < min {
		max = min
	}
	if initial < min {
		initial = min
	}
	if initial > max {
		initial = max
	}
	s := &AdaptiveSemaphore{
		limit:       initial,
		min:         min,
		max:         max,
		windowStart: time.Now(),
	}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Acquire blocks until a slot is available or ctx is done.
func (s *AdaptiveSemaphore) Acquire(ctx context.Context) error {
	// Wake waiters on cancellation; Broadcast is cheap relative to the
	// HTTP work gated here.
	stop := context.AfterFunc(ctx, func() {
		s.mu.Lock()
		s.cond.Broadcast()
		s.mu.Unlock()
	})
	defer stop()

	s.mu.Lock()
	defer s.mu.Unlock()
	for s.held >= s.limit {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.cond.Wait()
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	s.held++
	return nil
}

// Release frees a slot and records the outcome of the guarded operation.
func (s *AdaptiveSemaphore) Release(success bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.held > 0 {
		s.held--
	}
	if success {
		s.successes++
	} else {
		s.failures++
	}
	s.maybeAdjustLocked()
	s.cond.Broadcast()
}

// Limit returns the current concurrency limit.
func (s *AdaptiveSemaphore) Limit() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.limit
}

// maybeAdjustLocked applies the adjustment rule. Caller holds s.mu.
func (s *AdaptiveSemaphore) maybeAdjustLocked() {
	total := s.successes + s.failures
	if total < minSamples {
		if time.Since(s.windowStart) > adjustmentWindow {
			// Stale window with too few samples: restart it.
			s.resetWindowLocked()
		}
		return
	}

	errorRate := float64(s.failures) / float64(total)
	old := s.limit
	switch {
	case errorRate > shrinkErrorRate:
		s.limit -= shrinkStep
		if s.limit < s.min {
			s.limit = s.min
		}
	case errorRate < growErrorRate:
		s.limit += growStep
		if s.limit > s.max {
			s.limit = s.max
		}
	default:
		s.resetWindowLocked()
		return
	}

	if s.limit != old {
		slog.Info("Adaptive semaphore adjusted concurrency",
			"old_limit", old, "new_limit", s.limit,
			"error_rate", errorRate, "samples", total)
	}
	s.resetWindowLocked()
}

func (s *AdaptiveSemaphore) resetWindowLocked() {
	s.successes = 0
	s.failures = 0
	s.windowStart = time.Now()
}
