package wiki

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSemaphoreBoundsConcurrency(t *testing.T) {
	s := NewAdaptiveSemaphore(2, 1, 4)
	ctx := context.Background()

	require.NoError(t, s.Acquire(ctx))
	require.NoError(t, s.Acquire(ctx))

	// Third acquire must block until a release.
	blocked, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	err := s.Acquire(blocked)
	assert.Error(t, err)

	s.Release(true)
	require.NoError(t, s.Acquire(ctx))
	s.Release(true)
	s.Release(true)
}

func TestSemaphoreShrinksOnHighErrorRate(t *testing.T) {
	s := NewAdaptiveSemaphore(5, 1, 10)
	ctx := context.Background()

	// 10 samples, 3 failures = 30% error rate → shrink by 2.
	for i := 0; i < 10; i++ {
		require.NoError(t, s.Acquire(ctx))
		s.Release(i >= 3)
	}
	assert.Equal(t, 3, s.Limit())
}

func TestSemaphoreGrowsOnLowErrorRate(t *testing.T) {
	s := NewAdaptiveSemaphore(5, 1, 10)
	ctx := context.Background()

	// 10 clean samples → grow by 1.
	for i := 0; i < 10; i++ {
		require.NoError(t, s.Acquire(ctx))
		s.Release(true)
	}
	assert.Equal(t, 6, s.Limit())
}

func TestSemaphoreRespectsFloor(t *testing.T) {
	s := NewAdaptiveSemaphore(2, 2, 10)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		require.NoError(t, s.Acquire(ctx))
		s.Release(false)
	}
	assert.Equal(t, 2, s.Limit())
}

func TestSemaphoreCountersResetAfterAdjustment(t *testing.T) {
	s := NewAdaptiveSemaphore(5, 1, 10)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		require.NoError(t, s.Acquire(ctx))
		s.Release(true)
	}
	require.Equal(t, 6, s.Limit())

	// Nine more clean samples are below the sample minimum; no change yet.
	for i := 0; i < 9; i++ {
		require.NoError(t, s.Acquire(ctx))
		s.Release(true)
	}
	assert.Equal(t, 6, s.Limit())
}

func TestSemaphoreClampsConstructorArgs(t *testing.T) {
	s := NewAdaptiveSemaphore(50, 2, 10)
	assert.Equal(t, 10, s.Limit())

	s = NewAdaptiveSemaphore(0, 3, 10)
	assert.Equal(t, 3, s.Limit())
}
