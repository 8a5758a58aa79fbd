package wiki

import (
	"sync"
	"time"

	"github.com/chronicle-dev/chronicle/pkg/retry"
)

// MetricsCollector records wiki request outcomes: request counts,
// success/failure totals, response times, an error-type histogram, and the
// cache hit rate. Safe for concurrent use.
type MetricsCollector struct {
	mu sync.Mutex

	requests      int64
	successes     int64
	failures      int64
	totalDuration time.Duration
	errorTypes    map[retry.ErrorType]int64

	cacheHits   int64
	cacheMisses int64
}

// NewMetricsCollector creates an empty collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		errorTypes: make(map[retry.ErrorType]int64),
	}
}

// ObserveAttempt implements retry.Observer.
func (m *MetricsCollector) ObserveAttempt(_ string, errType retry.ErrorType, success bool, elapsed time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests++
	m.totalDuration += elapsed
	if success {
		m.successes++
		return
	}
	m.failures++
	m.errorTypes[errType]++
}

// ObserveCache records a cache lookup outcome.
func (m *MetricsCollector) ObserveCache(hit bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if hit {
		m.cacheHits++
	} else {
		m.cacheMisses++
	}
}

// Snapshot is a point-in-time copy of collected metrics.
type Snapshot struct {
	Requests        int64                     `json:"requests"`
	Successes       int64                     `json:"successes"`
	Failures        int64                     `json:"failures"`
	AvgResponseTime time.Duration             `json:"avg_response_time"`
	ErrorTypes      map[retry.ErrorType]int64 `json:"error_types"`
	CacheHitRate    float64                   `json:"cache_hit_rate"`
}

// Snapshot returns a copy of the current metrics.
func (m *MetricsCollector) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := Snapshot{
		Requests:   m.requests,
		Successes:  m.successes,
		Failures:   m.failures,
		ErrorTypes: make(map[retry.ErrorType]int64, len(m.errorTypes)),
	}
	for k, v := range m.errorTypes {
		s.ErrorTypes[k] = v
	}
	if m.requests > 0 {
		s.AvgResponseTime = m.totalDuration / time.Duration(m.requests)
	}
	if lookups := m.cacheHits + m.cacheMisses; lookups > 0 {
		s.CacheHitRate = float64(m.cacheHits) / float64(lookups)
	}
	return s
}
