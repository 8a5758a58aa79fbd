package wiki

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// resultCache is an LRU with distinct TTLs for successes and errors.
// Successful fetches stay cacheable for an hour; errors are retried after
// five minutes. Process-local; concurrent readers observe old or new values.
type resultCache[V any] struct {
	success *expirable.LRU[string, V]
	failure *expirable.LRU[string, V]
	metrics *MetricsCollector
}

func newResultCache[V any](size int, successTTL, errorTTL time.Duration, metrics *MetricsCollector) *resultCache[V] {
	return &resultCache[V]{
		success: expirable.NewLRU[string, V](size, nil, successTTL),
		failure: expirable.NewLRU[string, V](size, nil, errorTTL),
		metrics: metrics,
	}
}

// get checks the success cache, then the failure cache.
func (c *resultCache[V]) get(key string) (V, bool) {
	if v, ok := c.success.Get(key); ok {
		c.metrics.ObserveCache(true)
		return v, true
	}
	if v, ok := c.failure.Get(key); ok {
		c.metrics.ObserveCache(true)
		return v, true
	}
	c.metrics.ObserveCache(false)
	var zero V
	return zero, false
}

// put stores v under the TTL matching its outcome.
func (c *resultCache[V]) put(key string, v V, ok bool) {
	if ok {
		c.success.Add(key, v)
	} else {
		c.failure.Add(key, v)
	}
}

// cacheKey joins an operation name and its arguments into a cache key.
func cacheKey(op string, args ...string) string {
	return op + "|" + strings.Join(args, "|")
}
