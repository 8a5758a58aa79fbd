package merger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronicle-dev/chronicle/pkg/dates"
	"github.com/chronicle-dev/chronicle/pkg/llm/llmtest"
)

// The cache key must be order-independent so Match(a,b) and Match(b,a)
// share one verdict.
func TestPairKeyOrderIndependent(t *testing.T) {
	a := mkEvent(1, "Alpha description.", yearDate(1900), "en", "E1", "E2")
	b := mkEvent(2, "Beta description.", yearDate(1901), "en", "E2", "E3")

	assert.Equal(t, pairKey(a, b), pairKey(b, a))
	assert.NotEqual(t, pairKey(a, b), pairKey(a, a))
}

func TestFeatureKeyUsesSortedEntities(t *testing.T) {
	a := NewEventInput(1, "Same text.", "", yearDate(1900), []EntityInfo{
		{Name: "B", Type: "t", UUID: "uuid-b"},
		{Name: "A", Type: "t", UUID: "uuid-a"},
	}, "en", "", "", "", nil)
	b := NewEventInput(2, "Same text.", "", yearDate(1900), []EntityInfo{
		{Name: "A", Type: "t", UUID: "uuid-a"},
		{Name: "B", Type: "t", UUID: "uuid-b"},
	}, "en", "", "", "", nil)

	assert.Equal(t, featureKey(a), featureKey(b))
}

func TestLLMMatcherCachesSymmetrically(t *testing.T) {
	client := llmtest.NewScripted(&llmtest.Rule{
		Response: `{"is_same_event": true, "confidence_score": 0.92, "reasoning": "same incident"}`,
	})
	matcher, err := newLLMMatcher(client, 0.75, 100)
	require.NoError(t, err)

	a := mkEvent(1, "The volcano erupted overnight.", yearDate(79), "en", "V")
	b := mkEvent(2, "An overnight eruption of the volcano.", yearDate(79), "la", "V")

	first, err := matcher.Match(context.Background(), a, b)
	require.NoError(t, err)
	assert.True(t, first)

	// Reversed order must hit the cache, not the LLM.
	second, err := matcher.Match(context.Background(), b, a)
	require.NoError(t, err)
	assert.True(t, second)
	assert.Equal(t, 1, client.CallCount())
	assert.Equal(t, int64(1), matcher.CacheHits())
}

// Confidence below the threshold rejects even when is_same_event is true.
func TestLLMMatcherConfidenceThreshold(t *testing.T) {
	client := llmtest.NewScripted(&llmtest.Rule{
		Response: `{"is_same_event": true, "confidence_score": 0.5, "reasoning": "maybe"}`,
	})
	matcher, err := newLLMMatcher(client, 0.75, 100)
	require.NoError(t, err)

	a := mkEvent(1, "Event one.", yearDate(1900), "en", "E")
	b := mkEvent(2, "Event two.", yearDate(1900), "en", "E")

	matched, err := matcher.Match(context.Background(), a, b)
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestSerializeEventIncludesMatchFeatures(t *testing.T) {
	e := NewEventInput(7, "The treaty was signed.", "June 1919",
		&dates.ParsedDate{Precision: dates.PrecisionMonth, StartYear: intp(1919), StartMonth: intp(6)},
		[]EntityInfo{{Name: "Versailles", Type: "location", UUID: "uuid-v"}},
		"en", "the snippet", "http://example", "Treaty", nil)

	s := serializeEvent(e)
	assert.Contains(t, s, "The treaty was signed.")
	assert.Contains(t, s, "June 1919")
	assert.Contains(t, s, "Versailles")
	assert.Contains(t, s, "uuid-v")
	assert.Contains(t, s, "the snippet")
}

func intp(v int) *int { return &v }
