package relevance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronicle-dev/chronicle/pkg/llm/llmtest"
)

func TestScoreArticlesClampsAndDefaults(t *testing.T) {
	client := llmtest.NewScripted(&llmtest.Rule{
		Contains: []string{"Articles:"},
		Response: `{"Apollo program": 1.7, "Saturn V": -0.3, "Moon": 0.8}`,
	})
	scorer := NewScorer(client, 10)

	scores, err := scorer.ScoreArticles(context.Background(), "the Apollo program", []ArticleInput{
		{Title: "Apollo program", Content: "..."},
		{Title: "Saturn V", Content: "..."},
		{Title: "Moon", Content: "..."},
		{Title: "Unscored article", Content: "..."},
	})
	require.NoError(t, err)
	assert.Equal(t, 1.0, scores["Apollo program"])
	assert.Equal(t, 0.0, scores["Saturn V"])
	assert.Equal(t, 0.8, scores["Moon"])
	// Missing titles imply zero.
	assert.Equal(t, 0.0, scores["Unscored article"])
}

func TestScoreArticlesTruncatesContent(t *testing.T) {
	client := llmtest.NewScripted(&llmtest.Rule{Response: `{"Long": 0.5}`})
	scorer := NewScorer(client, 10)

	long := make([]byte, 4000)
	for i := range long {
		long[i] = 'x'
	}
	_, err := scorer.ScoreArticles(context.Background(), "topic", []ArticleInput{
		{Title: "Long", Content: string(long)},
	})
	require.NoError(t, err)

	calls := client.Calls()
	require.Len(t, calls, 1)
	assert.Less(t, len(calls[0]), 2500)
}

func TestScoreEventsBatching(t *testing.T) {
	client := llmtest.NewScripted(&llmtest.Rule{
		Contains: []string{"Events:"},
		Response: `[{"event_index": 1, "relevance_score": 0.9}, {"event_index": 2, "relevance_score": 0.4}]`,
	})
	scorer := NewScorer(client, 2)

	scores := scorer.ScoreEvents(context.Background(), "topic", []EventInput{
		{ID: 11, Description: "a"},
		{ID: 22, Description: "b"},
		{ID: 33, Description: "c"},
		{ID: 44, Description: "d"},
	})

	// Two batches of two, indexes 1-based within each batch.
	assert.Equal(t, 0.9, scores[11])
	assert.Equal(t, 0.4, scores[22])
	assert.Equal(t, 0.9, scores[33])
	assert.Equal(t, 0.4, scores[44])
	assert.Equal(t, 2, client.CallCount())
}

func TestScoreEventsDiscardsOutOfRangeIndexes(t *testing.T) {
	client := llmtest.NewScripted(&llmtest.Rule{
		Response: `[{"event_index": 0, "relevance_score": 0.9}, {"event_index": 7, "relevance_score": 0.9}, {"event_index": 1, "relevance_score": 0.6}]`,
	})
	scorer := NewScorer(client, 10)

	scores := scorer.ScoreEvents(context.Background(), "topic", []EventInput{
		{ID: 5, Description: "only event"},
	})
	assert.Equal(t, map[int]float64{5: 0.6}, scores)
}

func TestScoreEventsFallsBackPerEvent(t *testing.T) {
	// First (batch) call fails to parse; per-event retries succeed.
	client := llmtest.NewScripted(
		&llmtest.Rule{Response: "garbage", Times: 1},
		&llmtest.Rule{Response: `[{"event_index": 1, "relevance_score": 0.7}]`},
	)
	scorer := NewScorer(client, 10)

	scores := scorer.ScoreEvents(context.Background(), "topic", []EventInput{
		{ID: 1, Description: "a"},
		{ID: 2, Description: "b"},
	})
	assert.Equal(t, 0.7, scores[1])
	assert.Equal(t, 0.7, scores[2])
	// 1 failed batch + 2 per-event calls.
	assert.Equal(t, 3, client.CallCount())
}

func TestScoreEventsUnknownStaysAbsent(t *testing.T) {
	client := llmtest.NewScripted(
		&llmtest.Rule{Response: "garbage"},
	)
	scorer := NewScorer(client, 10)

	scores := scorer.ScoreEvents(context.Background(), "topic", []EventInput{{ID: 9, Description: "x"}})
	_, ok := scores[9]
	assert.False(t, ok, "failed scoring must leave the event unknown, not zero")
}
