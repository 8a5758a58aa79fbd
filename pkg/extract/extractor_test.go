package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronicle-dev/chronicle/pkg/dates"
	"github.com/chronicle-dev/chronicle/pkg/llm"
	"github.com/chronicle-dev/chronicle/pkg/llm/llmtest"
)

const extractionResponse = `[
	{
		"event_description": "Apollo 11 landed on the Moon.",
		"event_date_str": "July 20, 1969",
		"enhanced_event_date_str": null,
		"main_entities": [{"name": "Apollo 11", "type": "other", "language": "en"}],
		"source_text_snippet": "Apollo 11 landed on the Moon on July 20, 1969."
	},
	{
		"event_description": "Apollo 11 landed on the Moon.",
		"event_date_str": "July 20, 1969",
		"enhanced_event_date_str": null,
		"main_entities": [],
		"source_text_snippet": "duplicate assertion"
	},
	{
		"event_description": "Apollo 8 orbited the Moon.",
		"event_date_str": "December 1968",
		"enhanced_event_date_str": "late December 1968",
		"main_entities": [{"name": "Apollo 8", "type": "other", "language": "en"}],
		"source_text_snippet": "Apollo 8 orbited the Moon in December 1968."
	}
]`

const dateBatchResponse = `[
	{"id": "0", "original_text": "July 20, 1969", "precision": "day",
	 "start_year": 1969, "start_month": 7, "start_day": 20,
	 "end_year": 1969, "end_month": 7, "end_day": 20, "is_bce": false},
	{"id": "2", "original_text": "December 1968(late December 1968)", "precision": "month",
	 "start_year": 1968, "start_month": 12, "start_day": null,
	 "end_year": 1968, "end_month": 12, "end_day": null, "is_bce": false}
]`

func newTestExtractor(rules ...*llmtest.Rule) *Extractor {
	client := llmtest.NewScripted(rules...)
	return NewExtractor(client, dates.NewParser(client))
}

// Within-article dedup: two identical (description, date) pairs emit one
// event.
func TestExtractEventsDeduplicatesWithinArticle(t *testing.T) {
	extractor := newTestExtractor(
		&llmtest.Rule{Contains: []string{"atomic historical events"}, Response: extractionResponse},
		&llmtest.Rule{Contains: []string{"date strings"}, Response: dateBatchResponse},
	)

	events, err := extractor.ExtractEvents(context.Background(), "article text")
	require.NoError(t, err)
	require.Len(t, events, 2)

	seen := map[string]bool{}
	for _, ev := range events {
		sig := ContentHash(ev.Description, ev.EventDateStr)
		assert.False(t, seen[sig], "duplicate content hash emitted")
		seen[sig] = true
	}
}

// The enhanced date string is combined as "{raw}({enhanced})" for parsing
// but the event keeps the raw string.
func TestExtractEventsCombinesEnhancedDateForParsing(t *testing.T) {
	client := llmtest.NewScripted(
		&llmtest.Rule{Contains: []string{"atomic historical events"}, Response: extractionResponse},
		&llmtest.Rule{Contains: []string{"date strings"}, Response: dateBatchResponse},
	)
	extractor := NewExtractor(client, dates.NewParser(client))

	events, err := extractor.ExtractEvents(context.Background(), "article text")
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "December 1968", events[1].EventDateStr)
	require.NotNil(t, events[1].DateInfo)
	assert.Equal(t, dates.PrecisionMonth, events[1].DateInfo.Precision)

	calls := client.Calls()
	require.Len(t, calls, 2)
	assert.Contains(t, calls[1], "December 1968(late December 1968)")
}

// Content-filter refusals yield an empty list, not an error.
func TestExtractEventsContentFilterReturnsEmpty(t *testing.T) {
	extractor := newTestExtractor(
		&llmtest.Rule{Contains: []string{"atomic historical events"}, Err: llm.ErrContentFiltered},
	)

	events, err := extractor.ExtractEvents(context.Background(), "article text")
	require.NoError(t, err)
	assert.Empty(t, events)
}

// A failed date batch leaves events with raw date strings only.
func TestExtractEventsSurvivesDateParseFailure(t *testing.T) {
	extractor := newTestExtractor(
		&llmtest.Rule{Contains: []string{"atomic historical events"}, Response: extractionResponse},
		&llmtest.Rule{Contains: []string{"date strings"}, Response: "not json at all"},
	)

	events, err := extractor.ExtractEvents(context.Background(), "article text")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Nil(t, events[0].DateInfo)
	assert.Equal(t, "July 20, 1969", events[0].EventDateStr)
}

func TestContentHashDistinguishesDates(t *testing.T) {
	a := ContentHash("Treaty signed.", "1648")
	b := ContentHash("Treaty signed.", "1649")
	assert.NotEqual(t, a, b)
}
