package canonical

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronicle-dev/chronicle/ent/rawevent"
	"github.com/chronicle-dev/chronicle/ent/sourcedocument"
	"github.com/chronicle-dev/chronicle/ent/viewpoint"
	"github.com/chronicle-dev/chronicle/pkg/articles"
	"github.com/chronicle-dev/chronicle/pkg/dates"
	"github.com/chronicle-dev/chronicle/pkg/entitylink"
	"github.com/chronicle-dev/chronicle/pkg/extract"
	"github.com/chronicle-dev/chronicle/pkg/llm/llmtest"
	testdb "github.com/chronicle-dev/chronicle/test/database"
)

const articleExtraction = `[
	{
		"event_description": "The fleet was destroyed at Trafalgar.",
		"event_date_str": "21 October 1805",
		"enhanced_event_date_str": null,
		"main_entities": [{"name": "Trafalgar", "type": "location", "language": "en"}],
		"source_text_snippet": "the combined fleet was destroyed at Trafalgar"
	},
	{
		"event_description": "Nelson was mortally wounded.",
		"event_date_str": "21 October 1805",
		"enhanced_event_date_str": null,
		"main_entities": [{"name": "Horatio Nelson", "type": "person", "language": "en"}],
		"source_text_snippet": "Nelson fell during the action"
	}
]`

const articleDates = `[
	{"id": "0", "original_text": "21 October 1805", "precision": "day",
	 "start_year": 1805, "start_month": 10, "start_day": 21,
	 "end_year": 1805, "end_month": 10, "end_day": 21, "is_bce": false},
	{"id": "1", "original_text": "21 October 1805", "precision": "day",
	 "start_year": 1805, "start_month": 10, "start_day": 21,
	 "end_year": 1805, "end_month": 10, "end_day": 21, "is_bce": false}
]`

func testArticle() articles.SourceArticle {
	return articles.SourceArticle{
		SourceName:       "online_wikipedia",
		SourceIdentifier: "30864",
		Title:            "Battle of Trafalgar",
		SourceURL:        "https://en.wikipedia.org/?curid=30864",
		Language:         "en",
		SourceType:       "wikipedia",
		Text:             "article text about the battle",
	}
}

func TestGetOrCreateCanonicalPersistsAtomically(t *testing.T) {
	client := testdb.NewTestClient(t)
	llmClient := llmtest.NewScripted(
		&llmtest.Rule{Contains: []string{"atomic historical events"}, Response: articleExtraction},
		&llmtest.Rule{Contains: []string{"date strings"}, Response: articleDates},
	)
	extractor := extract.NewExtractor(llmClient, dates.NewParser(llmClient))
	store := NewStore(client.Client, extractor, entitylink.NewLinker(client.Client, nil), false)
	ctx := context.Background()

	eventIDs, err := store.GetOrCreateCanonical(ctx, testArticle(), "online_wikipedia")
	require.NoError(t, err)
	require.Len(t, eventIDs, 2)

	doc, err := client.SourceDocument.Query().
		Where(sourcedocument.SourceIdentifierEQ("30864")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, sourcedocument.ProcessingStatusCompleted, doc.ProcessingStatus)

	vp, err := doc.QueryCanonicalViewpoint().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, viewpoint.StatusCompleted, vp.Status)
	assert.Equal(t, viewpoint.ViewpointTypeCanonical, vp.ViewpointType)

	// Viewpoint completeness: a completed viewpoint has events.
	vpEvents, err := vp.QueryEvents().All(ctx)
	require.NoError(t, err)
	assert.Len(t, vpEvents, 2)

	// Raw event uniqueness per document.
	raws, err := client.RawEvent.Query().
		Where(rawevent.SourceDocumentIDEQ(doc.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, raws, 2)
	sigs := map[string]bool{}
	for _, r := range raws {
		assert.False(t, sigs[r.DedupSignature], "duplicate dedup signature")
		sigs[r.DedupSignature] = true
	}

	// Events carry their entities.
	entityCount, err := client.Entity.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, entityCount)
}

// With reuse enabled, a second call returns the same events without running
// extraction again.
func TestGetOrCreateCanonicalReuseHit(t *testing.T) {
	client := testdb.NewTestClient(t)
	llmClient := llmtest.NewScripted(
		&llmtest.Rule{Contains: []string{"atomic historical events"}, Response: articleExtraction},
		&llmtest.Rule{Contains: []string{"date strings"}, Response: articleDates},
	)
	extractor := extract.NewExtractor(llmClient, dates.NewParser(llmClient))
	store := NewStore(client.Client, extractor, entitylink.NewLinker(client.Client, nil), true)
	ctx := context.Background()

	first, err := store.GetOrCreateCanonical(ctx, testArticle(), "online_wikipedia")
	require.NoError(t, err)
	callsAfterFirst := llmClient.CallCount()

	second, err := store.GetOrCreateCanonical(ctx, testArticle(), "online_wikipedia")
	require.NoError(t, err)

	assert.ElementsMatch(t, first, second)
	assert.Equal(t, callsAfterFirst, llmClient.CallCount(), "reuse hit must not call the LLM")
}

func TestGetOrCreateCanonicalEmptyExtraction(t *testing.T) {
	client := testdb.NewTestClient(t)
	llmClient := llmtest.NewScripted(
		&llmtest.Rule{Contains: []string{"atomic historical events"}, Response: `[]`},
	)
	extractor := extract.NewExtractor(llmClient, dates.NewParser(llmClient))
	store := NewStore(client.Client, extractor, entitylink.NewLinker(client.Client, nil), false)

	eventIDs, err := store.GetOrCreateCanonical(context.Background(), testArticle(), "online_wikipedia")
	require.NoError(t, err)
	assert.Empty(t, eventIDs)
}

func TestSignatureIncludesDocumentID(t *testing.T) {
	a := Signature(1, "desc", "1805")
	b := Signature(2, "desc", "1805")
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, Signature(1, "desc", "1805"))
}
