package merger

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/chronicle-dev/chronicle/pkg/llm"
)

const matchSystemPrompt = `You decide whether two extracted historical event records describe the SAME real-world event.
Differences in language, phrasing, or detail level do not matter; the underlying incident must be identical.
Respond with JSON: {"is_same_event": bool, "confidence_score": <0.0-1.0>, "reasoning": "<one sentence>"}
Respond ONLY with JSON.`

// SemanticMatcher is the yes/no oracle deciding whether two events describe
// the same real-world incident.
type SemanticMatcher interface {
	Match(ctx context.Context, a, b *EventInput) (bool, error)
}

// llmMatcher adjudicates via the LLM with an order-independent verdict
// cache: Match(a,b) and Match(b,a) share an entry.
type llmMatcher struct {
	client              llm.Client
	confidenceThreshold float64
	cache               *lru.Cache[string, bool]
	cacheHits           atomic.Int64
}

func newLLMMatcher(client llm.Client, confidenceThreshold float64, cacheSize int) (*llmMatcher, error) {
	cache, err := lru.New[string, bool](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating verdict cache: %w", err)
	}
	return &llmMatcher{
		client:              client,
		confidenceThreshold: confidenceThreshold,
		cache:               cache,
	}, nil
}

// CacheHits returns how many verdicts were served from cache.
func (m *llmMatcher) CacheHits() int64 { return m.cacheHits.Load() }

// matchVerdict is the adjudication wire format.
type matchVerdict struct {
	IsSameEvent     bool    `json:"is_same_event"`
	ConfidenceScore float64 `json:"confidence_score"`
	Reasoning       string  `json:"reasoning"`
}

// Match implements SemanticMatcher. The verdict is true iff the model
// asserts the same event with confidence at or above the threshold.
func (m *llmMatcher) Match(ctx context.Context, a, b *EventInput) (bool, error) {
	key := pairKey(a, b)
	if verdict, ok := m.cache.Get(key); ok {
		m.cacheHits.Add(1)
		return verdict, nil
	}

	prompt := fmt.Sprintf("Event A:\n%s\n\nEvent B:\n%s", serializeEvent(a), serializeEvent(b))
	raw, err := m.client.GenerateChatCompletion(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: matchSystemPrompt},
		{Role: llm.RoleUser, Content: prompt},
	}, llm.Options{Temperature: llm.Temp(0), ResponseFormat: llm.ResponseFormatJSON})
	if err != nil {
		return false, err
	}

	var v matchVerdict
	if err := llm.ExtractJSON(raw, &v); err != nil {
		return false, err
	}

	verdict := v.IsSameEvent && v.ConfidenceScore >= m.confidenceThreshold
	m.cache.Add(key, verdict)
	return verdict, nil
}

// featureKey canonicalizes an event into its comparison features:
// description hash, sorted entity UUIDs, and year.
func featureKey(e *EventInput) string {
	year := "?"
	if e.EventYear != nil {
		year = fmt.Sprintf("%d", *e.EventYear)
	}
	return e.DescriptionHash + "|" + strings.Join(e.SortedEntityUUIDs(), ",") + "|" + year
}

// pairKey is the order-independent cache key for a pair of events.
func pairKey(a, b *EventInput) string {
	ka, kb := featureKey(a), featureKey(b)
	if ka > kb {
		ka, kb = kb, ka
	}
	return ka + "||" + kb
}

// serializeEvent renders an event for the adjudication prompt.
func serializeEvent(e *EventInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Description: %s\n", e.Description)
	fmt.Fprintf(&b, "Date: %s\n", e.EventDateStr)
	if e.DateRange != nil {
		fmt.Fprintf(&b, "Date range: %s .. %s\n", e.DateRange.Start, e.DateRange.End)
	}
	if len(e.Entities) > 0 {
		b.WriteString("Entities:\n")
		for _, ent := range e.Entities {
			fmt.Fprintf(&b, "  - %s (%s, %s)\n", ent.Name, ent.Type, ent.UUID)
		}
	}
	if e.Language != "" {
		fmt.Fprintf(&b, "Source language: %s\n", e.Language)
	}
	if e.Snippet != "" {
		fmt.Fprintf(&b, "Snippet: %s\n", e.Snippet)
	}
	return b.String()
}
