// Package merger deduplicates extracted events into merged groups using
// multi-dimensional indexing, rule-based matching, and windowed concurrent
// LLM adjudication.
package merger

import (
	"crypto/md5"
	"encoding/hex"
	"sort"
	"time"

	"github.com/chronicle-dev/chronicle/pkg/dates"
)

// EntityInfo is one entity attached to an event.
type EntityInfo struct {
	Name string `json:"name"`
	Type string `json:"type"`
	UUID string `json:"uuid"`
}

// EventInput is a merger input event with its precomputed match features.
// Build instances with NewEventInput so the features stay consistent.
type EventInput struct {
	ID           int
	Description  string
	EventDateStr string
	DateInfo     *dates.ParsedDate
	Entities     []EntityInfo
	Language     string
	Snippet      string
	SourceURL    string
	SourceTitle  string

	// Relevance is the event's score from the relevance filter; nil when
	// the merger rehydrated an event the filter never saw (unknown, not
	// irrelevant).
	Relevance *float64

	// Precomputed features.
	EntityUUIDs     map[string]bool
	EntityTypes     map[string]bool
	DateRange       *dates.DateRange
	EventYear       *int
	DescriptionHash string // md5(description)[:8]
}

// NewEventInput precomputes the match features for an event.
func NewEventInput(id int, description, eventDateStr string, dateInfo *dates.ParsedDate, entities []EntityInfo, language, snippet, sourceURL, sourceTitle string, relevance *float64) *EventInput {
	e := &EventInput{
		ID:              id,
		Description:     description,
		EventDateStr:    eventDateStr,
		DateInfo:        dateInfo,
		Entities:        entities,
		Language:        language,
		Snippet:         snippet,
		SourceURL:       sourceURL,
		SourceTitle:     sourceTitle,
		Relevance:       relevance,
		EntityUUIDs:     make(map[string]bool, len(entities)),
		EntityTypes:     make(map[string]bool, len(entities)),
		DescriptionHash: descriptionHash(description),
	}
	for _, ent := range entities {
		if ent.UUID != "" {
			e.EntityUUIDs[ent.UUID] = true
		}
		if ent.Type != "" {
			e.EntityTypes[ent.Type] = true
		}
	}
	if dateInfo != nil {
		e.DateRange = dateInfo.Range()
		if year, ok := dateInfo.EventYear(); ok {
			e.EventYear = &year
		}
	}
	return e
}

// SortedEntityUUIDs returns the entity UUIDs in sorted order (for cache
// keys and serialization).
func (e *EventInput) SortedEntityUUIDs() []string {
	out := make([]string, 0, len(e.EntityUUIDs))
	for id := range e.EntityUUIDs {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// descriptionHash is the first 8 hex chars of md5(description).
func descriptionHash(description string) string {
	h := md5.Sum([]byte(description))
	return hex.EncodeToString(h[:])[:8]
}

// MergedEventGroup is a cluster of events deemed to describe the same
// real-world event.
type MergedEventGroup struct {
	// Events holds the contributors in arrival order.
	Events []*EventInput

	// Representative is the group's public face, selected after all events
	// are assigned.
	Representative *Representative

	// Relevance is the max relevance over contributors with a known score;
	// 0 when no contributor carries one (unknown, not irrelevant).
	Relevance float64

	creationOrder int
}

// IsMerged reports whether the group consolidated more than one event.
func (g *MergedEventGroup) IsMerged() bool { return len(g.Events) > 1 }

// head returns the group's current representative event for matching: the
// first assigned contributor.
func (g *MergedEventGroup) head() *EventInput { return g.Events[0] }

// Representative is the presentation form of a merged group.
type Representative struct {
	EventID      int               `json:"event_id"`
	EventDateStr string            `json:"event_date_str"`
	Description  string            `json:"description"`
	MainEntities []EntityInfo      `json:"main_entities"`
	DateInfo     *dates.ParsedDate `json:"date_info,omitempty"`
	Timestamp    *time.Time        `json:"timestamp,omitempty"`
	Snippet      string            `json:"snippet,omitempty"`
	SourceURL    string            `json:"source_url,omitempty"`
	SourceTitle  string            `json:"source_page_title,omitempty"`
	Language     string            `json:"source_language,omitempty"`
}

// SourceInfo identifies the source of a contribution.
type SourceInfo struct {
	URL       string `json:"url,omitempty"`
	PageTitle string `json:"page_title,omitempty"`
	Language  string `json:"language,omitempty"`
}

// SourceContribution pairs a contributing event with its source.
type SourceContribution struct {
	Event  *EventInput `json:"event_data"`
	Source SourceInfo  `json:"source_info"`
}

// Contributions returns the group's contributions in arrival order.
func (g *MergedEventGroup) Contributions() []SourceContribution {
	out := make([]SourceContribution, 0, len(g.Events))
	for _, e := range g.Events {
		out = append(out, SourceContribution{
			Event: e,
			Source: SourceInfo{
				URL:       e.SourceURL,
				PageTitle: e.SourceTitle,
				Language:  e.Language,
			},
		})
	}
	return out
}

// Counters tracks merger monitoring statistics.
type Counters struct {
	TotalEvents                int64 `json:"total_events"`
	QuickExclusions            int64 `json:"quick_exclusions"`
	RuleBasedMerges            int64 `json:"rule_based_merges"`
	LLMCandidates              int64 `json:"llm_candidates"`
	LLMConfirmedMerges         int64 `json:"llm_confirmed_merges"`
	LowScoreRejections         int64 `json:"low_score_rejections"`
	IndexLookups               int64 `json:"index_lookups"`
	CacheHits                  int64 `json:"cache_hits"`
	ConcurrentWindowsProcessed int64 `json:"concurrent_windows_processed"`
	ConcurrentLLMCallsSaved    int64 `json:"concurrent_llm_calls_saved"`
}
