// Package extract turns article text into atomic historical events with
// structured dates.
package extract

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/chronicle-dev/chronicle/pkg/dates"
	"github.com/chronicle-dev/chronicle/pkg/llm"
	"github.com/chronicle-dev/chronicle/pkg/retry"
)

const systemPrompt = `You extract atomic historical events from encyclopedia or news text. Respond with a JSON array:
[
  {
    "event_description": "<one self-contained sentence describing a single event>",
    "event_date_str": "<the date exactly as the text states it>",
    "enhanced_event_date_str": "<a more precise restatement of the date when the context allows; else null>",
    "main_entities": [{"name": "...", "type": "person|location|organization|other", "language": "<ISO 639-1>"}],
    "source_text_snippet": "<the sentence(s) of the source the event came from>"
  }
]
Only events that actually happened at a stated or inferable time. No analysis, no duplicates.
Respond ONLY with JSON.`

// EntityRef names an entity mentioned by an event.
type EntityRef struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Language string `json:"language"`
}

// rawExtractedEvent is the extraction call's wire format.
type rawExtractedEvent struct {
	EventDescription     string      `json:"event_description"`
	EventDateStr         string      `json:"event_date_str"`
	EnhancedEventDateStr *string     `json:"enhanced_event_date_str"`
	MainEntities         []EntityRef `json:"main_entities"`
	SourceTextSnippet    string      `json:"source_text_snippet"`
}

// ProcessedEvent is an extracted event joined with its parsed date.
type ProcessedEvent struct {
	Description       string
	EventDateStr      string
	DateInfo          *dates.ParsedDate
	MainEntities      []EntityRef
	SourceTextSnippet string
}

// Extractor extracts events from article text via the LLM and the date
// parser.
type Extractor struct {
	client llm.Client
	parser *dates.Parser
}

// NewExtractor creates an event extractor.
func NewExtractor(client llm.Client, parser *dates.Parser) *Extractor {
	return &Extractor{client: client, parser: parser}
}

// ExtractEvents runs the raw extraction call, batch-parses all dates, joins
// the results, and deduplicates within the article by content hash.
//
// Content-filter refusals and timeouts return an empty list, not an error:
// the article is skipped without poisoning the pipeline.
func (e *Extractor) ExtractEvents(ctx context.Context, articleText string) ([]ProcessedEvent, error) {
	raws, err := e.rawExtract(ctx, articleText)
	if err != nil {
		if errors.Is(err, llm.ErrContentFiltered) {
			slog.Warn("Event extraction refused by provider, skipping article")
			return nil, nil
		}
		if retry.TypeOf(err) == retry.ErrorTypeTimeout {
			slog.Error("Event extraction timed out, skipping article", "error", err)
			return nil, nil
		}
		return nil, err
	}
	if len(raws) == 0 {
		return nil, nil
	}

	// Batch-parse all date strings in one call. The enhanced date string,
	// when present, is a hint appended to the raw one, not authoritative.
	items := make([]dates.BatchItem, 0, len(raws))
	for i, r := range raws {
		items = append(items, dates.BatchItem{
			ID:      strconv.Itoa(i),
			DateStr: combinedDateStr(r),
		})
	}
	parsed, err := e.parser.ParseBatch(ctx, items)
	if err != nil {
		slog.Error("Batch date parse failed, events keep raw date strings only", "error", err)
		parsed = map[string]*dates.ParsedDate{}
	}

	seen := make(map[string]bool, len(raws))
	events := make([]ProcessedEvent, 0, len(raws))
	for i, r := range raws {
		if r.EventDescription == "" {
			continue
		}
		sig := ContentHash(r.EventDescription, r.EventDateStr)
		if seen[sig] {
			continue
		}
		seen[sig] = true

		events = append(events, ProcessedEvent{
			Description:       r.EventDescription,
			EventDateStr:      r.EventDateStr,
			DateInfo:          parsed[strconv.Itoa(i)],
			MainEntities:      r.MainEntities,
			SourceTextSnippet: r.SourceTextSnippet,
		})
	}
	return events, nil
}

func (e *Extractor) rawExtract(ctx context.Context, articleText string) ([]rawExtractedEvent, error) {
	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: systemPrompt},
		{Role: llm.RoleUser, Content: articleText},
	}
	raw, err := e.client.GenerateChatCompletion(ctx, messages, llm.Options{
		Temperature:    llm.Temp(0),
		ResponseFormat: llm.ResponseFormatJSON,
	})
	if err != nil {
		return nil, err
	}

	var events []rawExtractedEvent
	if err := llm.ExtractJSON(raw, &events); err != nil {
		return nil, fmt.Errorf("parsing extraction response: %w", err)
	}
	return events, nil
}

// combinedDateStr merges the raw and enhanced date strings as
// "{raw}({enhanced})" when an enhancement is present.
func combinedDateStr(r rawExtractedEvent) string {
	if r.EnhancedEventDateStr != nil && *r.EnhancedEventDateStr != "" {
		return fmt.Sprintf("%s(%s)", r.EventDateStr, *r.EnhancedEventDateStr)
	}
	return r.EventDateStr
}

// ContentHash is the within-article deduplication signature:
// sha256("{description}-{event_date_str}").
func ContentHash(description, eventDateStr string) string {
	h := sha256.Sum256([]byte(description + "-" + eventDateStr))
	return hex.EncodeToString(h[:])
}
