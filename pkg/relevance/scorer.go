// Package relevance scores articles and events against a research viewpoint
// using batched LLM calls.
package relevance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chronicle-dev/chronicle/pkg/llm"
)

// maxContentChars bounds the article content sent per scoring item.
const maxContentChars = 1500

const articleSystemPrompt = `You score how relevant each article is to a research viewpoint.
Respond with a JSON object mapping each article title to a relevance score between 0.0 and 1.0.
1.0 means the article is centrally about the viewpoint; 0.0 means unrelated.
Respond ONLY with JSON.`

const eventSystemPrompt = `You score how relevant each historical event is to a research viewpoint.
Respond with a JSON array: [{"event_index": <1-based index>, "relevance_score": <0.0-1.0>}, ...]
Score every event. Respond ONLY with JSON.`

// ArticleInput is one article to score.
type ArticleInput struct {
	Title   string
	Content string
}

// EventInput is one event to score.
type EventInput struct {
	ID          int
	Description string
	DateStr     string
}

// Scorer scores items against a viewpoint.
type Scorer struct {
	client    llm.Client
	batchSize int
}

// NewScorer creates a relevance scorer. batchSize controls event scoring
// batches (values < 1 fall back to 10).
func NewScorer(client llm.Client, batchSize int) *Scorer {
	if batchSize < 1 {
		batchSize = 10
	}
	return &Scorer{client: client, batchSize: batchSize}
}

// ScoreArticles scores all articles in one LLM call. The result maps title
// to a score clamped to [0,1]; titles the model omitted score 0.
func (s *Scorer) ScoreArticles(ctx context.Context, viewpoint string, articles []ArticleInput) (map[string]float64, error) {
	scores := make(map[string]float64, len(articles))
	if len(articles) == 0 {
		return scores, nil
	}

	prompt := fmt.Sprintf("Viewpoint: %s\n\nArticles:\n", viewpoint)
	for _, a := range articles {
		content := a.Content
		if len(content) > maxContentChars {
			content = content[:maxContentChars]
		}
		prompt += fmt.Sprintf("Title: %s\nContent: %s\n\n", a.Title, content)
	}

	raw, err := s.client.GenerateChatCompletion(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: articleSystemPrompt},
		{Role: llm.RoleUser, Content: prompt},
	}, llm.Options{Temperature: llm.Temp(0), ResponseFormat: llm.ResponseFormatJSON})
	if err != nil {
		return nil, fmt.Errorf("scoring %d articles: %w", len(articles), err)
	}

	var parsed map[string]float64
	if err := llm.ExtractJSON(raw, &parsed); err != nil {
		return nil, fmt.Errorf("scoring %d articles: %w", len(articles), err)
	}

	for _, a := range articles {
		scores[a.Title] = clamp01(parsed[a.Title])
	}
	return scores, nil
}

// ScoreEvents scores events in batches. The result maps event ID to score.
// A failed batch falls back to per-event calls; events that still fail are
// absent from the result (unknown, not zero).
func (s *Scorer) ScoreEvents(ctx context.Context, viewpoint string, events []EventInput) map[int]float64 {
	scores := make(map[int]float64, len(events))
	for start := 0; start < len(events); start += s.batchSize {
		end := start + s.batchSize
		if end > len(events) {
			end = len(events)
		}
		batch := events[start:end]

		batchScores, err := s.scoreEventBatch(ctx, viewpoint, batch)
		if err != nil {
			slog.Warn("Event batch scoring failed, falling back to per-event calls",
				"batch_size", len(batch), "error", err)
			batchScores = s.scoreEventsIndividually(ctx, viewpoint, batch)
		}
		for id, score := range batchScores {
			scores[id] = score
		}
	}
	return scores
}

// batchScoreItem is the event batch wire format (1-based indexes).
type batchScoreItem struct {
	EventIndex     int     `json:"event_index"`
	RelevanceScore float64 `json:"relevance_score"`
}

func (s *Scorer) scoreEventBatch(ctx context.Context, viewpoint string, batch []EventInput) (map[int]float64, error) {
	prompt := fmt.Sprintf("Viewpoint: %s\n\nEvents:\n", viewpoint)
	for i, ev := range batch {
		prompt += fmt.Sprintf("%d. [%s] %s\n", i+1, ev.DateStr, ev.Description)
	}

	raw, err := s.client.GenerateChatCompletion(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: eventSystemPrompt},
		{Role: llm.RoleUser, Content: prompt},
	}, llm.Options{Temperature: llm.Temp(0), ResponseFormat: llm.ResponseFormatJSON})
	if err != nil {
		return nil, err
	}

	var items []batchScoreItem
	if err := llm.ExtractJSON(raw, &items); err != nil {
		return nil, err
	}

	scores := make(map[int]float64, len(items))
	for _, item := range items {
		// 1-based index into the batch; out-of-range entries are discarded.
		if item.EventIndex < 1 || item.EventIndex > len(batch) {
			slog.Warn("Discarding out-of-range event score", "event_index", item.EventIndex)
			continue
		}
		scores[batch[item.EventIndex-1].ID] = clamp01(item.RelevanceScore)
	}
	return scores, nil
}

func (s *Scorer) scoreEventsIndividually(ctx context.Context, viewpoint string, batch []EventInput) map[int]float64 {
	scores := make(map[int]float64, len(batch))
	for _, ev := range batch {
		single, err := s.scoreEventBatch(ctx, viewpoint, []EventInput{ev})
		if err != nil {
			slog.Warn("Per-event scoring failed, leaving score unknown",
				"event_id", ev.ID, "error", err)
			continue
		}
		if score, ok := single[ev.ID]; ok {
			scores[ev.ID] = score
		}
	}
	return scores
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
