package dates

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/chronicle-dev/chronicle/pkg/llm"
)

// parserSystemPrompt fixes the JSON contract for date parsing. Century
// arithmetic: century N CE covers [(N-1)·100+1 .. N·100]; century N BCE
// covers [−N·100 .. −((N−1)·100+1)]. BCE years are negative integers.
const parserSystemPrompt = `You are a historical date parser. For each input date string, produce a JSON object:
{
  "original_text": string,
  "display_text": string,
  "precision": "day"|"month"|"year"|"decade"|"century"|"millennium"|"era"|"unknown",
  "start_year": int|null, "start_month": int|null, "start_day": int|null,
  "end_year": int|null, "end_month": int|null, "end_day": int|null,
  "is_bce": bool
}
Rules:
- BCE years are NEGATIVE integers (480 BC -> start_year -480, is_bce true).
- Century N CE spans years (N-1)*100+1 .. N*100. Century N BCE spans -N*100 .. -((N-1)*100+1).
- Too vague to place in time -> precision "unknown" with all year/month/day fields null.
- Never convert between calendars; parse what the text asserts.
Respond ONLY with JSON.`

// Parser converts raw date strings into ParsedDate values via a batched
// LLM call.
type Parser struct {
	client llm.Client
}

// NewParser creates a date parser over the given LLM client.
func NewParser(client llm.Client) *Parser {
	return &Parser{client: client}
}

// BatchItem is one entry of a batch parse request.
type BatchItem struct {
	ID      string `json:"id"`
	DateStr string `json:"date_str"`
}

// batchResponseItem is the per-item wire format of the batch call.
type batchResponseItem struct {
	ID string `json:"id"`
	ParsedDate
}

// ParseSingle parses one raw date string. Returns nil (no error) when the
// input is empty or the model marks it unparseable.
func (p *Parser) ParseSingle(ctx context.Context, raw string) (*ParsedDate, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	results, err := p.ParseBatch(ctx, []BatchItem{{ID: "0", DateStr: raw}})
	if err != nil {
		return nil, err
	}
	return results["0"], nil
}

// ParseBatch parses a batch of date strings in one LLM call. The result maps
// item IDs to parsed dates; items the model could not handle are absent.
func (p *Parser) ParseBatch(ctx context.Context, items []BatchItem) (map[string]*ParsedDate, error) {
	results := make(map[string]*ParsedDate)
	if len(items) == 0 {
		return results, nil
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("marshaling date batch: %w", err)
	}

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: parserSystemPrompt},
		{Role: llm.RoleUser, Content: fmt.Sprintf(
			"Parse each of these date strings. Respond with a JSON array of objects, each carrying the input \"id\" plus the parsed fields.\n%s", payload)},
	}

	raw, err := p.client.GenerateChatCompletion(ctx, messages, llm.Options{
		Temperature:    llm.Temp(0),
		ResponseFormat: llm.ResponseFormatJSON,
	})
	if err != nil {
		return nil, fmt.Errorf("date parse batch of %d: %w", len(items), err)
	}

	var parsed []batchResponseItem
	if err := llm.ExtractJSON(raw, &parsed); err != nil {
		return nil, fmt.Errorf("date parse batch of %d: %w", len(items), err)
	}

	for i := range parsed {
		item := parsed[i]
		if item.ID == "" {
			continue
		}
		pd := item.ParsedDate
		if !pd.Precision.valid() {
			slog.Warn("Date parser returned unknown precision value",
				"id", item.ID, "precision", pd.Precision)
			pd.Precision = PrecisionUnknown
		}
		results[item.ID] = &pd
	}
	return results, nil
}

func (pr Precision) valid() bool {
	switch pr {
	case PrecisionDay, PrecisionMonth, PrecisionYear, PrecisionDecade,
		PrecisionCentury, PrecisionMillennium, PrecisionEra, PrecisionUnknown:
		return true
	}
	return false
}
