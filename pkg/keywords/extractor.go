// Package keywords extracts search keywords and language information from a
// user's research viewpoint.
package keywords

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/chronicle-dev/chronicle/pkg/llm"
)

const systemPrompt = `You analyze a user's historical research viewpoint. Respond with JSON:
{
  "detected_language": "<ISO 639-1 code>",
  "original_keywords": ["<keyword in the viewpoint's language>", ...],
  "english_keywords": ["<the same keyword translated to English>", ...],
  "translated_viewpoint": "<the full viewpoint translated to English; empty if already English>"
}
original_keywords and english_keywords MUST have the same length and align position by position.
Extract 2-5 keywords naming the central topics, people, places, or periods.
Respond ONLY with JSON.`

// Result holds the extracted keywords and language information.
type Result struct {
	DetectedLanguage    string   `json:"detected_language"`
	OriginalKeywords    []string `json:"original_keywords"`
	EnglishKeywords     []string `json:"english_keywords"`
	TranslatedViewpoint string   `json:"translated_viewpoint"`
}

// Extractor derives keywords and language from viewpoint text.
type Extractor struct {
	client llm.Client
}

// NewExtractor creates a keyword extractor over the given LLM client.
func NewExtractor(client llm.Client) *Extractor {
	return &Extractor{client: client}
}

// Extract runs one JSON-mode LLM call. The keyword lists are position
// aligned; a length mismatch empties both so downstream pairing never
// misaligns.
func (e *Extractor) Extract(ctx context.Context, viewpoint string) (*Result, error) {
	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: systemPrompt},
		{Role: llm.RoleUser, Content: viewpoint},
	}

	raw, err := e.client.GenerateChatCompletion(ctx, messages, llm.Options{
		Temperature:    llm.Temp(0),
		ResponseFormat: llm.ResponseFormatJSON,
	})
	if err != nil {
		return nil, fmt.Errorf("extracting keywords: %w", err)
	}

	var result Result
	if err := llm.ExtractJSON(raw, &result); err != nil {
		return nil, fmt.Errorf("extracting keywords: %w", err)
	}

	result.DetectedLanguage = strings.ToLower(strings.TrimSpace(result.DetectedLanguage))
	if result.DetectedLanguage == "" {
		result.DetectedLanguage = "en"
	}

	if len(result.OriginalKeywords) != len(result.EnglishKeywords) {
		slog.Warn("Keyword list length mismatch, clearing both",
			"original", len(result.OriginalKeywords),
			"english", len(result.EnglishKeywords))
		result.OriginalKeywords = nil
		result.EnglishKeywords = nil
	}

	return &result, nil
}
