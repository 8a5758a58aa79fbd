// Package llm provides a uniform completion capability over multiple LLM
// providers (OpenAI, Gemini, Ollama) with retry, timeout, and error
// classification policies.
package llm

import (
	"context"
	"errors"
)

// Conversation message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Sentinel errors for LLM operations.
var (
	// ErrUnavailable indicates the named provider has no credentials or is
	// not configured. Callers degrade or fail with a typed error.
	ErrUnavailable = errors.New("llm provider unavailable")

	// ErrContentFiltered indicates the provider refused the input. Not
	// retryable; callers treat it as an empty result for that input.
	ErrContentFiltered = errors.New("llm content filtered")

	// ErrEmptyResponse indicates the provider returned no content.
	ErrEmptyResponse = errors.New("llm returned empty response")
)

// Message is a single conversation message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ResponseFormat requests a specific output encoding from the provider.
type ResponseFormat string

// Response format constants.
const (
	ResponseFormatText ResponseFormat = "text"
	ResponseFormatJSON ResponseFormat = "json_object"
)

// Options control a single generation call. Zero values fall back to
// provider defaults.
type Options struct {
	Temperature    *float64
	MaxTokens      int
	ResponseFormat ResponseFormat
}

// Client is the uniform completion interface. Implementations are safe for
// concurrent use.
type Client interface {
	// GenerateText completes a single prompt.
	GenerateText(ctx context.Context, prompt string, opts Options) (string, error)

	// GenerateChatCompletion completes a conversation. With
	// ResponseFormatJSON the provider is asked for strict JSON; callers
	// still parse tolerantly via ExtractJSON.
	GenerateChatCompletion(ctx context.Context, messages []Message, opts Options) (string, error)
}

// Temp is a convenience for building Options.Temperature literals.
func Temp(v float64) *float64 { return &v }
