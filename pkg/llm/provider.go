package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"

	"github.com/chronicle-dev/chronicle/pkg/retry"
)

// providerClient adapts a langchaingo model to the Client interface and
// applies the shared retry policy and per-call timeout.
type providerClient struct {
	name    string
	model   llms.Model
	timeout time.Duration
}

// NewProviderClient wraps a langchaingo model. timeout bounds each attempt;
// zero means no per-attempt bound beyond the caller's context.
func NewProviderClient(name string, model llms.Model, timeout time.Duration) Client {
	return &providerClient{name: name, model: model, timeout: timeout}
}

// GenerateText completes a single prompt.
func (c *providerClient) GenerateText(ctx context.Context, prompt string, opts Options) (string, error) {
	return c.GenerateChatCompletion(ctx, []Message{{Role: RoleUser, Content: prompt}}, opts)
}

// GenerateChatCompletion completes a conversation with retries per the
// shared policy table. ContentFilter refusals surface as ErrContentFiltered
// without retrying.
func (c *providerClient) GenerateChatCompletion(ctx context.Context, messages []Message, opts Options) (string, error) {
	content := make([]llms.MessageContent, 0, len(messages))
	for _, m := range messages {
		content = append(content, llms.TextParts(chatMessageType(m.Role), m.Content))
	}

	callOpts := []llms.CallOption{}
	if opts.Temperature != nil {
		callOpts = append(callOpts, llms.WithTemperature(*opts.Temperature))
	}
	if opts.MaxTokens > 0 {
		callOpts = append(callOpts, llms.WithMaxTokens(opts.MaxTokens))
	}
	if opts.ResponseFormat == ResponseFormatJSON {
		callOpts = append(callOpts, llms.WithJSONMode())
	}

	op := fmt.Sprintf("llm.%s.chat_completion", c.name)
	text, err := retry.Do(ctx, op, retry.Options{}, func(ctx context.Context) (string, error) {
		attemptCtx := ctx
		if c.timeout > 0 {
			var cancel context.CancelFunc
			attemptCtx, cancel = context.WithTimeout(ctx, c.timeout)
			defer cancel()
		}

		resp, err := c.model.GenerateContent(attemptCtx, content, callOpts...)
		if err != nil {
			return "", classifyProviderError(err)
		}
		if len(resp.Choices) == 0 {
			return "", ErrEmptyResponse
		}
		choice := resp.Choices[0]
		if isContentFilterStop(choice.StopReason) {
			return "", retry.NewClassifiedError(retry.ErrorTypeContentFilter, ErrContentFiltered)
		}
		if strings.TrimSpace(choice.Content) == "" {
			return "", ErrEmptyResponse
		}
		return choice.Content, nil
	})
	if err != nil {
		if retry.TypeOf(err) == retry.ErrorTypeContentFilter {
			slog.Warn("LLM refused input (content filter)", "provider", c.name)
			return "", ErrContentFiltered
		}
		return "", err
	}
	return text, nil
}

func chatMessageType(role string) llms.ChatMessageType {
	switch role {
	case RoleSystem:
		return llms.ChatMessageTypeSystem
	case RoleAssistant:
		return llms.ChatMessageTypeAI
	default:
		return llms.ChatMessageTypeHuman
	}
}

// classifyProviderError wraps provider SDK errors with their retry
// classification so the policy table applies uniformly across providers.
func classifyProviderError(err error) error {
	t := retry.Classify(err)
	return retry.NewClassifiedError(t, err)
}

// isContentFilterStop recognizes provider refusal stop reasons.
func isContentFilterStop(stop string) bool {
	switch strings.ToLower(stop) {
	case "content_filter", "safety", "prohibited_content":
		return true
	}
	return false
}
