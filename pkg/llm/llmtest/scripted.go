// Package llmtest provides a scripted LLM client for tests.
package llmtest

import (
	"context"
	"strings"
	"sync"

	"github.com/chronicle-dev/chronicle/pkg/llm"
)

// Rule matches prompts and yields a canned response or error.
type Rule struct {
	// Contains matches when every substring appears in the concatenated
	// conversation. An empty slice matches everything.
	Contains []string

	// Response is returned on match.
	Response string

	// Err, when set, is returned instead of Response.
	Err error

	// Times bounds how often the rule fires; 0 means unlimited.
	Times int

	fired int
}

// ScriptedClient implements llm.Client with rule-based canned responses.
// Safe for concurrent use. Calls are recorded for assertions.
type ScriptedClient struct {
	mu    sync.Mutex
	rules []*Rule
	calls []string
}

// NewScripted creates a scripted client with the given rules. Rules are
// evaluated in order; the first live match wins.
func NewScripted(rules ...*Rule) *ScriptedClient {
	return &ScriptedClient{rules: rules}
}

// AddRule appends a rule.
func (c *ScriptedClient) AddRule(r *Rule) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rules = append(c.rules, r)
}

// Calls returns the recorded prompts.
func (c *ScriptedClient) Calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.calls))
	copy(out, c.calls)
	return out
}

// CallCount returns how many completions were requested.
func (c *ScriptedClient) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

// GenerateText implements llm.Client.
func (c *ScriptedClient) GenerateText(ctx context.Context, prompt string, opts llm.Options) (string, error) {
	return c.GenerateChatCompletion(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, opts)
}

// GenerateChatCompletion implements llm.Client.
func (c *ScriptedClient) GenerateChatCompletion(ctx context.Context, messages []llm.Message, opts llm.Options) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var b strings.Builder
	for _, m := range messages {
		b.WriteString(m.Content)
		b.WriteByte('\n')
	}
	prompt := b.String()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, prompt)

	for _, r := range c.rules {
		if r.Times > 0 && r.fired >= r.Times {
			continue
		}
		if matches(prompt, r.Contains) {
			r.fired++
			if r.Err != nil {
				return "", r.Err
			}
			return r.Response, nil
		}
	}
	return "", llm.ErrEmptyResponse
}

func matches(prompt string, contains []string) bool {
	for _, s := range contains {
		if !strings.Contains(prompt, s) {
			return false
		}
	}
	return true
}
