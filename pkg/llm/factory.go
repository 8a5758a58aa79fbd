package llm

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/chronicle-dev/chronicle/pkg/config"
)

// Factory builds and caches LLM clients by provider name. Providers with
// missing credentials resolve to ErrUnavailable at Get time so callers can
// degrade per the pipeline's failure policy.
type Factory struct {
	registry *config.LLMProviderRegistry

	mu      sync.Mutex
	clients map[string]Client
}

// NewFactory creates a factory over the configured provider registry.
func NewFactory(registry *config.LLMProviderRegistry) *Factory {
	return &Factory{
		registry: registry,
		clients:  make(map[string]Client),
	}
}

// Get returns the client for the named provider, constructing it on first
// use. Missing configuration or credentials yield ErrUnavailable.
func (f *Factory) Get(ctx context.Context, name string) (Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if c, ok := f.clients[name]; ok {
		return c, nil
	}

	pc, err := f.registry.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, name)
	}

	client, err := buildClient(ctx, name, pc)
	if err != nil {
		return nil, err
	}
	f.clients[name] = client
	return client, nil
}

// buildClient constructs the langchaingo model for a provider config.
func buildClient(ctx context.Context, name string, pc *config.LLMProviderConfig) (Client, error) {
	timeout := time.Duration(pc.TimeoutSeconds) * time.Second

	var (
		model llms.Model
		err   error
	)
	switch pc.Type {
	case config.LLMProviderOpenAI:
		key := credential(pc.APIKeyEnv, "OPENAI_API_KEY")
		if key == "" {
			return nil, fmt.Errorf("%w: %s: no API key in $%s", ErrUnavailable, name, keyEnvName(pc.APIKeyEnv, "OPENAI_API_KEY"))
		}
		opts := []openai.Option{openai.WithToken(key), openai.WithModel(pc.Model)}
		if pc.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(pc.BaseURL))
		}
		model, err = openai.New(opts...)

	case config.LLMProviderGemini:
		key := credential(pc.APIKeyEnv, "GOOGLE_API_KEY")
		if key == "" {
			return nil, fmt.Errorf("%w: %s: no API key in $%s", ErrUnavailable, name, keyEnvName(pc.APIKeyEnv, "GOOGLE_API_KEY"))
		}
		model, err = googleai.New(ctx,
			googleai.WithAPIKey(key),
			googleai.WithDefaultModel(pc.Model))

	case config.LLMProviderOllama:
		opts := []ollama.Option{ollama.WithModel(pc.Model)}
		if pc.BaseURL != "" {
			opts = append(opts, ollama.WithServerURL(pc.BaseURL))
		}
		model, err = ollama.New(opts...)

	default:
		return nil, fmt.Errorf("%w: %s: unsupported type %q", ErrUnavailable, name, pc.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("building %s client %q: %w", pc.Type, name, err)
	}

	slog.Info("LLM provider initialized", "provider", name, "type", pc.Type, "model", pc.Model)
	return NewProviderClient(name, model, timeout), nil
}

func credential(envName, fallback string) string {
	return os.Getenv(keyEnvName(envName, fallback))
}

func keyEnvName(envName, fallback string) string {
	if envName != "" {
		return envName
	}
	return fallback
}
