// Package embedding provides the text embedding capability: text in,
// normalized fixed-dimension vector out, with a pgvector literal form for
// storage layers.
package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/chronicle-dev/chronicle/pkg/config"
)

// queryPrefix is prepended to query-side texts for retrieval-tuned models.
const queryPrefix = "search_query: "

// Encoder converts text to a normalized fixed-dimension vector.
// Implementations are safe for concurrent use. On failure a zero vector of
// the configured dimension is returned (and logged), never an error —
// callers in the search path degrade to no-match rather than failing.
type Encoder interface {
	// Encode returns the embedding for text. normalize scales to unit
	// length; addQueryPrefix marks the text as a retrieval query.
	Encode(ctx context.Context, text string, normalize, addQueryPrefix bool) []float32

	// Dimensions returns the vector length D.
	Dimensions() int
}

// encoder is the langchaingo-backed implementation with an sha256-keyed LRU.
type encoder struct {
	embedder   embeddings.Embedder
	dimensions int
	cache      *lru.Cache[string, []float32]
}

// NewEncoder builds an Encoder from the embedding configuration.
func NewEncoder(cfg *config.EmbeddingConfig) (Encoder, error) {
	client, err := newEmbedderClient(cfg)
	if err != nil {
		return nil, err
	}
	embedder, err := embeddings.NewEmbedder(client)
	if err != nil {
		return nil, fmt.Errorf("creating embedder: %w", err)
	}

	var cache *lru.Cache[string, []float32]
	if cfg.CacheSize > 0 {
		cache, err = lru.New[string, []float32](cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating embedding cache: %w", err)
		}
	}

	return &encoder{
		embedder:   embedder,
		dimensions: cfg.Dimensions,
		cache:      cache,
	}, nil
}

func newEmbedderClient(cfg *config.EmbeddingConfig) (embeddings.EmbedderClient, error) {
	switch cfg.Provider {
	case "ollama":
		opts := []ollama.Option{ollama.WithModel(cfg.Model)}
		if cfg.BaseURL != "" {
			opts = append(opts, ollama.WithServerURL(cfg.BaseURL))
		}
		return ollama.New(opts...)
	case "openai":
		opts := []openai.Option{
			openai.WithEmbeddingModel(cfg.Model),
		}
		if cfg.APIKeyEnv != "" {
			opts = append(opts, openai.WithToken(os.Getenv(cfg.APIKeyEnv)))
		}
		if cfg.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
		}
		return openai.New(opts...)
	default:
		return nil, fmt.Errorf("unsupported embedding provider %q", cfg.Provider)
	}
}

// Encode implements Encoder.
func (e *encoder) Encode(ctx context.Context, text string, normalize, addQueryPrefix bool) []float32 {
	input := text
	if addQueryPrefix {
		input = queryPrefix + text
	}

	key := cacheKey(input, normalize)
	if e.cache != nil {
		if v, ok := e.cache.Get(key); ok {
			return v
		}
	}

	vec, err := e.embedder.EmbedQuery(ctx, input)
	if err != nil {
		slog.Error("Embedding failed, returning zero vector",
			"error", err, "text_len", len(text))
		return make([]float32, e.dimensions)
	}
	if len(vec) != e.dimensions {
		slog.Warn("Embedding dimension mismatch",
			"expected", e.dimensions, "got", len(vec))
		adjusted := make([]float32, e.dimensions)
		copy(adjusted, vec)
		vec = adjusted
	}
	if normalize {
		vec = normalizeVector(vec)
	}

	if e.cache != nil {
		e.cache.Add(key, vec)
	}
	return vec
}

// Dimensions implements Encoder.
func (e *encoder) Dimensions() int { return e.dimensions }

func cacheKey(input string, normalize bool) string {
	h := sha256.Sum256([]byte(input))
	if normalize {
		return hex.EncodeToString(h[:]) + ":n"
	}
	return hex.EncodeToString(h[:])
}

func normalizeVector(v []float32) []float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	norm := math.Sqrt(sum)
	if norm == 0 {
		return v
	}
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(float64(x) / norm)
	}
	return out
}

// PgvectorLiteral formats a vector as the pgvector input literal
// "[v0,v1,...]".
func PgvectorLiteral(vec []float32) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range vec {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%g", v)
	}
	b.WriteByte(']')
	return b.String()
}
