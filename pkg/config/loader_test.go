package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chronicle.yaml"), []byte(content), 0o644))
	return dir
}

func TestInitializeDefaultsWithoutFile(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 0.35, cfg.Pipeline.ArticleFilterRelevanceThreshold)
	assert.Equal(t, 0.6, cfg.Pipeline.TimelineRelevanceThreshold)
	assert.Equal(t, 10, cfg.Pipeline.EventScoringBatchSize)
	assert.Equal(t, "online_wikipedia", cfg.Pipeline.DefaultDataSource)
	assert.Equal(t, 3, cfg.Merger.ConcurrentWindowSize)
	assert.Equal(t, 10, cfg.Merger.MaxConcurrentRequests)
	assert.Equal(t, 0.75, cfg.Merger.RuleOverlapRatio)
	assert.Equal(t, 1000, cfg.Merger.CacheSize)
	assert.Equal(t, 768, cfg.Embedding.Dimensions)
	assert.Equal(t, time.Hour, cfg.Wiki.SuccessTTL)
	assert.Equal(t, 5*time.Minute, cfg.Wiki.ErrorTTL)
	assert.Equal(t, 3, cfg.Wiki.SearchResultLimit)
}

func TestInitializeMergesUserValuesOverDefaults(t *testing.T) {
	dir := writeConfig(t, `
pipeline:
  timeline_relevance_threshold: 0.7
merger:
  concurrent_window_size: 5
  max_concurrent_requests: 12
llm_providers:
  default:
    type: ollama
    model: llama3
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 0.7, cfg.Pipeline.TimelineRelevanceThreshold)
	// Untouched fields keep defaults.
	assert.Equal(t, 0.35, cfg.Pipeline.ArticleFilterRelevanceThreshold)
	assert.Equal(t, 5, cfg.Merger.ConcurrentWindowSize)

	provider, err := cfg.GetLLMProvider("default")
	require.NoError(t, err)
	assert.Equal(t, LLMProviderOllama, provider.Type)
	assert.Equal(t, "llama3", provider.Model)
}

func TestInitializeExpandsEnvVars(t *testing.T) {
	t.Setenv("TEST_WIKI_AGENT", "TestBot/9.9")
	dir := writeConfig(t, `
wiki:
  user_agent: ${TEST_WIKI_AGENT}
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "TestBot/9.9", cfg.Wiki.UserAgent)
}

func TestInitializeEnvOverrides(t *testing.T) {
	t.Setenv("REUSE_COMPOSITE_VIEWPOINT", "false")
	t.Setenv("REUSE_BASE_VIEWPOINT", "false")
	t.Setenv("TIMELINE_RELEVANCE_THRESHOLD", "0.55")

	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.False(t, cfg.Pipeline.ReuseCompositeViewpoint)
	assert.False(t, cfg.Pipeline.ReuseBaseViewpoint)
	assert.Equal(t, 0.55, cfg.Pipeline.TimelineRelevanceThreshold)
}

func TestInitializeRejectsInvalidProvider(t *testing.T) {
	dir := writeConfig(t, `
llm_providers:
  broken:
    type: carrier_pigeon
    model: fast
`)
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestInitializeRejectsInvalidThreshold(t *testing.T) {
	dir := writeConfig(t, `
pipeline:
  timeline_relevance_threshold: 1.5
`)
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
}

func TestInitializeRejectsBadSemaphoreBounds(t *testing.T) {
	dir := writeConfig(t, `
wiki:
  semaphore:
    initial: 5
    min: 4
    max: 2
`)
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
}

func TestValidationErrorFormatting(t *testing.T) {
	err := &ValidationError{Component: "merger", Field: "cache_size", Err: ErrInvalidValue}
	assert.Contains(t, err.Error(), "merger")
	assert.Contains(t, err.Error(), "cache_size")
}
