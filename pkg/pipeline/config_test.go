package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronicle-dev/chronicle/pkg/articles"
	"github.com/chronicle-dev/chronicle/pkg/config"
)

func TestParseTaskConfigDefaults(t *testing.T) {
	defaults := config.DefaultPipelineConfig()

	cfg, dataSource, err := ParseTaskConfig(nil, defaults)
	require.NoError(t, err)
	assert.Equal(t, articles.SearchModeSemantic, cfg.SearchMode)
	assert.Equal(t, 1.0, cfg.VectorWeight)
	assert.Equal(t, 0.0, cfg.BM25Weight)
	assert.Equal(t, defaults.DefaultArticleLimit, cfg.ArticleLimit)
	assert.Equal(t, "online_wikipedia", dataSource)
}

func TestParseTaskConfigOverrides(t *testing.T) {
	defaults := config.DefaultPipelineConfig()

	cfg, dataSource, err := ParseTaskConfig(map[string]any{
		"search_mode":            "hybrid_title_search",
		"vector_weight":          0.7,
		"bm25_weight":            0.3,
		"article_limit":          5,
		"data_source_preference": "dataset_wikipedia_en",
	}, defaults)
	require.NoError(t, err)
	assert.Equal(t, articles.SearchModeHybridTitle, cfg.SearchMode)
	assert.Equal(t, 0.7, cfg.VectorWeight)
	assert.Equal(t, 0.3, cfg.BM25Weight)
	assert.Equal(t, 5, cfg.ArticleLimit)
	assert.Equal(t, "dataset_wikipedia_en", dataSource)
}

func TestParseTaskConfigIgnoresUnknownFields(t *testing.T) {
	defaults := config.DefaultPipelineConfig()

	_, _, err := ParseTaskConfig(map[string]any{
		"search_mode":  "semantic",
		"some_new_key": "whatever",
	}, defaults)
	require.NoError(t, err)
}

func TestParseTaskConfigRejectsInvalid(t *testing.T) {
	defaults := config.DefaultPipelineConfig()

	tests := []struct {
		name string
		raw  map[string]any
	}{
		{"bad search mode", map[string]any{"search_mode": "psychic"}},
		{"negative limit", map[string]any{"article_limit": -1}},
		{"hybrid both weights zero", map[string]any{
			"search_mode": "hybrid_title_search", "vector_weight": 0.0, "bm25_weight": 0.0,
		}},
		{"weight above one", map[string]any{"vector_weight": 1.2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseTaskConfig(tt.raw, defaults)
			assert.Error(t, err)
		})
	}
}

func TestDocumentIDFromConfig(t *testing.T) {
	id, ok := documentIDFromConfig(map[string]any{"source_document_id": float64(42)})
	require.True(t, ok)
	assert.Equal(t, 42, id)

	_, ok = documentIDFromConfig(map[string]any{})
	assert.False(t, ok)

	_, ok = documentIDFromConfig(map[string]any{"source_document_id": "not a number"})
	assert.False(t, ok)
}
