// Package pipeline wires the timeline generation stages: keyword extraction,
// article acquisition, relevance filtering, canonical processing, event
// merging, and viewpoint materialization.
package pipeline

import (
	"encoding/json"
	"fmt"

	"github.com/chronicle-dev/chronicle/pkg/articles"
	"github.com/chronicle-dev/chronicle/pkg/config"
)

// taskConfigJSON is the accepted shape of a task's opaque config. Unknown
// fields are ignored.
type taskConfigJSON struct {
	SearchMode           string   `json:"search_mode"`
	VectorWeight         *float64 `json:"vector_weight"`
	BM25Weight           *float64 `json:"bm25_weight"`
	ArticleLimit         *int     `json:"article_limit"`
	DataSourcePreference string   `json:"data_source_preference"`
}

// ParseTaskConfig validates a task's config JSON into a typed
// AcquisitionConfig plus the effective data source preference. The article
// limit and data source defaults come from the pipeline configuration; search
// mode defaults to semantic with vector weight 1 and BM25 weight 0.
func ParseTaskConfig(raw map[string]any, defaults *config.PipelineConfig) (articles.AcquisitionConfig, string, error) {
	parsed := taskConfigJSON{}
	if raw != nil {
		data, err := json.Marshal(raw)
		if err != nil {
			return articles.AcquisitionConfig{}, "", fmt.Errorf("encoding task config: %w", err)
		}
		if err := json.Unmarshal(data, &parsed); err != nil {
			return articles.AcquisitionConfig{}, "", fmt.Errorf("invalid task config: %w", err)
		}
	}

	cfg := articles.AcquisitionConfig{
		SearchMode:   articles.SearchModeSemantic,
		VectorWeight: 1.0,
		BM25Weight:   0.0,
		ArticleLimit: defaults.DefaultArticleLimit,
	}
	if parsed.SearchMode != "" {
		cfg.SearchMode = parsed.SearchMode
	}
	if parsed.VectorWeight != nil {
		cfg.VectorWeight = *parsed.VectorWeight
	}
	if parsed.BM25Weight != nil {
		cfg.BM25Weight = *parsed.BM25Weight
	}
	if parsed.ArticleLimit != nil {
		cfg.ArticleLimit = *parsed.ArticleLimit
	}

	if err := cfg.Validate(); err != nil {
		return articles.AcquisitionConfig{}, "", err
	}

	dataSource := parsed.DataSourcePreference
	if dataSource == "" {
		dataSource = defaults.DefaultDataSource
	}
	return cfg, dataSource, nil
}
