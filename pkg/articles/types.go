// Package articles discovers source articles for a viewpoint from multiple
// backends (online Wikipedia, Wikinews, local dataset) via interchangeable
// strategies.
package articles

import (
	"fmt"
	"strings"
)

// Strategy names dispatched from data_source_preference.
const (
	SourceOnlineWikipedia  = "online_wikipedia"
	SourceOnlineWikinews   = "online_wikinews"
	SourceDatasetWikipedia = "dataset_wikipedia_en"
)

// Search modes for the dataset strategy.
const (
	SearchModeSemantic    = "semantic"
	SearchModeHybridTitle = "hybrid_title_search"
)

// SourceArticle is a discovered article ready for extraction.
type SourceArticle struct {
	SourceName       string `json:"source_name"`
	SourceIdentifier string `json:"source_identifier"`
	Title            string `json:"title"`
	SourceURL        string `json:"source_url"`
	Language         string `json:"language"`
	SourceType       string `json:"source_type"`
	Text             string `json:"text"`
}

// AcquisitionConfig is the validated form of a task's acquisition settings.
type AcquisitionConfig struct {
	SearchMode   string  `json:"search_mode"`
	VectorWeight float64 `json:"vector_weight"`
	BM25Weight   float64 `json:"bm25_weight"`
	ArticleLimit int     `json:"article_limit"`
}

// Validate checks field ranges. Hybrid mode requires at least one non-zero
// weight.
func (c *AcquisitionConfig) Validate() error {
	switch c.SearchMode {
	case SearchModeSemantic, SearchModeHybridTitle:
	default:
		return fmt.Errorf("invalid search_mode %q", c.SearchMode)
	}
	if c.VectorWeight < 0 || c.VectorWeight > 1 {
		return fmt.Errorf("vector_weight %v out of range [0,1]", c.VectorWeight)
	}
	if c.BM25Weight < 0 || c.BM25Weight > 1 {
		return fmt.Errorf("bm25_weight %v out of range [0,1]", c.BM25Weight)
	}
	if c.SearchMode == SearchModeHybridTitle && c.VectorWeight == 0 && c.BM25Weight == 0 {
		return fmt.Errorf("hybrid search requires a non-zero vector_weight or bm25_weight")
	}
	if c.ArticleLimit <= 0 {
		return fmt.Errorf("article_limit must be > 0, got %d", c.ArticleLimit)
	}
	return nil
}

// QueryData carries everything a strategy needs to search its backend.
type QueryData struct {
	Keywords             []string
	EnglishKeywords      []string
	UserLanguage         string
	ViewpointText        string
	TranslatedViewpoint  string
	DataSourcePreference string
	Config               AcquisitionConfig
	ParentRequestID      string
}

// SelectedSources parses the CSV preference into strategy names, defaulting
// to online_wikipedia.
func (q *QueryData) SelectedSources() []string {
	raw := strings.TrimSpace(q.DataSourcePreference)
	if raw == "" {
		return []string{SourceOnlineWikipedia}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			out = append(out, name)
		}
	}
	if len(out) == 0 {
		return []string{SourceOnlineWikipedia}
	}
	return out
}

// DatasetQueryText selects the text embedded for dataset search, in priority
// order: the original viewpoint for English users, the translated viewpoint,
// the joined English keywords, then the original text as a last resort.
func (q *QueryData) DatasetQueryText() string {
	if q.UserLanguage == "en" && q.ViewpointText != "" {
		return q.ViewpointText
	}
	if q.TranslatedViewpoint != "" {
		return q.TranslatedViewpoint
	}
	if len(q.EnglishKeywords) > 0 {
		return strings.Join(q.EnglishKeywords, " ")
	}
	return q.ViewpointText
}

// ProgressFunc reports strategy-level progress events. A nil ProgressFunc is
// valid.
type ProgressFunc func(step, message string, data map[string]any)
