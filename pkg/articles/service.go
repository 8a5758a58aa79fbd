package articles

import (
	"context"
	"log/slog"
	"sync"
)

// Service orchestrates article acquisition: it dispatches the strategies
// named in data_source_preference concurrently, tolerates per-strategy
// failures, and deduplicates results by source URL.
type Service struct {
	registry *Registry

	// hybridDataset, when set, replaces the semantic dataset strategy for
	// tasks requesting hybrid_title_search. Resolved once per Acquire call.
	hybridDataset Strategy
}

// NewService creates the acquisition service.
func NewService(registry *Registry, hybridDataset Strategy) *Service {
	return &Service{registry: registry, hybridDataset: hybridDataset}
}

// Acquire runs the selected strategies and returns deduplicated articles.
// A strategy failure is logged and reported via progress; the remaining
// strategies still contribute.
func (s *Service) Acquire(ctx context.Context, query QueryData, progress ProgressFunc) ([]SourceArticle, error) {
	names := query.SelectedSources()

	type strategyResult struct {
		name     string
		articles []SourceArticle
		err      error
	}

	// Results are slotted by position in the preference list, so that
	// deduplication keeps the article from the earliest-listed source.
	var wg sync.WaitGroup
	results := make([]*strategyResult, len(names))
	for i, name := range names {
		strategy, err := s.resolve(name, query)
		if err != nil {
			slog.Warn("Skipping unknown article source", "source", name, "error", err)
			report(progress, "article_strategy_result", "unknown article source: "+name, map[string]any{
				"strategy": name, "article_count": 0, "error": err.Error(),
			})
			continue
		}

		wg.Add(1)
		go func(i int, name string, strategy Strategy) {
			defer wg.Done()
			articles, err := strategy.GetArticles(ctx, query)
			results[i] = &strategyResult{name: name, articles: articles, err: err}
		}(i, name, strategy)
	}
	wg.Wait()

	var combined []SourceArticle
	for _, r := range results {
		if r == nil {
			continue
		}
		if r.err != nil {
			slog.Error("Article strategy failed", "strategy", r.name, "error", r.err)
			report(progress, "article_strategy_result", "strategy failed: "+r.name, map[string]any{
				"strategy": r.name, "article_count": 0, "error": r.err.Error(),
			})
			continue
		}
		report(progress, "article_strategy_result", "strategy completed: "+r.name, map[string]any{
			"strategy": r.name, "article_count": len(r.articles),
		})
		combined = append(combined, r.articles...)
	}

	deduped := dedupeByURL(combined)
	report(progress, "article_deduplication_complete", "articles deduplicated", map[string]any{
		"total_count":  len(combined),
		"unique_count": len(deduped),
	})
	return deduped, nil
}

// resolve picks the strategy implementation for a source name, swapping in
// the hybrid dataset variant when the task requests hybrid title search.
func (s *Service) resolve(name string, query QueryData) (Strategy, error) {
	if name == SourceDatasetWikipedia &&
		query.Config.SearchMode == SearchModeHybridTitle &&
		s.hybridDataset != nil {
		return s.hybridDataset, nil
	}
	return s.registry.Get(name)
}

// dedupeByURL keeps the first article seen for each source URL.
func dedupeByURL(articles []SourceArticle) []SourceArticle {
	seen := make(map[string]bool, len(articles))
	out := make([]SourceArticle, 0, len(articles))
	for _, a := range articles {
		if a.SourceURL == "" || !seen[a.SourceURL] {
			if a.SourceURL != "" {
				seen[a.SourceURL] = true
			}
			out = append(out, a)
		}
	}
	return out
}

func report(progress ProgressFunc, step, message string, data map[string]any) {
	if progress != nil {
		progress(step, message, data)
	}
}
