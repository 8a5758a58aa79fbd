package config

import "fmt"

// validate checks the complete configuration for consistency.
func validate(cfg *Config) error {
	for name, p := range cfg.LLMProviderRegistry.GetAll() {
		if err := validateLLMProvider(name, p); err != nil {
			return err
		}
	}

	if cfg.Wiki.Semaphore.Min < 1 {
		return &ValidationError{Component: "wiki", Field: "semaphore.min", Err: fmt.Errorf("%w: must be >= 1", ErrInvalidValue)}
	}
	if cfg.Wiki.Semaphore.Max < cfg.Wiki.Semaphore.Min {
		return &ValidationError{Component: "wiki", Field: "semaphore.max", Err: fmt.Errorf("%w: must be >= min", ErrInvalidValue)}
	}
	if cfg.Wiki.Semaphore.Initial < cfg.Wiki.Semaphore.Min || cfg.Wiki.Semaphore.Initial > cfg.Wiki.Semaphore.Max {
		return &ValidationError{Component: "wiki", Field: "semaphore.initial", Err: fmt.Errorf("%w: must be within [min, max]", ErrInvalidValue)}
	}

	if t := cfg.Pipeline.ArticleFilterRelevanceThreshold; t < 0 || t > 1 {
		return &ValidationError{Component: "pipeline", Field: "article_filter_relevance_threshold", Err: fmt.Errorf("%w: must be in [0,1]", ErrInvalidValue)}
	}
	if t := cfg.Pipeline.TimelineRelevanceThreshold; t < 0 || t > 1 {
		return &ValidationError{Component: "pipeline", Field: "timeline_relevance_threshold", Err: fmt.Errorf("%w: must be in [0,1]", ErrInvalidValue)}
	}
	if cfg.Pipeline.EventScoringBatchSize < 1 {
		return &ValidationError{Component: "pipeline", Field: "event_scoring_batch_size", Err: fmt.Errorf("%w: must be >= 1", ErrInvalidValue)}
	}

	if cfg.Merger.ConcurrentWindowSize < 1 {
		return &ValidationError{Component: "merger", Field: "concurrent_window_size", Err: fmt.Errorf("%w: must be >= 1", ErrInvalidValue)}
	}
	if cfg.Merger.MaxConcurrentRequests < cfg.Merger.ConcurrentWindowSize {
		return &ValidationError{Component: "merger", Field: "max_concurrent_requests", Err: fmt.Errorf("%w: must be >= concurrent_window_size", ErrInvalidValue)}
	}
	if r := cfg.Merger.RuleOverlapRatio; r <= 0 || r > 1 {
		return &ValidationError{Component: "merger", Field: "rule_overlap_ratio", Err: fmt.Errorf("%w: must be in (0,1]", ErrInvalidValue)}
	}
	if c := cfg.Merger.ConfidenceThreshold; c <= 0 || c > 1 {
		return &ValidationError{Component: "merger", Field: "confidence_threshold", Err: fmt.Errorf("%w: must be in (0,1]", ErrInvalidValue)}
	}

	if cfg.Embedding.Dimensions < 1 {
		return &ValidationError{Component: "embedding", Field: "dimensions", Err: fmt.Errorf("%w: must be >= 1", ErrInvalidValue)}
	}

	if cfg.Queue.WorkerCount < 1 {
		return &ValidationError{Component: "queue", Field: "worker_count", Err: fmt.Errorf("%w: must be >= 1", ErrInvalidValue)}
	}

	return nil
}

// validateLLMProvider checks a single provider entry.
func validateLLMProvider(name string, p *LLMProviderConfig) error {
	if err := p.Type.Validate(); err != nil {
		return &ValidationError{Component: "llm_provider", ID: name, Field: "type", Err: err}
	}
	if p.Model == "" {
		return &ValidationError{Component: "llm_provider", ID: name, Field: "model", Err: ErrMissingRequiredField}
	}
	return nil
}
