package config

import "time"

// EmbeddingConfig configures the text embedding capability.
type EmbeddingConfig struct {
	// Provider is "ollama" or "openai".
	Provider string `yaml:"provider"`

	// Model is the embedding model name.
	Model string `yaml:"model"`

	// APIKeyEnv names the env var holding the API key (openai only).
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// BaseURL is the server URL (ollama) or an OpenAI-compatible endpoint.
	BaseURL string `yaml:"base_url,omitempty"`

	// Dimensions is the model's output vector length.
	Dimensions int `yaml:"dimensions"`

	// CacheSize bounds the sha256-keyed embedding LRU. Zero disables caching.
	CacheSize int `yaml:"cache_size"`
}

// DefaultEmbeddingConfig returns the built-in embedding defaults.
func DefaultEmbeddingConfig() *EmbeddingConfig {
	return &EmbeddingConfig{
		Provider:   "ollama",
		Model:      "nomic-embed-text",
		BaseURL:    "http://localhost:11434",
		Dimensions: 768,
		CacheSize:  2048,
	}
}

// SemaphoreConfig bounds a wiki provider's adaptive concurrency gate.
type SemaphoreConfig struct {
	Initial int `yaml:"initial"`
	Min     int `yaml:"min"`
	Max     int `yaml:"max"`
}

// WikiConfig configures the wiki HTTP fetchers.
type WikiConfig struct {
	// UserAgent sent on every wiki request. Wikimedia policy requires a
	// contact address.
	UserAgent string `yaml:"user_agent"`

	// RequestTimeout bounds a single HTTP attempt.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// RetryBaseDelay is the backoff base for the retry policy table.
	RetryBaseDelay time.Duration `yaml:"retry_base_delay"`

	// Semaphore bounds per-provider concurrency.
	Semaphore SemaphoreConfig `yaml:"semaphore"`

	// CacheSize bounds the page/info LRU caches.
	CacheSize int `yaml:"cache_size"`

	// SuccessTTL / ErrorTTL control cache entry lifetimes.
	SuccessTTL time.Duration `yaml:"success_ttl"`
	ErrorTTL   time.Duration `yaml:"error_ttl"`

	// SearchResultLimit caps Wikinews articles collected per keyword.
	SearchResultLimit int `yaml:"search_result_limit"`
}

// DefaultWikiConfig returns the built-in wiki fetcher defaults.
func DefaultWikiConfig() *WikiConfig {
	return &WikiConfig{
		UserAgent:         "ChronicleBot/1.0 (https://github.com/chronicle-dev/chronicle)",
		RequestTimeout:    30 * time.Second,
		RetryBaseDelay:    time.Second,
		Semaphore:         SemaphoreConfig{Initial: 5, Min: 1, Max: 10},
		CacheSize:         512,
		SuccessTTL:        time.Hour,
		ErrorTTL:          5 * time.Minute,
		SearchResultLimit: 3,
	}
}

// PipelineConfig configures the timeline generation pipeline.
type PipelineConfig struct {
	// LLMProvider names the provider used by pipeline components.
	LLMProvider string `yaml:"llm_provider"`

	// ArticleFilterRelevanceThreshold drops articles scored below it before
	// extraction.
	ArticleFilterRelevanceThreshold float64 `yaml:"article_filter_relevance_threshold"`

	// TimelineRelevanceThreshold drops events scored below it after
	// extraction.
	TimelineRelevanceThreshold float64 `yaml:"timeline_relevance_threshold"`

	// EventScoringBatchSize is the event-relevance batch size.
	EventScoringBatchSize int `yaml:"event_scoring_batch_size"`

	// DefaultDataSource is used when a task names no preference.
	DefaultDataSource string `yaml:"default_data_source"`

	// DefaultArticleLimit bounds dataset strategy results when the task
	// config sets none.
	DefaultArticleLimit int `yaml:"default_article_limit"`

	// KnownDataSources lists valid strategy names for validation.
	KnownDataSources []string `yaml:"known_data_sources"`

	// ReuseCompositeViewpoint returns an existing completed viewpoint for
	// an identical (topic, data_source_preference) instead of regenerating.
	ReuseCompositeViewpoint bool `yaml:"reuse_composite_viewpoint"`

	// ReuseBaseViewpoint returns the existing canonical viewpoint for a
	// source document already processed successfully.
	ReuseBaseViewpoint bool `yaml:"reuse_base_viewpoint"`

	// Stage timeouts.
	ExtractTimeout            time.Duration `yaml:"extract_timeout"`
	ScoringTimeout            time.Duration `yaml:"scoring_timeout"`
	DateParseTimeout          time.Duration `yaml:"date_parse_timeout"`
	SingleArticleTimeout      time.Duration `yaml:"single_article_timeout"`
	TimelineGenerationTimeout time.Duration `yaml:"timeline_generation_timeout"`
}

// DefaultPipelineConfig returns the built-in pipeline defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		LLMProvider:                     "default",
		ArticleFilterRelevanceThreshold: 0.35,
		TimelineRelevanceThreshold:      0.6,
		EventScoringBatchSize:           10,
		DefaultDataSource:               "online_wikipedia",
		DefaultArticleLimit:             10,
		KnownDataSources: []string{
			"online_wikipedia",
			"online_wikinews",
			"dataset_wikipedia_en",
		},
		ReuseCompositeViewpoint:   true,
		ReuseBaseViewpoint:        true,
		ExtractTimeout:            120 * time.Second,
		ScoringTimeout:            60 * time.Second,
		DateParseTimeout:          120 * time.Second,
		SingleArticleTimeout:      120 * time.Second,
		TimelineGenerationTimeout: 600 * time.Second,
	}
}

// MergerConfig configures the event merger.
type MergerConfig struct {
	// ConcurrentWindowSize is the number of candidates adjudicated by LLM
	// in parallel per window.
	ConcurrentWindowSize int `yaml:"concurrent_window_size"`

	// MaxConcurrentRequests is the global cap on in-flight merger LLM calls.
	MaxConcurrentRequests int `yaml:"max_concurrent_requests"`

	// RuleOverlapRatio is the entity overlap (relative to the smaller set)
	// that merges without LLM adjudication.
	RuleOverlapRatio float64 `yaml:"rule_overlap_ratio"`

	// MinCommonEntities is the minimum shared entities for LLM eligibility.
	MinCommonEntities int `yaml:"min_common_entities"`

	// LLMScoreThreshold is the minimum candidate score for LLM eligibility.
	LLMScoreThreshold int `yaml:"llm_score_threshold"`

	// ConfidenceThreshold is the minimum LLM confidence to accept a match.
	ConfidenceThreshold float64 `yaml:"confidence_threshold"`

	// CacheSize bounds the semantic-match verdict LRU.
	CacheSize int `yaml:"cache_size"`
}

// DefaultMergerConfig returns the built-in merger defaults.
func DefaultMergerConfig() *MergerConfig {
	return &MergerConfig{
		ConcurrentWindowSize:  3,
		MaxConcurrentRequests: 10,
		RuleOverlapRatio:      0.75,
		MinCommonEntities:     1,
		LLMScoreThreshold:     15,
		ConfidenceThreshold:   0.75,
		CacheSize:             1000,
	}
}

// RetentionConfig controls background cleanup of old tasks and progress logs.
type RetentionConfig struct {
	// TaskRetentionDays is how long terminal tasks are kept.
	TaskRetentionDays int `yaml:"task_retention_days"`

	// ProgressStepTTL is how long progress steps are kept, whatever the
	// status of their task.
	ProgressStepTTL time.Duration `yaml:"progress_step_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		TaskRetentionDays: 30,
		ProgressStepTTL:   30 * 24 * time.Hour,
		CleanupInterval:   time.Hour,
	}
}
