package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ChronicleYAMLConfig represents the complete chronicle.yaml file structure.
type ChronicleYAMLConfig struct {
	System       *SystemConfig                `yaml:"system"`
	LLMProviders map[string]LLMProviderConfig `yaml:"llm_providers"`
	Embedding    *EmbeddingConfig             `yaml:"embedding"`
	Wiki         *WikiConfig                  `yaml:"wiki"`
	Pipeline     *PipelineConfig              `yaml:"pipeline"`
	Merger       *MergerConfig                `yaml:"merger"`
	Queue        *QueueConfig                 `yaml:"queue"`
	Retention    *RetentionConfig             `yaml:"retention"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load chronicle.yaml from configDir (missing file → all defaults)
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge with built-in defaults
//  5. Apply environment overrides (reuse flags, thresholds)
//  6. Validate all configuration
//  7. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"llm_providers", stats.LLMProviders,
		"data_sources", stats.DataSources)

	return cfg, nil
}

// load is the internal loader (not exported).
func load(_ context.Context, configDir string) (*Config, error) {
	yamlCfg := &ChronicleYAMLConfig{}

	path := filepath.Join(configDir, "chronicle.yaml")
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		expanded := ExpandEnv(data)
		if err := yaml.Unmarshal(expanded, yamlCfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidYAML, path, err)
		}
	case os.IsNotExist(err):
		slog.Warn("No chronicle.yaml found, using built-in defaults", "path", path)
	default:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	cfg := &Config{
		configDir: configDir,
		System:    yamlCfg.System,
		Embedding: applyDefaults(yamlCfg.Embedding, DefaultEmbeddingConfig()),
		Wiki:      applyDefaults(yamlCfg.Wiki, DefaultWikiConfig()),
		Pipeline:  applyDefaults(yamlCfg.Pipeline, DefaultPipelineConfig()),
		Merger:    applyDefaults(yamlCfg.Merger, DefaultMergerConfig()),
		Queue:     applyDefaults(yamlCfg.Queue, DefaultQueueConfig()),
		Retention: applyDefaults(yamlCfg.Retention, DefaultRetentionConfig()),
	}
	if cfg.System == nil {
		cfg.System = &SystemConfig{}
	}

	providers := make(map[string]*LLMProviderConfig, len(yamlCfg.LLMProviders))
	for name, p := range yamlCfg.LLMProviders {
		pc := p
		providers[name] = &pc
	}
	cfg.LLMProviderRegistry = NewLLMProviderRegistry(providers)

	applyEnvOverrides(cfg)
	return cfg, nil
}

// applyDefaults overlays user values on top of the built-in defaults.
// User-set (non-zero) fields win; unset fields take the default.
func applyDefaults[T any](user, def *T) *T {
	if user == nil {
		return def
	}
	if err := mergo.Merge(user, def); err != nil {
		slog.Error("Failed to merge configuration defaults", "error", err)
		return def
	}
	return user
}

// applyEnvOverrides applies the documented environment variable overrides.
// YAML ${VAR} expansion covers credentials; these flags are commonly toggled
// per deployment without editing YAML.
func applyEnvOverrides(cfg *Config) {
	if v, ok := envBool("REUSE_COMPOSITE_VIEWPOINT"); ok {
		cfg.Pipeline.ReuseCompositeViewpoint = v
	}
	if v, ok := envBool("REUSE_BASE_VIEWPOINT"); ok {
		cfg.Pipeline.ReuseBaseViewpoint = v
	}
	if v, ok := envFloat("ARTICLE_FILTER_RELEVANCE_THRESHOLD"); ok {
		cfg.Pipeline.ArticleFilterRelevanceThreshold = v
	}
	if v, ok := envFloat("TIMELINE_RELEVANCE_THRESHOLD"); ok {
		cfg.Pipeline.TimelineRelevanceThreshold = v
	}
	if v := os.Getenv("WIKI_USER_AGENT"); v != "" {
		cfg.Wiki.UserAgent = v
	}
}

func envBool(key string) (bool, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		slog.Warn("Ignoring invalid boolean environment variable", "key", key, "value", raw)
		return false, false
	}
	return v, true
}

func envFloat(key string) (float64, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		slog.Warn("Ignoring invalid float environment variable", "key", key, "value", raw)
		return 0, false
	}
	return v, true
}
