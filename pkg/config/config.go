package config

// Config is the umbrella configuration object returned by Initialize()
// and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	System    *SystemConfig
	Embedding *EmbeddingConfig
	Wiki      *WikiConfig
	Pipeline  *PipelineConfig
	Merger    *MergerConfig
	Queue     *QueueConfig
	Retention *RetentionConfig

	LLMProviderRegistry *LLMProviderRegistry
}

// ConfigStats contains statistics about loaded configuration.
type ConfigStats struct {
	LLMProviders int
	DataSources  int
}

// Stats returns configuration statistics for logging/monitoring.
func (c *Config) Stats() ConfigStats {
	return ConfigStats{
		LLMProviders: c.LLMProviderRegistry.Len(),
		DataSources:  len(c.Pipeline.KnownDataSources),
	}
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetLLMProvider retrieves an LLM provider configuration by name.
// This is a convenience method that wraps LLMProviderRegistry.Get().
func (c *Config) GetLLMProvider(name string) (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.Get(name)
}

// SystemConfig groups system-wide infrastructure settings.
type SystemConfig struct {
	DashboardURL     string   `yaml:"dashboard_url"`
	AllowedWSOrigins []string `yaml:"allowed_ws_origins"`
}
