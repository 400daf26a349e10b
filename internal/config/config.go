package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/rankfusion/internal/domain"
)

// Config holds the demo configuration.
type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Index     IndexConfig     `yaml:"index"`
	Search    SearchConfig    `yaml:"search"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// DatabaseConfig holds the Atlas connection settings.
type DatabaseConfig struct {
	URI        string `yaml:"uri"`
	Name       string `yaml:"name"`
	Collection string `yaml:"collection"`
}

// EmbeddingConfig holds the embedding provider settings. The model and
// dimensions pair must match the vector index dimensionality.
type EmbeddingConfig struct {
	APIKey     string `yaml:"api_key"`
	BaseURL    string `yaml:"base_url"`
	Azure      bool   `yaml:"azure"`
	Model      string `yaml:"model"`
	Dimensions int    `yaml:"dimensions"`
}

// IndexConfig holds search index names and readiness-poll tunables.
type IndexConfig struct {
	LexicalName     string `yaml:"lexical_name"`
	VectorName      string `yaml:"vector_name"`
	PollIntervalSec int    `yaml:"poll_interval_sec"`
	PollTimeoutSec  int    `yaml:"poll_timeout_sec"`
}

// SearchConfig holds the hybrid query settings.
type SearchConfig struct {
	Query         string  `yaml:"query"`
	VectorWeight  float64 `yaml:"vector_weight"`
	TextWeight    float64 `yaml:"text_weight"`
	NumCandidates int     `yaml:"num_candidates"`
	PipelineLimit int     `yaml:"pipeline_limit"`
	Limit         int     `yaml:"limit"`
}

// MetricsConfig holds the optional Prometheus listener settings. Port 0
// disables the listener.
type MetricsConfig struct {
	Port int `yaml:"port"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// Load reads configuration from config/<env>.yaml if present, expands
// ${VAR} references, overlays mandatory secrets from the environment,
// applies defaults, and validates. Validation failure is a configuration
// error and happens before any network call.
func Load(env string) (Config, error) {
	var cfg Config

	configPath := filepath.Join("config", fmt.Sprintf("%s.yaml", env))
	if data, err := os.ReadFile(filepath.Clean(configPath)); err == nil {
		data = expandEnvVars(data)
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w: %v", configPath, domain.ErrConfiguration, err)
		}
	}

	cfg.applyEnv()
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// applyEnv fills secrets from the environment when the file left them empty.
func (c *Config) applyEnv() {
	if c.Database.URI == "" {
		c.Database.URI = os.Getenv("MONGODB_CONNECTION_URI")
	}
	if c.Embedding.APIKey == "" {
		c.Embedding.APIKey = os.Getenv("OPENAI_API_KEY")
	}
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Database.Name == "" {
		c.Database.Name = "hybrid_search_db"
	}
	if c.Database.Collection == "" {
		c.Database.Collection = "movies"
	}
	if c.Embedding.Model == "" {
		c.Embedding.Model = "text-embedding-3-small"
	}
	if c.Embedding.Dimensions <= 0 {
		c.Embedding.Dimensions = 1536
	}
	if c.Index.LexicalName == "" {
		c.Index.LexicalName = "movies_text_index"
	}
	if c.Index.VectorName == "" {
		c.Index.VectorName = "movies_vector_index"
	}
	if c.Index.PollIntervalSec <= 0 {
		c.Index.PollIntervalSec = 5
	}
	if c.Index.PollTimeoutSec <= 0 {
		c.Index.PollTimeoutSec = 300
	}
	if c.Search.Query == "" {
		c.Search.Query = "space galaxy adventure"
	}
	if c.Search.VectorWeight == 0 && c.Search.TextWeight == 0 {
		c.Search.VectorWeight = 0.7
		c.Search.TextWeight = 0.3
	}
	if c.Search.NumCandidates <= 0 {
		c.Search.NumCandidates = 100
	}
	if c.Search.PipelineLimit <= 0 {
		c.Search.PipelineLimit = 10
	}
	if c.Search.Limit <= 0 {
		c.Search.Limit = 5
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.Database.URI == "" {
		return fmt.Errorf("database.uri (or MONGODB_CONNECTION_URI) is required: %w", domain.ErrConfiguration)
	}
	if c.Embedding.APIKey == "" {
		return fmt.Errorf("embedding.api_key (or OPENAI_API_KEY) is required: %w", domain.ErrConfiguration)
	}
	if c.Embedding.Azure && c.Embedding.BaseURL == "" {
		return fmt.Errorf("embedding.base_url is required for an Azure endpoint: %w", domain.ErrConfiguration)
	}
	if c.Search.VectorWeight < 0 || c.Search.TextWeight < 0 {
		return fmt.Errorf("search weights must be non-negative, got %v/%v: %w",
			c.Search.VectorWeight, c.Search.TextWeight, domain.ErrConfiguration)
	}
	if c.Metrics.Port < 0 || c.Metrics.Port > 65535 {
		return fmt.Errorf("metrics.port must be between 0 and 65535, got %d: %w",
			c.Metrics.Port, domain.ErrConfiguration)
	}
	return nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
