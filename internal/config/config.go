package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Catalog    CatalogConfig    `toml:"catalog"`
	Embeddings EmbeddingsConfig `toml:"embeddings"`
	Recommend  RecommendConfig  `toml:"recommend"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int `toml:"port"`
}

// CatalogConfig holds podcast catalog API settings.
type CatalogConfig struct {
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"api_key"`
}

// EmbeddingsConfig holds embedding provider settings.
type EmbeddingsConfig struct {
	Provider string `toml:"provider"`
	BaseURL  string `toml:"base_url"`
	APIKey   string `toml:"api_key"`
	Model    string `toml:"model"`
}

// RecommendConfig holds recommendation pipeline settings.
type RecommendConfig struct {
	MaxRecommendations int    `toml:"max_recommendations"`
	CacheSize          int    `toml:"cache_size"`
	CacheDBPath        string `toml:"cache_db_path"`
	CacheTTLHours      int    `toml:"cache_ttl_hours"`
}

const defaultConfigContent = `[server]
port = 8080

[catalog]
base_url = "https://listen-api.listennotes.com/api/v2"
api_key  = ""                     # Your Listen API key (or set LISTEN_API_KEY env var)

[embeddings]
provider = "ollama"               # "ollama" or "openai"
base_url = "http://localhost:11434"
api_key  = ""                     # Only needed for "openai" (or set EMBEDDINGS_API_KEY)
model    = "nomic-embed-text"

[recommend]
max_recommendations = 10
cache_size          = 512
cache_db_path       = ""          # Empty disables the persistent embedding cache
cache_ttl_hours     = 168
`

// Load reads and parses the TOML config from the given path. If the file
// does not exist, it creates a default config file at that path.
// Environment variables override values from the file with highest priority.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := createDefault(path); err != nil {
			return nil, fmt.Errorf("creating default config: %w", err)
		}
		slog.Info("created default config file", "path", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Validate explicitly-set values before applying defaults, so that
	// explicitly writing "port = 0" is an error rather than silently
	// being replaced with the default.
	if err := validateExplicit(&cfg, md); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// createDefault writes the default config content to the given path,
// creating any parent directories as needed.
func createDefault(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigContent), 0o644); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}

// validateExplicit checks values that were explicitly set in the TOML file.
// This catches cases like "port = 0" which would otherwise be silently
// replaced by the default value.
func validateExplicit(cfg *Config, md toml.MetaData) error {
	if md.IsDefined("server", "port") {
		if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
			return fmt.Errorf("invalid server.port %d: must be between 1 and 65535", cfg.Server.Port)
		}
	}
	if md.IsDefined("recommend", "max_recommendations") {
		if cfg.Recommend.MaxRecommendations < 1 || cfg.Recommend.MaxRecommendations > 10 {
			return fmt.Errorf("invalid recommend.max_recommendations %d: must be between 1 and 10", cfg.Recommend.MaxRecommendations)
		}
	}
	if md.IsDefined("recommend", "cache_size") {
		if cfg.Recommend.CacheSize < 1 {
			return fmt.Errorf("invalid recommend.cache_size %d: must be >= 1", cfg.Recommend.CacheSize)
		}
	}
	return nil
}

// applyDefaults sets default values for any zero-valued fields.
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Catalog.BaseURL == "" {
		cfg.Catalog.BaseURL = "https://listen-api.listennotes.com/api/v2"
	}
	if cfg.Embeddings.Provider == "" {
		cfg.Embeddings.Provider = "ollama"
	}
	if cfg.Embeddings.BaseURL == "" && cfg.Embeddings.Provider == "ollama" {
		cfg.Embeddings.BaseURL = "http://localhost:11434"
	}
	if cfg.Embeddings.Model == "" {
		cfg.Embeddings.Model = "nomic-embed-text"
	}
	if cfg.Recommend.MaxRecommendations == 0 {
		cfg.Recommend.MaxRecommendations = 10
	}
	if cfg.Recommend.CacheSize == 0 {
		cfg.Recommend.CacheSize = 512
	}
	if cfg.Recommend.CacheTTLHours == 0 {
		cfg.Recommend.CacheTTLHours = 168
	}
}

// applyEnvOverrides applies environment variable overrides. Environment
// variables take highest priority over config file values.
//
// Priority for embeddings.api_key:
//  1. EMBEDDINGS_API_KEY (generic, highest)
//  2. OPENAI_API_KEY (when provider is "openai")
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LISTEN_API_KEY"); v != "" {
		cfg.Catalog.APIKey = v
	}

	if cfg.Embeddings.Provider == "openai" {
		if v := os.Getenv("OPENAI_API_KEY"); v != "" {
			cfg.Embeddings.APIKey = v
		}
	}
	if v := os.Getenv("EMBEDDINGS_API_KEY"); v != "" {
		cfg.Embeddings.APIKey = v
	}
}

// validate checks that configuration values are within acceptable ranges.
func validate(cfg *Config) error {
	switch cfg.Embeddings.Provider {
	case "ollama", "openai":
		// valid
	default:
		return fmt.Errorf("invalid embeddings.provider %q: must be \"ollama\" or \"openai\"", cfg.Embeddings.Provider)
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d: must be between 1 and 65535", cfg.Server.Port)
	}

	if cfg.Embeddings.Provider == "openai" && cfg.Embeddings.APIKey == "" {
		slog.Warn("embeddings.api_key is empty: set it in the config file or via EMBEDDINGS_API_KEY environment variable")
	}
	if cfg.Catalog.APIKey == "" {
		slog.Warn("catalog.api_key is empty: set it in the config file or via LISTEN_API_KEY environment variable")
	}

	return nil
}
