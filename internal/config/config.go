// Package config handles the persistent application configuration and
// lens catalog files.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the persistent application configuration
type Config struct {
	// AI Models
	Models ModelConfig `json:"models"`

	// News search settings
	Search SearchConfig `json:"search"`

	// Pipeline behavior
	Pipeline PipelineConfig `json:"pipeline"`

	// Optional YAML lens catalog overriding the built-in one
	CatalogFile string `json:"catalog_file,omitempty"`
}

// ModelConfig holds AI model settings
type ModelConfig struct {
	OpenAI ModelSettings `json:"openai"`
	Local  ModelSettings `json:"local"`
}

// ModelSettings for a single AI provider
type ModelSettings struct {
	Enabled  bool   `json:"enabled"`
	APIKey   string `json:"api_key,omitempty"`
	Endpoint string `json:"endpoint,omitempty"` // For local OpenAI-compatible servers
	Model    string `json:"model,omitempty"`
	Priority int    `json:"priority"` // Lower = higher priority for fallback
}

// SearchConfig holds news search API settings
type SearchConfig struct {
	BraveAPIKey string `json:"brave_api_key,omitempty"`
	Language    string `json:"language"`
	Country     string `json:"country"`
}

// PipelineConfig holds article pipeline preferences
type PipelineConfig struct {
	WindowDays   int    `json:"window_days"`
	TemporalMode string `json:"temporal_mode"` // "bonus" or "filter"
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Models: ModelConfig{
			OpenAI: ModelSettings{
				Enabled:  true,
				Priority: 1,
				Model:    "gpt-4o-mini",
			},
			Local: ModelSettings{
				Enabled:  false,
				Priority: 2,
				Endpoint: "http://localhost:11434",
			},
		},
		Search: SearchConfig{
			Language: "en",
			Country:  "us",
		},
		Pipeline: PipelineConfig{
			WindowDays:   7,
			TemporalMode: "bonus",
		},
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".parallax", "config.json")
}

// Load reads config from disk, or returns defaults
func Load() (*Config, error) {
	return loadFrom(ConfigPath())
}

func loadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults and try to auto-populate from environment
			cfg := DefaultConfig()
			cfg.AutoPopulateFromEnv()
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), nil
	}

	return &cfg, nil
}

// Save writes config to disk
func (c *Config) Save() error {
	return c.saveTo(ConfigPath())
}

func (c *Config) saveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600) // Restrictive permissions for API keys
}

// AutoPopulateFromEnv fills in API keys from environment variables
func (c *Config) AutoPopulateFromEnv() {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		c.Models.OpenAI.APIKey = key
		c.Models.OpenAI.Enabled = true
	}
	if endpoint := os.Getenv("PARALLAX_LLM_ENDPOINT"); endpoint != "" {
		c.Models.Local.Endpoint = endpoint
		c.Models.Local.Enabled = true
	}
	if key := os.Getenv("BRAVE_API_KEY"); key != "" {
		c.Search.BraveAPIKey = key
	}
}
