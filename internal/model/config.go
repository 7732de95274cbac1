package model

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds all runtime configuration for the analysis pipeline
type Config struct {
	Corroboration CorroborationConfig `yaml:"corroboration"`
	Cache         CacheConfig         `yaml:"cache"`
	Concurrency   ConcurrencyConfig   `yaml:"concurrency"`
	Output        OutputConfig        `yaml:"output"`
	LLM           LLMConfig           `yaml:"llm"`
}

// CorroborationConfig controls the corroboration port
type CorroborationConfig struct {
	Mode       string        `yaml:"mode"` // "lexical" (offline stub) or "registry" (live lookups)
	Timeout    time.Duration `yaml:"timeout"`
	Workers    int           `yaml:"workers"` // Concurrent registry lookups
	UserAgent  string        `yaml:"user_agent"`
	HTTPProxy  string        `yaml:"http_proxy"`
	HTTPSProxy string        `yaml:"https_proxy"`
	NoProxy    string        `yaml:"no_proxy"`
	Registries []Registry    `yaml:"registries"`
}

// Registry is one authoritative source the registry corroborator probes
type Registry struct {
	Name       string `yaml:"name"`
	BaseURL    string `yaml:"base_url"`
	Confidence string `yaml:"confidence"` // low, medium, high
}

// CacheConfig controls corroboration result caching
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// ConcurrencyConfig controls batch analysis parallelism
type ConcurrencyConfig struct {
	BatchWorkers int `yaml:"batch_workers"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
}

// LLMConfig configures the optional narrative brief. Leaving Provider empty
// disables it entirely.
type LLMConfig struct {
	Provider  string        `yaml:"provider"` // "openai" or ""
	Model     string        `yaml:"model"`
	APIKey    string        `yaml:"-"` // Never serialized; from environment
	BaseURL   string        `yaml:"base_url"`
	Timeout   time.Duration `yaml:"timeout"`
	MaxTokens int           `yaml:"max_tokens"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	cacheDir := ".dossier/cache"
	if home, err := os.UserHomeDir(); err == nil {
		cacheDir = filepath.Join(home, ".dossier", "cache")
	}

	return &Config{
		Corroboration: CorroborationConfig{
			Mode:      "lexical",
			Timeout:   10 * time.Second,
			Workers:   10,
			UserAgent: "Dossier/0.3 (+https://github.com/civicwatch/dossier)",
			Registries: []Registry{
				{Name: "CanLII", BaseURL: "https://www.canlii.org", Confidence: "high"},
				{Name: "Ontario Newsroom", BaseURL: "https://news.ontario.ca", Confidence: "medium"},
				{Name: "Auditor General of Ontario", BaseURL: "https://www.auditor.on.ca", Confidence: "high"},
			},
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       cacheDir,
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers: 4,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
		LLM: LLMConfig{
			Provider:  "",
			Model:     "gpt-4o-mini",
			Timeout:   30 * time.Second,
			MaxTokens: 1000,
		},
	}
}
