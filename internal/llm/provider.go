// Package llm generates an optional narrative brief of a finished report.
// The brief is produced after scoring and is never read back by any
// classifier, scorer, or recommender.
package llm

import (
	"context"
	"time"

	"github.com/civicwatch/dossier/internal/model"
)

// Provider is one LLM backend
type Provider interface {
	// Name returns the provider name
	Name() string

	// Brief writes a narrative summary constrained to the given evidence
	Brief(ctx context.Context, req BriefRequest) (*BriefResponse, error)
}

// BriefRequest is the input for brief generation
type BriefRequest struct {
	// Report is the finished analysis report
	Report model.Report

	// EvidenceSnippets is the strict allowlist of quotes the model may
	// reference; it cannot introduce material outside this list
	EvidenceSnippets []string

	// Model overrides the configured model name when set
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// BriefResponse is the provider's output
type BriefResponse struct {
	BriefMD    string
	Model      string
	TokensUsed int
}

// Config holds provider configuration
type Config struct {
	Provider  string // "openai" or "" (disabled)
	Model     string
	APIKey    string
	BaseURL   string
	Timeout   time.Duration
	MaxTokens int
}

// ConfigFromModel converts the pipeline configuration
func ConfigFromModel(cfg model.LLMConfig) Config {
	return Config{
		Provider:  cfg.Provider,
		Model:     cfg.Model,
		APIKey:    cfg.APIKey,
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		MaxTokens: cfg.MaxTokens,
	}
}
