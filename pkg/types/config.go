package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paperforge/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ResearchConfig holds settings for the research collection stage.
type ResearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey authenticates against the research service.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxResults bounds the number of results per query (default 6).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// SearchDepth is the research service depth flag (default "advanced").
	SearchDepth string `json:"search_depth" yaml:"search_depth"`

	// ExcerptLimit bounds each result excerpt, in runes (default 600).
	ExcerptLimit int `json:"excerpt_limit" yaml:"excerpt_limit"`
}

// WriterConfig holds settings for the content generation stage.
type WriterConfig struct {
	// Model is the generative model identifier (e.g. "gpt-4o-mini").
	Model string `json:"model" yaml:"model"`

	// APIKey authenticates against the generative service.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// BaseURL overrides the service endpoint for OpenAI-compatible
	// gateways; empty selects the default endpoint.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// Temperature is the fixed sampling temperature (default 0.7).
	Temperature float64 `json:"temperature" yaml:"temperature"`
}

// RenderConfig holds settings for the document rendering stage.
type RenderConfig struct {
	// OutputDir is the directory artifacts are written to (default "doc").
	// Created on first use.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// LedgerConfig holds settings for the run ledger.
type LedgerConfig struct {
	// Path is the SQLite database file (default "doc/runs.db").
	Path string `json:"path" yaml:"path"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Research ResearchConfig `json:"research" yaml:"research"`
	Writer   WriterConfig   `json:"writer" yaml:"writer"`
	Render   RenderConfig   `json:"render" yaml:"render"`
	Ledger   LedgerConfig   `json:"ledger" yaml:"ledger"`
}
