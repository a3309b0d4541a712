package types

import "time"

// HTTPConfig holds shared HTTP settings used by backends that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "scholar-metrics/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the fetch stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// ProfileID is the Google Scholar user identifier (e.g. "_cxg7m4AAAAJ").
	ProfileID string `json:"profile_id" yaml:"profile_id"`

	// EnableScholar controls whether the Google Scholar scrape backend is used.
	EnableScholar bool `json:"enable_scholar" yaml:"enable_scholar"`

	// EnableSemanticScholar controls whether the Semantic Scholar fallback is used.
	EnableSemanticScholar bool `json:"enable_semantic_scholar" yaml:"enable_semantic_scholar"`

	// SemanticScholarAuthorID is the author identifier on Semantic Scholar,
	// required when the fallback backend is enabled.
	SemanticScholarAuthorID string `json:"semantic_scholar_author_id,omitempty" yaml:"semantic_scholar_author_id,omitempty"`

	// SemanticScholarAPIKey is an optional API key for higher rate limits.
	SemanticScholarAPIKey string `json:"semantic_scholar_api_key,omitempty" yaml:"semantic_scholar_api_key,omitempty"`

	// Cookie is an optional Cookie header sent with scrape requests.
	Cookie string `json:"cookie,omitempty" yaml:"cookie,omitempty"`

	// RequestsPerMinute caps scrape requests to Google Scholar (default 6).
	RequestsPerMinute float64 `json:"requests_per_minute" yaml:"requests_per_minute"`

	// MaxRetries is the retry budget for transient HTTP failures (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// ArtifactConfig holds settings for the published metrics file.
type ArtifactConfig struct {
	// Path is the location of the metrics JSON file (default "assets/scholar.json").
	Path string `json:"path" yaml:"path"`
}

// HistoryConfig holds settings for the snapshot history store.
type HistoryConfig struct {
	// Dir is the directory containing the history database (default "history").
	Dir string `json:"dir" yaml:"dir"`

	// MaxResults is the default maximum number of listed snapshots (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// WatchConfig holds settings for the scheduled fetch loop.
type WatchConfig struct {
	// Interval is the time between fetch runs (default 24h).
	Interval time.Duration `json:"interval" yaml:"interval"`

	// RunTimeout bounds a single fetch run (default 2m).
	RunTimeout time.Duration `json:"run_timeout" yaml:"run_timeout"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Fetch    FetchConfig    `json:"fetch" yaml:"fetch"`
	Artifact ArtifactConfig `json:"artifact" yaml:"artifact"`
	History  HistoryConfig  `json:"history" yaml:"history"`
	Watch    WatchConfig    `json:"watch" yaml:"watch"`
}
