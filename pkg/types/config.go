package types

import "time"

// HTTPConfig holds shared HTTP settings for outbound requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Report processing can take
	// several minutes, so the default is generous (300s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "credit-lift-nexus/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SmokeConfig holds settings for the smoke client.
type SmokeConfig struct {
	HTTPConfig `yaml:",inline"`

	// Endpoint is the local default target used when no URL is given
	// on the command line (default "http://localhost:8080").
	Endpoint string `json:"endpoint" yaml:"endpoint"`
}

// HistoryConfig holds settings for the invocation run log.
type HistoryConfig struct {
	// Enabled controls whether smoke runs are recorded. Off by default;
	// the client is stateless unless the operator opts in.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Path is the SQLite database file for the run log
	// (default ".credit-lift/history.db").
	Path string `json:"path" yaml:"path"`

	// MaxResults is the default maximum number of runs listed (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
