// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for components that make network
// requests.
type HTTPConfig struct {
	// Timeout is the per-request HTTP timeout. It bounds individual
	// requests only; the overall conversion has no deadline.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pdf2x/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ParserConfig holds settings for the hosted parsing service. It is built
// once in the command layer and passed explicitly into the driver and
// client; nothing reads configuration from globals below the CLI.
type ParserConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the service endpoint. Empty selects the production
	// LlamaParse endpoint.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// APIKey is the credential for the parsing service.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// PremiumMode requests the service's highest-accuracy parsing.
	PremiumMode bool `json:"premium_mode" yaml:"premium_mode"`

	// ContinuousMode asks the service to preserve reading order across
	// page boundaries.
	ContinuousMode bool `json:"continuous_mode" yaml:"continuous_mode"`

	// PollInterval is the delay between parsing-job status checks.
	PollInterval time.Duration `json:"poll_interval" yaml:"poll_interval"`

	// MaxRetries is the number of retry attempts on rate-limited requests.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}
