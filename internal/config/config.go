// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

package config

import (
	"fmt"
	"time"
)

// DefaultBaseURL is the production endpoint of the ransomware.live Pro API.
const DefaultBaseURL = "https://api-pro.ransomware.live"

// Default request settings applied when no source provides a value.
const (
	DefaultTimeout     = 10 * time.Second
	DefaultPerMinute   = 30
	DefaultPerSecond   = 2
	DefaultMinInterval = 500 * time.Millisecond
)

// StructuredConfig is the top-level configuration container for ransomwatch.
// It is populated by merging values from command-line flags, environment
// variables, and an optional JSON file; earlier sources win for any field
// they set.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// API holds remote-endpoint settings: token, base URL, and the
	// per-request timeout.
	API API `envPrefix:"RANSOMWATCH_"`

	// Rate holds the client-side request-rate caps.
	Rate Rate `envPrefix:"RANSOMWATCH_RATE_"`

	// Output holds rendering and logging toggles.
	Output Output `envPrefix:"RANSOMWATCH_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged underneath the values
	// already loaded from flags and environment variables.
	// Populated via the RANSOMWATCH_CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"RANSOMWATCH_CONFIG"`
}

// API holds settings for the outbound connection to the intelligence API.
type API struct {
	// Token authenticates every request via the X-API-KEY header.
	// Env: RANSOMWATCH_API_TOKEN
	Token string `env:"API_TOKEN"`

	// BaseURL is the API root. Defaults to [DefaultBaseURL]; overriding it
	// is intended for testing against a mock server.
	// Env: RANSOMWATCH_API_BASE
	BaseURL string `env:"API_BASE"`

	// Timeout bounds a single request, including retries' individual
	// attempts (e.g. "10s", "1m"). Accepted range is 1s to 300s.
	// Env: RANSOMWATCH_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Rate holds the client-side rate caps applied before every request.
type Rate struct {
	// PerMinute caps requests in a rolling minute, 1..60.
	// Env: RANSOMWATCH_RATE_PER_MINUTE
	PerMinute int `env:"PER_MINUTE"`

	// PerSecond caps requests in a rolling second, 1..10.
	// Env: RANSOMWATCH_RATE_PER_SECOND
	PerSecond int `env:"PER_SECOND"`

	// MinInterval is the minimum gap between consecutive requests,
	// 100ms to 60s.
	// Env: RANSOMWATCH_RATE_MIN_INTERVAL
	MinInterval time.Duration `env:"MIN_INTERVAL"`
}

// Output holds rendering and logging toggles.
type Output struct {
	// JSON switches stdout from formatted reports to JSON payloads.
	// Env: RANSOMWATCH_JSON
	JSON bool `env:"JSON"`

	// Verbose enables debug-level logging on stderr.
	// Env: RANSOMWATCH_VERBOSE
	Verbose bool `env:"VERBOSE"`
}

// ClientConfig is the validated configuration handed to the rest of the
// application once all sources are merged.
type ClientConfig struct {
	API    API
	Rate   Rate
	Output Output
}

// GetClientConfig merges all configuration sources in priority order
// (first source wins for any field it sets):
//  1. Command-line flags (flagCfg, parsed by the CLI layer)
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a validated *ClientConfig or an error if any source fails to load
// or the merged result violates the documented bounds.
func GetClientConfig(flagCfg *StructuredConfig) (*ClientConfig, error) {
	merged, err := newConfigBuilder().
		withFlags(flagCfg).
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error building config: %w", err)
	}

	clientCfg := &ClientConfig{
		API:    merged.API,
		Rate:   merged.Rate,
		Output: merged.Output,
	}

	return clientCfg, clientCfg.validate()
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		API: API{
			BaseURL: DefaultBaseURL,
			Timeout: DefaultTimeout,
		},
		Rate: Rate{
			PerMinute:   DefaultPerMinute,
			PerSecond:   DefaultPerSecond,
			MinInterval: DefaultMinInterval,
		},
	}
}
