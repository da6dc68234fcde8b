// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

package config

import "errors"

// Validation errors returned by [ClientConfig.validate] and by the CLI's
// pre-flight token check.
var (
	// ErrMissingToken indicates no API token was provided. Tokens are only
	// accepted via the RANSOMWATCH_API_TOKEN environment variable or the
	// JSON config file, never via flags.
	ErrMissingToken = errors.New("no API token provided: set the RANSOMWATCH_API_TOKEN environment variable")

	// ErrInvalidTimeout indicates the request timeout is outside 1s..300s.
	ErrInvalidTimeout = errors.New("timeout must be between 1 and 300 seconds")

	// ErrInvalidRateLimit indicates one of the rate caps is outside its
	// documented range (1..60 per minute, 1..10 per second, 100ms..60s
	// minimum interval).
	ErrInvalidRateLimit = errors.New("invalid rate limit configuration")

	// ErrInvalidBaseURL indicates the API base URL could not be parsed or
	// uses an unsupported scheme.
	ErrInvalidBaseURL = errors.New("invalid API base URL")
)
