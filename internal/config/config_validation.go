// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

package config

import (
	"fmt"
	"net/url"
	"time"
)

// Bounds enforced on the merged configuration. They mirror the remote
// service's documented limits; values outside them are rejected rather than
// clamped so a typo is surfaced instead of silently adjusted.
const (
	MinTimeout = 1 * time.Second
	MaxTimeout = 300 * time.Second

	MinPerMinute = 1
	MaxPerMinute = 60
	MinPerSecond = 1
	MaxPerSecond = 10

	MinMinInterval = 100 * time.Millisecond
	MaxMinInterval = 60 * time.Second
)

// validate checks the merged [ClientConfig] against the documented bounds.
// The token is deliberately not checked here: commands that never touch the
// network (version, help) must work without one, so the CLI performs the
// token pre-flight itself.
func (cfg *ClientConfig) validate() error {
	if cfg.API.Timeout < MinTimeout || cfg.API.Timeout > MaxTimeout {
		return fmt.Errorf("%w: got %s", ErrInvalidTimeout, cfg.API.Timeout)
	}

	if cfg.Rate.PerMinute < MinPerMinute || cfg.Rate.PerMinute > MaxPerMinute {
		return fmt.Errorf("%w: per-minute cap %d not in [%d, %d]",
			ErrInvalidRateLimit, cfg.Rate.PerMinute, MinPerMinute, MaxPerMinute)
	}
	if cfg.Rate.PerSecond < MinPerSecond || cfg.Rate.PerSecond > MaxPerSecond {
		return fmt.Errorf("%w: per-second cap %d not in [%d, %d]",
			ErrInvalidRateLimit, cfg.Rate.PerSecond, MinPerSecond, MaxPerSecond)
	}
	if cfg.Rate.MinInterval < MinMinInterval || cfg.Rate.MinInterval > MaxMinInterval {
		return fmt.Errorf("%w: min interval %s not in [%s, %s]",
			ErrInvalidRateLimit, cfg.Rate.MinInterval, MinMinInterval, MaxMinInterval)
	}

	u, err := url.Parse(cfg.API.BaseURL)
	if err != nil || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, cfg.API.BaseURL)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return fmt.Errorf("%w: scheme %q not supported", ErrInvalidBaseURL, u.Scheme)
	}

	return nil
}
