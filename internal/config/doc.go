// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

// Package config loads, merges, and validates the ransomwatch configuration.
//
// Values come from four sources, highest priority first: command-line flags,
// environment variables (RANSOMWATCH_*, see [StructuredConfig] tags), an
// optional JSON file, and built-in defaults. Sources are merged with mergo;
// the first source to set a field wins. The merged result is validated
// against the bounds in config_validation.go before the application sees it.
package config
