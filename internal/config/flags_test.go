// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	args := []string{
		"--json",
		"--verbose",
		"--timeout", "20",
		"--rate-limit-per-minute", "10",
		"--rate-limit-per-second", "1",
		"--min-interval", "750ms",
		"--config", "/tmp/rw.json",
		"recent", "-l", "5",
	}

	cfg, rest, err := ParseFlags(args, &bytes.Buffer{})

	require.NoError(t, err)
	assert.True(t, cfg.Output.JSON)
	assert.True(t, cfg.Output.Verbose)
	assert.Equal(t, 20*time.Second, cfg.API.Timeout)
	assert.Equal(t, 10, cfg.Rate.PerMinute)
	assert.Equal(t, 1, cfg.Rate.PerSecond)
	assert.Equal(t, 750*time.Millisecond, cfg.Rate.MinInterval)
	assert.Equal(t, "/tmp/rw.json", cfg.JSONFilePath)
	assert.Equal(t, []string{"recent", "-l", "5"}, rest)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, rest, err := ParseFlags([]string{"groups"}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Zero(t, cfg.API.Timeout)
	assert.Zero(t, cfg.Rate.PerMinute)
	assert.False(t, cfg.Output.JSON)
	assert.Equal(t, []string{"groups"}, rest)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	var errOut bytes.Buffer

	_, _, err := ParseFlags([]string{"--nope", "groups"}, &errOut)

	assert.Error(t, err)
}
