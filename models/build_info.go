// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

package models

// BuildInfo carries immutable build-time metadata embedded into the binary.
//
// Values are injected by linker flags during release builds and shown by the
// version command for diagnostics and release traceability.
type BuildInfo struct {
	version string
	date    string
	commit  string
}

// NewBuildInfo constructs [BuildInfo], substituting "N/A" for empty values so
// dev builds still print something meaningful.
func NewBuildInfo(version, date, commit string) BuildInfo {
	if version == "" {
		version = "N/A"
	}
	if date == "" {
		date = "N/A"
	}
	if commit == "" {
		commit = "N/A"
	}
	return BuildInfo{version: version, date: date, commit: commit}
}

// Version returns the semantic version string of the build.
func (b BuildInfo) Version() string { return b.version }

// Date returns the build timestamp string.
func (b BuildInfo) Date() string { return b.date }

// Commit returns the source-control commit hash used for the build.
func (b BuildInfo) Commit() string { return b.commit }
