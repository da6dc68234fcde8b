// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

// Package report renders API payloads for the terminal. Every command has
// two renderings: a styled text report and an indented JSON passthrough of
// the payload as the API sent it.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Renderer writes reports for one invocation. jsonOut selects JSON
// passthrough mode for all commands.
type Renderer struct {
	w       io.Writer
	jsonOut bool
}

// New builds a Renderer writing to w.
func New(w io.Writer, jsonOut bool) *Renderer {
	return &Renderer{w: w, jsonOut: jsonOut}
}

// JSONMode reports whether the renderer emits JSON instead of text.
func (r *Renderer) JSONMode() bool { return r.jsonOut }

// printRawJSON re-indents a payload without re-shaping it, so unknown
// fields survive the round trip.
func (r *Renderer) printRawJSON(raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("indent payload: %w", err)
	}
	_, err := fmt.Fprintln(r.w, buf.String())
	return err
}
