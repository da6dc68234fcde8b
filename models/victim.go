// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

package models

import "encoding/json"

// Victim is one disclosed ransomware incident from /victims/recent.
type Victim struct {
	// Name is the victim organisation as published by the group.
	Name string `json:"victim"`

	// GroupName is the ransomware group claiming the incident.
	GroupName string `json:"group"`

	// Discovered is the timestamp the record was first observed, as the
	// API formats it. Parsing is the renderer's concern; records with
	// unparseable dates are still shown.
	Discovered string `json:"discovered,omitempty"`

	Country     string `json:"country,omitempty"`
	Website     string `json:"website,omitempty"`
	Description string `json:"description,omitempty"`

	// Raw preserves the record's original bytes, unknown fields included,
	// for JSON output mode.
	Raw json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the known fields and keeps the original bytes.
func (v *Victim) UnmarshalJSON(b []byte) error {
	type alias Victim
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*v = Victim(a)
	v.Raw = append(json.RawMessage(nil), b...)
	return nil
}

// VictimsResponse is the payload of GET /victims/recent.
type VictimsResponse struct {
	Victims []Victim `json:"victims"`

	Raw json.RawMessage `json:"-"`
}

// VictimsReport is the truncated view the service hands to the renderer:
// at most the requested number of records, newest first as the API orders
// them.
type VictimsReport struct {
	Victims []Victim

	// Total is the record count before truncation.
	Total int
}
