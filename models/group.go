// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

package models

import "encoding/json"

// Group is a summary record for one ransomware threat actor as returned by
// the /groups endpoint.
type Group struct {
	// Name is the canonical group name used in API paths (e.g. "lockbit3").
	Name string `json:"group"`

	// AltName lists alternative names the group is tracked under, or is
	// empty when no alias is known.
	AltName string `json:"altname,omitempty"`

	// Victims is the number of disclosed victims attributed to the group.
	Victims int `json:"victims"`
}

// GroupsResponse is the payload of GET /groups.
type GroupsResponse struct {
	Groups []Group `json:"groups"`

	// Raw preserves the payload bytes exactly as received so JSON output
	// mode can pass the response through without re-shaping it.
	Raw json.RawMessage `json:"-"`
}

// GroupsReport is the aggregate the service layer hands to the renderer:
// groups sorted by victim count descending plus precomputed totals.
type GroupsReport struct {
	Groups       []Group
	TotalGroups  int
	TotalVictims int
	Raw          json.RawMessage
}

// Technique is one MITRE ATT&CK technique attributed to a group.
type Technique struct {
	TechniqueID   string `json:"technique_id"`
	TechniqueName string `json:"technique_name"`
	Details       string `json:"technique_details,omitempty"`
}

// Tactic groups techniques under one ATT&CK tactic.
type Tactic struct {
	TacticID   string      `json:"tactic_id"`
	TacticName string      `json:"tactic_name"`
	Techniques []Technique `json:"techniques,omitempty"`
}

// TacticList tolerates the malformed shapes the API occasionally emits for
// the ttps field: anything that is not an array of tactic records decodes
// as an empty list, so one bad field does not sink the whole record.
type TacticList []Tactic

func (l *TacticList) UnmarshalJSON(b []byte) error {
	var tactics []Tactic
	if err := json.Unmarshal(b, &tactics); err != nil {
		*l = nil
		return nil
	}
	*l = tactics
	return nil
}

// GroupDetail is the payload of GET /groups/{name}: the summary record plus
// the intelligence fields only the per-group endpoint carries.
type GroupDetail struct {
	Group

	// FirstSeen and LastSeen bound the group's observed activity period.
	// Either may be empty when the service has no data.
	FirstSeen string `json:"first_seen,omitempty"`
	LastSeen  string `json:"last_seen,omitempty"`

	Description string     `json:"description,omitempty"`
	TTPs        TacticList `json:"ttps,omitempty"`
	Tools       ToolSet    `json:"tools,omitempty"`

	Raw json.RawMessage `json:"-"`
}
