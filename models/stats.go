// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

package models

import "encoding/json"

// Stats holds the service-wide counters from GET /stats.
type Stats struct {
	Groups  int `json:"groups"`
	Victims int `json:"victims"`
	Press   int `json:"press"`
}

// StatsResponse is the payload of GET /stats. LastUpdate sits next to the
// counters at the top level of the payload.
type StatsResponse struct {
	Stats      Stats  `json:"stats"`
	LastUpdate string `json:"last_update,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// StatsReport adds the derived metric the renderer shows.
type StatsReport struct {
	Stats      Stats
	LastUpdate string

	// AvgVictims is victims per group, zero when either counter is zero.
	AvgVictims float64

	Raw json.RawMessage
}
