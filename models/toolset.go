// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

package models

import (
	"encoding/json"
	"sort"
)

// ToolSet is the tooling attributed to a group. The API returns it in three
// shapes: a flat list of tool names, an object keyed by category
// ("ransomware", "exfiltration", ...) with a list or single string per key,
// or a bare string naming a single tool. ToolSet normalizes all of them
// into categories; uncategorized tools land under the empty category.
type ToolSet struct {
	Categories map[string][]string
}

// IsZero reports whether the set carries no tools at all.
func (t ToolSet) IsZero() bool {
	for _, items := range t.Categories {
		if len(items) > 0 {
			return false
		}
	}
	return true
}

// SortedCategories returns the category names in lexical order so rendering
// is deterministic.
func (t ToolSet) SortedCategories() []string {
	names := make([]string, 0, len(t.Categories))
	for name := range t.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UnmarshalJSON accepts list, object and scalar forms of the tools field.
func (t *ToolSet) UnmarshalJSON(b []byte) error {
	t.Categories = map[string][]string{}

	var bare string
	if err := json.Unmarshal(b, &bare); err == nil {
		if bare != "" {
			t.Categories[""] = []string{bare}
		}
		return nil
	}

	var flat []string
	if err := json.Unmarshal(b, &flat); err == nil {
		items := make([]string, 0, len(flat))
		for _, name := range flat {
			if name != "" {
				items = append(items, name)
			}
		}
		if len(items) > 0 {
			t.Categories[""] = items
		}
		return nil
	}

	var categorized map[string]json.RawMessage
	if err := json.Unmarshal(b, &categorized); err != nil {
		return err
	}

	for category, raw := range categorized {
		var items []string
		if err := json.Unmarshal(raw, &items); err == nil {
			t.Categories[category] = compactStrings(items)
			continue
		}

		var single string
		if err := json.Unmarshal(raw, &single); err != nil {
			return err
		}
		if single != "" {
			t.Categories[category] = []string{single}
		}
	}

	return nil
}

// MarshalJSON emits the categorized form; a set holding only the empty
// category round-trips back to the flat-list form.
func (t ToolSet) MarshalJSON() ([]byte, error) {
	if len(t.Categories) == 1 {
		if flat, ok := t.Categories[""]; ok {
			return json.Marshal(flat)
		}
	}
	return json.Marshal(t.Categories)
}

func compactStrings(in []string) []string {
	out := in[:0]
	for _, s := range in {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
