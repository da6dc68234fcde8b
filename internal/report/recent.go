// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

package report

import (
	"encoding/json"
	"fmt"

	"github.com/ransomwatch/ransomwatch/models"
)

const (
	recentRuleWidth = 100
	detailsWidth    = 80
)

// Recent renders the truncated victim listing. JSON mode emits a
// {"victims": [...]} payload holding only the records that made the cut,
// each one byte-for-byte as the API sent it.
func (r *Renderer) Recent(rep models.VictimsReport) error {
	if r.jsonOut {
		limited := struct {
			Victims []json.RawMessage `json:"victims"`
		}{Victims: make([]json.RawMessage, 0, len(rep.Victims))}
		for _, v := range rep.Victims {
			limited.Victims = append(limited.Victims, v.Raw)
		}

		payload, err := json.MarshalIndent(limited, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal victims: %w", err)
		}
		_, err = fmt.Fprintln(r.w, string(payload))
		return err
	}

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, titleStyle.Render(fmt.Sprintf("[+] Recent victims (%d):", len(rep.Victims))))
	fmt.Fprintln(r.w, separator(recentRuleWidth))

	for i, v := range rep.Victims {
		name := v.Name
		if name == "" {
			name = "Unknown"
		}
		group := v.GroupName
		if group == "" {
			group = "Unknown"
		}
		country := v.Country
		if country == "" {
			country = "Unknown"
		}
		details := v.Description
		if details == "" {
			details = "No details"
		}

		fmt.Fprintf(r.w, "\n%2d. %s\n", i+1, name)
		fmt.Fprintf(r.w, "    ┌─ Group:     %s\n", group)
		fmt.Fprintf(r.w, "    ├─ Date:      %s\n", formatDiscovered(v.Discovered))
		fmt.Fprintf(r.w, "    ├─ Country:   %s\n", country)
		if v.Website != "" {
			fmt.Fprintf(r.w, "    ├─ Website:   %s\n", v.Website)
		}
		fmt.Fprintf(r.w, "    └─ Details:   %s\n", shorten(details, detailsWidth))
	}

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, separator(recentRuleWidth))
	fmt.Fprintln(r.w, footerStyle.Render(fmt.Sprintf(
		"Total: %d recent victims displayed", len(rep.Victims))))

	return nil
}
