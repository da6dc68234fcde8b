// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

package report

import (
	"fmt"

	"github.com/ransomwatch/ransomwatch/models"
)

const infoRuleWidth = 60

// Display caps for the TTP section. The API can attribute dozens of
// tactics to prolific groups; the report shows the head of the list and
// counts the rest.
const (
	maxTactics          = 10
	maxTechniques       = 5
	techniqueDetailsCap = 100
	descriptionCap      = 200
	maxFlatTools        = 5
)

// GroupInfo renders the detailed record for one group, or the payload
// verbatim in JSON mode.
func (r *Renderer) GroupInfo(d models.GroupDetail) error {
	if r.jsonOut {
		return r.printRawJSON(d.Raw)
	}

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, titleStyle.Render("[+] Group Information:"))
	fmt.Fprintln(r.w, separator(infoRuleWidth))

	fmt.Fprintf(r.w, "\n🔍 %s\n", d.Name)
	if d.AltName != "" && d.AltName != d.Name {
		fmt.Fprintf(r.w, "    └─ Also known as: %s\n", d.AltName)
	}
	fmt.Fprintf(r.w, "    └─ Total victims: %s\n", formatCount(d.Victims))

	r.printActivityPeriod(d)
	r.printTTPs(d.TTPs)
	r.printTools(d.Tools)

	if d.Description != "" {
		fmt.Fprintln(r.w, "\n📝 Description:")
		fmt.Fprintf(r.w, "    └─ %s\n", shorten(d.Description, descriptionCap))
	}

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, separator(infoRuleWidth))
	return nil
}

func (r *Renderer) printActivityPeriod(d models.GroupDetail) {
	if d.FirstSeen == "" && d.LastSeen == "" {
		return
	}

	fmt.Fprintln(r.w, "\n📅 Activity Period:")
	if d.FirstSeen != "" {
		fmt.Fprintf(r.w, "    ├─ First seen: %s\n", d.FirstSeen)
	}
	if d.LastSeen != "" {
		fmt.Fprintf(r.w, "    └─ Last seen: %s\n", d.LastSeen)
	}
}

func (r *Renderer) printTTPs(ttps []models.Tactic) {
	if len(ttps) == 0 {
		return
	}

	fmt.Fprintln(r.w, "\n🎯 TTPs (Tactics, Techniques, Procedures):")

	shown := ttps
	if len(shown) > maxTactics {
		shown = shown[:maxTactics]
	}

	for i, tactic := range shown {
		name := tactic.TacticName
		if name == "" {
			name = "Unknown"
		}
		fmt.Fprintf(r.w, "    %d. %s (%s)\n", i+1, name, tactic.TacticID)

		techniques := tactic.Techniques
		if len(techniques) > maxTechniques {
			techniques = techniques[:maxTechniques]
		}
		for _, tech := range techniques {
			details := "No details available"
			if tech.Details != "" {
				details = shorten(tech.Details, techniqueDetailsCap)
			}
			fmt.Fprintf(r.w, "       - %s (%s): %s\n", tech.TechniqueName, tech.TechniqueID, details)
		}
		if extra := len(tactic.Techniques) - maxTechniques; extra > 0 {
			fmt.Fprintf(r.w, "       ... and %d more techniques\n", extra)
		}
	}

	if extra := len(ttps) - maxTactics; extra > 0 {
		fmt.Fprintf(r.w, "    ... and %d more TTPs\n", extra)
	}
}

func (r *Renderer) printTools(tools models.ToolSet) {
	if tools.IsZero() {
		return
	}

	fmt.Fprintln(r.w, "\n🛠️  Tools:")

	// a pure flat list renders numbered; categorized sets render grouped
	if flat, ok := tools.Categories[""]; ok && len(tools.Categories) == 1 {
		shown := flat
		if len(shown) > maxFlatTools {
			shown = shown[:maxFlatTools]
		}
		for i, tool := range shown {
			fmt.Fprintf(r.w, "    %d. %s\n", i+1, tool)
		}
		if extra := len(flat) - maxFlatTools; extra > 0 {
			fmt.Fprintf(r.w, "    ... and %d more\n", extra)
		}
		return
	}

	for _, category := range tools.SortedCategories() {
		items := tools.Categories[category]
		if len(items) == 0 {
			continue
		}
		label := category
		if label == "" {
			label = "other"
		}
		fmt.Fprintf(r.w, "    %s:\n", label)
		for _, tool := range items {
			fmt.Fprintf(r.w, "      - %s\n", tool)
		}
	}
}
