// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

package tui

import (
	"fmt"
	"strings"
)

// Caps keep the detail page readable on small terminals.
const (
	detailMaxTactics = 10
	detailMaxTools   = 8
)

func (m rootModel) detailView() string {
	var b strings.Builder

	if m.detailErr != nil {
		b.WriteString(errorStyle.Render("error: " + m.detailErr.Error()))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("esc: back · ctrl+c: quit"))
		return b.String()
	}

	d := m.detail

	title := d.Name
	if d.AltName != "" && d.AltName != d.Name {
		title += " (aka " + d.AltName + ")"
	}
	b.WriteString(titleStyle.Render("🔍 " + title))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Victims: %d\n", d.Victims))
	if d.FirstSeen != "" || d.LastSeen != "" {
		first, last := d.FirstSeen, d.LastSeen
		if first == "" {
			first = "Unknown"
		}
		if last == "" {
			last = "Unknown"
		}
		b.WriteString(fmt.Sprintf("Active: %s to %s\n", first, last))
	}

	if len(d.TTPs) > 0 {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("Tactics"))
		b.WriteString("\n")
		shown := d.TTPs
		if len(shown) > detailMaxTactics {
			shown = shown[:detailMaxTactics]
		}
		for _, tactic := range shown {
			b.WriteString(fmt.Sprintf("  • %s (%s, %d techniques)\n",
				tactic.TacticName, tactic.TacticID, len(tactic.Techniques)))
		}
		if rest := len(d.TTPs) - len(shown); rest > 0 {
			b.WriteString(helpStyle.Render(fmt.Sprintf("  ... and %d more\n", rest)))
		}
	}

	if !d.Tools.IsZero() {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("Tools"))
		b.WriteString("\n")
		count := 0
	categories:
		for _, cat := range d.Tools.SortedCategories() {
			for _, tool := range d.Tools.Categories[cat] {
				if count >= detailMaxTools {
					b.WriteString(helpStyle.Render("  ...\n"))
					break categories
				}
				b.WriteString("  • " + tool + "\n")
				count++
			}
		}
	}

	if d.Description != "" {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("Description"))
		b.WriteString("\n")
		b.WriteString(d.Description)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc: back · ctrl+c: quit"))
	return b.String()
}
