// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

package report

import (
	"fmt"

	"github.com/ransomwatch/ransomwatch/models"
)

const groupsRuleWidth = 80

// Groups renders the sorted group listing, or the payload verbatim in JSON
// mode.
func (r *Renderer) Groups(rep models.GroupsReport) error {
	if r.jsonOut {
		return r.printRawJSON(rep.Raw)
	}

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, titleStyle.Render(fmt.Sprintf("[+] Found %d active groups:", rep.TotalGroups)))
	fmt.Fprintln(r.w, separator(groupsRuleWidth))

	for i, g := range rep.Groups {
		fmt.Fprintf(r.w, "\n%2d. %s %s\n", i+1, activityIndicator(g.Victims), g.Name)
		if g.AltName != "" && g.AltName != g.Name {
			fmt.Fprintf(r.w, "    └─ Also known as: %s\n", g.AltName)
		}
		fmt.Fprintf(r.w, "    └─ Victims: %s\n", formatCount(g.Victims))
	}

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, separator(groupsRuleWidth))
	fmt.Fprintln(r.w, footerStyle.Render(fmt.Sprintf(
		"Total groups: %d | Total victims: %s", rep.TotalGroups, formatCount(rep.TotalVictims))))

	return nil
}
