// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

package report

import (
	"fmt"

	"github.com/ransomwatch/ransomwatch/models"
)

const statsRuleWidth = 50

// Stats renders the service-wide counters, or the payload verbatim in JSON
// mode.
func (r *Renderer) Stats(rep models.StatsReport) error {
	if r.jsonOut {
		return r.printRawJSON(rep.Raw)
	}

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, titleStyle.Render("[+] Ransomware Statistics:"))
	fmt.Fprintln(r.w, separator(statsRuleWidth))

	fmt.Fprintln(r.w, "\n📊 Overview:")
	fmt.Fprintf(r.w, "    ┌─ Total Groups:     %s\n", formatCount(rep.Stats.Groups))
	fmt.Fprintf(r.w, "    ├─ Total Victims:    %s\n", formatCount(rep.Stats.Victims))
	fmt.Fprintf(r.w, "    └─ Press Mentions:   %s\n", formatCount(rep.Stats.Press))

	if rep.LastUpdate != "" {
		fmt.Fprintf(r.w, "\n🕒 Last Update: %s\n", rep.LastUpdate)
	}

	if rep.AvgVictims > 0 {
		fmt.Fprintln(r.w, "\n📈 Metrics:")
		fmt.Fprintf(r.w, "    └─ Average victims per group: %.1f\n", rep.AvgVictims)
	}

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, separator(statsRuleWidth))
	return nil
}
