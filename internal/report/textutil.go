// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

package report

import (
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var englishPrinter = message.NewPrinter(language.English)

// formatCount renders an integer with thousands separators ("1,234").
func formatCount(n int) string {
	return englishPrinter.Sprintf("%d", n)
}

// shorten collapses whitespace and truncates s to at most width characters,
// breaking on word boundaries and appending "..." when anything was cut.
// Widths are counted in runes so multi-byte text is never split mid-rune.
func shorten(s string, width int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	joined := strings.Join(words, " ")
	if utf8.RuneCountInString(joined) <= width {
		return joined
	}

	const placeholder = "..."
	var b strings.Builder
	length := 0
	for _, word := range words {
		add := utf8.RuneCountInString(word)
		if length > 0 {
			add++
		}
		if length+add+len(placeholder) > width {
			break
		}
		if length > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(word)
		length += add
	}
	if length == 0 {
		// first word alone does not fit; hard-cut it
		cut := width - len(placeholder)
		if cut < 1 {
			cut = 1
		}
		runes := []rune(words[0])
		if cut > len(runes) {
			cut = len(runes)
		}
		b.WriteString(string(runes[:cut]))
	}
	b.WriteString(placeholder)
	return b.String()
}

// discoveredLayouts are the timestamp shapes the API has been observed to
// emit for victim records.
var discoveredLayouts = []string{
	"2006-01-02 15:04:05.000000",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// formatDiscovered reduces a victim timestamp to "2006-01-02 15:04".
// Unparseable values are shown as-is rather than dropped.
func formatDiscovered(s string) string {
	if s == "" {
		return "Unknown"
	}
	for _, layout := range discoveredLayouts {
		if t, err := time.Parse(layout, strings.Replace(s, "Z", "+00:00", 1)); err == nil {
			return t.Format("2006-01-02 15:04")
		}
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02 15:04")
		}
	}
	return s
}

// separator returns a faint horizontal rule of the given width.
func separator(width int) string {
	return sepStyle.Render(strings.Repeat("=", width))
}

// activityIndicator buckets a victim count into the marker shown next to
// each group name.
func activityIndicator(victims int) string {
	switch {
	case victims > 100:
		return "🔴"
	case victims > 50:
		return "🟡"
	case victims > 10:
		return "🟢"
	default:
		return "⚪"
	}
}
