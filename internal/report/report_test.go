// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ransomwatch/ransomwatch/models"
)

func TestGroups_TextLayout(t *testing.T) {
	var buf bytes.Buffer
	rep := models.GroupsReport{
		Groups: []models.Group{
			{Name: "lockbit3", AltName: "lockbit", Victims: 1234},
			{Name: "akira", Victims: 42},
			{Name: "quiet", Victims: 2},
		},
		TotalGroups:  3,
		TotalVictims: 1278,
	}

	require.NoError(t, New(&buf, false).Groups(rep))
	out := buf.String()

	assert.Contains(t, out, "[+] Found 3 active groups:")
	assert.Contains(t, out, " 1. 🔴 lockbit3\n")
	assert.Contains(t, out, "    └─ Also known as: lockbit\n")
	assert.Contains(t, out, "    └─ Victims: 1,234\n")
	assert.Contains(t, out, " 2. 🟢 akira\n")
	assert.Contains(t, out, " 3. ⚪ quiet\n")
	assert.Contains(t, out, "Total groups: 3 | Total victims: 1,278")
}

func TestGroups_JSONPassthrough(t *testing.T) {
	var buf bytes.Buffer
	raw := json.RawMessage(`{"groups":[{"group":"akira","victims":42,"extra_field":true}]}`)

	require.NoError(t, New(&buf, true).Groups(models.GroupsReport{Raw: raw}))

	assert.JSONEq(t, string(raw), buf.String())
	assert.Contains(t, buf.String(), "extra_field")
}

func TestRecent_TextLayout(t *testing.T) {
	var buf bytes.Buffer
	rep := models.VictimsReport{
		Victims: []models.Victim{
			{
				Name:        "Acme Corp",
				GroupName:   "lockbit3",
				Discovered:  "2026-08-20 11:22:33.000000",
				Country:     "US",
				Website:     "https://acme.example",
				Description: "Industrial manufacturer",
			},
			{Name: "Globex", GroupName: "akira"},
		},
		Total: 2,
	}

	require.NoError(t, New(&buf, false).Recent(rep))
	out := buf.String()

	assert.Contains(t, out, "[+] Recent victims (2):")
	assert.Contains(t, out, " 1. Acme Corp\n")
	assert.Contains(t, out, "    ┌─ Group:     lockbit3\n")
	assert.Contains(t, out, "    ├─ Date:      2026-08-20 11:22\n")
	assert.Contains(t, out, "    ├─ Country:   US\n")
	assert.Contains(t, out, "    ├─ Website:   https://acme.example\n")
	assert.Contains(t, out, "    └─ Details:   Industrial manufacturer\n")
	assert.Contains(t, out, "    ├─ Country:   Unknown\n")
	assert.Contains(t, out, "    └─ Details:   No details\n")
	assert.NotContains(t, out, "Website:   \n")
	assert.Contains(t, out, "Total: 2 recent victims displayed")
}

func TestRecent_JSONKeepsRawRecords(t *testing.T) {
	var buf bytes.Buffer
	record := `{"victim":"Acme","group":"akira","undocumented":7}`

	var v models.Victim
	require.NoError(t, json.Unmarshal([]byte(record), &v))

	require.NoError(t, New(&buf, true).Recent(models.VictimsReport{
		Victims: []models.Victim{v},
		Total:   1,
	}))

	assert.JSONEq(t, `{"victims":[`+record+`]}`, buf.String())
}

func TestGroupInfo_TextLayout(t *testing.T) {
	var buf bytes.Buffer
	detail := models.GroupDetail{
		Group:     models.Group{Name: "lockbit3", AltName: "lockbit", Victims: 1234},
		FirstSeen: "2019-09-01",
		LastSeen:  "2026-08-01",
		TTPs: []models.Tactic{
			{
				TacticID:   "TA0001",
				TacticName: "Initial Access",
				Techniques: []models.Technique{
					{TechniqueID: "T1566", TechniqueName: "Phishing", Details: "Spearphishing attachments"},
					{TechniqueID: "T1190", TechniqueName: "Exploit Public-Facing Application"},
				},
			},
		},
		Tools:       models.ToolSet{Categories: map[string][]string{"exfiltration": {"Rclone"}}},
		Description: "Ransomware-as-a-service operation",
	}

	require.NoError(t, New(&buf, false).GroupInfo(detail))
	out := buf.String()

	assert.Contains(t, out, "[+] Group Information:")
	assert.Contains(t, out, "🔍 lockbit3\n")
	assert.Contains(t, out, "    └─ Also known as: lockbit\n")
	assert.Contains(t, out, "    └─ Total victims: 1,234\n")
	assert.Contains(t, out, "    ├─ First seen: 2019-09-01\n")
	assert.Contains(t, out, "    └─ Last seen: 2026-08-01\n")
	assert.Contains(t, out, "    1. Initial Access (TA0001)\n")
	assert.Contains(t, out, "       - Phishing (T1566): Spearphishing attachments\n")
	assert.Contains(t, out, "       - Exploit Public-Facing Application (T1190): No details available\n")
	assert.Contains(t, out, "    exfiltration:\n")
	assert.Contains(t, out, "      - Rclone\n")
	assert.Contains(t, out, "    └─ Ransomware-as-a-service operation\n")
}

func TestGroupInfo_TruncatesLongTTPLists(t *testing.T) {
	var buf bytes.Buffer

	tactics := make([]models.Tactic, 12)
	for i := range tactics {
		tactics[i] = models.Tactic{TacticID: "TA0001", TacticName: "Tactic"}
	}
	techniques := make([]models.Technique, 8)
	for i := range techniques {
		techniques[i] = models.Technique{TechniqueID: "T0000", TechniqueName: "Tech"}
	}
	tactics[0].Techniques = techniques

	detail := models.GroupDetail{
		Group: models.Group{Name: "busy"},
		TTPs:  tactics,
	}

	require.NoError(t, New(&buf, false).GroupInfo(detail))
	out := buf.String()

	assert.Contains(t, out, "... and 3 more techniques")
	assert.Contains(t, out, "... and 2 more TTPs")
	assert.NotContains(t, out, "    11. ")
}

func TestGroupInfo_FlatToolList(t *testing.T) {
	var buf bytes.Buffer
	detail := models.GroupDetail{
		Group: models.Group{Name: "g"},
		Tools: models.ToolSet{Categories: map[string][]string{
			"": {"a", "b", "c", "d", "e", "f", "g"},
		}},
	}

	require.NoError(t, New(&buf, false).GroupInfo(detail))
	out := buf.String()

	assert.Contains(t, out, "    1. a\n")
	assert.Contains(t, out, "    5. e\n")
	assert.Contains(t, out, "    ... and 2 more\n")
}

func TestStats_TextLayout(t *testing.T) {
	var buf bytes.Buffer
	rep := models.StatsReport{
		Stats:      models.Stats{Groups: 210, Victims: 17345, Press: 960},
		LastUpdate: "2026-08-24 23:59",
		AvgVictims: 82.595,
	}

	require.NoError(t, New(&buf, false).Stats(rep))
	out := buf.String()

	assert.Contains(t, out, "[+] Ransomware Statistics:")
	assert.Contains(t, out, "    ┌─ Total Groups:     210\n")
	assert.Contains(t, out, "    ├─ Total Victims:    17,345\n")
	assert.Contains(t, out, "    └─ Press Mentions:   960\n")
	assert.Contains(t, out, "🕒 Last Update: 2026-08-24 23:59\n")
	assert.Contains(t, out, "    └─ Average victims per group: 82.6\n")
}

func TestStats_OmitsEmptySections(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, New(&buf, false).Stats(models.StatsReport{}))
	out := buf.String()

	assert.NotContains(t, out, "Last Update")
	assert.NotContains(t, out, "Metrics")
}

func TestShorten(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{name: "fits", in: "short text", width: 20, want: "short text"},
		{name: "collapses whitespace", in: "a  lot   of\nspace", width: 40, want: "a lot of space"},
		{name: "word boundary cut", in: "one two three four five", width: 12, want: "one two..."},
		{name: "single long word", in: "aaaaaaaaaaaaaaaaaaaa", width: 10, want: "aaaaaaa..."},
		{name: "multibyte long word", in: "ééééééééééééééé", width: 10, want: "ééééééé..."},
		{name: "multibyte fits by rune count", in: "ééééé", width: 5, want: "ééééé"},
		{name: "empty", in: "   ", width: 10, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shorten(tt.in, tt.width)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
			assert.LessOrEqual(t, utf8.RuneCountInString(got), tt.width)
		})
	}
}

func TestFormatDiscovered(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "api microseconds", in: "2026-08-20 11:22:33.000000", want: "2026-08-20 11:22"},
		{name: "plain seconds", in: "2026-08-20 11:22:33", want: "2026-08-20 11:22"},
		{name: "rfc3339 zulu", in: "2026-08-20T11:22:33Z", want: "2026-08-20 11:22"},
		{name: "date only", in: "2026-08-20", want: "2026-08-20 00:00"},
		{name: "garbage passes through", in: "someday", want: "someday"},
		{name: "empty", in: "", want: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDiscovered(tt.in))
		})
	}
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0", formatCount(0))
	assert.Equal(t, "999", formatCount(999))
	assert.Equal(t, "1,234", formatCount(1234))
	assert.Equal(t, "1,234,567", formatCount(1234567))
}

func TestActivityIndicator(t *testing.T) {
	assert.Equal(t, "🔴", activityIndicator(101))
	assert.Equal(t, "🟡", activityIndicator(51))
	assert.Equal(t, "🟢", activityIndicator(11))
	assert.Equal(t, "⚪", activityIndicator(10))
}
