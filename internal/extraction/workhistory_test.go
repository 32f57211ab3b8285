package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-import/internal/parsing"
	"github.com/jonathan/cv-import/internal/types"
)

func TestExtractWorkHistory(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		entries  []types.WorkHistoryEntry
		warnings []string
	}{
		{
			name: "Header on previous line with comma separator",
			lines: []string{
				"Experience",
				"Network Engineer, Acme Ltd",
				"Jan 2022 – Present",
				"Leeds, United Kingdom",
				"Responsible for the corporate network estate.",
				"• Led migration of 300 endpoints",
				"• Cut ticket backlog by 40%",
			},
			entries: []types.WorkHistoryEntry{
				{
					JobTitle:  "Network Engineer",
					Company:   "Acme Ltd",
					Location:  "Leeds, United Kingdom",
					StartDate: "2022-01-01",
					IsCurrent: true,
					Summary:   "Responsible for the corporate network estate.",
					Bullets: []string{
						"Led migration of 300 endpoints",
						"Cut ticket backlog by 40%",
					},
				},
			},
			warnings: []string{},
		},
		{
			name: "Inline header with at separator",
			lines: []string{
				"Experience",
				"Senior Engineer at Initech (Jun 2015 - Sep 2017)",
				"• Ran the platform team day to day",
			},
			entries: []types.WorkHistoryEntry{
				{
					JobTitle:  "Senior Engineer",
					Company:   "Initech",
					StartDate: "2015-06-01",
					EndDate:   "2017-09-01",
					Bullets:   []string{"Ran the platform team day to day"},
				},
			},
			warnings: []string{},
		},
		{
			name: "Company-first header is swapped",
			lines: []string{
				"Experience",
				"Acme Ltd | Network Engineer",
				"2019 - 2021",
			},
			entries: []types.WorkHistoryEntry{
				{
					JobTitle:  "Network Engineer",
					Company:   "Acme Ltd",
					StartDate: "2019-01-01",
					EndDate:   "2021-01-01",
					Bullets:   []string{},
				},
			},
			warnings: []string{},
		},
		{
			// "Group" is in the company-keyword vocabulary, so a "Group Lead"
			// title on the left of a pipe triggers the swap. Documented
			// behavior for an inherently ambiguous header.
			name: "Company keyword in the title side still swaps",
			lines: []string{
				"Experience",
				"Group Lead | Initech",
				"2019 - 2021",
			},
			entries: []types.WorkHistoryEntry{
				{
					JobTitle:  "Initech",
					Company:   "Group Lead",
					StartDate: "2019-01-01",
					EndDate:   "2021-01-01",
					Bullets:   []string{},
				},
			},
			warnings: []string{},
		},
		{
			name: "Three-part header carries a location",
			lines: []string{
				"Experience",
				"Support Analyst | Initech Inc | Leeds",
				"Sep 2016 - 2018",
			},
			entries: []types.WorkHistoryEntry{
				{
					JobTitle:  "Support Analyst",
					Company:   "Initech Inc",
					Location:  "Leeds",
					StartDate: "2016-09-01",
					EndDate:   "2018-01-01",
					Bullets:   []string{},
				},
			},
			warnings: []string{},
		},
		{
			name: "Role closes on the next date range",
			lines: []string{
				"Experience",
				"Network Engineer, Acme Ltd",
				"Jan 2022 – Present",
				"• Did network things at scale",
				"Support Analyst, Initech Inc",
				"2019 - 2021",
				"• Closed 500 tickets every year",
			},
			entries: []types.WorkHistoryEntry{
				{
					JobTitle:  "Network Engineer",
					Company:   "Acme Ltd",
					StartDate: "2022-01-01",
					IsCurrent: true,
					Bullets:   []string{"Did network things at scale"},
				},
				{
					JobTitle:  "Support Analyst",
					Company:   "Initech Inc",
					StartDate: "2019-01-01",
					EndDate:   "2021-01-01",
					Bullets:   []string{"Closed 500 tickets every year"},
				},
			},
			warnings: []string{},
		},
		{
			name: "Too-short header part discards the role",
			lines: []string{
				"Experience",
				"X, Acme Ltd",
				"2019 - 2021",
			},
			entries:  []types.WorkHistoryEntry{},
			warnings: []string{WarnNoRoles},
		},
		{
			name: "Date range with no usable header is skipped",
			lines: []string{
				"Experience",
				"Jan 2022 – Present",
			},
			entries:  []types.WorkHistoryEntry{},
			warnings: []string{WarnNoRoles},
		},
		{
			name: "Dates outside an experience section are ignored",
			lines: []string{
				"Education",
				"University of Leeds",
				"2014-2018",
			},
			entries:  []types.WorkHistoryEntry{},
			warnings: []string{},
		},
		{
			name:     "Empty input",
			lines:    []string{},
			entries:  []types.WorkHistoryEntry{},
			warnings: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections := parsing.BuildSectionIndex(tt.lines)
			result := ExtractWorkHistory(tt.lines, sections)
			assert.Equal(t, tt.entries, result.Entries)
			assert.Equal(t, tt.warnings, result.Warnings)
		})
	}
}

func TestExtractWorkHistory_BulletsCapped(t *testing.T) {
	lines := []string{
		"Experience",
		"Network Engineer, Acme Ltd",
		"Jan 2022 – Present",
	}
	for i := 0; i < 8; i++ {
		lines = append(lines, "• Ran weekly operational review number "+strings.Repeat("x", i+1))
	}

	result := ExtractWorkHistory(lines, parsing.BuildSectionIndex(lines))
	require.Len(t, result.Entries, 1)
	assert.Len(t, result.Entries[0].Bullets, 6)
}

func TestExtractWorkHistory_BulletClamped(t *testing.T) {
	long := strings.TrimSpace(strings.Repeat("network ", 20))
	lines := []string{
		"Experience",
		"Network Engineer, Acme Ltd",
		"Jan 2022 – Present",
		"• " + long,
	}

	result := ExtractWorkHistory(lines, parsing.BuildSectionIndex(lines))
	require.Len(t, result.Entries, 1)
	require.Len(t, result.Entries[0].Bullets, 1)

	bullet := result.Entries[0].Bullets[0]
	assert.Equal(t, strings.TrimSpace(strings.Repeat("network ", 15)), bullet)
	assert.LessOrEqual(t, len(bullet), 120)
}
