package parsing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMetrics(t *testing.T) {
	tests := []struct {
		name     string
		action   string
		expected string
	}{
		{
			name:     "Percent with trailing unit words",
			action:   "Reduced incidents by 30% and improved MTTR to 2 hours across 3 sites.",
			expected: "30% MTTR; 2 hours; 3 sites",
		},
		{
			name:     "Unit-first ordering",
			action:   "Achieved SLA 99.9 across the estate",
			expected: "SLA 99.9; 99.9",
		},
		{
			name:     "Currency with magnitude suffix",
			action:   "Saved $1.2m annually through consolidation",
			expected: "$1.2m",
		},
		{
			name:     "Bracketed token",
			action:   "Cut churn (40%) quarter on quarter",
			expected: "40%",
		},
		{
			name:     "Thousands separator",
			action:   "Supported 10,000 users worldwide",
			expected: "10,000 users",
		},
		{
			name:     "No metrics",
			action:   "Mentored junior engineers and led design reviews",
			expected: "",
		},
		{
			name:     "Empty action",
			action:   "",
			expected: "",
		},
		{
			name:     "Case-insensitive deduplication keeps first casing",
			action:   "Handled 500 tickets and closed 500 TICKETS",
			expected: "500 tickets",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractMetrics(tt.action))
		})
	}
}

func TestExtractMetrics_ContainsPercent(t *testing.T) {
	metrics := ExtractMetrics("Reduced incidents by 30% and improved MTTR to 2 hours across 3 sites.")
	assert.Contains(t, metrics, "30%")
	assert.LessOrEqual(t, len(metrics), 120)
}

func TestExtractMetrics_ClampAtSeparator(t *testing.T) {
	var sb strings.Builder
	for i := 10; i < 40; i++ {
		fmt.Fprintf(&sb, "handled %d tickets and ", i)
	}
	metrics := ExtractMetrics(sb.String())

	assert.LessOrEqual(t, len(metrics), 120)
	assert.True(t, strings.HasSuffix(metrics, "tickets"), "clamp must not cut mid-token: %q", metrics)
	assert.Contains(t, metrics, "10 tickets")
}

func TestClampAtSeparator(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{"Under limit unchanged", "10 tickets; 20 users", 120, "10 tickets; 20 users"},
		{"Cut at phrase boundary", "10 tickets; 20 users; 30 sites", 25, "10 tickets; 20 users"},
		{"Cut at space when no phrase boundary", "one two three four", 12, "one two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, clampAtSeparator(tt.input, tt.max))
		})
	}
}
