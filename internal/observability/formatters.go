// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-import/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPreview outputs a human-readable summary of the whole import preview.
func (p *Printer) PrintPreview(preview *types.CvImportPreview) {
	if preview == nil {
		return
	}
	p.PrintProfile(&preview.Profile)
	p.PrintSections(preview.Extracted.SectionsDetected)
	p.PrintAchievements(preview.Achievements)
	p.PrintWorkHistory(preview.WorkHistory)
	p.PrintWarnings(preview.Extracted.Warnings)
}

// PrintProfile outputs the detected name and headline.
func (p *Printer) PrintProfile(profile *types.ProfileFragment) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	name := profile.FullName
	if name == "" {
		name = "(not detected)"
	}
	headline := profile.Headline
	if headline == "" {
		headline = "(not detected)"
	}
	sb.WriteString(fmt.Sprintf("Name:     %s\n", name))
	sb.WriteString(fmt.Sprintf("Headline: %s", headline))

	p.printBox("PROFILE", sb.String())
}

// PrintSections outputs the detected section labels in first-seen order.
func (p *Printer) PrintSections(labels []string) {
	if len(labels) == 0 {
		p.printBox("SECTIONS", "(none detected)")
		return
	}
	p.printBox("SECTIONS", strings.Join(labels, "\n"))
}

// PrintAchievements outputs the top extracted achievements.
func (p *Printer) PrintAchievements(achievements []types.Achievement) {
	if len(achievements) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Extracted %d achievements:\n\n", len(achievements)))

	count := min(len(achievements), maxItemsToShow)
	for i := 0; i < count; i++ {
		a := achievements[i]
		title := a.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", title))
		if a.Metrics != "" {
			metrics := a.Metrics
			if len(metrics) > 45 {
				metrics = metrics[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  [%s]\n", metrics))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(achievements) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more achievements", len(achievements)-maxItemsToShow))
	}

	p.printBox("ACHIEVEMENTS", sb.String())
}

// PrintWorkHistory outputs the segmented work-history entries.
func (p *Printer) PrintWorkHistory(entries []types.WorkHistoryEntry) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Segmented %d roles:\n\n", len(entries)))

	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		e := entries[i]
		sb.WriteString(fmt.Sprintf("#%d  %s — %s\n", i+1, e.JobTitle, e.Company))
		end := e.EndDate
		if e.IsCurrent {
			end = "present"
		}
		sb.WriteString(fmt.Sprintf("    %s → %s, %d bullets\n", e.StartDate, end, len(e.Bullets)))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more roles", len(entries)-maxItemsToShow))
	}

	p.printBox("WORK HISTORY", sb.String())
}

// PrintWarnings outputs extraction warnings, if any.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO WARNINGS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	for i, w := range warnings {
		sb.WriteString(fmt.Sprintf("⚠ %s", w))
		if i < len(warnings)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("WARNINGS", sb.String())
}
