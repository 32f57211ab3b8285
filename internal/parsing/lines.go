// Package parsing provides the line-level building blocks for CV text
// analysis: line normalization, section detection, line-shape heuristics,
// date-range parsing and metric extraction.
package parsing

import "strings"

// SplitLines splits raw text into trimmed, non-empty lines. Carriage returns
// are stripped and blank lines are consumed. This is the compact normalizer
// mode used by section and profile detection.
func SplitLines(raw string) []string {
	lines := make([]string, 0)
	for _, line := range splitTrimmed(raw) {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// SplitLinesPreserving splits raw text into trimmed lines while keeping blank
// lines as empty-string markers. Paragraph segmentation depends on those
// markers, so this mode is used when splitting free text into paragraphs.
func SplitLinesPreserving(raw string) []string {
	return splitTrimmed(raw)
}

// SplitParagraphs splits raw text into paragraphs separated by one or more
// blank lines. Each paragraph is the space-joined run of its trimmed lines.
func SplitParagraphs(raw string) []string {
	paragraphs := make([]string, 0)
	var current []string

	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, " "))
			current = nil
		}
	}

	for _, line := range SplitLinesPreserving(raw) {
		if line == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return paragraphs
}

func splitTrimmed(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")

	parts := strings.Split(raw, "\n")
	lines := make([]string, 0, len(parts))
	for _, part := range parts {
		lines = append(lines, strings.TrimSpace(part))
	}

	// Trim leading and trailing blank lines so preserved blanks only mark
	// interior paragraph boundaries.
	start := 0
	for start < len(lines) && lines[start] == "" {
		start++
	}
	end := len(lines)
	for end > start && lines[end-1] == "" {
		end--
	}
	return lines[start:end]
}
