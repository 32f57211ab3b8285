package extraction

import (
	"strings"

	"github.com/jonathan/cv-import/internal/parsing"
	"github.com/jonathan/cv-import/internal/types"
)

const (
	maxRoleBullets     = 6
	maxBulletLength    = 120
	maxLocationLength  = 80
	maxSummaryLength   = 300
	minHeaderPartChars = 2
)

// headerSeparators are tried in order when a role header has no " at " split.
// The comma is last so "Title | Company, Location" prefers the pipe.
var headerSeparators = []string{" | ", " — ", " – ", " - ", ","}

// WorkHistoryResult is the immutable output of the work-history pass.
type WorkHistoryResult struct {
	Entries  []types.WorkHistoryEntry
	Warnings []string
}

// roleDraft is the in-progress entry accumulated between one date-range match
// and the next section change or date-range match.
type roleDraft struct {
	entry types.WorkHistoryEntry
}

// ExtractWorkHistory segments role blocks out of the experience section. A
// role opens on a date-range line with a usable header and closes on the next
// range, the next section change, or end of input.
func ExtractWorkHistory(lines []string, sections *parsing.SectionIndex) WorkHistoryResult {
	result := WorkHistoryResult{
		Entries:  make([]types.WorkHistoryEntry, 0),
		Warnings: make([]string, 0),
	}

	var currentSection parsing.SectionKey
	var role *roleDraft

	flush := func() {
		if role == nil {
			return
		}
		entry := role.entry
		role = nil

		entry.JobTitle = strings.TrimSpace(entry.JobTitle)
		entry.Company = strings.TrimSpace(entry.Company)
		if len(entry.JobTitle) < minHeaderPartChars || len(entry.Company) < minHeaderPartChars {
			return
		}
		result.Entries = append(result.Entries, entry)
	}

	for i, line := range lines {
		if key, ok := sections.KeyAt(i); ok {
			if key != parsing.SectionExperience {
				flush()
			}
			currentSection = key
			continue
		}
		if currentSection != parsing.SectionExperience {
			continue
		}

		if dr, ok := parsing.ParseDateRange(line); ok {
			flush()

			header := dr.HeaderLine
			if header == "" && i > 0 {
				prev := lines[i-1]
				_, prevHeading := parsing.ClassifyHeading(prev)
				if !prevHeading && !parsing.IsBulletLine(prev) {
					header = prev
				}
			}
			if header == "" {
				continue
			}

			title, company, location, ok := parseRoleHeader(header)
			if !ok {
				continue
			}

			role = &roleDraft{entry: types.WorkHistoryEntry{
				JobTitle:  title,
				Company:   company,
				Location:  location,
				StartDate: dr.StartDate,
				EndDate:   dr.EndDate,
				IsCurrent: dr.IsCurrent,
				Bullets:   make([]string, 0, maxRoleBullets),
			}}
			continue
		}

		if role == nil {
			continue
		}

		if bullet, ok := parsing.StripBullet(line); ok {
			if len(role.entry.Bullets) < maxRoleBullets {
				role.entry.Bullets = append(role.entry.Bullets, clampText(bullet, maxBulletLength))
			}
			continue
		}

		// A line directly above a bare date range is that range's header, not
		// content for the open role.
		if i+1 < len(lines) {
			if next, ok := parsing.ParseDateRange(lines[i+1]); ok && next.HeaderLine == "" {
				continue
			}
		}

		// First match wins for location and summary; no overwriting.
		if role.entry.Location == "" && parsing.IsLocationShape(line) {
			role.entry.Location = clampText(line, maxLocationLength)
		} else if role.entry.Summary == "" && parsing.IsSummaryShape(line) {
			role.entry.Summary = clampText(line, maxSummaryLength)
		}
	}

	flush()

	if sections.Has(parsing.SectionExperience) && len(result.Entries) == 0 {
		result.Warnings = append(result.Warnings, WarnNoRoles)
	}

	return result
}

// parseRoleHeader splits a role header line into job title, company and
// optional location. An " at " split wins; otherwise the first separator
// yielding 2-3 parts is used. For pipe/dash separators, if the first part
// looks like a company name the title and company are swapped (handles
// "Acme Ltd | Network Engineer" ordering).
func parseRoleHeader(header string) (title, company, location string, ok bool) {
	header = strings.TrimSpace(header)

	if before, after, found := strings.Cut(header, " at "); found {
		title = strings.TrimSpace(before)
		company = strings.TrimSpace(after)
		return title, company, "", title != "" && company != ""
	}

	for _, sep := range headerSeparators {
		if !strings.Contains(header, sep) {
			continue
		}
		parts := strings.Split(header, sep)
		if len(parts) < 2 || len(parts) > 3 {
			continue
		}
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		title, company = parts[0], parts[1]
		if sep != "," && parsing.IsCompanyShape(parts[0]) {
			title, company = parts[1], parts[0]
		}
		if len(parts) == 3 {
			location = parts[2]
		}
		return title, company, location, title != "" && company != ""
	}

	return "", "", "", false
}

// clampText clamps text to max characters without cutting mid-word.
func clampText(text string, max int) string {
	text = strings.TrimSpace(text)
	if len(text) <= max {
		return text
	}
	cut := text[:max]
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " .,;:")
}
