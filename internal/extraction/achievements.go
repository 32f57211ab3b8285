package extraction

import (
	"strings"

	"github.com/jonathan/cv-import/internal/parsing"
	"github.com/jonathan/cv-import/internal/types"
)

// Warning texts surfaced to the end user as advisory text, never as blocking
// errors.
const (
	WarnNoRelevantSection = "No experience, projects or achievements section detected; bullet extraction may be incomplete."
	WarnNoBullets         = "No bullet points detected; achievements may need manual entry."
	WarnNoRoles           = "An experience section was detected but no roles could be parsed; manual entry may be needed."
)

const (
	maxTitleLength  = 80
	minActionLength = 15
	minTitleLength  = 3
)

// AchievementResult is the immutable output of the achievement pass.
type AchievementResult struct {
	Achievements []types.Achievement
	Skills       []string
	Warnings     []string
}

// ExtractAchievements walks all lines once, tracking the current section and
// a rolling context line, and emits achievement candidates from bullet lines.
// Within a skills section it switches to skills-collection mode instead.
// Output ordering is document order; duplicates are a caller concern.
func ExtractAchievements(lines []string, sections *parsing.SectionIndex) AchievementResult {
	result := AchievementResult{
		Achievements: make([]types.Achievement, 0),
		Skills:       make([]string, 0),
		Warnings:     make([]string, 0),
	}

	hasRelevantSection := sections.Has(parsing.SectionExperience, parsing.SectionProjects, parsing.SectionAchievements)

	var currentSection parsing.SectionKey
	currentContext := ""
	skillsSeen := make(map[string]bool)

	for i, line := range lines {
		if key, ok := sections.KeyAt(i); ok {
			currentSection = key
			if key == parsing.SectionSkills {
				currentContext = ""
			}
			continue
		}

		if currentSection == parsing.SectionSkills {
			collectSkills(line, skillsSeen, &result.Skills)
			continue
		}

		if action, ok := parsing.StripBullet(line); ok {
			if hasRelevantSection && !isRelevantSection(currentSection) {
				continue
			}
			if len(action) < minActionLength {
				continue
			}

			titleSource := currentContext
			if titleSource == "" {
				titleSource = action
			}
			title := clampTitle(titleSource)
			if len(title) < minTitleLength {
				continue
			}

			result.Achievements = append(result.Achievements, types.Achievement{
				Title:   title,
				Action:  action,
				Metrics: parsing.ExtractMetrics(action),
			})
			continue
		}

		// The most recent non-bullet line before a run of bullets becomes the
		// context for that run. Date-range lines are excluded; they say when,
		// not what.
		if _, isRange := parsing.ParseDateRange(line); !isRange && parsing.IsContextShape(line) {
			currentContext = line
		}
	}

	if !hasRelevantSection {
		result.Warnings = append(result.Warnings, WarnNoRelevantSection)
	}
	if len(result.Achievements) == 0 {
		result.Warnings = append(result.Warnings, WarnNoBullets)
	}

	return result
}

func isRelevantSection(key parsing.SectionKey) bool {
	switch key {
	case parsing.SectionExperience, parsing.SectionProjects, parsing.SectionAchievements:
		return true
	}
	return false
}

// collectSkills splits a skills-section line into deduplicated skill tokens.
// Tokens are separated by commas, semicolons or bullet markers; casing of the
// first occurrence is preserved.
func collectSkills(line string, seen map[string]bool, skills *[]string) {
	if stripped, ok := parsing.StripBullet(line); ok {
		line = stripped
	}
	for _, token := range strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ';' || r == '•' || r == '·' || r == '|'
	}) {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		key := strings.ToLower(token)
		if seen[key] {
			continue
		}
		seen[key] = true
		*skills = append(*skills, token)
	}
}

// clampTitle clamps a title to 80 characters without cutting mid-word and
// strips trailing punctuation.
func clampTitle(text string) string {
	text = strings.TrimSpace(text)
	if len(text) > maxTitleLength {
		cut := text[:maxTitleLength]
		if idx := strings.LastIndex(cut, " "); idx > 0 {
			cut = cut[:idx]
		}
		text = cut
	}
	return strings.TrimRight(text, " .,;:!-–—")
}
