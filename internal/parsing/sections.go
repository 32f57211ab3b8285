package parsing

import (
	"regexp"
	"strings"
)

// SectionKey is the canonical bucket a heading line is normalized into.
type SectionKey string

// Canonical section keys.
const (
	SectionExperience   SectionKey = "experience"
	SectionProjects     SectionKey = "projects"
	SectionAchievements SectionKey = "achievements"
	SectionSkills       SectionKey = "skills"
	SectionEducation    SectionKey = "education"
)

// sectionAliases maps normalized heading phrases to section keys. The table
// must be internally non-overlapping: a phrase maps to exactly one key.
var sectionAliases = map[string]SectionKey{
	"experience":              SectionExperience,
	"work experience":         SectionExperience,
	"professional experience": SectionExperience,
	"employment":              SectionExperience,
	"employment history":      SectionExperience,
	"career history":          SectionExperience,
	"work history":            SectionExperience,
	"relevant experience":     SectionExperience,

	"projects":           SectionProjects,
	"personal projects":  SectionProjects,
	"key projects":       SectionProjects,
	"selected projects":  SectionProjects,
	"technical projects": SectionProjects,

	"achievements":     SectionAchievements,
	"key achievements": SectionAchievements,
	"accomplishments":  SectionAchievements,
	"awards":           SectionAchievements,
	"awards and honours": SectionAchievements,

	"skills":               SectionSkills,
	"technical skills":     SectionSkills,
	"key skills":           SectionSkills,
	"core skills":          SectionSkills,
	"skills and expertise": SectionSkills,

	"education":              SectionEducation,
	"education and training": SectionEducation,
	"qualifications":         SectionEducation,
	"academic background":    SectionEducation,
}

var nonAlphanumericPattern = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeHeading lowercases a line, replaces non-alphanumeric runs with a
// single space and collapses surrounding whitespace. Classification compares
// this normalized form against the alias table.
func NormalizeHeading(line string) string {
	lower := strings.ToLower(line)
	return strings.TrimSpace(nonAlphanumericPattern.ReplaceAllString(lower, " "))
}

// ClassifyHeading reports whether a line is a known section heading and, if
// so, which section key it maps to. Classification is stateless: it depends
// only on the line's own text.
func ClassifyHeading(line string) (SectionKey, bool) {
	key, ok := sectionAliases[NormalizeHeading(line)]
	return key, ok
}

// SectionIndex maps line positions to section keys and records the
// human-readable section labels in first-seen order.
type SectionIndex struct {
	byLine map[int]SectionKey
	seen   map[SectionKey]bool
	labels []string
}

// BuildSectionIndex classifies every line once and returns the resulting
// position map. It is built once per document and read by all extractors.
func BuildSectionIndex(lines []string) *SectionIndex {
	idx := &SectionIndex{
		byLine: make(map[int]SectionKey),
		seen:   make(map[SectionKey]bool),
		labels: make([]string, 0),
	}

	labelSeen := make(map[string]bool)
	for i, line := range lines {
		key, ok := ClassifyHeading(line)
		if !ok {
			continue
		}
		idx.byLine[i] = key
		idx.seen[key] = true

		normalized := NormalizeHeading(line)
		if !labelSeen[normalized] {
			labelSeen[normalized] = true
			idx.labels = append(idx.labels, strings.TrimSpace(line))
		}
	}
	return idx
}

// KeyAt returns the section key for a heading at the given line index.
func (s *SectionIndex) KeyAt(i int) (SectionKey, bool) {
	key, ok := s.byLine[i]
	return key, ok
}

// Has reports whether any of the given sections was detected anywhere in the
// document.
func (s *SectionIndex) Has(keys ...SectionKey) bool {
	for _, key := range keys {
		if s.seen[key] {
			return true
		}
	}
	return false
}

// Labels returns the deduplicated section labels in first-seen order.
func (s *SectionIndex) Labels() []string {
	return s.labels
}
