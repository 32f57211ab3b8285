package parsing

import (
	"regexp"
	"strings"
)

var (
	// phonePattern matches a phone-number-shaped token: a run of 8+
	// digits/spaces/hyphens/parens led by an optional +.
	phonePattern = regexp.MustCompile(`\+?[0-9][0-9\s()\-]{7,}`)

	// bulletPattern matches a bullet marker followed by content. Dash and
	// asterisk markers require trailing whitespace so negative numbers and
	// emphasis are not mistaken for bullets.
	bulletPattern = regexp.MustCompile(`^(?:[•·–—]\s*|[-*]\s+|\d{1,2}\.\s+)(\S.*)$`)

	namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z'’.\-]*(?:\s+[A-Za-z][A-Za-z'’.\-]*)+$`)
	yearPattern = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

	// companyPattern matches organizational suffixes/keywords as whole words.
	companyPattern = regexp.MustCompile(`(?i)\b(?:ltd|inc|plc|llc|university|nhs|bank|council|trust|agency|group|company)\b`)

	urlSchemePattern = regexp.MustCompile(`(?i)(?:\b(?:https?|mailto)://|\bwww\.)`)
)

// IsContactLine reports whether a line looks like contact information: an
// email, URL, social profile or phone-number-shaped token.
func IsContactLine(line string) bool {
	if strings.Contains(line, "@") {
		return true
	}
	lower := strings.ToLower(line)
	if strings.Contains(lower, "linkedin") || strings.Contains(lower, "github") {
		return true
	}
	if urlSchemePattern.MatchString(line) {
		return true
	}
	return phonePattern.MatchString(line)
}

// IsBulletLine reports whether a line starts with a bullet marker followed by
// content.
func IsBulletLine(line string) bool {
	_, ok := StripBullet(line)
	return ok
}

// StripBullet removes the leading bullet marker from a line and returns the
// trimmed content. The second return value is false when the line is not a
// bullet line.
func StripBullet(line string) (string, bool) {
	match := bulletPattern.FindStringSubmatch(strings.TrimSpace(line))
	if match == nil {
		return "", false
	}
	return strings.TrimSpace(match[1]), true
}

// IsNameShape reports whether a line is plausibly a person's full name:
// 3-60 characters, at least two words, no digits, alphabetic with
// apostrophes/hyphens/periods allowed.
func IsNameShape(line string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 3 || len(trimmed) > 60 {
		return false
	}
	if strings.ContainsAny(trimmed, "0123456789") {
		return false
	}
	if len(strings.Fields(trimmed)) < 2 {
		return false
	}
	return namePattern.MatchString(trimmed)
}

// IsHeadlineShape reports whether a line is plausibly a professional
// headline: 3-90 characters with no 4-digit year token.
func IsHeadlineShape(line string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 3 || len(trimmed) > 90 {
		return false
	}
	return !yearPattern.MatchString(trimmed)
}

// IsFluffHeader reports whether a line is a document-type header ("CV",
// "Curriculum Vitae", "Resume") that must be excluded from name and headline
// candidacy.
func IsFluffHeader(line string) bool {
	switch NormalizeHeading(line) {
	case "cv", "curriculum vitae", "resume":
		return true
	}
	return false
}

// IsLocationShape reports whether a line is plausibly a location: at most 80
// characters, contains a comma, and is neither a contact line nor a heading.
func IsLocationShape(line string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) > 80 || !strings.Contains(trimmed, ",") {
		return false
	}
	if IsContactLine(trimmed) {
		return false
	}
	_, heading := ClassifyHeading(trimmed)
	return !heading
}

// IsSummaryShape reports whether a line is plausibly free-text summary
// content: 10-160 characters, neither a contact line nor a heading.
func IsSummaryShape(line string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 10 || len(trimmed) > 160 {
		return false
	}
	if IsContactLine(trimmed) {
		return false
	}
	_, heading := ClassifyHeading(trimmed)
	return !heading
}

// IsCompanyShape reports whether text contains an organizational
// suffix/keyword (ltd, inc, university, ...). The vocabulary is a fixed
// English list.
func IsCompanyShape(text string) bool {
	return companyPattern.MatchString(text)
}

// IsContextShape reports whether a line can serve as a rolling context line
// for a following bullet run: 3-120 characters, not a contact line, not a
// heading.
func IsContextShape(line string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 3 || len(trimmed) > 120 {
		return false
	}
	if IsContactLine(trimmed) {
		return false
	}
	_, heading := ClassifyHeading(trimmed)
	return !heading
}
