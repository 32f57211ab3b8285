package parsing

import (
	"fmt"
	"regexp"
	"strings"
)

// DateRange is the result of matching a date range in a line. StartDate and
// EndDate are normalized to YYYY-MM-01; the month defaults to 01 when only a
// year is given. HeaderLine is the residual text on the same line after
// removing the matched range.
type DateRange struct {
	StartDate  string
	EndDate    string
	IsCurrent  bool
	HeaderLine string
}

// monthNumbers maps lowercase English month names and abbreviations to month
// numbers. Internationalized month names are out of scope.
var monthNumbers = map[string]int{
	"jan": 1, "january": 1,
	"feb": 2, "february": 2,
	"mar": 3, "march": 3,
	"apr": 4, "april": 4,
	"may": 5,
	"jun": 6, "june": 6,
	"jul": 7, "july": 7,
	"aug": 8, "august": 8,
	"sep": 9, "sept": 9, "september": 9,
	"oct": 10, "october": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12,
}

const monthAlternation = `jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?`

// dateRangePattern matches <start><sep><end> where each endpoint is a bare
// 4-digit year or a month-name + year pair, and the end may instead be
// "present"/"current". The separator is a hyphen, en dash or em dash,
// optionally surrounded by whitespace.
var dateRangePattern = regexp.MustCompile(
	`(?i)\b(?:(` + monthAlternation + `)\.?\s+)?((?:19|20)\d{2})\s*[-–—]\s*(?:(?:(` + monthAlternation + `)\.?\s+)?((?:19|20)\d{2})|(present|current))\b`)

// ParseDateRange attempts to recognize a date range in a line. The second
// return value is false when the line contains no range; callers must treat
// that as "not a date-range line", not a failure.
func ParseDateRange(line string) (DateRange, bool) {
	loc := dateRangePattern.FindStringSubmatchIndex(line)
	if loc == nil {
		return DateRange{}, false
	}

	group := func(n int) string {
		start, end := loc[2*n], loc[2*n+1]
		if start < 0 {
			return ""
		}
		return line[start:end]
	}

	dr := DateRange{
		StartDate: formatDate(group(2), group(1)),
	}

	if openEnded := group(5); openEnded != "" {
		dr.IsCurrent = true
	} else {
		dr.EndDate = formatDate(group(4), group(3))
	}

	before := line[:loc[0]]
	after := line[loc[1]:]
	dr.HeaderLine = trimHeaderResidual(strings.TrimSpace(before + " " + after))

	return dr, true
}

// formatDate normalizes a year and optional month name to YYYY-MM-01.
func formatDate(year, monthName string) string {
	month := 1
	if monthName != "" {
		if m, ok := monthNumbers[strings.ToLower(monthName)]; ok {
			month = m
		}
	}
	var y int
	fmt.Sscanf(year, "%d", &y)
	return fmt.Sprintf("%04d-%02d-01", y, month)
}

// trimHeaderResidual strips leftover separators and brackets from the text
// surrounding a matched range.
func trimHeaderResidual(text string) string {
	return strings.TrimSpace(strings.Trim(text, " \t|,–—-()[]"))
}
