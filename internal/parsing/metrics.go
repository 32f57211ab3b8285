package parsing

import (
	"regexp"
	"strings"
)

// maxMetricsLength is the clamp applied to the joined metrics string.
const maxMetricsLength = 120

// numericTokenPattern matches quantified tokens: optional currency symbol,
// digits with optional decimal/thousands separators, optional percent sign or
// magnitude suffix.
var numericTokenPattern = regexp.MustCompile(`(?i)^[$£€]?\d+(?:[.,]\d+)*(?:%|k|m|bn|x|million|billion)?$`)

// metricUnits is the fixed unit vocabulary paired with numeric tokens. The
// list is English-only and intentionally not configurable.
var metricUnits = map[string]bool{
	// time units
	"second": true, "seconds": true,
	"minute": true, "minutes": true,
	"hour": true, "hours": true,
	"day": true, "days": true,
	"week": true, "weeks": true,
	"month": true, "months": true,
	"year": true, "years": true,
	// count units
	"ticket": true, "tickets": true,
	"incident": true, "incidents": true,
	"user": true, "users": true,
	"customer": true, "customers": true,
	"request": true, "requests": true,
	"site": true, "sites": true,
	"server": true, "servers": true,
	"endpoint": true, "endpoints": true,
	"device": true, "devices": true,
	"alert": true, "alerts": true,
	"engineer": true, "engineers": true,
	"people": true, "staff": true,
	"team": true, "teams": true,
	"client": true, "clients": true,
	"project": true, "projects": true,
	"release": true, "releases": true,
	"deployment": true, "deployments": true,
	// domain units
	"sla": true, "slas": true,
	"mttr": true, "mtbf": true,
	"uptime": true, "availability": true,
	"latency": true, "throughput": true,
	"downtime": true, "accuracy": true,
	"revenue": true, "savings": true, "cost": true, "costs": true,
}

// tokenTrimCutset strips enclosing brackets, quotes and trailing punctuation
// from a token before classification.
const tokenTrimCutset = "()[]{}<>\"'`,;:.!?"

// ExtractMetrics scans free-text action content for quantified phrases and
// returns them joined with "; ", clamped to 120 characters at a safe
// separator boundary. An empty string is a valid, common result.
func ExtractMetrics(action string) string {
	tokens := strings.Fields(action)
	cleaned := make([]string, len(tokens))
	for i, token := range tokens {
		cleaned[i] = strings.Trim(token, tokenTrimCutset)
	}

	phrases := make([]string, 0)
	seen := make(map[string]bool)
	add := func(phrase string) {
		key := strings.ToLower(phrase)
		if phrase == "" || seen[key] {
			return
		}
		seen[key] = true
		phrases = append(phrases, phrase)
	}

	for i, token := range cleaned {
		if token == "" {
			continue
		}

		if isNumericToken(token) {
			parts := []string{token}
			for j := i + 1; j <= i+3 && j < len(cleaned); j++ {
				next := cleaned[j]
				if isUnitWord(next) || (strings.HasSuffix(next, "%") && isNumericToken(next)) {
					parts = append(parts, next)
				}
			}
			add(strings.Join(parts, " "))
			continue
		}

		// Unit-first ordering, e.g. "SLA 99.9".
		if isUnitWord(token) && i+1 < len(cleaned) && isNumericToken(cleaned[i+1]) {
			add(token + " " + cleaned[i+1])
		}
	}

	return clampAtSeparator(strings.Join(phrases, "; "), maxMetricsLength)
}

func isNumericToken(token string) bool {
	return numericTokenPattern.MatchString(token)
}

func isUnitWord(token string) bool {
	return metricUnits[strings.ToLower(token)]
}

// clampAtSeparator clamps text to max characters, cutting at the last phrase
// boundary ("; ") or, failing that, the last space before the limit. It never
// cuts mid-token.
func clampAtSeparator(text string, max int) string {
	if len(text) <= max {
		return text
	}
	cut := text[:max]
	if idx := strings.LastIndex(cut, "; "); idx > 0 {
		cut = cut[:idx]
	} else if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " ;")
}
