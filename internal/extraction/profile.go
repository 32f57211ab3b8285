// Package extraction runs the stateful single-pass extractors over a
// normalized CV line array and assembles the import preview. Every extracted
// string is a verbatim substring of the input; the extractors never invent
// wording and express failure as absent fields or advisory warnings.
package extraction

import (
	"github.com/jonathan/cv-import/internal/parsing"
	"github.com/jonathan/cv-import/internal/types"
)

// headlineLookahead is how many lines below the name are searched for a
// headline.
const headlineLookahead = 3

// ExtractProfile infers the candidate's full name and headline from the line
// array. Absence of either is a valid, silent result; the extractor never
// falls back to a guess.
func ExtractProfile(lines []string, sections *parsing.SectionIndex) types.ProfileFragment {
	profile := types.ProfileFragment{}

	nameIdx := -1
	for i, line := range lines {
		if skipForProfile(line, i, sections) {
			continue
		}
		if parsing.IsNameShape(line) {
			profile.FullName = line
			nameIdx = i
			break
		}
	}

	// A headline is only ever attached relative to a found name.
	if nameIdx < 0 {
		return profile
	}

	for i := nameIdx + 1; i <= nameIdx+headlineLookahead && i < len(lines); i++ {
		line := lines[i]
		if skipForProfile(line, i, sections) {
			continue
		}
		if parsing.IsHeadlineShape(line) {
			profile.Headline = line
			break
		}
	}

	return profile
}

func skipForProfile(line string, idx int, sections *parsing.SectionIndex) bool {
	if _, heading := sections.KeyAt(idx); heading {
		return true
	}
	return parsing.IsContactLine(line) || parsing.IsFluffHeader(line)
}
