// Package ingestion reads CV documents from files or HTML exports and
// produces the plain text the extraction engine consumes, plus provenance
// metadata.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	interiorSpacePattern = regexp.MustCompile(`[ \t]+`)
	excessBlanksPattern  = regexp.MustCompile(`\n\n\n+`)
)

// CleanText cleans and normalizes CV text while preserving line structure.
// Bullet markers and headings are kept as-is; the extraction engine relies on
// them.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// 1. Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	// 2. Process each line
	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	// 3. Collapse excessive blank lines (max 2 consecutive) and trim
	result := strings.Join(cleaned, "\n")
	result = excessBlanksPattern.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine trims a single line and collapses interior whitespace runs.
func cleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}
	return interiorSpacePattern.ReplaceAllString(trimmed, " ")
}

// IngestFromFile reads a CV text file, cleans it, and returns the cleaned
// text with metadata.
func IngestFromFile(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, &ReadError{Message: fmt.Sprintf("file not found: %s", path), Cause: err}
		}
		return "", nil, &ReadError{Message: fmt.Sprintf("failed to read file: %s", path), Cause: err}
	}

	cleaned := CleanText(string(content))
	return cleaned, NewMetadata(cleaned, path), nil
}

// IngestFromHTMLFile reads an HTML export of a CV, reduces it to plain text,
// cleans it, and returns the cleaned text with metadata.
func IngestFromHTMLFile(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, &ReadError{Message: fmt.Sprintf("file not found: %s", path), Cause: err}
		}
		return "", nil, &ReadError{Message: fmt.Sprintf("failed to read file: %s", path), Cause: err}
	}

	text, err := ExtractTextFromHTML(string(content))
	if err != nil {
		return "", nil, err
	}

	cleaned := CleanText(text)
	return cleaned, NewMetadata(cleaned, path), nil
}
