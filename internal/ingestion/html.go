package ingestion

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractTextFromHTML reduces an HTML export of a CV to plain text. Block
// elements become lines and list items become bullet lines, so the extraction
// engine sees the same shapes it would in a plain-text CV.
func ExtractTextFromHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", &HTMLParseError{Message: "failed to parse HTML", Cause: err}
	}

	// Remove non-content elements.
	doc.Find("script, style, noscript, head, nav, footer").Remove()

	var b strings.Builder
	doc.Find("h1, h2, h3, h4, h5, h6, p, li, td, th, div").Each(func(_ int, s *goquery.Selection) {
		// Skip container elements; only leaves contribute text, otherwise
		// nested blocks would be emitted twice.
		if s.Children().Filter("h1, h2, h3, h4, h5, h6, p, li, td, th, div, ul, ol, table").Length() > 0 {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		if goquery.NodeName(s) == "li" && !strings.HasPrefix(text, "•") {
			text = "• " + text
		}
		b.WriteString(text)
		b.WriteString("\n")
	})

	text := b.String()
	if strings.TrimSpace(text) == "" {
		// Fallback for markup without block structure.
		text = doc.Find("body").Text()
	}
	return text, nil
}
