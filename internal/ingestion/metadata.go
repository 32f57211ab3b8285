package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/jonathan/cv-import/internal/parsing"
)

// Metadata contains provenance metadata about an ingested CV document. It is
// emitted alongside the preview for downstream audit and is not part of the
// preview contract itself.
type Metadata struct {
	Source     string `json:"source,omitempty"`
	Timestamp  string `json:"timestamp"` // RFC3339 format
	Hash       string `json:"hash"`      // SHA256 hex digest
	Chars      int    `json:"chars"`
	Lines      int    `json:"lines"`
	Paragraphs int    `json:"paragraphs"`
}

// NewMetadata creates a new Metadata instance with the current timestamp.
func NewMetadata(content string, source string) *Metadata {
	return &Metadata{
		Source:     source,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Hash:       computeHash(content),
		Chars:      len(content),
		Lines:      len(parsing.SplitLines(content)),
		Paragraphs: len(parsing.SplitParagraphs(content)),
	}
}

// computeHash computes the SHA256 hash of content and returns a hex string.
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON.
func (m *Metadata) ToJSON() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}
