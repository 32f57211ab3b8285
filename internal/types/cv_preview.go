// Package types provides type definitions for structured data used throughout the cv-import system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// ProfileFragment holds the name and headline inferred from the top of a CV.
// Both fields are optional; an empty value means "not confidently detected",
// never a guess.
type ProfileFragment struct {
	FullName string `json:"full_name,omitempty"`
	Headline string `json:"headline,omitempty"`
}

// Achievement represents a single achievement candidate extracted from a
// bullet line. Only Title, Action and Metrics are populated by the engine;
// the remaining STAR fields are left for downstream editing.
type Achievement struct {
	Title     string `json:"title" validate:"required,min=3,max=80"`
	Situation string `json:"situation,omitempty"`
	Task      string `json:"task,omitempty"`
	Action    string `json:"action,omitempty"`
	Result    string `json:"result,omitempty"`
	Metrics   string `json:"metrics,omitempty" validate:"max=120"`
}

// WorkHistoryEntry represents a single role segmented out of the experience
// section. StartDate and EndDate are normalized to YYYY-MM-01.
type WorkHistoryEntry struct {
	JobTitle  string   `json:"job_title" validate:"required,min=2"`
	Company   string   `json:"company" validate:"required,min=2"`
	Location  string   `json:"location,omitempty" validate:"max=80"`
	StartDate string   `json:"start_date" validate:"required"`
	EndDate   string   `json:"end_date,omitempty"`
	IsCurrent bool     `json:"is_current"`
	Summary   string   `json:"summary,omitempty" validate:"max=300"`
	Bullets   []string `json:"bullets" validate:"max=6"`
}

// ExtractedMeta carries diagnostic metadata about the extraction run:
// skill tokens, detected section labels in first-seen order, and advisory
// warnings. Warnings are never blocking errors.
type ExtractedMeta struct {
	Skills           []string `json:"skills,omitempty"`
	SectionsDetected []string `json:"sectionsDetected"`
	Warnings         []string `json:"warnings"`
}

// CvImportPreview is the sole output contract of the extraction engine.
// It is constructed once per input document, immutable once returned, and
// carries no identity of its own; downstream storage assigns IDs and
// timestamps after user review.
type CvImportPreview struct {
	Profile      ProfileFragment    `json:"profile"`
	Achievements []Achievement      `json:"achievements" validate:"dive"`
	WorkHistory  []WorkHistoryEntry `json:"work_history" validate:"dive"`
	Extracted    ExtractedMeta      `json:"extracted"`
}

// Validate validates the preview against the output contract invariants
// (title/metrics/bullet limits, minimum title and company lengths).
func (p *CvImportPreview) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
