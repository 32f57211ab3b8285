package extraction

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-import/internal/parsing"
	"github.com/jonathan/cv-import/internal/types"
)

// ParsePreview runs the full extraction engine over raw CV text and returns
// the import preview. It never fails: malformed input is skipped or
// downgraded to a warning, and empty input yields an all-empty preview.
func ParsePreview(raw string) *types.CvImportPreview {
	lines := parsing.SplitLines(raw)
	if len(lines) == 0 {
		return emptyPreview()
	}
	sections := parsing.BuildSectionIndex(lines)

	profile := ExtractProfile(lines, sections)
	achievements := ExtractAchievements(lines, sections)
	workHistory := ExtractWorkHistory(lines, sections)

	return assemble(profile, achievements, workHistory, sections)
}

// ParsePreviewConcurrent is ParsePreview with the three independent
// extractors fanned out over goroutines. They share the same immutable line
// array and section map, so no coordination is needed beyond the join.
func ParsePreviewConcurrent(ctx context.Context, raw string) *types.CvImportPreview {
	lines := parsing.SplitLines(raw)
	if len(lines) == 0 {
		return emptyPreview()
	}
	sections := parsing.BuildSectionIndex(lines)

	var (
		profile      types.ProfileFragment
		achievements AchievementResult
		workHistory  WorkHistoryResult
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		profile = ExtractProfile(lines, sections)
		return nil
	})
	g.Go(func() error {
		achievements = ExtractAchievements(lines, sections)
		return nil
	})
	g.Go(func() error {
		workHistory = ExtractWorkHistory(lines, sections)
		return nil
	})
	_ = g.Wait()

	return assemble(profile, achievements, workHistory, sections)
}

// assemble merges the extractor outputs and aggregates warnings in extractor
// order (achievements first, then work history).
func assemble(profile types.ProfileFragment, achievements AchievementResult, workHistory WorkHistoryResult, sections *parsing.SectionIndex) *types.CvImportPreview {
	warnings := make([]string, 0, len(achievements.Warnings)+len(workHistory.Warnings))
	warnings = append(warnings, achievements.Warnings...)
	warnings = append(warnings, workHistory.Warnings...)

	return &types.CvImportPreview{
		Profile:      profile,
		Achievements: achievements.Achievements,
		WorkHistory:  workHistory.Entries,
		Extracted: types.ExtractedMeta{
			Skills:           achievements.Skills,
			SectionsDetected: sections.Labels(),
			Warnings:         warnings,
		},
	}
}

func emptyPreview() *types.CvImportPreview {
	return &types.CvImportPreview{
		Achievements: make([]types.Achievement, 0),
		WorkHistory:  make([]types.WorkHistoryEntry, 0),
		Extracted: types.ExtractedMeta{
			SectionsDetected: make([]string, 0),
			Warnings:         make([]string, 0),
		},
	}
}
