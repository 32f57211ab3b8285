package schemas

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-import/internal/types"
)

func previewSchemaPath(t *testing.T) string {
	t.Helper()
	path := ResolveSchemaPath(PreviewSchemaFile)
	require.NotEmpty(t, path, "preview schema file must be resolvable from the test directory")
	return path
}

func validPreview() *types.CvImportPreview {
	return &types.CvImportPreview{
		Profile: types.ProfileFragment{FullName: "Jane Doe", Headline: "Senior Network Engineer"},
		Achievements: []types.Achievement{
			{Title: "Network migration", Action: "Led the migration of 300 endpoints", Metrics: "300 endpoints"},
		},
		WorkHistory: []types.WorkHistoryEntry{
			{
				JobTitle:  "Network Engineer",
				Company:   "Acme Ltd",
				StartDate: "2022-01-01",
				IsCurrent: true,
				Bullets:   []string{"Led the migration of 300 endpoints"},
			},
		},
		Extracted: types.ExtractedMeta{
			Skills:           []string{"Go"},
			SectionsDetected: []string{"Experience"},
			Warnings:         []string{},
		},
	}
}

func TestResolveSchemaPath(t *testing.T) {
	path := previewSchemaPath(t)
	assert.True(t, filepath.IsAbs(path))
}

func TestResolveSchemaPath_NotFound(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/does_not_exist.schema.json"))
}

func TestValidatePreview(t *testing.T) {
	document, err := json.Marshal(validPreview())
	require.NoError(t, err)

	assert.NoError(t, ValidatePreview(previewSchemaPath(t), document))
}

func TestValidatePreview_EmptyPreview(t *testing.T) {
	document, err := json.Marshal(&types.CvImportPreview{
		Achievements: []types.Achievement{},
		WorkHistory:  []types.WorkHistoryEntry{},
		Extracted: types.ExtractedMeta{
			SectionsDetected: []string{},
			Warnings:         []string{},
		},
	})
	require.NoError(t, err)

	assert.NoError(t, ValidatePreview(previewSchemaPath(t), document))
}

func TestValidatePreview_InvalidDocument(t *testing.T) {
	preview := validPreview()
	preview.Achievements[0].Title = "ab" // below the minimum title length

	document, err := json.Marshal(preview)
	require.NoError(t, err)

	err = ValidatePreview(previewSchemaPath(t), document)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, validationErr.Error(), "schema validation failed")
}

func TestValidatePreview_UnknownField(t *testing.T) {
	document := []byte(`{
		"profile": {},
		"achievements": [],
		"work_history": [],
		"extracted": {"sectionsDetected": [], "warnings": []},
		"unexpected": true
	}`)

	err := ValidatePreview(previewSchemaPath(t), document)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func TestValidatePreview_MissingSchemaFile(t *testing.T) {
	err := ValidatePreview(filepath.Join(t.TempDir(), "missing.schema.json"), []byte(`{}`))

	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, loadErr.Message, "schema file not found")
}

func TestValidatePreview_MalformedDocument(t *testing.T) {
	err := ValidatePreview(previewSchemaPath(t), []byte(`{not json`))

	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
}
