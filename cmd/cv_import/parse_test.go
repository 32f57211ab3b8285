package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-import/internal/types"
)

const testCV = `Jane Doe
Senior Network Engineer

EXPERIENCE
Network Engineer, Acme Ltd
Jan 2022 – Present
• Led the migration of 300 endpoints to the new stack
`

func resetParseFlags() {
	parseInput = ""
	parseOut = ""
	parseHTML = false
	parseVerbose = false
	parseConfig = ""
}

func TestRunParse_WritesPreviewAndMetadata(t *testing.T) {
	resetParseFlags()
	dir := t.TempDir()

	input := filepath.Join(dir, "cv.txt")
	require.NoError(t, os.WriteFile(input, []byte(testCV), 0o644))

	parseInput = input
	parseOut = filepath.Join(dir, "out")
	require.NoError(t, runParse(nil, nil))

	data, err := os.ReadFile(filepath.Join(parseOut, "cv_import.preview.json"))
	require.NoError(t, err)

	var preview types.CvImportPreview
	require.NoError(t, json.Unmarshal(data, &preview))
	assert.Equal(t, "Jane Doe", preview.Profile.FullName)
	require.Len(t, preview.WorkHistory, 1)
	assert.Equal(t, "Acme Ltd", preview.WorkHistory[0].Company)

	_, err = os.Stat(filepath.Join(parseOut, "cv_import.meta.json"))
	assert.NoError(t, err)
}

func TestRunParse_HTMLInput(t *testing.T) {
	resetParseFlags()
	dir := t.TempDir()

	input := filepath.Join(dir, "cv.html")
	html := "<html><body><h1>Jane Doe</h1><h2>Experience</h2>" +
		"<p>Network Engineer, Acme Ltd</p><p>Jan 2022 – Present</p>" +
		"<ul><li>Led the migration of 300 endpoints</li></ul></body></html>"
	require.NoError(t, os.WriteFile(input, []byte(html), 0o644))

	parseInput = input
	parseOut = filepath.Join(dir, "out")
	parseHTML = true
	require.NoError(t, runParse(nil, nil))

	data, err := os.ReadFile(filepath.Join(parseOut, "cv_import.preview.json"))
	require.NoError(t, err)

	var preview types.CvImportPreview
	require.NoError(t, json.Unmarshal(data, &preview))
	require.Len(t, preview.WorkHistory, 1)
	assert.Equal(t, "Network Engineer", preview.WorkHistory[0].JobTitle)
}

func TestRunParse_RequiresInput(t *testing.T) {
	resetParseFlags()

	err := runParse(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--input is required")
}

func TestRunParse_MissingInputFile(t *testing.T) {
	resetParseFlags()
	parseInput = filepath.Join(t.TempDir(), "missing.txt")

	err := runParse(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input file not found")
}

func TestRunParse_ConfigFileProvidesDefaults(t *testing.T) {
	resetParseFlags()
	dir := t.TempDir()

	input := filepath.Join(dir, "cv.txt")
	require.NoError(t, os.WriteFile(input, []byte(testCV), 0o644))

	out := filepath.Join(dir, "out")
	cfgPath := filepath.Join(dir, "config.json")
	cfgJSON := fmt.Sprintf(`{"input": %q, "out": %q}`, input, out)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgJSON), 0o644))

	parseConfig = cfgPath
	require.NoError(t, runParse(nil, nil))

	_, err := os.Stat(filepath.Join(out, "cv_import.preview.json"))
	assert.NoError(t, err)
}
