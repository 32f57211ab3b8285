// Package schemas provides JSON Schema validation for the preview contract.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// PreviewSchemaFile is the repo-relative path of the preview schema.
const PreviewSchemaFile = "schemas/cv_import_preview.schema.json"

// ResolveSchemaPath attempts to find a schema file by trying multiple common
// path resolutions, relative to the working directory and likely repo roots.
// Returns the first path that exists, or empty string if none found. This is
// useful when commands run from different working directory contexts (e.g.
// tests).
func ResolveSchemaPath(relativePath string) string {
	candidates := []string{
		relativePath,
		filepath.Join("..", relativePath),
		filepath.Join("..", "..", relativePath),
	}

	for _, candidate := range candidates {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
	}

	return ""
}

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "schema validation failed: " + strings.Join(parts, "; ")
}

// SchemaLoadError represents a failure to load or parse the schema itself.
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("schema load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("schema load error: %s", e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidatePreview validates a serialized CvImportPreview document against the
// preview schema at schemaPath. A nil return means the document conforms.
func ValidatePreview(schemaPath string, document []byte) error {
	absPath, err := filepath.Abs(schemaPath)
	if err != nil {
		return &SchemaLoadError{Message: fmt.Sprintf("failed to resolve schema path: %s", schemaPath), Cause: err}
	}
	if _, err := os.Stat(absPath); err != nil {
		return &SchemaLoadError{Message: fmt.Sprintf("schema file not found: %s", absPath), Cause: err}
	}

	schemaLoader := gojsonschema.NewReferenceLoader("file://" + filepath.ToSlash(absPath))
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{Message: "failed to run schema validation", Cause: err}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{}
	for _, resultErr := range result.Errors() {
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   resultErr.Field(),
			Message: resultErr.Description(),
		})
	}
	return validationErr
}
