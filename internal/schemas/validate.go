// Package schemas provides JSON Schema validation for the Brief contract.
// The schema is embedded at compile time and doubles as the machine-checkable
// output shape handed to the external generator.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed brief.schema.json
var briefSchemaJSON string

// BriefSchemaJSON returns the raw Brief schema document.
// It is included verbatim in the generation prompt so the generator and
// the validator share a single definition.
func BriefSchemaJSON() string {
	return briefSchemaJSON
}

// ValidationError represents a schema validation error with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("schema validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself.
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load brief schema: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load brief schema: %s", e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateBriefJSON validates raw JSON content against the embedded Brief
// schema. Returns nil on success, *ValidationError on contract violations,
// or *SchemaLoadError if validation itself could not run (for example on
// non-parseable input).
func ValidateBriefJSON(jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(briefSchemaJSON)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
