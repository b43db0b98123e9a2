// Package schemas provides JSON Schema checks for the backend payloads this
// console consumes. A mismatch is reported to the caller as a structured
// error; callers log it and continue, since the backend owns the contract.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed question_set.schema.json
var questionSetSchema string

//go:embed roster.schema.json
var rosterSchema string

// FieldError is a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError reports where a payload deviates from its schema.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateQuestionSet checks a /generate-questions response body.
func ValidateQuestionSet(body []byte) error {
	return validate(questionSetSchema, body)
}

// ValidateRoster checks an /admin/sessions response body.
func ValidateRoster(body []byte) error {
	return validate(rosterSchema, body)
}

func validate(schema string, body []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(body),
	)
	if err != nil {
		return fmt.Errorf("schema validation failed during load: %w", err)
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
