// Package schemas validates untrusted JSON documents against field contracts.
// Request bodies and model output go through the same path.
package schemas

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Contract string
	Errors   []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or compiling the schema itself
type SchemaLoadError struct {
	Contract string
	Cause    error
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("failed to load schema %s: %v", e.Contract, e.Cause)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	parts := make([]string, 0, len(ve.Errors))
	for _, err := range ve.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return fmt.Sprintf("%s validation failed: %s", ve.Contract, strings.Join(parts, "; "))
}

// Validate checks raw against the contract. Undeclared properties are allowed.
func Validate(contract Contract, raw []byte) error {
	if !json.Valid(raw) {
		return &ValidationError{
			Contract: contract.Name,
			Errors: []FieldError{{
				Field:   "(root)",
				Message: "document is not valid JSON",
			}},
		}
	}

	schemaLoader := gojsonschema.NewGoLoader(contract.JSONSchema())
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{Contract: contract.Name, Cause: err}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Contract: contract.Name,
		Errors:   make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   fieldOf(desc),
			Message: desc.Description(),
		})
	}

	return validationErr
}

// Decode validates raw against the contract and unmarshals it into target.
func Decode(contract Contract, raw []byte, target interface{}) error {
	if err := Validate(contract, raw); err != nil {
		return err
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", contract.Name, err)
	}

	return nil
}

// fieldOf reports the offending property. Missing properties are reported by
// gojsonschema against the parent object, so the name comes from the details.
func fieldOf(desc gojsonschema.ResultError) string {
	if desc.Type() == "required" {
		if property, ok := desc.Details()["property"].(string); ok {
			return property
		}
	}

	field := desc.Field()
	if field == "" {
		field = "(root)"
	}
	return field
}
