package models

import "fmt"

// ValidationFailure means the request did not satisfy its field schema. It is
// always returned before the model is called.
type ValidationFailure struct {
	Operation Operation
	Err       error
}

func (e *ValidationFailure) Error() string {
	return fmt.Sprintf("%s: invalid request: %v", e.Operation, e.Err)
}

func (e *ValidationFailure) Unwrap() error {
	return e.Err
}

// GenerationFailure means the model call failed or its output did not match
// the declared output schema.
type GenerationFailure struct {
	Operation Operation
	Err       error
}

func (e *GenerationFailure) Error() string {
	return fmt.Sprintf("%s: generation failed: %v", e.Operation, e.Err)
}

func (e *GenerationFailure) Unwrap() error {
	return e.Err
}
