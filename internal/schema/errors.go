// Package schema decodes, normalizes and validates project configuration
// documents into models.ProjectConfig values.
package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for configuration decoding.
var (
	// ErrMalformedInput indicates the document is not syntactically valid JSON or YAML.
	ErrMalformedInput = errors.New("schema: malformed input")

	// ErrInvalidConfig indicates the document decoded but failed validation.
	ErrInvalidConfig = errors.New("schema: invalid configuration")

	// ErrMissingField indicates a required field is absent.
	ErrMissingField = errors.New("schema: required field missing")

	// ErrInvalidEnum indicates a value outside its closed set.
	ErrInvalidEnum = errors.New("schema: value not in allowed set")

	// ErrInvalidType indicates a value of the wrong JSON type.
	ErrInvalidType = errors.New("schema: wrong value type")

	// ErrSdkOrder indicates the minSdk <= targetSdk <= compileSdk invariant is violated.
	ErrSdkOrder = errors.New("schema: sdk levels out of order")
)

// ValidationError represents a single validation error with field context.
type ValidationError struct {
	Field   string
	Message string
	Value   any
	Wrapped error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation error: field %q: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("validation error: field %q: %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []ValidationError
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "validation: no errors"
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("validation failed with %d error(s): %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Is supports errors.Is by checking contained validation errors against the target.
func (e *ValidationErrors) Is(target error) bool {
	if target == ErrInvalidConfig {
		return true
	}
	for _, ve := range e.Errors {
		if ve.Wrapped != nil && errors.Is(ve.Wrapped, target) {
			return true
		}
	}
	return false
}

// Fields returns the offending field paths in report order.
func (e *ValidationErrors) Fields() []string {
	out := make([]string, len(e.Errors))
	for i, ve := range e.Errors {
		out[i] = ve.Field
	}
	return out
}

// Issue is the wire form of one validation error in an HTTP response.
type Issue struct {
	Loc   []string `json:"loc"`
	Msg   string   `json:"msg"`
	Type  string   `json:"type"`
	Input any      `json:"input,omitempty"`
}

// Issues converts the collection into its wire form. Locations are rooted at
// "body" and split on dots.
func (e *ValidationErrors) Issues() []Issue {
	out := make([]Issue, 0, len(e.Errors))
	for _, ve := range e.Errors {
		loc := append([]string{"body"}, strings.Split(ve.Field, ".")...)
		out = append(out, Issue{
			Loc:   loc,
			Msg:   ve.Message,
			Type:  issueType(ve.Wrapped),
			Input: ve.Value,
		})
	}
	return out
}

func issueType(err error) string {
	switch {
	case errors.Is(err, ErrMissingField):
		return "missing"
	case errors.Is(err, ErrInvalidEnum):
		return "enum"
	case errors.Is(err, ErrInvalidType):
		return "type_error"
	default:
		return "value_error"
	}
}
