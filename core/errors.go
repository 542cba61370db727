package core

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

// NewFieldValidationError is a shortcut for a ValidationError on a single field.
func NewFieldValidationError(field, msg string) error {
	return &ValidationError{
		Err:    errors.New(field + ": " + msg),
		Fields: []FieldError{{Field: field, Error: msg}},
	}
}

func (err ValidationError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	msgs := make([]string, 0, len(err.Fields))
	for _, fErr := range err.Fields {
		msgs = append(msgs, fErr.Field+": "+fErr.Error)
	}
	return strings.Join(msgs, "; ")
}

func (err ValidationError) Unwrap() error { return err.Err }

// IsValidation reports whether err (or its cause) is a *ValidationError.
func IsValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// PartialWriteError is returned when an operation touching several tables failed
// after some of them were already rewritten. Nothing is rolled back.
type PartialWriteError struct {
	Applied []string // tables already rewritten
	Failed  string   // table whose write failed
	Err     error
}

func NewPartialWriteError(err error, failed string, applied ...string) error {
	return &PartialWriteError{Applied: applied, Failed: failed, Err: err}
}

func (err PartialWriteError) Error() string {
	return fmt.Sprintf(
		"partially applied: %s written, %s failed: %v",
		strings.Join(err.Applied, ", "), err.Failed, err.Err,
	)
}

func (err PartialWriteError) Unwrap() error { return err.Err }

// IsPartialWrite reports whether err (or its cause) is a *PartialWriteError.
func IsPartialWrite(err error) bool {
	var pErr *PartialWriteError
	return errors.As(err, &pErr)
}
