// Package apperr holds the error kinds every layer of the editor reports.
// Callers match them with errors.Is.
package apperr

import (
	"fmt"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrConnection = crerr.New("database connection failed")
	ErrNotFound   = crerr.New("record not found")
	ErrValidation = crerr.New("invalid value")
	ErrAsset      = crerr.New("logo asset failed")
	ErrStorage    = crerr.New("storage write failed")
	ErrRead       = crerr.New("storage read failed")
)

// FieldError reports a value that failed to parse for a named field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s must be a number, got %q", e.Field, e.Value)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func (e *FieldError) Is(target error) bool {
	return target == ErrValidation
}
