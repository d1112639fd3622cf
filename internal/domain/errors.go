// Package domain contains business logic types and errors.
// Domain errors describe what went wrong with the quote database,
// not how the failure is shown; the CLI adapter maps them to
// diagnostics and exit codes.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrLocate indicates the quote database could not be located.
	ErrLocate = errors.New("locate failed")

	// ErrRead indicates the quote database could not be read or is not text.
	ErrRead = errors.New("read failed")

	// ErrEmptySelection indicates no record satisfied the requested filter.
	ErrEmptySelection = errors.New("empty selection")

	// ErrWrite indicates a new record could not be appended.
	ErrWrite = errors.New("write failed")

	// ErrValidation indicates input was rejected before any state change.
	ErrValidation = errors.New("validation failed")
)

// unwrapAll returns the sentinel followed by the cause, skipping nil.
func unwrapAll(sentinel, cause error) []error {
	if cause == nil {
		return []error{sentinel}
	}

	return []error{sentinel, cause}
}

// LocateError provides context for a database that could not be located.
type LocateError struct {
	Path   string
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *LocateError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Reason, e.Path)
	}

	return e.Reason
}

// Unwrap returns the sentinel and the underlying cause.
func (e *LocateError) Unwrap() []error {
	return unwrapAll(ErrLocate, e.Err)
}

// NewLocateError creates a locate error with context.
func NewLocateError(path, reason string, err error) error {
	return &LocateError{Path: path, Reason: reason, Err: err}
}

// ReadError provides context for read failures.
type ReadError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ReadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
	}

	return "reading " + e.Path
}

// Unwrap returns the sentinel and the underlying cause.
func (e *ReadError) Unwrap() []error {
	return unwrapAll(ErrRead, e.Err)
}

// NewReadError creates a read error with context.
func NewReadError(path string, err error) error {
	return &ReadError{Path: path, Err: err}
}

// EmptySelectionError reports that filtering left nothing to choose from.
type EmptySelectionError struct {
	Filter SizeFilter
	Total  int
}

// Error implements the error interface.
func (e *EmptySelectionError) Error() string {
	if e.Total == 0 {
		return "quote database is empty"
	}

	return fmt.Sprintf("no %s quotes among %d records", e.Filter, e.Total)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *EmptySelectionError) Unwrap() error {
	return ErrEmptySelection
}

// NewEmptySelectionError creates an empty selection error.
func NewEmptySelectionError(filter SizeFilter, total int) error {
	return &EmptySelectionError{Filter: filter, Total: total}
}

// WriteError provides context for append failures.
type WriteError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
	}

	return "writing " + e.Path
}

// Unwrap returns the sentinel and the underlying cause.
func (e *WriteError) Unwrap() []error {
	return unwrapAll(ErrWrite, e.Err)
}

// NewWriteError creates a write error with context.
func NewWriteError(path string, err error) error {
	return &WriteError{Path: path, Err: err}
}

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue creates a validation error including the invalid value.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// IsLocate checks if an error is a locate error.
func IsLocate(err error) bool {
	return errors.Is(err, ErrLocate)
}

// IsRead checks if an error is a read error.
func IsRead(err error) bool {
	return errors.Is(err, ErrRead)
}

// IsEmptySelection checks if an error is an empty selection error.
func IsEmptySelection(err error) bool {
	return errors.Is(err, ErrEmptySelection)
}

// IsWrite checks if an error is a write error.
func IsWrite(err error) bool {
	return errors.Is(err, ErrWrite)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// ErrNothingToWrite is returned when a quote to append is empty after trimming.
var ErrNothingToWrite error = &ValidationError{Field: "quote", Message: "nothing to write"}
