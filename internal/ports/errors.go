package ports

import (
	"errors"
	"fmt"
)

// Common infrastructure errors that can occur while reading round inputs
// or stored reports.
var (
	// ErrSourceUnavailable indicates that a row or report source could
	// not be read at all.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrEmptySource indicates that a source was readable but contained
	// no usable data.
	ErrEmptySource = errors.New("source is empty")
)

// SourceError describes a failure while reading from or writing to an
// external source. The underlying error is preserved unchanged so callers
// can match it with errors.Is (e.g. fs.ErrNotExist for a deleted report).
type SourceError struct {
	// Path is the file or resource involved in the failed operation.
	Path string

	// Operation names the operation that failed.
	Operation string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface for SourceError.
func (e *SourceError) Error() string {
	return fmt.Sprintf("source error: operation=%s, path=%s, err=%v", e.Operation, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *SourceError) Unwrap() error { return e.Err }

// NewSourceError creates a SourceError with the given details.
func NewSourceError(path, operation string, err error) *SourceError {
	return &SourceError{Path: path, Operation: operation, Err: err}
}
