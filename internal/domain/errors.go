package domain

import (
	"errors"
	"fmt"
)

// Common domain errors that can occur while building a round from raw rows.
var (
	// ErrInsufficientData indicates that the raw input has no room for the
	// official answer and labels rows. This is fatal for the parse call.
	ErrInsufficientData = errors.New("insufficient data: need at least an official answer row and a labels row")

	// ErrIncompleteParticipant indicates that a participant row could not
	// supply all five match guesses and was dropped from the round.
	ErrIncompleteParticipant = errors.New("incomplete participant: fewer than five usable guesses")

	// ErrMalformedRow indicates that a row's identifying fields could not
	// be parsed and the whole row was skipped.
	ErrMalformedRow = errors.New("malformed row")
)

// RowError describes a per-row parsing failure. Row errors are absorbed
// locally with a diagnostic notice; they never abort the whole parse.
type RowError struct {
	// Index is the zero-based position of the row in the raw input.
	Index int

	// Field names the column or region that failed, if known.
	Field string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface for RowError.
func (e *RowError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("row %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("row %d: field %s: %v", e.Index, e.Field, e.Err)
}

// Unwrap returns the underlying error, supporting errors.Is and errors.As.
func (e *RowError) Unwrap() error { return e.Err }

// NewRowError creates a RowError for the given row index and field.
func NewRowError(index int, field string, err error) *RowError {
	return &RowError{Index: index, Field: field, Err: err}
}
