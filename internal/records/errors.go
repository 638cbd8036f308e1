package records

import (
	"encoding/csv"
	"errors"
	"fmt"

	"github.com/zuri-tickets/chiphash/pkg/chiphash"
)

// FormatError reports malformed CSV structure with the offending line.
type FormatError struct {
	Line    int    // Line number (0 if unknown)
	Message string // Primary error message
	Err     error  // Underlying parser error, if any
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Line > 0 {
		return fmt.Sprintf("malformed input at line %d: %s", e.Line, msg)
	}
	return "malformed input: " + msg
}

// Unwrap exposes both chiphash.ErrFormat and the parser error to errors.Is/As.
func (e *FormatError) Unwrap() []error {
	if e.Err == nil {
		return []error{chiphash.ErrFormat}
	}
	return []error{chiphash.ErrFormat, e.Err}
}

// wrapReadError classifies an error returned by csv.Reader.
func wrapReadError(err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		msg := parseErr.Err.Error()
		if errors.Is(parseErr.Err, csv.ErrFieldCount) {
			msg = "row has a different number of fields than the header"
		}
		return &FormatError{Line: parseErr.Line, Message: msg, Err: parseErr}
	}
	return fmt.Errorf("failed to read input: %w: %w", chiphash.ErrIO, err)
}
