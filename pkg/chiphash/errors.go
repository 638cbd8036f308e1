package chiphash

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := svc.Run(inputPath, cfg)
//	if errors.Is(err, chiphash.ErrFormat) {
//	    // Handle malformed CSV input
//	}
var (
	// ErrFormat indicates the input CSV is structurally malformed
	// (missing header, row field count differs from the header).
	ErrFormat = errors.New("malformed input")

	// ErrIO indicates the input could not be read or the output could not be written.
	ErrIO = errors.New("i/o failure")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUsage indicates the command line was used incorrectly.
	ErrUsage = errors.New("usage error")
)

// usagePatterns are the message prefixes cobra and pflag use for misuse of the command line.
var usagePatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrFormat):
		return ExitFormatError
	case errors.Is(err, ErrIO):
		return ExitIOError
	}

	errStr := err.Error()
	for _, p := range usagePatterns {
		if strings.HasPrefix(errStr, p) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
