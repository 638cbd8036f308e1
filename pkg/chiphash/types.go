package chiphash

import (
	"errors"
	"fmt"
)

// Record is one CSV data row keyed by header name.
type Record map[string]string

// Get returns the value of a column, or "" when the column is absent.
func (r Record) Get(column string) string {
	return r[column]
}

// Lookup returns the value of a column and whether the column exists.
func (r Record) Lookup(column string) (string, bool) {
	v, ok := r[column]
	return v, ok
}

// Clone returns a shallow copy so callers can rewrite fields without
// mutating the row they were handed.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// MaterializeMode selects how serialized documents are hashed.
type MaterializeMode string

const (
	// MaterializeMemory hashes the serialized document from an in-memory buffer.
	MaterializeMemory MaterializeMode = "memory"

	// MaterializeFile writes each document to a scratch file, hashes the file,
	// then removes it before the next row is processed.
	MaterializeFile MaterializeMode = "file"
)

// ParseMaterializeMode converts a flag or config value into a MaterializeMode.
// An empty string selects MaterializeMemory.
func ParseMaterializeMode(s string) (MaterializeMode, error) {
	switch MaterializeMode(s) {
	case "", MaterializeMemory:
		return MaterializeMemory, nil
	case MaterializeFile:
		return MaterializeFile, nil
	}
	return "", fmt.Errorf("unknown materialize mode %q (expected memory or file): %w", s, ErrInvalidConfig)
}

// Collection describes the collection sub-document shared by every ticket.
type Collection struct {
	Name        string
	Description string
}

// HashConfig contains all parameters needed for a hashing run.
type HashConfig struct {
	// OutputPath is the destination CSV. Resolved by the CLI from the input
	// stem when not given explicitly.
	OutputPath string

	// Format is the format tag written into every document.
	Format string

	// Collection is the shared collection sub-document.
	Collection Collection

	// Materialize selects in-memory or scratch-file hashing.
	Materialize MaterializeMode

	// ScratchDir is the parent directory for per-row documents in file mode.
	ScratchDir string

	// Verbose enables detailed logging
	Verbose bool
}

// DefaultHashConfig returns a HashConfig populated with the built-in defaults.
func DefaultHashConfig() HashConfig {
	return HashConfig{
		Format: DefaultFormat,
		Collection: Collection{
			Name:        DefaultCollectionName,
			Description: DefaultCollectionDescription,
		},
		Materialize: MaterializeMemory,
		ScratchDir:  DefaultScratchDir,
	}
}

// Validate checks if the HashConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *HashConfig) Validate() error {
	var errs []error

	if c.OutputPath == "" {
		errs = append(errs, fmt.Errorf("OutputPath is required: %w", ErrInvalidConfig))
	}

	if c.Format == "" {
		errs = append(errs, fmt.Errorf("Format is required: %w", ErrInvalidConfig))
	}

	if _, err := ParseMaterializeMode(string(c.Materialize)); err != nil {
		errs = append(errs, err)
	}

	if c.Materialize == MaterializeFile && c.ScratchDir == "" {
		errs = append(errs, fmt.Errorf("ScratchDir is required for file materialization: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// Summary reports the outcome of a hashing run.
type Summary struct {
	InputPath   string
	OutputPath  string
	Rows        int
	SeriesTotal int

	// FallbackRows counts rows whose attributes were kept as the raw string.
	FallbackRows int
}
