package records

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/zuri-tickets/chiphash/pkg/chiphash"
)

// Writer emits the output CSV: chiphash.OutputColumns, one row per record.
type Writer struct {
	csv *csv.Writer
}

// NewWriter writes the output header to w.
func NewWriter(w io.Writer) (*Writer, error) {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(chiphash.OutputColumns); err != nil {
		return nil, wrapWriteError(err)
	}
	return &Writer{csv: cw}, nil
}

// Write appends rec with its digest in the Hash column.
func (w *Writer) Write(rec chiphash.Record, hash string) error {
	last := len(chiphash.OutputColumns) - 1
	row := make([]string, len(chiphash.OutputColumns))
	for i, col := range chiphash.OutputColumns[:last] {
		row[i] = rec.Get(col)
	}
	row[last] = hash

	if err := w.csv.Write(row); err != nil {
		return wrapWriteError(err)
	}
	return nil
}

// Flush writes buffered rows and reports any error from earlier writes.
func (w *Writer) Flush() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return wrapWriteError(err)
	}
	return nil
}

func wrapWriteError(err error) error {
	return fmt.Errorf("failed to write output: %w: %w", chiphash.ErrIO, err)
}
