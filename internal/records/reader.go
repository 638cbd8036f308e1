package records

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/zuri-tickets/chiphash/pkg/chiphash"
)

const utf8BOM = "\ufeff"

// Reader yields header-keyed rows from a CSV stream.
type Reader struct {
	csv    *csv.Reader
	header []string
}

// NewReader reads the header line from r. A stream without a header is a FormatError.
func NewReader(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(r)
	// Stray quotes inside unquoted fields are kept literally, as spreadsheet exports produce them.
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &FormatError{Line: 1, Message: "missing header row"}
	}
	if err != nil {
		return nil, wrapReadError(err)
	}

	return &Reader{csv: cr, header: normalizeHeader(header)}, nil
}

// normalizeHeader strips a leading BOM and maps the legacy team column onto
// chiphash.ColumnTeam unless the canonical column is also present.
func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	copy(out, header)
	if len(out) > 0 {
		out[0] = strings.TrimPrefix(out[0], utf8BOM)
	}

	hasCanonical := false
	for _, h := range out {
		if h == chiphash.ColumnTeam {
			hasCanonical = true
			break
		}
	}
	if !hasCanonical {
		for i, h := range out {
			if h == chiphash.ColumnTeamAlias {
				out[i] = chiphash.ColumnTeam
				break
			}
		}
	}
	return out
}

// Header returns the normalized header names.
func (r *Reader) Header() []string {
	out := make([]string, len(r.header))
	copy(out, r.header)
	return out
}

// Next returns the next data row, or io.EOF when the stream is exhausted.
func (r *Reader) Next() (chiphash.Record, error) {
	fields, err := r.csv.Read()
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}
	if err != nil {
		return nil, wrapReadError(err)
	}

	rec := make(chiphash.Record, len(r.header))
	for i, name := range r.header {
		rec[name] = fields[i]
	}
	return rec, nil
}

// Line returns the input line of the most recently read row.
func (r *Reader) Line() int {
	line, _ := r.csv.FieldPos(0)
	return line
}
