package records

import (
	"errors"
	"io"
)

// CountRows returns the number of data rows in r, header excluded.
// It reads the whole stream and reports the same FormatErrors as Reader.
func CountRows(r io.Reader) (int, error) {
	reader, err := NewReader(r)
	if err != nil {
		return 0, err
	}

	n := 0
	for {
		_, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return 0, err
		}
		n++
	}
}
