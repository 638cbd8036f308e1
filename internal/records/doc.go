// Package records reads ticket rows from CSV and writes the hashed output CSV.
//
// Reading is header driven: every data row becomes a chiphash.Record keyed by
// the header names, in input order. Structural problems (no header, a row
// whose field count differs from the header) are reported as *FormatError,
// which matches chiphash.ErrFormat under errors.Is. Rows are never coerced.
//
// Writing always emits chiphash.OutputColumns; input columns outside that
// list are dropped and the digest goes in the trailing Hash column.
package records
