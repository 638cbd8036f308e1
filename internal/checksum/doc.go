// Package checksum provides the content digest used to fingerprint
// metadata documents.
//
// A digest is the lowercase hexadecimal SHA-256 of the exact bytes handed
// in. Canonicalization is the caller's job (see internal/metadata); this
// package never rewrites content, so identical bytes always produce the
// identical 64-character digest.
//
// # Example Usage
//
//	calculator := checksum.New()
//	digest := calculator.Calculate(encoded)
//	digest, err := calculator.CalculateReader(scratchFile)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
