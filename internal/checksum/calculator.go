package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
)

// Calculator is an interface for computing document digests.
// This abstraction allows the pipeline to hash in-memory buffers and
// materialized scratch files through the same seam.
type Calculator interface {
	// Calculate computes a digest of the exact bytes given.
	Calculate(content []byte) string

	// CalculateReader computes a digest of everything read from r.
	CalculateReader(r io.Reader) (string, error)
}

// SHA256 implements digest calculation using SHA-256 with lowercase hex output.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
// Using value semantics (pass by value) eliminates heap allocations.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
// Returns by value to avoid heap allocation (SHA256 is a zero-size type).
func New() SHA256 {
	return SHA256{}
}

// Calculate computes SHA-256 of content.
func (c SHA256) Calculate(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// CalculateReader streams r through SHA-256.
func (c SHA256) CalculateReader(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("failed to read content for hashing: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
