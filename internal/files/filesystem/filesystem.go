package filesystem

import (
	"io"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// Provider is the set of filesystem operations a hashing run needs:
// reopening the input for each pass, creating the output, and managing
// the scratch directory used for materialized documents.
type Provider interface {
	// Open opens a file for reading.
	Open(path string) (io.ReadCloser, error)

	// Create creates or truncates a file for writing. The parent directory must exist.
	Create(path string) (io.WriteCloser, error)

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path string) error

	// Remove removes a file or an empty directory.
	Remove(path string) error

	// RemoveAll removes a path and everything under it. A missing path is not an error.
	RemoveAll(path string) error

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)

	// SameFile reports whether a and b name the same file. Paths that resolve
	// to the same absolute path match even if the file does not exist yet;
	// otherwise both must exist and be the same file (symlinks followed).
	SameFile(a, b string) (bool, error)
}
