// Package filesystem provides the filesystem abstraction used by a hashing run.
//
// The pipeline reads its input twice (a counting pass and a processing pass),
// creates one output file, and optionally materializes each document into a
// scratch directory. Provider captures exactly those operations so the whole
// run can be exercised against memory in tests.
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
