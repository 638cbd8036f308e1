// Package files groups file-related sub-packages.
//
//   - filesystem: Provider abstraction over the OS and an in-memory
//     implementation used by tests
package files
