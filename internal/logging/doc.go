// Package logging provides concrete implementations of the chiphash.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted messages to stderr through zap
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
