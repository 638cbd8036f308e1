package logging

// NullLogger satisfies chiphash.Logger and drops everything. Hashing runs in
// tests use it so pipeline assertions are not mixed with console output.
type NullLogger struct{}

func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (l *NullLogger) Verbose(string, ...interface{}) {}

func (l *NullLogger) Info(string, ...interface{}) {}

func (l *NullLogger) Error(string, ...interface{}) {}
