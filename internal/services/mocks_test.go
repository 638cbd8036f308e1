package services

import (
	"fmt"
	"io"
	"sync"

	"github.com/zuri-tickets/chiphash/internal/files/filesystem"
)

type recordingLogger struct {
	mu      sync.Mutex
	verbose []string
	info    []string
	errors  []string
}

func (l *recordingLogger) Verbose(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = append(l.verbose, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Info(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.info = append(l.info, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Error(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

// failingCreateFS wraps a MemoryFileSystem and fails Create for one path.
type failingCreateFS struct {
	*filesystem.MemoryFileSystem
	failPath string
	err      error
}

func (f *failingCreateFS) Create(path string) (io.WriteCloser, error) {
	if path == f.failPath {
		return nil, f.err
	}
	return f.MemoryFileSystem.Create(path)
}
