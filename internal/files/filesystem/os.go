package filesystem

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// OSFileSystem implements Provider for the OS filesystem
type OSFileSystem struct{}

// NewOSFileSystem creates a new OS filesystem provider
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (p *OSFileSystem) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

func (p *OSFileSystem) Create(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

func (p *OSFileSystem) MkdirAll(path string) error {
	return os.MkdirAll(path, 0755)
}

func (p *OSFileSystem) Remove(path string) error {
	return os.Remove(path)
}

func (p *OSFileSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

func (p *OSFileSystem) Stat(path string) (FileInfo, error) {
	// os.Stat returns os.FileInfo which implements fs.FileInfo
	return os.Stat(path)
}

func (p *OSFileSystem) SameFile(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	if absA == absB {
		return true, nil
	}

	infoA, err := os.Stat(absA)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	infoB, err := os.Stat(absB)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return os.SameFile(infoA, infoB), nil
}
