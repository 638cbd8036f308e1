package services

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/zuri-tickets/chiphash/internal/checksum"
	"github.com/zuri-tickets/chiphash/internal/files/filesystem"
	"github.com/zuri-tickets/chiphash/internal/metadata"
	"github.com/zuri-tickets/chiphash/pkg/chiphash"
)

// materializer turns a document into its digest.
type materializer interface {
	Digest(doc metadata.Document, filename string) (string, error)
	Close() error
}

// memoryMaterializer hashes the canonical bytes straight from a buffer.
type memoryMaterializer struct {
	calc checksum.Calculator
}

func (m memoryMaterializer) Digest(doc metadata.Document, _ string) (string, error) {
	return m.calc.Calculate(metadata.Encode(doc)), nil
}

func (m memoryMaterializer) Close() error { return nil }

// fileMaterializer writes each document into a per-run scratch directory,
// hashes the file contents and removes the file before returning. Close
// removes the run directory and every directory this run had to create
// above it, up to and including createdRoot.
type fileMaterializer struct {
	fs          filesystem.Provider
	calc        checksum.Calculator
	logger      chiphash.Logger
	scratchRoot string
	runDir      string
	createdRoot string // "" when scratchRoot already existed
}

func newFileMaterializer(fsys filesystem.Provider, calc checksum.Calculator, logger chiphash.Logger, scratchRoot string) (*fileMaterializer, error) {
	scratchRoot = filepath.Clean(scratchRoot)
	createdRoot, err := topMissingDir(fsys, scratchRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect scratch directory %s: %w: %w", scratchRoot, chiphash.ErrIO, err)
	}

	runDir := filepath.Join(scratchRoot, "chiphash-"+uuid.NewString())
	if err := fsys.MkdirAll(runDir); err != nil {
		return nil, fmt.Errorf("failed to create scratch directory %s: %w: %w", runDir, chiphash.ErrIO, err)
	}
	logger.Verbose("Materializing documents under %s", runDir)

	return &fileMaterializer{
		fs:          fsys,
		calc:        calc,
		logger:      logger,
		scratchRoot: scratchRoot,
		runDir:      runDir,
		createdRoot: createdRoot,
	}, nil
}

// topMissingDir returns the outermost ancestor of dir (dir included) that
// does not exist yet, or "" when dir exists.
func topMissingDir(fsys filesystem.Provider, dir string) (string, error) {
	missing := ""
	for p := dir; ; {
		_, err := fsys.Stat(p)
		if err == nil {
			return missing, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		missing = p

		parent := filepath.Dir(p)
		if parent == p {
			return missing, nil
		}
		p = parent
	}
}

// scratchName maps a row's Filename onto a single path element inside the
// run directory. Names that would resolve to the run directory itself or
// its parent fall back to a fixed name.
func scratchName(filename string) string {
	name := filepath.Base(strings.TrimSpace(filename))
	switch name {
	case "", ".", "..", string(filepath.Separator):
		return "document.json"
	}
	return name
}

func (m *fileMaterializer) Digest(doc metadata.Document, filename string) (digest string, err error) {
	p := filepath.Join(m.runDir, scratchName(filename))

	w, err := m.fs.Create(p)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w: %w", p, chiphash.ErrIO, err)
	}
	defer func() {
		if rmErr := m.fs.Remove(p); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) && err == nil {
			err = fmt.Errorf("failed to remove %s: %w: %w", p, chiphash.ErrIO, rmErr)
		}
	}()

	if _, err := doc.WriteTo(w); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to write %s: %w: %w", p, chiphash.ErrIO, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to write %s: %w: %w", p, chiphash.ErrIO, err)
	}

	r, err := m.fs.Open(p)
	if err != nil {
		return "", fmt.Errorf("failed to reopen %s: %w: %w", p, chiphash.ErrIO, err)
	}
	defer r.Close()

	digest, err = m.calc.CalculateReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to hash %s: %w: %w", p, chiphash.ErrIO, err)
	}
	return digest, nil
}

func (m *fileMaterializer) Close() error {
	var errs []error
	if err := m.fs.RemoveAll(m.runDir); err != nil {
		errs = append(errs, fmt.Errorf("failed to remove %s: %w: %w", m.runDir, chiphash.ErrIO, err))
	}
	if m.createdRoot != "" {
		for p := m.scratchRoot; ; p = filepath.Dir(p) {
			if err := m.fs.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
				errs = append(errs, fmt.Errorf("failed to remove %s: %w: %w", p, chiphash.ErrIO, err))
				break
			}
			if p == m.createdRoot || filepath.Dir(p) == p {
				break
			}
		}
	}
	return errors.Join(errs...)
}
