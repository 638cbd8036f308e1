package filesystem

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryFile struct {
	content []byte
	info    *memoryFileInfo
}

// memoryWriter buffers writes and commits them to the filesystem on Close.
type memoryWriter struct {
	fs     *MemoryFileSystem
	path   string
	buf    bytes.Buffer
	closed bool
}

func (w *memoryWriter) Write(p []byte) (int, error) {
	if w.closed {
		return 0, fmt.Errorf("write to closed file: %s", w.path)
	}
	return w.buf.Write(p)
}

func (w *memoryWriter) Close() error {
	if w.closed {
		return fmt.Errorf("file already closed: %s", w.path)
	}
	w.closed = true
	w.fs.put(w.path, w.buf.Bytes())
	return nil
}

// MemoryFileSystem implements Provider for in-memory testing.
// Safe for concurrent use by multiple goroutines.
type MemoryFileSystem struct {
	mu    sync.Mutex
	files map[string]*memoryFile // map of absolute path -> file or directory
	root  string                 // root directory path
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		files: make(map[string]*memoryFile),
		root:  root,
	}
	mfs.files[root] = newDirEntry(root)
	return mfs
}

func newDirEntry(p string) *memoryFile {
	return &memoryFile{
		info: &memoryFileInfo{
			name:    path.Base(p),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
}

// AddFile adds a file to the in-memory filesystem, creating parent directories.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	abs := mfs.abs(filePath)
	mfs.ensureDirectoriesExist(abs)
	mfs.files[abs] = &memoryFile{
		content: []byte(content),
		info: &memoryFileInfo{
			name:    path.Base(abs),
			size:    int64(len(content)),
			mode:    0644,
			modTime: time.Now(),
		},
	}
}

// ReadFile returns the content of a file. Intended for test assertions.
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	f, ok := mfs.files[mfs.abs(filePath)]
	if !ok {
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: fs.ErrNotExist}
	}
	if f.info.isDir {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	return append([]byte(nil), f.content...), nil
}

// Paths returns every file and directory path below the root, sorted.
func (mfs *MemoryFileSystem) Paths() []string {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	var out []string
	for p := range mfs.files {
		if p != mfs.root {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

// abs resolves a path against the virtual root. Callers hold mu.
func (mfs *MemoryFileSystem) abs(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// ensureDirectoriesExist creates directory entries for all parent directories. Callers hold mu.
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == "." || dir == "/" || dir == filePath {
		return
	}
	if _, exists := mfs.files[dir]; exists {
		return
	}
	mfs.files[dir] = newDirEntry(dir)
	mfs.ensureDirectoriesExist(dir)
}

func (mfs *MemoryFileSystem) put(filePath string, content []byte) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	abs := mfs.abs(filePath)
	mfs.files[abs] = &memoryFile{
		content: append([]byte(nil), content...),
		info: &memoryFileInfo{
			name:    path.Base(abs),
			size:    int64(len(content)),
			mode:    0644,
			modTime: time.Now(),
		},
	}
}

// hasChildren reports whether any entry lives under dir. Callers hold mu.
func (mfs *MemoryFileSystem) hasChildren(dir string) bool {
	prefix := dir + "/"
	if dir == "/" {
		prefix = "/"
	}
	for p := range mfs.files {
		if p != dir && strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

// Open implements Provider.Open
func (mfs *MemoryFileSystem) Open(filePath string) (io.ReadCloser, error) {
	content, err := mfs.ReadFile(filePath)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

// Create implements Provider.Create
func (mfs *MemoryFileSystem) Create(filePath string) (io.WriteCloser, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	abs := mfs.abs(filePath)
	parent, ok := mfs.files[path.Dir(abs)]
	if !ok || !parent.info.isDir {
		return nil, &fs.PathError{Op: "create", Path: filePath, Err: fs.ErrNotExist}
	}
	if existing, ok := mfs.files[abs]; ok && existing.info.isDir {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	return &memoryWriter{fs: mfs, path: abs}, nil
}

// MkdirAll implements Provider.MkdirAll
func (mfs *MemoryFileSystem) MkdirAll(dirPath string) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	abs := mfs.abs(dirPath)
	if existing, ok := mfs.files[abs]; ok {
		if !existing.info.isDir {
			return fmt.Errorf("path exists and is not a directory: %s", dirPath)
		}
		return nil
	}
	mfs.ensureDirectoriesExist(abs)
	mfs.files[abs] = newDirEntry(abs)
	return nil
}

// Remove implements Provider.Remove
func (mfs *MemoryFileSystem) Remove(filePath string) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	abs := mfs.abs(filePath)
	f, ok := mfs.files[abs]
	if !ok {
		return &fs.PathError{Op: "remove", Path: filePath, Err: fs.ErrNotExist}
	}
	if f.info.isDir && mfs.hasChildren(abs) {
		return fmt.Errorf("directory not empty: %s", filePath)
	}
	delete(mfs.files, abs)
	return nil
}

// RemoveAll implements Provider.RemoveAll
func (mfs *MemoryFileSystem) RemoveAll(filePath string) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	abs := mfs.abs(filePath)
	for p := range mfs.files {
		if p == abs || strings.HasPrefix(p, abs+"/") {
			delete(mfs.files, p)
		}
	}
	return nil
}

// Stat implements Provider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	f, ok := mfs.files[mfs.abs(statPath)]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: statPath, Err: fs.ErrNotExist}
	}
	return f.info, nil
}

// SameFile implements Provider.SameFile. The memory filesystem has no links,
// so two paths are the same file when they resolve to the same entry.
func (mfs *MemoryFileSystem) SameFile(a, b string) (bool, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	return mfs.abs(a) == mfs.abs(b), nil
}
