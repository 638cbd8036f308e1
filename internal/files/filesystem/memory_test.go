package filesystem

import (
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem_AddFileAndOpen(t *testing.T) {
	mfs := NewMemoryFileSystem("/work")
	mfs.AddFile("input/tickets.csv", "Name\nA\n")

	r, err := mfs.Open("/work/input/tickets.csv")
	require.NoError(t, err)
	content, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Name\nA\n", string(content))

	info, err := mfs.Stat("input")
	require.NoError(t, err)
	assert.True(t, info.IsDir(), "parent directories are created implicitly")
}

func TestMemoryFileSystem_Open_Missing(t *testing.T) {
	mfs := NewMemoryFileSystem("/work")

	_, err := mfs.Open("nope.csv")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFileSystem_CreateCommitsOnClose(t *testing.T) {
	mfs := NewMemoryFileSystem("/work")

	w, err := mfs.Create("out.csv")
	require.NoError(t, err)
	_, err = io.WriteString(w, "hash")
	require.NoError(t, err)

	_, err = mfs.ReadFile("out.csv")
	assert.Error(t, err, "content is not visible before Close")

	require.NoError(t, w.Close())
	content, err := mfs.ReadFile("/work/out.csv")
	require.NoError(t, err)
	assert.Equal(t, "hash", string(content))

	assert.Error(t, w.Close(), "double close is reported")
}

func TestMemoryFileSystem_Create_MissingParent(t *testing.T) {
	mfs := NewMemoryFileSystem("/work")

	_, err := mfs.Create("missing/out.csv")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFileSystem_RemoveSemantics(t *testing.T) {
	mfs := NewMemoryFileSystem("/work")
	require.NoError(t, mfs.MkdirAll("tmp/run"))
	mfs.AddFile("tmp/run/1.json", "{}")

	assert.Error(t, mfs.Remove("tmp/run"), "non-empty directory must not be removed")
	require.NoError(t, mfs.Remove("tmp/run/1.json"))
	require.NoError(t, mfs.Remove("tmp/run"))
	assert.Equal(t, []string{"/work/tmp"}, mfs.Paths())

	require.NoError(t, mfs.RemoveAll("tmp"))
	assert.Empty(t, mfs.Paths())
	assert.True(t, errors.Is(mfs.Remove("tmp"), fs.ErrNotExist))
}

func TestMemoryFileSystem_MkdirAllOverFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/work")
	mfs.AddFile("tmp", "not a dir")

	assert.Error(t, mfs.MkdirAll("tmp"))
}

func TestMemoryFileSystem_SameFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/work")
	mfs.AddFile("tickets.csv", "x")

	same, err := mfs.SameFile("tickets.csv", "/work/./tickets.csv")
	require.NoError(t, err)
	assert.True(t, same)

	same, err = mfs.SameFile("tickets.csv", "/work/tickets.output.csv")
	require.NoError(t, err)
	assert.False(t, same)
}
