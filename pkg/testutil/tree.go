package testutil

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/blocksync/pkg/filesystem"
	"github.com/arthur-debert/blocksync/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// BaseTime is the modification time given to seeded files unless a test
// overrides it
var BaseTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// Tree is an in-memory source tree
type Tree struct {
	t   *testing.T
	Mem afero.Fs
	FS  types.FS
}

// NewTree creates an empty in-memory tree
func NewTree(t *testing.T) *Tree {
	t.Helper()
	mem := afero.NewMemMapFs()
	return &Tree{t: t, Mem: mem, FS: filesystem.NewAferoFS(mem)}
}

// Lines joins lines with \n, the form blocksync writes files in
func Lines(lines ...string) string {
	return strings.Join(lines, "\n")
}

// Write creates path with content and pins its modification time to BaseTime
func (tr *Tree) Write(path, content string) *Tree {
	tr.t.Helper()
	require.NoError(tr.t, tr.Mem.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(tr.t, afero.WriteFile(tr.Mem, path, []byte(content), 0644))
	return tr.Touch(path, BaseTime)
}

// Touch sets the modification time of path
func (tr *Tree) Touch(path string, mtime time.Time) *Tree {
	tr.t.Helper()
	require.NoError(tr.t, tr.Mem.Chtimes(path, mtime, mtime))
	return tr
}

// Read returns the content of path
func (tr *Tree) Read(path string) string {
	tr.t.Helper()
	data, err := afero.ReadFile(tr.Mem, path)
	require.NoError(tr.t, err)
	return string(data)
}

// ModTime returns the modification time of path
func (tr *Tree) ModTime(path string) time.Time {
	tr.t.Helper()
	info, err := tr.Mem.Stat(path)
	require.NoError(tr.t, err)
	return info.ModTime()
}
