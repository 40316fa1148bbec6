package filesystem

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fs := NewOS()
	require.NotNil(t, fs)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "sub", "test.h")

	require.NoError(t, fs.MkdirAll(filepath.Dir(testFile), 0755))
	require.NoError(t, fs.WriteFile(testFile, []byte("int x;"), 0644))

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, "int x;", string(content))

	past := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, fs.Chtimes(testFile, past, past))
	info, err := fs.Stat(testFile)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(past))

	var visited []string
	err = fs.Walk(tmpDir, func(path string, info os.FileInfo, err error) error {
		require.NoError(t, err)
		visited = append(visited, path)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{tmpDir, filepath.Dir(testFile), testFile}, visited)
}

func TestAferoFS_ReadFileRejectsDirectory(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/src", 0755))

	_, err := NewAferoFS(mem).ReadFile("/src")
	assert.Error(t, err)
}

func TestAferoFS_MissingFile(t *testing.T) {
	fs := NewAferoFS(afero.NewMemMapFs())

	_, err := fs.ReadFile("/nope.c")
	assert.True(t, os.IsNotExist(err))
}
