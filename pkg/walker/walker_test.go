package walker

import (
	"testing"

	"github.com/arthur-debert/blocksync/pkg/errors"
	"github.com/arthur-debert/blocksync/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	w := New(testutil.NewTree(t).FS, DefaultExtensions)

	tests := []struct {
		path string
		want bool
	}{
		{"a.h", true},
		{"a.HPP", true},
		{"dir/b.Cpp", true},
		{"c.c", true},
		{"d.inl", true},
		{"e.cc", false},
		{"f.go", false},
		{"Makefile", false},
		{"g.h.bak", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, w.Matches(tt.path))
		})
	}
}

func TestNew_NormalizesExtensions(t *testing.T) {
	w := New(testutil.NewTree(t).FS, []string{"GO", ".Txt", ""})

	assert.True(t, w.Matches("x.go"))
	assert.True(t, w.Matches("x.TXT"))
	assert.False(t, w.Matches("x"))
}

func TestFiles(t *testing.T) {
	tree := testutil.NewTree(t).
		Write("/repo/src/b.cpp", "").
		Write("/repo/src/a.h", "").
		Write("/repo/src/nested/c.inl", "").
		Write("/repo/src/readme.md", "").
		Write("/repo/src/.git/objects/x.h", "").
		Write("/repo/include/d.hpp", "")

	files, err := New(tree.FS, DefaultExtensions).Files([]string{"/repo/src", "/repo/include", "/repo/src/nested"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/repo/src/a.h",
		"/repo/src/b.cpp",
		"/repo/src/nested/c.inl",
		"/repo/include/d.hpp",
	}, files)
}

func TestFiles_FileRoot(t *testing.T) {
	tree := testutil.NewTree(t).Write("/repo/one.h", "")

	files, err := New(tree.FS, DefaultExtensions).Files([]string{"/repo/one.h"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/repo/one.h"}, files)
}

func TestFiles_MissingRoot(t *testing.T) {
	_, err := New(testutil.NewTree(t).FS, DefaultExtensions).Files([]string{"/nope"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
