package scanner

import (
	"fmt"
	"testing"

	"github.com/arthur-debert/blocksync/pkg/markers"
	"github.com/arthur-debert/blocksync/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{""}},
		{"single", "a", []string{"a"}},
		{"trailing newline", "a\nb\n", []string{"a", "b", ""}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b", ""}},
		{"only one cr stripped", "a\r\r\nb", []string{"a\r", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines([]byte(tt.in)))
		})
	}
}

func TestScan_FiltersAndPreservesOrder(t *testing.T) {
	tree := testutil.NewTree(t)
	var paths []string
	for i := 0; i < 23; i++ {
		path := fmt.Sprintf("/src/f%02d.h", i)
		content := "int x;\n"
		if i%3 == 0 {
			content = "// BEGIN(Foo)\r\n// END()\r\n"
		}
		tree.Write(path, content)
		paths = append(paths, path)
	}

	for _, workers := range []int{0, 1, 4, 64} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			result := New(tree.FS, markers.Default(), workers).Scan(paths)

			require.Len(t, result.Files, 8)
			for i, file := range result.Files {
				assert.Equal(t, paths[i*3], file.Path)
				assert.Equal(t, []string{"// BEGIN(Foo)", "// END()", ""}, file.Lines)
				assert.True(t, file.ModTime.Equal(testutil.BaseTime))
			}
			assert.Empty(t, result.Unreadable)
		})
	}
}

func TestScan_UnreadableIsSoftSkipped(t *testing.T) {
	tree := testutil.NewTree(t).Write("/src/a.h", "// BEGIN(A)\n// END()")

	result := New(tree.FS, markers.Default(), 2).Scan([]string{"/src/missing.h", "/src/a.h"})

	require.Len(t, result.Files, 1)
	assert.Equal(t, "/src/a.h", result.Files[0].Path)
	require.Len(t, result.Unreadable, 1)
	assert.Equal(t, "/src/missing.h", result.Unreadable[0].Path)
	assert.Error(t, result.Unreadable[0].Err)
}

func TestScan_Empty(t *testing.T) {
	result := New(testutil.NewTree(t).FS, markers.Default(), 4).Scan(nil)
	assert.Empty(t, result.Files)
	assert.Empty(t, result.Unreadable)
}
