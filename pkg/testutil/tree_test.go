package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTree(t *testing.T) {
	tree := NewTree(t).Write("/src/a.h", Lines("a", "b"))

	assert.Equal(t, "a\nb", tree.Read("/src/a.h"))
	assert.True(t, tree.ModTime("/src/a.h").Equal(BaseTime))

	later := BaseTime.Add(time.Minute)
	tree.Touch("/src/a.h", later)
	assert.True(t, tree.ModTime("/src/a.h").Equal(later))

	data, err := tree.FS.ReadFile("/src/a.h")
	assert.NoError(t, err)
	assert.Equal(t, "a\nb", string(data))
}
