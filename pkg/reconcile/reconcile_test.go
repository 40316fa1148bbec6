package reconcile

import (
	"testing"
	"time"

	"github.com/arthur-debert/blocksync/pkg/errors"
	"github.com/arthur-debert/blocksync/pkg/registry"
	"github.com/arthur-debert/blocksync/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	older = time.Unix(1000, 0)
	newer = time.Unix(2000, 0)
)

func truths(t *testing.T, blocks ...types.TruthBlock) *registry.Truths {
	t.Helper()
	reg := registry.New()
	for _, b := range blocks {
		require.NoError(t, reg.Register(b))
	}
	return reg
}

func fooTruth(mtime time.Time) types.TruthBlock {
	return types.TruthBlock{
		Name:    "Foo",
		File:    "t.h",
		Line:    1,
		ModTime: mtime,
		Lines:   []types.TruthLine{{Content: "int x = 1;"}},
	}
}

func TestReconstruct_IndentationFidelity(t *testing.T) {
	r := New(registry.New(), 4)
	truth := types.TruthBlock{Lines: []types.TruthLine{
		{Indent: 2, Content: "x;"},
		{},
		{Indent: 0, Content: "y;"},
	}}

	assert.Equal(t, []string{"      x;", "", "    y;"}, r.Reconstruct(truth, "    // BEGIN(Foo)"))
	assert.Equal(t, []string{"\t  x;", "", "\ty;"}, r.Reconstruct(truth, "\t// BEGIN(Foo)"))
	assert.Equal(t, []string{"  x;", "", "y;"}, r.Reconstruct(truth, "// BEGIN(Foo)"))
	assert.Equal(t, []string{"\t\t  x;", "", "\t\ty;"}, r.Reconstruct(truth, "  \t    // BEGIN(Foo)"))
}

func TestReconstruct_TabWidth(t *testing.T) {
	truth := types.TruthBlock{Lines: []types.TruthLine{{Indent: 8, Content: "x;"}}}

	assert.Equal(t, []string{"\t\t\tx;"}, New(registry.New(), 4).Reconstruct(truth, "\t// BEGIN(Foo)"))
	assert.Equal(t, []string{"\t\tx;"}, New(registry.New(), 8).Reconstruct(truth, "\t// BEGIN(Foo)"))
}

func TestSameContent(t *testing.T) {
	assert.True(t, SameContent([]string{"  a", "\tb", ""}, []string{"a", "    b", "   "}))
	assert.False(t, SameContent([]string{"a"}, []string{"a", ""}))
	assert.False(t, SameContent([]string{"a "}, []string{"a"}))
	assert.True(t, SameContent(nil, []string{}))
}

func TestFile_RewritesEmptyRef(t *testing.T) {
	file := &types.SourceFile{
		Path:    "r.cpp",
		ModTime: newer,
		Lines:   []string{"    // BEGIN(Foo)", "", "    // END()"},
	}

	outcome, err := New(truths(t, fooTruth(older)), 4).File(file, []types.RefBlock{
		{Name: "Foo", BeginLine: 0, ContentStart: 1, ContentEnd: 2},
	})
	require.NoError(t, err)

	assert.True(t, outcome.Modified)
	assert.Equal(t, []Update{{Name: "Foo", Line: 1}}, outcome.Updates)
	assert.Empty(t, outcome.Conflicts)
	assert.Equal(t, []string{"    // BEGIN(Foo)", "    int x = 1;", "    // END()"}, file.Lines)
}

func TestFile_NoOpWhenOnlyIndentationDiffers(t *testing.T) {
	lines := []string{"  // BEGIN(Foo)", "\t\t\tint x = 1;", "  // END()"}
	file := &types.SourceFile{Path: "r.cpp", ModTime: older, Lines: append([]string(nil), lines...)}

	outcome, err := New(truths(t, fooTruth(newer)), 4).File(file, []types.RefBlock{
		{Name: "Foo", BeginLine: 0, ContentStart: 1, ContentEnd: 2},
	})
	require.NoError(t, err)

	assert.False(t, outcome.Modified)
	assert.Equal(t, lines, file.Lines)
}

func TestFile_ConflictWhenRefIsNewerAndDiverged(t *testing.T) {
	lines := []string{"// BEGIN(Foo)", "int x = 999;", "// END()"}
	file := &types.SourceFile{Path: "r.cpp", ModTime: newer, Lines: append([]string(nil), lines...)}

	outcome, err := New(truths(t, fooTruth(older)), 4).File(file, []types.RefBlock{
		{Name: "Foo", BeginLine: 0, ContentStart: 1, ContentEnd: 2},
	})
	require.NoError(t, err)

	assert.False(t, outcome.Modified)
	assert.Equal(t, lines, file.Lines)
	assert.Equal(t, []types.Conflict{{Name: "Foo", File: "r.cpp", Line: 1, TruthFile: "t.h", TruthLine: 1}}, outcome.Conflicts)
}

func TestFile_OverwritesWhenTruthIsNewer(t *testing.T) {
	file := &types.SourceFile{Path: "r.cpp", ModTime: older, Lines: []string{"// BEGIN(Foo)", "int x = 999;", "// END()"}}

	outcome, err := New(truths(t, fooTruth(newer)), 4).File(file, []types.RefBlock{
		{Name: "Foo", BeginLine: 0, ContentStart: 1, ContentEnd: 2},
	})
	require.NoError(t, err)

	assert.True(t, outcome.Modified)
	assert.Equal(t, "int x = 1;", file.Lines[1])
}

func TestFile_SameModTimeIsNotAConflict(t *testing.T) {
	file := &types.SourceFile{Path: "r.cpp", ModTime: older, Lines: []string{"// BEGIN(Foo)", "stale", "// END()"}}

	outcome, err := New(truths(t, fooTruth(older)), 4).File(file, []types.RefBlock{
		{Name: "Foo", BeginLine: 0, ContentStart: 1, ContentEnd: 2},
	})
	require.NoError(t, err)
	assert.True(t, outcome.Modified)
	assert.Empty(t, outcome.Conflicts)
}

func TestFile_BlankNewerRefIsFilled(t *testing.T) {
	file := &types.SourceFile{Path: "r.cpp", ModTime: newer, Lines: []string{"// BEGIN(Foo)", "   ", "", "// END()"}}

	outcome, err := New(truths(t, fooTruth(older)), 4).File(file, []types.RefBlock{
		{Name: "Foo", BeginLine: 0, ContentStart: 1, ContentEnd: 3},
	})
	require.NoError(t, err)
	assert.True(t, outcome.Modified)
	assert.Equal(t, []string{"// BEGIN(Foo)", "int x = 1;", "// END()"}, file.Lines)
}

func TestFile_MultipleBlocksShiftingLineCounts(t *testing.T) {
	bar := types.TruthBlock{
		Name:    "Bar",
		File:    "t.h",
		Line:    9,
		ModTime: older,
		Lines:   []types.TruthLine{{Content: "a;"}, {Indent: 4, Content: "b;"}, {Content: "c;"}},
	}
	reg := truths(t, fooTruth(older), bar)

	file := &types.SourceFile{Path: "r.cpp", ModTime: older, Lines: []string{
		"top",
		"    // BEGIN(Bar)",
		"    // END()",
		"middle",
		"// BEGIN(Foo)",
		"old",
		"older",
		"// END()",
		"  // BEGIN(Bar)",
		"  a;",
		"      b;",
		"  c;",
		"  // END()",
		"bottom",
	}}

	outcome, err := New(reg, 4).File(file, []types.RefBlock{
		{Name: "Bar", BeginLine: 1, ContentStart: 2, ContentEnd: 2},
		{Name: "Foo", BeginLine: 4, ContentStart: 5, ContentEnd: 7},
		{Name: "Bar", BeginLine: 8, ContentStart: 9, ContentEnd: 12},
	})
	require.NoError(t, err)

	assert.Equal(t, []Update{{Name: "Bar", Line: 2}, {Name: "Foo", Line: 5}}, outcome.Updates)
	assert.Equal(t, []string{
		"top",
		"    // BEGIN(Bar)",
		"    a;",
		"        b;",
		"    c;",
		"    // END()",
		"middle",
		"// BEGIN(Foo)",
		"int x = 1;",
		"// END()",
		"  // BEGIN(Bar)",
		"  a;",
		"      b;",
		"  c;",
		"  // END()",
		"bottom",
	}, file.Lines)
}

func TestFile_UnknownReference(t *testing.T) {
	lines := []string{"x", "// BEGIN(Missing)", "// END()"}
	file := &types.SourceFile{Path: "r.cpp", Lines: append([]string(nil), lines...)}

	_, err := New(registry.New(), 4).File(file, []types.RefBlock{
		{Name: "Missing", BeginLine: 1, ContentStart: 2, ContentEnd: 2},
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownReference))
	assert.Contains(t, err.Error(), "r.cpp:2")
	assert.Contains(t, err.Error(), `"Missing"`)
	assert.Equal(t, lines, file.Lines)
}

func TestFile_NoRefs(t *testing.T) {
	file := &types.SourceFile{Path: "r.cpp", Lines: []string{"a"}}
	outcome, err := New(registry.New(), 4).File(file, nil)
	require.NoError(t, err)
	assert.False(t, outcome.Modified)
}
