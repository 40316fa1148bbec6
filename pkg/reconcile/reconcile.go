// Package reconcile brings ref blocks in line with their truth blocks.
//
// Each ref block is either left alone (its body already matches the truth
// when leading whitespace is ignored), rewritten with the truth's lines
// re-indented in the ref site's own style, or reported as a conflict when
// the ref's file is newer than the truth's file and holds non-blank content
// that differs.
//
// A file is rebuilt in one forward pass: unchanged spans are copied, and
// rewritten bodies are substituted in place. Block ranges are therefore
// always read against the original line indices.
package reconcile

import (
	"github.com/arthur-debert/blocksync/pkg/errors"
	"github.com/arthur-debert/blocksync/pkg/indent"
	"github.com/arthur-debert/blocksync/pkg/logging"
	"github.com/arthur-debert/blocksync/pkg/registry"
	"github.com/arthur-debert/blocksync/pkg/types"
	"github.com/rs/zerolog"
)

// Update records a ref block whose body was replaced
type Update struct {
	Name string
	// Line is the 1-based line of the ref's opener
	Line int
}

// Outcome is the result of reconciling one file
type Outcome struct {
	Modified  bool
	Updates   []Update
	Conflicts []types.Conflict
}

// Reconciler compares ref blocks against the truth registry
type Reconciler struct {
	truths   *registry.Truths
	tabWidth int
	logger   zerolog.Logger
}

// New creates a reconciler reading from truths
func New(truths *registry.Truths, tabWidth int) *Reconciler {
	if tabWidth < 1 {
		tabWidth = indent.DefaultTabWidth
	}
	return &Reconciler{
		truths:   truths,
		tabWidth: tabWidth,
		logger:   logging.GetLogger("reconcile"),
	}
}

// File reconciles every ref block of file. refs must be in source order and
// must not overlap. When the outcome is Modified, file.Lines has been replaced
// by the rebuilt lines. An unknown reference aborts with a structural error
// and leaves file untouched.
func (r *Reconciler) File(file *types.SourceFile, refs []types.RefBlock) (Outcome, error) {
	var outcome Outcome
	if len(refs) == 0 {
		return outcome, nil
	}

	out := make([]string, 0, len(file.Lines))
	cursor := 0

	for _, ref := range refs {
		truth, ok := r.truths.Lookup(ref.Name)
		if !ok {
			return Outcome{}, errors.At(errors.Location{File: file.Path, Line: ref.BeginLine + 1},
				errors.ErrUnknownReference, "ref block %q has no source_of_truth definition", ref.Name)
		}

		out = append(out, file.Lines[cursor:ref.ContentStart]...)
		cursor = ref.ContentEnd

		current := file.Lines[ref.ContentStart:ref.ContentEnd]
		wanted := r.Reconstruct(truth, file.Lines[ref.BeginLine])

		switch {
		case SameContent(current, wanted):
			out = append(out, current...)

		case file.ModTime.After(truth.ModTime) && hasContent(current):
			conflict := types.Conflict{
				Name:      ref.Name,
				File:      file.Path,
				Line:      ref.BeginLine + 1,
				TruthFile: truth.File,
				TruthLine: truth.Line,
			}
			outcome.Conflicts = append(outcome.Conflicts, conflict)
			out = append(out, current...)
			r.logger.Debug().
				Str("name", ref.Name).
				Str("file", file.Path).
				Int("line", conflict.Line).
				Msg("Ref block was edited after its truth, leaving it untouched")

		default:
			out = append(out, wanted...)
			outcome.Modified = true
			outcome.Updates = append(outcome.Updates, Update{Name: ref.Name, Line: ref.BeginLine + 1})
			r.logger.Debug().
				Str("name", ref.Name).
				Str("file", file.Path).
				Int("line", ref.BeginLine+1).
				Msg("Ref block updated")
		}
	}
	out = append(out, file.Lines[cursor:]...)

	if outcome.Modified {
		file.Lines = out
	}
	return outcome, nil
}

// Reconstruct renders truth at a ref site whose opener line is openerLine.
// Indentation is rebuilt from the opener's leading whitespace: its width is
// the base and its style (tabs or spaces) is reused for every line.
func (r *Reconciler) Reconstruct(truth types.TruthBlock, openerLine string) []string {
	ws := indent.Leading(openerLine)
	base := indent.Width(ws, r.tabWidth)
	style := indent.StyleOf(ws)

	lines := make([]string, len(truth.Lines))
	for i, line := range truth.Lines {
		if line.IsBlank() {
			continue
		}
		lines[i] = indent.Render(base+line.Indent, style, r.tabWidth) + line.Content
	}
	return lines
}

// SameContent compares two bodies line by line, ignoring leading whitespace
func SameContent(current, wanted []string) bool {
	if len(current) != len(wanted) {
		return false
	}
	for i := range current {
		if indent.TrimLeading(current[i]) != indent.TrimLeading(wanted[i]) {
			return false
		}
	}
	return true
}

func hasContent(lines []string) bool {
	for _, line := range lines {
		if !indent.IsBlank(line) {
			return true
		}
	}
	return false
}
