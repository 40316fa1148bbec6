package parser

import (
	"github.com/arthur-debert/blocksync/pkg/errors"
	"github.com/arthur-debert/blocksync/pkg/indent"
	"github.com/arthur-debert/blocksync/pkg/logging"
	"github.com/arthur-debert/blocksync/pkg/markers"
	"github.com/arthur-debert/blocksync/pkg/registry"
	"github.com/arthur-debert/blocksync/pkg/types"
	"github.com/rs/zerolog"
)

// FileBlocks pairs a file with the ref blocks found in it, in source order
type FileBlocks struct {
	File *types.SourceFile
	Refs []types.RefBlock
}

// Parser runs the truth and ref passes
type Parser struct {
	grammar  markers.Grammar
	tabWidth int
	logger   zerolog.Logger
}

// New creates a parser for the given marker grammar and tab width
func New(grammar markers.Grammar, tabWidth int) *Parser {
	if tabWidth < 1 {
		tabWidth = indent.DefaultTabWidth
	}
	return &Parser{
		grammar:  grammar,
		tabWidth: tabWidth,
		logger:   logging.GetLogger("parser"),
	}
}

// Parse runs the truth pass over all files, then the ref pass over all
// files. Truth blocks land in reg.
func (p *Parser) Parse(files []*types.SourceFile, reg *registry.Truths) ([]FileBlocks, error) {
	views := make([]*fileView, len(files))
	for i, file := range files {
		views[i] = p.view(file)
	}

	for _, v := range views {
		if err := p.truthRange(v, 0, len(v.marks), reg); err != nil {
			return nil, err
		}
	}
	p.logger.Debug().Int("truths", reg.Count()).Msg("Truth pass complete")

	result := make([]FileBlocks, 0, len(views))
	for _, v := range views {
		refs, err := p.refPass(v)
		if err != nil {
			return nil, err
		}
		result = append(result, FileBlocks{File: v.file, Refs: refs})
	}

	return result, nil
}

// fileView caches the marker classification of every line of one file
type fileView struct {
	file  *types.SourceFile
	marks []markers.Marker
}

func (p *Parser) view(file *types.SourceFile) *fileView {
	marks := make([]markers.Marker, len(file.Lines))
	for i, line := range file.Lines {
		marks[i] = p.grammar.Classify(line)
	}
	return &fileView{file: file, marks: marks}
}

func (v *fileView) location(idx int) errors.Location {
	return errors.Location{File: v.file.Path, Line: idx + 1}
}

// closerOf returns the index of the closer matching the opener at begin.
// Nested blocks are consumed recursively, so the closer returned is the one
// that brings the depth back to zero.
func (v *fileView) closerOf(begin int) (int, error) {
	i := begin + 1
	for i < len(v.marks) {
		switch v.marks[i].Kind {
		case markers.Opener:
			end, err := v.closerOf(i)
			if err != nil {
				return 0, err
			}
			i = end + 1
		case markers.Closer:
			return i, nil
		default:
			i++
		}
	}
	return 0, errors.At(v.location(begin), errors.ErrUnterminatedBlock,
		"block %q is never closed", v.marks[begin].Name)
}

// truthRange registers every truth block whose opener lies in [lo, hi).
// Ref spans at this level are jumped over; the ref pass validates them.
func (p *Parser) truthRange(v *fileView, lo, hi int, reg *registry.Truths) error {
	i := lo
	for i < hi {
		m := v.marks[i]
		if !m.IsOpener() {
			i++
			continue
		}

		end, err := v.closerOf(i)
		if err != nil {
			return err
		}

		if m.Truth {
			if err := p.truthBlock(v, i, end, reg); err != nil {
				return err
			}
		}
		i = end + 1
	}
	return nil
}

func (p *Parser) truthBlock(v *fileView, begin, end int, reg *registry.Truths) error {
	name := v.marks[begin].Name

	for j := begin + 1; j < end; j++ {
		if m := v.marks[j]; m.IsOpener() && !m.Truth {
			return errors.At(v.location(j), errors.ErrNestedInTruth,
				"ref block %q cannot appear inside truth block %q (opened at %s)",
				m.Name, name, v.location(begin))
		}
	}

	block := types.TruthBlock{
		Name:    name,
		Lines:   p.truthLines(v, begin, end),
		File:    v.file.Path,
		Line:    begin + 1,
		ModTime: v.file.ModTime,
	}
	if err := reg.Register(block); err != nil {
		return err
	}

	p.logger.Trace().
		Str("name", name).
		Str("file", v.file.Path).
		Int("line", begin+1).
		Int("lines", len(block.Lines)).
		Msg("Registered truth block")

	return p.truthRange(v, begin+1, end, reg)
}

// truthLines captures the body between begin and end, relative to the
// opener's indentation. Marker lines at any depth are dropped.
func (p *Parser) truthLines(v *fileView, begin, end int) []types.TruthLine {
	base := indent.Width(indent.Leading(v.file.Lines[begin]), p.tabWidth)

	lines := make([]types.TruthLine, 0, end-begin-1)
	for j := begin + 1; j < end; j++ {
		if v.marks[j].Kind != markers.None {
			continue
		}
		lines = append(lines, p.truthLine(v.file.Lines[j], base))
	}
	return lines
}

func (p *Parser) truthLine(line string, base int) types.TruthLine {
	if indent.IsBlank(line) {
		return types.TruthLine{}
	}
	rel := indent.Width(indent.Leading(line), p.tabWidth) - base
	if rel < 0 {
		rel = 0
	}
	return types.TruthLine{Indent: rel, Content: indent.TrimLeading(line)}
}

// refPass records every unqualified top-level opener as a ref block
func (p *Parser) refPass(v *fileView) ([]types.RefBlock, error) {
	var refs []types.RefBlock

	i := 0
	for i < len(v.marks) {
		m := v.marks[i]
		if !m.IsOpener() {
			i++
			continue
		}

		end, err := v.closerOf(i)
		if err != nil {
			return nil, err
		}

		if !m.Truth {
			for j := i + 1; j < end; j++ {
				if inner := v.marks[j]; inner.IsOpener() {
					return nil, errors.At(v.location(j), errors.ErrNestedInRef,
						"block %q cannot be nested inside ref block %q (opened at %s)",
						inner.Name, m.Name, v.location(i))
				}
			}
			refs = append(refs, types.RefBlock{
				Name:         m.Name,
				BeginLine:    i,
				ContentStart: i + 1,
				ContentEnd:   end,
			})
		}
		i = end + 1
	}

	if len(refs) > 0 {
		p.logger.Trace().Str("file", v.file.Path).Int("refs", len(refs)).Msg("Found ref blocks")
	}
	return refs, nil
}
