package types

import "time"

// SourceFile is one candidate file that contains at least one marker token.
// Lines carry no line terminators.
type SourceFile struct {
	Path    string
	Lines   []string
	ModTime time.Time
}

// TruthLine is one line of a truth block, stored relative to the indentation
// of the block's opener line.
type TruthLine struct {
	// Indent is the column offset from the opener line's indentation, never negative
	Indent int
	// Content is the line with its leading whitespace removed
	Content string
}

// IsBlank reports whether the line was all whitespace in the source
func (l TruthLine) IsBlank() bool {
	return l.Content == ""
}

// TruthBlock is the canonical definition of a named block.
type TruthBlock struct {
	Name  string
	Lines []TruthLine
	// File and Line locate the opener; Line is 1-based
	File string
	Line int
	// ModTime is the origin file's modification time, used for staleness checks
	ModTime time.Time
}

// RefBlock is a placeholder kept in sync with the truth block of the same name.
// The body is the half-open line range [ContentStart, ContentEnd).
type RefBlock struct {
	Name         string
	BeginLine    int
	ContentStart int
	ContentEnd   int
}

// Conflict records a ref block that diverged from its truth and was edited
// more recently than the truth's file.
type Conflict struct {
	Name      string
	File      string
	Line      int
	TruthFile string
	TruthLine int
}
