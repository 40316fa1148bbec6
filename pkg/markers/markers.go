package markers

import (
	"bytes"
	"strings"
)

// Default marker tokens
const (
	DefaultBeginToken = "BEGIN"
	DefaultEndToken   = "END"

	// TruthQualifier marks an opener as the canonical definition
	TruthQualifier = "source_of_truth"
)

// Kind classifies a line
type Kind int

const (
	// None is a line without a recognized marker
	None Kind = iota
	// Opener starts a block
	Opener
	// Closer ends the innermost open block
	Closer
)

// String returns a readable kind name
func (k Kind) String() string {
	switch k {
	case Opener:
		return "opener"
	case Closer:
		return "closer"
	default:
		return "none"
	}
}

// Marker is the classification of a single line
type Marker struct {
	Kind  Kind
	Name  string
	Truth bool
}

// IsOpener reports whether the marker opens a block
func (m Marker) IsOpener() bool { return m.Kind == Opener }

// IsCloser reports whether the marker closes a block
func (m Marker) IsCloser() bool { return m.Kind == Closer }

// Grammar recognizes markers built from a begin and an end token
type Grammar struct {
	begin  string
	closer string
}

// NewGrammar creates a grammar for the given tokens
func NewGrammar(beginToken, endToken string) Grammar {
	return Grammar{
		begin:  beginToken,
		closer: endToken + "()",
	}
}

// Default returns the grammar for BEGIN / END markers
func Default() Grammar {
	return NewGrammar(DefaultBeginToken, DefaultEndToken)
}

// BeginToken returns the opener token
func (g Grammar) BeginToken() string { return g.begin }

// MayContainMarkers is the cheap pre-filter used before a file is split into
// lines. Files without the begin token cannot hold a block.
func (g Grammar) MayContainMarkers(data []byte) bool {
	return bytes.Contains(data, []byte(g.begin))
}

// Classify returns the marker found on line. An opener takes precedence over
// a closer on the same line.
func (g Grammar) Classify(line string) Marker {
	if name, truth, ok := g.MatchOpener(line); ok {
		return Marker{Kind: Opener, Name: name, Truth: truth}
	}
	if g.IsCloser(line) {
		return Marker{Kind: Closer}
	}
	return Marker{Kind: None}
}

// IsCloser reports whether line contains the closer anywhere
func (g Grammar) IsCloser(line string) bool {
	return strings.Contains(line, g.closer)
}

// MatchOpener tries every occurrence of the begin token on line and returns
// the first one that completes the opener grammar.
func (g Grammar) MatchOpener(line string) (name string, truth bool, ok bool) {
	offset := 0
	for {
		idx := strings.Index(line[offset:], g.begin)
		if idx < 0 {
			return "", false, false
		}
		start := offset + idx + len(g.begin)
		if name, truth, ok := parseOpenerTail(line, start); ok {
			return name, truth, true
		}
		offset = start
	}
}

// parseOpenerTail parses `( name [, source_of_truth] )` starting at pos
func parseOpenerTail(line string, pos int) (string, bool, bool) {
	p := skipSpaces(line, pos)
	if p >= len(line) || line[p] != '(' {
		return "", false, false
	}
	p = skipSpaces(line, p+1)

	if p >= len(line) || !isIdentStart(line[p]) {
		return "", false, false
	}
	nameStart := p
	for p < len(line) && isIdentChar(line[p]) {
		p++
	}
	name := line[nameStart:p]
	p = skipSpaces(line, p)

	truth := false
	if p < len(line) && line[p] == ',' {
		p = skipSpaces(line, p+1)
		if !strings.HasPrefix(line[p:], TruthQualifier) {
			return "", false, false
		}
		truth = true
		p = skipSpaces(line, p+len(TruthQualifier))
	}

	if p >= len(line) || line[p] != ')' {
		return "", false, false
	}
	return name, truth, true
}

func skipSpaces(s string, pos int) int {
	for pos < len(s) && s[pos] == ' ' {
		pos++
	}
	return pos
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// ValidToken reports whether s can be used as a marker token
func ValidToken(s string) bool {
	if s == "" {
		return false
	}
	return !strings.ContainsAny(s, "() \t\r\n")
}
