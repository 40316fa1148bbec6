// Package indent measures and reproduces leading whitespace in columns.
package indent

import "strings"

// DefaultTabWidth is the number of columns a tab advances to
const DefaultTabWidth = 4

// Style is the whitespace character used when emitting indentation
type Style int

const (
	// Tabs emits as many tabs as fit, then spaces for the remainder
	Tabs Style = iota
	// Spaces emits only spaces
	Spaces
)

// Leading returns the run of spaces and tabs at the start of line
func Leading(line string) string {
	return line[:len(line)-len(TrimLeading(line))]
}

// TrimLeading removes leading spaces and tabs
func TrimLeading(line string) string {
	return strings.TrimLeft(line, " \t")
}

// IsBlank reports whether line holds only whitespace
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// Width returns the column width of ws. Tabs advance to the next tab stop.
func Width(ws string, tabWidth int) int {
	col := 0
	for i := 0; i < len(ws); i++ {
		switch ws[i] {
		case '\t':
			col += tabWidth - col%tabWidth
		case ' ':
			col++
		}
	}
	return col
}

// StyleOf picks the style a site uses. Empty indentation defaults to tabs.
func StyleOf(ws string) Style {
	if ws == "" || strings.Contains(ws, "\t") {
		return Tabs
	}
	return Spaces
}

// Render produces columns of indentation in the given style
func Render(columns int, style Style, tabWidth int) string {
	if columns <= 0 {
		return ""
	}
	if style == Spaces {
		return strings.Repeat(" ", columns)
	}
	return strings.Repeat("\t", columns/tabWidth) + strings.Repeat(" ", columns%tabWidth)
}
