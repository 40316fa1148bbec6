// Package output renders run reports for the terminal.
//
// Rendering is two-phase: a text/template from templates/ expands the data,
// and the template's style function wraps fragments in lipgloss styles from
// the styles registry. Color is dropped (termenv.Ascii) when the caller asks
// for it, when NO_COLOR is set, or when the writer is not a terminal, so the
// same templates produce plain text for logs and pipes.
package output
