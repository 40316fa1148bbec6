package output

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/arthur-debert/blocksync/pkg/core"
	"github.com/arthur-debert/blocksync/pkg/logging"
	"github.com/arthur-debert/blocksync/pkg/output/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Renderer writes styled reports to a writer
type Renderer struct {
	templates *template.Template
	styles    styles.Registry
	writer    io.Writer
}

// NewRenderer creates a renderer for w. Output is plain text when noColor is
// set or ColorEnabled reports false for w.
func NewRenderer(w io.Writer, noColor bool) (*Renderer, error) {
	log := logging.GetLogger("output.Renderer")

	lg := lipgloss.NewRenderer(w)
	if noColor || !ColorEnabled(w) {
		lg.SetColorProfile(termenv.Ascii)
	}
	log.Debug().
		Bool("noColor", noColor).
		Str("colorProfile", fmt.Sprintf("%v", lg.ColorProfile())).
		Msg("Creating renderer")

	reg, err := styles.Default(lg)
	if err != nil {
		return nil, err
	}

	funcs := template.FuncMap{
		"style": func(name string, v interface{}) string {
			return reg.Get(name).Render(fmt.Sprint(v))
		},
		"location": func(file string, line int) string {
			return fmt.Sprintf("%s:%d", file, line)
		},
		"count": count,
		"verb": func(dryRun bool) string {
			if dryRun {
				return "would update"
			}
			return "updated"
		},
	}

	tmpl, err := template.New("output").Funcs(funcs).ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Renderer{templates: tmpl, styles: reg, writer: w}, nil
}

// ColorEnabled reports whether w is a terminal and NO_COLOR is unset
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// RenderSync writes the report of a synchronization run
func (r *Renderer) RenderSync(result *core.SyncResult) error {
	return r.execute("sync.tmpl", result)
}

// RenderListing writes the truth block listing
func (r *Renderer) RenderListing(listing *core.Listing) error {
	return r.execute("list.tmpl", listing)
}

// RenderError writes err with error styling
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintf(r.writer, "%s %s\n", r.styles.Get("Error").Render("Error:"), err.Error())
	return writeErr
}

// RenderMessage writes message in the named style
func (r *Renderer) RenderMessage(style, message string) error {
	_, err := fmt.Fprintln(r.writer, r.styles.Get(style).Render(message))
	return err
}

func (r *Renderer) execute(name string, data interface{}) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	_, err := fmt.Fprintln(r.writer, strings.TrimRight(buf.String(), "\n"))
	return err
}

func count(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
