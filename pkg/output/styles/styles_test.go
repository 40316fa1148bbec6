package styles

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderer(profile termenv.Profile) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(profile)
	r.SetHasDarkBackground(true)
	return r
}

func TestDefault(t *testing.T) {
	reg, err := Default(renderer(termenv.Ascii))
	require.NoError(t, err)

	for _, name := range []string{"Header", "Updated", "Conflict", "Warning", "Error", "Name", "Path", "Muted", "Success"} {
		t.Run(name, func(t *testing.T) {
			_, ok := reg[name]
			assert.True(t, ok, "style %s should be defined", name)
		})
	}
}

func TestRender_ProfileDecidesEscapes(t *testing.T) {
	plain, err := Default(renderer(termenv.Ascii))
	require.NoError(t, err)
	assert.Equal(t, "Summary", plain.Get("Header").Render("Summary"))

	colored, err := Default(renderer(termenv.ANSI256))
	require.NoError(t, err)
	out := colored.Get("Header").Render("Summary")
	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "\x1b[")
}

func TestGet_Missing(t *testing.T) {
	reg, err := Default(renderer(termenv.Ascii))
	require.NoError(t, err)
	assert.Equal(t, "text", reg.Get("NoSuchStyle").Render("text"))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "valid",
			yaml: "colors:\n  red: {light: \"#f00\", dark: \"#f00\"}\nstyles:\n  Alert: {foreground: red, bold: true}\n",
		},
		{
			name:    "unknown color",
			yaml:    "styles:\n  Alert: {foreground: purple}\n",
			wantErr: "unknown color",
		},
		{
			name:    "malformed yaml",
			yaml:    "styles: [",
			wantErr: "failed to parse styles",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := Parse([]byte(tt.yaml), renderer(termenv.Ascii))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, reg, "Alert")
		})
	}
}
