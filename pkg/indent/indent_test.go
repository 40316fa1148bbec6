package indent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWidth(t *testing.T) {
	tests := []struct {
		ws       string
		tabWidth int
		want     int
	}{
		{"", 4, 0},
		{"    ", 4, 4},
		{"\t", 4, 4},
		{"\t\t", 4, 8},
		{"  \t", 4, 4},
		{"\t  ", 4, 6},
		{"\t", 8, 8},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Width(tt.ws, tt.tabWidth), "ws=%q", tt.ws)
	}
}

func TestLeadingAndTrim(t *testing.T) {
	assert.Equal(t, "\t  ", Leading("\t  int x;"))
	assert.Equal(t, "int x;  ", TrimLeading("\t  int x;  "))
	assert.Equal(t, "", Leading("x"))
	assert.Equal(t, "   ", Leading("   "))
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank(" \t "))
	assert.False(t, IsBlank("  x"))
}

func TestStyleOf(t *testing.T) {
	assert.Equal(t, Tabs, StyleOf(""))
	assert.Equal(t, Tabs, StyleOf("\t"))
	assert.Equal(t, Tabs, StyleOf("  \t"))
	assert.Equal(t, Spaces, StyleOf("    "))
}

func TestRender(t *testing.T) {
	assert.Equal(t, "      ", Render(6, Spaces, 4))
	assert.Equal(t, "\t  ", Render(6, Tabs, 4))
	assert.Equal(t, "\t\t", Render(8, Tabs, 4))
	assert.Equal(t, "", Render(0, Tabs, 4))
	assert.Equal(t, "", Render(-2, Spaces, 4))
}

func TestRenderRoundTripsWidth(t *testing.T) {
	for cols := 0; cols < 20; cols++ {
		assert.Equal(t, cols, Width(Render(cols, Tabs, 4), 4))
		assert.Equal(t, cols, Width(Render(cols, Spaces, 4), 4))
	}
}
