package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"empty", "", 10, ""},
		{"short string", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"needs truncation", "hello world", 8, "hello w…"},
		{"one", "hello", 1, "h"},
		{"zero max", "hello", 0, "hello"},
		{"multibyte", "Überprüfung", 5, "Über…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Truncate(tt.input, tt.maxLen))
		})
	}
}

func TestPanel_Render(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	out := NewPanel("Tasks", "Total 3").WithBorderColor(ColorCyan).WithWidth(30).Render()
	assert.Contains(t, out, "Tasks")
	assert.Contains(t, out, "Total 3")
	assert.True(t, strings.HasPrefix(out, "╭"))
}

func TestRenderPageHeader(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	var buf bytes.Buffer
	RenderPageHeader(&buf, "Agenda", "2024-03-05")
	assert.Contains(t, buf.String(), "Agenda")
	assert.Contains(t, buf.String(), "2024-03-05")
}
