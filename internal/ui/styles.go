package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/dominant"
)

var (
	// Colors
	ColorPrimary   = lipgloss.Color("205") // Pink
	ColorSecondary = lipgloss.Color("241") // Gray
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorError     = lipgloss.Color("160") // Red
	ColorWarning   = lipgloss.Color("214") // Orange/Yellow
	ColorText      = lipgloss.Color("252") // White/Gray
	ColorCyan      = lipgloss.Color("87")  // Cyan for meetings
	ColorInk       = lipgloss.Color("#111827")

	// Base Styles
	StyleTitle   = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	StyleSubtle  = lipgloss.NewStyle().Foreground(ColorSecondary)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)

	// Components
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Padding(0, 1)

	// Calendar
	StyleWeekday = lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true)
	StyleOutside = lipgloss.NewStyle().Foreground(ColorSecondary).Faint(true)
	StyleToday   = lipgloss.NewStyle().Underline(true).Bold(true)
)

// Icon returns a styled icon string
func Icon(icon string, style lipgloss.Style) string {
	return style.Render(icon)
}

// HexStyle colors text with a hex palette entry.
func HexStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

// ShadeStyle paints a calendar cell with a day's dominant status.
// Empty days keep the terminal background.
func ShadeStyle(s dominant.Shade) lipgloss.Style {
	if s.None {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(s.Color)).Foreground(ColorInk)
}

// ProgressBar draws percent (0-100) as a bar of width cells.
func ProgressBar(percent, width int) string {
	if width <= 0 {
		return ""
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	style := StyleWarning
	if percent >= 100 {
		style = StyleSuccess
	}
	return style.Render(strings.Repeat("█", filled)) + StyleSubtle.Render(strings.Repeat("░", width-filled))
}
