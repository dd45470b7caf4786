// Package ui provides terminal output helpers for the droidgen CLI: a
// color theme, spinners and progress bars that degrade to plain log lines
// when no TTY is attached, and markdown rendering.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Colors holds the hex colors of a Theme.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
}

// Theme bundles colors and the styles derived from them.
type Theme struct {
	Colors  Colors
	NoColor bool

	Title   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

// NewTheme returns the droidgen theme. With noColor set every style renders
// plain text.
func NewTheme(noColor bool) *Theme {
	t := &Theme{
		Colors: Colors{
			Primary:   "#3DDC84",
			Secondary: "#4285F4",
			Success:   "#10B981",
			Warning:   "#F59E0B",
			Error:     "#EF4444",
			Muted:     "#9CA3AF",
		},
		NoColor: noColor,
	}
	if noColor {
		plain := lipgloss.NewStyle()
		t.Title, t.Success, t.Warning, t.Error, t.Muted = plain, plain, plain, plain, plain
		return t
	}
	t.Title = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Primary)).Bold(true)
	t.Success = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Success))
	t.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Warning))
	t.Error = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Error))
	t.Muted = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Muted))
	return t
}

// NoColorRequested reports whether the NO_COLOR convention is in effect.
func NoColorRequested() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}
