// Package style holds the colors and glyphs shared by log lines and diagnostics.
package style

import "github.com/charmbracelet/lipgloss"

// Palette. Iris marks file locations; Slate is for codes, gutters and debug lines.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Log level glyphs, plus the underline drawn below a diagnostic's column.
const (
	Dot     = "●"
	Warning = "!"
	Cross   = "✗"
	Tilde   = "~"
)
