package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette shared with the converter TUI
var (
	colorPrimary = lipgloss.Color("#8B5CF6") // Violet
	colorSuccess = lipgloss.Color("#10B981") // Emerald
	colorError   = lipgloss.Color("#EF4444") // Red
	colorMuted   = lipgloss.Color("#94A3B8") // Slate 400
)

var (
	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	okStyle = lipgloss.NewStyle().
		Foreground(colorSuccess).
		Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(14)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)
)
