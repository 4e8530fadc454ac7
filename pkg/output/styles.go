package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Adaptive colours follow the terminal's light or dark background.
var (
	colorAccent  = lipgloss.AdaptiveColor{Light: "#5A3E9B", Dark: "#B79CFF"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#1E7B34", Dark: "#5FD787"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#9E9E9E"}
	colorWarn    = lipgloss.AdaptiveColor{Light: "#A15C00", Dark: "#FFAF5F"}
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginBottom(1)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	warnStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorWarn)
)
