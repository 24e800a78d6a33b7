package cli

import "github.com/charmbracelet/lipgloss"

// Consistent color scheme for CLI output
var (
	StyleHighlight = lipgloss.NewStyle().Bold(true)
	StyleDim       = lipgloss.NewStyle().Foreground(lipgloss.Color("8")) // Gray
	StyleError     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")) // Red
)
