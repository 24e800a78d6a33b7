package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("6"))

	keyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("6"))

	promptStyle = lipgloss.NewStyle().
		Bold(true)

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(lipgloss.Color("240")).
		Bold(true)

	itemStyle = lipgloss.NewStyle().
		Padding(0, 1)

	messageStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("2")).
		Bold(true)

	errorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("1")).
		Bold(true)

	helpStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("8"))
)
