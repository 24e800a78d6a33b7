package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ohare93/keyprompt/internal/prompt"
)

// Run executes the prompt as a full-screen program and returns the chosen
// option's value. The alternate screen is restored on every exit path,
// including cancellation and timeout.
func Run(question string, options []prompt.Option, cfg prompt.Config) (any, error) {
	m, err := NewModel(question, options, cfg)
	if err != nil {
		return nil, err
	}

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}

	fm := final.(Model)
	if fm.Err() != nil {
		return nil, fm.Err()
	}
	value, answered := fm.Value()
	if !answered {
		return nil, prompt.ErrInterrupted
	}
	return value, nil
}
