package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ohare93/keyprompt/internal/prompt"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.footer.Width = msg.Width
		return m, nil

	case timeoutMsg:
		m.err = prompt.ErrTimeout
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.err = prompt.ErrInterrupted
		return m, tea.Quit
	}

	// The implicit help key sits in front of the options, so it wins a
	// clash with a user-supplied "?" option. Help is not an answer: like
	// any other non-answer keystroke it compounds the reminder.
	if key.Matches(msg, m.keys.Help) {
		if m.mode == helpView {
			m.mode = promptView
		} else {
			m.mode = helpView
		}
		m.promptText = prompt.ReminderText(m.keyList, m.promptText)
		return m, nil
	}

	pressed := msg.String()
	for i := range m.options {
		if m.options[i].Key == pressed {
			m.value = m.options[i].Value
			m.answered = true
			return m, tea.Quit
		}
	}

	m.promptText = prompt.ReminderText(m.keyList, m.promptText)
	return m, nil
}
