package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ohare93/keyprompt/internal/config"
)

type configReloadedMsg struct {
	cfg *config.Config
	err error
}

func reloadConfig(opts config.Options) tea.Cmd {
	return func() tea.Msg {
		cfg, err := config.LoadWithOptions(opts)
		return configReloadedMsg{cfg: cfg, err: err}
	}
}

type configChangedMsg struct{}

type watcherErrorMsg struct {
	err error
}

// listenForConfigEvents creates a command that waits for the next config
// watcher event.
func listenForConfigEvents(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-w.Events:
			return configChangedMsg{}
		case err := <-w.Errors:
			return watcherErrorMsg{err: err}
		}
	}
}
