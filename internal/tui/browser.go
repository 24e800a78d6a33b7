package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ohare93/keyprompt/internal/config"
	"github.com/ohare93/keyprompt/internal/prompt"
)

// BrowserModel is an interactive list of the configured presets with a
// live preview of how each prompt will look. When a config watcher is
// attached, edits to the config file show up without restarting.
type BrowserModel struct {
	opts    config.Options
	cfg     *config.Config
	names   []string
	cursor  int
	watcher *config.Watcher

	message string
	err     error
	width   int
	height  int
}

// NewBrowserModel creates a browser over the given config. The watcher
// may be nil; reloads then only happen on demand.
func NewBrowserModel(cfg *config.Config, opts config.Options, w *config.Watcher) BrowserModel {
	return BrowserModel{
		opts:    opts,
		cfg:     cfg,
		names:   cfg.PresetNames(),
		watcher: w,
	}
}

func (m BrowserModel) Init() tea.Cmd {
	if m.watcher != nil {
		return listenForConfigEvents(m.watcher)
	}
	return nil
}

func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case configChangedMsg:
		cmds := []tea.Cmd{reloadConfig(m.opts)}
		if m.watcher != nil {
			cmds = append(cmds, listenForConfigEvents(m.watcher))
		}
		return m, tea.Batch(cmds...)

	case watcherErrorMsg:
		m.err = msg.err
		return m, nil

	case configReloadedMsg:
		if msg.err != nil {
			m.message = fmt.Sprintf("Reload failed: %v", msg.err)
			return m, nil
		}
		m.cfg = msg.cfg
		m.names = msg.cfg.PresetNames()
		if m.cursor >= len(m.names) {
			m.cursor = len(m.names) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.message = "Presets reloaded"
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.message = ""
			}
			return m, nil

		case "down", "j":
			if m.cursor < len(m.names)-1 {
				m.cursor++
				m.message = ""
			}
			return m, nil

		case "r":
			return m, reloadConfig(m.opts)
		}
	}
	return m, nil
}

func (m BrowserModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Keyprompt Presets") + "\n\n")

	if len(m.names) == 0 {
		b.WriteString(helpStyle.Render("No presets configured in "+m.cfg.Path()) + "\n")
	}

	for i, name := range m.names {
		preset := m.cfg.Presets[name]
		line := fmt.Sprintf("%-20s %s", name, preset.Question)
		if i == m.cursor {
			line = selectedStyle.Render(line)
		} else {
			line = itemStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	if preview := m.renderPreview(); preview != "" {
		b.WriteString("\n" + preview + "\n")
	}

	if m.message != "" {
		b.WriteString("\n" + messageStyle.Render(m.message) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("↑/k up • ↓/j down • r reload • q quit"))

	return b.String()
}

// renderPreview shows the selected preset the way the prompt loop will:
// the live prompt line plus the help panel.
func (m BrowserModel) renderPreview() string {
	if m.cursor >= len(m.names) {
		return ""
	}
	preset := m.cfg.Presets[m.names[m.cursor]]
	options := preset.PromptOptions()

	helpText := preset.HelpText
	if helpText == "" {
		helpText = preset.Question
	}

	var b strings.Builder
	b.WriteString(promptStyle.Render(
		prompt.PromptText(preset.Question, options, !preset.AlwaysShowHelp)) + "\n\n")
	b.WriteString(panelStyle.Render(prompt.RenderHelp(helpText, options)))
	return b.String()
}
