package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ohare93/keyprompt/internal/prompt"
)

type viewMode int

const (
	promptView viewMode = iota
	helpView
)

// keyMap declares the bindings the prompt itself owns, surfaced in the
// footer via bubbles/help. Answer keys come from the option set instead.
type keyMap struct {
	Help key.Binding
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Help, k.Quit}}
}

// Model drives one single-keystroke prompt as a full-screen program. The
// alternate screen doubles as the saved display context: whatever was on
// screen before the program started comes back when it exits.
type Model struct {
	question   string
	options    []prompt.Option
	cfg        prompt.Config
	keyList    string
	promptText string
	helpText   string

	mode   viewMode
	keys   keyMap
	footer help.Model

	width  int
	height int

	value    any
	answered bool
	err      error
}

// NewModel validates the prompt specification and builds the initial
// model.
func NewModel(question string, options []prompt.Option, cfg prompt.Config) (Model, error) {
	if err := prompt.Validate(question, options); err != nil {
		return Model{}, err
	}

	helpText := cfg.HelpText
	if helpText == "" {
		helpText = question
	}

	keys := keyMap{
		Help: key.NewBinding(
			key.WithKeys(prompt.HelpKey),
			key.WithHelp(prompt.HelpKey, "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "cancel"),
		),
	}
	// Help is already on screen permanently; "?" falls through to the
	// option lookup like any other key.
	if cfg.AlwaysShowHelp {
		keys.Help.SetEnabled(false)
	}

	return Model{
		question:   question,
		options:    options,
		cfg:        cfg,
		keyList:    prompt.FormatKeyList(options),
		promptText: prompt.PromptText(question, options, !cfg.AlwaysShowHelp),
		helpText:   helpText,
		keys:       keys,
		footer:     help.New(),
	}, nil
}

type timeoutMsg struct{}

func (m Model) Init() tea.Cmd {
	if m.cfg.Timeout > 0 {
		return tea.Tick(m.cfg.Timeout, func(time.Time) tea.Msg {
			return timeoutMsg{}
		})
	}
	return nil
}

// Value returns the chosen option's value and whether the prompt was
// answered at all.
func (m Model) Value() (any, bool) {
	return m.value, m.answered
}

// Err reports why the prompt ended without an answer.
func (m Model) Err() error {
	return m.err
}
