package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ohare93/keyprompt/internal/config"
)

func testBrowserConfig() *config.Config {
	return &config.Config{Presets: map[string]config.Preset{
		"deploy": {
			Question: "Deploy to production?",
			Options: []config.OptionSpec{
				{Key: "y", Value: "yes", Description: "Ship it"},
				{Key: "n", Value: "no", Description: "Hold off"},
			},
		},
		"save": {
			Question: "Save changes?",
			Options: []config.OptionSpec{
				{Key: "y", Value: "yes", Description: "Yes"},
				{Key: "n", Value: "no", Description: "No"},
			},
		},
	}}
}

func TestBrowserNavigation(t *testing.T) {
	m := NewBrowserModel(testBrowserConfig(), config.Options{}, nil)

	if m.cursor != 0 {
		t.Fatalf("expected cursor at 0, got %d", m.cursor)
	}

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	result := newModel.(BrowserModel)
	if result.cursor != 1 {
		t.Errorf("expected cursor at 1 after j, got %d", result.cursor)
	}

	// Bottom of the list: stays put.
	newModel, _ = result.Update(tea.KeyMsg{Type: tea.KeyDown})
	result = newModel.(BrowserModel)
	if result.cursor != 1 {
		t.Errorf("expected cursor clamped at 1, got %d", result.cursor)
	}

	newModel, _ = result.Update(tea.KeyMsg{Type: tea.KeyUp})
	result = newModel.(BrowserModel)
	if result.cursor != 0 {
		t.Errorf("expected cursor back at 0, got %d", result.cursor)
	}
}

func TestBrowserQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		m := NewBrowserModel(testBrowserConfig(), config.Options{}, nil)
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Errorf("expected %v to quit", msg)
			continue
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("expected %v to produce tea.Quit", msg)
		}
	}
}

func TestBrowserConfigReload(t *testing.T) {
	m := NewBrowserModel(testBrowserConfig(), config.Options{}, nil)

	reloaded := &config.Config{Presets: map[string]config.Preset{
		"only": {
			Question: "Only one left?",
			Options: []config.OptionSpec{
				{Key: "y", Value: "yes", Description: "Yes"},
			},
		},
	}}

	// Cursor sits past the end of the shrunk list and must be clamped.
	m.cursor = 1
	newModel, _ := m.Update(configReloadedMsg{cfg: reloaded})
	result := newModel.(BrowserModel)

	if len(result.names) != 1 || result.names[0] != "only" {
		t.Errorf("expected reloaded names, got %v", result.names)
	}
	if result.cursor != 0 {
		t.Errorf("expected cursor clamped to 0, got %d", result.cursor)
	}
	if result.message == "" {
		t.Error("expected a reload message")
	}
}

func TestBrowserReloadFailureKeepsPresets(t *testing.T) {
	m := NewBrowserModel(testBrowserConfig(), config.Options{}, nil)

	newModel, _ := m.Update(configReloadedMsg{err: errFake})
	result := newModel.(BrowserModel)

	if len(result.names) != 2 {
		t.Errorf("expected presets to survive a failed reload, got %v", result.names)
	}
	if !strings.Contains(result.message, "Reload failed") {
		t.Errorf("expected a failure message, got %q", result.message)
	}
}

var errFake = &fakeError{}

type fakeError struct{}

func (*fakeError) Error() string { return "fake error" }

func TestBrowserViewShowsPreview(t *testing.T) {
	m := NewBrowserModel(testBrowserConfig(), config.Options{}, nil)
	view := m.View()

	for _, want := range []string{
		"deploy",
		"save",
		"Deploy to production? (y, n, or ? for help)",
		"y - Ship it",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestBrowserViewEmptyConfig(t *testing.T) {
	m := NewBrowserModel(&config.Config{Presets: map[string]config.Preset{}}, config.Options{}, nil)
	if !strings.Contains(m.View(), "No presets configured") {
		t.Error("expected an empty-state message")
	}
}
