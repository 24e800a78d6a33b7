package prompt

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// scriptedReader replays a fixed key sequence and records every prompt
// text it was shown. Once the script runs out it returns errAfter (or
// ErrTimeout by default).
type scriptedReader struct {
	keys     []string
	errAfter error
	prompts  []string
	reads    int
}

func (r *scriptedReader) ReadKey(promptText string, opts ReadOptions) (string, error) {
	r.prompts = append(r.prompts, promptText)
	if r.reads >= len(r.keys) {
		if r.errAfter != nil {
			return "", r.errAfter
		}
		return "", ErrTimeout
	}
	key := r.keys[r.reads]
	r.reads++
	return key, nil
}

type fakeSurface struct {
	name   string
	shows  []string
	closes int
}

func (s *fakeSurface) Show(text string) error {
	s.shows = append(s.shows, text)
	return nil
}

func (s *fakeSurface) Close() error {
	s.closes++
	return nil
}

type fakeDisplay struct {
	surfaces map[string]*fakeSurface
	created  []string
	captures int
	restores int
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{surfaces: make(map[string]*fakeSurface)}
}

func (d *fakeDisplay) Surface(name string) (Surface, error) {
	if s, ok := d.surfaces[name]; ok {
		return s, nil
	}
	s := &fakeSurface{name: name}
	d.surfaces[name] = s
	d.created = append(d.created, name)
	return s, nil
}

func (d *fakeDisplay) Capture() (Context, error) {
	d.captures++
	return &fakeContext{display: d}, nil
}

type fakeContext struct {
	display *fakeDisplay
}

func (c *fakeContext) Restore() error {
	c.display.restores++
	return nil
}

func yesNoOptions() []Option {
	return []Option{
		{Key: "y", Value: true, Desc: "Yes"},
		{Key: "n", Value: false, Desc: "No"},
	}
}

func TestAskReturnsMatchedValue(t *testing.T) {
	reader := &scriptedReader{keys: []string{"y"}}
	prompter := New(reader, newFakeDisplay())

	value, err := prompter.Ask("Save changes?", yesNoOptions(), Config{})
	if err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
	if value != true {
		t.Errorf("expected true, got %v", value)
	}

	wantPrompt := "Save changes? (y, n, or ? for help) "
	if reader.prompts[0] != wantPrompt {
		t.Errorf("initial prompt = %q, want %q", reader.prompts[0], wantPrompt)
	}
}

func TestAskReturnsFalsyValues(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"nil", nil},
		{"false", false},
		{"empty string", ""},
		{"zero", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options := []Option{{Key: "a", Value: tt.value, Desc: "A"}}
			reader := &scriptedReader{keys: []string{"a"}}
			prompter := New(reader, newFakeDisplay())

			value, err := prompter.Ask("Pick one", options, Config{})
			if err != nil {
				t.Fatalf("Ask returned error: %v", err)
			}
			if value != tt.value {
				t.Errorf("expected %v, got %v", tt.value, value)
			}
			if reader.reads != 1 {
				t.Errorf("expected exactly one read, got %d", reader.reads)
			}
		})
	}
}

func TestAskReminderCompounds(t *testing.T) {
	reader := &scriptedReader{keys: []string{"x", "z", "y"}}
	prompter := New(reader, newFakeDisplay())

	value, err := prompter.Ask("Save changes?", yesNoOptions(), Config{})
	if err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
	if value != true {
		t.Errorf("expected true, got %v", value)
	}

	wantPrompts := []string{
		"Save changes? (y, n, or ? for help) ",
		"Please answer y, n. Save changes? (y, n, or ? for help) ",
		"Please answer y, n. Please answer y, n. Save changes? (y, n, or ? for help) ",
	}
	if len(reader.prompts) != len(wantPrompts) {
		t.Fatalf("expected %d reads, got %d", len(wantPrompts), len(reader.prompts))
	}
	for i, want := range wantPrompts {
		if reader.prompts[i] != want {
			t.Errorf("prompt %d = %q, want %q", i, reader.prompts[i], want)
		}
	}
}

func TestAskHelpKeyRendersHelpAndContinues(t *testing.T) {
	reader := &scriptedReader{keys: []string{"?", "n"}}
	display := newFakeDisplay()
	prompter := New(reader, display)

	value, err := prompter.Ask("Save changes?", yesNoOptions(), Config{})
	if err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
	if value != false {
		t.Errorf("expected false, got %v", value)
	}

	surface := display.surfaces[DefaultHelpSurface]
	if surface == nil {
		t.Fatal("expected a help surface to be created")
	}
	if len(surface.shows) != 1 {
		t.Errorf("expected one help render, got %d", len(surface.shows))
	}
	for _, line := range []string{"y - Yes", "n - No"} {
		if !strings.Contains(surface.shows[0], line) {
			t.Errorf("help panel missing %q:\n%s", line, surface.shows[0])
		}
	}

	// Help is not an answer: the reminder still compounds.
	want := "Please answer y, n. Save changes? (y, n, or ? for help) "
	if reader.prompts[1] != want {
		t.Errorf("prompt after help = %q, want %q", reader.prompts[1], want)
	}
}

func TestAskRepeatedHelpReusesSurface(t *testing.T) {
	reader := &scriptedReader{keys: []string{"?", "?", "y"}}
	display := newFakeDisplay()
	prompter := New(reader, display)

	if _, err := prompter.Ask("Save changes?", yesNoOptions(), Config{}); err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}

	if len(display.created) != 1 {
		t.Errorf("expected one surface, got %d (%v)", len(display.created), display.created)
	}
	surface := display.surfaces[DefaultHelpSurface]
	if len(surface.shows) != 2 {
		t.Errorf("expected two help renders, got %d", len(surface.shows))
	}
	if surface.closes != 1 {
		t.Errorf("expected surface closed exactly once, got %d", surface.closes)
	}
}

func TestAskAlwaysShowHelp(t *testing.T) {
	reader := &scriptedReader{keys: []string{"?", "y"}}
	display := newFakeDisplay()
	prompter := New(reader, display)

	value, err := prompter.Ask("Save changes?", yesNoOptions(), Config{AlwaysShowHelp: true})
	if err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
	if value != true {
		t.Errorf("expected true, got %v", value)
	}

	// No implicit "?" option: the keystroke is simply not found and the
	// prompt text carries no help clause.
	wantPrompts := []string{
		"Save changes? (y, n) ",
		"Please answer y, n. Save changes? (y, n) ",
	}
	for i, want := range wantPrompts {
		if reader.prompts[i] != want {
			t.Errorf("prompt %d = %q, want %q", i, reader.prompts[i], want)
		}
	}

	// Help renders before every read.
	surface := display.surfaces[DefaultHelpSurface]
	if surface == nil {
		t.Fatal("expected a help surface to be created")
	}
	if len(surface.shows) != 2 {
		t.Errorf("expected help rendered before each of 2 reads, got %d", len(surface.shows))
	}
}

func TestAskCleanupOnSuccess(t *testing.T) {
	reader := &scriptedReader{keys: []string{"?", "y"}}
	display := newFakeDisplay()
	prompter := New(reader, display)

	if _, err := prompter.Ask("Save changes?", yesNoOptions(), Config{}); err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}

	if display.captures != 1 || display.restores != 1 {
		t.Errorf("expected 1 capture / 1 restore, got %d / %d", display.captures, display.restores)
	}
	if display.surfaces[DefaultHelpSurface].closes != 1 {
		t.Errorf("expected help surface closed once, got %d", display.surfaces[DefaultHelpSurface].closes)
	}
}

func TestAskCleanupOnReaderError(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"timeout", ErrTimeout},
		{"interrupt", ErrInterrupted},
		{"other", fmt.Errorf("tty went away")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := &scriptedReader{keys: []string{"?"}, errAfter: tt.err}
			display := newFakeDisplay()
			prompter := New(reader, display)

			_, err := prompter.Ask("Save changes?", yesNoOptions(), Config{})
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected error %v, got %v", tt.err, err)
			}
			if display.captures != 1 || display.restores != 1 {
				t.Errorf("expected 1 capture / 1 restore, got %d / %d", display.captures, display.restores)
			}
			if display.surfaces[DefaultHelpSurface].closes != 1 {
				t.Errorf("expected help surface closed once, got %d",
					display.surfaces[DefaultHelpSurface].closes)
			}
		})
	}
}

func TestAskTimeoutBeforeAnyHelp(t *testing.T) {
	reader := &scriptedReader{}
	display := newFakeDisplay()
	prompter := New(reader, display)

	_, err := prompter.Ask("Save changes?", yesNoOptions(), Config{})
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
	if len(display.created) != 0 {
		t.Errorf("expected no surfaces, got %v", display.created)
	}
	if display.restores != 1 {
		t.Errorf("expected display context restored once, got %d", display.restores)
	}
}

func TestAskInvalidSpec(t *testing.T) {
	tests := []struct {
		name     string
		question string
		options  []Option
	}{
		{"empty question", "", yesNoOptions()},
		{"no options", "Save changes?", nil},
		{"duplicate keys", "Save changes?", []Option{
			{Key: "y", Value: 1, Desc: "One"},
			{Key: "y", Value: 2, Desc: "Two"},
		}},
		{"keyless option", "Save changes?", []Option{{Value: 1, Desc: "One"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := &scriptedReader{keys: []string{"y"}}
			display := newFakeDisplay()
			prompter := New(reader, display)

			_, err := prompter.Ask(tt.question, tt.options, Config{})
			if !errors.Is(err, ErrInvalidSpec) {
				t.Fatalf("expected ErrInvalidSpec, got %v", err)
			}
			if reader.reads != 0 {
				t.Errorf("loop was entered: %d reads", reader.reads)
			}
			if display.captures != 0 || len(display.created) != 0 {
				t.Errorf("display was touched: %d captures, surfaces %v",
					display.captures, display.created)
			}
		})
	}
}

func TestAskImplicitHelpShadowsUserQuestionMark(t *testing.T) {
	options := []Option{
		{Key: "y", Value: true, Desc: "Yes"},
		{Key: "?", Value: "user-help", Desc: "User-supplied help"},
	}
	reader := &scriptedReader{keys: []string{"?", "y"}}
	display := newFakeDisplay()
	prompter := New(reader, display)

	value, err := prompter.Ask("Proceed?", options, Config{})
	if err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
	if value != true {
		t.Errorf("expected true, got %v", value)
	}
	if len(display.created) != 1 {
		t.Errorf("expected implicit help to win the key clash, surfaces: %v", display.created)
	}
}

func TestAskUserQuestionMarkWhenHelpForced(t *testing.T) {
	options := []Option{
		{Key: "y", Value: true, Desc: "Yes"},
		{Key: "?", Value: "user-help", Desc: "User-supplied help"},
	}
	reader := &scriptedReader{keys: []string{"?"}}
	prompter := New(reader, newFakeDisplay())

	value, err := prompter.Ask("Proceed?", options, Config{AlwaysShowHelp: true})
	if err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
	if value != "user-help" {
		t.Errorf("expected user option to match, got %v", value)
	}
}

func TestAskCustomHelpTextAndSurface(t *testing.T) {
	reader := &scriptedReader{keys: []string{"?", "y"}}
	display := newFakeDisplay()
	prompter := New(reader, display)

	cfg := Config{HelpText: "Pick wisely.", HelpSurface: "my-surface"}
	if _, err := prompter.Ask("Save changes?", yesNoOptions(), cfg); err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}

	surface := display.surfaces["my-surface"]
	if surface == nil {
		t.Fatalf("expected surface %q, got %v", "my-surface", display.created)
	}
	if !strings.HasPrefix(surface.shows[0], "Pick wisely.\n\n") {
		t.Errorf("help panel does not start with custom help text:\n%s", surface.shows[0])
	}
}

func TestAskDefaultHelpTextIsQuestion(t *testing.T) {
	reader := &scriptedReader{keys: []string{"?", "y"}}
	display := newFakeDisplay()
	prompter := New(reader, display)

	if _, err := prompter.Ask("Save changes?", yesNoOptions(), Config{}); err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}

	surface := display.surfaces[DefaultHelpSurface]
	if !strings.HasPrefix(surface.shows[0], "Save changes?\n\n") {
		t.Errorf("help panel does not start with the question:\n%s", surface.shows[0])
	}
}

func TestAskPassesReadOptionsThrough(t *testing.T) {
	recorded := ReadOptions{}
	reader := &optionRecordingReader{recorded: &recorded}
	prompter := New(reader, newFakeDisplay())

	cfg := Config{InheritInputMethod: true, Timeout: 5e9}
	if _, err := prompter.Ask("Save changes?", yesNoOptions(), cfg); err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
	if !recorded.InheritInputMethod {
		t.Error("InheritInputMethod not passed through")
	}
	if recorded.Timeout != 5e9 {
		t.Errorf("Timeout = %v, want 5s", recorded.Timeout)
	}
}

type optionRecordingReader struct {
	recorded *ReadOptions
}

func (r *optionRecordingReader) ReadKey(promptText string, opts ReadOptions) (string, error) {
	*r.recorded = opts
	return "y", nil
}
