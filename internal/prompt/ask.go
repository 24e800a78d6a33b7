package prompt

import (
	"fmt"
)

// HelpKey is the implicit key that opens the help panel when help is not
// already visible.
const HelpKey = "?"

// DefaultHelpSurface is the surface name used for the help panel when the
// caller does not pick one.
const DefaultHelpSurface = "keyprompt-help"

// sentinel values are compared by identity, so no caller-supplied answer
// value, however empty or false-looking, can collide with them.
type sentinel struct {
	name string
}

var (
	notFound      = &sentinel{"not found"}
	helpRequested = &sentinel{"help requested"}
)

// Prompter runs single-keystroke prompts against a key reader and a
// display. Both collaborators are injected so the loop can be exercised
// without a terminal.
type Prompter struct {
	reader  KeyReader
	display Display
}

// New creates a Prompter from a key reader and a display.
func New(reader KeyReader, display Display) *Prompter {
	return &Prompter{reader: reader, display: display}
}

// Ask shows question with the given options and blocks until the user
// presses a key belonging to one of them, then returns that option's
// value. Unknown keystrokes never terminate the loop; each one prepends a
// "Please answer ..." reminder to the prompt text. Pressing "?" renders
// the help panel unless cfg.AlwaysShowHelp already keeps it on screen.
//
// Whatever the display showed before Ask began is restored on every exit
// path, including timeouts and interrupts propagating out of the reader.
func (p *Prompter) Ask(question string, options []Option, cfg Config) (value any, err error) {
	if err := Validate(question, options); err != nil {
		return nil, err
	}

	keyList := FormatKeyList(options)
	promptText := PromptText(question, options, !cfg.AlwaysShowHelp)

	helpText := cfg.HelpText
	if helpText == "" {
		helpText = question
	}
	surfaceName := cfg.HelpSurface
	if surfaceName == "" {
		surfaceName = DefaultHelpSurface
	}

	saved, err := p.display.Capture()
	if err != nil {
		return nil, fmt.Errorf("failed to capture display context: %w", err)
	}
	var help Surface
	defer func() {
		if help != nil {
			if cerr := help.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}
		if rerr := saved.Restore(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	showHelp := func() error {
		if help == nil {
			s, serr := p.display.Surface(surfaceName)
			if serr != nil {
				return fmt.Errorf("failed to open help surface: %w", serr)
			}
			help = s
		}
		return help.Show(RenderHelp(helpText, options))
	}

	readOpts := ReadOptions{
		InheritInputMethod: cfg.InheritInputMethod,
		Timeout:            cfg.Timeout,
	}

	current := any(notFound)
	for current == notFound {
		if cfg.AlwaysShowHelp {
			if err := showHelp(); err != nil {
				return nil, err
			}
		}

		key, err := p.reader.ReadKey(promptText, readOpts)
		if err != nil {
			return nil, err
		}

		// The implicit help option sits in front of the user options, so
		// it wins a key clash with a user-supplied "?" option.
		if !cfg.AlwaysShowHelp && key == HelpKey {
			current = helpRequested
		} else if opt := lookup(options, key); opt != nil {
			current = opt.Value
		}

		if current == helpRequested {
			if err := showHelp(); err != nil {
				return nil, err
			}
			current = notFound
		}
		if current == notFound {
			// Deliberately compounds: the reminder is prepended to the
			// current prompt text, not a pristine copy, so N mistakes
			// produce N repetitions.
			promptText = ReminderText(keyList, promptText)
		}
	}
	return current, nil
}
