package prompt

import (
	"errors"
	"fmt"
	"time"
)

// Option binds one keystroke to the value Ask returns when it is pressed.
type Option struct {
	// Key is the key name as produced by the key reader: a literal
	// character such as "y", or a named key such as "enter" or "up".
	Key string
	// Value is handed back to the caller verbatim when Key is pressed.
	// It may be any value, including nil, false, zero or the empty string.
	Value any
	// Desc is the human-readable explanation shown in the help panel.
	Desc string
}

// Config holds the optional knobs for one Ask invocation.
type Config struct {
	// InheritInputMethod is passed through to the key reader. Readers
	// that support it deliver input-method composed characters as single
	// keys instead of raw bytes.
	InheritInputMethod bool

	// Timeout bounds each keystroke read. Zero waits forever.
	Timeout time.Duration

	// AlwaysShowHelp renders the help panel before every keystroke read.
	// The implicit "?" help option is not added, since help is already
	// visible.
	AlwaysShowHelp bool

	// HelpText overrides the first line of the help panel. Defaults to
	// the question itself.
	HelpText string

	// HelpSurface names the display surface the help panel is drawn on.
	// Defaults to DefaultHelpSurface.
	HelpSurface string
}

// ErrInvalidSpec reports a malformed prompt specification: an empty
// question, no options, or duplicate keys.
var ErrInvalidSpec = errors.New("invalid prompt specification")

// Errors surfaced by key readers. The prompt loop never swallows them; it
// cleans up its display state and hands them to the caller unchanged.
var (
	ErrTimeout     = errors.New("timed out waiting for a keystroke")
	ErrInterrupted = errors.New("interrupted")
)

// Validate checks a question and option set before a prompt loop starts.
func Validate(question string, options []Option) error {
	if question == "" {
		return fmt.Errorf("%w: question must not be empty", ErrInvalidSpec)
	}
	if len(options) == 0 {
		return fmt.Errorf("%w: at least one option is required", ErrInvalidSpec)
	}
	seen := make(map[string]bool, len(options))
	for _, opt := range options {
		if opt.Key == "" {
			return fmt.Errorf("%w: option %q has no key", ErrInvalidSpec, opt.Desc)
		}
		if seen[opt.Key] {
			return fmt.Errorf("%w: duplicate key %q", ErrInvalidSpec, opt.Key)
		}
		seen[opt.Key] = true
	}
	return nil
}

// lookup returns the first option matching key, or nil.
func lookup(options []Option, key string) *Option {
	for i := range options {
		if options[i].Key == key {
			return &options[i]
		}
	}
	return nil
}
