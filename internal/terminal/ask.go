package terminal

import (
	"github.com/ohare93/keyprompt/internal/prompt"
)

// Ask runs a single-keystroke prompt against the real terminal.
func Ask(question string, options []prompt.Option, cfg prompt.Config) (any, error) {
	return prompt.New(NewReader(), NewDisplay()).Ask(question, options, cfg)
}

// Confirm displays a yes/no prompt and waits for a single keypress.
// Returns true for 'y', false for 'n', or an error on Ctrl+C.
func Confirm(question string) (bool, error) {
	value, err := Ask(question, []prompt.Option{
		{Key: "y", Value: true, Desc: "Yes"},
		{Key: "n", Value: false, Desc: "No"},
	}, prompt.Config{})
	if err != nil {
		return false, err
	}
	return value.(bool), nil
}
