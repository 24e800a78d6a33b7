package prompt

import "strings"

// keyLabels maps named keys to their conventional display form. Literal
// characters render as themselves.
var keyLabels = map[string]string{
	"enter":     "Enter",
	"esc":       "Esc",
	"tab":       "Tab",
	"space":     "Space",
	" ":         "Space",
	"backspace": "Backspace",
	"delete":    "Delete",
	"home":      "Home",
	"end":       "End",
	"pgup":      "PgUp",
	"pgdown":    "PgDn",
	"up":        "↑",
	"down":      "↓",
	"left":      "←",
	"right":     "→",
}

// FormatKey converts a key name into its human-readable label. Used both
// for the key list in the prompt text and for the help panel lines.
func FormatKey(key string) string {
	if label, ok := keyLabels[key]; ok {
		return label
	}
	if rest, ok := strings.CutPrefix(key, "ctrl+"); ok && rest != "" {
		return "Ctrl+" + strings.ToUpper(rest[:1]) + rest[1:]
	}
	return key
}

// FormatKeyList renders the visible key list for the prompt text, user
// options only.
func FormatKeyList(options []Option) string {
	labels := make([]string, len(options))
	for i, opt := range options {
		labels[i] = FormatKey(opt.Key)
	}
	return strings.Join(labels, ", ")
}

// PromptText renders the initial prompt line for a question: the question
// followed by the visible key list, plus the "? for help" clause when the
// implicit help option is active.
func PromptText(question string, options []Option, implicitHelp bool) string {
	text := question + " (" + FormatKeyList(options)
	if implicitHelp {
		text += ", or " + HelpKey + " for help"
	}
	return text + ") "
}

// ReminderText prepends one "Please answer ..." reminder to the current
// prompt text.
func ReminderText(keyList, promptText string) string {
	return "Please answer " + keyList + ". " + promptText
}
