package prompt

import "strings"

// helpFooter invites the user back to the prompt after reading the panel.
const helpFooter = "Press one of the keys above to answer."

// RenderHelp produces the plain-text help panel: the help text, a blank
// line, one "<key> - <description>" line per option, a trailing blank
// line and the footer. Pure formatting; showing the result on a surface
// is the caller's job.
func RenderHelp(helpText string, options []Option) string {
	var b strings.Builder
	b.WriteString(helpText)
	b.WriteString("\n\n")
	for _, opt := range options {
		b.WriteString(FormatKey(opt.Key))
		b.WriteString(" - ")
		b.WriteString(opt.Desc)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpFooter)
	return b.String()
}
