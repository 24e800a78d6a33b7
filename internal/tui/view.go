package tui

import (
	"fmt"
	"strings"

	"github.com/ohare93/keyprompt/internal/prompt"
)

func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}

	var b strings.Builder

	title := titleStyle.Render(m.question)
	b.WriteString(title + "\n\n")

	for _, opt := range m.options {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			keyStyle.Render(prompt.FormatKey(opt.Key)), opt.Desc))
	}

	b.WriteString("\n" + promptStyle.Render(m.promptText) + "\n")

	if m.cfg.AlwaysShowHelp || m.mode == helpView {
		b.WriteString("\n" + panelStyle.Render(prompt.RenderHelp(m.helpText, m.options)) + "\n")
	}

	b.WriteString("\n" + m.footer.View(m.keys))

	return b.String()
}
