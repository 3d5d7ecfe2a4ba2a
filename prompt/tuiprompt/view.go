// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package tuiprompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	answerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("255")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

func header(label, help string) string {
	s := labelStyle.Render("? " + label)
	if help != "" {
		s += " " + helpStyle.Render("("+help+")")
	}
	return s
}

// summary is the single line left behind once a prompt is answered.
func summary(label, answer string) string {
	return labelStyle.Render("? "+label) + " " + answerStyle.Render(answer) + "\n"
}

func (m textModel) View() string {
	switch {
	case m.cancelled:
		return summary(m.label, errorStyle.Render("cancelled"))
	case m.done:
		return summary(m.label, m.input.Value())
	}
	return header(m.label, m.help) + "\n" + m.input.View() + "\n" +
		helpStyle.Render("enter: accept • esc: cancel") + "\n"
}

func (m confirmModel) View() string {
	switch {
	case m.cancelled:
		return summary(m.label, errorStyle.Render("cancelled"))
	case m.done:
		return summary(m.label, yesNo(m.value))
	}

	yes, no := " Yes ", " No "
	if m.value {
		yes = selectedStyle.Render(yes)
	} else {
		no = selectedStyle.Render(no)
	}
	return header(m.label, m.help) + "\n" + yes + "  " + no + "\n" +
		helpStyle.Render("y/n: answer • ←/→: toggle • enter: accept • esc: cancel") + "\n"
}

func (m selectModel) View() string {
	switch {
	case m.cancelled:
		return summary(m.label, errorStyle.Render("cancelled"))
	case m.done:
		return summary(m.label, m.options[m.cursor].Name)
	}

	var b strings.Builder
	b.WriteString(header(m.label, "") + "\n")
	for i, opt := range m.options {
		line := fmt.Sprintf("%d) %s", i+1, opt.Name)
		if i == m.cursor {
			b.WriteString("> " + selectedStyle.Render(line))
		} else {
			b.WriteString("  " + line)
		}
		if opt.Description != "" {
			b.WriteString(helpStyle.Render(" - " + opt.Description))
		}
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("↑/↓: move • 1-9: pick • enter: accept • esc: cancel") + "\n")
	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
