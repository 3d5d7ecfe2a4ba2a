// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package lineprompt

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	mark   lipgloss.Style
	label  lipgloss.Style
	hint   lipgloss.Style
	option lipgloss.Style
	err    lipgloss.Style
}

// newStyles returns colored styles bound to out, or plain ones.
func newStyles(out io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(out)
	if !color {
		plain := r.NewStyle()
		return styles{mark: plain, label: plain, hint: plain, option: plain, err: plain}
	}
	return styles{
		mark:   r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		label:  r.NewStyle().Bold(true),
		hint:   r.NewStyle().Foreground(lipgloss.Color("241")),
		option: r.NewStyle().Foreground(lipgloss.Color("205")),
		err:    r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

// question renders "? label (help)".
func (s styles) question(label, help string) string {
	q := s.mark.Render("?") + " " + s.label.Render(label)
	if help != "" {
		q += " " + s.hint.Render("("+help+")")
	}
	return q
}
