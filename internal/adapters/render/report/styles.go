package report

import "github.com/charmbracelet/lipgloss"

type styles struct {
	prefix  lipgloss.Style
	message lipgloss.Style
	hint    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		prefix:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		message: r.NewStyle().Foreground(lipgloss.Color("252")),
		hint:    r.NewStyle().Faint(true),
	}
}
