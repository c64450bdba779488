package verify

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	ok      lipgloss.Style
	bad     lipgloss.Style
	pending lipgloss.Style
	detail  lipgloss.Style
	help    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		ok:      lipgloss.NewStyle().Foreground(lipgloss.Color("76")),
		bad:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		pending: lipgloss.NewStyle().Faint(true),
		detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		help:    lipgloss.NewStyle().Faint(true),
	}
}
