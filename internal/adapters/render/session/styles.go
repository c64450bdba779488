package session

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	clock      lipgloss.Style
	clockLow   lipgloss.Style
	warning    lipgloss.Style
	checking   lipgloss.Style
	remote     lipgloss.Style
	muted      lipgloss.Style
	dialog     lipgloss.Style
	dialogKey  lipgloss.Style
	help       lipgloss.Style
	doneBanner lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		clock:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		clockLow:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		warning:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		checking:   lipgloss.NewStyle().Faint(true),
		remote:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		muted:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		dialog:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
		dialogKey:  lipgloss.NewStyle().Bold(true),
		help:       lipgloss.NewStyle().Faint(true),
		doneBanner: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("76")),
	}
}
