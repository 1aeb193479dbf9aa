package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Toast    lipgloss.Style

	Rail     lipgloss.Style
	Fill     lipgloss.Style
	Selected lipgloss.Style
	Handle   lipgloss.Style
	Active   lipgloss.Style
	Tick     lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(0, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Toast: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),

		Rail:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Fill:     lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Handle:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Active:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Tick:     lipgloss.NewStyle().Faint(true),
	}
}
