package timer

import "github.com/charmbracelet/lipgloss"

// Style holds the lipgloss styles used by the timer view.
type Style struct {
	Base    lipgloss.Style
	Project lipgloss.Style
	Elapsed lipgloss.Style
	Paused  lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Hint    lipgloss.Style
}

const padding = 2

// NewStyle returns the timer styles for a dark or light terminal.
func NewStyle(dark bool) Style {
	main := lipgloss.Color("#B0DB43")
	accent := lipgloss.Color("#12EAEA")
	muted := lipgloss.Color("#7D7D7D")

	if !dark {
		main = lipgloss.Color("#3A7D00")
		accent = lipgloss.Color("#00707A")
		muted = lipgloss.Color("#5A5A5A")
	}

	return Style{
		Base:    lipgloss.NewStyle().Padding(1, padding),
		Project: lipgloss.NewStyle().Bold(true).Foreground(accent),
		Elapsed: lipgloss.NewStyle().Bold(true).Foreground(main),
		Paused:  lipgloss.NewStyle().Foreground(lipgloss.Color("#C492B1")).MarginLeft(1),
		Info:    lipgloss.NewStyle().Foreground(accent),
		Success: lipgloss.NewStyle().Foreground(main),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		Hint:    lipgloss.NewStyle().Foreground(muted),
	}
}
