package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorShell  = lipgloss.Color("#f5e6c8")
	colorCrack  = lipgloss.Color("#c08a3e")
	colorAccent = lipgloss.Color("#ff7eb6")
	colorMuted  = lipgloss.Color("#6b7280")
	colorError  = lipgloss.Color("#ef4444")
	colorGold   = lipgloss.Color("#facc15")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	eggStyle = lipgloss.NewStyle().
			Foreground(colorShell).
			Padding(1, 4)

	crackStyle = lipgloss.NewStyle().Foreground(colorCrack)

	promptStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().Foreground(colorError).Bold(true)

	confettiStyle = lipgloss.NewStyle().Foreground(colorGold)

	petCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 2)

	logStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(colorMuted)
)
