package tui

import "github.com/charmbracelet/lipgloss"

var (
	Accent      = lipgloss.Color("#8BC34A")
	Muted       = lipgloss.Color("#6b7280")
	Destructive = lipgloss.Color("#e53935")
	Border      = lipgloss.Color("#2a3850")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Accent).
			MarginBottom(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Accent)

	helpStyle = lipgloss.NewStyle().
			Foreground(Muted)

	statusStyle = lipgloss.NewStyle().
			Foreground(Accent)

	errorStyle = lipgloss.NewStyle().
			Foreground(Destructive)

	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)
)

const (
	titleWidth   = 24
	authorWidth  = 20
	snippetWidth = 40
)
