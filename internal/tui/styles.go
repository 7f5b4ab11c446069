package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary   = lipgloss.Color("4")
	ColorSecondary = lipgloss.Color("6")
	ColorDanger    = lipgloss.Color("1")
	ColorMuted     = lipgloss.Color("8")

	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)

	noteTitleStyle    = lipgloss.NewStyle().Bold(true)
	noteContentStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	cursorStyle       = lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true)
	selectedNoteStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	emptyStyle        = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	labelStyle        = lipgloss.NewStyle().Foreground(ColorSecondary).Width(9)
	hintStyle         = lipgloss.NewStyle().Foreground(ColorDanger)

	formBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().Foreground(ColorMuted)
)
