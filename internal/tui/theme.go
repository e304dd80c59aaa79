package tui

import "github.com/charmbracelet/lipgloss"

var (
	Accent    = lipgloss.Color("#00D4AA")
	Warning   = lipgloss.Color("#FFD700")
	Danger    = lipgloss.Color("#FF5F56")
	MidGray   = lipgloss.Color("#3a3a4e")
	LightGray = lipgloss.Color("#aaaaaa")
	White     = lipgloss.Color("#e0e0e0")

	TitleStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	InputBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Accent).
				Padding(0, 1)

	// Result rows
	RowStyle = lipgloss.NewStyle().
			Foreground(White).
			PaddingLeft(2)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(Accent).
				Bold(true).
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(Accent).
				PaddingLeft(1)

	EmptyStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Italic(true).
			PaddingLeft(2)

	// Confirmation prompt
	ConfirmStyle = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Danger)

	StatusStyle = lipgloss.NewStyle().
			Foreground(Accent)

	HelpStyle = lipgloss.NewStyle().
			Foreground(MidGray)
)
