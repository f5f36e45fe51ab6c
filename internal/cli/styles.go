package cli

import "github.com/charmbracelet/lipgloss"

var (
	focusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	completedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Strikethrough(true)

	areaTagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33"))

	markStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("69"))
)
