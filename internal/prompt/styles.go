package prompt

import "github.com/charmbracelet/lipgloss"

var (
	styleQuestion = lipgloss.NewStyle().Bold(true)
	styleCursor   = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true) // Cyan
	styleChecked  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))            // Green
	styleAnswer   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))            // Blue
	styleHelp     = lipgloss.NewStyle().Faint(true)
	styleWarn     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // Yellow
)
