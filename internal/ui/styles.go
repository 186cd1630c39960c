package ui

import "github.com/charmbracelet/lipgloss"

// Lipgloss styles shared by all views.
var (
	docStyle    = lipgloss.NewStyle().Margin(1, 2)
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	hostStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	turnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	wordStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	dangerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	selectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true)
)

const (
	hostIcon     = "👑"
	imposterIcon = "🕵️"
	checkIcon    = "✓"
)
