package cmd

import "github.com/charmbracelet/lipgloss"

var (
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true)
	fileStyle  = lipgloss.NewStyle().Bold(true)
	subtle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
