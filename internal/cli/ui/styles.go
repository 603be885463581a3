package ui

import "github.com/charmbracelet/lipgloss"

// Styles defines all lipgloss styles used in the CLI
var Styles = struct {
	Bold      lipgloss.Style
	Header    lipgloss.Style
	Key       lipgloss.Style
	Value     lipgloss.Style
	Highlight lipgloss.Style
	Summary   lipgloss.Style
	StatsBox  lipgloss.Style
}{
	Bold: lipgloss.NewStyle().Bold(true),

	Header: lipgloss.NewStyle().
		Foreground(lipgloss.Color("86")).
		Bold(true),

	Key:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	Value: lipgloss.NewStyle().Foreground(lipgloss.Color("229")),

	Highlight: lipgloss.NewStyle().
		Foreground(lipgloss.Color("212")).
		Bold(true),

	Summary: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		MarginTop(1),

	StatsBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("86")).
		Padding(0, 2),
}
