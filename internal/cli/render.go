package cli

import "github.com/charmbracelet/lipgloss"

// Shared terminal styles for the text renderers.
var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle      = lipgloss.NewStyle().Faint(true)
	positiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	negativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	scoreStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
)

func sentimentStyle(sentiment string) lipgloss.Style {
	if sentiment == "negative" {
		return negativeStyle
	}
	return positiveStyle
}
