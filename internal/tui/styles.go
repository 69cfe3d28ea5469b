package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/gavinjunior/portfolio-backend/internal/admin/upload"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(20)

	dimStyle = lipgloss.NewStyle().Faint(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 2)
)

// displayURL shortens inline data URLs, which can be megabytes long.
func displayURL(s string) string {
	if upload.IsDataURL(s) {
		mediaType, data, err := upload.DecodeDataURL(s)
		if err != nil {
			return "[inline data]"
		}
		return fmt.Sprintf("[inline %s, %d KB]", mediaType, (len(data)+1023)/1024)
	}
	return s
}
