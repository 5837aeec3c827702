package ui

import (
	"github.com/charmbracelet/lipgloss"

	"taskroll/internal/domain"
)

var (
	highStyle   = lipgloss.NewStyle().Foreground(Red).Bold(true)
	mediumStyle = lipgloss.NewStyle().Foreground(Yellow)
	lowStyle    = lipgloss.NewStyle().Foreground(Green)

	doneStyle    = lipgloss.NewStyle().Foreground(Faded).Strikethrough(true)
	previewStyle = lipgloss.NewStyle().Foreground(Secondary)
	resultStyle  = lipgloss.NewStyle().Foreground(Primary).Bold(true)
)

// PriorityBadge renders a colored fixed-width priority label.
func PriorityBadge(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return highStyle.Render("[high]")
	case domain.PriorityMedium:
		return mediumStyle.Render("[med ]")
	case domain.PriorityLow:
		return lowStyle.Render("[low ]")
	default:
		return "[????]"
	}
}

// TaskName renders a task name, struck through when the task is done.
func TaskName(t domain.Task) string {
	if t.Done {
		return doneStyle.Render(t.Name)
	}
	return t.Name
}
