// Package view presents resolved statuses. Nothing in here is needed to compute them.
package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ImSingee/gitstat/internal/status"
)

// Decorator renders a status for display
type Decorator func(s status.Status) string

// Letters renders a one letter code
func Letters(s status.Status) string {
	switch s {
	case status.UpToDate:
		return " "
	case status.Modified:
		return "M"
	case status.Staged:
		return "S"
	case status.Unknown:
		return "?"
	case status.Added:
		return "A"
	case status.Deleted:
		return "D"
	case status.Unmerged:
		return "U"
	case status.Killed:
		return "K"
	default:
		return "-"
	}
}

// Names renders the status name
func Names(s status.Status) string {
	if s == status.None {
		return "-"
	}
	return s.String()
}

var styles = map[status.Status]lipgloss.Style{
	status.Modified: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	status.Staged:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	status.Unknown:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	status.Added:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	status.Deleted:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	status.Unmerged: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	status.Killed:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
}

// Colored wraps base with a color per status
func Colored(base Decorator) Decorator {
	return func(s status.Status) string {
		text := base(s)
		if style, ok := styles[s]; ok {
			return style.Render(text)
		}
		return text
	}
}
