package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle         = lipgloss.NewStyle().Padding(1, 2)
	titleStyle       = lipgloss.NewStyle().Bold(true)
	helpStyle        = lipgloss.NewStyle().Faint(true)
	labelStyle       = lipgloss.NewStyle().Faint(true)
	focusedStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle      = lipgloss.NewStyle().Bold(true).Underline(true)
	selectedRowStyle = lipgloss.NewStyle().Reverse(true)
	overlayBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	emptyStyle       = lipgloss.NewStyle().Italic(true).Faint(true)

	toastStyles = map[string]lipgloss.Style{
		"success": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		"failure": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}

	// keyed by render.Badge.Class
	badgeStyles = map[string]lipgloss.Style{
		"status-draft":     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		"status-completed": lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		"status-archived":  lipgloss.NewStyle().Faint(true),
	}
)
