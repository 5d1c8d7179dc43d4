package report

import "charm.land/lipgloss/v2"

// Palette for terminal output. Restrained compared to a full TUI: the
// tool prints tables, so only title, header, and dim roles exist.
var (
	titleColor  = lipgloss.Color("#8B5CF6") // Violet
	headerColor = lipgloss.Color("#14B8A6") // Teal
	dimColor    = lipgloss.Color("#94A3B8") // Slate
	borderColor = lipgloss.Color("#334155") // Dark Slate
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(titleColor)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(headerColor)

	dimStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	ruleStyle = lipgloss.NewStyle().
			Foreground(borderColor)
)
