package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorSuccess   = lipgloss.Color("34")  // Green
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorMuted     = lipgloss.Color("240") // Dark gray
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Width(14)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)

// Symbols for visual feedback.
const (
	SymbolCheck      = "✓"
	SymbolArrowRight = "→"
)
