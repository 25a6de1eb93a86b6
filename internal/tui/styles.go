package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dhabedank/leave-advisor/internal/core"
)

// Color palette for TUI components.
var (
	// Primary colors
	ColorPrimary   = lipgloss.Color("#9b59b6") // Purple
	ColorSecondary = lipgloss.Color("#27ae60") // Green
	ColorMuted     = lipgloss.Color("#95a5a6") // Gray
	ColorWarning   = lipgloss.Color("#f39c12") // Amber
	ColorError     = lipgloss.Color("#e74c3c") // Red

	// Additional colors
	ColorInfo    = lipgloss.Color("#3498db") // Blue
	ColorSuccess = lipgloss.Color("#2ecc71") // Bright green
)

// Text styles for consistent formatting.
var (
	// TitleStyle for main headings.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle for section headings.
	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorMuted)

	// SuccessStyle for success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle for error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	// WarningStyle for warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// HelpStyle for help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	// ScoreStyle for the wellness score.
	ScoreStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorInfo)

	// ModelStyle for displaying model names.
	ModelStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	// CostStyle for displaying costs.
	CostStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	// SpinnerStyle for spinner text.
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	// LabelStyle for field labels on cards.
	LabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)
)

// Box styles for layout.
var (
	// BoxStyle for bordered containers.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(1, 2)

	// HighlightBoxStyle for highlighted containers.
	HighlightBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(1, 2)
)

// LeaveColor maps a leave category to its card colour.
func LeaveColor(t core.LeaveType) lipgloss.Color {
	switch t {
	case core.LeaveFullDay:
		return ColorError
	case core.LeaveHalfDay:
		return ColorWarning
	case core.LeaveWorkWithCare:
		return ColorInfo
	default:
		return ColorSuccess
	}
}

// CardStyle is the bordered card for a recommendation of type t.
func CardStyle(t core.LeaveType) lipgloss.Style {
	return HighlightBoxStyle.BorderForeground(LeaveColor(t))
}

// LeaveStyle renders the leave label in its category colour.
func LeaveStyle(t core.LeaveType) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(LeaveColor(t))
}
