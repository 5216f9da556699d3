package output

import "github.com/charmbracelet/lipgloss"

// Shared palette and styles for terminal output.
var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7D79F6"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#C2A800", Dark: "#E6CE00"}
	ColorDanger  = lipgloss.AdaptiveColor{Light: "#D94F70", Dark: "#FF6188"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#777777", Dark: "#888888"}

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true)

	HighlightStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWarning)

	RecommendStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
