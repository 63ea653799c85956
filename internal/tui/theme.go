package tui

import "github.com/charmbracelet/lipgloss"

// cellGlyph is drawn twice per cell so cells look roughly square
const cellGlyph = "█"

// Styles holds the colours for one session
type Styles struct {
	Stable   lipgloss.Style
	Unstable lipgloss.Style
	Status   lipgloss.Style
	Help     lipgloss.Style
}

// NewStyles builds styles from #rrggbb colours
func NewStyles(stable, unstable string) Styles {
	return Styles{
		Stable:   lipgloss.NewStyle().Foreground(lipgloss.Color(stable)),
		Unstable: lipgloss.NewStyle().Foreground(lipgloss.Color(unstable)),
		Status: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#e6edf3")).
			Background(lipgloss.Color("#1c2128")).
			Padding(0, 1),
		Help: lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e")),
	}
}
