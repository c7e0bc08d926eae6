package render

import "github.com/charmbracelet/lipgloss"

var (
	StartStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	EndStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	WallStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	VisitedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	PathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	EmptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	StatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	FoundStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	MissStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	BoardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62"))
)

// StyleForKind returns the lipgloss style for a cell kind.
func StyleForKind(k Kind) lipgloss.Style {
	switch k {
	case KindStart:
		return StartStyle
	case KindEnd:
		return EndStyle
	case KindWall:
		return WallStyle
	case KindVisited:
		return VisitedStyle
	case KindPath:
		return PathStyle
	default:
		return EmptyStyle
	}
}
