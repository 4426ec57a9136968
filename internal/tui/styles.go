package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kamusis/vizsheet/internal/render"
)

type styles struct {
	muted     lipgloss.Style
	tab       lipgloss.Style
	activeTab lipgloss.Style
	selected  lipgloss.Style
	pane      lipgloss.Style
	okText    lipgloss.Style
	errText   lipgloss.Style
}

// defaultStyles builds the browser styles on r's lipgloss renderer so the
// chrome follows the same color profile as the cards.
func defaultStyles(r *render.Renderer) styles {
	return styles{
		muted:     r.NewStyle().Foreground(lipgloss.Color("245")),
		tab:       r.NewStyle().Padding(0, 1),
		activeTab: r.NewStyle().Padding(0, 1).Bold(true).Underline(true),
		selected:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		pane:      r.NewStyle().Border(lipgloss.RoundedBorder(), false, true, false, false).BorderForeground(lipgloss.Color("240")),
		okText:    r.NewStyle().Foreground(lipgloss.Color("#22C55E")),
		errText:   r.NewStyle().Foreground(lipgloss.Color("#EF4444")),
	}
}
