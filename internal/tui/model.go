// Package tui is the interactive catalog browser. The filter state lives in
// the model and is discarded when the program exits.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kamusis/vizsheet/internal/catalog"
	"github.com/kamusis/vizsheet/internal/clipboard"
	"github.com/kamusis/vizsheet/internal/render"
	"github.com/kamusis/vizsheet/internal/search"
)

// statusFadeDelay is how long a copy notice stays in the footer.
const statusFadeDelay = 2 * time.Second

// statusFadeMsg clears the footer notice. seq guards against clearing a
// newer notice than the one that scheduled it.
type statusFadeMsg struct{ seq int }

// Model is the bubbletea model for `vizsheet browse`.
type Model struct {
	entries []catalog.Entry
	visible []catalog.Entry
	state   *search.State
	cursor  int

	input    textinput.Model
	viewport viewport.Model
	renderer *render.Renderer
	copier   clipboard.Copier
	styles   styles

	status    string
	statusErr bool
	statusSeq int

	width  int
	height int
}

// New returns a browser over c starting from state. The state is owned by
// the model from here on.
func New(c *catalog.Catalog, state *search.State, copier clipboard.Copier, r *render.Renderer) Model {
	in := textinput.New()
	in.Placeholder = "Search charts (e.g., bar, scatter, heatmap...)"
	in.Prompt = "/ "
	in.PromptStyle = r.NewStyle()
	in.TextStyle = r.NewStyle()
	in.PlaceholderStyle = r.NewStyle().Foreground(lipgloss.Color("240"))
	in.CompletionStyle = in.PlaceholderStyle
	in.Cursor.Style = r.NewStyle()
	in.Cursor.TextStyle = r.NewStyle()
	in.SetValue(state.Query)
	in.Focus()

	vp := viewport.New(0, 0)
	vp.Style = r.NewStyle()

	m := Model{
		entries:  c.Entries(),
		state:    state,
		input:    in,
		viewport: vp,
		renderer: r,
		copier:   copier,
		styles:   defaultStyles(r),
	}
	m.refilter()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case statusFadeMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.state.IsDefault() {
				return m, tea.Quit
			}
			m.state.Reset()
			m.input.SetValue("")
			m.refilter()
			return m, nil
		case "tab":
			m.state.NextLibrary(1)
			m.refilter()
			return m, nil
		case "shift+tab":
			m.state.NextLibrary(-1)
			m.refilter()
			return m, nil
		case "ctrl+t":
			m.state.NextCategory(1)
			m.refilter()
			return m, nil
		case "up", "ctrl+p":
			m.move(-1)
			return m, nil
		case "down", "ctrl+n":
			m.move(1)
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		case "ctrl+y":
			return m, m.copySelected()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if q := m.input.Value(); q != m.state.Query {
		m.state.SetQuery(q)
		m.refilter()
	}
	return m, cmd
}

// Selected returns the highlighted entry, if any.
func (m Model) Selected() (catalog.Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return catalog.Entry{}, false
	}
	return m.visible[m.cursor], true
}

// Visible returns the entries currently passing the filter.
func (m Model) Visible() []catalog.Entry { return m.visible }

// State returns the live filter state.
func (m Model) State() search.State { return *m.state }

// Status returns the footer notice, empty once it has faded.
func (m Model) Status() string { return m.status }

// refilter re-runs the filter synchronously and keeps the selection on the
// same entry when it is still visible.
func (m *Model) refilter() {
	prev, hadPrev := m.Selected()
	m.visible = m.state.Apply(m.entries)
	m.cursor = 0
	if hadPrev {
		for i, e := range m.visible {
			if e.ID == prev.ID {
				m.cursor = i
				break
			}
		}
	}
	m.syncDetail()
}

func (m *Model) move(delta int) {
	if len(m.visible) == 0 {
		return
	}
	m.cursor = max(0, min(len(m.visible)-1, m.cursor+delta))
	m.syncDetail()
}

func (m *Model) syncDetail() {
	e, ok := m.Selected()
	if !ok {
		m.viewport.SetContent(render.NoResults)
	} else {
		m.viewport.SetContent(m.renderer.Card(e))
	}
	m.viewport.GotoTop()
}

func (m *Model) copySelected() tea.Cmd {
	e, ok := m.Selected()
	if !ok {
		return nil
	}
	var notice clipboard.Notice
	_ = clipboard.CopyText(m.copier, clipboard.NotifierFunc(func(n clipboard.Notice) { notice = n }), e.Code, "Code")

	m.statusSeq++
	m.statusErr = notice.Err != nil
	m.status = notice.Title + " " + notice.Description
	seq := m.statusSeq
	return tea.Tick(statusFadeDelay, func(time.Time) tea.Msg {
		return statusFadeMsg{seq: seq}
	})
}

func (m *Model) setSize(w, h int) {
	m.width, m.height = w, h
	m.input.Width = max(10, w-4)
	m.viewport.Width = max(10, w-m.listWidth()-3)
	m.viewport.Height = max(3, m.bodyHeight())
	m.syncDetail()
}

func (m Model) listWidth() int {
	return max(28, m.width*35/100)
}

// bodyHeight is the space left for the list and the detail pane after the
// header (tabs, input, count) and footer lines.
func (m Model) bodyHeight() int {
	return m.height - 5
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.tabs())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.styles.muted.Render(render.ResultCount(len(m.visible))))
	b.WriteString("\n")

	list := m.styles.pane.Width(m.listWidth()).Render(m.listView())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, " ", m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m Model) tabs() string {
	parts := []string{m.tab(catalog.AllLibraries.Label(), m.state.Library == catalog.AllLibraries, "")}
	for _, g := range catalog.Groups() {
		parts = append(parts, m.styles.muted.Render(g.Name+":"))
		for _, l := range g.Libraries {
			parts = append(parts, m.tab(l.Label(), m.state.Library == l, l.Color()))
		}
	}
	cat := m.styles.muted.Render("Type: ") + m.state.Category.Label()
	return strings.Join(parts, " ") + "   " + cat
}

func (m Model) tab(label string, active bool, color string) string {
	if !active {
		return m.styles.tab.Render(label)
	}
	st := m.styles.activeTab
	if color != "" {
		st = st.Foreground(lipgloss.Color(color))
	}
	return st.Render(label)
}

func (m Model) listView() string {
	if len(m.visible) == 0 {
		return m.styles.muted.Render("(no matches)")
	}
	rows := max(1, m.bodyHeight())
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	end := min(len(m.visible), start+rows)

	var lines []string
	for i := start; i < end; i++ {
		e := m.visible[i]
		lib := m.styles.muted.Render(e.Library.Label())
		if i == m.cursor {
			lines = append(lines, m.styles.selected.Render("> "+e.Title)+" "+lib)
		} else {
			lines = append(lines, "  "+e.Title+" "+lib)
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) footer() string {
	if m.status != "" {
		if m.statusErr {
			return m.styles.errText.Render(m.status)
		}
		return m.styles.okText.Render(m.status)
	}
	return m.styles.muted.Render("tab/shift+tab: library • ctrl+t: type • ↑/↓: select • ctrl+y: copy • esc: clear/quit • ctrl+c: quit")
}

// Run starts the browser on the alternate screen and blocks until it exits.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
