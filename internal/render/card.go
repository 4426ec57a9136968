// Package render turns catalog entries into terminal text: cards with badges,
// highlighted code and tips, plus the library quick guide.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kamusis/vizsheet/internal/catalog"
	"github.com/muesli/termenv"
)

// Renderer holds the lipgloss renderer and options shared by every card.
type Renderer struct {
	lip   *lipgloss.Renderer
	style string
	plain bool

	title  lipgloss.Style
	muted  lipgloss.Style
	label  lipgloss.Style
	badge  lipgloss.Style
	tip    lipgloss.Style
	border lipgloss.Style
}

// New returns a Renderer writing for out. style is the chroma style for code.
// Output is plain, with no colors or highlighting, when noColor is set or
// when out has no color support (a pipe, a file, NO_COLOR in the env).
func New(out io.Writer, style string, noColor bool) *Renderer {
	lip := lipgloss.NewRenderer(out)
	if noColor {
		lip.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{
		lip:    lip,
		style:  style,
		plain:  lip.ColorProfile() == termenv.Ascii,
		title:  lip.NewStyle().Bold(true),
		muted:  lip.NewStyle().Foreground(lipgloss.Color("245")),
		label:  lip.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
		badge:  lip.NewStyle().Padding(0, 1),
		tip:    lip.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
		border: lip.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
	}
}

// Plain reports whether output carries no escape sequences.
func (r *Renderer) Plain() bool { return r.plain }

// NewStyle returns a style bound to the same output and color profile as
// the cards.
func (r *Renderer) NewStyle() lipgloss.Style { return r.lip.NewStyle() }

// LibraryBadge renders the library label in its brand color.
func (r *Renderer) LibraryBadge(l catalog.Library) string {
	if r.plain {
		return "[" + l.Label() + "]"
	}
	return r.badge.Foreground(lipgloss.Color(l.Color())).Render(l.Label())
}

// CategoryBadge renders the category label.
func (r *Renderer) CategoryBadge(c catalog.Category) string {
	if r.plain {
		return "(" + c.Label() + ")"
	}
	return r.badge.Border(lipgloss.NormalBorder(), false, true).Render(c.Label())
}

// Code returns the snippet highlighted, or verbatim when output is plain.
func (r *Renderer) Code(code string) string {
	if r.plain {
		return code
	}
	return Highlight(code, r.style)
}

// Card renders one entry the way the catalog shows it: header with badges,
// usage guidance, snippet and optional tip.
func (r *Renderer) Card(e catalog.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s %s\n", r.title.Render(e.Title), r.LibraryBadge(e.Library), r.CategoryBadge(e.Category))
	fmt.Fprintf(&b, "%s\n", e.Description)
	fmt.Fprintf(&b, "%s\n\n", r.muted.Render("id: "+e.ID))

	fmt.Fprintf(&b, "%s\n", r.label.Render("When to use"))
	fmt.Fprintf(&b, "  %s\n\n", e.WhenToUse)

	if r.plain {
		b.WriteString(e.Code)
		b.WriteString("\n")
	} else {
		b.WriteString(r.border.Render(r.Code(e.Code)))
		b.WriteString("\n")
	}

	if e.Tip != "" {
		fmt.Fprintf(&b, "\n%s\n", r.tip.Render("Pro Tip: "+e.Tip))
	}
	return b.String()
}

// Row renders a single-line summary for list output.
func (r *Renderer) Row(e catalog.Entry) string {
	return fmt.Sprintf("%-18s %-24s %s %s", e.ID, e.Title, r.LibraryBadge(e.Library), r.CategoryBadge(e.Category))
}

// Guide renders the library quick guide, grouped as in the library tabs.
func (r *Renderer) Guide(c *catalog.Catalog) string {
	counts := c.CountByLibrary()
	var b strings.Builder
	for gi, g := range catalog.Groups() {
		if gi > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s\n", r.label.Render(g.Name+":"))
		for _, l := range g.Libraries {
			fmt.Fprintf(&b, "  %s %s\n", r.LibraryBadge(l), r.muted.Render(fmt.Sprintf("%d chart(s)", counts[l])))
			if gd, ok := c.Guide(l); ok {
				fmt.Fprintf(&b, "    %s\n", gd.BestFor)
				fmt.Fprintf(&b, "    Use for: %s\n", gd.UseFor)
			}
		}
	}
	return b.String()
}

// ResultCount renders the "Showing N chart(s)" line.
func ResultCount(n int) string {
	if n == 1 {
		return "Showing 1 chart"
	}
	return fmt.Sprintf("Showing %d charts", n)
}

// NoResults is printed instead of cards when the filter matches nothing.
const NoResults = "No charts found matching your filters.\nTry adjusting your search or filters."
