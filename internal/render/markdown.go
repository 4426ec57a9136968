package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/kamusis/vizsheet/internal/catalog"
)

// markdownWrap is the word-wrap width used when previewing Markdown.
const markdownWrap = 100

// Markdown renders entries as a Markdown cheat sheet: one section per entry
// with badges, usage guidance, a fenced python block and the tip. The header
// carries the result count so an export reads like the on-screen list.
func Markdown(title string, entries []catalog.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "_%s_\n", ResultCount(len(entries)))
	if len(entries) == 0 {
		fmt.Fprintf(&b, "\n%s\n", strings.ReplaceAll(NoResults, "\n", "  \n"))
		return b.String()
	}
	for _, e := range entries {
		fmt.Fprintf(&b, "\n## %s\n\n", e.Title)
		fmt.Fprintf(&b, "`%s` · **%s** · %s\n\n", e.ID, e.Library.Label(), e.Category.Label())
		fmt.Fprintf(&b, "%s\n\n", e.Description)
		fmt.Fprintf(&b, "**When to use:** %s\n\n", e.WhenToUse)
		fmt.Fprintf(&b, "```%s\n%s\n```\n", snippetLanguage, e.Code)
		if e.Tip != "" {
			fmt.Fprintf(&b, "\n> **Pro Tip:** %s\n", e.Tip)
		}
	}
	return b.String()
}

// RenderMarkdown renders md for the terminal with glamour. noColor selects
// the plain "notty" style.
func RenderMarkdown(md string, noColor bool) (string, error) {
	style := glamour.WithAutoStyle()
	if noColor {
		style = glamour.WithStandardStyle("notty")
	}
	tr, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(markdownWrap))
	if err != nil {
		return "", fmt.Errorf("cannot create markdown renderer: %w", err)
	}
	out, err := tr.Render(md)
	if err != nil {
		return "", fmt.Errorf("cannot render markdown: %w", err)
	}
	return out, nil
}
