// Package search narrows the catalog by library, category and free text.
package search

import (
	"strings"

	"github.com/kamusis/vizsheet/internal/catalog"
	"golang.org/x/text/cases"
)

// Filter returns the entries matching all three facets, in catalog order.
//
// lib and cat match exactly; catalog.AllLibraries / catalog.AllCategories
// match everything. A non-empty query must occur case-insensitively in the
// title, description or usage guidance. The snippet body and tip are never
// searched. The result is never nil.
func Filter(entries []catalog.Entry, lib catalog.Library, cat catalog.Category, query string) []catalog.Entry {
	m := newMatcher(query)
	out := make([]catalog.Entry, 0, len(entries))
	for _, e := range entries {
		if lib != catalog.AllLibraries && e.Library != lib {
			continue
		}
		if cat != catalog.AllCategories && e.Category != cat {
			continue
		}
		if !m.match(e) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// matcher holds a folded query. Casers are stateful, so each Filter call
// gets its own.
type matcher struct {
	folder cases.Caser
	active bool
	query  string
}

func newMatcher(query string) *matcher {
	m := &matcher{folder: cases.Fold()}
	if query != "" {
		m.active = true
		m.query = m.folder.String(query)
	}
	return m
}

func (m *matcher) match(e catalog.Entry) bool {
	if !m.active {
		return true
	}
	for _, field := range []string{e.Title, e.Description, e.WhenToUse} {
		if strings.Contains(m.folder.String(field), m.query) {
			return true
		}
	}
	return false
}
