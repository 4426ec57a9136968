package search

import "github.com/kamusis/vizsheet/internal/catalog"

// State is the ephemeral filter state held by a view. The zero value is not
// ready for use; call NewState.
type State struct {
	Library  catalog.Library
	Category catalog.Category
	Query    string
}

// NewState returns the default state: every library, every category, no
// query.
func NewState() *State {
	return &State{
		Library:  catalog.AllLibraries,
		Category: catalog.AllCategories,
	}
}

func (s *State) SetLibrary(l catalog.Library)   { s.Library = l }
func (s *State) SetCategory(c catalog.Category) { s.Category = c }
func (s *State) SetQuery(q string)              { s.Query = q }

// Reset restores the defaults in place.
func (s *State) Reset() {
	s.Library = catalog.AllLibraries
	s.Category = catalog.AllCategories
	s.Query = ""
}

// IsDefault reports whether the state matches the whole catalog.
func (s *State) IsDefault() bool {
	return s.Library == catalog.AllLibraries && s.Category == catalog.AllCategories && s.Query == ""
}

// Apply filters entries with the current facets.
func (s *State) Apply(entries []catalog.Entry) []catalog.Entry {
	return Filter(entries, s.Library, s.Category, s.Query)
}

// NextLibrary advances the library selector through all -> display order ->
// all. step may be negative to walk backwards.
func (s *State) NextLibrary(step int) {
	ring := append([]catalog.Library{catalog.AllLibraries}, catalog.Libraries()...)
	s.Library = ring[advance(indexOf(ring, s.Library), step, len(ring))]
}

// NextCategory advances the category selector the same way.
func (s *State) NextCategory(step int) {
	ring := append([]catalog.Category{catalog.AllCategories}, catalog.Categories()...)
	s.Category = ring[advance(indexOf(ring, s.Category), step, len(ring))]
}

// indexOf returns the position of v in ring, treating unknown values as the
// "all" slot.
func indexOf[T comparable](ring []T, v T) int {
	for i, x := range ring {
		if x == v {
			return i
		}
	}
	return 0
}

func advance(i, step, n int) int {
	return ((i+step)%n + n) % n
}
