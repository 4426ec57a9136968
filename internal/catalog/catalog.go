// Package catalog holds the compiled-in reference catalog of visualization
// snippets. The catalog is decoded once and is read-only afterwards.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/charts.yaml
var chartsYAML []byte

// Entry is one catalog record: a single visualization technique and its
// copyable snippet.
type Entry struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"name"`
	Description string   `yaml:"description"`
	Library     Library  `yaml:"library"`
	Category    Category `yaml:"category"`
	WhenToUse   string   `yaml:"when_to_use"`
	Code        string   `yaml:"code"`
	Tip         string   `yaml:"pro_tip,omitempty"`
}

// Guide is the quick-guide blurb for one library.
type Guide struct {
	Library Library `yaml:"id"`
	BestFor string  `yaml:"best_for"`
	UseFor  string  `yaml:"use_for"`
}

type document struct {
	Setup     string  `yaml:"setup"`
	Libraries []Guide `yaml:"libraries"`
	Charts    []Entry `yaml:"charts"`
}

// Catalog is an immutable, ordered set of entries.
type Catalog struct {
	entries []Entry
	byID    map[string]int
	guides  map[Library]Guide
	setup   string
}

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// Default returns the compiled-in catalog. It panics if the embedded data
// violates a catalog invariant, which can only happen on a broken build.
func Default() *Catalog {
	defaultCatalogOnce.Do(func() {
		c, err := Load(chartsYAML)
		if err != nil {
			panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Check validates the embedded catalog data without panicking.
func Check() (*Catalog, error) {
	return Load(chartsYAML)
}

// Load decodes and validates a catalog document.
func Load(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid catalog YAML: %w", err)
	}
	if err := validate(doc.Charts); err != nil {
		return nil, err
	}

	c := &Catalog{
		entries: doc.Charts,
		byID:    make(map[string]int, len(doc.Charts)),
		guides:  make(map[Library]Guide, len(doc.Libraries)),
		setup:   doc.Setup,
	}
	for i, e := range doc.Charts {
		c.byID[e.ID] = i
	}
	for _, g := range doc.Libraries {
		if !g.Library.Valid() {
			return nil, fmt.Errorf("library guide: %w", &TagError{Kind: "library", Value: string(g.Library), Err: ErrInvalidLibrary})
		}
		c.guides[g.Library] = g
	}
	return c, nil
}

func validate(entries []Entry) error {
	var errs []error
	seen := make(map[string]bool, len(entries))
	for i, e := range entries {
		where := e.ID
		if where == "" {
			where = fmt.Sprintf("#%d", i)
		}
		if e.ID == "" {
			errs = append(errs, fmt.Errorf("chart %s: %w: id", where, ErrMissingField))
		} else if seen[e.ID] {
			errs = append(errs, fmt.Errorf("chart %s: %w", where, ErrDuplicateID))
		}
		seen[e.ID] = true
		if strings.TrimSpace(e.Title) == "" {
			errs = append(errs, fmt.Errorf("chart %s: %w: name", where, ErrMissingField))
		}
		if strings.TrimSpace(e.Code) == "" {
			errs = append(errs, fmt.Errorf("chart %s: %w: code", where, ErrMissingField))
		}
		if !e.Library.Valid() {
			errs = append(errs, fmt.Errorf("chart %s: %w", where, &TagError{Kind: "library", Value: string(e.Library), Err: ErrInvalidLibrary}))
		}
		if !e.Category.Valid() {
			errs = append(errs, fmt.Errorf("chart %s: %w", where, &TagError{Kind: "category", Value: string(e.Category), Err: ErrInvalidCategory}))
		}
	}
	return errors.Join(errs...)
}

// Entries returns a copy of every entry in catalog order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// Lookup returns the entry with the given ID. IDs are matched exactly; on a
// miss the error carries IDs containing id as a case-insensitive substring.
func (c *Catalog) Lookup(id string) (Entry, error) {
	if i, ok := c.byID[id]; ok {
		return c.entries[i], nil
	}
	lower := strings.ToLower(id)
	var suggestions []string
	if lower != "" {
		for _, e := range c.entries {
			if strings.Contains(strings.ToLower(e.ID), lower) {
				suggestions = append(suggestions, e.ID)
			}
		}
	}
	return Entry{}, &LookupError{ID: id, Suggestions: suggestions}
}

// Setup returns the notebook setup snippet that installs and imports every
// library in the catalog.
func (c *Catalog) Setup() string { return c.setup }

// Guide returns the quick-guide blurb for l.
func (c *Catalog) Guide(l Library) (Guide, bool) {
	g, ok := c.guides[l]
	return g, ok
}

// CountByLibrary returns the number of entries per library tag.
func (c *Catalog) CountByLibrary() map[Library]int {
	out := make(map[Library]int, len(libraryOrder))
	for _, e := range c.entries {
		out[e.Library]++
	}
	return out
}
