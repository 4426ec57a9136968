package catalog

// Library identifies the plotting library a snippet is written for.
type Library string

// Category groups snippets by technique depth.
type Category string

// AllLibraries and AllCategories are the "match all" selectors. They are never
// valid tags on an Entry.
const (
	AllLibraries  Library  = "all"
	AllCategories Category = "all"
)

const (
	Matplotlib Library = "matplotlib"
	Seaborn    Library = "seaborn"
	Pandas     Library = "pandas"
	Plotly     Library = "plotly"
	Bokeh      Library = "bokeh"
	Altair     Library = "altair"
	Folium     Library = "folium"
	NetworkX   Library = "networkx"
)

const (
	Basic       Category = "basic"
	Statistical Category = "statistical"
	Advanced    Category = "advanced"
)

// libraryOrder is the display order used by tabs, overviews and cycling.
var libraryOrder = []Library{Matplotlib, Seaborn, Pandas, Plotly, Bokeh, Altair, Folium, NetworkX}

var categoryOrder = []Category{Basic, Statistical, Advanced}

var libraryLabels = map[Library]string{
	Matplotlib: "Matplotlib",
	Seaborn:    "Seaborn",
	Pandas:     "Pandas",
	Plotly:     "Plotly",
	Bokeh:      "Bokeh",
	Altair:     "Altair",
	Folium:     "Folium",
	NetworkX:   "NetworkX",
}

// libraryColors are the badge colors, hex renditions of the web palette.
var libraryColors = map[Library]string{
	Matplotlib: "#2662D9", // hsl(220, 70%, 50%)
	Seaborn:    "#A347D1", // hsl(280, 60%, 55%)
	Pandas:     "#D92662", // hsl(340, 70%, 50%)
	Plotly:     "#2EB88A", // hsl(160, 60%, 45%)
	Bokeh:      "#E6801A", // hsl(30, 80%, 50%)
	Altair:     "#269DD9", // hsl(200, 70%, 50%)
	Folium:     "#39AC39", // hsl(120, 50%, 45%)
	NetworkX:   "#D9AC26", // hsl(45, 70%, 50%)
}

var categoryLabels = map[Category]string{
	Basic:       "Basic",
	Statistical: "Statistical",
	Advanced:    "Advanced",
}

// Libraries returns every library tag in display order.
func Libraries() []Library {
	out := make([]Library, len(libraryOrder))
	copy(out, libraryOrder)
	return out
}

// Categories returns every category tag in display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Valid reports whether l is one of the closed library tags. The "all"
// selector is not a valid tag.
func (l Library) Valid() bool {
	_, ok := libraryLabels[l]
	return ok
}

// Label returns the display name, e.g. "NetworkX". Unknown values and the
// "all" selector are returned as "All Libraries" and verbatim respectively.
func (l Library) Label() string {
	if l == AllLibraries {
		return "All Libraries"
	}
	if s, ok := libraryLabels[l]; ok {
		return s
	}
	return string(l)
}

// Color returns the badge color as a hex string, or "" for non-tags.
func (l Library) Color() string {
	return libraryColors[l]
}

// Valid reports whether c is one of the closed category tags.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the display name, e.g. "Statistical".
func (c Category) Label() string {
	if c == AllCategories {
		return "All Types"
	}
	if s, ok := categoryLabels[c]; ok {
		return s
	}
	return string(c)
}

// Group is a named set of libraries shown together in tabs and overviews.
type Group struct {
	Name      string
	Libraries []Library
}

// Groups returns the library groups in display order.
func Groups() []Group {
	return []Group{
		{Name: "Core", Libraries: []Library{Matplotlib, Seaborn, Pandas}},
		{Name: "Interactive", Libraries: []Library{Plotly, Bokeh, Altair}},
		{Name: "Specialized", Libraries: []Library{Folium, NetworkX}},
	}
}

// ParseLibrary converts user input into a library selector. Matching is
// exact; "" and "all" both yield AllLibraries.
func ParseLibrary(s string) (Library, error) {
	if s == "" || s == string(AllLibraries) {
		return AllLibraries, nil
	}
	l := Library(s)
	if !l.Valid() {
		return "", &TagError{Kind: "library", Value: s, Err: ErrInvalidLibrary}
	}
	return l, nil
}

// ParseCategory converts user input into a category selector.
func ParseCategory(s string) (Category, error) {
	if s == "" || s == string(AllCategories) {
		return AllCategories, nil
	}
	c := Category(s)
	if !c.Valid() {
		return "", &TagError{Kind: "category", Value: s, Err: ErrInvalidCategory}
	}
	return c, nil
}
