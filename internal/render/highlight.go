package render

import (
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/alecthomas/chroma/v2/styles"
)

// snippetLanguage is the chroma lexer for every snippet in the catalog.
const snippetLanguage = "python"

// Highlight returns code with terminal256 ANSI syntax colors in the named
// chroma style. On any chroma error the code is returned unchanged.
func Highlight(code, style string) string {
	var buf strings.Builder
	if err := quick.Highlight(&buf, code, snippetLanguage, "terminal256", style); err != nil {
		return code
	}
	return strings.TrimRight(buf.String(), "\n")
}

// StyleExists reports whether chroma knows the named style. Unknown names
// make chroma fall back to its default style silently.
func StyleExists(name string) bool {
	_, ok := styles.Registry[name]
	return ok
}

// StyleNames returns the registered chroma styles, sorted.
func StyleNames() []string {
	names := make([]string, 0, len(styles.Registry))
	for n := range styles.Registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
