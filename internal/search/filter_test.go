package search

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kamusis/vizsheet/internal/catalog"
)

func ids(entries []catalog.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func sample() []catalog.Entry {
	return []catalog.Entry{
		{ID: "mpl-bar", Library: catalog.Matplotlib, Category: catalog.Basic, Title: "Bar Chart",
			Description: "Compare quantities", WhenToUse: "Comparing discrete categories", Code: "plt.bar(x, y)"},
		{ID: "sns-barplot", Library: catalog.Seaborn, Category: catalog.Basic, Title: "Bar Plot",
			Description: "Bar chart with error bars", WhenToUse: "Statistical error bars", Code: "sns.barplot()"},
		{ID: "sns-heatmap", Library: catalog.Seaborn, Category: catalog.Statistical, Title: "Heatmap",
			Description: "Color-coded matrix", WhenToUse: "Showing CORRELATIONS", Code: "sns.heatmap(data)", Tip: "bar none"},
	}
}

func TestFilter_AllSelectorsReturnsEverythingInOrder(t *testing.T) {
	entries := catalog.Default().Entries()
	got := Filter(entries, catalog.AllLibraries, catalog.AllCategories, "")
	if diff := cmp.Diff(ids(entries), ids(got)); diff != "" {
		t.Fatalf("unexpected result (-want +got):\n%s", diff)
	}
}

func TestFilter_QueryAcrossLibraries(t *testing.T) {
	got := Filter(sample(), catalog.AllLibraries, catalog.AllCategories, "bar")
	if diff := cmp.Diff([]string{"mpl-bar", "sns-barplot"}, ids(got)); diff != "" {
		t.Fatalf("unexpected result (-want +got):\n%s", diff)
	}

	got = Filter(sample(), catalog.Matplotlib, catalog.AllCategories, "bar")
	if diff := cmp.Diff([]string{"mpl-bar"}, ids(got)); diff != "" {
		t.Fatalf("unexpected result (-want +got):\n%s", diff)
	}
}

func TestFilter_LibraryIsExact(t *testing.T) {
	entries := catalog.Default().Entries()
	for _, lib := range catalog.Libraries() {
		got := Filter(entries, lib, catalog.AllCategories, "")
		want := 0
		for _, e := range entries {
			if e.Library == lib {
				want++
			}
		}
		if len(got) != want {
			t.Fatalf("%s: got %d entries, want %d", lib, len(got), want)
		}
		for _, e := range got {
			if e.Library != lib {
				t.Fatalf("%s: included %s with library %s", lib, e.ID, e.Library)
			}
		}
	}

	if got := Filter(entries, catalog.Library("Seaborn"), catalog.AllCategories, ""); len(got) != 0 {
		t.Fatalf("library selector must be case-sensitive, got %v", ids(got))
	}
	if got := Filter(entries, catalog.Library("sea"), catalog.AllCategories, ""); len(got) != 0 {
		t.Fatalf("library selector must not match substrings, got %v", ids(got))
	}
}

func TestFilter_QueryIsCaseInsensitive(t *testing.T) {
	got := Filter(sample(), catalog.AllLibraries, catalog.AllCategories, "correlations")
	if diff := cmp.Diff([]string{"sns-heatmap"}, ids(got)); diff != "" {
		t.Fatalf("usage guidance should match case-insensitively (-want +got):\n%s", diff)
	}
	got = Filter(sample(), catalog.AllLibraries, catalog.AllCategories, "HEAT")
	if diff := cmp.Diff([]string{"sns-heatmap"}, ids(got)); diff != "" {
		t.Fatalf("title should match case-insensitively (-want +got):\n%s", diff)
	}
}

func TestFilter_QueryNeverSearchesCodeOrTip(t *testing.T) {
	if got := Filter(sample(), catalog.AllLibraries, catalog.AllCategories, "plt.bar"); len(got) != 0 {
		t.Fatalf("snippet body must not be searched, got %v", ids(got))
	}
	got := Filter(sample(), catalog.Seaborn, catalog.Statistical, "none")
	if len(got) != 0 {
		t.Fatalf("tip must not be searched, got %v", ids(got))
	}
}

func TestFilter_QueryMatchesOnlyTextFields(t *testing.T) {
	entries := catalog.Default().Entries()
	for _, q := range []string{"bar", "Scatter", "interactive", "map", "3D"} {
		lower := strings.ToLower(q)
		for _, e := range Filter(entries, catalog.AllLibraries, catalog.AllCategories, q) {
			hit := strings.Contains(strings.ToLower(e.Title), lower) ||
				strings.Contains(strings.ToLower(e.Description), lower) ||
				strings.Contains(strings.ToLower(e.WhenToUse), lower)
			if !hit {
				t.Fatalf("query %q matched %s without a text-field hit", q, e.ID)
			}
		}
	}
}

func TestFilter_FacetsCombineWithAnd(t *testing.T) {
	entries := catalog.Default().Entries()
	for _, lib := range catalog.Libraries() {
		for _, cat := range catalog.Categories() {
			for _, e := range Filter(entries, lib, cat, "") {
				if e.Library != lib || e.Category != cat {
					t.Fatalf("%s/%s included %s (%s/%s)", lib, cat, e.ID, e.Library, e.Category)
				}
			}
		}
	}

	got := Filter(entries, catalog.Seaborn, catalog.Statistical, "")
	want := []string{"sns-heatmap", "sns-pairplot", "sns-violin", "sns-jointplot", "sns-regplot"}
	if diff := cmp.Diff(want, ids(got)); diff != "" {
		t.Fatalf("unexpected result (-want +got):\n%s", diff)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	entries := catalog.Default().Entries()
	a := Filter(entries, catalog.Plotly, catalog.AllCategories, "chart")
	b := Filter(entries, catalog.Plotly, catalog.AllCategories, "chart")
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("filter is not idempotent (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(ids(a), ids(Filter(a, catalog.Plotly, catalog.AllCategories, "chart"))); diff != "" {
		t.Fatalf("re-filtering a result changed it:\n%s", diff)
	}
}

func TestFilter_NoMatchIsEmptyNotNil(t *testing.T) {
	got := Filter(catalog.Default().Entries(), catalog.AllLibraries, catalog.AllCategories, "zzz-nonexistent")
	if got == nil {
		t.Fatal("expected an empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %v", ids(got))
	}

	if got := Filter(nil, catalog.AllLibraries, catalog.AllCategories, ""); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result for empty input, got %#v", got)
	}
}

func TestFilter_UnknownSelectorMatchesNothing(t *testing.T) {
	got := Filter(catalog.Default().Entries(), catalog.AllLibraries, catalog.Category("expert"), "")
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %v", ids(got))
	}
}
