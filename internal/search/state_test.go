package search

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kamusis/vizsheet/internal/catalog"
)

func TestNewState_Defaults(t *testing.T) {
	s := NewState()
	if !s.IsDefault() {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	entries := catalog.Default().Entries()
	if len(s.Apply(entries)) != len(entries) {
		t.Fatal("default state should match the whole catalog")
	}
}

func TestState_UpdateInPlace(t *testing.T) {
	s := NewState()
	s.SetLibrary(catalog.Matplotlib)
	s.SetQuery("bar")
	got := s.Apply(sample())
	if diff := cmp.Diff([]string{"mpl-bar"}, ids(got)); diff != "" {
		t.Fatalf("unexpected result (-want +got):\n%s", diff)
	}

	s.SetCategory(catalog.Statistical)
	if got := s.Apply(sample()); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", ids(got))
	}

	s.Reset()
	if !s.IsDefault() {
		t.Fatalf("Reset did not restore defaults: %+v", s)
	}
}

func TestState_NextLibraryWraps(t *testing.T) {
	s := NewState()
	var seen []catalog.Library
	for i := 0; i < len(catalog.Libraries())+1; i++ {
		s.NextLibrary(1)
		seen = append(seen, s.Library)
	}
	want := append(catalog.Libraries(), catalog.AllLibraries)
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Fatalf("unexpected cycle (-want +got):\n%s", diff)
	}

	s.NextLibrary(-1)
	if s.Library != catalog.NetworkX {
		t.Fatalf("stepping back from all should land on the last library, got %s", s.Library)
	}
}

func TestState_NextCategory(t *testing.T) {
	s := NewState()
	s.NextCategory(1)
	if s.Category != catalog.Basic {
		t.Fatalf("got %s", s.Category)
	}
	s.NextCategory(-2)
	if s.Category != catalog.Advanced {
		t.Fatalf("got %s", s.Category)
	}

	s.SetCategory(catalog.Category("bogus"))
	s.NextCategory(1)
	if s.Category != catalog.Basic {
		t.Fatalf("unknown selector should restart from all, got %s", s.Category)
	}
}
