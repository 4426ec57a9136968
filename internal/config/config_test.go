package config

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/kamusis/vizsheet/internal/catalog"
)

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("VIZSHEET_HIGHLIGHT_STYLE", "")
	t.Setenv("VIZSHEET_CLIPBOARD", "")
	t.Setenv("NO_COLOR", "")
	return home
}

func writeConfig(t *testing.T, home, body string) {
	t.Helper()
	dir := filepath.Join(home, ".vizsheet")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "vizsheet.yaml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	setupHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Library() != catalog.AllLibraries || cfg.Category() != catalog.AllCategories {
		t.Fatalf("unexpected selectors: %+v", cfg)
	}
	if cfg.HighlightStyle != DefaultHighlightStyle || cfg.Clipboard != ClipboardAuto || cfg.NoColor {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_ParsesFileAndFillsDefaults(t *testing.T) {
	home := setupHome(t)
	writeConfig(t, home, "default_library: seaborn\nclipboard: osc52\n")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Library() != catalog.Seaborn {
		t.Fatalf("unexpected library: %q", cfg.DefaultLibrary)
	}
	if cfg.Category() != catalog.AllCategories {
		t.Fatalf("unset category should default to all, got %q", cfg.DefaultCategory)
	}
	if cfg.Clipboard != ClipboardOSC52 || cfg.HighlightStyle != DefaultHighlightStyle {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoad_RejectsInvalidSelector(t *testing.T) {
	home := setupHome(t)
	writeConfig(t, home, "default_category: Basic\n")

	_, err := Load()
	if !errors.Is(err, ErrInvalidSelector) {
		t.Fatalf("expected ErrInvalidSelector, got %v", err)
	}
}

func TestLoad_EnvAndDotEnvOverrides(t *testing.T) {
	home := setupHome(t)
	writeConfig(t, home, "highlight_style: dracula\n")
	if err := os.WriteFile(filepath.Join(home, ".vizsheet", ".env"), []byte("VIZSHEET_CLIPBOARD=system\nVIZSHEET_HIGHLIGHT_STYLE=github\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("VIZSHEET_HIGHLIGHT_STYLE", "nord")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HighlightStyle != "nord" {
		t.Fatalf("process env should win, got %q", cfg.HighlightStyle)
	}
	if cfg.Clipboard != ClipboardSystem {
		t.Fatalf("dotenv should override the file, got %q", cfg.Clipboard)
	}

	fileOnly, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if fileOnly.HighlightStyle != "dracula" {
		t.Fatalf("LoadFile must ignore overrides, got %q", fileOnly.HighlightStyle)
	}
}

func TestLoad_NoColorEnv(t *testing.T) {
	setupHome(t)
	t.Setenv("NO_COLOR", "1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.NoColor {
		t.Fatal("NO_COLOR should disable color")
	}
}

func TestSet_ValidatesKeysAndValues(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Set("default_library", "plotly"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if cfg.Library() != catalog.Plotly {
		t.Fatalf("unexpected library %q", cfg.DefaultLibrary)
	}
	if err := cfg.Set("default_library", "ggplot"); !errors.Is(err, ErrInvalidSelector) {
		t.Fatalf("expected ErrInvalidSelector, got %v", err)
	}
	if err := cfg.Set("clipboard", "pbcopy"); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
	if err := cfg.Set("no_color", "yes"); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
	if err := cfg.Set("theme", "dark"); !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
}

func TestSave_RoundTripsThroughLock(t *testing.T) {
	home := setupHome(t)

	cfg := DefaultConfig()
	if err := cfg.Set("default_category", "advanced"); err != nil {
		t.Fatal(err)
	}
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, ".vizsheet", "vizsheet.yaml.lock")); err != nil {
		t.Fatalf("expected lock file: %v", err)
	}

	got, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got.Category() != catalog.Advanced {
		t.Fatalf("unexpected category %q", got.DefaultCategory)
	}

	// The lock is released after Save, so a second write succeeds at once.
	if err := Save(got); err != nil {
		t.Fatalf("second Save: %v", err)
	}
}

func TestUpdate_ConcurrentKeysAllPersist(t *testing.T) {
	setupHome(t)

	const rounds = 10
	styles := []string{"monokai", "dracula", "github"}
	var wg sync.WaitGroup
	errs := make(chan error, 2*rounds)

	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			errs <- Update(func(c *Config) error {
				return c.Set("highlight_style", styles[i%len(styles)])
			})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			v := "plotly"
			if i%2 == 1 {
				v = "seaborn"
			}
			errs <- Update(func(c *Config) error {
				return c.Set("default_library", v)
			})
		}
	}()
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
	}

	got, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if want := styles[(rounds-1)%len(styles)]; got.HighlightStyle != want {
		t.Fatalf("highlight_style = %q, want %q", got.HighlightStyle, want)
	}
	if got.Library() != catalog.Seaborn {
		t.Fatalf("default_library = %q, want seaborn", got.DefaultLibrary)
	}
}

func TestUpdate_FailureLeavesFileAlone(t *testing.T) {
	home := setupHome(t)
	writeConfig(t, home, "highlight_style: dracula\n")

	boom := errors.New("boom")
	if err := Update(func(c *Config) error {
		c.HighlightStyle = "nord"
		return boom
	}); !errors.Is(err, boom) {
		t.Fatalf("expected fn error, got %v", err)
	}
	if err := Update(func(c *Config) error {
		c.Clipboard = "pbcopy"
		return nil
	}); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}

	b, err := os.ReadFile(filepath.Join(home, ".vizsheet", "vizsheet.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "highlight_style: dracula\n" {
		t.Fatalf("file rewritten after a failed update: %q", b)
	}
}
