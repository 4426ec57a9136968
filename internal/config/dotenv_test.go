package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDotEnv(t *testing.T, home, body string) string {
	t.Helper()
	dir := filepath.Join(home, ".vizsheet")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	p := filepath.Join(dir, ".env")
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestReadDotEnv_NotExist(t *testing.T) {
	setupHome(t)

	env, err := ReadDotEnv()
	if err != nil {
		t.Fatalf("ReadDotEnv: %v", err)
	}
	if len(env) != 0 {
		t.Fatalf("expected empty map, got %v", env)
	}
}

func TestReadDotEnv_ExportAndQuotes(t *testing.T) {
	home := setupHome(t)
	writeDotEnv(t, home, `# comment

export VIZSHEET_HIGHLIGHT_STYLE="solarized-dark"
VIZSHEET_CLIPBOARD = 'osc52'
NO_COLOR="1
not a pair
=orphan
`)

	env, err := ReadDotEnv()
	if err != nil {
		t.Fatalf("ReadDotEnv: %v", err)
	}
	want := DotEnv{
		EnvHighlightStyle: "solarized-dark",
		EnvClipboard:      "osc52",
		EnvNoColor:        `"1`,
	}
	if len(env) != len(want) {
		t.Fatalf("unexpected keys: %v", env)
	}
	for k, v := range want {
		if env[k] != v {
			t.Fatalf("%s = %q, want %q", k, env[k], v)
		}
	}
}

func TestDotEnvLookup_ProcessEnvWins(t *testing.T) {
	setupHome(t)
	env := DotEnv{EnvHighlightStyle: "github", EnvClipboard: "system"}
	t.Setenv(EnvHighlightStyle, "nord")

	if got := env.Lookup(EnvHighlightStyle); got != "nord" {
		t.Fatalf("expected process env, got %q", got)
	}
	if got := env.Lookup(EnvClipboard); got != "system" {
		t.Fatalf("expected dotenv fallback, got %q", got)
	}
	if got := env.Lookup(EnvNoColor); got != "" {
		t.Fatalf("expected unset, got %q", got)
	}
}

func TestApplyOverrides_RejectsUnknownClipboard(t *testing.T) {
	setupHome(t)
	cfg := DefaultConfig()
	if err := applyOverrides(cfg, DotEnv{EnvClipboard: "xclip"}); err == nil {
		t.Fatal("expected an error for an unknown clipboard backend")
	}
	if cfg.Clipboard != ClipboardAuto {
		t.Fatalf("config changed on error: %q", cfg.Clipboard)
	}
}

func TestEnsureDotEnvTemplate_DoesNotOverwrite(t *testing.T) {
	home := setupHome(t)
	p := writeDotEnv(t, home, "VIZSHEET_CLIPBOARD=osc52\n")

	if err := EnsureDotEnvTemplate(); err != nil {
		t.Fatalf("EnsureDotEnvTemplate: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "VIZSHEET_CLIPBOARD=osc52\n" {
		t.Fatalf("template overwrote existing file: %q", string(b))
	}
}

func TestEnsureDotEnvTemplate_ListsEveryOverride(t *testing.T) {
	home := setupHome(t)

	if err := EnsureDotEnvTemplate(); err != nil {
		t.Fatalf("EnsureDotEnvTemplate: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(home, ".vizsheet", ".env"))
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{EnvHighlightStyle, EnvClipboard, EnvNoColor} {
		if !strings.Contains(string(b), "\n"+k+"=\n") {
			t.Fatalf("template missing %s:\n%s", k, b)
		}
	}

	// An untouched template overrides nothing.
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HighlightStyle != DefaultHighlightStyle || cfg.Clipboard != ClipboardAuto || cfg.NoColor {
		t.Fatalf("template changed defaults: %+v", cfg)
	}
}
