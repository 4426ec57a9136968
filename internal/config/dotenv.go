package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Environment overrides for vizsheet.yaml. Each may also be set in
// ~/.vizsheet/.env; the process environment wins.
const (
	EnvHighlightStyle = "VIZSHEET_HIGHLIGHT_STYLE"
	EnvClipboard      = "VIZSHEET_CLIPBOARD"
	EnvNoColor        = "NO_COLOR"
)

// overrideKeys lists the keys the .env template offers, with the comment
// written above each.
var overrideKeys = []struct {
	key, help string
}{
	{EnvHighlightStyle, "chroma style for code, e.g. monokai, dracula, github"},
	{EnvClipboard, "auto, system or osc52"},
	{EnvNoColor, "any non-empty value disables colors and highlighting"},
}

// DotEnv holds the key/value pairs read from ~/.vizsheet/.env.
type DotEnv map[string]string

// Lookup returns the value for key from the process environment, falling
// back to the .env file. Empty values count as unset.
func (d DotEnv) Lookup(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return d[key]
}

// DotEnvPath returns the absolute path to ~/.vizsheet/.env.
func DotEnvPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".env"), nil
}

// ReadDotEnv parses ~/.vizsheet/.env. A missing file is empty.
//
// Lines are KEY=VALUE with an optional leading "export ". Blank lines and
// '#' comments are skipped, and one pair of matching quotes around VALUE is
// removed.
func ReadDotEnv() (DotEnv, error) {
	p, err := DotEnvPath()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return DotEnv{}, nil
		}
		return nil, fmt.Errorf("cannot open dotenv file %s: %w", p, err)
	}
	defer f.Close()

	env := DotEnv{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		k, v, ok := strings.Cut(line, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			continue
		}
		env[k] = unquote(strings.TrimSpace(v))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read dotenv file %s: %w", p, err)
	}
	return env, nil
}

func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}

// applyOverrides copies the environment overrides onto cfg.
func applyOverrides(cfg *Config, env DotEnv) error {
	if v := env.Lookup(EnvHighlightStyle); v != "" {
		cfg.HighlightStyle = v
	}
	if v := env.Lookup(EnvClipboard); v != "" {
		if !validClipboard(v) {
			return fmt.Errorf("%s: %w: %q", EnvClipboard, ErrInvalidValue, v)
		}
		cfg.Clipboard = v
	}
	if env.Lookup(EnvNoColor) != "" {
		cfg.NoColor = true
	}
	return nil
}

// EnsureDotEnvTemplate writes ~/.vizsheet/.env with every override key
// commented and empty. An existing file is left alone.
func EnsureDotEnvTemplate() error {
	p, err := DotEnvPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(p); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("cannot stat dotenv file %s: %w", p, err)
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("cannot create config dir: %w", err)
	}

	var b strings.Builder
	b.WriteString("# Overrides for vizsheet.yaml. The process environment wins over this file.\n")
	for _, k := range overrideKeys {
		fmt.Fprintf(&b, "\n# %s\n%s=\n", k.help, k.key)
	}
	if err := os.WriteFile(p, []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("cannot write dotenv template %s: %w", p, err)
	}
	return nil
}
