package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/kamusis/vizsheet/internal/catalog"
	"gopkg.in/yaml.v3"
)

// Clipboard modes.
const (
	ClipboardAuto   = "auto"
	ClipboardSystem = "system"
	ClipboardOSC52  = "osc52"
)

// DefaultHighlightStyle is the chroma style used when none is configured.
const DefaultHighlightStyle = "monokai"

var (
	// ErrInvalidSelector indicates a default library/category outside its enumeration.
	ErrInvalidSelector = errors.New("invalid default selector")
	// ErrUnknownKey is returned by Set for keys that do not exist.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned by Set for values a key cannot hold.
	ErrInvalidValue = errors.New("invalid config value")
)

// Config is the in-memory representation of ~/.vizsheet/vizsheet.yaml.
type Config struct {
	DefaultLibrary  string `yaml:"default_library,omitempty"`
	DefaultCategory string `yaml:"default_category,omitempty"`
	HighlightStyle  string `yaml:"highlight_style,omitempty"`
	Clipboard       string `yaml:"clipboard,omitempty"`
	NoColor         bool   `yaml:"no_color,omitempty"`
}

// Dir returns the absolute path to ~/.vizsheet/.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".vizsheet"), nil
}

// ConfigPath returns the absolute path to ~/.vizsheet/vizsheet.yaml.
func ConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "vizsheet.yaml"), nil
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		DefaultLibrary:  string(catalog.AllLibraries),
		DefaultCategory: string(catalog.AllCategories),
		HighlightStyle:  DefaultHighlightStyle,
		Clipboard:       ClipboardAuto,
	}
}

// LoadFile reads ~/.vizsheet/vizsheet.yaml without applying environment
// overrides. A missing file yields DefaultConfig.
func LoadFile() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Load reads the config file and applies overrides from the process
// environment and ~/.vizsheet/.env.
func Load() (*Config, error) {
	cfg, err := LoadFile()
	if err != nil {
		return nil, err
	}
	env, err := ReadDotEnv()
	if err != nil {
		return nil, err
	}
	if err := applyOverrides(cfg, env); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) fillDefaults() {
	d := DefaultConfig()
	if c.DefaultLibrary == "" {
		c.DefaultLibrary = d.DefaultLibrary
	}
	if c.DefaultCategory == "" {
		c.DefaultCategory = d.DefaultCategory
	}
	if c.HighlightStyle == "" {
		c.HighlightStyle = d.HighlightStyle
	}
	if c.Clipboard == "" {
		c.Clipboard = d.Clipboard
	}
}

// Validate checks the selectors and clipboard mode.
func (c *Config) Validate() error {
	if _, err := catalog.ParseLibrary(c.DefaultLibrary); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSelector, err)
	}
	if _, err := catalog.ParseCategory(c.DefaultCategory); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSelector, err)
	}
	if !validClipboard(c.Clipboard) {
		return fmt.Errorf("clipboard: %w: %q", ErrInvalidValue, c.Clipboard)
	}
	return nil
}

// Library returns the default library selector. Validate has already
// rejected bad values, so an error here falls back to "all".
func (c *Config) Library() catalog.Library {
	l, err := catalog.ParseLibrary(c.DefaultLibrary)
	if err != nil {
		return catalog.AllLibraries
	}
	return l
}

// Category returns the default category selector.
func (c *Config) Category() catalog.Category {
	cat, err := catalog.ParseCategory(c.DefaultCategory)
	if err != nil {
		return catalog.AllCategories
	}
	return cat
}

var setters = map[string]func(c *Config, v string) error{
	"default_library": func(c *Config, v string) error {
		if _, err := catalog.ParseLibrary(v); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSelector, err)
		}
		c.DefaultLibrary = v
		return nil
	},
	"default_category": func(c *Config, v string) error {
		if _, err := catalog.ParseCategory(v); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSelector, err)
		}
		c.DefaultCategory = v
		return nil
	},
	"highlight_style": func(c *Config, v string) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: empty style", ErrInvalidValue)
		}
		c.HighlightStyle = v
		return nil
	},
	"clipboard": func(c *Config, v string) error {
		if !validClipboard(v) {
			return fmt.Errorf("%w: %q (valid: auto, system, osc52)", ErrInvalidValue, v)
		}
		c.Clipboard = v
		return nil
	},
	"no_color": func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %q is not a boolean", ErrInvalidValue, v)
		}
		c.NoColor = b
		return nil
	},
}

// Keys returns the settable keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set assigns value to key after validating it.
func (c *Config) Set(key, value string) error {
	fn, ok := setters[key]
	if !ok {
		return fmt.Errorf("%w %q (valid: %s)", ErrUnknownKey, key, strings.Join(Keys(), ", "))
	}
	return fn(c, value)
}

func validClipboard(v string) bool {
	switch v {
	case ClipboardAuto, ClipboardSystem, ClipboardOSC52:
		return true
	}
	return false
}

// saveLockTimeout bounds how long Save and Update wait for a concurrent writer.
const saveLockTimeout = 5 * time.Second

// Save marshals cfg and writes it to ~/.vizsheet/vizsheet.yaml while holding
// an exclusive lock on vizsheet.yaml.lock.
func Save(cfg *Config) error {
	path, unlock, err := lockConfig()
	if err != nil {
		return err
	}
	defer unlock()
	return writeFile(path, cfg)
}

// Update applies fn to the config file and writes the result back. The lock
// is held from the read to the write, so concurrent updates of different
// keys never drop one another. Environment overrides are not applied, and
// nothing is written if fn or validation fails.
func Update(fn func(*Config) error) error {
	path, unlock, err := lockConfig()
	if err != nil {
		return err
	}
	defer unlock()

	cfg, err := LoadFile()
	if err != nil {
		return err
	}
	if err := fn(cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	return writeFile(path, cfg)
}

func lockConfig() (string, func(), error) {
	path, err := ConfigPath()
	if err != nil {
		return "", nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", nil, fmt.Errorf("cannot create config dir: %w", err)
	}
	unlock, err := acquireLock(path+".lock", saveLockTimeout)
	if err != nil {
		return "", nil, err
	}
	return path, unlock, nil
}

func writeFile(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}

func acquireLock(lockPath string, timeout time.Duration) (func(), error) {
	l := flock.New(lockPath)
	deadline := time.Now().Add(timeout)
	for {
		locked, err := l.TryLock()
		if err != nil {
			return func() {}, fmt.Errorf("cannot acquire config lock: %w", err)
		}
		if locked {
			return func() { _ = l.Unlock() }, nil
		}
		if time.Now().After(deadline) {
			return func() {}, fmt.Errorf("another process is writing the config (lock: %s)", lockPath)
		}
		time.Sleep(100 * time.Millisecond)
	}
}
