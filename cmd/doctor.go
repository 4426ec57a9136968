package cmd

import (
	"fmt"
	"os"

	"github.com/kamusis/vizsheet/internal/catalog"
	"github.com/kamusis/vizsheet/internal/clipboard"
	"github.com/kamusis/vizsheet/internal/config"
	"github.com/kamusis/vizsheet/internal/render"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run environment checks",
	Long: `Check that vizsheet's settings, built-in catalog, clipboard and terminal
are usable. Run this command when copying or colors do not work.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// clipboardAvailable is swapped by tests.
var clipboardAvailable = clipboard.Available

func runDoctor(_ *cobra.Command, _ []string) error {
	allOK := true
	failD := func(format string, args ...any) {
		printErr("", fmt.Sprintf(format, args...))
		allOK = false
	}

	printSection("vizsheet doctor")
	fmt.Fprintln(stdout)

	// ── Check 1: settings directory ───────────────────────────────────────────
	fmt.Fprintln(stdout, "[ Settings ]")
	cfgPath, err := config.ConfigPath()
	if err != nil {
		failD("cannot determine home directory: %v", err)
	} else if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		printSkip("", fmt.Sprintf("%s not found, using defaults (run 'vizsheet init' to create it)", cfgPath))
	} else {
		printOK("", fmt.Sprintf("config file: %s", cfgPath))
	}
	fmt.Fprintln(stdout)

	// ── Check 2: vizsheet.yaml is valid ───────────────────────────────────────
	fmt.Fprintln(stdout, "[ vizsheet.yaml ]")
	cfg, loadErr := loadConfig()
	if loadErr != nil {
		failD("%v", loadErr)
	} else {
		printOK("", fmt.Sprintf("default library: %s, default type: %s", cfg.Library().Label(), cfg.Category().Label()))
		if render.StyleExists(cfg.HighlightStyle) {
			printOK("", fmt.Sprintf("highlight style: %s", cfg.HighlightStyle))
		} else {
			printWarn("", fmt.Sprintf("unknown highlight style %q (see 'vizsheet config styles')", cfg.HighlightStyle))
		}
	}
	fmt.Fprintln(stdout)

	// ── Check 3: built-in catalog ─────────────────────────────────────────────
	fmt.Fprintln(stdout, "[ Catalog ]")
	if c, err := catalog.Check(); err != nil {
		failD("built-in catalog is invalid: %v", err)
	} else {
		printOK("", fmt.Sprintf("%d charts across %d libraries", c.Len(), len(catalog.Libraries())))
		counts := c.CountByLibrary()
		for _, l := range catalog.Libraries() {
			if counts[l] == 0 {
				printWarn(l.Label(), "no charts")
			}
			if _, ok := c.Guide(l); !ok {
				printMiss(l.Label(), "no quick-guide entry")
			}
		}
	}
	fmt.Fprintln(stdout)

	// ── Check 4: clipboard ────────────────────────────────────────────────────
	fmt.Fprintln(stdout, "[ Clipboard ]")
	if loadErr != nil {
		printWarn("", "skipped (vizsheet.yaml not loaded)")
	} else {
		sys := clipboardAvailable()
		switch cfg.Clipboard {
		case config.ClipboardSystem:
			if sys {
				printOK("", "system clipboard available")
			} else {
				failD("clipboard is 'system' but no xclip, xsel or wl-copy was found; install one or set clipboard to osc52")
			}
		case config.ClipboardOSC52:
			printOK("", "OSC 52 (the terminal must allow clipboard writes)")
		default:
			if sys {
				printOK("", "system clipboard available, OSC 52 as fallback")
			} else {
				printWarn("", "system clipboard unavailable, copies will use OSC 52")
			}
		}
		if os.Getenv("TMUX") != "" {
			printInfo("", "inside tmux: OSC 52 needs 'set -g set-clipboard on'")
		}
	}
	fmt.Fprintln(stdout)

	// ── Check 5: terminal colors ──────────────────────────────────────────────
	fmt.Fprintln(stdout, "[ Terminal ]")
	if loadErr == nil && cfg.NoColor {
		printSkip("", "colors disabled by no_color, NO_COLOR or --no-color")
	} else {
		printInfo("", "color profile: "+profileName(termenv.EnvColorProfile()))
	}
	fmt.Fprintln(stdout)

	// ── Summary ───────────────────────────────────────────────────────────────
	fmt.Fprintln(stdout, "===================")
	if allOK {
		fmt.Fprintln(stdout, "✓  All checks passed. vizsheet is ready to use.")
		return nil
	}
	fmt.Fprintln(stderr, "✗  One or more checks failed. See details above.")
	return fmt.Errorf("doctor found issues")
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "true color"
	case termenv.ANSI256:
		return "256 colors"
	case termenv.ANSI:
		return "16 colors"
	default:
		return "no color"
	}
}
