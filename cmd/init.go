package cmd

import (
	"fmt"
	"os"

	"github.com/kamusis/vizsheet/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create ~/.vizsheet with a default config and .env template",
	Long: `Initialize vizsheet's settings directory at ~/.vizsheet/.

Writes vizsheet.yaml with default values and a .env template for
environment-style overrides. Existing files are left untouched.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	// ── 1. Resolve ~/.vizsheet directory ──────────────────────────────────────
	dir, err := config.Dir()
	if err != nil {
		return err
	}
	cfgPath, err := config.ConfigPath()
	if err != nil {
		return err
	}

	// ── 2. Create ~/.vizsheet/ if it doesn't exist ────────────────────────────
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}
	printOK("", fmt.Sprintf("vizsheet directory ready: %s", dir))

	// ── 3. Write vizsheet.yaml if missing ─────────────────────────────────────
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		if err := config.Save(config.DefaultConfig()); err != nil {
			return err
		}
		printOK("", fmt.Sprintf("Config written: %s", cfgPath))
	} else {
		printSkip("", fmt.Sprintf("Config already exists: %s", cfgPath))
	}

	// ── 4. Write .env template if missing ─────────────────────────────────────
	envPath, err := config.DotEnvPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		if err := config.EnsureDotEnvTemplate(); err != nil {
			return err
		}
		printOK("", fmt.Sprintf(".env template written: %s", envPath))
	} else {
		printSkip("", fmt.Sprintf(".env already exists: %s", envPath))
	}

	// ── 5. Validate the result ────────────────────────────────────────────────
	if _, err := config.Load(); err != nil {
		return err
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "  Next: 'vizsheet list' to see every chart, or 'vizsheet browse' to search interactively.")
	return nil
}
