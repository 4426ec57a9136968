package cmd

import (
	"fmt"
	"strings"

	"github.com/kamusis/vizsheet/internal/config"
	"github.com/kamusis/vizsheet/internal/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change vizsheet settings",
	Long: `Show or change the settings stored in ~/.vizsheet/vizsheet.yaml.

Settable keys:
  default_library   library selected when none is given (all, matplotlib, ...)
  default_category  chart type selected when none is given (all, basic, ...)
  highlight_style   chroma style for code (see 'vizsheet config styles')
  clipboard         auto, system or osc52
  no_color          true to disable colors and highlighting

VIZSHEET_HIGHLIGHT_STYLE, VIZSHEET_CLIPBOARD and NO_COLOR override the file,
from the process environment or ~/.vizsheet/.env.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a key in vizsheet.yaml",
	Example: `  vizsheet config set default_library seaborn
  vizsheet config set clipboard osc52`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configStylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List the available highlight styles",
	Args:  cobra.NoArgs,
	RunE:  runConfigStyles,
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd, configStylesCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path, err := config.ConfigPath()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	fmt.Fprintf(stdout, "# %s (with environment overrides)\n", path)
	fmt.Fprint(stdout, string(data))
	return nil
}

func runConfigSet(_ *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	// Update works on the file alone so env overrides are not written back.
	if err := config.Update(func(cfg *config.Config) error {
		return cfg.Set(key, value)
	}); err != nil {
		return err
	}
	if key == "highlight_style" && !render.StyleExists(value) {
		printWarn("", fmt.Sprintf("unknown highlight style %q; code will use the fallback style", value))
	}
	logger.Debug("config updated", zap.String("key", key), zap.String("value", value))
	printOK("", fmt.Sprintf("%s = %s", key, value))
	return nil
}

func runConfigStyles(_ *cobra.Command, _ []string) error {
	fmt.Fprintln(stdout, strings.Join(render.StyleNames(), "\n"))
	return nil
}
