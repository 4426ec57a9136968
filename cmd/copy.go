package cmd

import (
	"fmt"

	"github.com/kamusis/vizsheet/internal/clipboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var flagCopySetup bool

var copyCmd = &cobra.Command{
	Use:   "copy [chart-id]",
	Short: "Copy a chart's code (or the setup snippet) to the clipboard",
	Long: `Copy the code of a catalog entry to the clipboard.

The clipboard backend comes from the 'clipboard' config key: 'system' uses the
OS clipboard, 'osc52' asks the terminal to set it (works over SSH), and 'auto'
tries the OS clipboard first and falls back to OSC 52.

Example:
  vizsheet copy plotly-scatter
  vizsheet copy --setup`,
	Args: func(cmd *cobra.Command, args []string) error {
		if flagCopySetup {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: runCopy,
}

func init() {
	copyCmd.Flags().BoolVar(&flagCopySetup, "setup", false, "Copy the install-and-import setup snippet instead of a chart")
	rootCmd.AddCommand(copyCmd)
}

func runCopy(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	text, what := "", "Code"
	if flagCopySetup {
		text, what = setupSnippet(), "Setup code"
	} else {
		e, err := lookupEntry(args[0])
		if err != nil {
			return err
		}
		text = e.Code
	}

	// OSC 52 goes to stderr so it still reaches the terminal when stdout is piped.
	copier, err := newCopier(cfg, stderr)
	if err != nil {
		return err
	}
	logger.Debug("copying", zap.String("copier", copier.Name()), zap.Int("bytes", len(text)))

	if err := clipboard.CopyText(copier, cliNotifier(), text, what); err != nil {
		return fmt.Errorf("copy failed: %w", err)
	}
	return nil
}

// cliNotifier prints copy notices with the standard output icons.
func cliNotifier() clipboard.Notifier {
	return clipboard.NotifierFunc(func(n clipboard.Notice) {
		if n.Err != nil {
			printErr("", n.Title+": "+n.Description)
			return
		}
		printOK("", n.Title+" "+n.Description)
	})
}
