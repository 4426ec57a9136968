package cmd

import (
	"fmt"

	"github.com/kamusis/vizsheet/internal/catalog"
	"github.com/spf13/cobra"
)

var flagSetupPlain bool

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Print the snippet that installs and imports every library",
	Long: `Print the notebook setup snippet: pip install for all eight libraries
followed by the conventional imports. Paste it at the top of a notebook
before using any chart.

Use 'vizsheet copy --setup' to put it on the clipboard instead.`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().BoolVar(&flagSetupPlain, "plain", false, "Print the raw snippet without highlighting")
	rootCmd.AddCommand(setupCmd)
}

func setupSnippet() string {
	return catalog.Default().Setup()
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagSetupPlain {
		fmt.Fprintln(stdout, setupSnippet())
		return nil
	}
	fmt.Fprintln(stdout, newRenderer(cfg).Code(setupSnippet()))
	return nil
}
