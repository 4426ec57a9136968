package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/kamusis/vizsheet/internal/catalog"
	"github.com/kamusis/vizsheet/internal/tui"
	"github.com/spf13/cobra"
)

var (
	flagBrowseLibrary  string
	flagBrowseCategory string
)

var browseCmd = &cobra.Command{
	Use:   "browse [query...]",
	Short: "Browse and search the catalog interactively",
	Long: `Open a full-screen browser over the catalog. Typing narrows the list as
you go; the filter is never persisted.

Keys:
  tab / shift+tab  next / previous library
  ctrl+t           next chart type
  up / down        move the selection
  pgup / pgdown    scroll the code pane
  ctrl+y           copy the selected chart's code
  esc              clear filters, or quit when nothing is filtered
  ctrl+c           quit`,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringVarP(&flagBrowseLibrary, "library", "l", "", "Initial library filter")
	browseCmd.Flags().StringVarP(&flagBrowseCategory, "category", "c", "", "Initial chart type filter")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	state, err := stateFromFlags(cmd, cfg, flagBrowseLibrary, flagBrowseCategory, strings.Join(args, " "))
	if err != nil {
		return err
	}

	// OSC 52 must reach the real terminal, not the alt-screen buffer.
	copier, err := newCopier(cfg, os.Stderr)
	if err != nil {
		return err
	}
	m := tui.New(catalog.Default(), state, copier, newRenderer(cfg))
	if err := tui.Run(m); err != nil {
		return fmt.Errorf("browser exited: %w", err)
	}
	return nil
}
