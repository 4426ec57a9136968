package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/kamusis/vizsheet/internal/catalog"
	"github.com/kamusis/vizsheet/internal/render"
	"github.com/spf13/cobra"
)

var (
	flagExportLibrary  string
	flagExportCategory string
	flagExportOutput   string
	flagExportRender   bool
)

var exportCmd = &cobra.Command{
	Use:   "export [query...]",
	Short: "Export matching charts as a Markdown cheat sheet",
	Long: `Write the charts matching the filters as Markdown, one section per chart
with its usage guidance, code block and tip.

Example:
  vizsheet export -l seaborn -o seaborn.md
  vizsheet export heatmap --render`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportLibrary, "library", "l", "", "Library to export")
	exportCmd.Flags().StringVarP(&flagExportCategory, "category", "c", "", "Chart type to export")
	exportCmd.Flags().StringVarP(&flagExportOutput, "output", "o", "", "Write to this file instead of stdout")
	exportCmd.Flags().BoolVar(&flagExportRender, "render", false, "Render the Markdown for the terminal instead of printing it raw")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	state, err := stateFromFlags(cmd, cfg, flagExportLibrary, flagExportCategory, strings.Join(args, " "))
	if err != nil {
		return err
	}

	md := render.Markdown(exportTitle(state.Library, state.Category), state.Apply(catalog.Default().Entries()))
	if flagExportRender {
		if md, err = render.RenderMarkdown(md, cfg.NoColor); err != nil {
			return err
		}
	}

	if flagExportOutput == "" {
		fmt.Fprint(stdout, md)
		return nil
	}
	if err := os.WriteFile(flagExportOutput, []byte(md), 0o644); err != nil {
		return fmt.Errorf("cannot write %s: %w", flagExportOutput, err)
	}
	printOK("", fmt.Sprintf("Exported to %s", flagExportOutput))
	return nil
}

func exportTitle(lib catalog.Library, cat catalog.Category) string {
	parts := []string{"Data Visualization Cheat Sheet"}
	if lib != catalog.AllLibraries {
		parts = append(parts, lib.Label())
	}
	if cat != catalog.AllCategories {
		parts = append(parts, cat.Label())
	}
	return strings.Join(parts, ": ")
}
