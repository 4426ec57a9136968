package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/kamusis/vizsheet/internal/catalog"
	"github.com/spf13/cobra"
)

var flagLibrariesCategories bool

var librariesCmd = &cobra.Command{
	Use:     "libraries",
	Aliases: []string{"guide", "libs"},
	Short:   "Show the library quick guide",
	Long: `Show every supported library grouped as Core, Interactive and
Specialized, with the number of charts and what each library is best for.

With --categories, list the chart types instead.`,
	Args: cobra.NoArgs,
	RunE: runLibraries,
}

func init() {
	librariesCmd.Flags().BoolVar(&flagLibrariesCategories, "categories", false, "List chart types and their counts")
	rootCmd.AddCommand(librariesCmd)
}

func runLibraries(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if flagLibrariesCategories {
		printSection("Chart types")
		counts := make(map[catalog.Category]int)
		for _, e := range catalog.Default().Entries() {
			counts[e.Category]++
		}
		w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
		for _, c := range catalog.Categories() {
			fmt.Fprintf(w, "  %s\t%s\t%d chart(s)\n", c, c.Label(), counts[c])
		}
		return w.Flush()
	}

	printSection("Library Quick Guide")
	fmt.Fprintln(stdout)
	fmt.Fprint(stdout, newRenderer(cfg).Guide(catalog.Default()))
	return nil
}
