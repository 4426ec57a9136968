package cmd

import (
	"fmt"
	"strings"

	"github.com/kamusis/vizsheet/internal/catalog"
	"github.com/kamusis/vizsheet/internal/config"
	"github.com/kamusis/vizsheet/internal/render"
	"github.com/kamusis/vizsheet/internal/search"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagListLibrary  string
	flagListCategory string
	flagListIDs      bool
	flagListFull     bool
)

var listCmd = &cobra.Command{
	Use:     "list [query...]",
	Aliases: []string{"search", "ls"},
	Short:   "List charts matching a library, type and search text",
	Long: `List catalog entries in catalog order, narrowed by library, chart type
and a case-insensitive search over title, description and usage guidance.

Library and type default to the values in ~/.vizsheet/vizsheet.yaml.

Example:
  vizsheet list
  vizsheet list --library seaborn
  vizsheet list -l plotly -c advanced
  vizsheet list bar`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&flagListLibrary, "library", "l", "", "Library to show (all, matplotlib, seaborn, pandas, plotly, bokeh, altair, folium, networkx)")
	listCmd.Flags().StringVarP(&flagListCategory, "category", "c", "", "Chart type to show (all, basic, statistical, advanced)")
	listCmd.Flags().BoolVar(&flagListIDs, "ids", false, "Print only matching ids, one per line")
	listCmd.Flags().BoolVar(&flagListFull, "full", false, "Print full cards with code instead of one line per chart")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	state, err := stateFromFlags(cmd, cfg, flagListLibrary, flagListCategory, strings.Join(args, " "))
	if err != nil {
		return err
	}

	results := state.Apply(catalog.Default().Entries())
	logger.Debug("filter applied",
		zap.String("library", string(state.Library)),
		zap.String("category", string(state.Category)),
		zap.String("query", state.Query),
		zap.Int("matches", len(results)),
	)

	if flagListIDs {
		for _, e := range results {
			fmt.Fprintln(stdout, e.ID)
		}
		return nil
	}
	printResults(newRenderer(cfg), results, flagListFull)
	return nil
}

// stateFromFlags builds the filter state from the --library and --category
// values of cmd, falling back to the configured defaults when a flag was not
// given.
func stateFromFlags(cmd *cobra.Command, cfg *config.Config, lib, cat, query string) (*search.State, error) {
	state := search.NewState()
	state.SetLibrary(cfg.Library())
	state.SetCategory(cfg.Category())
	state.SetQuery(query)

	if cmd.Flags().Changed("library") {
		l, err := catalog.ParseLibrary(lib)
		if err != nil {
			return nil, err
		}
		state.SetLibrary(l)
	}
	if cmd.Flags().Changed("category") {
		c, err := catalog.ParseCategory(cat)
		if err != nil {
			return nil, err
		}
		state.SetCategory(c)
	}
	return state, nil
}

func printResults(r *render.Renderer, results []catalog.Entry, full bool) {
	fmt.Fprintln(stdout, render.ResultCount(len(results)))
	if len(results) == 0 {
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, render.NoResults)
		return
	}
	fmt.Fprintln(stdout)
	for i, e := range results {
		if !full {
			fmt.Fprintln(stdout, r.Row(e))
			continue
		}
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		fmt.Fprint(stdout, r.Card(e))
	}
}
