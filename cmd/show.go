package cmd

import (
	"fmt"

	"github.com/kamusis/vizsheet/internal/catalog"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var flagShowCodeOnly bool

var showCmd = &cobra.Command{
	Use:     "show <chart-id>",
	Aliases: []string{"inspect"},
	Short:   "Show a chart's description, usage guidance, code and tip",
	Long: `Display a single catalog entry as a card: title with library and type
badges, description, when to use it, the highlighted snippet and the pro tip.

Use 'vizsheet list --ids' to see every id.

Example:
  vizsheet show sns-heatmap
  vizsheet show mpl-bar --code > bar.py`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&flagShowCodeOnly, "code", false, "Print only the raw snippet, without highlighting")
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	e, err := lookupEntry(args[0])
	if err != nil {
		return err
	}
	if flagShowCodeOnly {
		fmt.Fprintln(stdout, e.Code)
		return nil
	}
	fmt.Fprint(stdout, newRenderer(cfg).Card(e))
	return nil
}

// lookupEntry resolves id in the built-in catalog. A miss returns a
// *catalog.LookupError whose message lists the closest ids.
func lookupEntry(id string) (catalog.Entry, error) {
	e, err := catalog.Default().Lookup(id)
	if err != nil {
		logger.Debug("lookup miss", zap.String("id", id), zap.Error(err))
		return catalog.Entry{}, err
	}
	return e, nil
}
