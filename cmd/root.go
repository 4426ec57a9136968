package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/kamusis/vizsheet/internal/clipboard"
	"github.com/kamusis/vizsheet/internal/config"
	"github.com/kamusis/vizsheet/internal/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger = zap.NewNop()

	flagVerbose bool
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:          "vizsheet",
	Short:        "Python data-visualization cheat sheet for the terminal",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `vizsheet is a searchable catalog of ready-to-use plotting snippets for
Matplotlib, Seaborn, Pandas, Plotly, Bokeh, Altair, Folium and NetworkX.

Filter by library, chart type and free text, then copy a snippet straight
to the clipboard.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if flagVerbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colors and syntax highlighting")
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig loads ~/.vizsheet/vizsheet.yaml with env overrides and applies
// the global --no-color flag on top.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w\nRun 'vizsheet config show' to inspect it.", err)
	}
	if flagNoColor {
		cfg.NoColor = true
	}
	logger.Debug("config loaded",
		zap.String("default_library", cfg.DefaultLibrary),
		zap.String("default_category", cfg.DefaultCategory),
		zap.String("highlight_style", cfg.HighlightStyle),
		zap.String("clipboard", cfg.Clipboard),
		zap.Bool("no_color", cfg.NoColor),
	)
	return cfg, nil
}

func newRenderer(cfg *config.Config) *render.Renderer {
	return render.New(stdout, cfg.HighlightStyle, cfg.NoColor)
}

// newCopier is swapped by tests.
var newCopier = func(cfg *config.Config, term io.Writer) (clipboard.Copier, error) {
	return clipboard.New(cfg.Clipboard, term)
}
