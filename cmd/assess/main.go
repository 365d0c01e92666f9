package main

import (
	"fmt"
	"os"

	"assess/internal/config"
	"assess/internal/logging"
	"assess/internal/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	// Global flags
	configPath string
	format     string
	tuiMode    bool
	verbose    bool

	cfg     *config.Config
	loggers = logging.Nop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "assess",
	Short: "Negotiation style self-assessment",
	Long: `assess walks you through 25 statements about how you handle conflict.

Rate each statement from 0 (never) to 5 (always). Ratings are added up
into five styles: Avoidance, Aggression, Accommodation, Compromise and
Collaboration. Totals are printed when the last statement is rated.

Nothing is saved. Interrupt at any time to abandon the sitting.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = loggers.Sync()
	},
	RunE: runSurvey,
}

// statementsCmd lists the instrument and its scoring key
var statementsCmd = &cobra.Command{
	Use:   "statements",
	Short: "List the statements and the categories they score toward",
	Args:  cobra.NoArgs,
	RunE:  listStatements,
}

// guideCmd explains the rating scale and the five styles
var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Explain the rating scale and the five styles",
	Args:  cobra.NoArgs,
	RunE:  showGuide,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "assess %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ~/.assess/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to the log file")
	rootCmd.Flags().StringVarP(&format, "format", "f", "", "Report format: text|table|json|markdown (overrides config)")
	rootCmd.Flags().BoolVar(&tuiMode, "tui", false, "Use the full-screen terminal UI")

	rootCmd.AddCommand(statementsCmd)
	rootCmd.AddCommand(guideCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration, applies flag overrides and builds loggers.
func setup(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}

	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	if format != "" {
		loaded.Report.Format = format
	}
	if tuiMode {
		loaded.UI.Mode = "tui"
	}
	if verbose {
		loaded.Logging.DebugMode = true
		loaded.Logging.Level = "debug"
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	loggers, err = logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	loggers.Get(logging.CategoryBoot).Debug("configuration resolved",
		zap.String("config", path),
		zap.String("command", cmd.Name()),
		zap.String("format", cfg.Report.Format),
		zap.String("ui", cfg.UI.Mode),
		zap.String("theme", cfg.UI.Theme))
	return nil
}

func styles() ui.Styles {
	return ui.NewStyles(ui.ThemeByName(cfg.UI.Theme))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
