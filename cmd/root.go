package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/KaramelBytes/invsearch/internal/config"
	"github.com/KaramelBytes/invsearch/internal/inventory"
	"github.com/KaramelBytes/invsearch/internal/logging"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile       string
	debug         bool
	flagLogLevel  string
	flagLogFormat string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "invsearch",
	Short: "Search a lab inventory spreadsheet",
	Long: `invsearch loads one sheet of an inventory workbook (.xlsx, .csv, .tsv) and
finds the rows in which every query term appears in at least one of the
selected columns. Matching is case-insensitive literal substring matching.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.invsearch/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output (same as --log-level debug)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug|info|warn|error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "log format: text|json (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = defaultConfig()
	}
	cfg = c

	// Apply CLI overrides if provided
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if flagLogFormat != "" {
		cfg.LogFormat = flagLogFormat
	}
	if debug {
		cfg.LogLevel = "debug"
	}
	logging.Setup(rootCmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
}

// defaultConfig mirrors cfgpkg.Load's defaults without touching disk or env.
func defaultConfig() *cfgpkg.Global {
	c := &cfgpkg.Global{OutputFormat: "table", LogLevel: "warn", LogFormat: "text"}
	s := inventory.DefaultSchema()
	c.ForceTextColumns = s.ForceText
	c.SearchColumns = s.SearchColumns
	c.DisplayColumns = s.DisplayColumns
	c.NullMarkers = s.NullMarkers
	return c
}

// currentConfig returns the loaded configuration, loading it if a command runs
// outside of Execute.
func currentConfig() *cfgpkg.Global {
	if cfg == nil {
		loadConfig()
	}
	return cfg
}
