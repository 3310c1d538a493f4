package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/DCTR-QUASAR/Hytale-Playtime/internal/config"
	"github.com/DCTR-QUASAR/Hytale-Playtime/internal/logging"
	"github.com/DCTR-QUASAR/Hytale-Playtime/internal/paths"
	"github.com/DCTR-QUASAR/Hytale-Playtime/internal/report"
	"github.com/DCTR-QUASAR/Hytale-Playtime/internal/scan"
)

type globalFlags struct {
	configPath string
	logDir     string
	cachePath  string
	noPause    bool
	verbose    bool
}

var flags globalFlags

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hytale-playtime",
		Short: "Estimate total Hytale play time from the game's logs",
		Long: `hytale-playtime scans the Hytale client logs, counts the time between
log lines that are less than five minutes apart, and keeps a running total
in a cache file so repeated runs never count the same play time twice.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runReport,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Config file (default: hytale-playtime/config.toml in the XDG config dirs)")
	pf.StringVar(&flags.logDir, "log-dir", "", "Hytale log folder (default: <data dir>/Hytale/UserData/logs)")
	pf.StringVar(&flags.cachePath, "cache", "", "Playtime cache file (default: playtime_cache.json)")
	pf.BoolVar(&flags.verbose, "verbose", false, "Log skipped files and cache errors")
	rootCmd.Flags().BoolVar(&flags.noPause, "no-pause", false, "Exit without waiting for Enter")

	rootCmd.AddCommand(NewShowCommand())
	rootCmd.AddCommand(NewDebugCommand())
	rootCmd.AddCommand(NewBrowseCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig merges the config file with the flags set on cmd. A broken
// config file is reported and the defaults are used instead.
func loadConfig(cmd *cobra.Command) *config.Config {
	path := flags.configPath
	if path == "" {
		path = paths.ConfigFile()
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}

	f := cmd.Flags()
	if f.Changed("log-dir") {
		cfg.LogDir = flags.logDir
	}
	if f.Changed("cache") {
		cfg.CachePath = flags.cachePath
	}
	if f.Changed("verbose") {
		cfg.Verbose = flags.verbose
	}
	if f.Changed("no-pause") {
		cfg.NoPause = flags.noPause
	}
	return cfg
}

func newLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	return logging.WithRun(logging.New(cmd.ErrOrStderr(), cfg.Verbose))
}

// resolveLogDir returns the configured log folder or the platform default
func resolveLogDir(cfg *config.Config) (string, error) {
	if cfg.LogDir != "" {
		return cfg.LogDir, nil
	}
	return paths.LogDir()
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)

	logDir, err := resolveLogDir(cfg)
	if err != nil {
		// nothing to scan and nothing to save, but not a failure exit
		fmt.Fprintln(cmd.ErrOrStderr(), "Could not find Hytale data directory.")
		return nil
	}

	logger := newLogger(cmd, cfg)
	logger.Debug("scanning", "log_dir", logDir, "cache", cfg.CachePath)

	result, err := scan.Run(cmd.Context(), scan.Options{
		LogDir:    logDir,
		CachePath: cfg.CachePath,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("scan interrupted: %w", err)
	}

	out := cmd.OutOrStdout()
	report.Render(out, result.Stats)
	if cfg.Verbose {
		report.RenderVerbose(out, result.Stats)
	}

	if !cfg.NoPause {
		report.Pause(cmd.InOrStdin(), out)
	}
	return nil
}
