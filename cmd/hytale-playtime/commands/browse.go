package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DCTR-QUASAR/Hytale-Playtime/internal/scan"
	"github.com/DCTR-QUASAR/Hytale-Playtime/internal/tui"
)

// NewBrowseCommand creates the browse command
func NewBrowseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Scan the logs and browse per-file play time interactively",
		Args:  cobra.NoArgs,
		RunE:  runBrowse,
	}
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)

	logDir, err := resolveLogDir(cfg)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Could not find Hytale data directory.")
		return nil
	}

	// the TUI owns the terminal, so logging is discarded while it runs
	opts := scan.Options{
		LogDir:    logDir,
		CachePath: cfg.CachePath,
	}

	_, err = tui.Run(cmd.Context(), func(ctx context.Context) (*scan.Result, error) {
		return scan.Run(ctx, opts)
	})
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
