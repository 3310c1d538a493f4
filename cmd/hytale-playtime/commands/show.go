package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DCTR-QUASAR/Hytale-Playtime/internal/cache"
	"github.com/DCTR-QUASAR/Hytale-Playtime/internal/history"
	"github.com/DCTR-QUASAR/Hytale-Playtime/internal/report"
)

var showLimit int

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "List recorded log files from the cache without scanning",
		Long: `Show the play time recorded for every log file in the cache, longest first.
The cache is only read; run hytale-playtime without arguments to update it.`,
		Args: cobra.NoArgs,
		RunE: runShow,
	}
	cmd.Flags().IntVarP(&showLimit, "limit", "n", 0, "Only show the N longest files (0 shows all)")
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)
	c := cache.Load(cfg.CachePath)
	out := cmd.OutOrStdout()

	ranked, err := history.TopFiles(cmd.Context(), c.Records(), showLimit)
	if err != nil {
		// fall back to the plain listing when DuckDB is unavailable
		newLogger(cmd, cfg).Debug("ranking failed", "error", err)
		records := c.Records()
		if showLimit > 0 && len(records) > showLimit {
			records = records[:showLimit]
		}
		report.RenderRecords(out, records, c.TotalPermanentSeconds)
		return nil
	}

	if len(ranked) == 0 {
		fmt.Fprintln(out, "No log files recorded yet")
		return nil
	}

	fmt.Fprintln(out, "Recorded log files:")
	fmt.Fprintln(out, "===================")
	for _, f := range ranked {
		fmt.Fprintf(out, "%d. %s\n", f.Rank, f.Name)
		fmt.Fprintf(out, "   Playtime: %s (%.1f%%)\n", report.FormatDuration(f.Seconds), f.Share)
		fmt.Fprintf(out, "   Running total: %s\n", report.FormatDuration(f.RunningTotal))
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "TOTAL PLAYTIME: %s\n", report.FormatDuration(c.TotalPermanentSeconds))
	fmt.Fprintf(out, "FILES RECORDED: %d\n", len(c.Files))

	return nil
}
