package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DCTR-QUASAR/Hytale-Playtime/internal/playtime"
	"github.com/DCTR-QUASAR/Hytale-Playtime/internal/report"
)

// NewDebugCommand creates the debug-file command
func NewDebugCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "debug-file <path>",
		Short: "Show every gap found in one log file and whether it counts",
		Args:  cobra.ExactArgs(1),
		RunE:  runDebugFile,
	}
}

func runDebugFile(cmd *cobra.Command, args []string) error {
	path := args[0]
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Debugging log file: %s\n", path)
	fmt.Fprintln(out, "==========================================")

	extractor := playtime.NewExtractor()
	extractor.OnInterval = func(iv playtime.Interval) {
		verdict := "idle"
		if iv.Counted {
			verdict = "counted"
		}
		fmt.Fprintf(out, "%s -> %s  %8s  %s\n",
			iv.From.Format(playtime.TimestampLayout),
			iv.To.Format(playtime.TimestampLayout),
			iv.Delta,
			verdict)
	}

	result, err := extractor.ExtractFile(path)
	if err != nil && result.Name == "" {
		return fmt.Errorf("failed to debug log file: %w", err)
	}
	if err != nil {
		fmt.Fprintf(out, "\nRead stopped early: %v\n", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Counted intervals: %d\n", result.Intervals)
	fmt.Fprintf(out, "Idle intervals:    %d\n", result.Rejected)
	fmt.Fprintf(out, "Skipped lines:     %d\n", result.Skipped)
	fmt.Fprintf(out, "Active time:       %s\n", report.FormatDuration(result.Seconds))

	return nil
}
