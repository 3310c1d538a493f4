package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/DCTR-QUASAR/Hytale-Playtime/pkg/models"
)

const rule = "-------------------------------------------"

// FormatDuration splits seconds into "H hours, M minutes, S seconds"
func FormatDuration(seconds int64) string {
	return fmt.Sprintf("%d hours, %d minutes, %d seconds", seconds/3600, (seconds%3600)/60, seconds%60)
}

// ShortDuration renders seconds as "1h02m03s" for compact listings
func ShortDuration(seconds int64) string {
	if seconds < 3600 {
		return fmt.Sprintf("%dm%02ds", seconds/60, seconds%60)
	}
	return fmt.Sprintf("%dh%02dm%02ds", seconds/3600, (seconds%3600)/60, seconds%60)
}

type styles struct {
	rule  lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	dim   lipgloss.Style
}

// newStyles binds styles to w so colours are dropped when w is not a terminal
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		rule:  r.NewStyle().Foreground(lipgloss.Color("241")),
		label: r.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		value: r.NewStyle().Foreground(lipgloss.Color("86")),
		dim:   r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// Render prints the playtime report
func Render(w io.Writer, stats models.Stats) {
	s := newStyles(w)

	fmt.Fprintln(w, s.rule.Render(rule))
	fmt.Fprintf(w, "%s %s\n", s.label.Render("TOTAL PLAYTIME:"), s.value.Render(FormatDuration(stats.TotalSeconds)))
	fmt.Fprintf(w, "%s %s\n", s.label.Render("TOTAL SESSIONS:"), s.value.Render(fmt.Sprint(stats.Sessions)))
	fmt.Fprintf(w, "%s %s\n", s.label.Render("AVERAGE SESSION:"), s.value.Render(FormatDuration(stats.AverageSeconds)))
	fmt.Fprintln(w, s.rule.Render(rule))
}

// RenderVerbose adds the per-run counters below the report
func RenderVerbose(w io.Writer, stats models.Stats) {
	s := newStyles(w)
	fmt.Fprintln(w, s.dim.Render(fmt.Sprintf("files scanned: %d, new this run: %s",
		stats.FilesScanned, FormatDuration(stats.NewSeconds))))
}

// RenderRecords lists cache entries with their share of the total
func RenderRecords(w io.Writer, records []models.FileRecord, total int64) {
	s := newStyles(w)

	if len(records) == 0 {
		fmt.Fprintln(w, "No log files recorded yet")
		return
	}

	fmt.Fprintln(w, s.label.Render("Recorded log files:"))
	fmt.Fprintln(w, s.rule.Render(strings.Repeat("=", 19)))
	for i, rec := range records {
		share := 0.0
		if total > 0 {
			share = float64(rec.Seconds) * 100 / float64(total)
		}
		fmt.Fprintf(w, "%d. %s\n", i+1, rec.Name)
		fmt.Fprintf(w, "   Playtime: %s (%.1f%%)\n", s.value.Render(FormatDuration(rec.Seconds)), share)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n", s.label.Render("TOTAL PLAYTIME:"), s.value.Render(FormatDuration(total)))
}

// Pause prints the exit prompt and waits for one line on r
func Pause(r io.Reader, w io.Writer) {
	fmt.Fprintln(w, "\nPress Enter to exit...")
	_, _ = bufio.NewReader(r).ReadString('\n')
}
