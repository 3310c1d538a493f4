package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DCTR-QUASAR/Hytale-Playtime/internal/scan"
)

// ScanFunc runs one scan of the log folder
type ScanFunc func(ctx context.Context) (*scan.Result, error)

type (
	// ScanStartedMsg marks the beginning of a (re)scan
	ScanStartedMsg struct{}

	// ScanFinishedMsg carries the outcome of a scan
	ScanFinishedMsg struct {
		Result *scan.Result
		Error  error
	}
)

// scanCmd runs fn off the UI loop
func scanCmd(ctx context.Context, fn ScanFunc) tea.Cmd {
	return func() tea.Msg {
		result, err := fn(ctx)
		return ScanFinishedMsg{
			Result: result,
			Error:  err,
		}
	}
}
