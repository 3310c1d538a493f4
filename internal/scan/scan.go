package scan

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/DCTR-QUASAR/Hytale-Playtime/internal/cache"
	"github.com/DCTR-QUASAR/Hytale-Playtime/internal/logging"
	"github.com/DCTR-QUASAR/Hytale-Playtime/internal/playtime"
	"github.com/DCTR-QUASAR/Hytale-Playtime/pkg/models"
)

// LogExt is the only extension considered when listing the log folder
const LogExt = ".log"

// Options configures a scan run
type Options struct {
	LogDir    string
	CachePath string
	Logger    *slog.Logger
}

// Result is what a finished run reports
type Result struct {
	Stats models.Stats
	Files []models.FileScan
	Cache *playtime.Cache
}

// ListLogFiles returns the .log files directly inside dir, sorted by name.
// An unreadable directory yields no files.
func ListLogFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var files []string
	for _, entry := range entries {
		// a bare ".log" is a dotfile without an extension
		name := entry.Name()
		if entry.IsDir() || name == LogExt || filepath.Ext(name) != LogExt {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	sort.Strings(files)
	return files
}

// Run loads the cache, measures every log file one at a time, merges the
// results and saves the cache. The save happens even when nothing changed
// or ctx was cancelled part way through; a failed save is only logged.
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	acc := playtime.NewAccumulator(cache.Load(opts.CachePath))
	extractor := playtime.NewExtractor()
	result := &Result{}

	var runErr error
	for _, path := range ListLogFiles(opts.LogDir) {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}

		scanned, err := extractor.ExtractFile(path)
		if err != nil {
			if scanned.Name == "" {
				logger.Debug("log file skipped", "file", path, "error", err)
				continue
			}
			// read failed part way, keep what was measured
			logger.Debug("log file truncated", "file", path, "error", err)
		}

		acc.Add(scanned.Name, scanned.Seconds)
		result.Files = append(result.Files, scanned)
		logger.Debug("log file measured",
			"file", scanned.Name,
			"seconds", scanned.Seconds,
			"intervals", scanned.Intervals,
			"rejected", scanned.Rejected)
	}

	if err := cache.Save(opts.CachePath, acc.Cache()); err != nil {
		logger.Debug("cache not saved", "path", opts.CachePath, "error", err)
	}

	result.Stats = acc.Stats()
	result.Cache = acc.Cache()
	return result, runErr
}
