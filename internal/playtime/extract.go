package playtime

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/DCTR-QUASAR/Hytale-Playtime/pkg/models"
)

const (
	// TimestampLayout is the prefix Hytale writes on every log line,
	// e.g. "2026-01-13 14:03:42.9604|DEBUG|..."
	TimestampLayout = "2006-01-02 15:04:05"
	// TimestampWidth is the length of the prefix; fractional seconds after it are ignored
	TimestampWidth = len(TimestampLayout)
	// MaxGap is the exclusive upper bound for a gap to count as activity
	MaxGap = 300 * time.Second
)

// Interval is the gap between two consecutive timestamps of one file
type Interval struct {
	From    time.Time
	To      time.Time
	Delta   time.Duration
	Counted bool
}

// ParseTimestamp reads the fixed-width timestamp at the start of a line.
// Short lines and unparseable prefixes both report false.
func ParseTimestamp(line string) (time.Time, bool) {
	if len(line) < TimestampWidth {
		return time.Time{}, false
	}
	t, err := time.Parse(TimestampLayout, line[:TimestampWidth])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Active reports whether a gap counts as play time
func Active(delta time.Duration) bool {
	return delta >= time.Second && delta < MaxGap
}

// Extractor turns the lines of one log file into seconds of inferred activity
type Extractor struct {
	// OnInterval, when set, sees every interval, counted or not
	OnInterval func(Interval)

	last    time.Time
	hasLast bool
	scan    models.FileScan
}

// NewExtractor creates an extractor with no anchor timestamp
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Reset clears the anchor and counters so the extractor can read another file
func (e *Extractor) Reset() {
	e.last = time.Time{}
	e.hasLast = false
	e.scan = models.FileScan{}
}

// Feed processes one line
func (e *Extractor) Feed(line string) {
	current, ok := ParseTimestamp(line)
	if !ok {
		// malformed lines never move the anchor
		e.scan.Skipped++
		return
	}

	if e.hasLast {
		// whole seconds only, sub-second text was cut off by the prefix
		delta := current.Sub(e.last)
		counted := Active(delta)
		if counted {
			e.scan.Seconds += int64(delta / time.Second)
			e.scan.Intervals++
		} else {
			e.scan.Rejected++
		}
		if e.OnInterval != nil {
			e.OnInterval(Interval{From: e.last, To: current, Delta: delta, Counted: counted})
		}
	}

	e.last = current
	e.hasLast = true
}

// Result returns the counters accumulated since the last Reset
func (e *Extractor) Result() models.FileScan {
	return e.scan
}

// ExtractLines runs a fresh pass over an in-memory slice of lines
func (e *Extractor) ExtractLines(lines []string) models.FileScan {
	e.Reset()
	for _, line := range lines {
		e.Feed(line)
	}
	return e.Result()
}

// Extract runs a fresh pass over r. On a read error the seconds counted
// up to that point are returned together with the error.
func (e *Extractor) Extract(r io.Reader) (models.FileScan, error) {
	e.Reset()

	reader := bufio.NewReader(r)
	for {
		line, isPrefix, err := reader.ReadLine()
		if err != nil {
			return e.finish(err)
		}
		e.Feed(string(line))

		// only the timestamp prefix matters, drop the rest of an oversized line
		for isPrefix {
			if _, isPrefix, err = reader.ReadLine(); err != nil {
				return e.finish(err)
			}
		}
	}
}

func (e *Extractor) finish(err error) (models.FileScan, error) {
	if err == io.EOF {
		return e.Result(), nil
	}
	return e.Result(), fmt.Errorf("failed to read log: %w", err)
}

// ExtractFile opens path and extracts it. The result is keyed by the base name.
func (e *Extractor) ExtractFile(path string) (models.FileScan, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.FileScan{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	result, err := e.Extract(f)
	result.Name = filepath.Base(path)
	result.Path = path
	return result, err
}
