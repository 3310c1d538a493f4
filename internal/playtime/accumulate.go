package playtime

import (
	"sort"

	"github.com/DCTR-QUASAR/Hytale-Playtime/pkg/models"
)

// Cache is the persisted state: the high-water mark of every log file seen
// and the all-time total built from the increases of those marks.
type Cache struct {
	Files                 map[string]int64 `json:"files"`
	TotalPermanentSeconds int64            `json:"total_permanent_seconds"`
}

// NewCache returns an empty cache
func NewCache() *Cache {
	return &Cache{Files: make(map[string]int64)}
}

// Update raises the mark for fileID to seconds if that is higher than the
// stored value and credits the difference to the total. It returns the
// credited difference, 0 when the file was already accounted for.
func (c *Cache) Update(fileID string, seconds int64) int64 {
	if c.Files == nil {
		c.Files = make(map[string]int64)
	}

	previous := c.Files[fileID]
	if seconds <= previous {
		return 0
	}

	delta := seconds - previous
	c.TotalPermanentSeconds += delta
	c.Files[fileID] = seconds
	return delta
}

// Records lists the cache entries, longest first
func (c *Cache) Records() []models.FileRecord {
	records := make([]models.FileRecord, 0, len(c.Files))
	for name, seconds := range c.Files {
		records = append(records, models.FileRecord{Name: name, Seconds: seconds})
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Seconds != records[j].Seconds {
			return records[i].Seconds > records[j].Seconds
		}
		return records[i].Name < records[j].Name
	})
	return records
}

// Accumulator folds per-file results of one run into a cache
type Accumulator struct {
	cache      *Cache
	sessions   int
	scanned    int
	newSeconds int64
}

// NewAccumulator wraps cache; a nil cache starts empty
func NewAccumulator(cache *Cache) *Accumulator {
	if cache == nil {
		cache = NewCache()
	}
	return &Accumulator{cache: cache}
}

// Add merges the seconds measured for one file in this run
func (a *Accumulator) Add(fileID string, seconds int64) {
	a.scanned++
	a.newSeconds += a.cache.Update(fileID, seconds)
	if seconds > 0 {
		a.sessions++
	}
}

// Cache returns the state being mutated
func (a *Accumulator) Cache() *Cache {
	return a.cache
}

// Stats derives the run statistics. The average divides the all-time total
// by the number of sessions seen in this run.
func (a *Accumulator) Stats() models.Stats {
	stats := models.Stats{
		TotalSeconds: a.cache.TotalPermanentSeconds,
		Sessions:     a.sessions,
		FilesScanned: a.scanned,
		NewSeconds:   a.newSeconds,
	}
	if a.sessions > 0 {
		stats.AverageSeconds = a.cache.TotalPermanentSeconds / int64(a.sessions)
	}
	return stats
}
