package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/DCTR-QUASAR/Hytale-Playtime/internal/playtime"
)

// DefaultFileName is the cache file written next to the working directory
const DefaultFileName = "playtime_cache.json"

// Load reads the cache at path. A missing, unreadable or corrupt file
// yields an empty cache.
func Load(path string) *playtime.Cache {
	c := playtime.NewCache()
	if path == "" {
		return c
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return c
	}

	var decoded playtime.Cache
	if err := json.Unmarshal(data, &decoded); err != nil {
		return c
	}
	if decoded.Files == nil {
		decoded.Files = make(map[string]int64)
	}
	return &decoded
}

// Save writes the cache as indented JSON. The file is replaced atomically
// so an interrupted write never leaves a truncated cache behind.
func Save(path string, c *playtime.Cache) error {
	if path == "" {
		return errors.New("no cache path")
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode cache: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace cache: %w", err)
	}
	return nil
}
