package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/DCTR-QUASAR/Hytale-Playtime/internal/cache"
)

// Config holds runtime settings. Fields may be loaded from a TOML file and
// overridden by command-line flags.
type Config struct {
	// LogDir overrides the platform Hytale log folder
	LogDir string `toml:"log_dir"`
	// CachePath is where the playtime cache is kept
	CachePath string `toml:"cache_path"`
	// NoPause skips the "Press Enter" prompt after the report
	NoPause bool `toml:"no_pause"`
	Verbose bool `toml:"verbose"`
}

// Default returns a Config populated with standard defaults
func Default() *Config {
	return &Config{
		CachePath: cache.DefaultFileName,
	}
}

// Load reads the configuration at path. An empty path or a missing file
// returns the defaults; a malformed file returns the defaults with the error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if c.CachePath == "" {
		c.CachePath = cache.DefaultFileName
	}
}

// Save writes the configuration in TOML format
func (c *Config) Save(path string) error {
	c.normalize()
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
