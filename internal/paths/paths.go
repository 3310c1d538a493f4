package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
)

// LogSubdir is where Hytale keeps its logs under the user data directory
var LogSubdir = filepath.Join("Hytale", "UserData", "logs")

// ConfigName is the config file looked up in the XDG config directories
var ConfigName = filepath.Join("hytale-playtime", "config.toml")

// ErrNoDataDir is returned when the platform data directory cannot be determined
var ErrNoDataDir = errors.New("could not find Hytale data directory")

// DataDir returns the per-user application data directory:
//
//	Windows: %APPDATA%
//	macOS:   ~/Library/Application Support
//	Linux:   $XDG_DATA_HOME or ~/.local/share
func DataDir() (string, error) {
	if runtime.GOOS == "windows" {
		// roaming profile, xdg would hand out %LOCALAPPDATA%
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrNoDataDir, err)
		}
		return dir, nil
	}

	if xdg.DataHome == "" {
		return "", ErrNoDataDir
	}
	return xdg.DataHome, nil
}

// LogDir returns the Hytale log folder
func LogDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return LogDirIn(dir), nil
}

// LogDirIn appends the Hytale log subpath to a data directory
func LogDirIn(dataDir string) string {
	return filepath.Join(dataDir, LogSubdir)
}

// ConfigFile returns the path of an existing config file, or "" when there is none
func ConfigFile() string {
	path, err := xdg.SearchConfigFile(ConfigName)
	if err != nil {
		return ""
	}
	return path
}

// DefaultConfigFile returns where a new config file should be written,
// creating the parent directories under the XDG config home
func DefaultConfigFile() (string, error) {
	return xdg.ConfigFile(ConfigName)
}
