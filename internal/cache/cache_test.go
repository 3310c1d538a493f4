package cache

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DCTR-QUASAR/Hytale-Playtime/internal/playtime"
)

// TestLoadMissing tests that a missing cache starts empty
func TestLoadMissing(t *testing.T) {
	c := Load(filepath.Join(t.TempDir(), "nope.json"))
	if c == nil || c.Files == nil {
		t.Fatal("Expected an empty cache with an initialized map")
	}
	if len(c.Files) != 0 || c.TotalPermanentSeconds != 0 {
		t.Errorf("Expected empty cache, got %+v", c)
	}
}

// TestLoadCorrupt tests that garbage on disk is treated as no cache
func TestLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("Failed to write cache: %v", err)
	}

	c := Load(path)
	if len(c.Files) != 0 || c.TotalPermanentSeconds != 0 {
		t.Errorf("Expected empty cache, got %+v", c)
	}
}

// TestLoadExisting tests the on-disk format
func TestLoadExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	content := `{
  "files": {
    "2026-01-13_14-03-42_client.log": 1234
  },
  "total_permanent_seconds": 1234
}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write cache: %v", err)
	}

	c := Load(path)
	if c.Files["2026-01-13_14-03-42_client.log"] != 1234 {
		t.Errorf("Expected 1234 for file, got %d", c.Files["2026-01-13_14-03-42_client.log"])
	}
	if c.TotalPermanentSeconds != 1234 {
		t.Errorf("Expected total 1234, got %d", c.TotalPermanentSeconds)
	}
}

// TestLoadNullFiles tests a cache whose files object is absent
func TestLoadNullFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := os.WriteFile(path, []byte(`{"total_permanent_seconds": 7}`), 0o644); err != nil {
		t.Fatalf("Failed to write cache: %v", err)
	}

	c := Load(path)
	if c.Files == nil {
		t.Fatal("Files map should be initialized")
	}
	if c.TotalPermanentSeconds != 7 {
		t.Errorf("Expected total 7, got %d", c.TotalPermanentSeconds)
	}
}

// TestSaveAndLoad tests writing the cache back
func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", DefaultFileName)

	c := playtime.NewCache()
	c.Update("a.log", 80)
	if err := Save(path, c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read cache: %v", err)
	}
	if !strings.Contains(string(data), "\n  \"total_permanent_seconds\": 80") {
		t.Errorf("Expected indented output, got:\n%s", data)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("Temporary file should be gone after save")
	}

	loaded := Load(path)
	if loaded.Files["a.log"] != 80 || loaded.TotalPermanentSeconds != 80 {
		t.Errorf("Unexpected loaded cache: %+v", loaded)
	}
}

// TestSaveFailure tests that an unwritable location reports an error
func TestSaveFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("Failed to write blocker: %v", err)
	}

	if err := Save(filepath.Join(blocker, DefaultFileName), playtime.NewCache()); err == nil {
		t.Error("Expected an error when the parent is a file")
	}
}

// TestSaveNoPath tests that an empty path is rejected
func TestSaveNoPath(t *testing.T) {
	if err := Save("", playtime.NewCache()); err == nil {
		t.Error("Expected an error for an empty path")
	}
}
