package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DCTR-QUASAR/Hytale-Playtime/internal/cache"
	"github.com/DCTR-QUASAR/Hytale-Playtime/internal/config"
)

const sampleLog = `2026-01-13 14:03:42.9604|INFO|HytaleClient|Starting
2026-01-13 14:03:52.1000|DEBUG|Engine|Loaded assets
	at com.hypixel.hytale.Something
2026-01-13 14:10:32.0000|INFO|HytaleClient|Back from menu
2026-01-13 14:10:42.0000|INFO|HytaleClient|Frame
`

type fixture struct {
	logDir    string
	cachePath string
	config    string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	f := fixture{
		logDir:    filepath.Join(dir, "logs"),
		cachePath: filepath.Join(dir, cache.DefaultFileName),
		config:    filepath.Join(dir, "config.toml"),
	}
	if err := os.MkdirAll(f.logDir, 0o755); err != nil {
		t.Fatalf("Failed to create log dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(f.logDir, "client.log"), []byte(sampleLog), 0o644); err != nil {
		t.Fatalf("Failed to write log: %v", err)
	}
	return f
}

func run(t *testing.T, stdin string, args ...string) (string, string) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Command %v failed: %v\nstderr: %s", args, err, errOut.String())
	}
	return out.String(), errOut.String()
}

// TestRootReport tests a full scan and report
func TestRootReport(t *testing.T) {
	f := newFixture(t)

	out, _ := run(t, "", "--config", f.config, "--log-dir", f.logDir, "--cache", f.cachePath, "--no-pause")

	for _, want := range []string{
		"TOTAL PLAYTIME: 0 hours, 0 minutes, 20 seconds",
		"TOTAL SESSIONS: 1",
		"AVERAGE SESSION: 0 hours, 0 minutes, 20 seconds",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Press Enter") {
		t.Error("Prompt should be skipped with --no-pause")
	}

	c := cache.Load(f.cachePath)
	if c.Files["client.log"] != 20 {
		t.Errorf("Expected 20 seconds cached, got %d", c.Files["client.log"])
	}
}

// TestRootRerun tests that a second run keeps the total
func TestRootRerun(t *testing.T) {
	f := newFixture(t)
	args := []string{"--config", f.config, "--log-dir", f.logDir, "--cache", f.cachePath, "--no-pause"}

	run(t, "", args...)
	out, _ := run(t, "", args...)
	if !strings.Contains(out, "TOTAL PLAYTIME: 0 hours, 0 minutes, 20 seconds") {
		t.Errorf("Expected unchanged total:\n%s", out)
	}
}

// TestRootPause tests the exit prompt
func TestRootPause(t *testing.T) {
	f := newFixture(t)

	out, _ := run(t, "\n", "--config", f.config, "--log-dir", f.logDir, "--cache", f.cachePath)
	if !strings.Contains(out, "Press Enter to exit...") {
		t.Errorf("Expected prompt in output:\n%s", out)
	}
}

// TestRootConfigFile tests settings coming from the config file
func TestRootConfigFile(t *testing.T) {
	f := newFixture(t)
	content := "log_dir = '" + f.logDir + "'\ncache_path = '" + f.cachePath + "'\nno_pause = true\n"
	if err := os.WriteFile(f.config, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	out, _ := run(t, "", "--config", f.config)
	if !strings.Contains(out, "TOTAL SESSIONS: 1") || strings.Contains(out, "Press Enter") {
		t.Errorf("Unexpected output:\n%s", out)
	}
	if _, err := os.Stat(f.cachePath); err != nil {
		t.Errorf("Expected cache at configured path: %v", err)
	}
}

// TestShow tests listing the cache
func TestShow(t *testing.T) {
	f := newFixture(t)
	run(t, "", "--config", f.config, "--log-dir", f.logDir, "--cache", f.cachePath, "--no-pause")

	out, _ := run(t, "", "show", "--config", f.config, "--cache", f.cachePath)
	if !strings.Contains(out, "client.log") || !strings.Contains(out, "TOTAL PLAYTIME: 0 hours, 0 minutes, 20 seconds") {
		t.Errorf("Unexpected show output:\n%s", out)
	}
}

// TestShowEmpty tests listing without a cache
func TestShowEmpty(t *testing.T) {
	f := newFixture(t)

	out, _ := run(t, "", "show", "--config", f.config, "--cache", f.cachePath)
	if !strings.Contains(out, "No log files recorded yet") {
		t.Errorf("Unexpected show output:\n%s", out)
	}
}

// TestDebugFile tests the interval dump
func TestDebugFile(t *testing.T) {
	f := newFixture(t)

	out, _ := run(t, "", "debug-file", filepath.Join(f.logDir, "client.log"))
	for _, want := range []string{
		"counted",
		"idle",
		"Counted intervals: 2",
		"Idle intervals:    1",
		"Skipped lines:     1",
		"Active time:       0 hours, 0 minutes, 20 seconds",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
}

// TestDebugFileMissing tests that an unopenable file is an error
func TestDebugFileMissing(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"debug-file", filepath.Join(t.TempDir(), "missing.log")})
	if err := cmd.Execute(); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

// TestConfigInit tests writing a config file from the flags
func TestConfigInit(t *testing.T) {
	f := newFixture(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	out, _ := run(t, "", "config", "init", "--config", path, "--log-dir", f.logDir, "--cache", f.cachePath)
	if !strings.Contains(out, "Wrote "+path) {
		t.Errorf("Unexpected output:\n%s", out)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Expected written config to load, got %v", err)
	}
	if cfg.LogDir != f.logDir || cfg.CachePath != f.cachePath {
		t.Errorf("Unexpected config: %+v", cfg)
	}

	// the written file drives a report on its own
	report, _ := run(t, "", "--config", path, "--no-pause")
	if !strings.Contains(report, "TOTAL SESSIONS: 1") {
		t.Errorf("Unexpected report:\n%s", report)
	}
}

// TestConfigInitExisting tests that an existing file needs --force
func TestConfigInitExisting(t *testing.T) {
	f := newFixture(t)
	if err := os.WriteFile(f.config, []byte("verbose = true\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"config", "init", "--config", f.config})
	if err := cmd.Execute(); err == nil {
		t.Error("Expected an error for an existing config file")
	}

	run(t, "", "config", "init", "--force", "--config", f.config, "--log-dir", f.logDir)
	cfg, err := config.Load(f.config)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !cfg.Verbose || cfg.LogDir != f.logDir {
		t.Errorf("Expected existing settings merged with flags, got %+v", cfg)
	}
}
