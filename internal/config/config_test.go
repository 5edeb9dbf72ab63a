package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, path, exists, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if exists {
		t.Error("exists = true for missing file")
	}
	if path == "" {
		t.Error("resolved path is empty")
	}
	if cfg.Player.Name != "Player" {
		t.Errorf("Player.Name = %q, want %q", cfg.Player.Name, "Player")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Errorf("Logging = %+v, want console/info", cfg.Logging)
	}
	if !filepath.IsAbs(cfg.Paths.InstallRoot) {
		t.Errorf("InstallRoot %q not expanded to an absolute path", cfg.Paths.InstallRoot)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[paths]
install_root = "/opt/rfactor"

[player]
name = "Speedy"

[logging]
format = "JSON"
level = "Debug"
`)

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !exists {
		t.Error("exists = false for existing file")
	}
	if resolved != path {
		t.Errorf("resolved = %q, want %q", resolved, path)
	}
	if cfg.Paths.InstallRoot != "/opt/rfactor" {
		t.Errorf("InstallRoot = %q", cfg.Paths.InstallRoot)
	}
	if cfg.Player.Name != "Speedy" {
		t.Errorf("Player.Name = %q", cfg.Player.Name)
	}
	// Format and level are normalized to lowercase.
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Errorf("Logging = %+v, want json/debug", cfg.Logging)
	}
}

func TestLoadRejectsUnknownLogLevel(t *testing.T) {
	path := writeConfig(t, `
[logging]
level = "chatty"
`)
	if _, _, _, err := Load(path); err == nil || !strings.Contains(err.Error(), "chatty") {
		t.Errorf("Load() error = %v, want unsupported level", err)
	}
}

func TestLoadEmptyPlayerFallsBack(t *testing.T) {
	path := writeConfig(t, `
[player]
name = "   "
`)
	cfg, _, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Player.Name != "Player" {
		t.Errorf("Player.Name = %q, want fallback", cfg.Player.Name)
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample() error = %v", err)
	}
	if _, _, _, err := Load(path); err != nil {
		t.Fatalf("Load() of sample error = %v", err)
	}
}
