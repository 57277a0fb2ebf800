package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "cfg"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(tmp, "cache"))
	t.Chdir(tmp)

	ResetPathManager()
	t.Cleanup(ResetPathManager)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Data.File != "tasks.yaml" {
		t.Errorf("data.file = %q, want tasks.yaml", cfg.Data.File)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("logging.level = %q, want warn", cfg.Logging.Level)
	}
	if !cfg.Console.ConfirmDelete {
		t.Error("console.confirmDelete should default to true")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "cfg"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(tmp, "cache"))
	t.Chdir(tmp)

	ResetPathManager()
	t.Cleanup(ResetPathManager)

	content := "data:\n  file: my-tasks.yaml\nlogging:\n  level: debug\nconsole:\n  confirmDelete: false\n"
	if err := os.WriteFile(filepath.Join(tmp, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Data.File != "my-tasks.yaml" {
		t.Errorf("data.file = %q, want my-tasks.yaml", cfg.Data.File)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging.level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Console.ConfirmDelete {
		t.Error("console.confirmDelete should be false")
	}
}

func TestDataFilePath(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "cfg"))
	t.Chdir(tmp)

	ResetPathManager()
	t.Cleanup(ResetPathManager)

	cfg := &Config{}
	got := DataFilePath(cfg)
	if filepath.Base(got) != "tasks.yaml" {
		t.Errorf("empty config resolves to %q, want basename tasks.yaml", got)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("DataFilePath = %q, want absolute", got)
	}
}
