package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Split.Input != "pws.csv" {
		t.Errorf("expected Input=pws.csv, got %s", cfg.Split.Input)
	}
	if cfg.Split.OutputDir != "data" {
		t.Errorf("expected OutputDir=data, got %s", cfg.Split.OutputDir)
	}
	if cfg.Split.Size != 100 {
		t.Errorf("expected Size=100, got %d", cfg.Split.Size)
	}
	if !cfg.History.Enabled {
		t.Error("expected history enabled by default")
	}
	if len(cfg.Batch.Includes) == 0 {
		t.Error("expected default batch includes")
	}
}

func TestComma(t *testing.T) {
	if c := (SplitConfig{}).Comma(); c != ',' {
		t.Errorf("expected ',' for empty delimiter, got %q", c)
	}
	if c := (SplitConfig{Delimiter: ";"}).Comma(); c != ';' {
		t.Errorf("expected ';', got %q", c)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "csvsplit.yaml")

	content := `
split:
  input: export.csv
  size: 500
history:
  enabled: false
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Split.Input != "export.csv" {
		t.Errorf("expected Input=export.csv, got %s", cfg.Split.Input)
	}
	if cfg.Split.Size != 500 {
		t.Errorf("expected Size=500, got %d", cfg.Split.Size)
	}
	if cfg.History.Enabled {
		t.Error("expected history disabled")
	}
	// Untouched fields keep their defaults.
	if cfg.Split.OutputDir != "data" {
		t.Errorf("expected OutputDir=data, got %s", cfg.Split.OutputDir)
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "csvsplit.yaml")

	content := `
split:
  output_dir: parts
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Split.OutputDir != "parts" {
		t.Errorf("expected OutputDir=parts, got %s", cfg.Split.OutputDir)
	}
}

func TestHistoryDBPath(t *testing.T) {
	path := HistoryDBPath("/home/user/project")
	expected := filepath.Join("/home/user/project", ".csvsplit", "history.db")
	if path != expected {
		t.Errorf("expected %s, got %s", expected, path)
	}
}

func TestEnsureStateDir(t *testing.T) {
	tmpDir := t.TempDir()
	if err := EnsureStateDir(tmpDir); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(filepath.Join(tmpDir, ".csvsplit"))
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}
}
