package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Analysis.Examples != 2 {
		t.Errorf("expected Examples=2, got %d", cfg.Analysis.Examples)
	}
	if cfg.Analysis.Comprehension != 98 {
		t.Errorf("expected Comprehension=98, got %d", cfg.Analysis.Comprehension)
	}
	if cfg.Analysis.Threshold != 20 {
		t.Errorf("expected Threshold=20, got %d", cfg.Analysis.Threshold)
	}
	if !cfg.Analysis.FrequencyReversed || !cfg.Analysis.SpacingReversed {
		t.Error("expected both sort directions to default to reversed")
	}
	if len(cfg.Books.Includes) == 0 {
		t.Error("expected a default include pattern")
	}
	if !cfg.Cache.Enabled {
		t.Error("expected the cache to default to enabled")
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
	configPath := filepath.Join(tmpDir, "hanzibook.yaml")

	content := `
analysis:
  examples: 5
  comprehension: 90
cache:
  enabled: false
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Analysis.Examples != 5 {
		t.Errorf("expected Examples=5, got %d", cfg.Analysis.Examples)
	}
	if cfg.Analysis.Comprehension != 90 {
		t.Errorf("expected Comprehension=90, got %d", cfg.Analysis.Comprehension)
	}
	if cfg.Cache.Enabled {
		t.Error("expected the cache to be disabled")
	}
	// Unset sections keep their defaults.
	if cfg.Analysis.Threshold != 20 {
		t.Errorf("expected default Threshold=20, got %d", cfg.Analysis.Threshold)
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Analysis.Examples != 2 {
		t.Error("expected defaults when no config file exists")
	}

	content := "analysis:\n  examples: 7\n"
	if err := os.WriteFile(filepath.Join(tmpDir, "hanzibook.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Analysis.Examples != 7 {
		t.Errorf("expected Examples=7 from hanzibook.yaml, got %d", cfg.Analysis.Examples)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "hanzibook.yaml")

	cfg := DefaultConfig()
	cfg.Analysis.Threshold = 35
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Analysis.Threshold != 35 {
		t.Errorf("expected Threshold=35, got %d", loaded.Analysis.Threshold)
	}
}
