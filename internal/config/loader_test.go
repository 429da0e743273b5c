package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Version != "1" {
		t.Errorf("Expected version '1', got '%s'", cfg.Version)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("Expected addr ':8080', got '%s'", cfg.Server.Addr)
	}

	if cfg.GenAI.Model != "gemini-2.0-flash" {
		t.Errorf("Expected model 'gemini-2.0-flash', got '%s'", cfg.GenAI.Model)
	}

	if cfg.GenAI.TimeoutSeconds != 60 {
		t.Errorf("Expected timeout 60, got %d", cfg.GenAI.TimeoutSeconds)
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `version: "1"
server:
  addr: ":9090"
genai:
  model: gemini-2.5-pro
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg := DefaultConfig()
	if err := loadFile(path, cfg); err != nil {
		t.Fatalf("loadFile failed: %v", err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("Expected addr ':9090', got '%s'", cfg.Server.Addr)
	}

	if cfg.GenAI.Model != "gemini-2.5-pro" {
		t.Errorf("Expected model override, got '%s'", cfg.GenAI.Model)
	}

	// Values absent from the file keep their defaults
	if cfg.GenAI.TimeoutSeconds != 60 {
		t.Errorf("Expected default timeout 60, got %d", cfg.GenAI.TimeoutSeconds)
	}
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	err := loadFile(filepath.Join(t.TempDir(), "nope.yaml"), cfg)
	if !os.IsNotExist(err) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestWriteDefault(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}

	cfg := DefaultConfig()
	if err := loadFile(path, cfg); err != nil {
		t.Fatalf("written default config does not load: %v", err)
	}

	if cfg.GenAI.Model != "gemini-2.0-flash" {
		t.Errorf("Expected default model in written file, got '%s'", cfg.GenAI.Model)
	}
}
