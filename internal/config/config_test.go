package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ListenAddr != "127.0.0.1:8573" {
		t.Errorf("unexpected default listen addr: %s", cfg.ListenAddr)
	}
	if cfg.Transcribe.Provider != "gemini" {
		t.Errorf("unexpected default provider: %s", cfg.Transcribe.Provider)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	content := `
listen_addr: "0.0.0.0:9000"
transcribe:
  provider: openai
  concurrency: 5
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ListenAddr != "0.0.0.0:9000" {
		t.Errorf("listen addr not overridden: %s", cfg.ListenAddr)
	}
	if cfg.Transcribe.Provider != "openai" {
		t.Errorf("provider not overridden: %s", cfg.Transcribe.Provider)
	}
	if cfg.Transcribe.Concurrency != 5 {
		t.Errorf("concurrency not overridden: %d", cfg.Transcribe.Concurrency)
	}
	// untouched values keep defaults
	if cfg.SubtitleFormat != "json" {
		t.Errorf("subtitle format default lost: %s", cfg.SubtitleFormat)
	}
	if cfg.Transcribe.ChunkMinutes != 1 {
		t.Errorf("chunk minutes default lost: %d", cfg.Transcribe.ChunkMinutes)
	}
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("listen_addr: [not: closed"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}
