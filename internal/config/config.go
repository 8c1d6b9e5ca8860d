// Package config loads editor settings from an optional YAML file.
// Flags override file values; missing file means defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Server
	ListenAddr string `yaml:"listen_addr"`

	// Defaults for offline commands
	SubtitleFormat string `yaml:"subtitle_format"` // json, srt, vtt

	// Transcription
	Transcribe struct {
		Provider     string `yaml:"provider"` // gemini, openai
		Model        string `yaml:"model"`
		ChunkMinutes int    `yaml:"chunk_minutes"`
		Concurrency  int    `yaml:"concurrency"`
	} `yaml:"transcribe"`

	// Translation
	Translate struct {
		Model     string `yaml:"model"`
		BatchSize int    `yaml:"batch_size"`
	} `yaml:"translate"`
}

func Default() *Config {
	c := &Config{}
	c.ListenAddr = "127.0.0.1:8573"
	c.SubtitleFormat = "json"
	c.Transcribe.Provider = "gemini"
	c.Transcribe.ChunkMinutes = 1
	c.Transcribe.Concurrency = 3
	c.Translate.BatchSize = 50
	return c
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "vidcap", "config.yaml"), nil
}

// Load reads the config file at path, falling back to defaults when
// the file does not exist. An empty path means the default location.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}
