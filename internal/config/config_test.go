// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
	}{
		{name: "missing corpus path", mod: func(c *Config) { c.Corpus.Path = "" }},
		{name: "missing artifacts dir", mod: func(c *Config) { c.Artifacts.Dir = "" }},
		{name: "bad log level", mod: func(c *Config) { c.Logging.Level = "verbose" }},
		{name: "bad log format", mod: func(c *Config) { c.Logging.Format = "xml" }},
		{name: "history without path", mod: func(c *Config) {
			c.Artifacts.HistoryEnabled = true
			c.Artifacts.HistoryPath = ""
		}},
		{name: "metrics without listen", mod: func(c *Config) {
			c.Metrics.Enabled = true
			c.Metrics.Listen = ""
		}},
		{name: "no analyzers", mod: func(c *Config) {
			c.Build.ContentAnalyzer = false
			c.Build.SemanticAnalyzer = false
			c.Build.CulturalAnalyzer = false
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mod(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadFileLayering(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cinegraph.yaml")
	yaml := `
corpus:
  path: /data/corpus.json
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.Corpus.Path != "/data/corpus.json" {
		t.Errorf("corpus path = %q, want file override", cfg.Corpus.Path)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Logging.Level)
	}
	// Untouched values keep their defaults.
	if cfg.Artifacts.Dir != "artifacts" {
		t.Errorf("artifacts dir = %q, want default", cfg.Artifacts.Dir)
	}
	if !cfg.Build.ContentAnalyzer {
		t.Error("content analyzer default lost")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CINEGRAPH_LOGGING_LEVEL", "warn")
	t.Setenv("CINEGRAPH_CORPUS_PATH", "/env/corpus.json")

	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("log level = %q, want env override warn", cfg.Logging.Level)
	}
	if cfg.Corpus.Path != "/env/corpus.json" {
		t.Errorf("corpus path = %q, want env override", cfg.Corpus.Path)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestEnvTransform(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"CINEGRAPH_CORPUS_PATH", "corpus.path"},
		{"CINEGRAPH_LOGGING_LEVEL", "logging.level"},
		{"CINEGRAPH_ARTIFACTS_HISTORY_PATH", "artifacts.history_path"},
		{"CINEGRAPH_BUILD_CONTENT_ANALYZER", "build.content_analyzer"},
	}
	for _, tt := range tests {
		if got := envTransform(tt.in); got != tt.want {
			t.Errorf("envTransform(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClone(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()
	clone.Logging.Level = "error"
	if cfg.Logging.Level == "error" {
		t.Error("clone shares state with original")
	}
}
