// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

// Package config defines the engine configuration and its layered loader.
//
// Configuration is resolved from three sources, later layers overriding
// earlier ones:
//  1. Built-in defaults
//  2. Optional YAML config file
//  3. Environment variables (CINEGRAPH_ prefix)
package config

import (
	"fmt"
	"strings"
)

// Config is the full engine configuration.
type Config struct {
	// Corpus configures the input corpus.
	Corpus CorpusConfig `koanf:"corpus"`

	// Build configures the graph build.
	Build BuildConfig `koanf:"build"`

	// Artifacts configures output persistence.
	Artifacts ArtifactsConfig `koanf:"artifacts"`

	// Logging configures structured logging.
	Logging LoggingConfig `koanf:"logging"`

	// Metrics configures the Prometheus endpoint.
	Metrics MetricsConfig `koanf:"metrics"`
}

// CorpusConfig locates the input corpus.
type CorpusConfig struct {
	// Path is the corpus JSON file (entity ID to attribute record).
	Path string `koanf:"path"`
}

// BuildConfig selects which analyzers and enrichers run.
type BuildConfig struct {
	// ContentAnalyzer enables the content (shared-attribute) analyzer.
	ContentAnalyzer bool `koanf:"content_analyzer"`

	// SemanticAnalyzer enables the semantic (thematic) analyzer.
	SemanticAnalyzer bool `koanf:"semantic_analyzer"`

	// CulturalAnalyzer enables the cultural footprint analyzer.
	CulturalAnalyzer bool `koanf:"cultural_analyzer"`

	// EnrichPersons enables the person career enricher.
	EnrichPersons bool `koanf:"enrich_persons"`
}

// ArtifactsConfig configures output persistence.
type ArtifactsConfig struct {
	// Dir is the directory artifacts are written to.
	Dir string `koanf:"dir"`

	// HistoryEnabled records build manifests in the history database.
	HistoryEnabled bool `koanf:"history_enabled"`

	// HistoryPath is the BadgerDB directory for build history.
	HistoryPath string `koanf:"history_path"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string `koanf:"level"`

	// Format is "json" or "console".
	Format string `koanf:"format"`

	// Caller adds file:line to log events.
	Caller bool `koanf:"caller"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	// Enabled serves /metrics during the build.
	Enabled bool `koanf:"enabled"`

	// Listen is the address of the metrics endpoint.
	Listen string `koanf:"listen"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{
			Path: "corpus.json",
		},
		Build: BuildConfig{
			ContentAnalyzer:  true,
			SemanticAnalyzer: true,
			CulturalAnalyzer: true,
			EnrichPersons:    true,
		},
		Artifacts: ArtifactsConfig{
			Dir:            "artifacts",
			HistoryEnabled: false,
			HistoryPath:    "artifacts/history",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Listen:  ":9090",
		},
	}
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.Corpus.Path == "" {
		return fmt.Errorf("corpus.path is required")
	}
	if c.Artifacts.Dir == "" {
		return fmt.Errorf("artifacts.dir is required")
	}
	if c.Artifacts.HistoryEnabled && c.Artifacts.HistoryPath == "" {
		return fmt.Errorf("artifacts.history_path is required when history is enabled")
	}

	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not a valid level", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format %q must be json or console", c.Logging.Format)
	}

	if c.Metrics.Enabled && c.Metrics.Listen == "" {
		return fmt.Errorf("metrics.listen is required when metrics are enabled")
	}

	if !c.Build.ContentAnalyzer && !c.Build.SemanticAnalyzer && !c.Build.CulturalAnalyzer {
		return fmt.Errorf("at least one analyzer must be enabled")
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
