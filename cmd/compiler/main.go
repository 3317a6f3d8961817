// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

// Package main is the entry point for the CineGraph compiler.
//
// The compiler reads an entity corpus (movies, shows, people, companies),
// builds the multi-dimensional relationship graph, compiles the search and
// recommendation indexes, and persists the results as versioned artifacts.
//
// # Pipeline
//
// One compilation run proceeds through the following stages:
//
//  1. Configuration: load settings from defaults, config file, and
//     environment variables (Koanf v2)
//  2. Corpus: load and validate the entity corpus from JSON
//  3. Enrichment: precompute derived attributes (person career profiles)
//  4. Analysis: run the configured analyzers over every entity
//  5. Post-processing: symmetrize, infer peers, form clusters, score
//     confidence
//  6. Index compilation: search term/category/context/intent maps and
//     per-entity recommendation lists
//  7. Persistence: atomic artifact writes, manifest last, optional build
//     history in BadgerDB
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (CINEGRAPH_ prefix)
//   - Config file (cinegraph.yaml, or CINEGRAPH_CONFIG)
//   - Built-in defaults
//
// # Example Usage
//
// Compile a corpus with defaults:
//
//	export CINEGRAPH_CORPUS_PATH=/data/corpus.json
//	export CINEGRAPH_ARTIFACTS_DIR=/data/artifacts
//	./cinegraph-compiler
//
// With build history and metrics:
//
//	export CINEGRAPH_ARTIFACTS_HISTORY_ENABLED=true
//	export CINEGRAPH_METRICS_ENABLED=true
//	./cinegraph-compiler
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cinegraph/cinegraph/internal/artifacts"
	"github.com/cinegraph/cinegraph/internal/config"
	"github.com/cinegraph/cinegraph/internal/corpus"
	"github.com/cinegraph/cinegraph/internal/graph"
	"github.com/cinegraph/cinegraph/internal/graph/analyzers"
	"github.com/cinegraph/cinegraph/internal/logging"
	"github.com/cinegraph/cinegraph/internal/metrics"
	"github.com/cinegraph/cinegraph/internal/search"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("corpus", cfg.Corpus.Path).
		Str("artifacts", cfg.Artifacts.Dir).
		Bool("history", cfg.Artifacts.HistoryEnabled).
		Msg("Starting CineGraph compiler")

	// Cancel the build on SIGINT/SIGTERM so artifact writes are never
	// interrupted mid-file
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Optional metrics endpoint; batch runs that want scraping keep the
	// process alive with CINEGRAPH_METRICS_ENABLED plus a supervisor
	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsServer = &http.Server{
			Addr:              cfg.Metrics.Listen,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logging.Info().Str("listen", cfg.Metrics.Listen).Msg("Metrics endpoint started")
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logging.Error().Err(err).Msg("Metrics endpoint failed")
			}
		}()
	}

	if err := run(ctx, cfg); err != nil {
		logging.Error().Err(err).Msg("Compilation failed")
		shutdownMetrics(metricsServer)
		os.Exit(1)
	}

	shutdownMetrics(metricsServer)
	logging.Info().Msg("Compilation complete")
}

// run executes one full compilation: corpus load, graph build, index
// compilation, artifact persistence, history record.
func run(ctx context.Context, cfg *config.Config) error {
	c, err := corpus.LoadFile(cfg.Corpus.Path)
	if err != nil {
		return err
	}
	logging.Info().Int("entities", c.Len()).Msg("Corpus loaded")

	builder := graph.NewBuilder(buildEnrichers(cfg), buildAnalyzers(cfg))
	g, stats, err := builder.Build(ctx, c)
	if err != nil {
		metrics.RecordBuild(0, 0, 0, 0, 0, nil, err)
		return err
	}
	metrics.RecordBuild(stats.Duration, stats.Entities, stats.Connections,
		stats.Clusters, stats.AnalyzerErrors, stats.ByAnalyzer, nil)

	compiler := search.NewCompiler()
	index := compiler.CompileIndex(c)
	recommendations := compiler.CompileRecommendations(g)
	metrics.RecordIndex(len(index.TermMap), len(index.CategoryMap))

	store, err := artifacts.NewStore(cfg.Artifacts.Dir)
	if err != nil {
		return err
	}

	writeStart := time.Now()
	manifest, err := store.Write(ctx, &artifacts.Build{
		Corpus:          c.Snapshot(),
		Graph:           g,
		Index:           index,
		Recommendations: recommendations,
	})
	if err != nil {
		return err
	}
	metrics.RecordArtifactWrite(time.Since(writeStart), artifactSizes(manifest))

	logging.Info().
		Str("build_id", manifest.BuildID).
		Int("entities", manifest.EntityCount).
		Int("connections", manifest.ConnectionCount).
		Int("clusters", manifest.ClusterCount).
		Msg("Artifacts written")

	if cfg.Artifacts.HistoryEnabled {
		history, err := artifacts.OpenHistory(cfg.Artifacts.HistoryPath)
		if err != nil {
			return err
		}
		defer func() {
			if err := history.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing build history")
			}
		}()
		if err := history.Record(ctx, manifest); err != nil {
			return err
		}
		logging.Info().Str("build_id", manifest.BuildID).Msg("Build recorded in history")
	}

	return nil
}

// buildEnrichers assembles the enricher chain from the build configuration.
func buildEnrichers(cfg *config.Config) []graph.Enricher {
	var enrichers []graph.Enricher
	if cfg.Build.EnrichPersons {
		enrichers = append(enrichers, analyzers.NewCareer())
	}
	return enrichers
}

// buildAnalyzers assembles the analyzer chain from the build configuration.
// Validate guarantees at least one analyzer is enabled.
func buildAnalyzers(cfg *config.Config) []graph.Analyzer {
	var list []graph.Analyzer
	if cfg.Build.ContentAnalyzer {
		list = append(list, analyzers.NewContent())
	}
	if cfg.Build.SemanticAnalyzer {
		list = append(list, analyzers.NewSemantic())
	}
	if cfg.Build.CulturalAnalyzer {
		list = append(list, analyzers.NewCultural())
	}
	return list
}

// artifactSizes extracts the per-artifact compressed sizes for metrics.
func artifactSizes(m *artifacts.Manifest) map[string]int64 {
	sizes := make(map[string]int64, len(m.Files))
	for name, info := range m.Files {
		sizes[name] = info.SizeBytes
	}
	return sizes
}

// shutdownMetrics stops the metrics endpoint if it was started.
func shutdownMetrics(srv *http.Server) {
	if srv == nil {
		return
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Error shutting down metrics endpoint")
	}
}
