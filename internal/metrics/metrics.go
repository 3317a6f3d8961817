// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

// Package metrics instruments the engine with Prometheus collectors: build
// timing, per-analyzer output, graph shape, index size, and artifact
// persistence. The driver exposes them on its /metrics endpoint; batch runs
// that exit immediately still benefit, since the collectors double as a
// structured summary for push-gateway setups.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Build Metrics
	BuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cinegraph_build_duration_seconds",
			Help:    "Duration of full graph builds in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120, 300, 600},
		},
	)

	BuildsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinegraph_builds_total",
			Help: "Total number of graph builds by outcome",
		},
		[]string{"outcome"}, // "success", "error"
	)

	BuildEntities = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinegraph_build_entities",
			Help: "Entity count of the most recent build, after enrichment",
		},
	)

	BuildConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinegraph_build_connections",
			Help: "Total connection count of the most recent build",
		},
	)

	BuildClusters = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinegraph_build_clusters",
			Help: "Semantic cluster count of the most recent build",
		},
	)

	BuildLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinegraph_build_last_success_timestamp_seconds",
			Help: "Unix timestamp of the last successful build",
		},
	)

	// Analyzer Metrics
	AnalyzerConnections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinegraph_analyzer_connections_total",
			Help: "Raw connections emitted per analyzer, before post-processing",
		},
		[]string{"analyzer"},
	)

	AnalyzerErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cinegraph_analyzer_errors_total",
			Help: "Entity/analyzer pairs that failed and were skipped",
		},
	)

	// Search Index Metrics
	IndexTerms = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinegraph_index_terms",
			Help: "Term count of the most recent search index",
		},
	)

	IndexCategories = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinegraph_index_categories",
			Help: "Category tag count of the most recent search index",
		},
	)

	// Artifact Metrics
	ArtifactWriteDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cinegraph_artifact_write_duration_seconds",
			Help:    "Duration of artifact persistence in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	ArtifactBytes = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cinegraph_artifact_bytes",
			Help: "Compressed size of each persisted artifact",
		},
		[]string{"artifact"},
	)
)

// RecordBuild records the outcome and shape of one graph build.
func RecordBuild(duration time.Duration, entities, connections, clusters, analyzerErrors int, byAnalyzer map[string]int, err error) {
	if err != nil {
		BuildsTotal.WithLabelValues("error").Inc()
		return
	}

	BuildsTotal.WithLabelValues("success").Inc()
	BuildLastSuccess.SetToCurrentTime()
	BuildDuration.Observe(duration.Seconds())
	BuildEntities.Set(float64(entities))
	BuildConnections.Set(float64(connections))
	BuildClusters.Set(float64(clusters))
	AnalyzerErrors.Add(float64(analyzerErrors))
	for analyzer, count := range byAnalyzer {
		AnalyzerConnections.WithLabelValues(analyzer).Add(float64(count))
	}
}

// RecordIndex records the size of a compiled search index.
func RecordIndex(terms, categories int) {
	IndexTerms.Set(float64(terms))
	IndexCategories.Set(float64(categories))
}

// RecordArtifactWrite records one artifact persistence pass.
func RecordArtifactWrite(duration time.Duration, sizes map[string]int64) {
	ArtifactWriteDuration.Observe(duration.Seconds())
	for artifact, size := range sizes {
		ArtifactBytes.WithLabelValues(artifact).Set(float64(size))
	}
}
