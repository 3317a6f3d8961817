// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

// Package analyzers implements the connection analyzers for the relationship
// graph builder.
//
// Each analyzer implements the graph.Analyzer interface, takes one entity
// plus the full corpus, and returns typed, scored connections. Analyzers are
// independent of one another and pluggable: the builder runs every registered
// analyzer against every entity.
//
//   - Content: explicit shared-attribute relationships (genres, studios,
//     talent, franchises, ratings)
//   - Semantic: thematic similarity from text and genre-derived keywords
//   - Cultural: overlapping cultural footprints
//
// # Error Handling
//
// Analyzers treat malformed or missing attributes as absent data and
// contribute zero connections for that signal. They never panic on bad
// entities; the builder additionally isolates any unexpected failure to the
// single entity/analyzer pair.
package analyzers

import (
	"math"
	"sort"

	"github.com/cinegraph/cinegraph/internal/graph"
)

// jaccard computes Jaccard overlap between two string sets.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	shared := 0
	for k := range a {
		if _, ok := b[k]; ok {
			shared++
		}
	}

	union := len(a) + len(b) - shared
	if union == 0 {
		return 0
	}
	return float64(shared) / float64(union)
}

// sharedKeys returns the sorted intersection of two string sets.
func sharedKeys(a, b map[string]struct{}) []string {
	var shared []string
	for k := range a {
		if _, ok := b[k]; ok {
			shared = append(shared, k)
		}
	}
	sort.Strings(shared)
	return shared
}

// clamp bounds v to [0, cap].
func clamp(v, capVal float64) float64 {
	if v > capVal {
		return capVal
	}
	if v < 0 {
		return 0
	}
	return v
}

// topKByScore sorts connections by strength descending (target ID ascending
// on ties, keeping output deterministic) and truncates to k.
func topKByScore(conns []graph.Connection, k int) []graph.Connection {
	sort.SliceStable(conns, func(i, j int) bool {
		if conns[i].Strength != conns[j].Strength {
			return conns[i].Strength > conns[j].Strength
		}
		return conns[i].TargetID < conns[j].TargetID
	})
	if len(conns) > k {
		conns = conns[:k]
	}
	return conns
}

// roundScore trims float noise so artifacts serialize identically across
// runs and platforms.
func roundScore(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
