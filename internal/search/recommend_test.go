// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

package search

import (
	"fmt"
	"testing"

	"github.com/cinegraph/cinegraph/internal/graph"
)

func graphWith(entityID string, byCat map[graph.Category][]graph.Connection) *graph.Graph {
	return &graph.Graph{
		Entities: map[string]map[graph.Category][]graph.Connection{
			entityID: byCat,
		},
	}
}

func conn(target string, t graph.ConnectionType, strength, confidence float64) graph.Connection {
	return graph.Connection{
		TargetID:   target,
		Type:       t,
		Strength:   strength,
		Confidence: confidence,
		FinalScore: strength * confidence,
		Reason:     "r",
	}
}

func TestQuickListConfidenceFloor(t *testing.T) {
	g := graphWith("movie:1", map[graph.Category][]graph.Connection{
		graph.CategoryDirect: {
			conn("movie:2", graph.TypeStudioUniverse, 0.95, 0.9),
			conn("movie:3", graph.TypeGenreMatch, 0.8, 0.5),
		},
	})

	sets := NewCompiler().CompileRecommendations(g)
	quick := sets["movie:1"].Quick

	if len(quick) != 1 {
		t.Fatalf("quick list = %d entries, want 1", len(quick))
	}
	if quick[0].TargetID != "movie:2" {
		t.Errorf("quick[0] = %s, want movie:2", quick[0].TargetID)
	}
}

func TestQuickListCapped(t *testing.T) {
	var conns []graph.Connection
	for i := 0; i < 8; i++ {
		conns = append(conns, conn(fmt.Sprintf("movie:%d", i+2), graph.TypeStudioUniverse, 0.9, 0.9))
	}
	g := graphWith("movie:1", map[graph.Category][]graph.Connection{
		graph.CategoryDirect: conns,
	})

	quick := NewCompiler().CompileRecommendations(g)["movie:1"].Quick
	if len(quick) != 5 {
		t.Errorf("quick list = %d entries, want capped at 5", len(quick))
	}
}

func TestDeepListMergedAndRanked(t *testing.T) {
	g := graphWith("movie:1", map[graph.Category][]graph.Connection{
		graph.CategoryDirect: {
			conn("movie:2", graph.TypeGenreMatch, 0.6, 0.5),
		},
		graph.CategorySemantic: {
			conn("movie:3", graph.TypeSemanticSimilarity, 0.9, 0.9),
		},
		graph.CategoryCultural: {
			conn("movie:4", graph.TypeCulturalSignificance, 0.5, 0.4),
		},
	})

	deep := NewCompiler().CompileRecommendations(g)["movie:1"].Deep
	if len(deep) != 3 {
		t.Fatalf("deep list = %d entries, want 3", len(deep))
	}
	if deep[0].TargetID != "movie:3" {
		t.Errorf("deep[0] = %s, want highest final score movie:3", deep[0].TargetID)
	}
	for i := 1; i < len(deep); i++ {
		if deep[i-1].FinalScore < deep[i].FinalScore {
			t.Errorf("deep list not sorted by final score at %d", i)
		}
	}
}

func TestDeepListTiebreakByTarget(t *testing.T) {
	g := graphWith("movie:1", map[graph.Category][]graph.Connection{
		graph.CategoryDirect: {
			conn("movie:9", graph.TypeGenreMatch, 0.6, 0.5),
			conn("movie:2", graph.TypeGenreMatch, 0.6, 0.5),
		},
	})

	deep := NewCompiler().CompileRecommendations(g)["movie:1"].Deep
	if deep[0].TargetID != "movie:2" {
		t.Errorf("tie should break by target ID, got %s first", deep[0].TargetID)
	}
}
