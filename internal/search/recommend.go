// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

package search

import (
	"sort"

	"github.com/cinegraph/cinegraph/internal/graph"
	"github.com/cinegraph/cinegraph/internal/rules"
)

// Recommendation is one ranked entry in a recommendation list. It carries
// plain values only; nothing is shared with the graph beyond the target ID.
type Recommendation struct {
	// TargetID is the recommended entity.
	TargetID string `json:"target_id"`

	// Type is the connection type behind the recommendation.
	Type graph.ConnectionType `json:"type"`

	// Strength, Confidence, and FinalScore mirror the underlying connection.
	Strength   float64 `json:"strength"`
	Confidence float64 `json:"confidence"`
	FinalScore float64 `json:"final_score"`

	// Reason is the human-readable justification.
	Reason string `json:"reason"`
}

// RecommendationSet is the per-entity recommendation artifact: a quick list
// of high-confidence direct connections and a deep list merged across all
// categories.
type RecommendationSet struct {
	// Quick lists direct-category connections with confidence at or above the
	// quick floor, capped at the quick list size.
	Quick []Recommendation `json:"quick"`

	// Deep lists all connections merged across categories, ranked by final
	// score, capped at the deep list size.
	Deep []Recommendation `json:"deep"`
}

// CompileRecommendations derives the recommendation sets for every entity in
// the graph.
func (sc *Compiler) CompileRecommendations(g *graph.Graph) map[string]RecommendationSet {
	out := make(map[string]RecommendationSet, len(g.Entities))
	for id := range g.Entities {
		out[id] = RecommendationSet{
			Quick: quickList(g, id),
			Deep:  deepList(g, id),
		}
	}
	sc.log.Info().Int("entities", len(out)).Msg("recommendation sets compiled")
	return out
}

// quickList selects direct connections clearing the confidence floor.
func quickList(g *graph.Graph, entityID string) []Recommendation {
	var recs []Recommendation
	for _, conn := range g.Connections(entityID, graph.CategoryDirect) {
		if conn.Confidence >= rules.QuickConfidenceFloor {
			recs = append(recs, toRecommendation(conn))
		}
	}
	rankRecommendations(recs)
	if len(recs) > rules.QuickListCap {
		recs = recs[:rules.QuickListCap]
	}
	return recs
}

// deepList merges all categories and ranks by final score.
func deepList(g *graph.Graph, entityID string) []Recommendation {
	var recs []Recommendation
	for _, conn := range g.AllConnections(entityID) {
		recs = append(recs, toRecommendation(conn))
	}
	rankRecommendations(recs)
	if len(recs) > rules.DeepListCap {
		recs = recs[:rules.DeepListCap]
	}
	return recs
}

// rankRecommendations sorts by final score descending with a stable target ID
// tiebreak.
func rankRecommendations(recs []Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].FinalScore != recs[j].FinalScore {
			return recs[i].FinalScore > recs[j].FinalScore
		}
		return recs[i].TargetID < recs[j].TargetID
	})
}

func toRecommendation(conn graph.Connection) Recommendation {
	return Recommendation{
		TargetID:   conn.TargetID,
		Type:       conn.Type,
		Strength:   conn.Strength,
		Confidence: conn.Confidence,
		FinalScore: conn.FinalScore,
		Reason:     conn.Reason,
	}
}
