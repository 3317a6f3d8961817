// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

package graph

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/cinegraph/cinegraph/internal/corpus"
	"github.com/cinegraph/cinegraph/internal/logging"
	"github.com/cinegraph/cinegraph/internal/rules"
)

// Builder orchestrates enrichers and analyzers over a corpus and applies the
// graph post-processing passes: bidirectional symmetrization, peer-to-peer
// inference, semantic clustering, and confidence scoring.
//
// A failing analyzer (error or panic) costs only that entity/analyzer pair;
// the build continues with whatever the remaining analyzers produce.
type Builder struct {
	enrichers []Enricher
	analyzers []Analyzer
	log       zerolog.Logger
}

// Stats summarizes one build.
type Stats struct {
	// Entities is the corpus size after enrichment.
	Entities int

	// Connections is the total edge count across all entities and categories.
	Connections int

	// Clusters is the number of semantic clusters formed.
	Clusters int

	// AnalyzerErrors counts entity/analyzer pairs that failed and were skipped.
	AnalyzerErrors int

	// ByAnalyzer counts raw connections emitted per analyzer, before
	// post-processing.
	ByAnalyzer map[string]int

	// Duration is the wall-clock build time.
	Duration time.Duration
}

// NewBuilder creates a builder running the given enrichers then analyzers, in
// order.
func NewBuilder(enrichers []Enricher, analyzers []Analyzer) *Builder {
	return &Builder{
		enrichers: enrichers,
		analyzers: analyzers,
		log:       logging.With().Str("component", "graph").Logger(),
	}
}

// Build compiles the relationship graph for the corpus. The corpus may be
// mutated by enrichers (derived fields added, low-signal entities removed)
// before analysis begins.
func (b *Builder) Build(ctx context.Context, c *corpus.Corpus) (*Graph, *Stats, error) {
	start := time.Now()
	stats := &Stats{ByAnalyzer: make(map[string]int)}

	for _, e := range b.enrichers {
		if err := e.Enrich(c); err != nil {
			// Enrichment is best-effort; unenriched entities still analyze.
			b.log.Error().Err(err).Str("enricher", e.Name()).Msg("enricher failed")
		}
	}
	stats.Entities = c.Len()

	g := &Graph{Entities: make(map[string]map[Category][]Connection, c.Len())}
	cache := NewBuildCache()

	for _, id := range c.IDs() {
		if err := ctx.Err(); err != nil {
			return nil, nil, fmt.Errorf("graph build canceled: %w", err)
		}
		entity := c.Get(id)

		for _, a := range b.analyzers {
			conns, err := b.runAnalyzer(a, entity, c, cache)
			if err != nil {
				stats.AnalyzerErrors++
				b.log.Error().Err(err).
					Str("analyzer", a.Name()).
					Str("entity", id).
					Msg("analyzer failed, skipping entity")
				continue
			}
			stats.ByAnalyzer[a.Name()] += len(conns)

			for _, conn := range conns {
				if conn.TargetID == id || !c.Has(conn.TargetID) {
					continue
				}
				b.addConnection(g, id, conn)
			}
		}
	}

	b.symmetrize(g, c)
	b.inferPeers(g)
	b.formClusters(g)
	b.scoreConfidence(g)

	for _, byCat := range g.Entities {
		for _, conns := range byCat {
			stats.Connections += len(conns)
		}
	}
	stats.Clusters = len(g.Clusters)
	stats.Duration = time.Since(start)

	b.log.Info().
		Int("entities", stats.Entities).
		Int("connections", stats.Connections).
		Int("clusters", stats.Clusters).
		Int("analyzer_errors", stats.AnalyzerErrors).
		Dur("duration", stats.Duration).
		Msg("graph build complete")

	return g, stats, nil
}

// runAnalyzer invokes one analyzer on one entity, converting a panic into an
// error so a single bad entity cannot take down the build.
func (b *Builder) runAnalyzer(a Analyzer, entity *corpus.Entity, c *corpus.Corpus, cache *BuildCache) (conns []Connection, err error) {
	defer func() {
		if r := recover(); r != nil {
			conns = nil
			err = fmt.Errorf("analyzer %s panicked on %s: %v", a.Name(), entity.ID, r)
		}
	}()
	return a.Analyze(entity, c, cache)
}

// addConnection appends a connection under its type's category.
func (b *Builder) addConnection(g *Graph, sourceID string, conn Connection) {
	byCat, ok := g.Entities[sourceID]
	if !ok {
		byCat = make(map[Category][]Connection)
		g.Entities[sourceID] = byCat
	}
	cat := CategoryOf(conn.Type)
	byCat[cat] = append(byCat[cat], conn)
}

// symmetrize adds a discounted reverse edge for every connection whose target
// exists in the corpus and does not already hold an edge of the same type back
// to the source. Per-category lists are capped afterwards.
func (b *Builder) symmetrize(g *Graph, c *corpus.Corpus) {
	sourceIDs := sortedEntityIDs(g)

	var reverses []struct {
		source string
		conn   Connection
	}

	for _, sourceID := range sourceIDs {
		byCat := g.Entities[sourceID]
		for _, cat := range Categories {
			for _, conn := range byCat[cat] {
				if !c.Has(conn.TargetID) {
					continue
				}
				if hasEdge(g, conn.TargetID, sourceID, conn.Type) {
					continue
				}
				reverses = append(reverses, struct {
					source string
					conn   Connection
				}{
					source: conn.TargetID,
					conn: Connection{
						TargetID:   sourceID,
						Type:       conn.Type,
						Strength:   roundScore(conn.Strength * rules.BidirectionalFactor),
						Confidence: conn.Confidence,
						Reason:     rules.ReverseReasonPrefix + conn.Reason,
						Metadata:   map[string]any{"bidirectional": true},
					},
				})
			}
		}
	}

	for _, r := range reverses {
		// A later reverse for the same pair and type can appear when two
		// sources both point at the same target; keep the first.
		if hasEdge(g, r.source, r.conn.TargetID, r.conn.Type) {
			continue
		}
		b.addConnection(g, r.source, r.conn)
	}

	capCategories(g)
}

// inferPeers derives two-hop peer recommendations over direct connections:
// a→b and b→c imply a weaker a→c. Only products clearing the floor emit, and
// the strongest path per (a, c) pair wins.
func (b *Builder) inferPeers(g *Graph) {
	type peerKey struct{ source, target string }
	best := make(map[peerKey]Connection)

	for _, a := range sortedEntityIDs(g) {
		for _, ab := range g.Entities[a][CategoryDirect] {
			mid := ab.TargetID
			for _, bc := range g.Entities[mid][CategoryDirect] {
				target := bc.TargetID
				if target == a {
					continue
				}
				if hasDirectEdge(g, a, target) {
					continue
				}

				strength := roundScore(ab.Strength * bc.Strength * rules.PeerInferenceFactor)
				if strength <= rules.PeerInferenceFloor {
					continue
				}

				key := peerKey{source: a, target: target}
				if prev, ok := best[key]; ok && prev.Strength >= strength {
					continue
				}
				best[key] = Connection{
					TargetID: target,
					Type:     TypePeerRecommendation,
					Strength: strength,
					Reason:   "Recommended via " + mid,
					Metadata: map[string]any{"via": mid},
				}
			}
		}
	}

	keys := make([]peerKey, 0, len(best))
	for k := range best {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].source != keys[j].source {
			return keys[i].source < keys[j].source
		}
		return keys[i].target < keys[j].target
	})
	for _, k := range keys {
		b.addConnection(g, k.source, best[k])
	}
}

// formClusters groups entities that co-occur on either side of a semantic
// connection, keyed by connection type. Clusters below the minimum size are
// discarded; members of a formed cluster are fully interconnected with fixed
// strength edges.
func (b *Builder) formClusters(g *Graph) {
	memberSets := make(map[ConnectionType]map[string]struct{})

	for _, sourceID := range sortedEntityIDs(g) {
		for _, conn := range g.Entities[sourceID][CategorySemantic] {
			set, ok := memberSets[conn.Type]
			if !ok {
				set = make(map[string]struct{})
				memberSets[conn.Type] = set
			}
			set[sourceID] = struct{}{}
			set[conn.TargetID] = struct{}{}
		}
	}

	types := make([]ConnectionType, 0, len(memberSets))
	for t := range memberSets {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	for _, t := range types {
		set := memberSets[t]
		if len(set) < rules.ClusterMinMembers {
			continue
		}

		members := make([]string, 0, len(set))
		for id := range set {
			members = append(members, id)
		}
		sort.Strings(members)

		key := "semantic_" + string(t)
		g.Clusters = append(g.Clusters, Cluster{Key: key, Members: members})

		for _, a := range members {
			for _, other := range members {
				if other == a {
					continue
				}
				b.addConnection(g, a, Connection{
					TargetID: other,
					Type:     TypeClusterMember,
					Strength: rules.ClusterMemberStrength,
					Reason:   "Member of cluster " + key,
					Metadata: map[string]any{"cluster_key": key},
				})
			}
		}
	}

	sort.Slice(g.Clusters, func(i, j int) bool { return g.Clusters[i].Key < g.Clusters[j].Key })
}

// scoreConfidence recomputes every connection's confidence from the fixed
// category and type tables, derives the final score, and leaves each category
// sorted by final score descending and capped.
func (b *Builder) scoreConfidence(g *Graph) {
	for _, byCat := range g.Entities {
		for cat, conns := range byCat {
			catWeight := rules.CategoryConfidence[string(cat)]
			for i := range conns {
				conns[i].Confidence = roundScore(conns[i].Strength * catWeight * rules.TypeConfidenceFor(string(conns[i].Type)))
				conns[i].FinalScore = roundScore(conns[i].Strength * conns[i].Confidence)
			}
			sort.SliceStable(conns, func(i, j int) bool {
				if conns[i].FinalScore != conns[j].FinalScore {
					return conns[i].FinalScore > conns[j].FinalScore
				}
				return conns[i].TargetID < conns[j].TargetID
			})
			if len(conns) > rules.CategoryConnectionCap {
				conns = conns[:rules.CategoryConnectionCap]
			}
			byCat[cat] = conns
		}
	}
}

// capCategories sorts each category by strength and truncates to the
// per-category cap.
func capCategories(g *Graph) {
	for _, byCat := range g.Entities {
		for cat, conns := range byCat {
			sort.SliceStable(conns, func(i, j int) bool {
				if conns[i].Strength != conns[j].Strength {
					return conns[i].Strength > conns[j].Strength
				}
				return conns[i].TargetID < conns[j].TargetID
			})
			if len(conns) > rules.CategoryConnectionCap {
				conns = conns[:rules.CategoryConnectionCap]
			}
			byCat[cat] = conns
		}
	}
}

// hasEdge reports whether source already holds an edge of the given type to
// target, in the type's category.
func hasEdge(g *Graph, sourceID, targetID string, t ConnectionType) bool {
	for _, conn := range g.Entities[sourceID][CategoryOf(t)] {
		if conn.TargetID == targetID && conn.Type == t {
			return true
		}
	}
	return false
}

// hasDirectEdge reports whether source holds any direct-category edge to
// target.
func hasDirectEdge(g *Graph, sourceID, targetID string) bool {
	for _, conn := range g.Entities[sourceID][CategoryDirect] {
		if conn.TargetID == targetID {
			return true
		}
	}
	return false
}

// sortedEntityIDs returns the graph's entity IDs in ascending order so every
// post-processing pass iterates deterministically.
func sortedEntityIDs(g *Graph) []string {
	ids := make([]string, 0, len(g.Entities))
	for id := range g.Entities {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// roundScore trims float noise so artifacts serialize identically across runs.
func roundScore(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
