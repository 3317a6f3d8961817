// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

package graph

import (
	"github.com/cinegraph/cinegraph/internal/corpus"
)

// ConnectionType identifies a typed relationship between two entities.
// The set is closed; the graph builder rejects nothing but scores unknown
// types with a default confidence.
type ConnectionType string

// The closed connection type taxonomy.
const (
	TypeGenreMatch           ConnectionType = "genre_match"
	TypeStudioUniverse       ConnectionType = "studio_universe"
	TypeTalentOverlap        ConnectionType = "talent_overlap"
	TypeFranchiseMember      ConnectionType = "franchise_member"
	TypeRatingSimilarity     ConnectionType = "rating_similarity"
	TypeSemanticSimilarity   ConnectionType = "semantic_similarity"
	TypeCulturalSignificance ConnectionType = "cultural_significance"
	TypeClusterMember        ConnectionType = "cluster_member"
	TypePeerRecommendation   ConnectionType = "peer_recommendation"
)

// Category partitions an entity's connections in the relationship graph.
type Category string

// The connection categories. Temporal is part of the fixed partition and
// scoring tables even though no current analyzer emits into it.
const (
	CategoryDirect        Category = "direct"
	CategorySemantic      Category = "semantic"
	CategoryContextual    Category = "contextual"
	CategoryCollaborative Category = "collaborative"
	CategoryTemporal      Category = "temporal"
	CategoryCultural      Category = "cultural"
	CategoryCluster       Category = "cluster"
)

// Categories lists all categories in stable order.
var Categories = []Category{
	CategoryDirect,
	CategorySemantic,
	CategoryContextual,
	CategoryCollaborative,
	CategoryTemporal,
	CategoryCultural,
	CategoryCluster,
}

// CategoryOf maps a connection type to the category it is collected into.
func CategoryOf(t ConnectionType) Category {
	switch t {
	case TypeGenreMatch, TypeStudioUniverse, TypeFranchiseMember:
		return CategoryDirect
	case TypeSemanticSimilarity:
		return CategorySemantic
	case TypeRatingSimilarity:
		return CategoryContextual
	case TypeTalentOverlap, TypePeerRecommendation:
		return CategoryCollaborative
	case TypeCulturalSignificance:
		return CategoryCultural
	case TypeClusterMember:
		return CategoryCluster
	default:
		return CategoryContextual
	}
}

// Connection is a directed, scored, typed edge from a source entity to
// TargetID. Strength measures how related the entities are; Confidence
// measures how reliable the evidence is. FinalScore is always the product of
// the two and is recomputed by the confidence scoring pass, never persisted
// independently.
type Connection struct {
	// TargetID is the entity this connection points at.
	TargetID string `json:"target_id"`

	// Type is the connection type.
	Type ConnectionType `json:"type"`

	// Strength is the degree of relatedness, in [0,1].
	Strength float64 `json:"strength"`

	// Confidence is the evidence reliability, in [0,1].
	Confidence float64 `json:"confidence"`

	// FinalScore is Strength × Confidence, used for ranking.
	FinalScore float64 `json:"final_score"`

	// Reason is a human-readable justification. Never empty.
	Reason string `json:"reason"`

	// Metadata carries type-specific details (shared genres, person names,
	// cluster keys). Values must be JSON-serializable.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Cluster is a named group of at least three entities sharing a semantic
// connection type. Clusters are derived and rebuilt on every compilation.
type Cluster struct {
	// Key identifies the cluster ("semantic_<type>").
	Key string `json:"key"`

	// Members lists the member entity IDs, sorted ascending.
	Members []string `json:"members"`
}

// Graph is the compiled relationship graph: entity ID to category to sorted
// connection slice, plus the clusters formed during the build.
type Graph struct {
	// Entities maps entity ID to its categorized outbound connections.
	Entities map[string]map[Category][]Connection `json:"entities"`

	// Clusters lists the semantic clusters, sorted by key.
	Clusters []Cluster `json:"clusters"`
}

// Connections returns the connection slice for an entity and category,
// nil when absent.
func (g *Graph) Connections(entityID string, cat Category) []Connection {
	byCat, ok := g.Entities[entityID]
	if !ok {
		return nil
	}
	return byCat[cat]
}

// AllConnections returns every connection for an entity across categories, in
// stable category order.
func (g *Graph) AllConnections(entityID string) []Connection {
	byCat, ok := g.Entities[entityID]
	if !ok {
		return nil
	}
	var out []Connection
	for _, cat := range Categories {
		out = append(out, byCat[cat]...)
	}
	return out
}

// Analyzer finds typed connections from one entity to the rest of the corpus.
// Implementations must never emit self-loops, must populate Reason on every
// connection, and must treat malformed attributes as absent data rather than
// failing.
type Analyzer interface {
	// Name returns the analyzer identifier (e.g. "content", "semantic").
	Name() string

	// Analyze returns the connections from entity to other corpus entities.
	// The cache is scoped to a single build; analyzers use it to memoize
	// per-entity derived profiles so the O(n²) pass profiles each entity once.
	Analyze(entity *corpus.Entity, c *corpus.Corpus, cache *BuildCache) ([]Connection, error)
}

// Enricher precomputes derived attributes on entities of a specific kind
// before analysis. Enrichers may remove entities that fail quality gates.
type Enricher interface {
	// Name returns the enricher identifier.
	Name() string

	// Enrich processes the corpus in place, adding derived fields.
	Enrich(c *corpus.Corpus) error
}
