// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

package rules

// Connection scoring constants for the content analyzer.
const (
	// GenreMatchFloor is the minimum weighted genre overlap that emits a connection.
	GenreMatchFloor = 0.3
	// GenreMatchCap bounds genre match strength.
	GenreMatchCap = 0.9
	// GenreMultiMatchBonus is the per-extra-shared-genre strength bonus factor.
	GenreMultiMatchBonus = 0.1
	// GenreBaseConfidence is the confidence of a single-genre match.
	GenreBaseConfidence = 0.8
	// GenreConfidencePerExtra is added per shared genre beyond the first.
	GenreConfidencePerExtra = 0.05
	// GenreConfidenceCap bounds genre match confidence.
	GenreConfidenceCap = 0.95

	// StudioBaseStrength is the base strength for a shared production company.
	StudioBaseStrength = 0.95
	// StudioStrengthCap bounds studio universe strength.
	StudioStrengthCap = 0.98
	// StudioConfidence is the confidence of explicit shared-studio evidence.
	StudioConfidence = 0.95
	// StudioMajorMultiplier applies to major-studio matches.
	StudioMajorMultiplier = 0.95
	// StudioPrestigeMultiplier applies to prestige-studio matches.
	StudioPrestigeMultiplier = 0.85
	// StudioDefaultMultiplier applies to all other studios.
	StudioDefaultMultiplier = 0.7

	// TalentBaseStrength is the starting strength for any talent overlap.
	TalentBaseStrength = 0.4
	// TalentPerPersonFactor scales each shared person's importance contribution.
	TalentPerPersonFactor = 0.1
	// TalentDirectorBoost applies when a shared person directed both works.
	TalentDirectorBoost = 1.3
	// TalentKeyRoleBoost applies when two or more shared people hold key roles.
	TalentKeyRoleBoost = 1.2
	// TalentStrengthCap bounds talent overlap strength.
	TalentStrengthCap = 0.95
	// TalentBaseConfidence is the base confidence for talent overlap.
	TalentBaseConfidence = 0.85
	// TalentPopularityBoostMax caps the popularity boost on person importance.
	TalentPopularityBoostMax = 0.1
	// TalentPopularityScale divides person popularity into the boost range.
	TalentPopularityScale = 100.0

	// FranchiseStrength is the fixed strength for shared collection membership.
	FranchiseStrength = 0.92
	// FranchiseConfidence is the confidence of explicit franchise evidence.
	FranchiseConfidence = 0.95

	// RatingSimilarityFloor is the minimum rating for both sides of a
	// rating-similarity connection.
	RatingSimilarityFloor = 7.0
	// RatingSimilarityMaxDiff is the maximum absolute rating difference.
	RatingSimilarityMaxDiff = 1.0
	// RatingSimilarityScale converts rating proximity to strength.
	RatingSimilarityScale = 0.6
	// RatingSimilarityConfidence is the confidence for rating matches.
	RatingSimilarityConfidence = 0.75
)

// Person importance tiers, derived from billing order for cast and job title
// for crew.
const (
	BillingTopThreeImportance = 0.9
	BillingTopFiveImportance  = 0.8
	BillingTopTenImportance   = 0.7
	BillingDefaultImportance  = 0.5

	JobDirectorImportance = 0.95
	JobProducerImportance = 0.85
	JobWriterImportance   = 0.8
	JobDefaultImportance  = 0.6
)

// Graph post-processing constants.
const (
	// BidirectionalFactor discounts reverse edges added by symmetrization.
	BidirectionalFactor = 0.9
	// ReverseReasonPrefix prefixes the reason of symmetrized reverse edges.
	ReverseReasonPrefix = "Reverse: "
	// CategoryConnectionCap bounds each entity's per-category connection list.
	CategoryConnectionCap = 15
	// PeerInferenceFactor discounts two-hop transitive connections.
	PeerInferenceFactor = 0.7
	// PeerInferenceFloor is the minimum strength product that emits a peer edge.
	PeerInferenceFloor = 0.3
	// ClusterMinMembers is the minimum cluster size.
	ClusterMinMembers = 3
	// ClusterMemberStrength is the fixed strength of intra-cluster edges.
	ClusterMemberStrength = 0.6
)

// Recommendation list shaping.
const (
	// QuickConfidenceFloor is the minimum confidence for quick recommendations.
	QuickConfidenceFloor = 0.8
	// QuickListCap bounds the quick recommendation list.
	QuickListCap = 5
	// DeepListCap bounds the deep recommendation list.
	DeepListCap = 25
)

// CategoryConfidence maps connection category to its fixed confidence weight,
// used by the graph builder's confidence scoring pass.
var CategoryConfidence = map[string]float64{
	"direct":        0.9,
	"semantic":      0.7,
	"contextual":    0.75,
	"collaborative": 0.8,
	"temporal":      0.5,
	"cultural":      0.7,
	"cluster":       0.6,
}

// RelationshipTypeConfidence maps connection type to its fixed confidence
// weight. Types not listed default to 0.7.
var RelationshipTypeConfidence = map[string]float64{
	"genre_match":           0.8,
	"studio_universe":       0.95,
	"talent_overlap":        0.9,
	"franchise_member":      0.95,
	"rating_similarity":     0.75,
	"semantic_similarity":   0.7,
	"cultural_significance": 0.7,
	"cluster_member":        0.65,
	"peer_recommendation":   0.6,
}

// DefaultTypeConfidence applies to connection types absent from
// RelationshipTypeConfidence.
const DefaultTypeConfidence = 0.7

// TypeConfidenceFor returns the confidence weight for a connection type name.
func TypeConfidenceFor(connType string) float64 {
	if c, ok := RelationshipTypeConfidence[connType]; ok {
		return c
	}
	return DefaultTypeConfidence
}
