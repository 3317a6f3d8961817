// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

package analyzers

import (
	"sort"
	"strings"

	"github.com/cinegraph/cinegraph/internal/corpus"
	"github.com/cinegraph/cinegraph/internal/graph"
	"github.com/cinegraph/cinegraph/internal/rules"
)

// cacheNSSemantic namespaces semantic profiles in the build cache.
const cacheNSSemantic = "semantic"

// Semantic finds thematic similarity from unstructured text (overview,
// tagline, title) and structured genre-to-theme mappings, across four axes:
// theme, setting, mood, and audience.
//
// Extraction is keyword/regex based by design. The pattern families live in
// the shared rules package so indexing uses the identical vocabulary.
type Semantic struct{}

// NewSemantic creates a semantic analyzer.
func NewSemantic() *Semantic {
	return &Semantic{}
}

// Name returns the analyzer identifier.
func (a *Semantic) Name() string { return "semantic" }

// semanticProfile is the per-axis keyword extraction for one entity.
type semanticProfile struct {
	axes map[rules.Axis]map[string]struct{}
}

// empty reports whether no axis extracted any keyword.
func (p *semanticProfile) empty() bool {
	for _, kw := range p.axes {
		if len(kw) > 0 {
			return false
		}
	}
	return true
}

// Analyze compares the entity's semantic profile against every other work in
// the corpus and returns the top matches by combined score.
func (a *Semantic) Analyze(entity *corpus.Entity, c *corpus.Corpus, cache *graph.BuildCache) ([]graph.Connection, error) {
	if entity.Kind != corpus.KindMovie && entity.Kind != corpus.KindShow {
		return nil, nil
	}

	profile := a.profileFor(entity, cache)
	if profile.empty() {
		return nil, nil
	}

	var conns []graph.Connection
	for _, otherID := range c.IDs() {
		if otherID == entity.ID {
			continue
		}
		other := c.Get(otherID)
		if other.Kind != corpus.KindMovie && other.Kind != corpus.KindShow {
			continue
		}

		otherProfile := a.profileFor(other, cache)
		if otherProfile.empty() {
			continue
		}

		if conn, ok := a.compare(entity, other, profile, otherProfile); ok {
			conns = append(conns, conn)
		}
	}

	return topKByScore(conns, rules.SemanticTopK), nil
}

// profileFor returns the entity's semantic profile, extracting and caching it
// on first use so each entity is profiled once per build.
func (a *Semantic) profileFor(e *corpus.Entity, cache *graph.BuildCache) *semanticProfile {
	if v, ok := cache.Get(cacheNSSemantic, e.ID); ok {
		return v.(*semanticProfile)
	}

	p := extractSemanticProfile(e)
	cache.Put(cacheNSSemantic, e.ID, p)
	return p
}

// extractSemanticProfile builds the four-axis keyword profile for an entity:
// pattern families over the combined content string, genre-derived themes,
// and title-derived heuristics.
func extractSemanticProfile(e *corpus.Entity) *semanticProfile {
	content := buildContentString(e)

	p := &semanticProfile{axes: make(map[rules.Axis]map[string]struct{}, len(rules.AxisPatterns))}
	for axis, families := range rules.AxisPatterns {
		matched := make(map[string]struct{})
		for name, re := range families {
			if re.MatchString(content) {
				matched[name] = struct{}{}
			}
		}
		p.axes[axis] = matched
	}

	// Structured genres imply themes regardless of overview wording.
	for _, g := range e.Genres {
		for _, theme := range rules.GenreThemes[strings.ToLower(g)] {
			p.axes[rules.AxisTheme][theme] = struct{}{}
		}
	}

	// Title heuristics: numbered/"Part"/"Chapter" titles signal mainstream
	// franchise entries; dark title words signal a dark mood.
	if rules.SequelTitlePattern.MatchString(e.Name) {
		p.axes[rules.AxisAudience]["mainstream"] = struct{}{}
	}
	if rules.DarkTitlePattern.MatchString(e.Name) {
		p.axes[rules.AxisMood]["dark"] = struct{}{}
	}

	return p
}

// buildContentString concatenates the entity's text surfaces into one
// lowercased string for pattern matching.
func buildContentString(e *corpus.Entity) string {
	var sb strings.Builder
	sb.WriteString(e.Name)
	sb.WriteByte(' ')
	sb.WriteString(e.Tagline)
	sb.WriteByte(' ')
	sb.WriteString(e.Overview)
	for _, g := range e.Genres {
		sb.WriteByte(' ')
		sb.WriteString(g)
	}
	for _, k := range e.Keywords {
		sb.WriteByte(' ')
		sb.WriteString(k)
	}
	return strings.ToLower(sb.String())
}

// compare scores two semantic profiles: weighted per-axis Jaccard, boosted
// for strong shared themes and multi-axis matches.
func (a *Semantic) compare(entity, other *corpus.Entity, p, q *semanticProfile) (graph.Connection, bool) {
	var weightedSum, weightTotal float64
	matchedAxes := 0
	var sharedThemes []string

	for axis, weight := range rules.AxisWeights {
		sim := jaccard(p.axes[axis], q.axes[axis])
		weightedSum += weight * sim
		weightTotal += weight
		if sim > 0 {
			matchedAxes++
		}
		if axis == rules.AxisTheme {
			sharedThemes = sharedKeys(p.axes[axis], q.axes[axis])
		}
	}

	score := weightedSum / weightTotal

	strongTheme := ""
	for _, theme := range sharedThemes {
		if rules.IsStrongTheme(theme) {
			strongTheme = theme
			break
		}
	}

	if strongTheme != "" {
		score *= rules.SemanticStrongThemeBoost
	}
	switch {
	case matchedAxes >= 3:
		score *= rules.SemanticThreeAxisBoost
	case matchedAxes == 2:
		score *= rules.SemanticTwoAxisBoost
	}
	score = clamp(score, 1.0)

	if score <= rules.SemanticFloor {
		return graph.Connection{}, false
	}

	confidence := rules.SemanticBaseConfidence + 0.05*float64(matchedAxes-1)
	if strongTheme != "" {
		confidence += 0.05
	}
	confidence = clamp(confidence, rules.SemanticConfidenceCap)

	reason := "Thematically similar"
	if len(sharedThemes) > 0 {
		reason = "Shared themes: " + strings.Join(sharedThemes, ", ")
	}

	return graph.Connection{
		TargetID:   other.ID,
		Type:       graph.TypeSemanticSimilarity,
		Strength:   roundScore(score),
		Confidence: roundScore(confidence),
		Reason:     reason,
		Metadata: map[string]any{
			"shared_themes": sharedThemes,
			"matched_axes":  matchedAxes,
		},
	}, true
}

// SharedAxisKeywords exposes an entity's extracted keywords for one axis,
// sorted. The search compiler uses this to tag entities with the same theme
// vocabulary the analyzer scores with.
func SharedAxisKeywords(e *corpus.Entity, axis rules.Axis) []string {
	p := extractSemanticProfile(e)
	kws := make([]string, 0, len(p.axes[axis]))
	for k := range p.axes[axis] {
		kws = append(kws, k)
	}
	sort.Strings(kws)
	return kws
}
