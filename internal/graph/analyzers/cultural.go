// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

package analyzers

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/cinegraph/cinegraph/internal/corpus"
	"github.com/cinegraph/cinegraph/internal/graph"
	"github.com/cinegraph/cinegraph/internal/rules"
)

// cacheNSCultural namespaces cultural profiles in the build cache.
const cacheNSCultural = "cultural"

// Cultural models each entity's cultural footprint (critical acclaim, cult
// status, social themes, cultural movements, regional origin, audience
// segment) and connects entities whose footprints overlap.
//
// Entities with a significance score below rules.SignificanceFloor and no
// markers, themes, or movements are culturally insignificant and emit no
// connections in either direction.
type Cultural struct {
	// now anchors time-decay; injectable for deterministic tests.
	now func() time.Time
}

// NewCultural creates a cultural analyzer.
func NewCultural() *Cultural {
	return &Cultural{now: time.Now}
}

// Name returns the analyzer identifier.
func (a *Cultural) Name() string { return "cultural" }

// culturalProfile is one entity's cultural footprint.
type culturalProfile struct {
	markers      map[string]struct{}
	themes       map[string]float64
	movements    map[string]float64
	region       string
	audience     string
	significance float64
}

// insignificant reports the explicit early-exit condition: significance below
// the floor with zero markers, themes, and movements.
func (p *culturalProfile) insignificant() bool {
	return p.significance < rules.SignificanceFloor &&
		len(p.markers) == 0 && len(p.themes) == 0 && len(p.movements) == 0
}

// Analyze compares the entity's cultural profile against every other work in
// the corpus and returns the top matches by footprint overlap.
func (a *Cultural) Analyze(entity *corpus.Entity, c *corpus.Corpus, cache *graph.BuildCache) ([]graph.Connection, error) {
	if entity.Kind != corpus.KindMovie && entity.Kind != corpus.KindShow {
		return nil, nil
	}

	profile := a.profileFor(entity, cache)
	if profile.insignificant() {
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
		if otherProfile.insignificant() {
			continue
		}

		if conn, ok := a.compare(other, profile, otherProfile); ok {
			conns = append(conns, conn)
		}
	}

	return topKByScore(conns, rules.CulturalTopK), nil
}

// profileFor returns the entity's cultural profile, building and caching it
// on first use.
func (a *Cultural) profileFor(e *corpus.Entity, cache *graph.BuildCache) *culturalProfile {
	if v, ok := cache.Get(cacheNSCultural, e.ID); ok {
		return v.(*culturalProfile)
	}

	p := a.buildProfile(e)
	cache.Put(cacheNSCultural, e.ID, p)
	return p
}

// buildProfile derives the full cultural footprint for one entity.
func (a *Cultural) buildProfile(e *corpus.Entity) *culturalProfile {
	content := buildContentString(e)

	p := &culturalProfile{
		markers:   make(map[string]struct{}),
		themes:    make(map[string]float64),
		movements: make(map[string]float64),
	}

	// Text-evidenced markers.
	for name, re := range rules.MarkerPatterns {
		if re.MatchString(content) {
			p.markers[name] = struct{}{}
		}
	}

	// Rating/popularity-derived markers.
	if e.VoteAverage >= rules.AcclaimedMinRating && e.VoteCount > rules.AcclaimedMinVotes {
		p.markers["critically_acclaimed"] = struct{}{}
	}
	if e.Popularity < rules.HiddenGemMaxPopularity && e.VoteAverage > rules.HiddenGemMinRating && e.VoteCount > 0 {
		p.markers["hidden_gem"] = struct{}{}
	}
	if e.Popularity >= rules.BlockbusterMinPopularity {
		p.markers["blockbuster"] = struct{}{}
	}

	// Social themes.
	for name, theme := range rules.SocialThemes {
		if theme.Pattern.MatchString(content) {
			p.themes[name] = theme.Weight
		}
	}

	// Cultural movements, time-windowed by release year.
	if year := e.Year(); year > 0 {
		for _, m := range rules.Movements {
			if rel := rules.MovementRelevance(m, year); rel > 0 {
				p.movements[m.Name] = rel
			}
		}
	}

	// Regional classification from the first production country.
	if len(e.Countries) > 0 {
		p.region = rules.RegionOf(strings.ToLower(e.Countries[0]))
	}

	p.audience = classifyAudience(content)
	p.significance = a.significance(e, p)

	return p
}

// classifyAudience picks the audience segment with the highest indicator
// keyword density, empty when nothing matches. Ties break alphabetically for
// determinism.
func classifyAudience(content string) string {
	best := ""
	bestCount := 0

	segments := make([]string, 0, len(rules.AudienceSegments))
	for name := range rules.AudienceSegments {
		segments = append(segments, name)
	}
	sort.Strings(segments)

	for _, name := range segments {
		count := 0
		for _, indicator := range rules.AudienceSegments[name] {
			if strings.Contains(content, indicator) {
				count++
			}
		}
		if count > bestCount {
			best = name
			bestCount = count
		}
	}
	return best
}

// significance combines rating, popularity, content signals, and time decay
// into one 0-1 score.
func (a *Cultural) significance(e *corpus.Entity, p *culturalProfile) float64 {
	rating := e.VoteAverage / 10
	popularity := math.Min(e.Popularity/100, 1)

	signals := float64(len(p.markers))*0.15 + float64(len(p.themes))*0.1
	signals = math.Min(signals, 1)

	decay := 1.0
	if year := e.Year(); year > 0 {
		age := float64(a.now().Year() - year)
		if age > 0 {
			decay = math.Max(0.3, 1-age/100)
		}
	}

	score := rating*0.35 + popularity*0.25 + signals*0.25 + decay*0.15
	return roundScore(clamp(score, 1.0))
}

// compare scores two cultural profiles: weighted per-facet overlap scaled by
// the lower of the two significance scores.
func (a *Cultural) compare(other *corpus.Entity, p, q *culturalProfile) (graph.Connection, bool) {
	markerSim := jaccard(p.markers, q.markers)
	themeSim := weightedOverlap(p.themes, q.themes)
	movementSim := weightedOverlap(p.movements, q.movements)

	regionalSim := 0.0
	if p.region != "" && p.region == q.region {
		regionalSim = 1.0
	}
	audienceSim := 0.0
	if p.audience != "" && p.audience == q.audience {
		audienceSim = 1.0
	}

	similarity := rules.CulturalMarkerWeight*markerSim +
		rules.CulturalThemeWeight*themeSim +
		rules.CulturalMovementWeight*movementSim +
		rules.CulturalRegionalWeight*regionalSim +
		rules.CulturalAudienceWeight*audienceSim

	score := similarity * math.Min(p.significance, q.significance)
	if score <= rules.CulturalFloor {
		return graph.Connection{}, false
	}

	facets := 0
	for _, sim := range []float64{markerSim, themeSim, movementSim, regionalSim, audienceSim} {
		if sim > 0 {
			facets++
		}
	}
	confidence := clamp(0.65+0.05*float64(facets), 0.9)

	sharedMarkers := sharedKeys(p.markers, q.markers)
	reason := "Overlapping cultural footprint"
	if len(sharedMarkers) > 0 {
		reason = "Shared cultural markers: " + strings.Join(sharedMarkers, ", ")
	}

	return graph.Connection{
		TargetID:   other.ID,
		Type:       graph.TypeCulturalSignificance,
		Strength:   roundScore(score),
		Confidence: roundScore(confidence),
		Reason:     reason,
		Metadata: map[string]any{
			"shared_markers": sharedMarkers,
			"facets_matched": facets,
		},
	}, true
}

// weightedOverlap computes weighted Jaccard over two weight maps: shared
// minimums over union maximums.
func weightedOverlap(a, b map[string]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	var minSum, maxSum float64
	for k, wa := range a {
		if wb, ok := b[k]; ok {
			minSum += math.Min(wa, wb)
			maxSum += math.Max(wa, wb)
		} else {
			maxSum += wa
		}
	}
	for k, wb := range b {
		if _, ok := a[k]; !ok {
			maxSum += wb
		}
	}

	if maxSum == 0 {
		return 0
	}
	return minSum / maxSum
}

// CulturalMarkersOf exposes an entity's cultural markers, sorted. The search
// compiler uses this for context tagging with the analyzer's vocabulary.
func CulturalMarkersOf(e *corpus.Entity) []string {
	a := NewCultural()
	p := a.buildProfile(e)
	markers := make([]string, 0, len(p.markers))
	for m := range p.markers {
		markers = append(markers, m)
	}
	sort.Strings(markers)
	return markers
}
