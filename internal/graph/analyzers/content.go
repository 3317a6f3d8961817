// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

package analyzers

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/cinegraph/cinegraph/internal/corpus"
	"github.com/cinegraph/cinegraph/internal/graph"
	"github.com/cinegraph/cinegraph/internal/rules"
)

// Content finds explicit, verifiable relationships between entities based on
// shared structured attributes: genres, production companies, cast and crew,
// franchise membership, and rating proximity.
//
// Every emitted connection cites its evidence in Reason, e.g.
// "Shares genres: horror, thriller".
type Content struct{}

// NewContent creates a content analyzer.
func NewContent() *Content {
	return &Content{}
}

// Name returns the analyzer identifier.
func (a *Content) Name() string { return "content" }

// Analyze compares entity against every work in the corpus. Entities that are
// not movies or shows carry none of the compared attributes and yield no
// connections.
func (a *Content) Analyze(entity *corpus.Entity, c *corpus.Corpus, cache *graph.BuildCache) ([]graph.Connection, error) {
	if entity.Kind != corpus.KindMovie && entity.Kind != corpus.KindShow {
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

		if conn, ok := a.genreMatch(entity, other); ok {
			conns = append(conns, conn)
		}
		if conn, ok := a.studioUniverse(entity, other); ok {
			conns = append(conns, conn)
		}
		if conn, ok := a.talentOverlap(entity, other); ok {
			conns = append(conns, conn)
		}
		if conn, ok := a.franchiseMember(entity, other); ok {
			conns = append(conns, conn)
		}
		if conn, ok := a.ratingSimilarity(entity, other); ok {
			conns = append(conns, conn)
		}
	}

	return conns, nil
}

// genreMatch scores shared genres: Jaccard overlap weighted by the per-genre
// importance table and a multi-match bonus, capped at GenreMatchCap.
func (a *Content) genreMatch(entity, other *corpus.Entity) (graph.Connection, bool) {
	genresA := entity.GenreSet()
	genresB := other.GenreSet()
	shared := sharedKeys(genresA, genresB)
	if len(shared) == 0 {
		return graph.Connection{}, false
	}

	overlap := jaccard(genresA, genresB)

	var weightSum float64
	for _, g := range shared {
		weightSum += rules.GenreWeightFor(g)
	}
	avgWeight := weightSum / float64(len(shared))

	bonus := 1 + rules.GenreMultiMatchBonus*float64(len(shared)-1)
	strength := clamp(overlap*avgWeight*bonus, rules.GenreMatchCap)
	if strength <= rules.GenreMatchFloor {
		return graph.Connection{}, false
	}

	confidence := clamp(
		rules.GenreBaseConfidence+rules.GenreConfidencePerExtra*float64(len(shared)-1),
		rules.GenreConfidenceCap,
	)

	return graph.Connection{
		TargetID:   other.ID,
		Type:       graph.TypeGenreMatch,
		Strength:   roundScore(strength),
		Confidence: confidence,
		Reason:     "Shares genres: " + strings.Join(shared, ", "),
		Metadata:   map[string]any{"shared_genres": shared, "jaccard": roundScore(overlap)},
	}, true
}

// studioUniverse scores shared production companies. Strength is the fixed
// base scaled by the most important shared studio's tier multiplier.
func (a *Content) studioUniverse(entity, other *corpus.Entity) (graph.Connection, bool) {
	companiesA := entity.CompanyIDs()
	companiesB := other.CompanyIDs()

	var sharedIDs []int
	for id := range companiesA {
		if _, ok := companiesB[id]; ok {
			sharedIDs = append(sharedIDs, id)
		}
	}
	if len(sharedIDs) == 0 {
		return graph.Connection{}, false
	}
	sort.Ints(sharedIDs)

	bestMultiplier := 0.0
	bestID := sharedIDs[0]
	for _, id := range sharedIDs {
		if m := rules.StudioMultiplierOf(id); m > bestMultiplier {
			bestMultiplier = m
			bestID = id
		}
	}

	strength := clamp(rules.StudioBaseStrength*bestMultiplier, rules.StudioStrengthCap)

	return graph.Connection{
		TargetID:   other.ID,
		Type:       graph.TypeStudioUniverse,
		Strength:   roundScore(strength),
		Confidence: rules.StudioConfidence,
		Reason:     "Same production company: " + companyName(entity, bestID),
		Metadata:   map[string]any{"shared_companies": sharedIDs},
	}, true
}

// companyName resolves a company ID to its name on the entity, falling back
// to the numeric ID when the record lacks a name.
func companyName(e *corpus.Entity, companyID int) string {
	for _, c := range e.ProductionCompanies {
		if c.ID == companyID && c.Name != "" {
			return c.Name
		}
	}
	return fmt.Sprintf("company %d", companyID)
}

// talentOverlap scores shared cast and crew. Each shared person contributes
// strength proportional to their importance; shared directors and multiple
// key creative roles multiply the result.
func (a *Content) talentOverlap(entity, other *corpus.Entity) (graph.Connection, bool) {
	sharedPeople := sharedTalent(entity, other)
	if len(sharedPeople) == 0 {
		return graph.Connection{}, false
	}

	strength := rules.TalentBaseStrength
	keyRoles := 0
	sharedDirector := false
	names := make([]string, 0, len(sharedPeople))

	for _, p := range sharedPeople {
		strength += rules.TalentPerPersonFactor * p.importance
		names = append(names, p.name)
		if p.director {
			sharedDirector = true
		}
		if p.keyRole {
			keyRoles++
		}
	}

	if sharedDirector {
		strength *= rules.TalentDirectorBoost
	}
	if keyRoles >= 2 {
		strength *= rules.TalentKeyRoleBoost
	}
	strength = clamp(strength, rules.TalentStrengthCap)

	confidence := clamp(
		rules.TalentBaseConfidence+0.02*float64(len(sharedPeople)-1),
		rules.GenreConfidenceCap,
	)

	return graph.Connection{
		TargetID:   other.ID,
		Type:       graph.TypeTalentOverlap,
		Strength:   roundScore(strength),
		Confidence: roundScore(confidence),
		Reason:     "Shared talent: " + strings.Join(names, ", "),
		Metadata:   map[string]any{"shared_people": names, "shared_director": sharedDirector},
	}, true
}

// sharedPerson describes one person credited on both entities.
type sharedPerson struct {
	name       string
	importance float64
	director   bool
	keyRole    bool
}

// sharedTalent intersects the cast and crew lists of two entities, keeping
// each shared person's highest importance across their credits. Results are
// ordered by person ID for determinism.
func sharedTalent(entity, other *corpus.Entity) []sharedPerson {
	otherPeople := make(map[int]struct{})
	for _, m := range other.Cast {
		if m.PersonID != 0 {
			otherPeople[m.PersonID] = struct{}{}
		}
	}
	for _, m := range other.Crew {
		if m.PersonID != 0 {
			otherPeople[m.PersonID] = struct{}{}
		}
	}
	if len(otherPeople) == 0 {
		return nil
	}

	byID := make(map[int]*sharedPerson)
	var order []int

	for _, m := range entity.Cast {
		if _, ok := otherPeople[m.PersonID]; !ok || m.PersonID == 0 {
			continue
		}
		imp := billingImportance(m.Order) + popularityBoost(m.Popularity)
		p, ok := byID[m.PersonID]
		if !ok {
			byID[m.PersonID] = &sharedPerson{name: m.Name, importance: imp}
			order = append(order, m.PersonID)
		} else if imp > p.importance {
			p.importance = imp
		}
	}

	for _, m := range entity.Crew {
		if _, ok := otherPeople[m.PersonID]; !ok || m.PersonID == 0 {
			continue
		}
		job := strings.ToLower(m.Job)
		imp := jobImportance(job) + popularityBoost(m.Popularity)
		p, ok := byID[m.PersonID]
		if !ok {
			p = &sharedPerson{name: m.Name, importance: imp}
			byID[m.PersonID] = p
			order = append(order, m.PersonID)
		} else if imp > p.importance {
			p.importance = imp
		}
		if job == "director" {
			p.director = true
		}
		if rules.IsKeyRole(job) {
			p.keyRole = true
		}
	}

	sort.Ints(order)
	out := make([]sharedPerson, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	return out
}

// billingImportance derives importance from cast billing order.
func billingImportance(order int) float64 {
	switch {
	case order < 3:
		return rules.BillingTopThreeImportance
	case order < 5:
		return rules.BillingTopFiveImportance
	case order < 10:
		return rules.BillingTopTenImportance
	default:
		return rules.BillingDefaultImportance
	}
}

// jobImportance derives importance from a lowercased crew job title.
func jobImportance(job string) float64 {
	switch job {
	case "director":
		return rules.JobDirectorImportance
	case "producer", "executive producer":
		return rules.JobProducerImportance
	case "writer", "screenplay":
		return rules.JobWriterImportance
	default:
		return rules.JobDefaultImportance
	}
}

// popularityBoost converts person popularity to a small importance boost.
func popularityBoost(popularity float64) float64 {
	boost := popularity / rules.TalentPopularityScale * rules.TalentPopularityBoostMax
	return math.Min(boost, rules.TalentPopularityBoostMax)
}

// franchiseMember emits a fixed-strength connection when both entities
// reference the same collection.
func (a *Content) franchiseMember(entity, other *corpus.Entity) (graph.Connection, bool) {
	if entity.Collection == nil || other.Collection == nil {
		return graph.Connection{}, false
	}
	if entity.Collection.ID == 0 || entity.Collection.ID != other.Collection.ID {
		return graph.Connection{}, false
	}

	name := entity.Collection.Name
	if name == "" {
		name = fmt.Sprintf("collection %d", entity.Collection.ID)
	}

	return graph.Connection{
		TargetID:   other.ID,
		Type:       graph.TypeFranchiseMember,
		Strength:   rules.FranchiseStrength,
		Confidence: rules.FranchiseConfidence,
		Reason:     "Same franchise: " + name,
		Metadata:   map[string]any{"collection_id": entity.Collection.ID},
	}, true
}

// ratingSimilarity connects two highly rated entities with close ratings.
// Both must clear the rating floor and differ by at most the configured
// maximum.
func (a *Content) ratingSimilarity(entity, other *corpus.Entity) (graph.Connection, bool) {
	if entity.VoteAverage < rules.RatingSimilarityFloor || other.VoteAverage < rules.RatingSimilarityFloor {
		return graph.Connection{}, false
	}

	diff := math.Abs(entity.VoteAverage - other.VoteAverage)
	if diff > rules.RatingSimilarityMaxDiff {
		return graph.Connection{}, false
	}

	strength := (1 - diff/10) * rules.RatingSimilarityScale

	return graph.Connection{
		TargetID:   other.ID,
		Type:       graph.TypeRatingSimilarity,
		Strength:   roundScore(strength),
		Confidence: rules.RatingSimilarityConfidence,
		Reason:     fmt.Sprintf("Similarly acclaimed: rated %.1f and %.1f", entity.VoteAverage, other.VoteAverage),
		Metadata:   map[string]any{"rating_diff": roundScore(diff)},
	}, true
}
