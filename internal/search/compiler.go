// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

package search

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cinegraph/cinegraph/internal/corpus"
	"github.com/cinegraph/cinegraph/internal/graph/analyzers"
	"github.com/cinegraph/cinegraph/internal/logging"
	"github.com/cinegraph/cinegraph/internal/rules"
)

// Index is the compiled search index artifact.
type Index struct {
	// TermMap maps a normalized search term to the entity IDs it surfaces.
	TermMap map[string][]string `json:"termMap"`

	// CategoryMap maps a category tag (kind, genre, studio family, rating
	// tier, popularity tier, era, language, theme) to entity IDs.
	CategoryMap map[string][]string `json:"categoryMap"`

	// ContextMap maps a context tag (cultural marker, seasonal pattern,
	// award-worthy, franchise) to entity IDs.
	ContextMap map[string][]string `json:"contextMap"`

	// IntentMap maps a search term to its expanded related terms.
	IntentMap map[string][]string `json:"intentMap"`
}

// Compiler builds the search index and recommendation sets.
type Compiler struct {
	log zerolog.Logger
}

// NewCompiler creates a search compiler.
func NewCompiler() *Compiler {
	return &Compiler{log: logging.With().Str("component", "search").Logger()}
}

// CompileIndex builds the search index from the corpus. Entity iteration is
// sorted, so compiling an unchanged corpus twice yields identical maps.
func (sc *Compiler) CompileIndex(c *corpus.Corpus) *Index {
	idx := &Index{
		TermMap:     make(map[string][]string),
		CategoryMap: make(map[string][]string),
		ContextMap:  make(map[string][]string),
		IntentMap:   ExpandIntents(rules.IntentSeeds),
	}

	for _, id := range c.IDs() {
		e := c.Get(id)
		for _, term := range entityTerms(e) {
			addEntry(idx.TermMap, term, id)
		}
		for _, tag := range categoryTags(e) {
			addEntry(idx.CategoryMap, tag, id)
		}
		for _, tag := range contextTags(e) {
			addEntry(idx.ContextMap, tag, id)
		}
	}

	sc.log.Info().
		Int("terms", len(idx.TermMap)).
		Int("categories", len(idx.CategoryMap)).
		Int("contexts", len(idx.ContextMap)).
		Int("intents", len(idx.IntentMap)).
		Msg("search index compiled")

	return idx
}

// addEntry appends an entity ID under a key, skipping duplicates. IDs arrive
// in sorted corpus order, so each value list stays sorted without re-sorting.
func addEntry(m map[string][]string, key, id string) {
	if key == "" {
		return
	}
	ids := m[key]
	if len(ids) > 0 && ids[len(ids)-1] == id {
		return
	}
	m[key] = append(ids, id)
}

// categoryTags derives the category tags for one entity.
func categoryTags(e *corpus.Entity) []string {
	tags := []string{"kind:" + string(e.Kind)}

	for _, g := range e.Genres {
		tags = append(tags, "genre:"+strings.ToLower(g))
	}
	for _, co := range e.ProductionCompanies {
		if family := rules.StudioFamilyOf(co.ID); family != "" {
			tags = append(tags, "studio:"+family)
		}
	}
	if e.VoteAverage > 0 {
		tags = append(tags, "rating:"+rules.RatingTierOf(e.VoteAverage))
	}
	if e.Popularity > 0 {
		tags = append(tags, "popularity:"+rules.PopularityTierOf(e.Popularity))
	}
	if decade := e.Decade(); decade != "" {
		tags = append(tags, "era:"+decade)
	}
	for _, lang := range e.Languages {
		tags = append(tags, "language:"+strings.ToLower(lang))
	}
	if e.Kind == corpus.KindMovie || e.Kind == corpus.KindShow {
		for _, theme := range analyzers.SharedAxisKeywords(e, rules.AxisTheme) {
			tags = append(tags, "theme:"+theme)
		}
	}

	return dedupeSorted(tags)
}

// contextTags derives the context tags for one entity: cultural markers,
// seasonal viewing patterns, award signals, and franchise membership.
func contextTags(e *corpus.Entity) []string {
	var tags []string

	if e.Kind == corpus.KindMovie || e.Kind == corpus.KindShow {
		for _, marker := range analyzers.CulturalMarkersOf(e) {
			tags = append(tags, "marker:"+marker)
		}
	}

	content := strings.ToLower(e.Name + " " + e.Tagline + " " + e.Overview)
	for season, re := range rules.SeasonalPatterns {
		if re.MatchString(content) {
			tags = append(tags, "seasonal:"+season)
		}
	}
	if rules.AwardPattern.MatchString(content) {
		tags = append(tags, "award-worthy")
	}
	if e.Collection != nil && e.Collection.ID != 0 {
		tags = append(tags, "franchise")
	}

	return dedupeSorted(tags)
}

// dedupeSorted sorts tags and removes duplicates.
func dedupeSorted(tags []string) []string {
	sort.Strings(tags)
	out := tags[:0]
	for i, t := range tags {
		if i > 0 && t == tags[i-1] {
			continue
		}
		out = append(out, t)
	}
	return out
}
