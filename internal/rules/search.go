// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

package rules

import "regexp"

// Search indexing constants.
const (
	// MinTermLength is the minimum length of an indexed term.
	MinTermLength = 2
	// MinOverviewWordLength is the minimum length of an overview/tagline word
	// considered important enough to index.
	MinOverviewWordLength = 4
	// MaxOverviewTerms caps how many overview/tagline words are indexed per
	// entity.
	MaxOverviewTerms = 12
)

// StopWords are excluded from overview/tagline term extraction.
var StopWords = map[string]struct{}{
	"a": {}, "about": {}, "after": {}, "against": {}, "all": {}, "also": {},
	"an": {}, "and": {}, "any": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"because": {}, "been": {}, "before": {}, "being": {}, "between": {},
	"both": {}, "but": {}, "by": {}, "can": {}, "come": {}, "could": {},
	"day": {}, "do": {}, "does": {}, "down": {}, "each": {}, "even": {},
	"find": {}, "first": {}, "for": {}, "from": {}, "get": {}, "give": {},
	"go": {}, "had": {}, "has": {}, "have": {}, "he": {}, "her": {},
	"here": {}, "him": {}, "his": {}, "how": {}, "i": {}, "if": {}, "in": {},
	"into": {}, "is": {}, "it": {}, "its": {}, "just": {}, "know": {},
	"like": {}, "look": {}, "make": {}, "man": {}, "many": {}, "me": {},
	"more": {}, "most": {}, "must": {}, "my": {}, "new": {}, "no": {},
	"not": {}, "now": {}, "of": {}, "on": {}, "one": {}, "only": {},
	"or": {}, "other": {}, "our": {}, "out": {}, "over": {}, "people": {},
	"say": {}, "see": {}, "she": {}, "so": {}, "some": {}, "take": {},
	"than": {}, "that": {}, "the": {}, "their": {}, "them": {}, "then": {},
	"there": {}, "these": {}, "they": {}, "thing": {}, "think": {},
	"this": {}, "those": {}, "time": {}, "to": {}, "two": {}, "up": {},
	"use": {}, "very": {}, "want": {}, "was": {}, "way": {}, "we": {},
	"well": {}, "were": {}, "what": {}, "when": {}, "where": {}, "which": {},
	"while": {}, "who": {}, "whose": {}, "will": {}, "with": {}, "would": {},
	"year": {}, "years": {}, "you": {}, "your": {},
}

// IsStopWord reports whether a lowercased word is a stop word.
func IsStopWord(w string) bool {
	_, ok := StopWords[w]
	return ok
}

// CompanySuffixes are stripped from company names when generating search term
// variations ("Marvel Studios" also indexes as "marvel").
var CompanySuffixes = []string{
	"studios", "studio", "pictures", "entertainment", "productions",
	"production", "films", "film", "media", "animation", "company",
	"corporation", "inc", "ltd", "llc",
}

// Rating tiers for category tagging, checked in order.
var RatingTiers = []struct {
	Name string
	Min  float64
}{
	{"masterpiece", 8.5},
	{"excellent", 7.5},
	{"good", 6.5},
	{"average", 5.0},
	{"poor", 0.0},
}

// RatingTierOf returns the tier name for a 0-10 rating.
func RatingTierOf(rating float64) string {
	for _, t := range RatingTiers {
		if rating >= t.Min {
			return t.Name
		}
	}
	return RatingTiers[len(RatingTiers)-1].Name
}

// Popularity tiers for category tagging, checked in order.
var PopularityTiers = []struct {
	Name string
	Min  float64
}{
	{"trending", 100.0},
	{"popular", 40.0},
	{"known", 10.0},
	{"niche", 0.0},
}

// PopularityTierOf returns the tier name for a popularity metric.
func PopularityTierOf(popularity float64) string {
	for _, t := range PopularityTiers {
		if popularity >= t.Min {
			return t.Name
		}
	}
	return PopularityTiers[len(PopularityTiers)-1].Name
}

// SeasonalPatterns detect seasonal viewing contexts for context tagging.
var SeasonalPatterns = map[string]*regexp.Regexp{
	"christmas":    regexp.MustCompile(`\b(christmas|santa|xmas|holiday season|yuletide|north pole)\b`),
	"halloween":    regexp.MustCompile(`\b(halloween|trick.or.treat|jack.o.lantern|all hallows)\b`),
	"valentines":   regexp.MustCompile(`\b(valentine(.s)?( day)?)\b`),
	"thanksgiving": regexp.MustCompile(`\b(thanksgiving)\b`),
	"summer":       regexp.MustCompile(`\b(summer (vacation|camp|romance|blockbuster))\b`),
}

// AwardPattern detects award-worthy context signals.
var AwardPattern = regexp.MustCompile(`\b(academy award|oscar|palme d.or|golden globe|emmy|bafta|critics.* choice|award.winning|nominated)\b`)

// IntentSeeds is the hand-curated base of the query-intent expansion map:
// canonical search term to related/synonymous terms. The search compiler
// expands this bidirectionally and cross-pollinates each seed's expansion set,
// so querying any alias surfaces the same entities.
var IntentSeeds = map[string][]string{
	"marvel":      {"mcu", "avengers", "superhero", "comic book"},
	"dc":          {"batman", "superman", "justice league", "superhero"},
	"star wars":   {"jedi", "sith", "skywalker", "galaxy far far away"},
	"horror":      {"scary", "frightening", "terrifying", "spooky"},
	"comedy":      {"funny", "hilarious", "laugh", "humor"},
	"romance":     {"romantic", "love story", "date night"},
	"thriller":    {"suspense", "tense", "edge of seat"},
	"sci-fi":      {"science fiction", "space", "futuristic"},
	"christmas":   {"holiday", "santa", "festive", "xmas"},
	"halloween":   {"spooky", "scary", "october"},
	"animation":   {"animated", "cartoon", "anime"},
	"documentary": {"docu", "true story", "real life"},
	"oscar":       {"academy award", "award winning", "acclaimed"},
	"family":      {"kids", "children", "all ages"},
	"classic":     {"timeless", "iconic", "golden age"},
	"indie":       {"independent", "arthouse", "low budget"},
	"binge":       {"series", "marathon", "addictive"},
}
