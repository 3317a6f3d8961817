// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

package rules

import "regexp"

// Cultural analyzer constants.
const (
	// CulturalFloor is the minimum profile similarity that emits a connection.
	CulturalFloor = 0.3
	// CulturalTopK caps cultural connections per entity.
	CulturalTopK = 15
	// SignificanceFloor is the minimum significance for an entity to
	// participate in cultural analysis when it has no markers, themes, or
	// movements.
	SignificanceFloor = 0.2

	// AcclaimedMinRating and AcclaimedMinVotes gate the critically_acclaimed marker.
	AcclaimedMinRating = 8.5
	AcclaimedMinVotes  = 1000
	// HiddenGemMaxPopularity and HiddenGemMinRating gate the hidden_gem marker.
	HiddenGemMaxPopularity = 10.0
	HiddenGemMinRating     = 7.5
	// BlockbusterMinPopularity gates the blockbuster marker.
	BlockbusterMinPopularity = 100.0
)

// Cultural profile similarity weights, one per profile facet. They sum to 1.
const (
	CulturalMarkerWeight   = 0.30
	CulturalThemeWeight    = 0.25
	CulturalMovementWeight = 0.20
	CulturalRegionalWeight = 0.15
	CulturalAudienceWeight = 0.10
)

// MarkerPatterns detect text-evidenced cultural markers in overview/tagline
// content. Rating- and popularity-derived markers (critically_acclaimed,
// hidden_gem, blockbuster) are rule-based and live in the cultural analyzer.
var MarkerPatterns = map[string]*regexp.Regexp{
	"cult_classic":   regexp.MustCompile(`\b(cult (classic|status|following)|midnight (movie|screening))\b`),
	"controversial":  regexp.MustCompile(`\b(controvers(y|ial)|banned|censored|outrage|scandal(ous)?)\b`),
	"groundbreaking": regexp.MustCompile(`\b(groundbreaking|revolutionary|first of its kind|genre.defining|landmark)\b`),
	"award_winner":   regexp.MustCompile(`\b(academy award|oscar|palme d.or|golden globe|emmy|bafta)\b`),
	"adaptation":     regexp.MustCompile(`\b(based on (the|a) (novel|book|comic|true story)|adapt(ed|ation))\b`),
}

// SocialTheme describes one social-theme tag: the pattern that detects it,
// the categories it indexes under, and its relevance weight.
type SocialTheme struct {
	// Pattern detects the theme in entity content.
	Pattern *regexp.Regexp

	// Categories are the search-index category tags the theme contributes.
	Categories []string

	// Weight is the theme's relevance weight in profile similarity.
	Weight float64
}

// SocialThemes is the closed social-theme vocabulary.
var SocialThemes = map[string]SocialTheme{
	"social_justice": {
		Pattern:    regexp.MustCompile(`\b(injustice|civil rights|discrimination|inequality|activis(m|t)|protest)\b`),
		Categories: []string{"social-commentary", "drama"},
		Weight:     1.0,
	},
	"environmentalism": {
		Pattern:    regexp.MustCompile(`\b(climate|environment(al)?|pollution|extinction|conservation|planet)\b`),
		Categories: []string{"social-commentary", "science"},
		Weight:     0.9,
	},
	"gender_roles": {
		Pattern:    regexp.MustCompile(`\b(feminis(m|t)|gender|patriarchy|womanhood|masculinity)\b`),
		Categories: []string{"social-commentary", "drama"},
		Weight:     0.9,
	},
	"class_struggle": {
		Pattern:    regexp.MustCompile(`\b(class|poverty|wealth(y)? (gap|divide)|working class|elite(s)?|capitalis(m|t))\b`),
		Categories: []string{"social-commentary", "drama"},
		Weight:     0.85,
	},
	"immigration": {
		Pattern:    regexp.MustCompile(`\b(immigra(nt|tion)|refugee|border|asylum|deportation)\b`),
		Categories: []string{"social-commentary"},
		Weight:     0.85,
	},
	"technology_society": {
		Pattern:    regexp.MustCompile(`\b(surveillance|social media|privacy|automation|virtual reality)\b`),
		Categories: []string{"science", "social-commentary"},
		Weight:     0.8,
	},
	"mental_health": {
		Pattern:    regexp.MustCompile(`\b(depression|anxiety|trauma|therapy|addiction|ptsd)\b`),
		Categories: []string{"drama"},
		Weight:     0.8,
	},
}

// YearAnchor is one point in a movement's relevance curve.
type YearAnchor struct {
	// Year is the anchor year.
	Year int

	// Relevance is the movement relevance at that year, in [0,1].
	Relevance float64
}

// Movement is a cultural movement with a time-windowed relevance curve.
// Relevance between anchors is linearly interpolated; outside the anchor
// range it is zero.
type Movement struct {
	// Name is the movement identifier.
	Name string

	// Anchors define the relevance curve, ordered by year ascending.
	Anchors []YearAnchor
}

// Movements is the closed cultural-movement vocabulary.
var Movements = []Movement{
	{
		Name: "new_hollywood",
		Anchors: []YearAnchor{
			{Year: 1965, Relevance: 0.2}, {Year: 1970, Relevance: 1.0},
			{Year: 1975, Relevance: 0.9}, {Year: 1982, Relevance: 0.2},
		},
	},
	{
		Name: "indie_boom",
		Anchors: []YearAnchor{
			{Year: 1989, Relevance: 0.3}, {Year: 1994, Relevance: 1.0},
			{Year: 1999, Relevance: 0.8}, {Year: 2004, Relevance: 0.3},
		},
	},
	{
		Name: "post_9_11",
		Anchors: []YearAnchor{
			{Year: 2001, Relevance: 1.0}, {Year: 2005, Relevance: 0.8},
			{Year: 2010, Relevance: 0.4}, {Year: 2013, Relevance: 0.1},
		},
	},
	{
		Name: "superhero_era",
		Anchors: []YearAnchor{
			{Year: 2008, Relevance: 0.5}, {Year: 2012, Relevance: 0.9},
			{Year: 2019, Relevance: 1.0}, {Year: 2024, Relevance: 0.7},
		},
	},
	{
		Name: "streaming_era",
		Anchors: []YearAnchor{
			{Year: 2013, Relevance: 0.3}, {Year: 2018, Relevance: 0.8},
			{Year: 2021, Relevance: 1.0}, {Year: 2026, Relevance: 0.9},
		},
	},
	{
		Name: "elevated_horror",
		Anchors: []YearAnchor{
			{Year: 2014, Relevance: 0.3}, {Year: 2018, Relevance: 1.0},
			{Year: 2023, Relevance: 0.8},
		},
	},
}

// MovementRelevance returns the interpolated relevance of a movement at the
// given year. Zero outside the anchor range.
func MovementRelevance(m Movement, year int) float64 {
	if len(m.Anchors) == 0 || year < m.Anchors[0].Year || year > m.Anchors[len(m.Anchors)-1].Year {
		return 0
	}

	for i := 1; i < len(m.Anchors); i++ {
		lo, hi := m.Anchors[i-1], m.Anchors[i]
		if year > hi.Year {
			continue
		}
		if hi.Year == lo.Year {
			return hi.Relevance
		}
		frac := float64(year-lo.Year) / float64(hi.Year-lo.Year)
		return lo.Relevance + frac*(hi.Relevance-lo.Relevance)
	}

	return m.Anchors[len(m.Anchors)-1].Relevance
}

// Regions maps lowercased production country names to a regional-culture
// classification. Countries not listed classify as "other".
var Regions = map[string]string{
	"united states of america": "north_america",
	"united states":            "north_america",
	"canada":                   "north_america",
	"mexico":                   "latin_america",
	"brazil":                   "latin_america",
	"argentina":                "latin_america",
	"united kingdom":           "western_europe",
	"france":                   "western_europe",
	"germany":                  "western_europe",
	"italy":                    "western_europe",
	"spain":                    "western_europe",
	"ireland":                  "western_europe",
	"sweden":                   "nordic",
	"denmark":                  "nordic",
	"norway":                   "nordic",
	"finland":                  "nordic",
	"iceland":                  "nordic",
	"poland":                   "eastern_europe",
	"czech republic":           "eastern_europe",
	"hungary":                  "eastern_europe",
	"russia":                   "eastern_europe",
	"japan":                    "east_asia",
	"south korea":              "east_asia",
	"china":                    "east_asia",
	"taiwan":                   "east_asia",
	"hong kong":                "east_asia",
	"india":                    "south_asia",
	"australia":                "oceania",
	"new zealand":              "oceania",
	"nigeria":                  "africa",
	"south africa":             "africa",
	"egypt":                    "africa",
	"iran":                     "middle_east",
	"israel":                   "middle_east",
	"turkey":                   "middle_east",
}

// RegionDefault applies to countries absent from Regions.
const RegionDefault = "other"

// RegionOf returns the region for a lowercased country name.
func RegionOf(country string) string {
	if r, ok := Regions[country]; ok {
		return r
	}
	return RegionDefault
}

// AudienceSegments maps audience segment names to indicator keywords.
// Segment classification picks the segment with the highest indicator
// density in the entity's content.
var AudienceSegments = map[string][]string{
	"general":      {"adventure", "fun", "exciting", "entertaining", "action"},
	"family":       {"family", "kids", "children", "wholesome", "animated"},
	"adult":        {"mature", "graphic", "explicit", "provocative", "gritty"},
	"cinephile":    {"acclaimed", "masterpiece", "auteur", "festival", "criterion"},
	"genre_fan":    {"cult", "franchise", "fandom", "comic", "saga"},
	"young_adult":  {"teen", "high school", "coming of age", "first love", "prom"},
}
