// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

package rules

// GenreWeights assigns each genre a relative importance for genre-match
// scoring. Distinctive genres (horror, western) weigh more than broad ones
// (drama, comedy) because sharing them is stronger evidence of relatedness.
// Genres not listed default to GenreDefaultWeight.
var GenreWeights = map[string]float64{
	"horror":          1.0,
	"western":         1.0,
	"musical":         1.0,
	"war":             0.95,
	"science fiction": 0.95,
	"sci-fi":          0.95,
	"fantasy":         0.9,
	"animation":       0.9,
	"documentary":     0.9,
	"mystery":         0.85,
	"crime":           0.85,
	"thriller":        0.8,
	"romance":         0.8,
	"family":          0.8,
	"history":         0.8,
	"music":           0.8,
	"adventure":       0.75,
	"action":          0.7,
	"comedy":          0.7,
	"drama":           0.6,
}

// GenreDefaultWeight applies to genres absent from GenreWeights.
const GenreDefaultWeight = 0.75

// GenreWeightFor returns the weight for a lowercased genre name.
func GenreWeightFor(genre string) float64 {
	if w, ok := GenreWeights[genre]; ok {
		return w
	}
	return GenreDefaultWeight
}

// GenreThemes maps lowercased genre names to the semantic themes they imply.
// The semantic analyzer unions these into its extracted theme keywords so that
// structured genre data and free-text extraction share one theme vocabulary.
var GenreThemes = map[string][]string{
	"horror":          {"horror", "supernatural"},
	"romance":         {"romance"},
	"comedy":          {"comedy"},
	"thriller":        {"mystery", "suspense"},
	"mystery":         {"mystery"},
	"crime":           {"crime"},
	"science fiction": {"science", "future"},
	"sci-fi":          {"science", "future"},
	"fantasy":         {"fantasy", "supernatural"},
	"war":             {"war"},
	"western":         {"western"},
	"musical":         {"musical"},
	"music":           {"musical"},
	"family":          {"family"},
	"animation":       {"family"},
	"documentary":     {"reality"},
	"history":         {"history"},
	"drama":           {"drama"},
	"adventure":       {"adventure"},
	"action":          {"action"},
}

// StrongThemes are themes whose presence on both sides boosts semantic
// similarity: they define taste clusters far more sharply than average themes.
var StrongThemes = map[string]struct{}{
	"horror":  {},
	"romance": {},
	"comedy":  {},
	"musical": {},
	"western": {},
}

// IsStrongTheme reports whether theme is in the strong-theme set.
func IsStrongTheme(theme string) bool {
	_, ok := StrongThemes[theme]
	return ok
}
