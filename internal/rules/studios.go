// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

package rules

// StudioTier classifies production companies for studio-universe scoring.
type StudioTier int

const (
	// StudioTierDefault covers companies with no tier entry.
	StudioTierDefault StudioTier = iota
	// StudioTierMajor covers major franchise studios.
	StudioTierMajor
	// StudioTierPrestige covers prestige/arthouse studios.
	StudioTierPrestige
)

// MajorStudios maps provider company IDs of major franchise studios to their
// canonical family name. The family name doubles as a search category tag.
var MajorStudios = map[int]string{
	420:    "marvel",      // Marvel Studios
	2:      "disney",      // Walt Disney Pictures
	3:      "pixar",       // Pixar
	174:    "warner",      // Warner Bros. Pictures
	9993:   "dc",          // DC Entertainment
	33:     "universal",   // Universal Pictures
	4:      "paramount",   // Paramount Pictures
	34:     "sony",        // Sony Pictures
	5:      "columbia",    // Columbia Pictures
	25:     "fox",         // 20th Century Fox
	1:      "lucasfilm",   // Lucasfilm Ltd.
	521:    "dreamworks",  // DreamWorks Animation
	12:     "new-line",    // New Line Cinema
	923:    "legendary",   // Legendary Pictures
	7505:   "ghibli",      // Studio Ghibli
	2251:   "sony-anim",   // Sony Pictures Animation
	128064: "illumination", // Illumination
}

// PrestigeStudios maps provider company IDs of prestige studios to their
// canonical family name.
var PrestigeStudios = map[int]string{
	41077: "a24",        // A24
	491:   "summit",     // Summit Entertainment
	7493:  "blumhouse",  // Blumhouse Productions
	2319:  "miramax",    // Miramax
	10146: "focus",      // Focus Features
	308:   "searchlight", // Fox Searchlight
	61:    "gaumont",    // Gaumont
	694:   "neon",       // NEON
	11072: "annapurna",  // Annapurna Pictures
	1632:  "lionsgate",  // Lionsgate
}

// StudioTierOf returns the tier of a production company ID.
func StudioTierOf(companyID int) StudioTier {
	if _, ok := MajorStudios[companyID]; ok {
		return StudioTierMajor
	}
	if _, ok := PrestigeStudios[companyID]; ok {
		return StudioTierPrestige
	}
	return StudioTierDefault
}

// StudioMultiplierOf returns the studio-importance multiplier for a company ID.
func StudioMultiplierOf(companyID int) float64 {
	switch StudioTierOf(companyID) {
	case StudioTierMajor:
		return StudioMajorMultiplier
	case StudioTierPrestige:
		return StudioPrestigeMultiplier
	default:
		return StudioDefaultMultiplier
	}
}

// StudioFamilyOf returns the canonical family name for a company ID, or ""
// when the company is untiered.
func StudioFamilyOf(companyID int) string {
	if name, ok := MajorStudios[companyID]; ok {
		return name
	}
	if name, ok := PrestigeStudios[companyID]; ok {
		return name
	}
	return ""
}
