// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

package rules

import (
	"math"
	"testing"
)

func TestCulturalWeightsSumToOne(t *testing.T) {
	sum := CulturalMarkerWeight + CulturalThemeWeight + CulturalMovementWeight +
		CulturalRegionalWeight + CulturalAudienceWeight
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("cultural facet weights sum = %f, want 1.0", sum)
	}
}

func TestCategoryConfidenceBounds(t *testing.T) {
	wantCategories := []string{"direct", "semantic", "contextual", "collaborative", "temporal", "cultural", "cluster"}
	for _, cat := range wantCategories {
		c, ok := CategoryConfidence[cat]
		if !ok {
			t.Errorf("CategoryConfidence missing %q", cat)
			continue
		}
		if c <= 0 || c > 1 {
			t.Errorf("CategoryConfidence[%q] = %f, want (0, 1]", cat, c)
		}
	}
	if CategoryConfidence["direct"] != 0.9 {
		t.Errorf("direct confidence = %f, want 0.9", CategoryConfidence["direct"])
	}
	if CategoryConfidence["temporal"] != 0.5 {
		t.Errorf("temporal confidence = %f, want 0.5", CategoryConfidence["temporal"])
	}
}

func TestTypeConfidenceFor(t *testing.T) {
	tests := []struct {
		connType string
		want     float64
	}{
		{"studio_universe", 0.95},
		{"talent_overlap", 0.9},
		{"peer_recommendation", 0.6},
		{"unknown_type", DefaultTypeConfidence},
	}

	for _, tt := range tests {
		t.Run(tt.connType, func(t *testing.T) {
			if got := TypeConfidenceFor(tt.connType); got != tt.want {
				t.Errorf("TypeConfidenceFor(%q) = %f, want %f", tt.connType, got, tt.want)
			}
		})
	}
}

func TestGenreWeightFor(t *testing.T) {
	if w := GenreWeightFor("horror"); w != 1.0 {
		t.Errorf("horror weight = %f, want 1.0", w)
	}
	if w := GenreWeightFor("nonexistent"); w != GenreDefaultWeight {
		t.Errorf("unknown genre weight = %f, want default %f", w, GenreDefaultWeight)
	}
	for genre, w := range GenreWeights {
		if w <= 0 || w > 1 {
			t.Errorf("GenreWeights[%q] = %f, want (0, 1]", genre, w)
		}
	}
}

func TestStudioTiers(t *testing.T) {
	if StudioTierOf(420) != StudioTierMajor {
		t.Error("Marvel Studios (420) should be a major studio")
	}
	if StudioTierOf(41077) != StudioTierPrestige {
		t.Error("A24 (41077) should be a prestige studio")
	}
	if StudioTierOf(999999) != StudioTierDefault {
		t.Error("unknown company should be default tier")
	}

	if m := StudioMultiplierOf(420); m != StudioMajorMultiplier {
		t.Errorf("major multiplier = %f, want %f", m, StudioMajorMultiplier)
	}
	if f := StudioFamilyOf(420); f != "marvel" {
		t.Errorf("StudioFamilyOf(420) = %q, want marvel", f)
	}
	if f := StudioFamilyOf(999999); f != "" {
		t.Errorf("StudioFamilyOf(unknown) = %q, want empty", f)
	}
}

func TestAxisWeights(t *testing.T) {
	if AxisWeights[AxisTheme] != 1.0 {
		t.Errorf("theme axis weight = %f, want 1.0", AxisWeights[AxisTheme])
	}
	for axis, patterns := range AxisPatterns {
		if _, ok := AxisWeights[axis]; !ok {
			t.Errorf("axis %q has patterns but no weight", axis)
		}
		if len(patterns) == 0 {
			t.Errorf("axis %q has no pattern families", axis)
		}
	}
}

func TestThemePatternMatching(t *testing.T) {
	tests := []struct {
		theme   string
		content string
		want    bool
	}{
		{"horror", "a haunted house terrorizes its new owners", true},
		{"horror", "two friends open a bakery", false},
		{"romance", "an unlikely love story in paris", true},
		{"mystery", "a detective investigates a disappearance", true},
		{"espionage", "an undercover agent infiltrates a cartel", true},
	}

	for _, tt := range tests {
		t.Run(tt.theme+"_"+tt.content[:12], func(t *testing.T) {
			re, ok := ThemePatterns[tt.theme]
			if !ok {
				t.Fatalf("ThemePatterns missing %q", tt.theme)
			}
			if got := re.MatchString(tt.content); got != tt.want {
				t.Errorf("pattern %q match on %q = %v, want %v", tt.theme, tt.content, got, tt.want)
			}
		})
	}
}

func TestSequelTitlePattern(t *testing.T) {
	matches := []string{"The Godfather Part II", "Halloween 2", "Saw X", "Chapter Two", "Rocky 4"}
	for _, title := range matches {
		if !SequelTitlePattern.MatchString(title) {
			t.Errorf("SequelTitlePattern should match %q", title)
		}
	}
	if SequelTitlePattern.MatchString("Casablanca") {
		t.Error("SequelTitlePattern should not match Casablanca")
	}
}

func TestMovementRelevance(t *testing.T) {
	var post911 Movement
	for _, m := range Movements {
		if m.Name == "post_9_11" {
			post911 = m
		}
	}
	if post911.Name == "" {
		t.Fatal("post_9_11 movement missing")
	}

	tests := []struct {
		year int
		want float64
	}{
		{2001, 1.0},  // peak anchor
		{2003, 0.9},  // midpoint between 1.0 and 0.8
		{2013, 0.1},  // final anchor
		{1995, 0.0},  // before window
		{2020, 0.0},  // after window
	}

	for _, tt := range tests {
		got := MovementRelevance(post911, tt.year)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("MovementRelevance(post_9_11, %d) = %f, want %f", tt.year, got, tt.want)
		}
	}
}

func TestRegionOf(t *testing.T) {
	if RegionOf("japan") != "east_asia" {
		t.Errorf("japan region = %q, want east_asia", RegionOf("japan"))
	}
	if RegionOf("atlantis") != RegionDefault {
		t.Errorf("unknown country region = %q, want %q", RegionOf("atlantis"), RegionDefault)
	}
}

func TestRatingAndPopularityTiers(t *testing.T) {
	tests := []struct {
		rating float64
		want   string
	}{
		{9.0, "masterpiece"},
		{8.5, "masterpiece"},
		{7.8, "excellent"},
		{6.9, "good"},
		{5.5, "average"},
		{2.0, "poor"},
	}
	for _, tt := range tests {
		if got := RatingTierOf(tt.rating); got != tt.want {
			t.Errorf("RatingTierOf(%f) = %q, want %q", tt.rating, got, tt.want)
		}
	}

	if PopularityTierOf(150) != "trending" {
		t.Errorf("PopularityTierOf(150) = %q, want trending", PopularityTierOf(150))
	}
	if PopularityTierOf(1) != "niche" {
		t.Errorf("PopularityTierOf(1) = %q, want niche", PopularityTierOf(1))
	}
}

func TestCareerStageFallback(t *testing.T) {
	tests := []struct {
		credits int
		want    string
	}{
		{100, "legend"},
		{50, "veteran"},
		{20, "established"},
		{3, "emerging"},
	}
	for _, tt := range tests {
		if got := CareerStageFallback(tt.credits); got != tt.want {
			t.Errorf("CareerStageFallback(%d) = %q, want %q", tt.credits, got, tt.want)
		}
	}
}

func TestIsKeyRole(t *testing.T) {
	for _, job := range []string{"director", "producer", "writer", "screenplay"} {
		if !IsKeyRole(job) {
			t.Errorf("IsKeyRole(%q) = false, want true", job)
		}
	}
	if IsKeyRole("gaffer") {
		t.Error("IsKeyRole(gaffer) = true, want false")
	}
}

func TestIntentSeedsNonEmpty(t *testing.T) {
	for base, expansions := range IntentSeeds {
		if len(expansions) == 0 {
			t.Errorf("IntentSeeds[%q] has no expansion terms", base)
		}
		for _, term := range expansions {
			if term == "" {
				t.Errorf("IntentSeeds[%q] contains an empty term", base)
			}
		}
	}
}

func TestStopWords(t *testing.T) {
	if !IsStopWord("the") {
		t.Error("the should be a stop word")
	}
	if IsStopWord("vampire") {
		t.Error("vampire should not be a stop word")
	}
}
