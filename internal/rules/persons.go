// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

package rules

// Person enricher constants and ranges.
const (
	// PersonMinPopularity is the minimum popularity for a person to remain in
	// the corpus after enrichment.
	PersonMinPopularity = 0.5

	// SpecializationThreshold is the weighted-credit share a genre needs to
	// count as a person's specialization.
	SpecializationThreshold = 0.4

	// InfluencePopularityWeight blends popularity into the influence score.
	InfluencePopularityWeight = 0.35
	// InfluenceCreditWeight blends credit volume into the influence score.
	InfluenceCreditWeight = 0.25
	// InfluenceDepartmentWeight blends department prestige into influence.
	InfluenceDepartmentWeight = 0.15
	// InfluenceQualityWeight blends average work quality into influence.
	InfluenceQualityWeight = 0.25

	// InfluencePopularityScale normalizes popularity for influence scoring.
	InfluencePopularityScale = 80.0
	// InfluenceCreditScale normalizes credit count for influence scoring.
	InfluenceCreditScale = 60.0

	// CollabCreditScale normalizes credit volume for collaboration scoring.
	CollabCreditScale = 40.0
	// CollabVolumeWeight is the credit-volume share of the collaboration
	// score.
	CollabVolumeWeight = 0.7
	// CollabMultiRoleBonus is added when a person holds both cast and crew
	// credits.
	CollabMultiRoleBonus = 0.3

	// TrajectoryMinCredits is the minimum credit count for trend analysis.
	TrajectoryMinCredits = 6
	// TrajectoryDelta is the relative change that separates ascending or
	// declining from stable.
	TrajectoryDelta = 0.15
	// QualityTrendDelta is the absolute rating change that separates
	// improving or declining from stable.
	QualityTrendDelta = 0.3
)

// CareerStageRange defines one career stage by joint years-active and
// total-credit ranges. A person matches the first range containing both
// values; when none matches, credit count alone decides via Fallback.
type CareerStageRange struct {
	// Stage is the stage name.
	Stage string

	// MinYears and MaxYears bound years active (inclusive).
	MinYears, MaxYears int

	// MinCredits and MaxCredits bound total credits (inclusive).
	MinCredits, MaxCredits int
}

// CareerStages is checked in order; the first range containing both the
// person's years active and credit count wins.
var CareerStages = []CareerStageRange{
	{Stage: "emerging", MinYears: 0, MaxYears: 7, MinCredits: 1, MaxCredits: 15},
	{Stage: "established", MinYears: 8, MaxYears: 19, MinCredits: 10, MaxCredits: 60},
	{Stage: "veteran", MinYears: 20, MaxYears: 34, MinCredits: 25, MaxCredits: 150},
	{Stage: "legend", MinYears: 35, MaxYears: 100, MinCredits: 40, MaxCredits: 10000},
}

// CareerStageFallback decides stage by credit count alone when no joint
// range matches.
func CareerStageFallback(totalCredits int) string {
	switch {
	case totalCredits >= 80:
		return "legend"
	case totalCredits >= 40:
		return "veteran"
	case totalCredits >= 12:
		return "established"
	default:
		return "emerging"
	}
}

// DepartmentPrestige weights departments for influence scoring.
// Departments not listed default to DepartmentDefaultPrestige.
var DepartmentPrestige = map[string]float64{
	"directing":  1.0,
	"writing":    0.9,
	"acting":     0.85,
	"production": 0.8,
	"camera":     0.7,
	"editing":    0.7,
	"sound":      0.6,
	"art":        0.6,
}

// DepartmentDefaultPrestige applies to departments absent from
// DepartmentPrestige.
const DepartmentDefaultPrestige = 0.5

// DepartmentPrestigeOf returns the prestige weight for a lowercased
// department name.
func DepartmentPrestigeOf(dept string) float64 {
	if p, ok := DepartmentPrestige[dept]; ok {
		return p
	}
	return DepartmentDefaultPrestige
}

// IsKeyRole reports whether a lowercased crew job is a key creative role.
func IsKeyRole(job string) bool {
	switch job {
	case "director", "producer", "writer", "screenplay", "executive producer":
		return true
	}
	return false
}
