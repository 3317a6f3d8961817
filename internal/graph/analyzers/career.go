// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

package analyzers

import (
	"math"
	"sort"
	"strings"

	"github.com/cinegraph/cinegraph/internal/corpus"
	"github.com/cinegraph/cinegraph/internal/rules"
)

// Career enriches person entities with derived career attributes before
// analysis: career stage, genre specialization, trajectory, quality trend,
// and an influence score. Persons below the popularity floor or without any
// credits are removed from the corpus entirely; they carry too little signal
// to connect.
//
// Enrichment runs exactly once per build and only adds the Enrichment field.
// Ingested attributes are never mutated.
type Career struct{}

// NewCareer creates a career enricher.
func NewCareer() *Career {
	return &Career{}
}

// Name returns the enricher identifier.
func (e *Career) Name() string { return "career" }

// Enrich processes every person entity in the corpus.
func (e *Career) Enrich(c *corpus.Corpus) error {
	for _, id := range c.OfKind(corpus.KindPerson) {
		p := c.Get(id)
		if p.Popularity < rules.PersonMinPopularity || len(p.Credits) == 0 {
			c.Remove(id)
			continue
		}
		p.Enrichment = enrichPerson(p)
	}
	return nil
}

// enrichPerson derives the full enrichment record for one person.
func enrichPerson(p *corpus.Entity) *corpus.PersonEnrichment {
	credits := sortedCredits(p.Credits)

	firstYear, lastYear := 0, 0
	for _, cr := range credits {
		if cr.Year == 0 {
			continue
		}
		if firstYear == 0 || cr.Year < firstYear {
			firstYear = cr.Year
		}
		if cr.Year > lastYear {
			lastYear = cr.Year
		}
	}
	yearsActive := 0
	if firstYear > 0 {
		yearsActive = lastYear - firstYear
	}

	specialization, diversity := specializationOf(credits)

	return &corpus.PersonEnrichment{
		CareerStage:        careerStage(yearsActive, len(credits)),
		Specialization:     specialization,
		GenreDiversity:     diversity,
		CollaborationScore: collaborationScore(credits),
		Trajectory:         trajectory(credits),
		QualityTrend:       qualityTrend(credits),
		Influence:          influence(p, credits),
		YearsActive:        yearsActive,
		TotalCredits:       len(credits),
	}
}

// sortedCredits orders credits by year ascending, undated credits last, stable
// on title.
func sortedCredits(credits []corpus.PersonCredit) []corpus.PersonCredit {
	out := make([]corpus.PersonCredit, len(credits))
	copy(out, credits)
	sort.SliceStable(out, func(i, j int) bool {
		yi, yj := out[i].Year, out[j].Year
		if yi == 0 {
			yi = math.MaxInt32
		}
		if yj == 0 {
			yj = math.MaxInt32
		}
		if yi != yj {
			return yi < yj
		}
		return out[i].Title < out[j].Title
	})
	return out
}

// careerStage matches the first joint years/credits range, falling back to
// credit count alone.
func careerStage(yearsActive, totalCredits int) string {
	for _, r := range rules.CareerStages {
		if yearsActive >= r.MinYears && yearsActive <= r.MaxYears &&
			totalCredits >= r.MinCredits && totalCredits <= r.MaxCredits {
			return r.Stage
		}
	}
	return rules.CareerStageFallback(totalCredits)
}

// specializationOf returns the dominant genre when its share of genre mentions
// clears the specialization threshold, "versatile" otherwise, along with the
// normalized Shannon diversity of the genre spread.
func specializationOf(credits []corpus.PersonCredit) (string, float64) {
	counts := make(map[string]int)
	total := 0
	for _, cr := range credits {
		for _, g := range cr.Genres {
			counts[strings.ToLower(g)]++
			total++
		}
	}
	if total == 0 {
		return "versatile", 0
	}

	genres := make([]string, 0, len(counts))
	for g := range counts {
		genres = append(genres, g)
	}
	sort.Strings(genres)

	best, bestShare := "", 0.0
	var entropy float64
	for _, g := range genres {
		share := float64(counts[g]) / float64(total)
		entropy -= share * math.Log(share)
		if share > bestShare {
			best, bestShare = g, share
		}
	}

	diversity := 0.0
	if len(counts) > 1 {
		diversity = roundScore(entropy / math.Log(float64(len(counts))))
	}

	if bestShare >= rules.SpecializationThreshold {
		return best, diversity
	}
	return "versatile", diversity
}

// collaborationScore blends credit volume with multi-role status: a person
// credited both as cast and as crew scores the multi-role bonus on top of
// their normalized credit count.
func collaborationScore(credits []corpus.PersonCredit) float64 {
	if len(credits) == 0 {
		return 0
	}
	volume := math.Min(float64(len(credits))/rules.CollabCreditScale, 1)

	hasCast, hasCrew := false, false
	for _, cr := range credits {
		if strings.EqualFold(cr.Role, "cast") {
			hasCast = true
		} else if cr.Role != "" {
			hasCrew = true
		}
	}

	score := rules.CollabVolumeWeight * volume
	if hasCast && hasCrew {
		score += rules.CollabMultiRoleBonus
	}
	return roundScore(score)
}

// trajectory compares mean popularity of the last third of credits against
// the first third. Requires TrajectoryMinCredits dated credits.
func trajectory(credits []corpus.PersonCredit) string {
	dated := datedCredits(credits)
	if len(dated) < rules.TrajectoryMinCredits {
		return "stable"
	}

	third := len(dated) / 3
	early := meanPopularity(dated[:third])
	late := meanPopularity(dated[len(dated)-third:])
	if early == 0 {
		return "stable"
	}

	change := (late - early) / early
	switch {
	case change > rules.TrajectoryDelta:
		return "ascending"
	case change < -rules.TrajectoryDelta:
		return "declining"
	default:
		return "stable"
	}
}

// qualityTrend compares mean rating of the second half of credits against the
// first half. Requires TrajectoryMinCredits dated credits.
func qualityTrend(credits []corpus.PersonCredit) string {
	dated := datedCredits(credits)
	if len(dated) < rules.TrajectoryMinCredits {
		return "stable"
	}

	half := len(dated) / 2
	early := meanRating(dated[:half])
	late := meanRating(dated[half:])

	diff := late - early
	switch {
	case diff > rules.QualityTrendDelta:
		return "improving"
	case diff < -rules.QualityTrendDelta:
		return "declining"
	default:
		return "stable"
	}
}

// datedCredits filters to credits with a known year, preserving order.
func datedCredits(credits []corpus.PersonCredit) []corpus.PersonCredit {
	var out []corpus.PersonCredit
	for _, cr := range credits {
		if cr.Year > 0 {
			out = append(out, cr)
		}
	}
	return out
}

func meanPopularity(credits []corpus.PersonCredit) float64 {
	if len(credits) == 0 {
		return 0
	}
	var sum float64
	for _, cr := range credits {
		sum += cr.Popularity
	}
	return sum / float64(len(credits))
}

func meanRating(credits []corpus.PersonCredit) float64 {
	var sum float64
	n := 0
	for _, cr := range credits {
		if cr.VoteAverage > 0 {
			sum += cr.VoteAverage
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// influence scores a person 0-100 from popularity, credit volume, department
// prestige, and average work quality.
func influence(p *corpus.Entity, credits []corpus.PersonCredit) float64 {
	popularity := math.Min(p.Popularity/rules.InfluencePopularityScale, 1)
	volume := math.Min(float64(len(credits))/rules.InfluenceCreditScale, 1)
	prestige := rules.DepartmentPrestigeOf(strings.ToLower(p.Department))
	quality := meanRating(credits) / 10

	score := rules.InfluencePopularityWeight*popularity +
		rules.InfluenceCreditWeight*volume +
		rules.InfluenceDepartmentWeight*prestige +
		rules.InfluenceQualityWeight*quality

	return roundScore(score * 100)
}
