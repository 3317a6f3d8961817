// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

package analyzers

import (
	"testing"

	"github.com/cinegraph/cinegraph/internal/corpus"
)

func newPerson(id string, mod func(*corpus.Entity)) *corpus.Entity {
	e := &corpus.Entity{
		ID:         id,
		Kind:       corpus.KindPerson,
		Name:       "Person " + id,
		Popularity: 10,
		Credits: []corpus.PersonCredit{
			{Title: "Some Film", Year: 2015, Genres: []string{"Drama"}, Role: "cast"},
		},
	}
	if mod != nil {
		mod(e)
	}
	return e
}

func TestCareerRemovesLowPopularityPersons(t *testing.T) {
	keep := newPerson("person:1", nil)
	drop := newPerson("person:2", func(e *corpus.Entity) { e.Popularity = 0.1 })
	c := corpusOf(keep, drop)

	if err := NewCareer().Enrich(c); err != nil {
		t.Fatalf("Enrich: %v", err)
	}

	if !c.Has("person:1") {
		t.Error("qualified person was removed")
	}
	if c.Has("person:2") {
		t.Error("person below the popularity floor survived enrichment")
	}
	if keep.Enrichment == nil {
		t.Fatal("surviving person was not enriched")
	}
}

func TestCareerRemovesZeroCreditPersons(t *testing.T) {
	popular := newPerson("person:1", func(e *corpus.Entity) {
		e.Popularity = 50
		e.Credits = nil
	})
	c := corpusOf(popular)

	if err := NewCareer().Enrich(c); err != nil {
		t.Fatalf("Enrich: %v", err)
	}

	if c.Has("person:1") {
		t.Error("person with zero credits survived enrichment")
	}
}

func TestCareerStage(t *testing.T) {
	tests := []struct {
		name        string
		yearsActive int
		credits     int
		want        string
	}{
		{name: "newcomer", yearsActive: 3, credits: 5, want: "emerging"},
		{name: "mid career", yearsActive: 12, credits: 30, want: "established"},
		{name: "veteran", yearsActive: 25, credits: 80, want: "veteran"},
		{name: "legend", yearsActive: 45, credits: 120, want: "legend"},
		{name: "fallback by credits", yearsActive: 2, credits: 90, want: "legend"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := careerStage(tt.yearsActive, tt.credits); got != tt.want {
				t.Errorf("careerStage(%d, %d) = %q, want %q", tt.yearsActive, tt.credits, got, tt.want)
			}
		})
	}
}

func TestSpecialization(t *testing.T) {
	horrorHeavy := []corpus.PersonCredit{
		{Title: "A", Genres: []string{"Horror"}},
		{Title: "B", Genres: []string{"Horror"}},
		{Title: "C", Genres: []string{"Horror"}},
		{Title: "D", Genres: []string{"Comedy"}},
	}
	spec, diversity := specializationOf(horrorHeavy)
	if spec != "horror" {
		t.Errorf("specialization = %q, want horror", spec)
	}
	if diversity <= 0 || diversity >= 1 {
		t.Errorf("diversity = %v, want in (0,1)", diversity)
	}

	mixed := []corpus.PersonCredit{
		{Title: "A", Genres: []string{"Horror"}},
		{Title: "B", Genres: []string{"Comedy"}},
		{Title: "C", Genres: []string{"Drama"}},
		{Title: "D", Genres: []string{"Western"}},
	}
	if spec, _ := specializationOf(mixed); spec != "versatile" {
		t.Errorf("specialization = %q, want versatile", spec)
	}

	if spec, diversity := specializationOf(nil); spec != "versatile" || diversity != 0 {
		t.Errorf("empty credits: got %q/%v, want versatile/0", spec, diversity)
	}
}

func TestCollaborationScore(t *testing.T) {
	castOnly := []corpus.PersonCredit{
		{Title: "A", Role: "cast"},
		{Title: "B", Role: "cast"},
		{Title: "C", Role: "cast"},
		{Title: "D", Role: "cast"},
	}
	if got, want := collaborationScore(castOnly), 0.07; got != want {
		t.Errorf("cast-only score = %v, want %v", got, want)
	}

	multiRole := append(append([]corpus.PersonCredit{}, castOnly...),
		corpus.PersonCredit{Title: "E", Role: "Director", Department: "Directing"})
	if got, want := collaborationScore(multiRole), 0.3875; got != want {
		t.Errorf("multi-role score = %v, want %v", got, want)
	}

	many := make([]corpus.PersonCredit, 80)
	for i := range many {
		many[i] = corpus.PersonCredit{Title: "X", Role: "cast"}
	}
	if got, want := collaborationScore(many), 0.7; got != want {
		t.Errorf("high-volume score = %v, want %v", got, want)
	}

	if got := collaborationScore(nil); got != 0 {
		t.Errorf("empty credits score = %v, want 0", got)
	}
}

func TestTrajectory(t *testing.T) {
	rising := []corpus.PersonCredit{
		{Title: "A", Year: 2010, Popularity: 5},
		{Title: "B", Year: 2012, Popularity: 6},
		{Title: "C", Year: 2014, Popularity: 10},
		{Title: "D", Year: 2016, Popularity: 20},
		{Title: "E", Year: 2018, Popularity: 40},
		{Title: "F", Year: 2020, Popularity: 60},
	}
	if got := trajectory(rising); got != "ascending" {
		t.Errorf("trajectory = %q, want ascending", got)
	}

	falling := []corpus.PersonCredit{
		{Title: "A", Year: 2010, Popularity: 60},
		{Title: "B", Year: 2012, Popularity: 50},
		{Title: "C", Year: 2014, Popularity: 20},
		{Title: "D", Year: 2016, Popularity: 10},
		{Title: "E", Year: 2018, Popularity: 6},
		{Title: "F", Year: 2020, Popularity: 5},
	}
	if got := trajectory(falling); got != "declining" {
		t.Errorf("trajectory = %q, want declining", got)
	}

	if got := trajectory(rising[:3]); got != "stable" {
		t.Errorf("too few credits: trajectory = %q, want stable", got)
	}
}

func TestQualityTrend(t *testing.T) {
	improving := []corpus.PersonCredit{
		{Title: "A", Year: 2010, VoteAverage: 5.5},
		{Title: "B", Year: 2012, VoteAverage: 5.8},
		{Title: "C", Year: 2014, VoteAverage: 6.0},
		{Title: "D", Year: 2016, VoteAverage: 7.0},
		{Title: "E", Year: 2018, VoteAverage: 7.5},
		{Title: "F", Year: 2020, VoteAverage: 7.8},
	}
	if got := qualityTrend(improving); got != "improving" {
		t.Errorf("qualityTrend = %q, want improving", got)
	}
}

func TestInfluenceRange(t *testing.T) {
	p := newPerson("person:1", func(e *corpus.Entity) {
		e.Popularity = 90
		e.Department = "Directing"
	})
	credits := []corpus.PersonCredit{
		{Title: "A", Year: 2015, VoteAverage: 8.2, Popularity: 80},
		{Title: "B", Year: 2018, VoteAverage: 7.9, Popularity: 60},
	}

	got := influence(p, credits)
	if got <= 0 || got > 100 {
		t.Errorf("influence = %v, want in (0,100]", got)
	}
}

func TestEnrichPersonFields(t *testing.T) {
	p := newPerson("person:1", func(e *corpus.Entity) {
		e.Department = "Acting"
		e.Credits = []corpus.PersonCredit{
			{Title: "A", Year: 2000, Genres: []string{"Horror"}, VoteAverage: 6.5, Popularity: 10},
			{Title: "B", Year: 2005, Genres: []string{"Horror"}, VoteAverage: 7.0, Popularity: 15},
			{Title: "C", Year: 2012, Genres: []string{"Horror"}, VoteAverage: 7.5, Popularity: 30},
		}
	})

	enr := enrichPerson(p)
	if enr.YearsActive != 12 {
		t.Errorf("YearsActive = %d, want 12", enr.YearsActive)
	}
	if enr.TotalCredits != 3 {
		t.Errorf("TotalCredits = %d, want 3", enr.TotalCredits)
	}
	if enr.Specialization != "horror" {
		t.Errorf("Specialization = %q, want horror", enr.Specialization)
	}
	if enr.CareerStage == "" {
		t.Error("CareerStage is empty")
	}
}
