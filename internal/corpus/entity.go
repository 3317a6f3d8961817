// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

// Package corpus defines the entity data model shared by every stage of the
// relationship pipeline.
//
// A corpus is a frozen mapping from entity ID to entity record, produced by an
// external ingestion collaborator. Entities are immutable once loaded;
// enrichment only adds derived fields, it never mutates ingested attributes.
//
// Attribute access is tolerant by design: a missing or mis-typed field in the
// source record decodes to its zero value. Analyzers treat zero values as
// absent data and contribute no connections for that signal.
package corpus

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the entity kind encoded in the ID prefix.
type Kind string

// The closed set of entity kinds.
const (
	KindMovie      Kind = "movie"
	KindShow       Kind = "show"
	KindPerson     Kind = "person"
	KindCompany    Kind = "company"
	KindCollection Kind = "collection"
	KindGenre      Kind = "genre"
	KindKeyword    Kind = "keyword"
)

// Valid reports whether k is a member of the closed kind set.
func (k Kind) Valid() bool {
	switch k {
	case KindMovie, KindShow, KindPerson, KindCompany, KindCollection, KindGenre, KindKeyword:
		return true
	}
	return false
}

// ParseID splits an entity ID of the form "kind:numeric-id".
// Returns an error for unknown kinds or malformed IDs.
func ParseID(id string) (Kind, int, error) {
	kindStr, numStr, ok := strings.Cut(id, ":")
	if !ok {
		return "", 0, fmt.Errorf("malformed entity id %q: missing kind separator", id)
	}

	kind := Kind(kindStr)
	if !kind.Valid() {
		return "", 0, fmt.Errorf("malformed entity id %q: unknown kind %q", id, kindStr)
	}

	num, err := strconv.Atoi(numStr)
	if err != nil {
		return "", 0, fmt.Errorf("malformed entity id %q: non-numeric suffix", id)
	}

	return kind, num, nil
}

// MakeID builds an entity ID from kind and numeric ID.
func MakeID(kind Kind, num int) string {
	return string(kind) + ":" + strconv.Itoa(num)
}

// Company is a production company reference on a movie or show.
type Company struct {
	// ID is the provider's numeric company identifier.
	ID int `json:"id"`

	// Name is the company display name.
	Name string `json:"name"`
}

// CollectionRef links an entity to its franchise/collection.
type CollectionRef struct {
	// ID is the provider's numeric collection identifier.
	ID int `json:"id"`

	// Name is the collection display name.
	Name string `json:"name"`
}

// CastMember is one entry in an entity's cast list.
type CastMember struct {
	// PersonID is the provider's numeric person identifier.
	PersonID int `json:"person_id"`

	// Name is the person's display name.
	Name string `json:"name"`

	// Character is the role played.
	Character string `json:"character,omitempty"`

	// Order is the billing order (0 = top billing).
	Order int `json:"order"`

	// Popularity is the person's popularity metric.
	Popularity float64 `json:"popularity,omitempty"`
}

// CrewMember is one entry in an entity's crew list.
type CrewMember struct {
	// PersonID is the provider's numeric person identifier.
	PersonID int `json:"person_id"`

	// Name is the person's display name.
	Name string `json:"name"`

	// Job is the crew job title (Director, Producer, Writer, ...).
	Job string `json:"job,omitempty"`

	// Department is the crew department.
	Department string `json:"department,omitempty"`

	// Popularity is the person's popularity metric.
	Popularity float64 `json:"popularity,omitempty"`
}

// PersonCredit is one work credit on a person entity, used by the career
// enricher. Credits are ordered by release date ascending when dates exist.
type PersonCredit struct {
	// EntityID references the credited work, when present in the corpus.
	EntityID string `json:"entity_id,omitempty"`

	// Title is the credited work's title.
	Title string `json:"title"`

	// Genres lists the credited work's genres.
	Genres []string `json:"genres,omitempty"`

	// Role is "cast" or the crew job title.
	Role string `json:"role,omitempty"`

	// Department is the crew department, empty for cast credits.
	Department string `json:"department,omitempty"`

	// Year is the release year, zero when unknown.
	Year int `json:"year,omitempty"`

	// VoteAverage is the work's average rating (0-10).
	VoteAverage float64 `json:"vote_average,omitempty"`

	// Popularity is the work's popularity metric.
	Popularity float64 `json:"popularity,omitempty"`
}

// Entity is one content record: movie, show, person, company, collection,
// genre, or keyword. Unused fields are simply zero for a given kind.
type Entity struct {
	// ID is the stable identifier, "kind:numeric-id".
	ID string `json:"id"`

	// Kind is the entity kind parsed from the ID.
	Kind Kind `json:"kind"`

	// Name is the display name (title for movies/shows).
	Name string `json:"name"`

	// Aliases are alternative names and titles.
	Aliases []string `json:"aliases,omitempty"`

	// Overview is the synopsis text.
	Overview string `json:"overview,omitempty"`

	// Tagline is the marketing tagline.
	Tagline string `json:"tagline,omitempty"`

	// Genres lists genre names.
	Genres []string `json:"genres,omitempty"`

	// Keywords lists provider keyword tags.
	Keywords []string `json:"keywords,omitempty"`

	// ProductionCompanies lists producing companies.
	ProductionCompanies []Company `json:"production_companies,omitempty"`

	// Cast lists billed cast members.
	Cast []CastMember `json:"cast,omitempty"`

	// Crew lists crew members.
	Crew []CrewMember `json:"crew,omitempty"`

	// Collection is the franchise/collection membership, if any.
	Collection *CollectionRef `json:"collection,omitempty"`

	// VoteAverage is the average rating (0-10).
	VoteAverage float64 `json:"vote_average,omitempty"`

	// VoteCount is the number of votes behind VoteAverage.
	VoteCount int `json:"vote_count,omitempty"`

	// Popularity is the provider popularity metric.
	Popularity float64 `json:"popularity,omitempty"`

	// ReleaseDate is the first release date, "YYYY-MM-DD".
	ReleaseDate string `json:"release_date,omitempty"`

	// Countries lists production country names.
	Countries []string `json:"countries,omitempty"`

	// Languages lists spoken language names.
	Languages []string `json:"languages,omitempty"`

	// Department is the known-for department for person entities.
	Department string `json:"department,omitempty"`

	// Credits lists work credits for person entities.
	Credits []PersonCredit `json:"credits,omitempty"`

	// Enrichment holds derived career attributes for person entities.
	// Populated exactly once by the person enricher, nil before that.
	Enrichment *PersonEnrichment `json:"enrichment,omitempty"`
}

// Year returns the release year, or zero when the release date is absent or
// malformed.
func (e *Entity) Year() int {
	if len(e.ReleaseDate) < 4 {
		return 0
	}
	y, err := strconv.Atoi(e.ReleaseDate[:4])
	if err != nil {
		return 0
	}
	return y
}

// Decade returns the release decade as a string like "1990s", or "" when the
// release year is unknown.
func (e *Entity) Decade() string {
	y := e.Year()
	if y == 0 {
		return ""
	}
	return strconv.Itoa(y/10*10) + "s"
}

// GenreSet returns the entity's genres as a lowercase membership set.
func (e *Entity) GenreSet() map[string]struct{} {
	set := make(map[string]struct{}, len(e.Genres))
	for _, g := range e.Genres {
		set[strings.ToLower(g)] = struct{}{}
	}
	return set
}

// CompanyIDs returns the set of production company IDs.
func (e *Entity) CompanyIDs() map[int]struct{} {
	set := make(map[int]struct{}, len(e.ProductionCompanies))
	for _, c := range e.ProductionCompanies {
		if c.ID != 0 {
			set[c.ID] = struct{}{}
		}
	}
	return set
}

// PersonEnrichment holds derived career attributes for a person entity.
type PersonEnrichment struct {
	// CareerStage is emerging, established, veteran, or legend.
	CareerStage string `json:"career_stage"`

	// Specialization is the dominant genre, or "versatile".
	Specialization string `json:"specialization"`

	// GenreDiversity is the Shannon diversity of the person's genre spread.
	GenreDiversity float64 `json:"genre_diversity"`

	// CollaborationScore is a heuristic 0-1 collaboration metric.
	CollaborationScore float64 `json:"collaboration_score"`

	// Trajectory is ascending, declining, or stable.
	Trajectory string `json:"trajectory"`

	// QualityTrend is improving, declining, or stable.
	QualityTrend string `json:"quality_trend"`

	// Influence is a 0-100 influence score.
	Influence float64 `json:"influence"`

	// YearsActive is the span from first to last credited year.
	YearsActive int `json:"years_active"`

	// TotalCredits is the total credit count.
	TotalCredits int `json:"total_credits"`
}
