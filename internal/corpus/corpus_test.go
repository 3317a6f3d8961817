// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

package corpus

import (
	"strings"
	"testing"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		wantKind Kind
		wantNum  int
		wantErr  bool
	}{
		{"movie id", "movie:550", KindMovie, 550, false},
		{"person id", "person:287", KindPerson, 287, false},
		{"keyword id", "keyword:9715", KindKeyword, 9715, false},
		{"missing separator", "movie550", "", 0, true},
		{"unknown kind", "album:1", "", 0, true},
		{"non-numeric suffix", "movie:abc", "", 0, true},
		{"empty", "", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, num, err := ParseID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if kind != tt.wantKind || num != tt.wantNum {
				t.Errorf("ParseID(%q) = (%v, %d), want (%v, %d)", tt.id, kind, num, tt.wantKind, tt.wantNum)
			}
		})
	}
}

func TestMakeIDRoundTrip(t *testing.T) {
	id := MakeID(KindShow, 1399)
	if id != "show:1399" {
		t.Fatalf("MakeID = %q, want %q", id, "show:1399")
	}
	kind, num, err := ParseID(id)
	if err != nil {
		t.Fatalf("ParseID(%q) unexpected error: %v", id, err)
	}
	if kind != KindShow || num != 1399 {
		t.Errorf("round trip = (%v, %d), want (show, 1399)", kind, num)
	}
}

func TestEntityYearAndDecade(t *testing.T) {
	tests := []struct {
		name       string
		release    string
		wantYear   int
		wantDecade string
	}{
		{"full date", "1999-10-15", 1999, "1990s"},
		{"year only", "2008", 2008, "2000s"},
		{"empty", "", 0, ""},
		{"garbage", "n/a", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Entity{ReleaseDate: tt.release}
			if got := e.Year(); got != tt.wantYear {
				t.Errorf("Year() = %d, want %d", got, tt.wantYear)
			}
			if got := e.Decade(); got != tt.wantDecade {
				t.Errorf("Decade() = %q, want %q", got, tt.wantDecade)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	input := `{
		"movie:550": {
			"name": "Fight Club",
			"genres": ["Drama", "Thriller"],
			"vote_average": 8.4,
			"vote_count": 26000,
			"popularity": 61.4,
			"release_date": "1999-10-15",
			"production_companies": [{"id": 508, "name": "Regency Enterprises"}]
		},
		"person:287": {
			"name": "Brad Pitt",
			"department": "Acting",
			"popularity": 40.0
		},
		"bogus-id": {"name": "dropped"},
		"album:1": {"name": "wrong kind"},
		"movie:999": "not an object"
	}`

	c, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (malformed records skipped)", c.Len())
	}

	movie := c.Get("movie:550")
	if movie == nil {
		t.Fatal("movie:550 missing")
	}
	if movie.Kind != KindMovie {
		t.Errorf("Kind = %v, want movie", movie.Kind)
	}
	if movie.Name != "Fight Club" {
		t.Errorf("Name = %q, want %q", movie.Name, "Fight Club")
	}
	if movie.VoteAverage != 8.4 {
		t.Errorf("VoteAverage = %f, want 8.4", movie.VoteAverage)
	}
	if len(movie.ProductionCompanies) != 1 || movie.ProductionCompanies[0].ID != 508 {
		t.Errorf("ProductionCompanies = %+v, want one company with ID 508", movie.ProductionCompanies)
	}

	if !c.Has("person:287") {
		t.Error("person:287 missing")
	}
	if c.Has("bogus-id") || c.Has("album:1") || c.Has("movie:999") {
		t.Error("malformed records should be skipped")
	}
}

func TestLoadRejectsIngestedEnrichment(t *testing.T) {
	input := `{"person:1": {"name": "Someone", "enrichment": {"career_stage": "legend"}}}`

	c, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	p := c.Get("person:1")
	if p == nil {
		t.Fatal("person:1 missing")
	}
	if p.Enrichment != nil {
		t.Error("ingested enrichment should be discarded; it is derived state")
	}
}

func TestLoadMalformedRoot(t *testing.T) {
	if _, err := Load(strings.NewReader(`[1,2,3]`)); err == nil {
		t.Error("Load() with non-object root should fail")
	}
}

func TestIDsSorted(t *testing.T) {
	c := New()
	c.Add(&Entity{ID: "movie:2", Kind: KindMovie})
	c.Add(&Entity{ID: "movie:1", Kind: KindMovie})
	c.Add(&Entity{ID: "genre:1", Kind: KindGenre})

	ids := c.IDs()
	want := []string{"genre:1", "movie:1", "movie:2"}
	for i, id := range want {
		if ids[i] != id {
			t.Fatalf("IDs() = %v, want %v", ids, want)
		}
	}
}

func TestOfKind(t *testing.T) {
	c := New()
	c.Add(&Entity{ID: "movie:1", Kind: KindMovie})
	c.Add(&Entity{ID: "person:1", Kind: KindPerson})
	c.Add(&Entity{ID: "person:2", Kind: KindPerson})

	people := c.OfKind(KindPerson)
	if len(people) != 2 {
		t.Fatalf("OfKind(person) = %v, want 2 entries", people)
	}
}

func TestGenreSetAndCompanyIDs(t *testing.T) {
	e := Entity{
		Genres:              []string{"Horror", "thriller"},
		ProductionCompanies: []Company{{ID: 420, Name: "Marvel Studios"}, {ID: 0, Name: "unidentified"}},
	}

	genres := e.GenreSet()
	if _, ok := genres["horror"]; !ok {
		t.Error("GenreSet missing lowercased horror")
	}
	if len(genres) != 2 {
		t.Errorf("GenreSet size = %d, want 2", len(genres))
	}

	companies := e.CompanyIDs()
	if _, ok := companies[420]; !ok {
		t.Error("CompanyIDs missing 420")
	}
	if len(companies) != 1 {
		t.Errorf("CompanyIDs size = %d, want 1 (zero IDs dropped)", len(companies))
	}
}
