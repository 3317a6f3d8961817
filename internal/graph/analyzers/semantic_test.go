// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

package analyzers

import (
	"strings"
	"testing"

	"github.com/cinegraph/cinegraph/internal/corpus"
	"github.com/cinegraph/cinegraph/internal/graph"
	"github.com/cinegraph/cinegraph/internal/rules"
)

func TestSemanticStrongThemeMatch(t *testing.T) {
	a := newMovie("movie:1", func(e *corpus.Entity) {
		e.Genres = []string{"Horror"}
		e.Overview = "A haunted house unleashes a demon on its new owners."
	})
	b := newMovie("movie:2", func(e *corpus.Entity) {
		e.Genres = []string{"Horror"}
		e.Overview = "A possessed doll brings terror to its new owners."
	})

	conns, err := NewSemantic().Analyze(a, corpusOf(a, b), graph.NewBuildCache())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	conn, ok := findConn(conns, "movie:2", graph.TypeSemanticSimilarity)
	if !ok {
		t.Fatal("expected semantic_similarity connection")
	}
	if conn.Strength <= rules.SemanticFloor {
		t.Errorf("strength = %v, want > %v", conn.Strength, rules.SemanticFloor)
	}
	if !strings.Contains(conn.Reason, "horror") {
		t.Errorf("reason %q should mention the shared theme", conn.Reason)
	}
}

func TestSemanticEmptyProfile(t *testing.T) {
	a := newMovie("movie:1", nil)
	b := newMovie("movie:2", func(e *corpus.Entity) {
		e.Genres = []string{"Horror"}
		e.Overview = "A haunted house."
	})

	conns, err := NewSemantic().Analyze(a, corpusOf(a, b), graph.NewBuildCache())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(conns) != 0 {
		t.Errorf("entity without semantic signal yielded %d connections, want 0", len(conns))
	}
}

func TestSemanticNoCrossThemeMatch(t *testing.T) {
	a := newMovie("movie:1", func(e *corpus.Entity) {
		e.Overview = "A wedding brings two soulmates together in a love affair."
	})
	b := newMovie("movie:2", func(e *corpus.Entity) {
		e.Overview = "A gunslinger rides the frontier hunting an outlaw."
	})

	conns, err := NewSemantic().Analyze(a, corpusOf(a, b), graph.NewBuildCache())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if _, ok := findConn(conns, "movie:2", graph.TypeSemanticSimilarity); ok {
		t.Error("romance and western overviews should not connect")
	}
}

func TestSemanticProfileCached(t *testing.T) {
	a := newMovie("movie:1", func(e *corpus.Entity) { e.Genres = []string{"Horror"} })
	b := newMovie("movie:2", func(e *corpus.Entity) { e.Genres = []string{"Horror"} })
	cache := graph.NewBuildCache()

	sem := NewSemantic()
	if _, err := sem.Analyze(a, corpusOf(a, b), cache); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if got := cache.Len(cacheNSSemantic); got != 2 {
		t.Errorf("cached profiles = %d, want 2", got)
	}
}

func TestSharedAxisKeywords(t *testing.T) {
	e := newMovie("movie:1", func(e *corpus.Entity) {
		e.Genres = []string{"Horror", "Thriller"}
	})

	kws := SharedAxisKeywords(e, rules.AxisTheme)
	want := map[string]bool{"horror": true, "supernatural": true, "mystery": true, "suspense": true}
	for _, k := range kws {
		if !want[k] {
			t.Errorf("unexpected theme keyword %q", k)
		}
		delete(want, k)
	}
	for k := range want {
		t.Errorf("missing theme keyword %q", k)
	}
}
