// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

package search

import (
	"testing"

	"github.com/cinegraph/cinegraph/internal/rules"
)

func TestExpandIntentsBidirectional(t *testing.T) {
	seeds := map[string][]string{
		"marvel": {"mcu", "avengers"},
	}
	got := ExpandIntents(seeds)

	if !hasTerm(got["marvel"], "mcu") || !hasTerm(got["marvel"], "avengers") {
		t.Errorf("marvel expansion = %v, want mcu and avengers", got["marvel"])
	}
	if !hasTerm(got["mcu"], "marvel") {
		t.Errorf("mcu expansion = %v, want back-link to marvel", got["mcu"])
	}
}

func TestExpandIntentsCrossPollinated(t *testing.T) {
	seeds := map[string][]string{
		"horror": {"scary", "spooky"},
	}
	got := ExpandIntents(seeds)

	if !hasTerm(got["scary"], "spooky") {
		t.Errorf("scary expansion = %v, want sibling term spooky", got["scary"])
	}
	if !hasTerm(got["spooky"], "scary") {
		t.Errorf("spooky expansion = %v, want sibling term scary", got["spooky"])
	}
}

func TestExpandIntentsNoSelfLinks(t *testing.T) {
	got := ExpandIntents(rules.IntentSeeds)
	for term, related := range got {
		for _, r := range related {
			if r == term {
				t.Errorf("%q links to itself", term)
			}
		}
	}
}

func TestExpandIntentsSortedValues(t *testing.T) {
	got := ExpandIntents(rules.IntentSeeds)
	for term, related := range got {
		for i := 1; i < len(related); i++ {
			if related[i-1] > related[i] {
				t.Errorf("%q expansion not sorted: %v", term, related)
				break
			}
		}
	}
}
