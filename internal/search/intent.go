// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

package search

import "sort"

// ExpandIntents turns the hand-curated seed map into the full intent map:
// every seed maps to its expansion terms, every expansion term maps back to
// its seed, and all expansion terms of one seed are cross-pollinated with
// each other. Querying any alias therefore surfaces the same entity set.
func ExpandIntents(seeds map[string][]string) map[string][]string {
	linked := make(map[string]map[string]struct{})

	link := func(a, b string) {
		if a == b || a == "" || b == "" {
			return
		}
		set, ok := linked[a]
		if !ok {
			set = make(map[string]struct{})
			linked[a] = set
		}
		set[b] = struct{}{}
	}

	for base, expansions := range seeds {
		for _, term := range expansions {
			link(base, term)
			link(term, base)
		}
		for i, a := range expansions {
			for j, b := range expansions {
				if i == j {
					continue
				}
				link(a, b)
			}
		}
	}

	out := make(map[string][]string, len(linked))
	for term, set := range linked {
		related := make([]string, 0, len(set))
		for r := range set {
			related = append(related, r)
		}
		sort.Strings(related)
		out[term] = related
	}
	return out
}
