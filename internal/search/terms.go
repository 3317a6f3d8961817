// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

package search

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/cinegraph/cinegraph/internal/corpus"
	"github.com/cinegraph/cinegraph/internal/rules"
)

// entityTerms extracts every searchable term for one entity: names and
// aliases, keywords, genres, company names with generated variations,
// cast and key-crew names, important overview/tagline words, countries,
// languages, year/decade strings, and the collection name.
func entityTerms(e *corpus.Entity) []string {
	var terms []string

	terms = append(terms, nameVariations(e.Name)...)
	for _, alias := range e.Aliases {
		terms = append(terms, nameVariations(alias)...)
	}
	for _, kw := range e.Keywords {
		terms = append(terms, normalizeTerm(kw))
	}
	for _, g := range e.Genres {
		terms = append(terms, normalizeTerm(g))
	}
	for _, co := range e.ProductionCompanies {
		terms = append(terms, companyVariations(co.Name)...)
	}
	for _, m := range e.Cast {
		terms = append(terms, nameVariations(m.Name)...)
	}
	for _, m := range e.Crew {
		if rules.IsKeyRole(strings.ToLower(m.Job)) {
			terms = append(terms, nameVariations(m.Name)...)
		}
	}
	terms = append(terms, overviewTerms(e.Overview+" "+e.Tagline)...)
	for _, country := range e.Countries {
		terms = append(terms, normalizeTerm(country))
	}
	for _, lang := range e.Languages {
		terms = append(terms, normalizeTerm(lang))
	}
	if year := e.Year(); year > 0 {
		terms = append(terms, strconv.Itoa(year), e.Decade())
	}
	if e.Collection != nil {
		terms = append(terms, nameVariations(e.Collection.Name)...)
	}

	var out []string
	for _, t := range terms {
		if len(t) >= rules.MinTermLength {
			out = append(out, t)
		}
	}
	return dedupeSorted(out)
}

// nameVariations generates the indexable variations of a display name: the
// full normalized name, its per-word tokens, and an acronym for multi-word
// names.
func nameVariations(name string) []string {
	norm := normalizeTerm(name)
	if norm == "" {
		return nil
	}

	terms := []string{norm}
	words := strings.Fields(norm)
	if len(words) > 1 {
		for _, w := range words {
			if len(w) >= rules.MinTermLength && !rules.IsStopWord(w) {
				terms = append(terms, w)
			}
		}
		if acr := acronym(words); len(acr) >= rules.MinTermLength {
			terms = append(terms, acr)
		}
	}
	return terms
}

// companyVariations generates company-name terms: the name variations plus a
// suffix-stripped form ("Marvel Studios" also indexes as "marvel").
func companyVariations(name string) []string {
	terms := nameVariations(name)
	norm := normalizeTerm(name)
	if norm == "" {
		return terms
	}

	words := strings.Fields(norm)
	for len(words) > 1 {
		last := words[len(words)-1]
		if !isCompanySuffix(last) {
			break
		}
		words = words[:len(words)-1]
	}
	if stripped := strings.Join(words, " "); stripped != norm && len(stripped) >= rules.MinTermLength {
		terms = append(terms, stripped)
	}
	return terms
}

func isCompanySuffix(w string) bool {
	for _, s := range rules.CompanySuffixes {
		if w == s {
			return true
		}
	}
	return false
}

// acronym builds the first-letter acronym of a multi-word name, skipping stop
// words.
func acronym(words []string) string {
	var sb strings.Builder
	for _, w := range words {
		if rules.IsStopWord(w) {
			continue
		}
		r := []rune(w)
		if len(r) > 0 && unicode.IsLetter(r[0]) {
			sb.WriteRune(r[0])
		}
	}
	return sb.String()
}

// overviewTerms extracts the important words from free text: stop-word
// filtered, minimum length, capped per entity.
func overviewTerms(text string) []string {
	seen := make(map[string]struct{})
	var terms []string

	for _, w := range strings.Fields(normalizeTerm(text)) {
		if len(w) < rules.MinOverviewWordLength || rules.IsStopWord(w) {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		terms = append(terms, w)
		if len(terms) == rules.MaxOverviewTerms {
			break
		}
	}
	return terms
}

// normalizeTerm lowercases a term and strips everything but letters, digits,
// and single internal spaces.
func normalizeTerm(s string) string {
	var sb strings.Builder
	lastSpace := true
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
			lastSpace = false
		case !lastSpace:
			sb.WriteRune(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(sb.String())
}
