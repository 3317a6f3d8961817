// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

// Package rules is the single shared vocabulary for every heuristic in the
// engine: scoring constants, genre weights, studio tiers, semantic pattern
// families, cultural tables, search stop words and intent seeds.
//
// Analyzers and the search compiler both read from this package, which
// guarantees that the vocabulary used to score connections is the same one
// used to index them. Tests assert directly against these named values, so
// tuning a constant here is a one-line, test-visible change.
//
// All tables are read-only after package initialization.
package rules
