// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

// Package search flattens the corpus and relationship graph into the
// consumer-facing lookup artifacts: a search index (term, category, context,
// and intent maps) and per-entity recommendation sets.
//
// All outputs are plain nested maps keyed by strings, suitable for JSON
// persistence and static consumption. No entity object identity is shared
// with the corpus or graph beyond entity IDs.
//
// Category and context tagging read the same rule tables the analyzers score
// with, so the vocabulary that connects entities is the vocabulary that
// indexes them.
package search
