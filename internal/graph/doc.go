// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

// Package graph compiles the corpus into the scored relationship graph.
//
// The builder runs registered enrichers, then every analyzer against every
// entity, then four post-processing passes in fixed order:
//
//  1. Bidirectional symmetrization: each connection gains a discounted
//     reverse edge unless one of the same type already exists.
//  2. Peer-to-peer inference: two-hop paths over direct connections emit
//     weaker peer_recommendation edges.
//  3. Semantic clustering: entities co-occurring on semantic connections
//     form fully interconnected clusters.
//  4. Confidence scoring: confidence and final score are recomputed from
//     fixed category and type tables; every category list is sorted and
//     capped.
//
// # Determinism
//
// Builds are idempotent: iteration is over sorted entity IDs, ranked lists
// break ties on target ID, and scores are rounded to six decimal places, so
// an unchanged corpus compiles to byte-identical artifacts.
//
// # Failure Isolation
//
// An analyzer error or panic costs only that entity/analyzer pair; the build
// logs it and continues. Per-build memoization lives in an explicit
// BuildCache that is discarded with the build.
package graph
