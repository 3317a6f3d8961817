// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

package graph

import "sync"

// BuildCache memoizes per-entity derived profiles for the duration of one
// build. It replaces any process-wide memoization: a cache is created by the
// builder, threaded through every analyzer call, and discarded with the
// build. Nothing cached here outlives a build invocation.
//
// Entries are namespaced by analyzer so two analyzers can cache different
// profile types for the same entity.
type BuildCache struct {
	mu       sync.RWMutex
	profiles map[string]map[string]any
}

// NewBuildCache creates an empty build-scoped cache.
func NewBuildCache() *BuildCache {
	return &BuildCache{profiles: make(map[string]map[string]any)}
}

// Get returns the cached value for (namespace, entityID), if present.
func (bc *BuildCache) Get(namespace, entityID string) (any, bool) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	ns, ok := bc.profiles[namespace]
	if !ok {
		return nil, false
	}
	v, ok := ns[entityID]
	return v, ok
}

// Put stores a value for (namespace, entityID).
func (bc *BuildCache) Put(namespace, entityID string, v any) {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	ns, ok := bc.profiles[namespace]
	if !ok {
		ns = make(map[string]any)
		bc.profiles[namespace] = ns
	}
	ns[entityID] = v
}

// Len returns the number of cached entries in a namespace.
func (bc *BuildCache) Len(namespace string) int {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	return len(bc.profiles[namespace])
}
