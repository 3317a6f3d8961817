// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

package corpus

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/goccy/go-json"
)

// Corpus is a frozen mapping from entity ID to entity record.
// It is handed to the graph builder fully populated and is never mutated
// during a build, so concurrent reads are safe.
type Corpus struct {
	entities map[string]*Entity
}

// New creates an empty corpus.
func New() *Corpus {
	return &Corpus{entities: make(map[string]*Entity)}
}

// Add inserts an entity. The last write for an ID wins.
func (c *Corpus) Add(e *Entity) {
	c.entities[e.ID] = e
}

// Remove deletes an entity by ID. Used by enrichers to drop entities that
// fail minimum-quality gates before graph building.
func (c *Corpus) Remove(id string) {
	delete(c.entities, id)
}

// Get returns the entity for id, or nil when absent.
func (c *Corpus) Get(id string) *Entity {
	return c.entities[id]
}

// Has reports whether id exists in the corpus.
func (c *Corpus) Has(id string) bool {
	_, ok := c.entities[id]
	return ok
}

// Len returns the number of entities.
func (c *Corpus) Len() int {
	return len(c.entities)
}

// IDs returns all entity IDs sorted ascending. Sorted iteration keeps build
// output deterministic across runs.
func (c *Corpus) IDs() []string {
	ids := make([]string, 0, len(c.entities))
	for id := range c.entities {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// OfKind returns the IDs of all entities of the given kind, sorted ascending.
func (c *Corpus) OfKind(kind Kind) []string {
	var ids []string
	for id, e := range c.entities {
		if e.Kind == kind {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Snapshot returns the corpus as a plain ID-to-entity map for serialization.
func (c *Corpus) Snapshot() map[string]*Entity {
	out := make(map[string]*Entity, len(c.entities))
	for id, e := range c.entities {
		out[id] = e
	}
	return out
}

// Load decodes a corpus from JSON: a mapping from entity ID to attribute
// record. Records with malformed IDs are skipped rather than failing the
// whole load; individually malformed attributes decode to zero values.
func Load(r io.Reader) (*Corpus, error) {
	var raw map[string]json.RawMessage
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode corpus: %w", err)
	}

	c := New()
	for id, msg := range raw {
		kind, _, err := ParseID(id)
		if err != nil {
			continue
		}

		var e Entity
		if err := json.Unmarshal(msg, &e); err != nil {
			// Attribute record is not an object at all; skip the entity.
			continue
		}

		e.ID = id
		e.Kind = kind
		if e.Enrichment != nil {
			// Enrichment is derived, never accepted from ingestion.
			e.Enrichment = nil
		}
		c.Add(&e)
	}

	return c, nil
}

// LoadFile loads a corpus from a JSON file.
func LoadFile(path string) (*Corpus, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("open corpus file: %w", err)
	}
	defer func() { _ = f.Close() }()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load corpus from %s: %w", path, err)
	}
	return c, nil
}
