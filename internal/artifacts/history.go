// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

package artifacts

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

// Key layout for the build history database.
const (
	manifestKeyPrefix = "manifest:"
	latestBuildKey    = "latest_build"
)

// ErrBuildNotFound is returned when a build ID has no recorded manifest.
var ErrBuildNotFound = errors.New("build not found")

// History records build manifests in BadgerDB so operators can inspect past
// builds and compare entity/connection counts across compilations. Artifact
// payloads stay on the filesystem; only manifests live here.
type History struct {
	db *badger.DB
}

// OpenHistory opens (or creates) the build history database at path.
func OpenHistory(path string) (*History, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open build history: %w", err)
	}
	return &History{db: db}, nil
}

// NewHistory wraps an already-open Badger database.
func NewHistory(db *badger.DB) *History {
	return &History{db: db}
}

// Close closes the underlying database.
func (h *History) Close() error {
	return h.db.Close()
}

// Record stores a build manifest and marks it as the latest build.
func (h *History) Record(ctx context.Context, m *Manifest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	return h.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(manifestKeyPrefix+m.BuildID), data); err != nil {
			return fmt.Errorf("set manifest: %w", err)
		}
		if err := txn.Set([]byte(latestBuildKey), []byte(m.BuildID)); err != nil {
			return fmt.Errorf("set latest pointer: %w", err)
		}
		return nil
	})
}

// Get retrieves the manifest for a build ID.
func (h *History) Get(ctx context.Context, buildID string) (*Manifest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var m Manifest
	err := h.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(manifestKeyPrefix + buildID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrBuildNotFound
		}
		if err != nil {
			return fmt.Errorf("get manifest: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &m)
		})
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Latest retrieves the most recently recorded build's manifest.
func (h *History) Latest(ctx context.Context) (*Manifest, error) {
	var buildID string
	err := h.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(latestBuildKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrBuildNotFound
		}
		if err != nil {
			return fmt.Errorf("get latest pointer: %w", err)
		}
		return item.Value(func(val []byte) error {
			buildID = string(val)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return h.Get(ctx, buildID)
}

// List returns all recorded manifests, newest first.
func (h *History) List(ctx context.Context) ([]Manifest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var manifests []Manifest
	err := h.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(manifestKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var m Manifest
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &m)
			})
			if err != nil {
				return fmt.Errorf("decode manifest: %w", err)
			}
			manifests = append(manifests, m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(manifests, func(i, j int) bool {
		return manifests[i].CreatedAt.After(manifests[j].CreatedAt)
	})
	return manifests, nil
}
