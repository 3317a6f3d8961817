// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

// Package artifacts persists the compiled build outputs: corpus snapshot,
// relationship graph, search index, and recommendation sets.
//
// Artifacts are JSON, gzip-compressed, and written atomically: each file is
// staged under a temporary name and renamed into place, and the manifest is
// written last. A reader that finds a manifest therefore always finds the
// complete artifact set it describes. Each artifact's SHA-256 checksum is
// recorded in the manifest and verified on read.
//
// # Thread Safety
//
// All store operations are safe for concurrent use.
package artifacts

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cinegraph/cinegraph/internal/corpus"
	"github.com/cinegraph/cinegraph/internal/graph"
	"github.com/cinegraph/cinegraph/internal/logging"
	"github.com/cinegraph/cinegraph/internal/search"
)

// Artifact file names within a build directory.
const (
	FileCorpus          = "corpus.json.gz"
	FileGraph           = "graph.json.gz"
	FileIndex           = "index.json.gz"
	FileRecommendations = "recommendations.json.gz"
	FileManifest        = "manifest.json"
)

// Build bundles the four artifacts of one compilation.
type Build struct {
	// Corpus is the enriched entity snapshot.
	Corpus map[string]*corpus.Entity `json:"corpus"`

	// Graph is the compiled relationship graph.
	Graph *graph.Graph `json:"graph"`

	// Index is the compiled search index.
	Index *search.Index `json:"index"`

	// Recommendations maps entity ID to its recommendation set.
	Recommendations map[string]search.RecommendationSet `json:"recommendations"`
}

// FileInfo records one artifact file's integrity data.
type FileInfo struct {
	// Checksum is the SHA-256 of the uncompressed JSON payload.
	Checksum string `json:"checksum"`

	// SizeBytes is the compressed size on disk.
	SizeBytes int64 `json:"size_bytes"`
}

// Manifest describes one persisted build.
type Manifest struct {
	// BuildID uniquely identifies the build.
	BuildID string `json:"build_id"`

	// CreatedAt is when the build was persisted.
	CreatedAt time.Time `json:"created_at"`

	// EntityCount is the corpus size at persist time.
	EntityCount int `json:"entity_count"`

	// ConnectionCount is the total edge count in the graph.
	ConnectionCount int `json:"connection_count"`

	// ClusterCount is the number of semantic clusters.
	ClusterCount int `json:"cluster_count"`

	// Files maps artifact file name to its integrity record.
	Files map[string]FileInfo `json:"files"`
}

// Store persists builds to a directory.
type Store struct {
	baseDir string
	mu      sync.Mutex
	log     zerolog.Logger
}

// NewStore creates an artifact store rooted at baseDir, creating the
// directory if needed.
func NewStore(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o750); err != nil {
		return nil, fmt.Errorf("create artifact directory: %w", err)
	}
	return &Store{
		baseDir: baseDir,
		log:     logging.With().Str("component", "artifacts").Logger(),
	}, nil
}

// Write persists a build. Every artifact is staged and renamed before the
// manifest is written, so a partially written build is never observable.
func (s *Store) Write(ctx context.Context, b *Build) (*Manifest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("artifact write canceled: %w", err)
	}

	manifest := &Manifest{
		BuildID:     uuid.NewString(),
		CreatedAt:   time.Now().UTC(),
		EntityCount: len(b.Corpus),
		Files:       make(map[string]FileInfo),
	}
	if b.Graph != nil {
		for _, byCat := range b.Graph.Entities {
			for _, conns := range byCat {
				manifest.ConnectionCount += len(conns)
			}
		}
		manifest.ClusterCount = len(b.Graph.Clusters)
	}

	files := []struct {
		name  string
		value any
	}{
		{FileCorpus, b.Corpus},
		{FileGraph, b.Graph},
		{FileIndex, b.Index},
		{FileRecommendations, b.Recommendations},
	}
	for _, f := range files {
		info, err := s.writeArtifact(f.name, f.value)
		if err != nil {
			return nil, fmt.Errorf("write %s: %w", f.name, err)
		}
		manifest.Files[f.name] = info
	}

	if err := s.writeManifest(manifest); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("build_id", manifest.BuildID).
		Int("entities", manifest.EntityCount).
		Int("connections", manifest.ConnectionCount).
		Msg("artifacts persisted")

	return manifest, nil
}

// writeArtifact marshals, compresses, and atomically installs one artifact.
func (s *Store) writeArtifact(name string, value any) (FileInfo, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return FileInfo{}, fmt.Errorf("marshal: %w", err)
	}

	hash := sha256.Sum256(raw)

	var compressed bytes.Buffer
	gzw := gzip.NewWriter(&compressed)
	if _, err := gzw.Write(raw); err != nil {
		return FileInfo{}, fmt.Errorf("compress: %w", err)
	}
	if err := gzw.Close(); err != nil {
		return FileInfo{}, fmt.Errorf("finalize compression: %w", err)
	}

	if err := s.atomicWrite(name, compressed.Bytes()); err != nil {
		return FileInfo{}, err
	}

	return FileInfo{
		Checksum:  hex.EncodeToString(hash[:]),
		SizeBytes: int64(compressed.Len()),
	}, nil
}

// writeManifest atomically installs the manifest, completing the build.
func (s *Store) writeManifest(m *Manifest) error {
	raw, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := s.atomicWrite(FileManifest, raw); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// atomicWrite stages data under a temporary name in the store directory and
// renames it into place.
func (s *Store) atomicWrite(name string, data []byte) error {
	tmp, err := os.CreateTemp(s.baseDir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, filepath.Join(s.baseDir, name)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("install %s: %w", name, err)
	}
	return nil
}

// Manifest reads the store's current manifest, or an error when no complete
// build exists.
func (s *Store) Manifest() (*Manifest, error) {
	raw, err := os.ReadFile(filepath.Join(s.baseDir, FileManifest)) //nolint:gosec // path rooted at operator-configured baseDir
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return &m, nil
}

// Read loads one artifact into target, verifying its checksum against the
// manifest.
func (s *Store) Read(name string, target any) error {
	m, err := s.Manifest()
	if err != nil {
		return err
	}
	info, ok := m.Files[name]
	if !ok {
		return fmt.Errorf("artifact %s not in manifest", name)
	}

	f, err := os.Open(filepath.Join(s.baseDir, name)) //nolint:gosec // path rooted at operator-configured baseDir
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	gzr, err := gzip.NewReader(f)
	if err != nil {
		return fmt.Errorf("decompress %s: %w", name, err)
	}
	defer func() { _ = gzr.Close() }()

	raw, err := io.ReadAll(gzr)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	hash := sha256.Sum256(raw)
	if got := hex.EncodeToString(hash[:]); got != info.Checksum {
		return fmt.Errorf("checksum mismatch for %s: expected %s, got %s", name, info.Checksum, got)
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}
