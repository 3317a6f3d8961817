// CineGraph - Entity Relationship Intelligence Engine
// Copyright 2026 CineGraph contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinegraph/cinegraph

package artifacts

import (
	"context"
	"errors"
	"testing"
	"time"
)

func openTestHistory(t *testing.T) *History {
	t.Helper()
	h, err := OpenHistory(t.TempDir())
	if err != nil {
		t.Fatalf("OpenHistory: %v", err)
	}
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func TestHistoryRecordAndGet(t *testing.T) {
	h := openTestHistory(t)
	ctx := context.Background()

	m := &Manifest{
		BuildID:     "build-1",
		CreatedAt:   time.Now().UTC(),
		EntityCount: 10,
	}
	if err := h.Record(ctx, m); err != nil {
		t.Fatalf("Record: %v", err)
	}

	got, err := h.Get(ctx, "build-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.EntityCount != 10 {
		t.Errorf("EntityCount = %d, want 10", got.EntityCount)
	}
}

func TestHistoryLatest(t *testing.T) {
	h := openTestHistory(t)
	ctx := context.Background()

	for i, id := range []string{"build-1", "build-2"} {
		m := &Manifest{BuildID: id, CreatedAt: time.Now().UTC().Add(time.Duration(i) * time.Second)}
		if err := h.Record(ctx, m); err != nil {
			t.Fatalf("Record %s: %v", id, err)
		}
	}

	latest, err := h.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest.BuildID != "build-2" {
		t.Errorf("latest = %s, want build-2", latest.BuildID)
	}
}

func TestHistoryGetUnknownBuild(t *testing.T) {
	h := openTestHistory(t)

	_, err := h.Get(context.Background(), "missing")
	if !errors.Is(err, ErrBuildNotFound) {
		t.Errorf("err = %v, want ErrBuildNotFound", err)
	}
}

func TestHistoryList(t *testing.T) {
	h := openTestHistory(t)
	ctx := context.Background()

	base := time.Now().UTC()
	for i, id := range []string{"build-a", "build-b", "build-c"} {
		m := &Manifest{BuildID: id, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		if err := h.Record(ctx, m); err != nil {
			t.Fatalf("Record %s: %v", id, err)
		}
	}

	list, err := h.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("list length = %d, want 3", len(list))
	}
	if list[0].BuildID != "build-c" {
		t.Errorf("newest first: got %s", list[0].BuildID)
	}
}

func TestHistoryEmptyLatest(t *testing.T) {
	h := openTestHistory(t)

	_, err := h.Latest(context.Background())
	if !errors.Is(err, ErrBuildNotFound) {
		t.Errorf("err = %v, want ErrBuildNotFound", err)
	}
}
