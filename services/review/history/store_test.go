// Copyright (C) 2026 CodeMentor Authors (maintainers@codementor.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package history

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(InMemoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestAppendAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	entry := Entry{
		ID:          "run-1",
		Kind:        KindReview,
		CodeBytes:   120,
		Diagnostics: 3,
		Score:       85,
		ScoreSource: "model",
		Label:       "Excellent",
	}
	require.NoError(t, store.Append(ctx, entry))

	got, err := store.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, KindReview, got.Kind)
	assert.Equal(t, 85, got.Score)
	assert.Equal(t, "Excellent", got.Label)
	assert.False(t, got.CreatedAt.IsZero(), "Append should stamp CreatedAt")
}

func TestAppend_RequiresID(t *testing.T) {
	store := newTestStore(t)
	err := store.Append(context.Background(), Entry{Kind: KindCheck})
	assert.Error(t, err)
}

func TestGet_NotFound(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList_NewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		err := store.Append(ctx, Entry{
			ID:        fmt.Sprintf("run-%d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
			Kind:      KindCheck,
		})
		require.NoError(t, err)
	}

	entries, err := store.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "run-4", entries[0].ID)
	assert.Equal(t, "run-3", entries[1].ID)
	assert.Equal(t, "run-2", entries[2].ID)
}

func TestList_DefaultLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, Entry{ID: "only", Kind: KindRefactor}))

	entries, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "only", entries[0].ID)
}

func TestList_Empty(t *testing.T) {
	store := newTestStore(t)
	entries, err := store.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
