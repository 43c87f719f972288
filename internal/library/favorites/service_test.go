// Copyright (c) 2026 OtakuHaven. All rights reserved.
// Author: dev@otakuhaven.app

package favorites_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otakuhaven/otakuhaven/internal/catalog"
	"github.com/otakuhaven/otakuhaven/internal/library/favorites"
	"github.com/otakuhaven/otakuhaven/internal/platform/storage"
	"github.com/otakuhaven/otakuhaven/internal/users/account"
	"github.com/otakuhaven/otakuhaven/internal/users/session"
)

type fixture struct {
	service    *favorites.Service
	sessions   *session.Controller
	repository *account.Repository
}

func newFixture(t *testing.T, signIn bool) fixture {
	t.Helper()
	adapter := storage.NewMemory()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	repository := account.NewRepository(account.NewKVCollectionStore(adapter))
	sessions := session.NewController(repository, adapter, 0, log)

	if signIn {
		_, err := sessions.Register(context.Background(), account.RegisterInput{
			Username: "demo", Secret: "demo123", Email: "demo@x.com",
		})
		require.NoError(t, err)
	}

	return fixture{
		service:    favorites.NewService(sessions, repository),
		sessions:   sessions,
		repository: repository,
	}
}

/*
TestFavorites_AddIsIdempotent covers scenario 4: adding the same item twice
changes state once.
*/
func TestFavorites_AddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	item := catalog.Item{ID: "m1", Title: "Akira"}

	// 1. First add changes the ledger
	changed, err := f.service.Add(ctx, item)
	require.NoError(t, err)
	assert.True(t, changed)

	// 2. Second add is a no-op
	changed, err = f.service.Add(ctx, item)
	require.NoError(t, err)
	assert.False(t, changed)

	assert.Len(t, f.sessions.Current().Favorites, 1)
	assert.True(t, f.service.Contains("m1"))
}

/*
TestFavorites_NoSession verifies every operation degrades to a no-op when
nobody is signed in.
*/
func TestFavorites_NoSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	changed, err := f.service.Add(ctx, catalog.Item{ID: "m1"})
	require.NoError(t, err)
	assert.False(t, changed)

	ok, err := f.service.Remove(ctx, "m1")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.False(t, f.service.Contains("m1"))
	assert.Nil(t, f.service.List())
}

/*
TestFavorites_RemoveAbsentStillSucceeds pins the resolved open question:
removing an item that was never marked reports success, because the ledger
ends in the requested state either way.
*/
func TestFavorites_RemoveAbsentStillSucceeds(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)

	// 1. Absent ID: idempotent success
	ok, err := f.service.Remove(ctx, "never-added")
	require.NoError(t, err)
	assert.True(t, ok)

	// 2. Present ID: removed for real
	_, err = f.service.Add(ctx, catalog.Item{ID: "m1", Title: "Akira"})
	require.NoError(t, err)

	ok, err = f.service.Remove(ctx, "m1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, f.service.Contains("m1"))
	assert.Empty(t, f.sessions.Current().Favorites)
}

/*
TestFavorites_SessionProjection verifies the core invariant: after any
mutation, the session's ledger equals the repository's stored value.
*/
func TestFavorites_SessionProjection(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)

	_, err := f.service.Add(ctx, catalog.Item{ID: "m1", Title: "Akira"})
	require.NoError(t, err)
	_, err = f.service.Add(ctx, catalog.Item{ID: "m2", Title: "Your Name"})
	require.NoError(t, err)
	_, err = f.service.Remove(ctx, "m1")
	require.NoError(t, err)

	active := f.sessions.Current()
	stored, err := f.repository.FindByID(ctx, active.ID)
	require.NoError(t, err)

	assert.Equal(t, stored.Favorites, active.Favorites)
	require.Len(t, active.Favorites, 1)
	assert.Equal(t, "m2", active.Favorites[0].Item.ID)
}

/*
TestFavorites_InsertionOrderPreserved verifies display ordering: favorites
list in the order they were added.
*/
func TestFavorites_InsertionOrderPreserved(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)

	for _, id := range []string{"m3", "m1", "m2"} {
		_, err := f.service.Add(ctx, catalog.Item{ID: id})
		require.NoError(t, err)
	}

	marked := f.service.List()
	require.Len(t, marked, 3)
	assert.Equal(t, "m3", marked[0].Item.ID)
	assert.Equal(t, "m1", marked[1].Item.ID)
	assert.Equal(t, "m2", marked[2].Item.ID)
}
