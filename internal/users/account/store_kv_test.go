// Copyright (c) 2026 OtakuHaven. All rights reserved.
// Author: dev@otakuhaven.app

package account_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otakuhaven/otakuhaven/internal/platform/storage"
	"github.com/otakuhaven/otakuhaven/internal/users/account"
)

/*
TestKVCollectionStore_AbsentAndEmpty verifies that a missing collection key
loads as an empty collection and that an empty collection round-trips.
*/
func TestKVCollectionStore_AbsentAndEmpty(t *testing.T) {
	ctx := context.Background()
	store := account.NewKVCollectionStore(storage.NewMemory())

	// 1. Absent key
	accounts, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)

	// 2. Empty collection round-trip
	require.NoError(t, store.Save(ctx, []account.Account{}))
	accounts, err = store.Load(ctx)
	require.NoError(t, err)
	assert.NotNil(t, accounts)
	assert.Empty(t, accounts)
}

/*
TestKVCollectionStore_CorruptedPayload verifies the recovery contract: an
unparsable collection is treated as absent, never surfaced as an error.
*/
func TestKVCollectionStore_CorruptedPayload(t *testing.T) {
	ctx := context.Background()
	adapter := storage.NewMemory()
	require.NoError(t, adapter.Set(ctx, "otaku_users", "{definitely not json"))

	store := account.NewKVCollectionStore(adapter)
	accounts, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

/*
TestKVCollectionStore_LostUpdate documents the known cross-process race: two
stores sharing one medium, each running its own read-modify-write cycle, can
silently drop one writer's change. This is an accepted limitation of the
whole-collection rewrite design, not a bug to be fixed here — the test exists
so the behavior is owned, visible, and will fail loudly if someone changes it
without revisiting the design.
*/
func TestKVCollectionStore_LostUpdate(t *testing.T) {
	ctx := context.Background()
	adapter := storage.NewMemory()

	writerA := account.NewKVCollectionStore(adapter)
	writerB := account.NewKVCollectionStore(adapter)

	// Both writers read the same (empty) collection.
	seenByA, err := writerA.Load(ctx)
	require.NoError(t, err)
	seenByB, err := writerB.Load(ctx)
	require.NoError(t, err)

	// Each appends its own account and writes the whole collection back.
	seenByA = append(seenByA, account.Account{ID: "a", Username: "alice"})
	require.NoError(t, writerA.Save(ctx, seenByA))

	seenByB = append(seenByB, account.Account{ID: "b", Username: "bob"})
	require.NoError(t, writerB.Save(ctx, seenByB))

	// The last writer wins: alice's registration is gone.
	final, err := writerA.Load(ctx)
	require.NoError(t, err)
	require.Len(t, final, 1)
	assert.Equal(t, "bob", final[0].Username)
}
