// Copyright (c) 2026 OtakuHaven. All rights reserved.
// Author: dev@otakuhaven.app

package storage_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otakuhaven/otakuhaven/internal/platform/storage"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/*
TestMemory_RoundTrip verifies the basic get/set/remove cycle of the
in-memory adapter, including the absent-key sentinel.
*/
func TestMemory_RoundTrip(t *testing.T) {
	ctx := context.Background()
	adapter := storage.NewMemory()

	// 1. Absent key
	_, err := adapter.Get(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrAbsent)

	// 2. Set and get
	require.NoError(t, adapter.Set(ctx, "greeting", "hello"))
	value, err := adapter.Get(ctx, "greeting")
	require.NoError(t, err)
	assert.Equal(t, "hello", value)

	// 3. Overwrite
	require.NoError(t, adapter.Set(ctx, "greeting", "konnichiwa"))
	value, err = adapter.Get(ctx, "greeting")
	require.NoError(t, err)
	assert.Equal(t, "konnichiwa", value)

	// 4. Remove is idempotent
	require.NoError(t, adapter.Remove(ctx, "greeting"))
	require.NoError(t, adapter.Remove(ctx, "greeting"))
	_, err = adapter.Get(ctx, "greeting")
	assert.ErrorIs(t, err, storage.ErrAbsent)
}

/*
TestFile_RoundTrip verifies that the file adapter persists values across
adapter instances (simulating a process restart).
*/
func TestFile_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store", "otakuhaven.json")

	first := storage.NewFile(path, discardLogger())
	require.NoError(t, first.Set(ctx, "otaku_users", `[]`))
	require.NoError(t, first.Set(ctx, "otaku_user", `{"id":"u1"}`))

	// A fresh adapter over the same path sees the same document.
	second := storage.NewFile(path, discardLogger())

	value, err := second.Get(ctx, "otaku_users")
	require.NoError(t, err)
	assert.Equal(t, `[]`, value)

	value, err = second.Get(ctx, "otaku_user")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"u1"}`, value)

	// Removing one key leaves the other intact.
	require.NoError(t, second.Remove(ctx, "otaku_user"))
	_, err = second.Get(ctx, "otaku_user")
	assert.ErrorIs(t, err, storage.ErrAbsent)

	value, err = second.Get(ctx, "otaku_users")
	require.NoError(t, err)
	assert.Equal(t, `[]`, value)
}

/*
TestFile_CorruptedDocument verifies that an unparsable document on disk is
treated as empty instead of failing the process.
*/
func TestFile_CorruptedDocument(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "otakuhaven.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	adapter := storage.NewFile(path, discardLogger())

	// 1. Reads see an empty document
	_, err := adapter.Get(ctx, "otaku_users")
	assert.ErrorIs(t, err, storage.ErrAbsent)

	// 2. The document is usable again after the first write
	require.NoError(t, adapter.Set(ctx, "otaku_users", `[]`))
	value, err := adapter.Get(ctx, "otaku_users")
	require.NoError(t, err)
	assert.Equal(t, `[]`, value)
}

/*
TestFile_MissingFile verifies that a nonexistent document behaves as empty.
*/
func TestFile_MissingFile(t *testing.T) {
	ctx := context.Background()
	adapter := storage.NewFile(filepath.Join(t.TempDir(), "nope.json"), discardLogger())

	_, err := adapter.Get(ctx, "anything")
	assert.ErrorIs(t, err, storage.ErrAbsent)

	require.NoError(t, adapter.Remove(ctx, "anything"))
}
