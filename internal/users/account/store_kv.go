// Copyright (c) 2026 OtakuHaven. All rights reserved.
// Author: dev@otakuhaven.app

package account

import (
	stdctx "context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/otakuhaven/otakuhaven/internal/platform/apperr"
	"github.com/otakuhaven/otakuhaven/internal/platform/constants"
	"github.com/otakuhaven/otakuhaven/internal/platform/ctxutil"
	"github.com/otakuhaven/otakuhaven/internal/platform/storage"
)

// KVCollectionStore implements [CollectionStore] over the key-value
// persistence boundary, serializing the collection as one JSON array under
// [constants.StorageKeyAccounts].
type KVCollectionStore struct {
	adapter storage.Adapter
}

// NewKVCollectionStore creates a collection store over the given adapter.
func NewKVCollectionStore(adapter storage.Adapter) *KVCollectionStore {
	return &KVCollectionStore{adapter: adapter}
}

/*
Load returns the persisted account collection.

Description: An absent key yields an empty collection. A corrupted payload is
logged and also yields an empty collection — corruption is recovered locally,
never propagated (losing local accounts is a safe reset, a crash loop is not).

Parameters:
  - context: context.Context

Returns:
  - []Account: Hydrated collection
  - error: Medium failures only
*/
func (store *KVCollectionStore) Load(context stdctx.Context) ([]Account, error) {

	raw, err := store.adapter.Get(context, constants.StorageKeyAccounts)
	if errors.Is(err, storage.ErrAbsent) {
		return []Account{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("account_store_load_failed: %w", err)
	}

	var accounts []Account
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		// Recovery: treat the key as absent and start over empty.
		corrupted := apperr.StorageCorrupted(err)
		ctxutil.GetLogger(context).Warn("account_collection_corrupted_reset",
			slog.String("key", constants.StorageKeyAccounts),
			slog.String("error", corrupted.Cause.Error()),
		)
		return []Account{}, nil
	}

	return accounts, nil
}

/*
Save replaces the persisted account collection.

Parameters:
  - context: context.Context
  - accounts: []Account

Returns:
  - error: Serialization or medium failures
*/
func (store *KVCollectionStore) Save(context stdctx.Context, accounts []Account) error {

	raw, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("account_store_encode_failed: %w", err)
	}

	if err := store.adapter.Set(context, constants.StorageKeyAccounts, string(raw)); err != nil {
		return fmt.Errorf("account_store_save_failed: %w", err)
	}

	return nil
}
