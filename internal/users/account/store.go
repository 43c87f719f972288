// Copyright (c) 2026 OtakuHaven. All rights reserved.
// Author: dev@otakuhaven.app

package account

import "context"

// # Collection Data Access

// CollectionStore defines the data access contract for the account collection.
//
// The medium offers no finer primitive than whole-collection replacement, so
// the contract mirrors that honestly: callers load everything, mutate in
// memory, and save everything back.
type CollectionStore interface {

	/*
		Load returns the entire persisted account collection.

		An absent or unreadable collection yields an empty slice, never an
		error: empty state is the safe default in this domain.

		Parameters:
		  - context: context.Context

		Returns:
		  - []Account: Hydrated collection (possibly empty)
		  - error: Medium failures only
	*/
	Load(context context.Context) ([]Account, error)

	/*
		Save replaces the entire persisted account collection.

		Parameters:
		  - context: context.Context
		  - accounts: []Account

		Returns:
		  - error: Serialization or medium failures
	*/
	Save(context context.Context, accounts []Account) error
}
