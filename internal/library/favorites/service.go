// Copyright (c) 2026 OtakuHaven. All rights reserved.
// Author: dev@otakuhaven.app

/*
Package favorites mutates the active account's favorites ledger.

Every mutation reads the active session from the session controller,
delegates the durable change to the account repository, and then refreshes
the session view so the two never drift apart.
*/
package favorites

import (
	stdctx "context"
	"fmt"
	"time"

	"github.com/otakuhaven/otakuhaven/internal/catalog"
	"github.com/otakuhaven/otakuhaven/internal/users/account"
	"github.com/otakuhaven/otakuhaven/internal/users/session"
	"github.com/otakuhaven/otakuhaven/pkg/slice"
)

// Service implements the favorites use cases for the active session.
type Service struct {
	sessions *session.Controller
	accounts *account.Repository
}

// NewService constructs a favorites [Service].
func NewService(sessions *session.Controller, accounts *account.Repository) *Service {
	return &Service{sessions: sessions, accounts: accounts}
}

// # Operations

/*
Add marks a catalog item as a favorite of the active account.

Description: A no-op returning false when no session is active or the item is
already marked — adding twice changes state once. Otherwise the item is
appended with the current timestamp, persisted, and the session refreshed.

Parameters:
  - context: context.Context
  - item: catalog.Item

Returns:
  - bool: Whether the ledger changed
  - error: Persistence failures
*/
func (service *Service) Add(context stdctx.Context, item catalog.Item) (bool, error) {

	active := service.sessions.Current()
	if active == nil {
		return false, nil
	}

	// Uniqueness by item ID is the ledger's one semantic invariant.
	already := slice.Contains(active.Favorites, func(f account.Favorite) bool {
		return f.Item.ID == item.ID
	})
	if already {
		return false, nil
	}

	updated := make([]account.Favorite, 0, len(active.Favorites)+1)
	updated = append(updated, active.Favorites...)
	updated = append(updated, account.Favorite{Item: item, AddedAt: time.Now().UTC()})

	if err := service.accounts.UpdateFavorites(context, active.ID, updated); err != nil {
		return false, fmt.Errorf("favorites_add_failed: %w", err)
	}
	if err := service.sessions.Refresh(context, session.Partial{Favorites: updated}); err != nil {
		return false, fmt.Errorf("favorites_refresh_failed: %w", err)
	}

	return true, nil
}

/*
Remove unmarks the favorite with the given item ID.

Description: Removing an ID that was never marked still reports success —
the operation is idempotent by design (the ledger ends in the requested
state either way). Returns false only when no session is active.

Parameters:
  - context: context.Context
  - itemID: string

Returns:
  - bool: Whether a session was active
  - error: Persistence failures
*/
func (service *Service) Remove(context stdctx.Context, itemID string) (bool, error) {

	active := service.sessions.Current()
	if active == nil {
		return false, nil
	}

	updated := slice.Filter(active.Favorites, func(f account.Favorite) bool {
		return f.Item.ID != itemID
	})
	if updated == nil {
		updated = []account.Favorite{}
	}

	if err := service.accounts.UpdateFavorites(context, active.ID, updated); err != nil {
		return false, fmt.Errorf("favorites_remove_failed: %w", err)
	}
	if err := service.sessions.Refresh(context, session.Partial{Favorites: updated}); err != nil {
		return false, fmt.Errorf("favorites_refresh_failed: %w", err)
	}

	return true, nil
}

/*
Contains reports whether the active session has the item marked.

Description: Pure in-memory lookup against the session view — no persistence
access, safe to call per rendered card.

Parameters:
  - itemID: string

Returns:
  - bool: Presence in the active session's ledger (false when unauthenticated)
*/
func (service *Service) Contains(itemID string) bool {

	active := service.sessions.Current()
	if active == nil {
		return false
	}

	return slice.Contains(active.Favorites, func(f account.Favorite) bool {
		return f.Item.ID == itemID
	})
}

/*
List returns the active session's favorites in insertion order.

Returns:
  - []account.Favorite: Ledger snapshot (nil when unauthenticated)
*/
func (service *Service) List() []account.Favorite {

	active := service.sessions.Current()
	if active == nil {
		return nil
	}

	return active.Favorites
}
