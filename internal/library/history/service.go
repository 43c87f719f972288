// Copyright (c) 2026 OtakuHaven. All rights reserved.
// Author: dev@otakuhaven.app

/*
Package history maintains the active account's watch-history log.

The log is bounded and recency-ordered: newest event first, at most
[account.WatchHistoryCap] entries, unique by (item ID, episode) — rewatching
something moves it to the front instead of duplicating it.
*/
package history

import (
	stdctx "context"
	"fmt"
	"time"

	"github.com/otakuhaven/otakuhaven/internal/catalog"
	"github.com/otakuhaven/otakuhaven/internal/users/account"
	"github.com/otakuhaven/otakuhaven/internal/users/session"
	"github.com/otakuhaven/otakuhaven/pkg/slice"
)

// Service implements the watch-history use cases for the active session.
type Service struct {
	sessions *session.Controller
	accounts *account.Repository
}

// NewService constructs a watch-history [Service].
func NewService(sessions *session.Controller, accounts *account.Repository) *Service {
	return &Service{sessions: sessions, accounts: accounts}
}

// # Operations

/*
Record logs a watch event for the active account.

Description: A no-op returning false when no session is active. Any prior
entry with the same (item ID, episode) key is removed, the new event is
inserted at the front, the log is truncated to the cap, and the result is
persisted and mirrored into the session view.

Parameters:
  - context: context.Context
  - item: catalog.Item
  - episode: string (empty for movies)

Returns:
  - bool: Whether the log changed
  - error: Persistence failures
*/
func (service *Service) Record(context stdctx.Context, item catalog.Item, episode string) (bool, error) {

	active := service.sessions.Current()
	if active == nil {
		return false, nil
	}

	event := account.WatchEvent{
		Item:      item,
		Episode:   episode,
		WatchedAt: time.Now().UTC(),
	}

	// Dedup: drop any prior entry with the same (item, episode) key.
	kept := slice.Filter(active.WatchHistory, func(e account.WatchEvent) bool {
		return e.Key() != event.Key()
	})

	updated := make([]account.WatchEvent, 0, len(kept)+1)
	updated = append(updated, event)
	updated = append(updated, kept...)

	// Bounded log: newest first, oldest evicted beyond the cap.
	if len(updated) > account.WatchHistoryCap {
		updated = updated[:account.WatchHistoryCap]
	}

	if err := service.accounts.UpdateWatchHistory(context, active.ID, updated); err != nil {
		return false, fmt.Errorf("history_record_failed: %w", err)
	}
	if err := service.sessions.Refresh(context, session.Partial{WatchHistory: updated}); err != nil {
		return false, fmt.Errorf("history_refresh_failed: %w", err)
	}

	return true, nil
}

/*
List returns the active session's watch history, newest first.

Returns:
  - []account.WatchEvent: Log snapshot (nil when unauthenticated)
*/
func (service *Service) List() []account.WatchEvent {

	active := service.sessions.Current()
	if active == nil {
		return nil
	}

	return active.WatchHistory
}
