// Copyright (c) 2026 OtakuHaven. All rights reserved.
// Author: dev@otakuhaven.app

/*
Package account owns the canonical collection of OtakuHaven accounts.

It defines the durable Account record with its favorites ledger and
watch-history log, and the Repository that enforces the collection's
invariants (identity uniqueness, credential hashing, bounded history)
against the key-value persistence boundary.

# Architecture

This layer is the "Truth" of the system. Every mutation is a full
read-collection, mutate-in-memory, write-collection cycle — there is no
partial update primitive in the storage medium, and no cross-process
coordination (see the lost-update note on [Repository]).
*/
package account

import (
	"time"

	"github.com/otakuhaven/otakuhaven/internal/catalog"
)

// # Invariant Constants

const (
	// MinUsernameLen is the minimum username length accepted at registration.
	MinUsernameLen = 3

	// MinSecretLen is the minimum secret length accepted at registration.
	MinSecretLen = 6

	// WatchHistoryCap is the maximum number of watch events kept per account.
	// Recording beyond the cap evicts the oldest entries.
	WatchHistoryCap = 50
)

// # Domain Entities

// Account represents a registered OtakuHaven member.
//
// Username and Email are unique (case-sensitive) across the whole collection.
// ID and CreatedAt are assigned at registration and never change.
type Account struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`

	// SecretHash is the bcrypt hash of the account secret. The cleartext
	// secret exists only transiently during register/authenticate calls.
	SecretHash string `json:"secret_hash"`

	// Favorites is the ordered ledger of marked catalog items, unique by
	// item ID, oldest mark first.
	Favorites []Favorite `json:"favorites"`

	// WatchHistory is the recency-ordered activity log, newest first,
	// capped at [WatchHistoryCap], unique by (item ID, episode).
	WatchHistory []WatchEvent `json:"watch_history"`

	CreatedAt time.Time `json:"created_at"`
}

// Favorite is a catalog item marked by the account, annotated with the
// moment it was added. Insertion order is preserved for display; uniqueness
// by item ID is the only semantic invariant.
type Favorite struct {
	catalog.Item
	AddedAt time.Time `json:"added_at"`
}

// WatchEvent is one entry of the watch-history log.
type WatchEvent struct {
	catalog.Item

	// Episode marks which episode was watched. Empty for movies.
	Episode string `json:"episode,omitempty"`

	WatchedAt time.Time `json:"watched_at"`
}

// Key returns the dedup identity of the event: recording the same
// (item, episode) pair again replaces the prior entry instead of
// duplicating it.
func (e WatchEvent) Key() string {
	return e.Item.ID + ":" + e.Episode
}

// HasFavorite reports whether the account has marked the given item.
func (a *Account) HasFavorite(itemID string) bool {
	for _, favorite := range a.Favorites {
		if favorite.Item.ID == itemID {
			return true
		}
	}
	return false
}
