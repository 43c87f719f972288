// Copyright (c) 2026 OtakuHaven. All rights reserved.
// Author: dev@otakuhaven.app

/*
Package session implements the "currently signed in" view of an account.

A Session is a secret-stripped projection of exactly one Account. It exists
only while someone is authenticated, is persisted separately from the account
collection so it survives a restart without re-authenticating, and is
destroyed by logout.

# Architecture

The Controller is an explicit instance handed to consumers by constructor
injection — there is deliberately no package-level "current user" global.
*/
package session

import (
	"time"

	"github.com/otakuhaven/otakuhaven/internal/users/account"
)

// # Domain Entities

// Session is the secret-stripped projection of the authenticated account.
//
// The type structurally cannot leak credential material: it has no secret
// field to begin with, so no serialization path can expose one.
type Session struct {
	ID           string               `json:"id"`
	Username     string               `json:"username"`
	Email        string               `json:"email"`
	Favorites    []account.Favorite   `json:"favorites"`
	WatchHistory []account.WatchEvent `json:"watch_history"`
	CreatedAt    time.Time            `json:"created_at"`
}

// Project builds the Session view of an account, dropping the secret hash.
func Project(source *account.Account) *Session {
	return &Session{
		ID:           source.ID,
		Username:     source.Username,
		Email:        source.Email,
		Favorites:    source.Favorites,
		WatchHistory: source.WatchHistory,
		CreatedAt:    source.CreatedAt,
	}
}

// Partial carries a favorites and/or watch-history replacement for
// [Controller.Refresh]. A nil slice means "leave this field unchanged".
type Partial struct {
	Favorites    []account.Favorite
	WatchHistory []account.WatchEvent
}
