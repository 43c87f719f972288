// Copyright (c) 2026 OtakuHaven. All rights reserved.
// Author: dev@otakuhaven.app

/*
Package constants provides centralized, immutable values for the application.

It defines the storage key taxonomy, default durations, and cross-cutting
identifiers shared between layers.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "otakuhaven"
	AppVersion = "0.1.0-dev"
)

// # Storage Keys

// The account store persists exactly two logical keys in the key-value medium.
// The names match the keys the web client has always used, so an existing
// data file keeps working across releases.
const (
	// StorageKeyAccounts holds the serialized Account collection (a JSON array).
	StorageKeyAccounts = "otaku_users"

	// StorageKeySession holds the serialized active Session projection.
	StorageKeySession = "otaku_user"
)

// # Timing

const (
	// DefaultAuthLatency is the artificial suspension applied to login and
	// register before the store is touched. It stands in for the network
	// round-trip a future remote account backend would introduce.
	DefaultAuthLatency = 1 * time.Second

	// StartupTimeout bounds storage driver initialization at process start.
	StartupTimeout = 10 * time.Second
)

// # Catalog Defaults

const (
	// CatalogBaseURL is the default metadata API root.
	CatalogBaseURL = "https://api.themoviedb.org/3"

	// CatalogImageBaseURL is the root for poster and backdrop assets.
	CatalogImageBaseURL = "https://image.tmdb.org/t/p/w500"
)
