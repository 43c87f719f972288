// Copyright (c) 2026 OtakuHaven. All rights reserved.
// Author: dev@otakuhaven.app

// Package ctxkey defines typed context keys used across the application.
//
// # Safety
//
// Using a private, unexported type for keys prevents collisions with
// third-party packages that might also use context for storage.
package ctxkey

// key is an unexported type used for context keys to ensure type safety.
//
// # Collision Prevention
//
// Even if another package uses "logger" as a string key, it will not collide
// with this key type because Go's [context.Context] uses both the value AND
// the type for lookups.
type key string

const (
	// KeyLogger is the context key for the per-operation [*log/slog.Logger].
	KeyLogger key = "logger"

	// KeyOperationID is the context key for the operation correlation value.
	KeyOperationID key = "operation_id"
)
