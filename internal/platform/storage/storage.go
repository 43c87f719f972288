// Copyright (c) 2026 OtakuHaven. All rights reserved.
// Author: dev@otakuhaven.app

/*
Package storage defines the synchronous key-value persistence boundary the
account store is built on, together with its shipped backends.

The contract is deliberately minimal: text values only, three operations,
no transactions, no atomicity across keys, no schema. Everything the account
subsystem persists travels through this boundary as a serialized string.

Backends:

  - Memory: map-backed, for tests and throwaway sessions.
  - File:   a single JSON document on disk, one field per logical key.
  - Redis:  GET/SET/DEL of string values against a Redis instance.

# Concurrency

Each backend serializes its own operations, but the boundary offers no
coordination across processes: two processes sharing the same medium can
interleave read-modify-write cycles and lose updates. That limitation is owned
and documented by the callers, not papered over here.
*/
package storage

import (
	"context"
	"errors"
)

// ErrAbsent is returned by [Adapter.Get] when the key holds no value.
var ErrAbsent = errors.New("storage: key absent")

// Adapter is the synchronous key-to-string persistence contract.
//
// Implementations must treat Remove of a missing key as a no-op and must
// return [ErrAbsent] (possibly wrapped) from Get when the key is missing,
// reserving other errors for genuine medium failures.
type Adapter interface {

	/*
		Get returns the value stored under key.

		Parameters:
		  - context: context.Context
		  - key: string

		Returns:
		  - string: Stored value
		  - error: [ErrAbsent] when the key is missing, or medium failures
	*/
	Get(context context.Context, key string) (string, error)

	/*
		Set stores value under key, replacing any previous value.

		Parameters:
		  - context: context.Context
		  - key: string
		  - value: string

		Returns:
		  - error: Medium failures
	*/
	Set(context context.Context, key string, value string) error

	/*
		Remove deletes the value stored under key. Removing a missing key
		succeeds.

		Parameters:
		  - context: context.Context
		  - key: string

		Returns:
		  - error: Medium failures
	*/
	Remove(context context.Context, key string) error
}
