// Copyright (c) 2026 OtakuHaven. All rights reserved.
// Author: dev@otakuhaven.app

package session

import (
	stdctx "context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/otakuhaven/otakuhaven/internal/platform/constants"
	"github.com/otakuhaven/otakuhaven/internal/platform/storage"
	"github.com/otakuhaven/otakuhaven/internal/users/account"
)

// # Controller

// Controller derives and persists the active session view.
//
// States: Unauthenticated (current == nil) and Authenticated. Login and
// Register move to Authenticated on success and leave the state untouched on
// failure; Logout always moves to Unauthenticated; Restore re-enters
// Authenticated from persisted state at startup.
//
// # Concurrency
//
// The in-memory view is mutex-guarded, so one process may share a Controller
// across goroutines. The persisted session key carries the same cross-process
// caveat as the account collection: last writer wins.
type Controller struct {
	mu       sync.Mutex
	accounts *account.Repository
	adapter  storage.Adapter
	latency  time.Duration
	log      *slog.Logger
	current  *Session
}

// NewController constructs a session controller.
//
// latency is the artificial suspension applied to Login and Register before
// the store is touched — the stand-in for a future remote account backend.
// Pass zero to disable (tests).
func NewController(accounts *account.Repository, adapter storage.Adapter, latency time.Duration, log *slog.Logger) *Controller {
	return &Controller{
		accounts: accounts,
		adapter:  adapter,
		latency:  latency,
		log:      log,
	}
}

// # Lifecycle

/*
Restore loads the persisted session at process start.

Description: An absent key, an unreadable medium, or an unparsable value all
yield nil — Restore never fails. A corrupted value is discarded from the
medium so the next start is clean. When the backing account still exists, the
projection is re-synchronized from it, picking up mutations made by other
processes since the session was persisted.

Parameters:
  - context: context.Context

Returns:
  - *Session: Restored session, or nil when unauthenticated
*/
func (controller *Controller) Restore(context stdctx.Context) *Session {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	raw, err := controller.adapter.Get(context, constants.StorageKeySession)
	if errors.Is(err, storage.ErrAbsent) {
		return nil
	}
	if err != nil {
		controller.log.Warn("session_restore_read_failed", slog.String("error", err.Error()))
		return nil
	}

	restored := &Session{}
	if err := json.Unmarshal([]byte(raw), restored); err != nil {
		// Discard the corrupted value; an empty session is the safe default.
		controller.log.Warn("session_state_corrupted_discarded", slog.String("error", err.Error()))
		_ = controller.adapter.Remove(context, constants.StorageKeySession)
		return nil
	}

	// Best effort re-sync against the backing account. A storage hiccup or a
	// vanished account keeps the persisted copy.
	if backing, err := controller.accounts.FindByID(context, restored.ID); err == nil {
		restored = Project(backing)
		controller.persistLocked(context, restored)
	}

	controller.current = restored
	return restored
}

/*
Login authenticates a username/secret pair and activates the session.

Description: Applies the latency boundary, delegates to the account
repository, strips the secret hash via projection, and persists the session
view. On failure neither the in-memory nor the persisted state changes.

Parameters:
  - context: context.Context
  - username: string
  - secret: string

Returns:
  - *Session: Activated session
  - error: AUTHENTICATION_FAILED or storage errors
*/
func (controller *Controller) Login(context stdctx.Context, username, secret string) (*Session, error) {
	controller.wait()

	matched, err := controller.accounts.Authenticate(context, username, secret)
	if err != nil {
		return nil, err
	}

	return controller.activate(context, matched)
}

/*
Register enrolls a new account and activates its session immediately.

Parameters:
  - context: context.Context
  - input: account.RegisterInput

Returns:
  - *Session: Activated session for the new account
  - error: Validation, duplicate-identity, or storage errors
*/
func (controller *Controller) Register(context stdctx.Context, input account.RegisterInput) (*Session, error) {
	controller.wait()

	created, err := controller.accounts.Register(context, input)
	if err != nil {
		return nil, err
	}

	return controller.activate(context, created)
}

/*
Logout clears the in-memory and persisted session state unconditionally.

Description: Idempotent — logging out while unauthenticated succeeds.

Parameters:
  - context: context.Context

Returns:
  - error: Medium failures only
*/
func (controller *Controller) Logout(context stdctx.Context) error {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	controller.current = nil
	if err := controller.adapter.Remove(context, constants.StorageKeySession); err != nil {
		return fmt.Errorf("session_logout_clear_failed: %w", err)
	}
	return nil
}

// # View Maintenance

/*
Refresh merges a partial favorites/watch-history update into the active
session without re-reading the account repository, and re-persists the view.

Description: Used by the library services after they have already pushed the
same data through the repository — invariant: the session's ledgers always
equal the backing account's after any mutation made through this subsystem.

Parameters:
  - context: context.Context
  - partial: Partial (nil slices leave the corresponding field unchanged)

Returns:
  - error: Medium failures; nil no-op when unauthenticated
*/
func (controller *Controller) Refresh(context stdctx.Context, partial Partial) error {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	if controller.current == nil {
		return nil
	}

	if partial.Favorites != nil {
		controller.current.Favorites = partial.Favorites
	}
	if partial.WatchHistory != nil {
		controller.current.WatchHistory = partial.WatchHistory
	}

	controller.persistLocked(context, controller.current)
	return nil
}

// Current returns the active session view, or nil when unauthenticated.
//
// The returned value is shared — callers must treat it as read-only and use
// Refresh for mutations.
func (controller *Controller) Current() *Session {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.current
}

// # Internals

// activate projects, persists, and installs the session for the account.
func (controller *Controller) activate(context stdctx.Context, backing *account.Account) (*Session, error) {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	activated := Project(backing)

	raw, err := json.Marshal(activated)
	if err != nil {
		return nil, fmt.Errorf("session_encode_failed: %w", err)
	}
	if err := controller.adapter.Set(context, constants.StorageKeySession, string(raw)); err != nil {
		return nil, fmt.Errorf("session_persist_failed: %w", err)
	}

	controller.current = activated
	return activated, nil
}

// persistLocked writes the session view best-effort. The in-memory view is
// authoritative within the process; a failed write only degrades restart.
func (controller *Controller) persistLocked(context stdctx.Context, view *Session) {
	raw, err := json.Marshal(view)
	if err != nil {
		controller.log.Error("session_encode_failed", slog.String("error", err.Error()))
		return
	}
	if err := controller.adapter.Set(context, constants.StorageKeySession, string(raw)); err != nil {
		controller.log.Error("session_persist_failed", slog.String("error", err.Error()))
	}
}

// wait applies the login/register latency boundary. Cancellation is not
// supported — the suspension always runs to completion.
func (controller *Controller) wait() {
	if controller.latency > 0 {
		time.Sleep(controller.latency)
	}
}
