// Copyright (c) 2026 OtakuHaven. All rights reserved.
// Author: dev@otakuhaven.app

package account

import (
	stdctx "context"
	"fmt"
	"time"

	"github.com/otakuhaven/otakuhaven/internal/platform/apperr"
	"github.com/otakuhaven/otakuhaven/internal/platform/sec"
	"github.com/otakuhaven/otakuhaven/internal/platform/validate"
	"github.com/otakuhaven/otakuhaven/pkg/uuid"
)

// # Repository

// Repository implements the account lifecycle use cases.
//
// # Concurrency
//
// Within one process the repository is safe to share: every operation is a
// self-contained load/mutate/save cycle. Across processes sharing the same
// storage medium there is NO coordination — two processes interleaving their
// cycles can silently lose one writer's update. That is an accepted
// limitation of the collection-rewrite design, exercised as a known scenario
// in the tests rather than hidden.
type Repository struct {
	store CollectionStore
}

// NewRepository constructs a [Repository] over the given collection store.
func NewRepository(store CollectionStore) *Repository {
	return &Repository{store: store}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Username string
	Secret   string
	Email    string
}

/*
Register validates, hashes, and persists a brand new account.

Description: Enforces input validity (username ≥ 3 chars, secret ≥ 6 chars,
well-formed email) and identity uniqueness. Uniqueness is checked username
first, then email — the first conflict wins.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *Account: Created entity
  - error: Validation, duplicate-identity, or storage errors
*/
func (repository *Repository) Register(context stdctx.Context, input RegisterInput) (*Account, error) {

	// Reject malformed input before touching the store.
	v := &validate.Validator{}
	v.Required("username", input.Username).MinLen("username", input.Username, MinUsernameLen)
	v.Required("secret", input.Secret).MinLen("secret", input.Secret, MinSecretLen)
	v.Required("email", input.Email).Email("email", input.Email)
	if err := v.Err(); err != nil {
		return nil, err
	}

	accounts, err := repository.store.Load(context)
	if err != nil {
		return nil, err
	}

	// Uniqueness, username before email: the first conflict wins.
	for _, existing := range accounts {
		if existing.Username == input.Username {
			return nil, apperr.DuplicateUsername()
		}
	}
	for _, existing := range accounts {
		if existing.Email == input.Email {
			return nil, apperr.DuplicateEmail()
		}
	}

	// Never persist the cleartext secret. Default cost balances security and
	// CPU utilization during registration spikes.
	secretHash, err := sec.HashSecret(input.Secret)
	if err != nil {
		return nil, fmt.Errorf("account_register_hash_failed: %w", err)
	}

	// Construct the new Account. Time-sortable ID; empty (non-nil) ledgers so
	// the record round-trips through JSON as [] rather than null.
	created := Account{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		SecretHash:   secretHash,
		Favorites:    []Favorite{},
		WatchHistory: []WatchEvent{},
		CreatedAt:    time.Now().UTC(),
	}

	accounts = append(accounts, created)
	if err := repository.store.Save(context, accounts); err != nil {
		return nil, fmt.Errorf("account_register_save_failed: %w", err)
	}

	return &created, nil
}

// # Authentication Flow

/*
Authenticate verifies a username/secret pair against the collection.

Description: Scans for the username, then compares the secret against the
stored bcrypt hash. The failure is a single non-specific error — it must
never reveal which of the two fields did not match.

Parameters:
  - context: context.Context
  - username: string
  - secret: string

Returns:
  - *Account: Matched entity (including the secret hash — callers strip it
    before exposing anything outward)
  - error: AUTHENTICATION_FAILED or storage errors
*/
func (repository *Repository) Authenticate(context stdctx.Context, username, secret string) (*Account, error) {

	accounts, err := repository.store.Load(context)
	if err != nil {
		return nil, err
	}

	for i := range accounts {
		if accounts[i].Username != username {
			continue
		}
		if !sec.CheckSecretHash(secret, accounts[i].SecretHash) {
			// Same error as an unknown username. No enumeration.
			return nil, apperr.AuthenticationFailed()
		}
		matched := accounts[i]
		return &matched, nil
	}

	return nil, apperr.AuthenticationFailed()
}

// # Lookup

/*
FindByID returns the account with the given ID.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Account: Hydrated entity
  - error: NOT_FOUND or storage errors
*/
func (repository *Repository) FindByID(context stdctx.Context, id string) (*Account, error) {

	accounts, err := repository.store.Load(context)
	if err != nil {
		return nil, err
	}

	for i := range accounts {
		if accounts[i].ID == id {
			matched := accounts[i]
			return &matched, nil
		}
	}

	return nil, apperr.NotFound("Account")
}

// # Library Mutations

/*
UpdateFavorites replaces the favorites ledger of the account with the given ID.

Description: Read-entire-collection, replace the field, write-entire-collection.
A missing account ID is unreachable under correct session management and is
surfaced as NOT_FOUND for the caller to treat as fatal.

Parameters:
  - context: context.Context
  - accountID: string
  - favorites: []Favorite

Returns:
  - error: NOT_FOUND or storage errors
*/
func (repository *Repository) UpdateFavorites(context stdctx.Context, accountID string, favorites []Favorite) error {
	return repository.mutate(context, accountID, func(target *Account) {
		if favorites == nil {
			favorites = []Favorite{}
		}
		target.Favorites = favorites
	})
}

/*
UpdateWatchHistory replaces the watch-history log of the account with the
given ID. The repository trusts callers to have applied the dedup and cap
rules but re-applies the cap as a final guard on the stored record.

Parameters:
  - context: context.Context
  - accountID: string
  - history: []WatchEvent

Returns:
  - error: NOT_FOUND or storage errors
*/
func (repository *Repository) UpdateWatchHistory(context stdctx.Context, accountID string, history []WatchEvent) error {
	return repository.mutate(context, accountID, func(target *Account) {
		if history == nil {
			history = []WatchEvent{}
		}
		if len(history) > WatchHistoryCap {
			history = history[:WatchHistoryCap]
		}
		target.WatchHistory = history
	})
}

// mutate runs one load/modify/save cycle against the account with the given ID.
func (repository *Repository) mutate(context stdctx.Context, accountID string, apply func(*Account)) error {

	accounts, err := repository.store.Load(context)
	if err != nil {
		return err
	}

	index := -1
	for i := range accounts {
		if accounts[i].ID == accountID {
			index = i
			break
		}
	}
	if index == -1 {
		return apperr.NotFound("Account")
	}

	apply(&accounts[index])

	if err := repository.store.Save(context, accounts); err != nil {
		return fmt.Errorf("account_mutate_save_failed: %w", err)
	}

	return nil
}
