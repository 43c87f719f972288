// Copyright (c) 2026 OtakuHaven. All rights reserved.
// Author: dev@otakuhaven.app

// Command otaku is the terminal surface of the OtakuHaven account store.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables (and .env).
//  3. Open the key-value storage backend selected by STORAGE_DRIVER.
//  4. Wire the account repository, session controller, and library services.
//  5. Restore any persisted session.
//  6. Dispatch the requested subcommand.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/otakuhaven/otakuhaven/internal/catalog"
	"github.com/otakuhaven/otakuhaven/internal/library/favorites"
	"github.com/otakuhaven/otakuhaven/internal/library/history"
	"github.com/otakuhaven/otakuhaven/internal/platform/config"
	"github.com/otakuhaven/otakuhaven/internal/platform/constants"
	"github.com/otakuhaven/otakuhaven/internal/platform/storage"
	"github.com/otakuhaven/otakuhaven/internal/users/account"
	"github.com/otakuhaven/otakuhaven/internal/users/session"
)

// app bundles the wired components every subcommand works against.
type app struct {
	cfg       *config.Config
	log       *slog.Logger
	sessions  *session.Controller
	accounts  *account.Repository
	favorites *favorites.Service
	history   *history.Service
	catalog   *catalog.Client
	cleanup   func()
}

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newRootCommand builds the full command tree with shared wiring.
func newRootCommand() *cobra.Command {
	application := &app{}

	root := &cobra.Command{
		Use:           "otaku",
		Short:         "OtakuHaven — local account, favorites, and watch-history store",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return application.wire(cmd.Context())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if application.cleanup != nil {
				application.cleanup()
			}
		},
	}

	root.AddCommand(
		newRegisterCommand(application),
		newLoginCommand(application),
		newLogoutCommand(application),
		newWhoamiCommand(application),
		newFavCommand(application),
		newHistoryCommand(application),
		newSearchCommand(application),
		newTrendingCommand(application),
		newDiscoverCommand(application),
	)

	return root
}

// wire builds the dependency graph exactly once per invocation.
func (a *app) wire(ctx context.Context) error {

	// Logger first so later startup errors are structured.
	rawLog := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	a.log = rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(a.log)

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.Debug {
		a.log = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})).With(slog.String("app", constants.AppName))
		slog.SetDefault(a.log)
	}

	adapter, cleanup, err := openStorage(ctx, cfg, a.log)
	if err != nil {
		return err
	}
	a.cleanup = cleanup

	a.accounts = account.NewRepository(account.NewKVCollectionStore(adapter))
	a.sessions = session.NewController(a.accounts, adapter, cfg.AuthLatency, a.log)
	a.favorites = favorites.NewService(a.sessions, a.accounts)
	a.history = history.NewService(a.sessions, a.accounts)
	a.catalog = catalog.NewClient(cfg.CatalogBaseURL, cfg.CatalogAPIKey, a.log)

	// Re-enter any session persisted by a previous run.
	a.sessions.Restore(ctx)

	return nil
}

// openStorage selects and initializes the configured storage backend.
func openStorage(ctx context.Context, cfg *config.Config, log *slog.Logger) (storage.Adapter, func(), error) {
	switch cfg.StorageDriver {

	case config.DriverMemory:
		return storage.NewMemory(), func() {}, nil

	case config.DriverFile:
		return storage.NewFile(cfg.StoragePath, log), func() {}, nil

	case config.DriverRedis:
		startupCtx, cancel := context.WithTimeout(ctx, constants.StartupTimeout)
		defer cancel()

		client, err := storage.NewRedisClient(startupCtx, cfg.RedisURL, log)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewRedis(client), func() { _ = client.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
