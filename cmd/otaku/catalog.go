// Copyright (c) 2026 OtakuHaven. All rights reserved.
// Author: dev@otakuhaven.app

package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/otakuhaven/otakuhaven/internal/catalog"
	"github.com/otakuhaven/otakuhaven/pkg/slice"
)

// # Catalog Commands

func newSearchCommand(application *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query...>",
		Short: "Search the remote catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := application.catalog.Search(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			return printItems(items)
		},
	}
}

func newTrendingCommand(application *app) *cobra.Command {
	var window string

	cmd := &cobra.Command{
		Use:   "trending",
		Short: "Show trending titles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := application.catalog.Trending(cmd.Context(), window)
			if err != nil {
				return err
			}
			return printItems(items)
		},
	}

	cmd.Flags().StringVarP(&window, "window", "w", "day", `time window: "day" or "week"`)
	return cmd
}

func newDiscoverCommand(application *app) *cobra.Command {
	var genreID int

	cmd := &cobra.Command{
		Use:   "discover <provider>",
		Short: "Browse titles available on a streaming platform",
		Long: "Browse titles available on a streaming platform.\n\nProviders: " +
			providerKeys(),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, ok := catalog.ProviderByKey(args[0])
			if !ok {
				return fmt.Errorf("unknown provider %q (known: %s)", args[0], providerKeys())
			}

			items, err := application.catalog.Discover(cmd.Context(), provider.ProviderID, genreID)
			if err != nil {
				return err
			}
			return printItems(items)
		},
	}

	cmd.Flags().IntVarP(&genreID, "genre", "g", 0, "genre ID filter (0 = all)")
	return cmd
}

// printItems renders catalog results as an aligned table.
func printItems(items []catalog.Item) error {
	if len(items) == 0 {
		fmt.Println("No results.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tYEAR\tRATING")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.1f\n", item.ID, item.Title, item.Year, item.Rating)
	}
	return w.Flush()
}

// providerKeys joins the known provider keys for help output.
func providerKeys() string {
	keys := slice.Map(catalog.Providers(), func(p catalog.Provider) string {
		return p.Key
	})
	return strings.Join(keys, ", ")
}
