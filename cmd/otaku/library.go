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
)

// # Library Commands

func newFavCommand(application *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fav",
		Short: "Manage the favorites of the active account",
	}

	addCmd := &cobra.Command{
		Use:   "add <query...>",
		Short: "Search the catalog and favorite the best match",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := firstMatch(cmd, application, strings.Join(args, " "))
			if err != nil {
				return err
			}

			changed, err := application.favorites.Add(cmd.Context(), item)
			if err != nil {
				return err
			}
			if !changed {
				fmt.Printf("%q is already a favorite (or no session is active).\n", item.Title)
				return nil
			}
			fmt.Printf("Added %q to favorites.\n", item.Title)
			return nil
		},
	}

	removeCmd := &cobra.Command{
		Use:   "rm <item-id>",
		Short: "Remove a favorite by item ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := application.favorites.Remove(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Not signed in.")
				return nil
			}
			fmt.Println("Removed.")
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "ls",
		Short: "List favorites in the order they were added",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			marked := application.favorites.List()
			if len(marked) == 0 {
				fmt.Println("No favorites yet.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tYEAR\tADDED")
			for _, favorite := range marked {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
					favorite.Item.ID, favorite.Item.Title, favorite.Item.Year,
					favorite.AddedAt.Format("2006-01-02"))
			}
			return w.Flush()
		},
	}

	cmd.AddCommand(addCmd, removeCmd, listCmd)
	return cmd
}

func newHistoryCommand(application *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage the watch history of the active account",
	}

	var episode string
	addCmd := &cobra.Command{
		Use:   "add <query...>",
		Short: "Record a watch event for the best catalog match",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := firstMatch(cmd, application, strings.Join(args, " "))
			if err != nil {
				return err
			}

			changed, err := application.history.Record(cmd.Context(), item, episode)
			if err != nil {
				return err
			}
			if !changed {
				fmt.Println("Not signed in.")
				return nil
			}
			if episode != "" {
				fmt.Printf("Recorded %q episode %s.\n", item.Title, episode)
			} else {
				fmt.Printf("Recorded %q.\n", item.Title)
			}
			return nil
		},
	}
	addCmd.Flags().StringVar(&episode, "episode", "", "episode marker (empty for movies)")

	listCmd := &cobra.Command{
		Use:   "ls",
		Short: "List watch history, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			events := application.history.List()
			if len(events) == 0 {
				fmt.Println("No watch history yet.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tEPISODE\tWATCHED")
			for _, event := range events {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					event.Item.ID, event.Item.Title, event.Episode,
					event.WatchedAt.Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}

	cmd.AddCommand(addCmd, listCmd)
	return cmd
}

// firstMatch searches the catalog and returns the top result.
func firstMatch(cmd *cobra.Command, application *app, query string) (catalog.Item, error) {
	results, err := application.catalog.Search(cmd.Context(), query)
	if err != nil {
		return catalog.Item{}, err
	}
	if len(results) == 0 {
		return catalog.Item{}, fmt.Errorf("no catalog match for %q", query)
	}
	return results[0], nil
}
