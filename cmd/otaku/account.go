// Copyright (c) 2026 OtakuHaven. All rights reserved.
// Author: dev@otakuhaven.app

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/otakuhaven/otakuhaven/internal/users/account"
)

// # Account Commands

func newRegisterCommand(application *app) *cobra.Command {
	var email, secret string

	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Create a new account and sign in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			active, err := application.sessions.Register(cmd.Context(), account.RegisterInput{
				Username: args[0],
				Secret:   secret,
				Email:    email,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Welcome, %s! Account %s created.\n", active.Username, active.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "email address (required)")
	cmd.Flags().StringVarP(&secret, "password", "p", "", "account password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLoginCommand(application *app) *cobra.Command {
	var secret string

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Sign in with an existing account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			active, err := application.sessions.Login(cmd.Context(), args[0], secret)
			if err != nil {
				return err
			}
			fmt.Printf("Signed in as %s (%d favorites, %d history entries).\n",
				active.Username, len(active.Favorites), len(active.WatchHistory))
			return nil
		},
	}

	cmd.Flags().StringVarP(&secret, "password", "p", "", "account password (required)")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCommand(application *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the persisted session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.sessions.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Signed out.")
			return nil
		},
	}
}

func newWhoamiCommand(application *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the active session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			active := application.sessions.Current()
			if active == nil {
				fmt.Println("Not signed in.")
				return nil
			}
			fmt.Printf("%s <%s>\nmember since %s\n%d favorites, %d history entries\n",
				active.Username, active.Email,
				active.CreatedAt.Format("2006-01-02"),
				len(active.Favorites), len(active.WatchHistory))
			return nil
		},
	}
}
