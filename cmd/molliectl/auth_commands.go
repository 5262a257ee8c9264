package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// loginWait bounds how long `auth login` waits for the browser redirect.
const loginWait = 5 * time.Minute

func newAuthCommand(cctx *commandContext) *cobra.Command {
	authCmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage OAuth2 authorization",
	}

	authCmd.AddCommand(newAuthLoginCommand(cctx))
	authCmd.AddCommand(newAuthStatusCommand(cctx))
	authCmd.AddCommand(newAuthLogoutCommand(cctx))

	return authCmd
}

func newAuthLoginCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Authorize molliectl against your Mollie account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := cctx.oauthManager()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), loginWait)
			defer cancel()

			out := cmd.OutOrStdout()
			token, err := manager.Login(ctx, func(authURL string) {
				if isTerminal() {
					fmt.Fprintln(out, "molliectl is not authorized yet to access your Mollie data.")
					fmt.Fprintln(out, "Visit the following URL and complete the authorization flow:")
					fmt.Fprintln(out)
				}
				fmt.Fprintln(out, authURL)
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Authorization successful; token stored (expires %s)\n",
				token.Expiry.Format(time.RFC3339))
			return nil
		},
	}
}

func newAuthStatusCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether an OAuth token is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := cctx.oauthManager()
			if err != nil {
				return err
			}
			token, err := manager.Status()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if token == nil {
				fmt.Fprintln(out, "Not authorized; run `molliectl auth login`")
				return nil
			}
			fmt.Fprintf(out, "Authorized: %s\n", yesNo(true))
			if !token.Expiry.IsZero() {
				fmt.Fprintf(out, "Token expires: %s\n", token.Expiry.Format(time.RFC3339))
			}
			return nil
		},
	}
}

func newAuthLogoutCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored OAuth token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := cctx.oauthManager()
			if err != nil {
				return err
			}
			if err := manager.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Stored token removed")
			return nil
		},
	}
}

func isTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
