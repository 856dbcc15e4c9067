package main

import (
	"context"
	"fmt"
	"showtracker/model"
	"showtracker/pkg/client"

	"github.com/spf13/cobra"
)

func newAuthCommands(ctx *commandContext) []*cobra.Command {
	return []*cobra.Command{
		newRegisterCommand(ctx),
		newLoginCommand(ctx),
		newLogoutCommand(ctx),
		newPasswordCommand(ctx),
		newWhoamiCommand(ctx),
	}
}

func newRegisterCommand(ctx *commandContext) *cobra.Command {
	var email, password, confirm string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			if confirm == "" {
				confirm = password
			}
			return ctx.withClient(cmd, func(c context.Context, api *client.Client) error {
				res, err := api.Register(c, model.RegisterReq{Email: email, Password: password, ConfirmPassword: confirm})
				if err != nil {
					return err
				}
				if err := ctx.rememberLogin(api, email, res.RefreshToken); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Registered and logged in as %s\n", email)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	cmd.Flags().StringVar(&confirm, "confirm", "", "Password confirmation (defaults to --password)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLoginCommand(ctx *commandContext) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with email and password",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(c context.Context, api *client.Client) error {
				res, err := api.Login(c, model.LoginReq{Email: email, Password: password})
				if err != nil {
					return err
				}
				if err := ctx.rememberLogin(api, email, res.RefreshToken); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", email)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Revoke the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := ctx.withClient(cmd, func(c context.Context, api *client.Client) error {
				return api.Logout(c)
			})
			if forgetErr := ctx.forgetLogin(); forgetErr != nil {
				return forgetErr
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newPasswordCommand(ctx *commandContext) *cobra.Command {
	var current, next string
	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Change the account password",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(c context.Context, api *client.Client) error {
				err := api.ChangePassword(c, model.ChangePasswordReq{
					CurrentPassword: current,
					NewPassword:     next,
					ConfirmPassword: next,
				})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Password changed")
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&current, "current", "", "Current password")
	cmd.Flags().StringVar(&next, "new", "", "New password")
	_ = cmd.MarkFlagRequired("current")
	_ = cmd.MarkFlagRequired("new")
	return cmd
}

func newWhoamiCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(c context.Context, api *client.Client) error {
				identity, err := api.Me(c)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, %s)\n", identity.Email, identity.Role, identity.Provider)
				return nil
			})
		},
	}
}
