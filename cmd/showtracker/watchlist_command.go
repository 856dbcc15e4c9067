package main

import (
	"context"
	"fmt"
	"showtracker/pkg/client"
	"strconv"

	"github.com/spf13/cobra"
)

func newWatchlistCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watchlist",
		Short: "Manage the watchlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listWatchlist(ctx, cmd)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the watchlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listWatchlist(ctx, cmd)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "add <showId>",
		Short: "Add a show to the watchlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			showId, err := parseShowId(args[0])
			if err != nil {
				return err
			}
			return ctx.withClient(cmd, func(c context.Context, api *client.Client) error {
				show, err := lookupShow(c, api, showId)
				if err != nil {
					return err
				}
				if err := api.AddToWatchlist(c, show); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s to the watchlist\n", show.Name)
				return nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "rm <showId>",
		Short: "Remove a show from the watchlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			showId, err := parseShowId(args[0])
			if err != nil {
				return err
			}
			return ctx.withClient(cmd, func(c context.Context, api *client.Client) error {
				if err := api.RemoveFromWatchlist(c, showId); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Removed from the watchlist")
				return nil
			})
		},
	})
	return cmd
}

func listWatchlist(ctx *commandContext, cmd *cobra.Command) error {
	return ctx.withClient(cmd, func(c context.Context, api *client.Client) error {
		entries, err := api.Watchlist(c)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, []string{
				strconv.FormatInt(e.ShowId, 10),
				e.Name,
				e.Premiered,
				e.AddedAt.Local().Format("2006-01-02"),
			})
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, renderTable(out, []string{"ID", "Name", "Premiered", "Added"}, rows, []columnAlignment{alignRight}))
		return nil
	})
}
