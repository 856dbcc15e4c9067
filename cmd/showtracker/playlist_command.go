package main

import (
	"context"
	"fmt"
	"io"
	"showtracker/model"
	"showtracker/pkg/client"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newPlaylistCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "playlists",
		Aliases: []string{"playlist"},
		Short:   "Manage playlists",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listPlaylists(ctx, cmd)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List playlists",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listPlaylists(ctx, cmd)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "create <name>",
		Short: "Create a playlist",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(c context.Context, api *client.Client) error {
				playlist, err := api.CreatePlaylist(c, strings.Join(args, " "))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%s)\n", playlist.Name, playlist.Id.Hex())
				return nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "rm <playlistId>",
		Short: "Delete a playlist and its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(c context.Context, api *client.Client) error {
				if err := api.DeletePlaylist(c, args[0]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Playlist deleted")
				return nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "items <playlistId>",
		Short: "List the shows of a playlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(c context.Context, api *client.Client) error {
				items, err := api.PlaylistItems(c, args[0])
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(items))
				for _, item := range items {
					rows = append(rows, []string{
						strconv.FormatInt(item.ShowId, 10),
						item.Name,
						item.AddedAt.Local().Format("2006-01-02"),
					})
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, renderTable(out, []string{"ID", "Name", "Added"}, rows, []columnAlignment{alignRight}))
				return nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "add <playlistId> <showId>",
		Short: "Add a show to a playlist",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			showId, err := parseShowId(args[1])
			if err != nil {
				return err
			}
			return ctx.withClient(cmd, func(c context.Context, api *client.Client) error {
				show, err := lookupShow(c, api, showId)
				if err != nil {
					return err
				}
				if err := api.AddToPlaylist(c, args[0], show); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", show.Name)
				return nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "remove <playlistId> <showId>",
		Short: "Remove a show from a playlist",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			showId, err := parseShowId(args[1])
			if err != nil {
				return err
			}
			return ctx.withClient(cmd, func(c context.Context, api *client.Client) error {
				if err := api.RemoveFromPlaylist(c, args[0], showId); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Removed")
				return nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "recount <playlistId>",
		Short: "Recompute the item count of a playlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(c context.Context, api *client.Client) error {
				playlist, err := api.RecountPlaylist(c, args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				printPlaylists(out, []model.Playlist{*playlist})
				return nil
			})
		},
	})
	return cmd
}

func listPlaylists(ctx *commandContext, cmd *cobra.Command) error {
	return ctx.withClient(cmd, func(c context.Context, api *client.Client) error {
		playlists, err := api.Playlists(c)
		if err != nil {
			return err
		}
		printPlaylists(cmd.OutOrStdout(), playlists)
		return nil
	})
}

func printPlaylists(out io.Writer, playlists []model.Playlist) {
	rows := make([][]string, 0, len(playlists))
	for _, p := range playlists {
		rows = append(rows, []string{
			p.Id.Hex(),
			p.Name,
			strconv.FormatInt(p.ItemCount, 10),
			p.CreatedAt.Local().Format("2006-01-02"),
		})
	}
	fmt.Fprintln(out, renderTable(out, []string{"ID", "Name", "Items", "Created"}, rows, []columnAlignment{alignLeft, alignLeft, alignRight}))
}
