package main

import (
	"context"
	"fmt"
	"io"
	"showtracker/model"
	"showtracker/pkg/client"
	"strconv"

	"github.com/spf13/cobra"
)

func newProfileCommand(ctx *commandContext) *cobra.Command {
	var name, bio, phone, location, photo string
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the profile, or update it with flags",
		RunE: func(cmd *cobra.Command, args []string) error {
			update := model.ProfileUpdate{}
			flags := cmd.Flags()
			if flags.Changed("name") {
				update.DisplayName = &name
			}
			if flags.Changed("bio") {
				update.Bio = &bio
			}
			if flags.Changed("phone") {
				update.Phone = &phone
			}
			if flags.Changed("location") {
				update.Location = &location
			}
			if flags.Changed("photo") {
				update.PhotoUrl = &photo
			}

			return ctx.withClient(cmd, func(c context.Context, api *client.Client) error {
				var profile *model.ProfileRes
				var err error
				if update.IsEmpty() {
					profile, err = api.Profile(c)
				} else {
					profile, err = api.UpdateProfile(c, update)
				}
				if err != nil {
					return err
				}
				printProfile(cmd.OutOrStdout(), profile)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&bio, "bio", "", "Bio")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone")
	cmd.Flags().StringVar(&location, "location", "", "Location")
	cmd.Flags().StringVar(&photo, "photo", "", "Photo url")
	return cmd
}

func printProfile(out io.Writer, profile *model.ProfileRes) {
	rows := [][]string{
		{"Name", profile.Name},
		{"Email", profile.Email},
		{"Bio", profile.Bio},
		{"Phone", profile.Phone},
		{"Location", profile.Location},
		{"Photo", profile.PhotoUrl},
		{"Reviews", strconv.FormatInt(profile.ReviewCount, 10)},
		{"Watchlist", strconv.FormatInt(profile.WatchlistCount, 10)},
		{"Playlists", strconv.FormatInt(profile.ListCount, 10)},
	}
	fmt.Fprintln(out, renderTable(out, []string{"Field", "Value"}, rows, nil))
}
