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

func newReviewCommands(ctx *commandContext) []*cobra.Command {
	return []*cobra.Command{
		newRateCommand(ctx),
		newFavoriteCommand(ctx),
		newReviewCommand(ctx),
		newReviewsCommand(ctx),
		newFavoritesCommand(ctx),
	}
}

// applyReviewAction shows the expected state right away and rolls it back
// when the server rejects the change.
func applyReviewAction(c context.Context, api *client.Client, showId int64, action client.Action) (client.ShowState, error) {
	show, err := lookupShow(c, api, showId)
	if err != nil {
		return client.ShowState{}, err
	}
	status, err := api.ShowStatus(c, showId)
	if err != nil {
		return client.ShowState{}, err
	}

	store := client.NewShowStore(client.StateFromStatus(status))
	err = store.Apply(c, action, func(c context.Context, next client.ShowState) error {
		return api.SaveReview(c, show, reviewInput(action, next))
	})
	return store.State(), err
}

func reviewInput(action client.Action, next client.ShowState) model.ReviewInput {
	switch action.Type {
	case client.ActionToggleFavorite:
		return model.ReviewInput{IsFavorite: &next.IsFavorite}
	case client.ActionSetRating:
		return model.ReviewInput{Rating: &next.Rating}
	case client.ActionSetReviewText:
		return model.ReviewInput{ReviewText: &next.ReviewText}
	}
	return model.ReviewInput{}
}

func printState(out io.Writer, state client.ShowState) {
	fmt.Fprintf(out, "Favorite: %s  Rating: %s  Review: %q\n", yesNo(state.IsFavorite), formatRating(state.Rating), state.ReviewText)
}

func newRateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rate <showId> <rating>",
		Short: "Rate a show from 0 to 5",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			showId, err := parseShowId(args[0])
			if err != nil {
				return err
			}
			rating, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid rating %q", args[1])
			}
			return ctx.withClient(cmd, func(c context.Context, api *client.Client) error {
				state, err := applyReviewAction(c, api, showId, client.Action{Type: client.ActionSetRating, Rating: rating})
				if err != nil {
					return err
				}
				printState(cmd.OutOrStdout(), state)
				return nil
			})
		},
	}
}

func newFavoriteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "fav <showId>",
		Short: "Toggle a show as favorite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			showId, err := parseShowId(args[0])
			if err != nil {
				return err
			}
			return ctx.withClient(cmd, func(c context.Context, api *client.Client) error {
				state, err := applyReviewAction(c, api, showId, client.Action{Type: client.ActionToggleFavorite})
				if err != nil {
					return err
				}
				printState(cmd.OutOrStdout(), state)
				return nil
			})
		},
	}
}

func newReviewCommand(ctx *commandContext) *cobra.Command {
	var remove bool
	cmd := &cobra.Command{
		Use:   "review <showId> [text]",
		Short: "Write or delete the review text of a show",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			showId, err := parseShowId(args[0])
			if err != nil {
				return err
			}
			return ctx.withClient(cmd, func(c context.Context, api *client.Client) error {
				if remove {
					if err := api.DeleteReview(c, showId); err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), "Review deleted")
					return nil
				}
				text := strings.Join(args[1:], " ")
				state, err := applyReviewAction(c, api, showId, client.Action{Type: client.ActionSetReviewText, Text: text})
				if err != nil {
					return err
				}
				printState(cmd.OutOrStdout(), state)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&remove, "delete", false, "Delete the whole review entry")
	return cmd
}

func newReviewsCommand(ctx *commandContext) *cobra.Command {
	var showFlag int64
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "List your reviews, or everyone's reviews of one show",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(c context.Context, api *client.Client) error {
				var reviews []model.ReviewEntry
				var err error
				if showFlag > 0 {
					reviews, err = api.ShowReviews(c, showFlag)
				} else {
					reviews, err = api.MyReviews(c)
				}
				if err != nil {
					return err
				}
				printReviews(cmd.OutOrStdout(), reviews)
				return nil
			})
		},
	}
	cmd.Flags().Int64Var(&showFlag, "show", 0, "Show id to list public reviews for")
	return cmd
}

func newFavoritesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "favorites",
		Short: "List favorite shows",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(c context.Context, api *client.Client) error {
				reviews, err := api.Favorites(c)
				if err != nil {
					return err
				}
				printReviews(cmd.OutOrStdout(), reviews)
				return nil
			})
		},
	}
}

func printReviews(out io.Writer, reviews []model.ReviewEntry) {
	rows := make([][]string, 0, len(reviews))
	for _, r := range reviews {
		rows = append(rows, []string{
			strconv.FormatInt(r.ShowId, 10),
			r.ShowName,
			r.AuthorName,
			formatRating(r.Rating),
			yesNo(r.IsFavorite),
			r.ReviewText,
		})
	}
	fmt.Fprintln(out, renderTable(out,
		[]string{"ID", "Show", "Author", "Rating", "Favorite", "Review"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight}))
}
