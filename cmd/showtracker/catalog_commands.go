package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"showtracker/pkg/catalog"
	"showtracker/pkg/client"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"
)

func newCatalogCommands(ctx *commandContext) []*cobra.Command {
	return []*cobra.Command{
		newDiscoverCommand(ctx),
		newSearchCommand(ctx),
		newShowCommand(ctx),
	}
}

func newDiscoverCommand(ctx *commandContext) *cobra.Command {
	var page int
	var genres []string
	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Browse a batch of catalog shows",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(c context.Context, api *client.Client) error {
				batch, err := api.Discover(c, page, genres)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, renderTable(out, showHeaders, showRows(batch.Shows), showAligns))
				fmt.Fprintf(out, "Next page: %d\n", batch.NextPage)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&page, "page", -1, "Catalog page to start from (random when negative)")
	cmd.Flags().StringSliceVar(&genres, "genre", nil, "Only shows with any of these genres")
	return cmd
}

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var interactive bool
	var wait time.Duration
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the catalog by name",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(c context.Context, api *client.Client) error {
				out := cmd.OutOrStdout()
				if interactive {
					return interactiveSearch(c, api, cmd.InOrStdin(), out, wait)
				}
				shows, err := api.Search(c, strings.Join(args, " "))
				if err != nil {
					return err
				}
				fmt.Fprintln(out, renderTable(out, showHeaders, showRows(shows), showAligns))
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Read queries line by line and search once typing pauses")
	cmd.Flags().DurationVar(&wait, "wait", client.DefaultDebounceWait, "Pause before an interactive search runs")
	return cmd
}

// interactiveSearch treats every input line as the current query. Only the
// query that stays unchanged for the wait window is sent.
func interactiveSearch(ctx context.Context, api *client.Client, in io.Reader, out io.Writer, wait time.Duration) error {
	var outMux sync.Mutex
	var lastQuery string
	search := func(query string) {
		outMux.Lock()
		defer outMux.Unlock()
		lastQuery = query
		shows, err := api.Search(ctx, query)
		if err != nil {
			fmt.Fprintf(out, "search %q: %v\n", query, err)
			return
		}
		fmt.Fprintf(out, "Results for %q\n", query)
		fmt.Fprintln(out, renderTable(out, showHeaders, showRows(shows), showAligns))
	}

	debouncer := client.NewDebouncer(wait, search)
	scanner := bufio.NewScanner(in)
	var pending string
	for scanner.Scan() {
		pending = strings.TrimSpace(scanner.Text())
		debouncer.Trigger(pending)
	}
	debouncer.Stop()

	outMux.Lock()
	done := lastQuery == pending
	outMux.Unlock()
	if !done && pending != "" {
		search(pending)
	}
	return scanner.Err()
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <showId>",
		Short: "Show details, seasons, cast and your status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			showId, err := parseShowId(args[0])
			if err != nil {
				return err
			}
			return ctx.withClient(cmd, func(c context.Context, api *client.Client) error {
				detail, err := api.ShowDetail(c, showId)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				printShowDetail(out, detail)

				if api.Token() != "" {
					if status, err := api.ShowStatus(c, showId); err == nil {
						fmt.Fprintf(out, "Watchlist: %s  Favorite: %s  Your rating: %s\n",
							yesNo(status.InWatchlist), yesNo(status.IsFavorite), formatRating(status.UserRating))
					}
				}
				return nil
			})
		},
	}
}

func printShowDetail(out io.Writer, detail *catalog.ShowDetail) {
	fmt.Fprintf(out, "%s (%s)\n", detail.Name, detail.Premiered)
	fmt.Fprintf(out, "Status: %s  Language: %s  Rating: %s\n", detail.Status, detail.Language, formatRating(detail.AverageRating()))
	if len(detail.Genres) > 0 {
		fmt.Fprintf(out, "Genres: %s\n", strings.Join(detail.Genres, ", "))
	}

	seasonRows := make([][]string, 0, len(detail.Seasons))
	for _, season := range detail.Seasons {
		seasonRows = append(seasonRows, []string{strconv.Itoa(season.Number), strconv.Itoa(len(season.Episodes))})
	}
	if len(seasonRows) > 0 {
		fmt.Fprintln(out, renderTable(out, []string{"Season", "Episodes"}, seasonRows, []columnAlignment{alignRight, alignRight}))
	}

	castRows := make([][]string, 0, len(detail.Cast))
	for _, member := range detail.Cast {
		castRows = append(castRows, []string{member.Person.Name, member.Character.Name})
	}
	if len(castRows) > 0 {
		fmt.Fprintln(out, renderTable(out, []string{"Actor", "Character"}, castRows, nil))
	}
}
