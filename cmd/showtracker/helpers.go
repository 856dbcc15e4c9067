package main

import (
	"context"
	"fmt"
	"showtracker/model"
	"showtracker/pkg/catalog"
	"showtracker/pkg/client"
	"strconv"
	"strings"
)

func parseShowId(arg string) (int64, error) {
	showId, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || showId <= 0 {
		return 0, fmt.Errorf("invalid show id %q", arg)
	}
	return showId, nil
}

// lookupShow fetches the catalog metadata that is stored next to user data.
func lookupShow(ctx context.Context, api *client.Client, showId int64) (model.Show, error) {
	detail, err := api.ShowDetail(ctx, showId)
	if err != nil {
		return model.Show{}, err
	}
	return showFromCatalog(detail.Show), nil
}

func showFromCatalog(show catalog.Show) model.Show {
	return model.Show{
		ShowId:    show.Id,
		Name:      show.Name,
		Poster:    show.Poster(),
		Premiered: show.Premiered,
		Rating:    show.AverageRating(),
	}
}

func formatRating(rating float64) string {
	if rating <= 0 {
		return "-"
	}
	return strconv.FormatFloat(rating, 'f', 1, 64)
}

func showRows(shows []catalog.Show) [][]string {
	rows := make([][]string, 0, len(shows))
	for _, s := range shows {
		year := "-"
		if y := s.Year(); y > 0 {
			year = strconv.Itoa(y)
		}
		rows = append(rows, []string{
			strconv.FormatInt(s.Id, 10),
			s.Name,
			year,
			formatRating(s.AverageRating()),
			strings.Join(s.Genres, ", "),
		})
	}
	return rows
}

var showHeaders = []string{"ID", "Name", "Year", "Rating", "Genres"}
var showAligns = []columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignLeft}
