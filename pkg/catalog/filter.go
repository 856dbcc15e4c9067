package catalog

import (
	"slices"
	"strings"
)

// Filter decides which catalog shows are worth surfacing on the browse feed.
// Empty Types, Languages and Genres accept any value.
type Filter struct {
	Types     []string `json:"types"`
	Languages []string `json:"languages"`
	Genres    []string `json:"genres"`
	MinYear   int      `json:"minYear"`
	MinRating float64  `json:"minRating"`
	MinWeight int      `json:"minWeight"`
}

func DefaultFilter() Filter {
	return Filter{
		Types:     []string{"Scripted"},
		Languages: []string{"English", "English (US)"},
		MinYear:   2000,
		MinRating: 5.0,
		MinWeight: 70,
	}
}

// Match reports whether show passes every criterion. A show without an image
// never matches. Quality passes on either the rating floor or the weight floor.
func (f Filter) Match(show Show) bool {
	if show.Poster() == "" {
		return false
	}
	if len(f.Types) > 0 && !slices.Contains(f.Types, show.Type) {
		return false
	}
	if len(f.Languages) > 0 && !slices.Contains(f.Languages, show.Language) {
		return false
	}
	if f.MinYear > 0 && show.Year() < f.MinYear {
		return false
	}
	if f.MinRating > 0 || f.MinWeight > 0 {
		goodRating := f.MinRating > 0 && show.AverageRating() >= f.MinRating
		goodWeight := f.MinWeight > 0 && show.Weight > f.MinWeight
		if !goodRating && !goodWeight {
			return false
		}
	}
	if len(f.Genres) > 0 && !hasAnyGenre(show.Genres, f.Genres) {
		return false
	}
	return true
}

func (f Filter) Apply(shows []Show) []Show {
	res := make([]Show, 0, len(shows))
	for _, s := range shows {
		if f.Match(s) {
			res = append(res, s)
		}
	}
	return res
}

func hasAnyGenre(showGenres []string, wanted []string) bool {
	for _, g := range showGenres {
		for _, w := range wanted {
			if strings.EqualFold(g, w) {
				return true
			}
		}
	}
	return false
}
