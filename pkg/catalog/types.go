package catalog

import (
	"sort"
	"strconv"
)

type Image struct {
	Medium   string `json:"medium"`
	Original string `json:"original"`
}

type Rating struct {
	Average *float64 `json:"average"`
}

type Network struct {
	Name string `json:"name"`
}

// Show mirrors the catalog's show resource. Only the fields the service reads
// or forwards are decoded.
type Show struct {
	Id           int64     `json:"id"`
	Url          string    `json:"url,omitempty"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Language     string    `json:"language"`
	Genres       []string  `json:"genres"`
	Status       string    `json:"status"`
	Runtime      *int      `json:"runtime,omitempty"`
	Premiered    string    `json:"premiered"`
	OfficialSite string    `json:"officialSite,omitempty"`
	Rating       Rating    `json:"rating"`
	Weight       int       `json:"weight"`
	Network      *Network  `json:"network,omitempty"`
	Image        *Image    `json:"image"`
	Summary      string    `json:"summary"`
	Embedded     *Embedded `json:"_embedded,omitempty"`
}

type Embedded struct {
	Episodes []Episode    `json:"episodes,omitempty"`
	Cast     []CastMember `json:"cast,omitempty"`
}

type Episode struct {
	Id      int64  `json:"id"`
	Name    string `json:"name"`
	Season  int    `json:"season"`
	Number  *int   `json:"number"`
	Airdate string `json:"airdate"`
	Runtime *int   `json:"runtime"`
	Rating  Rating `json:"rating"`
	Image   *Image `json:"image"`
	Summary string `json:"summary"`
}

type Person struct {
	Id    int64  `json:"id"`
	Name  string `json:"name"`
	Image *Image `json:"image"`
}

type CastMember struct {
	Person    Person `json:"person"`
	Character Person `json:"character"`
}

type searchResult struct {
	Score float64 `json:"score"`
	Show  Show    `json:"show"`
}

//------------------------------------------
//------------------------------------------

// Poster returns the medium image, falling back to the original one.
func (s Show) Poster() string {
	if s.Image == nil {
		return ""
	}
	if s.Image.Medium != "" {
		return s.Image.Medium
	}
	return s.Image.Original
}

// Year returns the premiere year, or 0 when unknown.
func (s Show) Year() int {
	if len(s.Premiered) < 4 {
		return 0
	}
	year, err := strconv.Atoi(s.Premiered[:4])
	if err != nil {
		return 0
	}
	return year
}

func (s Show) AverageRating() float64 {
	if s.Rating.Average == nil {
		return 0
	}
	return *s.Rating.Average
}

//------------------------------------------
//------------------------------------------

type Season struct {
	Number   int       `json:"number"`
	Episodes []Episode `json:"episodes"`
}

// ShowDetail is a show with its episodes grouped into seasons and its cast.
type ShowDetail struct {
	Show
	Seasons []Season     `json:"seasons"`
	Cast    []CastMember `json:"cast"`
}

func NewShowDetail(show Show) *ShowDetail {
	detail := &ShowDetail{Show: show, Seasons: []Season{}, Cast: []CastMember{}}
	if show.Embedded != nil {
		detail.Seasons = GroupSeasons(show.Embedded.Episodes)
		if show.Embedded.Cast != nil {
			detail.Cast = show.Embedded.Cast
		}
	}
	detail.Embedded = nil
	return detail
}

// GroupSeasons buckets episodes by season number, seasons ascending, keeping
// the catalog's episode order within a season.
func GroupSeasons(episodes []Episode) []Season {
	bySeason := make(map[int][]Episode)
	for _, ep := range episodes {
		bySeason[ep.Season] = append(bySeason[ep.Season], ep)
	}

	seasons := make([]Season, 0, len(bySeason))
	for number, eps := range bySeason {
		seasons = append(seasons, Season{Number: number, Episodes: eps})
	}
	sort.Slice(seasons, func(i, j int) bool {
		return seasons[i].Number < seasons[j].Number
	})
	return seasons
}
