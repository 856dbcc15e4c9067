package catalog

import (
	"context"
	"math/rand"
)

const (
	DefaultBatchSize   = 12
	DefaultMaxPages    = 10
	DefaultRandomPages = 200
)

type PageFetcher interface {
	FetchPage(ctx context.Context, page int) ([]Show, error)
}

type DiscoverOptions struct {
	BatchSize int
	MaxPages  int
	Filter    Filter
}

// Batch is a run of filtered shows and the page to continue from.
type Batch struct {
	Shows    []Show `json:"shows"`
	NextPage int    `json:"nextPage"`
}

// Discover walks the catalog from startPage, keeping the shows that pass the
// filter, shuffled page by page, until BatchSize shows are collected or
// MaxPages pages have been read. A failed page ends the walk early; the shows
// gathered so far are returned and NextPage points at the failed page.
func Discover(ctx context.Context, fetcher PageFetcher, startPage int, opts DiscoverOptions, rnd *rand.Rand) Batch {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.MaxPages <= 0 {
		opts.MaxPages = DefaultMaxPages
	}
	if startPage < 0 {
		startPage = 0
	}

	batch := Batch{Shows: make([]Show, 0, opts.BatchSize), NextPage: startPage}
	for fetched := 0; fetched < opts.MaxPages && len(batch.Shows) < opts.BatchSize; fetched++ {
		shows, err := fetcher.FetchPage(ctx, batch.NextPage)
		if err != nil {
			return batch
		}
		valid := opts.Filter.Apply(shows)
		Shuffle(valid, rnd)
		batch.Shows = append(batch.Shows, valid...)
		batch.NextPage++
	}
	return batch
}

func Shuffle(shows []Show, rnd *rand.Rand) {
	if rnd == nil {
		rand.Shuffle(len(shows), func(i, j int) { shows[i], shows[j] = shows[j], shows[i] })
		return
	}
	rnd.Shuffle(len(shows), func(i, j int) { shows[i], shows[j] = shows[j], shows[i] })
}
